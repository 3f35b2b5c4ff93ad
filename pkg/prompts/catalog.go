// Package prompts holds the fixed system instructions for every capability and
// interpolates caller fields into the user turn. Output formats requested here
// are advisory; nothing checks that the model honours them.
package prompts

import (
	"cmp"
	"errors"
	"fmt"
)

type Capability string

const (
	Screenplay          Capability = "screenplay"
	Character           Capability = "character"
	SoundDesign         Capability = "sound-design"
	MLLabels            Capability = "ml-labels"
	VideoPrompt         Capability = "video-prompt"
	ProductionData      Capability = "production-data"
	MotionScript        Capability = "motion-script"
	Storyboard          Capability = "storyboard"
	FaceIdentity        Capability = "face-identity"
	FaceScript          Capability = "face-script"
	MotionVariations    Capability = "motion-variations"
	ProductionBlueprint Capability = "production-blueprint"
)

// Production milestone categories.
const (
	ScriptFinalization    = "Script Finalization"
	BudgetPlanning        = "Budget Planning"
	CastingStudio         = "Casting Studio"
	LocationScout         = "Location Scout"
	StoryboardPreparation = "Storyboard Preparation"
	CostumeMakeup         = "Costume & Makeup"
	SchedulePlanning      = "Schedule Planning"
	CrewSelection         = "Crew Selection"
)

const (
	DefaultVideoStyle = "Cinematic"
	DefaultGenre      = "Neo-Noir"
	DefaultFace       = "Actor Face"
)

var ErrUnknownCapability = errors.New("unknown capability")

// Fields is the caller-supplied part of a request. Subject is the main free
// text; Context, Style and Category are used by the capabilities that need them.
type Fields struct {
	Subject  string `json:"subject"`
	Context  string `json:"context,omitempty"`
	Style    string `json:"style,omitempty"`
	Category string `json:"category,omitempty"`
}

// Capabilities lists every capability in a stable order.
func Capabilities() []Capability {
	return []Capability{
		Screenplay, Character, SoundDesign, MLLabels, VideoPrompt, ProductionData,
		MotionScript, Storyboard, FaceIdentity, FaceScript, MotionVariations, ProductionBlueprint,
	}
}

// Categories lists the production milestones in display order.
func Categories() []string {
	return []string{
		ScriptFinalization, BudgetPlanning, CastingStudio, LocationScout,
		StoryboardPreparation, CostumeMakeup, SchedulePlanning, CrewSelection,
	}
}

// BlueprintPrompt returns the instruction for a production category, falling back
// to a generic planning instruction for anything unrecognised.
func BlueprintPrompt(category string) string {
	if p, ok := blueprintPrompts[category]; ok {
		return p
	}
	return blueprintFallbackPrompt
}

// Build returns the system instruction and user turn for capability c.
func Build(c Capability, f Fields) (system, user string, err error) {
	switch c {
	case Screenplay:
		return screenplayPrompt, fmt.Sprintf("Idea: %s\nContext: %s", f.Subject, f.Context), nil
	case Character:
		return characterPrompt, fmt.Sprintf("Character Name: %s\nDescription/Archetype: %s", f.Subject, f.Context), nil
	case SoundDesign:
		return soundDesignPrompt, "Scene Description: " + f.Subject, nil
	case MLLabels:
		return mlLabelsPrompt, "Sound Design Blueprint:\n" + f.Subject, nil
	case VideoPrompt:
		return videoPromptPrompt, fmt.Sprintf("Visual Idea: %s\nPreferred Style: %s", f.Subject, cmp.Or(f.Style, DefaultVideoStyle)), nil
	case ProductionData:
		return productionDataPrompt, "Visual Idea: " + f.Subject, nil
	case MotionScript:
		return motionScriptPrompt, "Visual Idea: " + f.Subject, nil
	case Storyboard:
		return storyboardPrompt, "Video Idea: " + f.Subject, nil
	case FaceIdentity:
		return faceIdentityPrompt, "Actor Face Description: " + cmp.Or(f.Subject, DefaultFace), nil
	case FaceScript:
		return fmt.Sprintf(faceScriptPrompt, cmp.Or(f.Style, DefaultGenre)), "Visual Identity Profile:\n" + f.Subject, nil
	case MotionVariations:
		return motionVariationsPrompt, f.Subject, nil
	case ProductionBlueprint:
		return BlueprintPrompt(f.Category), fmt.Sprintf("Project Concept/Scene: %s\nCategory: %s", f.Subject, f.Category), nil
	}
	return "", "", fmt.Errorf("%w: %q", ErrUnknownCapability, c)
}
