package prompts

import (
	"errors"
	"strings"
	"testing"
)

func TestBuildUserTurns(t *testing.T) {
	tests := []struct {
		name string
		c    Capability
		f    Fields
		want string
	}{
		{"screenplay", Screenplay, Fields{Subject: "A detective finds a garden", Context: "Cyberpunk"}, "Idea: A detective finds a garden\nContext: Cyberpunk"},
		{"screenplay empty", Screenplay, Fields{}, "Idea: \nContext: "},
		{"character", Character, Fields{Subject: "Elias Vance", Context: "weary salvager"}, "Character Name: Elias Vance\nDescription/Archetype: weary salvager"},
		{"sound", SoundDesign, Fields{Subject: "desert market"}, "Scene Description: desert market"},
		{"labels", MLLabels, Fields{Subject: "rain and thunder"}, "Sound Design Blueprint:\nrain and thunder"},
		{"video default style", VideoPrompt, Fields{Subject: "ripples"}, "Visual Idea: ripples\nPreferred Style: Cinematic"},
		{"video style", VideoPrompt, Fields{Subject: "ripples", Style: "Neo-Noir"}, "Visual Idea: ripples\nPreferred Style: Neo-Noir"},
		{"production data", ProductionData, Fields{Subject: "dragon"}, "Visual Idea: dragon"},
		{"motion script", MotionScript, Fields{Subject: "dragon"}, "Visual Idea: dragon"},
		{"storyboard", Storyboard, Fields{Subject: "dragon"}, "Video Idea: dragon"},
		{"face default", FaceIdentity, Fields{}, "Actor Face Description: Actor Face"},
		{"face script", FaceScript, Fields{Subject: "Sharp jawline"}, "Visual Identity Profile:\nSharp jawline"},
		{"variations raw", MotionVariations, Fields{Subject: "Ocean at dusk"}, "Ocean at dusk"},
		{"blueprint", ProductionBlueprint, Fields{Subject: "moon heist", Category: BudgetPlanning}, "Project Concept/Scene: moon heist\nCategory: Budget Planning"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			system, user, err := Build(tt.c, tt.f)
			if err != nil {
				t.Fatalf("build: %v", err)
			}
			if system == "" {
				t.Error("system instruction should not be empty")
			}
			if user != tt.want {
				t.Errorf("user = %q, want %q", user, tt.want)
			}
		})
	}
}

func TestFaceScriptGenre(t *testing.T) {
	system, _, _ := Build(FaceScript, Fields{Subject: "p"})
	if !strings.HasSuffix(system, "Genre: Neo-Noir") {
		t.Errorf("default genre missing: %q", system)
	}
	system, _, _ = Build(FaceScript, Fields{Subject: "p", Style: "Western"})
	if !strings.HasSuffix(system, "Genre: Western") {
		t.Errorf("genre not interpolated: %q", system)
	}
}

func TestBlueprintCategories(t *testing.T) {
	seen := map[string]bool{}
	for _, cat := range Categories() {
		p := BlueprintPrompt(cat)
		if p == blueprintFallbackPrompt {
			t.Errorf("category %q fell back to the generic prompt", cat)
		}
		if seen[p] {
			t.Errorf("category %q shares a prompt", cat)
		}
		seen[p] = true
	}
	if len(seen) != 8 {
		t.Errorf("expected 8 distinct prompts, got %d", len(seen))
	}
	if got := BlueprintPrompt("Marketing"); got != blueprintFallbackPrompt {
		t.Errorf("unknown category should fall back, got %q", got)
	}
}

func TestUnknownCapability(t *testing.T) {
	if _, _, err := Build("haiku", Fields{}); !errors.Is(err, ErrUnknownCapability) {
		t.Fatalf("expected ErrUnknownCapability, got %v", err)
	}
	for _, c := range Capabilities() {
		if _, _, err := Build(c, Fields{Subject: "x", Category: ScriptFinalization}); err != nil {
			t.Errorf("capability %q: %v", c, err)
		}
	}
}
