package schema

import "scriptoria/pkg/parse"

type ScreenplayRequest struct {
	ProjectID  string   `json:"project_id,omitempty"`
	Idea       string   `json:"idea" jsonschema_description:"Scene idea"`
	Context    string   `json:"context,omitempty" jsonschema_description:"Genre, tone or other context"`
	Characters []string `json:"characters,omitempty" jsonschema_description:"Names of project characters to link into the scene"`
}

type CharacterRequest struct {
	ProjectID   string `json:"project_id,omitempty"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty" jsonschema_description:"Archetype or description"`
}

type IdentityRequest struct {
	ProjectID   string `json:"project_id,omitempty"`
	Description string `json:"description" jsonschema_description:"Description of the actor's face"`
}

type IdentityScriptRequest struct {
	ProjectID string `json:"project_id,omitempty"`
	Profile   string `json:"profile,omitempty" jsonschema_description:"Visual identity profile; defaults to the project's latest"`
	Genre     string `json:"genre,omitempty"`
}

type SoundRequest struct {
	Scene string `json:"scene"`
}

type ClipRequest struct {
	Idea  string `json:"idea"`
	Style string `json:"style,omitempty"`
}

type ProductionRequest struct {
	ProjectID string `json:"project_id"`
	Idea      string `json:"idea"`
	Category  string `json:"category"`
}

type VideoRequest struct {
	Subject string `json:"subject"`
}

// TextResult is the common success payload for single-text capabilities.
type TextResult struct {
	Result string `json:"result"`
}

type SonicPlan struct {
	Blueprint string   `json:"blueprint"`
	Labels    []string `json:"labels"`
	RawLabels string   `json:"raw_labels,omitempty"`
}

// ClipBlueprint bundles the four documents produced for one video idea.
type ClipBlueprint struct {
	Prompt     string       `json:"prompt"`
	Specs      string       `json:"specs"`
	Motion     string       `json:"motion"`
	Storyboard string       `json:"storyboard"`
	Beats      []parse.Beat `json:"beats" jsonschema_description:"Parsed storyboard beats; empty when the storyboard could not be parsed"`
	Previews   []string     `json:"previews,omitempty"`
}

type WordChange struct {
	Op   int    `json:"op" jsonschema:"enum=-1,enum=0,enum=1"`
	Text string `json:"text"`
}

type PlanResult struct {
	Category  string       `json:"category"`
	Plan      string       `json:"plan"`
	Readiness Readiness    `json:"readiness"`
	Changes   []WordChange `json:"changes,omitempty" jsonschema_description:"Word diff between concept and final draft (Script Finalization only)"`
}

type RenderResult struct {
	Path   string `json:"path"`
	Poster string `json:"poster,omitempty"`
}
