package schema

import (
	"fmt"
	"maps"
	"slices"
	"strings"
	"time"

	"github.com/segmentio/ksuid"

	"scriptoria/pkg/prompts"
)

// Project carries the results a user builds up across calls so later prompts can
// reference them. It is passed explicitly; nothing here is global.
type Project struct {
	ID             string            `json:"id" jsonschema_description:"Project identifier (KSUID)"`
	Name           string            `json:"name,omitempty" jsonschema_description:"Optional display name"`
	Characters     map[string]string `json:"characters" jsonschema_description:"Character profiles keyed by character name"`
	VisualIdentity string            `json:"visual_identity,omitempty" jsonschema_description:"Most recent visual identity profile"`
	Production     map[string]string `json:"production" jsonschema_description:"Production plans keyed by milestone category"`
	Scripts        []string          `json:"scripts,omitempty" jsonschema_description:"Screenplay segments generated for this project"`
	CreatedAt      string            `json:"created_at"`
	UpdatedAt      string            `json:"updated_at"`
}

// Readiness summarises how many production milestones have a plan.
type Readiness struct {
	Completed int     `json:"completed"`
	Total     int     `json:"total"`
	Pending   int     `json:"pending"`
	Percent   float64 `json:"percent"`
}

func NewProject(name string) *Project {
	now := time.Now().UTC().Format(time.RFC3339)
	return &Project{
		ID:         ksuid.New().String(),
		Name:       strings.TrimSpace(name),
		Characters: make(map[string]string),
		Production: make(map[string]string),
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

func (p *Project) touch() {
	p.UpdatedAt = time.Now().UTC().Format(time.RFC3339)
}

func (p *Project) AddCharacter(name, profile string) {
	if p.Characters == nil {
		p.Characters = make(map[string]string)
	}
	p.Characters[name] = profile
	p.touch()
}

func (p *Project) AddPlan(category, plan string) {
	if p.Production == nil {
		p.Production = make(map[string]string)
	}
	p.Production[category] = plan
	p.touch()
}

func (p *Project) AddScript(script string) {
	p.Scripts = append(p.Scripts, script)
	p.touch()
}

func (p *Project) SetVisualIdentity(profile string) {
	p.VisualIdentity = profile
	p.touch()
}

// CharacterContext renders the selected character profiles for a screenplay
// prompt. Unknown names are skipped.
func (p *Project) CharacterContext(names []string) string {
	var b strings.Builder
	for _, name := range names {
		profile, ok := p.Characters[name]
		if !ok {
			continue
		}
		fmt.Fprintf(&b, "\nCharacter Profile (%s): %s", name, profile)
	}
	return b.String()
}

func (p *Project) Readiness() Readiness {
	total := len(prompts.Categories())
	done := 0
	for _, cat := range prompts.Categories() {
		if _, ok := p.Production[cat]; ok {
			done++
		}
	}
	return Readiness{
		Completed: done,
		Total:     total,
		Pending:   total - done,
		Percent:   float64(done) / float64(total) * 100,
	}
}

// MasterBook concatenates every production plan, sorted by category.
func (p *Project) MasterBook() string {
	var b strings.Builder
	b.WriteString("# Master Production Book\n\n")
	for _, cat := range slices.Sorted(maps.Keys(p.Production)) {
		fmt.Fprintf(&b, "## %s\n%s\n\n---\n\n", cat, p.Production[cat])
	}
	return b.String()
}
