package studio

import (
	"context"
	"fmt"
	"strings"

	"scriptoria/pkg/completion"
	"scriptoria/pkg/parse"
)

// Scene is one named entry of a sound pack.
type Scene struct {
	Name   string `json:"name"`
	Prompt string `json:"prompt"`
}

// DefaultScenes is the fixed production sound pack.
var DefaultScenes = []Scene{
	{"Jungle Temple", "Jungle temple environment with wind, insects, thunder, and footsteps. 10 seconds, realistic, cinematic, immersive."},
	{"Cyberpunk Street", "Cyberpunk street at night with rain, footsteps, traffic, and one vehicle passing. 10 seconds, realistic, cinematic, immersive."},
	{"Emotional Mood", "Mood sound: Emotional. Soft piano and wind. 10 seconds, studio quality, cinematic."},
	{"Horror Mood", "Mood sound: Horror. Low bass and whisper. 10 seconds, studio quality, cinematic."},
	{"Action Mood", "Mood sound: Action. Fast drums and explosion. 10 seconds, studio quality, cinematic."},
	{"Sci-fi Mood", "Mood sound: Sci-fi. Futuristic synth and digital beeps. 10 seconds, studio quality, cinematic."},
}

type PackEntry struct {
	Name      string   `json:"name"`
	Blueprint string   `json:"blueprint"`
	Labels    []string `json:"labels"`
}

type Pack struct {
	Entries []PackEntry `json:"entries"`
}

// SoundPack runs every scene through sound design and label extraction in order.
// Failed blueprints are kept as-is so the report shows what went wrong.
func (s *Studio) SoundPack(ctx context.Context, scenes []Scene, progress func(string)) Pack {
	if progress == nil {
		progress = func(string) {}
	}
	var pack Pack
	for _, sc := range scenes {
		progress(fmt.Sprintf("Generating for %s...", sc.Name))
		entry := PackEntry{Name: sc.Name, Blueprint: s.SoundDesign(ctx, sc.Prompt)}
		if !completion.IsError(entry.Blueprint) {
			if raw := s.MLLabels(ctx, entry.Blueprint); !completion.IsError(raw) {
				entry.Labels = parse.Labels(raw)
			}
		}
		pack.Entries = append(pack.Entries, entry)
	}
	return pack
}

// Labels returns every scene's labels in scene order, kept as the model wrote
// them.
func (p Pack) Labels() []string {
	var out []string
	for _, e := range p.Entries {
		out = append(out, e.Labels...)
	}
	return out
}

// Report renders the plain-text report written by the batch command.
func (p Pack) Report() string {
	var b strings.Builder
	for _, e := range p.Entries {
		fmt.Fprintf(&b, "### %s\n%s\n\n", e.Name, e.Blueprint)
	}
	b.WriteString("### ML Dataset Labels\n")
	b.WriteString(strings.Join(p.Labels(), ", "))
	return b.String()
}

// Markdown renders the downloadable pack with per-scene labels.
func (p Pack) Markdown() string {
	var b strings.Builder
	b.WriteString("# Scriptoria Cinematic Sound Pack\n\n")
	for _, e := range p.Entries {
		fmt.Fprintf(&b, "## %s\n%s\n\n**ML Labels**: %s\n\n", e.Name, e.Blueprint, strings.Join(e.Labels, ", "))
	}
	return b.String()
}
