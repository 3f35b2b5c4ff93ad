// Package studio exposes one method per capability. Every method returns the raw
// completion text, which may carry completion.ErrorPrefix.
package studio

import (
	"context"

	"github.com/charmbracelet/log"

	"scriptoria/pkg/completion"
	"scriptoria/pkg/parse"
	"scriptoria/pkg/prompts"
	"scriptoria/pkg/schema"
)

type Studio struct {
	completer completion.Completer
	// ImageBaseURL is used for storyboard preview links.
	ImageBaseURL string
}

func New(c completion.Completer, imageBaseURL string) *Studio {
	return &Studio{completer: c, ImageBaseURL: imageBaseURL}
}

func (s *Studio) run(ctx context.Context, c prompts.Capability, f prompts.Fields) string {
	system, user, err := prompts.Build(c, f)
	if err != nil {
		return completion.Failure(err)
	}
	out := s.completer.Complete(ctx, system, user)
	if completion.IsError(out) {
		log.Warn("capability failed", "capability", c, "result", out)
	}
	return out
}

func (s *Studio) Screenplay(ctx context.Context, idea, extra string) string {
	return s.run(ctx, prompts.Screenplay, prompts.Fields{Subject: idea, Context: extra})
}

func (s *Studio) CharacterProfile(ctx context.Context, name, description string) string {
	return s.run(ctx, prompts.Character, prompts.Fields{Subject: name, Context: description})
}

func (s *Studio) SoundDesign(ctx context.Context, scene string) string {
	return s.run(ctx, prompts.SoundDesign, prompts.Fields{Subject: scene})
}

// MLLabels extracts audio event labels from a sonic blueprint.
func (s *Studio) MLLabels(ctx context.Context, blueprint string) string {
	return s.run(ctx, prompts.MLLabels, prompts.Fields{Subject: blueprint})
}

func (s *Studio) VideoPrompt(ctx context.Context, idea, style string) string {
	return s.run(ctx, prompts.VideoPrompt, prompts.Fields{Subject: idea, Style: style})
}

func (s *Studio) ProductionData(ctx context.Context, idea string) string {
	return s.run(ctx, prompts.ProductionData, prompts.Fields{Subject: idea})
}

func (s *Studio) MotionScript(ctx context.Context, idea string) string {
	return s.run(ctx, prompts.MotionScript, prompts.Fields{Subject: idea})
}

func (s *Studio) Storyboard(ctx context.Context, idea string) string {
	return s.run(ctx, prompts.Storyboard, prompts.Fields{Subject: idea})
}

func (s *Studio) FaceIdentity(ctx context.Context, description string) string {
	return s.run(ctx, prompts.FaceIdentity, prompts.Fields{Subject: description})
}

func (s *Studio) FaceAnchoredScript(ctx context.Context, profile, genre string) string {
	return s.run(ctx, prompts.FaceScript, prompts.Fields{Subject: profile, Style: genre})
}

func (s *Studio) ProductionBlueprint(ctx context.Context, idea, category string) string {
	return s.run(ctx, prompts.ProductionBlueprint, prompts.Fields{Subject: idea, Category: category})
}

// SonicPlan generates a sound design and, when that succeeded, its labels. A
// failed label call leaves Labels empty and keeps the error text in RawLabels.
func (s *Studio) SonicPlan(ctx context.Context, scene string) (schema.SonicPlan, bool) {
	plan := schema.SonicPlan{Blueprint: s.SoundDesign(ctx, scene)}
	if completion.IsError(plan.Blueprint) {
		return plan, false
	}
	plan.RawLabels = s.MLLabels(ctx, plan.Blueprint)
	if !completion.IsError(plan.RawLabels) {
		plan.Labels = parse.Labels(plan.RawLabels)
	}
	return plan, true
}

// ClipBlueprint produces the prompt, specs, motion script and storyboard for
// one idea, reporting progress between steps.
func (s *Studio) ClipBlueprint(ctx context.Context, idea string, progress func(step string, percent int)) schema.ClipBlueprint {
	if progress == nil {
		progress = func(string, int) {}
	}
	var bp schema.ClipBlueprint

	progress("Step 1: Architecting Cinematic Prompt...", 0)
	bp.Prompt = s.VideoPrompt(ctx, idea, "")
	progress("Step 2: Calculating Motion Vectors & Camera Paths...", 30)
	bp.Specs = s.ProductionData(ctx, idea)
	progress("Step 3: Generating 10-Second Automation Script...", 50)
	bp.Motion = s.MotionScript(ctx, idea)
	progress("Step 4: Architecting 10-Second Production Blueprint...", 80)
	bp.Storyboard = s.Storyboard(ctx, idea)
	progress("Cinematic Production Blueprint Complete!", 100)

	bp.Beats = parse.Storyboard(bp.Storyboard)
	for i, beat := range bp.Beats {
		bp.Previews = append(bp.Previews, beat.PreviewURL(s.ImageBaseURL, i))
	}
	return bp
}
