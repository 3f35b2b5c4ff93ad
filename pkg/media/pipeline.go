// Package media assembles a short silent video from generated stills: motion
// variations come from the completion endpoint, one image is fetched per
// variation, and the acquired frames are stitched at one frame per second.
package media

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/segmentio/ksuid"

	"scriptoria/pkg/completion"
	"scriptoria/pkg/parse"
	"scriptoria/pkg/prompts"
)

const (
	DefaultScratchDir = "v_temp_frames"
	DefaultOutput     = "generated_video.mp4"
	FramesPerSecond   = 1
)

var ErrNoFrames = errors.New("Failed to generate visual frames.")

// Progress receives human-readable status lines. It cannot stop a build.
type Progress func(status string)

// Frame is one fetched still bound to its scratch file.
type Frame struct {
	Index int
	Path  string
}

type Pipeline struct {
	Completer completion.Completer
	Fetcher   *Fetcher
	Encoder   Encoder

	// ScratchDir holds one uniquely named subdirectory per build.
	ScratchDir string
	// Output is overwritten by every build.
	Output string
	// Poster writes a WebP still of the first frame next to Output.
	Poster bool

	now func() time.Time
}

func NewPipeline(c completion.Completer, f *Fetcher, e Encoder) *Pipeline {
	return &Pipeline{
		Completer:  c,
		Fetcher:    f,
		Encoder:    e,
		ScratchDir: DefaultScratchDir,
		Output:     DefaultOutput,
		now:        time.Now,
	}
}

// Variations asks for five pipe-separated motion variations of subject and
// normalises the answer to exactly five entries.
func (p *Pipeline) Variations(ctx context.Context, subject string) []string {
	system, user, _ := prompts.Build(prompts.MotionVariations, prompts.Fields{Subject: subject})
	raw := p.Completer.Complete(ctx, system, user)
	return parse.Variations(raw, subject)
}

// Render runs a full build and returns the output video path.
func (p *Pipeline) Render(ctx context.Context, subject string, progress Progress) (string, error) {
	if progress == nil {
		progress = func(string) {}
	}

	variations := p.Variations(ctx, subject)

	buildDir := filepath.Join(p.ScratchDir, ksuid.New().String())
	if err := os.MkdirAll(buildDir, 0o755); err != nil {
		return "", fmt.Errorf("create scratch dir: %w", err)
	}

	frames := p.acquire(ctx, buildDir, variations, progress)
	defer cleanup(buildDir, frames)

	if len(frames) == 0 {
		return "", ErrNoFrames
	}

	progress(fmt.Sprintf("Finalizing Cinematic Render (Stitching %ds Sequence)...", len(variations)))

	paths := make([]string, len(frames))
	for i, f := range frames {
		paths[i] = f.Path
	}
	if err := p.Encoder.Encode(ctx, paths, FramesPerSecond, p.Output); err != nil {
		return "", fmt.Errorf("Video Stitching Error: %w", err)
	}

	if p.Poster {
		if err := writePoster(paths[0], PosterPath(p.Output)); err != nil {
			log.Warn("poster not written", "error", err)
		}
	}

	log.Info("video rendered", "output", p.Output, "frames", len(frames))
	return p.Output, nil
}

// acquire fetches one frame per variation in order. A failed frame is logged and
// skipped.
func (p *Pipeline) acquire(ctx context.Context, dir string, variations []string, progress Progress) []Frame {
	base := p.now().Unix()
	frames := make([]Frame, 0, len(variations))
	for i, v := range variations {
		label := []rune(v)
		if len(label) > 50 {
			label = label[:50]
		}
		progress(fmt.Sprintf("Synthesizing Frame %d/%d: %s...", i+1, len(variations), string(label)))

		data, err := p.Fetcher.Fetch(ctx, p.Fetcher.FrameURL(v, base+int64(i)))
		if err != nil {
			log.Warn("frame download failed", "frame", i, "error", err)
			continue
		}
		path := filepath.Join(dir, fmt.Sprintf("frame_%d.jpg", i))
		if err := os.WriteFile(path, data, 0o644); err != nil {
			log.Warn("frame write failed", "frame", i, "error", err)
			continue
		}
		frames = append(frames, Frame{Index: i, Path: path})
	}
	return frames
}

// cleanup removes every frame and the build directory. Errors are ignored.
func cleanup(dir string, frames []Frame) {
	for _, f := range frames {
		_ = os.Remove(f.Path)
	}
	_ = os.Remove(dir)
}
