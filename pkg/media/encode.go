package media

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
)

// Encoder turns an ordered list of still images into a silent video.
type Encoder interface {
	Encode(ctx context.Context, frames []string, fps int, output string) error
}

// FFmpegEncoder shells out to the ffmpeg CLI using the concat demuxer, so frame
// files need not be contiguously numbered.
type FFmpegEncoder struct {
	// Path to the ffmpeg binary; looked up on PATH when empty.
	Path string
}

func (e FFmpegEncoder) Encode(ctx context.Context, frames []string, fps int, output string) error {
	if len(frames) == 0 {
		return fmt.Errorf("no frames to encode")
	}
	if fps <= 0 {
		fps = 1
	}

	ffmpegPath := e.Path
	if ffmpegPath == "" {
		var err error
		ffmpegPath, err = exec.LookPath("ffmpeg")
		if err != nil {
			return fmt.Errorf("ffmpeg not found: video stitching requires ffmpeg: %w", err)
		}
	}

	list, err := writeConcatList(frames, fps)
	if err != nil {
		return err
	}
	defer os.Remove(list)

	args := []string{
		"-f", "concat",
		"-safe", "0",
		"-i", list,
		"-vf", fmt.Sprintf("fps=%d,scale=trunc(iw/2)*2:trunc(ih/2)*2,format=yuv420p", fps),
		"-c:v", "libx264",
		"-an",
		"-movflags", "+faststart",
		"-y", output,
	}

	cmd := exec.CommandContext(ctx, ffmpegPath, args...)
	out, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("ffmpeg failed: %w\nOutput: %s", err, string(out))
	}

	info, err := os.Stat(output)
	if err != nil {
		return fmt.Errorf("output video not found after encoding: %w", err)
	}
	log.Debug("video encoded", "output", filepath.Base(output), "frames", len(frames), "size_bytes", info.Size())
	return nil
}

// writeConcatList writes an ffmpeg concat script. The last frame is listed twice
// because the demuxer ignores the duration of the final entry.
func writeConcatList(frames []string, fps int) (string, error) {
	f, err := os.CreateTemp("", "frames-*.txt")
	if err != nil {
		return "", fmt.Errorf("create concat list: %w", err)
	}
	defer f.Close()

	duration := 1.0 / float64(fps)
	var b strings.Builder
	for _, frame := range frames {
		abs, err := filepath.Abs(frame)
		if err != nil {
			abs = frame
		}
		fmt.Fprintf(&b, "file '%s'\nduration %g\n", quoteConcat(abs), duration)
	}
	last, _ := filepath.Abs(frames[len(frames)-1])
	fmt.Fprintf(&b, "file '%s'\n", quoteConcat(last))

	if _, err := f.WriteString(b.String()); err != nil {
		os.Remove(f.Name())
		return "", fmt.Errorf("write concat list: %w", err)
	}
	return f.Name(), nil
}

func quoteConcat(path string) string {
	return strings.ReplaceAll(path, "'", `'\''`)
}
