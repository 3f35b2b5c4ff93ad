package media

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/gen2brain/webp"
)

// PosterPath returns the WebP poster path that sits next to a video.
func PosterPath(video string) string {
	return strings.TrimSuffix(video, filepath.Ext(video)) + ".webp"
}

// writePoster re-encodes a still frame as WebP.
func writePoster(frame, output string) error {
	data, err := os.ReadFile(frame)
	if err != nil {
		return fmt.Errorf("read frame: %w", err)
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("decode frame: %w", err)
	}

	buf := new(bytes.Buffer)
	if err := webp.Encode(buf, img, webp.Options{Lossless: false, Quality: 90}); err != nil {
		return fmt.Errorf("failed to encode webp: %w", err)
	}
	if err := os.WriteFile(output, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write file %s: %w", output, err)
	}
	return nil
}
