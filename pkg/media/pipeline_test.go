package media

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/jpeg"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"
)

type fixedCompleter struct {
	out  string
	user string
}

func (f *fixedCompleter) Complete(ctx context.Context, system, user string) string {
	f.user = user
	return f.out
}

type recordingEncoder struct {
	frames  []string
	existed []bool
	fps     int
	err     error
}

func (r *recordingEncoder) Encode(ctx context.Context, frames []string, fps int, output string) error {
	r.frames = append([]string(nil), frames...)
	r.fps = fps
	for _, f := range frames {
		_, err := os.Stat(f)
		r.existed = append(r.existed, err == nil)
	}
	if r.err != nil {
		return r.err
	}
	return os.WriteFile(output, []byte("mp4"), 0o644)
}

func jpegBytes(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 16, 9))
	for x := 0; x < 16; x++ {
		for y := 0; y < 9; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x * 10), G: 80, B: 160, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, nil); err != nil {
		t.Fatalf("encode jpeg: %v", err)
	}
	return buf.Bytes()
}

// imageServer answers 200 unless the requested prompt contains one of the failing words.
func imageServer(t *testing.T, failing ...string) (*httptest.Server, *[]string) {
	t.Helper()
	body := jpegBytes(t)
	var mu sync.Mutex
	var paths []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		paths = append(paths, r.URL.RequestURI())
		mu.Unlock()
		for _, word := range failing {
			if strings.Contains(r.URL.Path, word) {
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
		}
		w.Header().Set("Content-Type", "image/jpeg")
		w.Write(body)
	}))
	t.Cleanup(srv.Close)
	return srv, &paths
}

func newTestPipeline(t *testing.T, c *fixedCompleter, srv *httptest.Server, enc Encoder) *Pipeline {
	t.Helper()
	dir := t.TempDir()
	p := NewPipeline(c, NewFetcher(srv.URL), enc)
	p.ScratchDir = filepath.Join(dir, "scratch")
	p.Output = filepath.Join(dir, "generated_video.mp4")
	p.now = func() time.Time { return time.Unix(1700000000, 0) }
	return p
}

func TestRenderPartialFrames(t *testing.T) {
	srv, requests := imageServer(t, "one", "three")
	enc := &recordingEncoder{}
	c := &fixedCompleter{out: "frame zero | frame one | frame two | frame three | frame four"}
	p := newTestPipeline(t, c, srv, enc)

	var statuses []string
	out, err := p.Render(context.Background(), "A lighthouse", func(s string) { statuses = append(statuses, s) })
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if out != p.Output {
		t.Errorf("output = %q, want %q", out, p.Output)
	}
	if c.user != "A lighthouse" {
		t.Errorf("variation prompt user turn = %q", c.user)
	}

	if len(enc.frames) != 3 {
		t.Fatalf("encoder got %d frames, want 3: %v", len(enc.frames), enc.frames)
	}
	for i, want := range []string{"frame_0.jpg", "frame_2.jpg", "frame_4.jpg"} {
		if filepath.Base(enc.frames[i]) != want {
			t.Errorf("frame %d = %s, want %s", i, enc.frames[i], want)
		}
		if !enc.existed[i] {
			t.Errorf("frame %s missing at encode time", enc.frames[i])
		}
		if _, err := os.Stat(enc.frames[i]); !os.IsNotExist(err) {
			t.Errorf("frame %s not cleaned up", enc.frames[i])
		}
	}
	if enc.fps != 1 {
		t.Errorf("fps = %d, want 1", enc.fps)
	}

	entries, _ := os.ReadDir(p.ScratchDir)
	if len(entries) != 0 {
		t.Errorf("scratch dir should be empty, found %d entries", len(entries))
	}

	if len(*requests) != 5 {
		t.Fatalf("expected 5 sequential fetches, got %d", len(*requests))
	}
	first := (*requests)[0]
	if !strings.HasPrefix(first, "/prompt/frame%20zero?") {
		t.Errorf("unexpected frame url %q", first)
	}
	for _, q := range []string{"width=1024", "height=576", "nologo=true", "seed=1700000000"} {
		if !strings.Contains(first, q) {
			t.Errorf("frame url %q missing %q", first, q)
		}
	}
	if !strings.Contains((*requests)[4], "seed=1700000004") {
		t.Errorf("last frame seed wrong: %q", (*requests)[4])
	}

	if len(statuses) != 6 {
		t.Fatalf("expected 6 progress updates, got %v", statuses)
	}
	if statuses[0] != "Synthesizing Frame 1/5: frame zero..." {
		t.Errorf("first status = %q", statuses[0])
	}
	if !strings.HasPrefix(statuses[5], "Finalizing Cinematic Render") {
		t.Errorf("last status = %q", statuses[5])
	}
}

func TestRenderNoFrames(t *testing.T) {
	srv, _ := imageServer(t, "prompt")
	enc := &recordingEncoder{}
	p := newTestPipeline(t, &fixedCompleter{out: "Error: 503 service unavailable"}, srv, enc)

	out, err := p.Render(context.Background(), "A lighthouse", nil)
	if out != "" {
		t.Errorf("expected empty path, got %q", out)
	}
	if !errors.Is(err, ErrNoFrames) || err.Error() != "Failed to generate visual frames." {
		t.Fatalf("unexpected error %v", err)
	}
	if enc.frames != nil {
		t.Error("encoder must not run without frames")
	}
}

func TestRenderEncoderFailureCleansUp(t *testing.T) {
	srv, _ := imageServer(t)
	enc := &recordingEncoder{err: errors.New("codec exploded")}
	p := newTestPipeline(t, &fixedCompleter{out: "a|b|c"}, srv, enc)

	_, err := p.Render(context.Background(), "Storm over the sea", nil)
	if err == nil || !strings.HasPrefix(err.Error(), "Video Stitching Error: ") {
		t.Fatalf("unexpected error %v", err)
	}
	if len(enc.frames) != 5 {
		t.Fatalf("expected all 5 frames, got %d", len(enc.frames))
	}
	for _, f := range enc.frames {
		if _, err := os.Stat(f); !os.IsNotExist(err) {
			t.Errorf("frame %s left behind", f)
		}
	}
}

func TestRenderWritesPoster(t *testing.T) {
	srv, _ := imageServer(t)
	p := newTestPipeline(t, &fixedCompleter{out: "a|b|c|d|e"}, srv, &recordingEncoder{})
	p.Poster = true

	if _, err := p.Render(context.Background(), "Dunes", nil); err != nil {
		t.Fatalf("render: %v", err)
	}
	info, err := os.Stat(PosterPath(p.Output))
	if err != nil {
		t.Fatalf("poster missing: %v", err)
	}
	if info.Size() == 0 {
		t.Error("poster is empty")
	}
}

func TestCleanPrompt(t *testing.T) {
	tests := []struct{ in, want string }{
		{"Drone shot, golden hour!", "Drone%20shot%20golden%20hour"},
		{"neon/rain #2", "neonrain%202"},
		{"E = mc² ½ mile", "E%20%20mc²%20½%20mile"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := CleanPrompt(tt.in); got != tt.want {
			t.Errorf("CleanPrompt(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestPosterPath(t *testing.T) {
	if got := PosterPath("out/generated_video.mp4"); got != "out/generated_video.webp" {
		t.Errorf("got %q", got)
	}
}
