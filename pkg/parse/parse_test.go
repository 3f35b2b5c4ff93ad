package parse

import (
	"slices"
	"strings"
	"testing"
)

func TestLabels(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"Thunder, Heavy Rain, Footsteps", []string{"Thunder", "Heavy Rain", "Footsteps"}},
		{"Thunder, Heavy Rain, Footsteps,", []string{"Thunder", "Heavy Rain", "Footsteps"}},
		{" Rain ,, rain ", []string{"Rain", "rain"}},
		{"", nil},
	}
	for _, tt := range tests {
		if got := Labels(tt.in); !slices.Equal(got, tt.want) {
			t.Errorf("Labels(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestVariationsAlwaysFive(t *testing.T) {
	subject := "Ocean at dusk"
	tests := []struct {
		name     string
		raw      string
		wantHead string
	}{
		{"zero segments", "", subject},
		{"three segments", "a|b|c", subject},
		{"five segments", "a|b|c|d|e", "a"},
		{"nine segments", "a|b|c|d|e|f|g|h|i", "a"},
		{"five with blanks", "a| |b|c||d|e", "a"},
		{"error text", "Error: connection refused", subject},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Variations(tt.raw, subject)
			if len(got) != VariationCount {
				t.Fatalf("len = %d, want %d", len(got), VariationCount)
			}
			if got[0] != tt.wantHead {
				t.Errorf("first = %q, want %q", got[0], tt.wantHead)
			}
		})
	}
}

func TestVariationsPadWithSubjectNotCycle(t *testing.T) {
	got := Variations("Ocean waves|Seagull flying", "Coastline")
	want := []string{"Coastline", "Coastline", "Coastline", "Coastline", "Coastline"}
	if !slices.Equal(got, want) {
		t.Errorf("got %q, want %q", got, want)
	}

	got = Variations("a|b|c|d|e|f|g|h|i", "x")
	if !slices.Equal(got, []string{"a", "b", "c", "d", "e"}) {
		t.Errorf("got %q", got)
	}
}

func TestStoryboard(t *testing.T) {
	text := `Here is your storyboard.
Title: Beat 1, Timestamp: 0-2s, Visual: A dragon rises over the frozen city, Keywords: dragon, ice, night
Title: Beat 2
Timestamp: 2-5s
Visual: Blue fire lights the towers
Keywords: fire, towers
Title: Beat 3 with nothing else`

	beats := Storyboard(text)
	if len(beats) != 3 {
		t.Fatalf("expected 3 beats, got %d: %+v", len(beats), beats)
	}

	if beats[0].Timestamp != "0-2s" || beats[0].Visual != "A dragon rises over the frozen city" || beats[0].Keywords != "dragon, ice, night" {
		t.Errorf("beat 1 = %+v", beats[0])
	}
	if beats[1].Timestamp != "2-5s" || beats[1].Visual != "Blue fire lights the towers" || beats[1].Keywords != "fire, towers" {
		t.Errorf("beat 2 = %+v", beats[1])
	}
	if beats[2] != (Beat{Timestamp: DefaultTimestamp, Visual: DefaultVisual, Keywords: DefaultKeywords}) {
		t.Errorf("beat 3 should use defaults, got %+v", beats[2])
	}
}

func TestStoryboardWithoutTitles(t *testing.T) {
	for _, text := range []string{"", "Timestamp: 0-2s, Visual: something", strings.Repeat("beat ", 20)} {
		if beats := Storyboard(text); len(beats) != 0 {
			t.Errorf("Storyboard(%q) = %+v, want no beats", text, beats)
		}
	}
}

func TestBeatPreviewURL(t *testing.T) {
	b := Beat{Keywords: "dragon, ice night"}
	got := b.PreviewURL("https://image.example/", 2)
	want := "https://image.example/prompt/dragon,%20ice%20night,film,cinematic?width=400&height=300&seed=2"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
