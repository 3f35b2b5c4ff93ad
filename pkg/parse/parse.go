// Package parse restructures completion text for display. Every function is
// total: a parse miss falls back to a default instead of failing.
package parse

import (
	"fmt"
	"regexp"
	"strings"
)

// VariationCount is the number of motion variations a video build uses.
const VariationCount = 5

const beatDelimiter = "Title:"

// Beat defaults used when a field cannot be extracted.
const (
	DefaultTimestamp = "N/A"
	DefaultVisual    = "Description pending..."
	DefaultKeywords  = "cinematic"
)

// Beat is one parsed unit of a storyboard breakdown.
type Beat struct {
	Timestamp string `json:"timestamp"`
	Visual    string `json:"visual"`
	Keywords  string `json:"keywords"`
}

var (
	timestampRX = regexp.MustCompile(`Timestamp: (.*?)(?:\n|,)`)
	visualRX    = regexp.MustCompile(`Visual: (.*?)(?:\n|,)`)
	keywordsRX  = regexp.MustCompile(`Keywords: (.*?)(?:\n|$)`)
)

func split(text, sep string) []string {
	var out []string
	for _, part := range strings.Split(text, sep) {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// Labels splits a comma-separated list, trimming and dropping empties.
func Labels(text string) []string {
	return split(text, ",")
}

// Pipes splits a pipe-separated list, trimming and dropping empties.
func Pipes(text string) []string {
	return split(text, "|")
}

// Variations returns exactly VariationCount descriptions. Extra segments are
// dropped; if fewer came back the set degenerates to copies of subject.
func Variations(raw, subject string) []string {
	vs := Pipes(raw)
	if len(vs) < VariationCount {
		vs = make([]string, VariationCount)
		for i := range vs {
			vs[i] = subject
		}
		return vs
	}
	return vs[:VariationCount]
}

// Storyboard parses "Title:"-delimited beats. Text without the delimiter yields
// no beats and callers display it raw.
func Storyboard(text string) []Beat {
	blocks := strings.Split(text, beatDelimiter)
	if len(blocks) < 2 {
		return nil
	}
	beats := make([]Beat, 0, len(blocks)-1)
	for _, block := range blocks[1:] {
		beats = append(beats, Beat{
			Timestamp: extract(timestampRX, block, DefaultTimestamp),
			Visual:    extract(visualRX, block, DefaultVisual),
			Keywords:  extract(keywordsRX, block, DefaultKeywords),
		})
	}
	return beats
}

func extract(rx *regexp.Regexp, block, fallback string) string {
	m := rx.FindStringSubmatch(block)
	if m == nil {
		return fallback
	}
	return strings.TrimSpace(m[1])
}

// PreviewURL links a small generated still for the beat's keywords.
func (b Beat) PreviewURL(baseURL string, seed int) string {
	return fmt.Sprintf("%s/prompt/%s,film,cinematic?width=400&height=300&seed=%d",
		strings.TrimRight(baseURL, "/"), strings.ReplaceAll(b.Keywords, " ", "%20"), seed)
}
