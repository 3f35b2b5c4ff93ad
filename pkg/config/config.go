package config

import (
	"context"
	"os"
	"strings"

	"github.com/charmbracelet/log"

	"scriptoria/pkg/inference"
	"scriptoria/pkg/media"
)

const (
	ProviderGroq   = "groq"
	ProviderGemini = "gemini"

	DefaultPort         = "8080"
	DefaultProjectsFile = "Projects.json"
	DefaultQueueSize    = 8
)

// Config holds everything read from the environment (and .env).
type Config struct {
	Provider     string
	GroqAPIKey   string
	GroqModel    string
	GroqBaseURL  string
	GeminiAPIKey string
	GeminiModel  string

	ImageBaseURL string
	ScratchDir   string
	VideoOutput  string
	FFmpegPath   string
	Poster       bool

	ProjectsFile string
	Port         string
	LogLevel     string
}

func Load() *Config {
	return &Config{
		Provider:     strings.ToLower(getEnv("SCRIPTORIA_PROVIDER", ProviderGroq)),
		GroqAPIKey:   getEnv("GROQ_API_KEY", ""),
		GroqModel:    getEnv("GROQ_MODEL", inference.GroqDefaultModel),
		GroqBaseURL:  getEnv("GROQ_BASE_URL", inference.GroqBaseURL),
		GeminiAPIKey: getEnv("GEMINI_API_KEY", ""),
		GeminiModel:  getEnv("GEMINI_MODEL", inference.GeminiDefaultModel),

		ImageBaseURL: getEnv("IMAGE_BASE_URL", media.DefaultImageBaseURL),
		ScratchDir:   getEnv("SCRATCH_DIR", media.DefaultScratchDir),
		VideoOutput:  getEnv("VIDEO_OUTPUT", media.DefaultOutput),
		FFmpegPath:   getEnv("FFMPEG_PATH", ""),
		Poster:       getBool("VIDEO_POSTER", true),

		ProjectsFile: getEnv("PROJECTS_FILE", DefaultProjectsFile),
		Port:         getEnv("PORT", DefaultPort),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
	}
}

// Inferencer builds the configured provider. A missing key is fatal to the caller.
func (c *Config) Inferencer(ctx context.Context) (inference.Inferencer, error) {
	if c.Provider == ProviderGemini {
		return inference.NewGeminiInferencer(ctx, c.GeminiAPIKey, c.GeminiModel)
	}
	g, err := inference.NewGroqInferencer(c.GroqAPIKey, c.GroqModel)
	if err != nil {
		return nil, err
	}
	if c.GroqBaseURL != inference.GroqBaseURL {
		g.ChangeBaseURL(c.GroqBaseURL)
	}
	return g, nil
}

// Level maps LOG_LEVEL onto a charmbracelet level, defaulting to info.
func (c *Config) Level() log.Level {
	lvl, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v)
	}
	return fallback
}

func getBool(key string, fallback bool) bool {
	switch strings.ToLower(getEnv(key, "")) {
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	}
	return fallback
}
