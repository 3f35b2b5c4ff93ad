package inference

import (
	"context"
	"errors"

	"github.com/openai/openai-go/v3"
)

// Sampling parameters shared by every provider.
const (
	Temperature     = 0.7
	TopP            = 1.0
	MaxOutputTokens = 2048
)

var ErrMissingAPIKey = errors.New("API key not found: set it in the environment or .env file")

// Inferencer defines an interface for running a single chat completion.
type Inferencer interface {
	Infer(ctx context.Context, params *openai.ChatCompletionNewParams, system, user string) (string, error)
}
