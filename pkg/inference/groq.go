package inference

import (
	"cmp"
	"context"
	"errors"
	"fmt"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

const (
	GroqBaseURL      = "https://api.groq.com/openai/v1"
	GroqDefaultModel = "llama-3.3-70b-versatile"
)

// GroqInferencer talks to Groq's OpenAI-compatible chat completion endpoint.
type GroqInferencer struct {
	client *openai.Client
	apiKey string
	model  string
}

// NewGroqInferencer creates a new inferencer instance using the OpenAI client.
// An empty apiKey is a configuration error.
func NewGroqInferencer(apiKey string, model string) (*GroqInferencer, error) {
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}
	if model == "" {
		model = GroqDefaultModel
	}
	g := &GroqInferencer{
		apiKey: apiKey,
		model:  model,
	}
	g.ChangeBaseURL(GroqBaseURL)
	return g, nil
}

func (o *GroqInferencer) ChangeBaseURL(baseURL string) {
	client := openai.NewClient(
		option.WithAPIKey(o.apiKey),
		option.WithBaseURL(baseURL),
		option.WithMaxRetries(0),
	)
	o.client = &client
}

func (o *GroqInferencer) SetModel(model string) {
	o.model = model
}

func (o *GroqInferencer) Model() string {
	return o.model
}

// Infer sends text to the chat completion endpoint and returns the output.
func (o *GroqInferencer) Infer(ctx context.Context, params *openai.ChatCompletionNewParams, system, user string) (string, error) {
	if params == nil {
		params = new(openai.ChatCompletionNewParams)
	} else {
		p := *params
		params = &p
	}
	params.Model = cmp.Or(params.Model, o.model)
	params.Messages = []openai.ChatCompletionMessageParamUnion{
		openai.SystemMessage(system),
		openai.UserMessage(user),
	}

	params.MaxCompletionTokens = openai.Int(cmp.Or(params.MaxCompletionTokens.Value, MaxOutputTokens))
	params.Temperature = openai.Float(cmp.Or(params.Temperature.Value, Temperature))
	params.TopP = openai.Float(cmp.Or(params.TopP.Value, TopP))

	resp, err := o.client.Chat.Completions.New(ctx, *params)
	if err != nil {
		return "", fmt.Errorf("groq inference error: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("no choices returned")
	}

	return resp.Choices[0].Message.Content, nil
}
