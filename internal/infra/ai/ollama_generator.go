// Package ai implements the generative review assistant on top of a local or
// hosted Ollama instance.
package ai

import (
	"bytes"
	"context"
	"net/http"
	"net/url"
	"strings"
	"text/template"
	"time"

	"vouch/config"
	"vouch/internal/domain/service"

	"github.com/ollama/ollama/api"
	"github.com/pkg/errors"
)

const (
	defaultTimeout     = 30 * time.Second
	defaultTemperature = 0.8
	defaultMaxTokens   = 300
)

// reviewPromptTemplate mirrors the structured prompt the product uses for
// draft generation. Keywords and emotions are joined verbatim; the output is
// always a draft the user edits before submission.
const reviewPromptTemplate = `Write a genuine, authentic 3-5 sentence customer review for {{.CompanyName}}, a {{.ServiceType}} business.

The review should incorporate these keywords naturally: {{.Keywords}}
The reviewer's emotional tone should reflect: {{.Emotions}}

Write in first person as if you are a real customer sharing your experience with their {{.ServiceType}} service. Be specific and authentic. Do not use overly promotional language.`

type ollamaGenerator struct {
	client      *api.Client
	model       string
	timeout     time.Duration
	temperature float64
	maxTokens   int
	tmpl        *template.Template
}

// NewOllamaGenerator creates a ReviewGenerator backed by the Ollama API.
func NewOllamaGenerator(cfg *config.AssistantConfig) (service.ReviewGenerator, error) {
	if cfg == nil {
		return nil, errors.New("assistant configuration is required")
	}

	baseURL, err := url.ParseRequestURI(cfg.BaseURL)
	if err != nil {
		return nil, errors.Wrap(err, "invalid assistant base URL")
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	temperature := cfg.Temperature
	if temperature == 0 {
		temperature = defaultTemperature
	}
	maxTokens := cfg.MaxTokens
	if maxTokens <= 0 {
		maxTokens = defaultMaxTokens
	}

	tmpl, err := template.New("review-prompt").Parse(reviewPromptTemplate)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse review prompt template")
	}

	return &ollamaGenerator{
		client:      api.NewClient(baseURL, &http.Client{Timeout: timeout}),
		model:       cfg.Model,
		timeout:     timeout,
		temperature: temperature,
		maxTokens:   maxTokens,
		tmpl:        tmpl,
	}, nil
}

// GenerateReview renders the fixed prompt template and performs a single
// non-streaming generate call. Errors are returned as-is so the usecase can
// classify them as retryable upstream failures; an empty completion is also
// an error, never silently passed through.
func (g *ollamaGenerator) GenerateReview(ctx context.Context, prompt *service.ReviewPrompt) (string, error) {
	rendered, err := g.renderPrompt(prompt)
	if err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	stream := false
	req := &api.GenerateRequest{
		Model:  g.model,
		Prompt: rendered,
		Stream: &stream,
		Options: map[string]any{
			"temperature": g.temperature,
			"num_predict": g.maxTokens,
		},
	}

	var completion strings.Builder
	err = g.client.Generate(ctx, req, func(resp api.GenerateResponse) error {
		completion.WriteString(resp.Response)

		return nil
	})
	if err != nil {
		return "", errors.Wrap(err, "generate call failed")
	}

	text := strings.TrimSpace(completion.String())
	if text == "" {
		return "", errors.New("provider returned an empty completion")
	}

	return text, nil
}

func (g *ollamaGenerator) renderPrompt(prompt *service.ReviewPrompt) (string, error) {
	if prompt == nil {
		return "", errors.New("prompt is required")
	}

	var buf bytes.Buffer
	data := struct {
		CompanyName string
		ServiceType string
		Keywords    string
		Emotions    string
	}{
		CompanyName: prompt.CompanyName,
		ServiceType: prompt.ServiceType,
		Keywords:    strings.Join(prompt.Keywords, ", "),
		Emotions:    strings.Join(prompt.Emotions, ", "),
	}
	if err := g.tmpl.Execute(&buf, data); err != nil {
		return "", errors.Wrap(err, "failed to render review prompt")
	}

	return buf.String(), nil
}
