// Package inference provides the zero-shot model adapter implementing the
// ZeroShotClassifier outbound port.
package inference

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"triage_server/core/domain"
	"triage_server/pkg/logger"

	"github.com/goccy/go-json"
	openai "github.com/sashabaranov/go-openai"
	"github.com/sony/gobreaker"
)

const DefaultModel = "gpt-4o-mini"

const (
	defaultTimeout       = 60 * time.Second
	defaultMaxConcurrent = 4
	maxTextLen           = 2000
)

const systemPrompt = `You are a zero-shot text classifier for customer support messages written in Portuguese.
Given a message and a list of candidate labels, estimate how strongly the message matches each label.

Respond with JSON only, in this exact format:
{"scores": {"<label>": <probability>}}

Every candidate label must appear exactly once as a key. Probabilities are
values in [0,1] and must sum to 1.`

// Config holds adapter configuration.
type Config struct {
	APIKey        string
	Model         string
	Timeout       time.Duration
	MaxConcurrent int
}

// ZeroShotAdapter calls a chat-completion model to score candidate labels.
// Model calls are CPU-bound on the provider side and slow; a slot channel
// bounds how many run at once so they never starve request bookkeeping.
type ZeroShotAdapter struct {
	client  *openai.Client
	model   string
	timeout time.Duration
	cb      *gobreaker.CircuitBreaker
	slots   chan struct{}
}

// NewZeroShotAdapter creates an adapter backed by the OpenAI API.
func NewZeroShotAdapter(cfg Config) *ZeroShotAdapter {
	model := cfg.Model
	if model == "" {
		model = DefaultModel
	}
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = defaultTimeout
	}
	maxConcurrent := cfg.MaxConcurrent
	if maxConcurrent <= 0 {
		maxConcurrent = defaultMaxConcurrent
	}

	cbSettings := gobreaker.Settings{
		Name:        "zero-shot-inference",
		MaxRequests: 3,
		Interval:    60 * time.Second,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.ConsecutiveFailures > 5 ||
				(counts.Requests >= 10 && failureRatio >= 0.6)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("Circuit breaker %s: state changed from %s to %s", name, from.String(), to.String())
		},
	}

	return &ZeroShotAdapter{
		client:  openai.NewClient(cfg.APIKey),
		model:   model,
		timeout: timeout,
		cb:      gobreaker.NewCircuitBreaker(cbSettings),
		slots:   make(chan struct{}, maxConcurrent),
	}
}

// Rank scores the text against every candidate label and returns the full
// set sorted by descending score, as the port requires.
func (a *ZeroShotAdapter) Rank(ctx context.Context, text string, candidates []string) ([]domain.RankedLabel, error) {
	select {
	case a.slots <- struct{}{}:
		defer func() { <-a.slots }()
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	userPrompt := fmt.Sprintf("Candidate labels: %s\n\nMessage:\n%s",
		strings.Join(candidates, ", "), truncateText(text, maxTextLen))

	raw, err := a.cb.Execute(func() (any, error) {
		resp, err := a.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
			Model: a.model,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleSystem,
					Content: systemPrompt,
				},
				{
					Role:    openai.ChatMessageRoleUser,
					Content: userPrompt,
				},
			},
			ResponseFormat: &openai.ChatCompletionResponseFormat{
				Type: openai.ChatCompletionResponseFormatTypeJSONObject,
			},
		})
		if err != nil {
			return nil, err
		}
		if len(resp.Choices) == 0 {
			return nil, errors.New("model returned no choices")
		}
		return resp.Choices[0].Message.Content, nil
	})
	if err != nil {
		return nil, fmt.Errorf("zero-shot inference failed: %w", err)
	}

	return parseRankedLabels(raw.(string), candidates)
}

// parseRankedLabels validates the model output against the candidate set
// and sorts it descending by score, enforcing the port's ordering contract
// at the boundary.
func parseRankedLabels(raw string, candidates []string) ([]domain.RankedLabel, error) {
	raw = strings.TrimSpace(raw)
	raw = strings.TrimPrefix(raw, "```json")
	raw = strings.TrimSuffix(raw, "```")
	raw = strings.TrimSpace(raw)

	var payload struct {
		Scores map[string]float64 `json:"scores"`
	}
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return nil, fmt.Errorf("failed to parse model output: %w", err)
	}

	ranked := make([]domain.RankedLabel, 0, len(candidates))
	for _, label := range candidates {
		score, ok := payload.Scores[label]
		if !ok {
			return nil, fmt.Errorf("model output missing candidate label %q", label)
		}
		if score < 0 || score > 1 {
			return nil, fmt.Errorf("model score for %q out of range: %v", label, score)
		}
		ranked = append(ranked, domain.RankedLabel{Label: label, Score: score})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	return ranked, nil
}

func truncateText(text string, maxLen int) string {
	if len(text) <= maxLen {
		return text
	}
	// Back off to a rune boundary so a multi-byte character is never
	// split mid-sequence.
	cut := maxLen
	for cut > 0 && !utf8.RuneStart(text[cut]) {
		cut--
	}
	return text[:cut] + "..."
}
