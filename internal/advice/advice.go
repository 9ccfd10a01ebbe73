// Package advice asks a generative-text service for financial insights.
//
// The component's error-handling discipline is total containment: every
// outcome resolves to a Result variant the presentation layer can display,
// never an error surfaced to the caller.
package advice

import (
	"context"
	"strings"

	"github.com/amanjot-a/fintrack/internal/common"
	"github.com/amanjot-a/fintrack/internal/model"
)

// recentLimit caps how many transactions are sent, to keep prompts small
// and relevant.
const recentLimit = 50

// Kind discriminates Result variants.
type Kind int

const (
	// KindAdvice means Text holds generated advice.
	KindAdvice Kind = iota
	// KindMissingConfig means no API credential is configured.
	KindMissingConfig
	// KindNoData means there were no transactions to analyze.
	KindNoData
	// KindFailed means the external call failed or returned nothing.
	KindFailed
)

// Result is the outcome of an insights request.
type Result struct {
	Text string
	Kind Kind
}

// Display returns the user-facing text for the result.
func (r Result) Display() string {
	switch r.Kind {
	case KindAdvice:
		return r.Text
	case KindMissingConfig:
		return "API key is missing. Please configure your environment to use AI features."
	case KindNoData:
		return "Please add some transactions to get AI insights."
	default:
		return "Sorry, I encountered an error while analyzing your data. Please try again later."
	}
}

// Service wraps a Generator with the precondition checks and fallback
// behavior of the insights feature. A nil generator means no credential is
// configured.
type Service struct {
	generator Generator
}

// NewService creates an advice service. Pass nil when no API key is
// configured; the service then short-circuits without network access.
func NewService(generator Generator) *Service {
	return &Service{generator: generator}
}

// Insights requests financial advice for the given transactions, which are
// expected in collection order (newest first). It never returns an error:
// failures are folded into the Result.
func (s *Service) Insights(ctx context.Context, transactions []model.Transaction) Result {
	if s.generator == nil {
		return Result{Kind: KindMissingConfig}
	}
	if len(transactions) == 0 {
		return Result{Kind: KindNoData}
	}

	prompt, err := BuildPrompt(transactions, recentLimit)
	if err != nil {
		common.LogError(err, "failed to build insights prompt", nil)
		return Result{Kind: KindFailed}
	}

	text, err := s.generator.Generate(ctx, prompt)
	if err != nil {
		common.LogError(err, "insights request failed", common.Fields{"transactions": len(transactions)})
		return Result{Kind: KindFailed}
	}

	text = strings.TrimSpace(text)
	if text == "" {
		common.LogError(common.ErrEmptyResponse, "insights request failed", nil)
		return Result{Kind: KindFailed}
	}

	return Result{Kind: KindAdvice, Text: text}
}
