// Package content builds per-report prompts from a questionnaire record and
// obtains narrative text from the generation backend, substituting static
// fallback content on any failure. Requests never surface errors to the
// caller.
package content

import (
	"context"

	"github.com/syedhassan0709/ai-nutrition-training-plan-generator/internal/domain"
	"github.com/syedhassan0709/ai-nutrition-training-plan-generator/internal/llm"
)

// Requester generates narrative content for the three report kinds.
type Requester interface {
	// Request returns generated text for one content type. It is total:
	// any backend failure resolves to the static fallback for that type.
	Request(ctx context.Context, ct domain.ContentType, rec *domain.QuestionnaireRecord) string

	// RequestAll produces the full content set for one record.
	RequestAll(ctx context.Context, rec *domain.QuestionnaireRecord) domain.GeneratedContent

	// TestConnection sends a canned probe through the normal request path
	// and reports whether the backend answered with anything at all.
	TestConnection(ctx context.Context) bool
}

type requester struct {
	client llm.Client
}

// NewRequester creates a Requester backed by client.
func NewRequester(client llm.Client) Requester {
	return &requester{client: client}
}

func (r *requester) Request(ctx context.Context, ct domain.ContentType, rec *domain.QuestionnaireRecord) string {
	resp, err := r.client.Generate(ctx, llm.GenerateRequest{
		ContentType:  ct,
		SystemPrompt: systemPrompt,
		UserPrompt:   BuildPrompt(ct, rec),
	})
	if err != nil || resp.Text == "" {
		return Fallback(ct)
	}
	return resp.Text
}

func (r *requester) RequestAll(ctx context.Context, rec *domain.QuestionnaireRecord) domain.GeneratedContent {
	return domain.GeneratedContent{
		Summary:   r.Request(ctx, domain.ContentSummary, rec),
		Training:  r.Request(ctx, domain.ContentTraining, rec),
		Nutrition: r.Request(ctx, domain.ContentNutrition, rec),
	}
}

func (r *requester) TestConnection(ctx context.Context) bool {
	resp, err := r.client.Generate(ctx, llm.GenerateRequest{
		ContentType:  domain.ContentSummary,
		SystemPrompt: systemPrompt,
		UserPrompt:   connectionProbePrompt,
	})
	return err == nil && resp.Text != ""
}
