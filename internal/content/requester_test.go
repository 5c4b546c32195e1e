package content

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syedhassan0709/ai-nutrition-training-plan-generator/internal/domain"
	"github.com/syedhassan0709/ai-nutrition-training-plan-generator/internal/llm"
)

// mockClient is a canned llm.Client for exercising the requester without a
// network.
type mockClient struct {
	response string
	err      error
	lastReq  llm.GenerateRequest
	calls    int
}

func (m *mockClient) Generate(_ context.Context, req llm.GenerateRequest) (*llm.GenerateResponse, error) {
	m.lastReq = req
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	return &llm.GenerateResponse{Text: m.response}, nil
}

func (m *mockClient) Available(context.Context) bool { return m.err == nil }

func testRecord() *domain.QuestionnaireRecord {
	rec := domain.NewQuestionnaireRecord()
	rec.PersonalInfo["name"] = "John Doe"
	rec.PersonalInfo["age"] = "30"
	rec.FitnessGoals = []string{"lose weight", "gain muscle"}
	rec.ScaleResponses["fitness_level"] = 6
	rec.DietaryPrefs.Restrictions = []string{"vegetarian"}
	rec.Checkboxes["equipment_available"] = []string{"dumbbells", "yoga mat"}
	return rec
}

func TestRequest_PassesThroughModelText(t *testing.T) {
	client := &mockClient{response: "Your assessment shows steady progress."}
	req := NewRequester(client)

	got := req.Request(context.Background(), domain.ContentSummary, testRecord())

	assert.Equal(t, "Your assessment shows steady progress.", got)
	assert.Equal(t, domain.ContentSummary, client.lastReq.ContentType)
	assert.NotEmpty(t, client.lastReq.SystemPrompt)
}

func TestRequest_FallbackOnError(t *testing.T) {
	tests := []struct {
		ct     domain.ContentType
		marker string
	}{
		{domain.ContentSummary, "SUMMARY REPORT"},
		{domain.ContentTraining, "TRAINING PLAN"},
		{domain.ContentNutrition, "NUTRITION PLAN"},
	}

	for _, tt := range tests {
		t.Run(string(tt.ct), func(t *testing.T) {
			client := &mockClient{err: llm.ErrUnavailable}
			req := NewRequester(client)

			got := req.Request(context.Background(), tt.ct, testRecord())

			require.NotEmpty(t, got)
			assert.Contains(t, got, tt.marker)
		})
	}
}

func TestRequest_FallbackOnEmptyResponse(t *testing.T) {
	client := &mockClient{response: ""}
	req := NewRequester(client)

	got := req.Request(context.Background(), domain.ContentTraining, testRecord())

	assert.Contains(t, got, "TRAINING PLAN")
}

func TestRequest_SingleAttemptPerCall(t *testing.T) {
	client := &mockClient{err: llm.ErrTimeout}
	req := NewRequester(client)

	req.Request(context.Background(), domain.ContentSummary, testRecord())

	// No retry loop at this layer: one failed attempt resolves straight to
	// fallback.
	assert.Equal(t, 1, client.calls)
}

func TestRequestAll(t *testing.T) {
	client := &mockClient{response: "generated"}
	req := NewRequester(client)

	got := req.RequestAll(context.Background(), testRecord())

	assert.Equal(t, "generated", got.Summary)
	assert.Equal(t, "generated", got.Training)
	assert.Equal(t, "generated", got.Nutrition)
	assert.Equal(t, 3, client.calls)
}

func TestTestConnection(t *testing.T) {
	ok := NewRequester(&mockClient{response: "Connection successful"})
	assert.True(t, ok.TestConnection(context.Background()))

	empty := NewRequester(&mockClient{response: ""})
	assert.False(t, empty.TestConnection(context.Background()))

	down := NewRequester(&mockClient{err: llm.ErrUnavailable})
	assert.False(t, down.TestConnection(context.Background()))
}

func TestBuildPrompt_Shape(t *testing.T) {
	rec := testRecord()

	tests := []struct {
		ct       domain.ContentType
		contains []string
	}{
		{domain.ContentSummary, []string{"summary report", "PERSONAL INFORMATION:", "SCALE RESPONSES (1-10):", "lose weight, gain muscle", "Format the response"}},
		{domain.ContentTraining, []string{"4-week training plan", "AVAILABLE EQUIPMENT:", "dumbbells, yoga mat", "WEEK-BY-WEEK BREAKDOWN", "Beginner"}},
		{domain.ContentNutrition, []string{"nutrition plan", "DIETARY PREFERENCES & RESTRICTIONS:", "vegetarian", "DAILY NUTRITION TARGETS"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.ct), func(t *testing.T) {
			prompt := BuildPrompt(tt.ct, rec)
			for _, want := range tt.contains {
				assert.Contains(t, prompt, want)
			}
			// Record data is embedded as an indented JSON block.
			assert.Contains(t, prompt, `"name": "John Doe"`)
		})
	}
}

func TestBuildPrompt_EmptyRecordUsesPlaceholders(t *testing.T) {
	rec := domain.NewQuestionnaireRecord()

	summary := BuildPrompt(domain.ContentSummary, rec)
	training := BuildPrompt(domain.ContentTraining, rec)
	nutrition := BuildPrompt(domain.ContentNutrition, rec)

	assert.Contains(t, summary, "Not specified")
	assert.Contains(t, training, "Basic bodyweight exercises")
	assert.Contains(t, training, "Flexible")
	assert.Contains(t, nutrition, "General health")
}

func TestFallback_Total(t *testing.T) {
	for _, ct := range []domain.ContentType{domain.ContentSummary, domain.ContentTraining, domain.ContentNutrition} {
		assert.NotEmpty(t, Fallback(ct))
	}

	unknown := Fallback(domain.ContentType("bogus"))
	assert.True(t, strings.Contains(unknown, "failed"))
}
