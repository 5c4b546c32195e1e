package content

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/syedhassan0709/ai-nutrition-training-plan-generator/internal/domain"
)

// systemPrompt frames every generation request.
const systemPrompt = `You are a professional fitness and nutrition expert. Provide detailed, personalized advice based on the questionnaire data provided.`

// connectionProbePrompt is the canned prompt used by the connectivity
// self-test. Any non-empty response counts as success.
const connectionProbePrompt = `Please respond with 'Connection successful' to confirm the LLM is working.`

// BuildPrompt returns the user prompt for a content type. All three prompts
// share the same shape: a context block of questionnaire data, a numbered
// requirements block, and a closing formatting instruction.
func BuildPrompt(ct domain.ContentType, rec *domain.QuestionnaireRecord) string {
	switch ct {
	case domain.ContentTraining:
		return buildTrainingPrompt(rec)
	case domain.ContentNutrition:
		return buildNutritionPrompt(rec)
	default:
		return buildSummaryPrompt(rec)
	}
}

func buildSummaryPrompt(rec *domain.QuestionnaireRecord) string {
	return fmt.Sprintf(`Based on the following questionnaire data, create a comprehensive health and fitness summary report:

PERSONAL INFORMATION:
%s

HEALTH METRICS:
%s

SCALE RESPONSES (1-10):
%s

FITNESS GOALS:
%s

Please provide:
1. A comprehensive assessment of the individual's current health and fitness status
2. Key insights based on their scale responses and metrics
3. Identification of strengths and areas for improvement
4. Recommendations for achieving their stated goals
5. Any potential concerns or considerations

Format the response as a professional report with clear sections and actionable insights.`,
		dumpJSON(rec.PersonalInfo),
		dumpJSON(rec.HealthMetrics),
		dumpJSON(rec.ScaleResponses),
		joinOr(rec.FitnessGoals, "Not specified"))
}

func buildTrainingPrompt(rec *domain.QuestionnaireRecord) string {
	return fmt.Sprintf(`Create a personalized 4-week training plan based on this information:

PERSONAL INFO:
%s

FITNESS GOALS:
%s

FITNESS LEVEL & METRICS:
%s

AVAILABLE EQUIPMENT:
%s

EXPERIENCE LEVEL:
%s

PREFERRED WORKOUT TIMES:
%s

Please create a detailed 4-week progressive training plan including:

1. WEEK-BY-WEEK BREAKDOWN:
   - Weekly schedule (days per week, duration)
   - Specific exercises with sets, reps, and progression
   - Rest days and recovery protocols

2. EXERCISE DESCRIPTIONS:
   - Proper form cues for key exercises
   - Modifications for different fitness levels
   - Safety considerations

3. PROGRESSION STRATEGY:
   - How to increase intensity each week
   - When and how to add new exercises
   - Signs to progress or regress

4. RECOVERY AND MOBILITY:
   - Warm-up routines
   - Cool-down stretches
   - Rest day activities

Format as a clear, actionable plan that can be followed step-by-step.`,
		dumpJSON(rec.PersonalInfo),
		joinOr(rec.FitnessGoals, "General fitness"),
		dumpJSON(rec.ScaleResponses),
		joinOr(rec.Equipment(), "Basic bodyweight exercises"),
		joinOr(rec.ExperienceLevel(), "Beginner"),
		joinOr(rec.WorkoutTimes(), "Flexible"))
}

func buildNutritionPrompt(rec *domain.QuestionnaireRecord) string {
	return fmt.Sprintf(`Create a personalized nutrition plan based on this information:

PERSONAL INFO:
%s

HEALTH METRICS:
%s

FITNESS GOALS:
%s

DIETARY PREFERENCES & RESTRICTIONS:
%s

ADDITIONAL NOTES:
%s

Please create a comprehensive nutrition plan including:

1. DAILY NUTRITION TARGETS:
   - Estimated daily caloric needs
   - Macronutrient breakdown (protein, carbs, fats)
   - Key micronutrients to focus on

2. MEAL PLANNING:
   - Sample daily meal plan
   - Pre and post-workout nutrition
   - Healthy snack options
   - Hydration guidelines

3. FOOD RECOMMENDATIONS:
   - Best protein sources for their goals
   - Complex carbohydrates to include
   - Healthy fats to incorporate
   - Vegetables and fruits to prioritize

4. MEAL PREP STRATEGIES:
   - Weekly meal prep tips
   - Quick and healthy meal ideas
   - Portion control guidelines

5. SUPPLEMENTS (if appropriate):
   - Evidence-based supplement recommendations
   - Timing and dosage suggestions

6. SPECIAL CONSIDERATIONS:
   - Account for any dietary restrictions or allergies
   - Adaptations for their specific goals
   - Tips for dining out and social situations

Format as a practical, easy-to-follow nutrition guide.`,
		dumpJSON(rec.PersonalInfo),
		dumpJSON(rec.HealthMetrics),
		joinOr(rec.FitnessGoals, "General health"),
		dumpJSON(rec.DietaryPrefs),
		dumpJSON(rec.FreeTextResponses))
}

// dumpJSON renders a sub-structure as an indented block for prompt
// embedding. Marshal failures degrade to an empty object; prompts must
// never fail to build.
func dumpJSON(v any) string {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "{}"
	}
	return string(data)
}

func joinOr(items []string, fallback string) string {
	if len(items) == 0 {
		return fallback
	}
	return strings.Join(items, ", ")
}
