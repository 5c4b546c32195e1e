package content

import "github.com/syedhassan0709/ai-nutrition-training-plan-generator/internal/domain"

// Fallback returns the static canned text for a content type. It is a total
// function, independent of the request machinery: every known content type
// maps to a fixed report, and unknown types get a generic notice.
func Fallback(ct domain.ContentType) string {
	if text, ok := fallbackContent[ct]; ok {
		return text
	}
	return "Content generation failed. Please check your LLM configuration."
}

var fallbackContent = map[domain.ContentType]string{
	domain.ContentSummary: `HEALTH & FITNESS SUMMARY REPORT

Thank you for completing the questionnaire. Based on your responses, here are some general recommendations:

CURRENT STATUS:
Your questionnaire responses have been recorded and will be used to create personalized recommendations.

KEY RECOMMENDATIONS:
1. Maintain consistency with your current exercise routine
2. Focus on balanced nutrition with adequate protein intake
3. Ensure proper hydration throughout the day
4. Prioritize quality sleep for recovery
5. Track your progress regularly

NEXT STEPS:
1. Review your detailed training plan
2. Follow the personalized nutrition guidelines
3. Monitor your progress weekly
4. Adjust plans as needed based on results

Note: This is a basic summary. For detailed recommendations, please ensure your LLM connection is working properly.`,

	domain.ContentTraining: `PERSONALIZED TRAINING PLAN

GENERAL 4-WEEK TRAINING PROGRAM

WEEK 1-2: Foundation Building
- 3-4 workouts per week
- Focus on form and movement patterns
- 2-3 sets of 8-12 repetitions
- Rest 48-72 hours between sessions

WEEK 3-4: Progressive Overload
- 4-5 workouts per week
- Increase intensity and volume
- 3-4 sets of 6-15 repetitions
- Include variety in exercises

SAMPLE WORKOUT STRUCTURE:
1. Warm-up (10 minutes)
2. Strength training (30-45 minutes)
3. Cardio (15-20 minutes)
4. Cool-down and stretching (10 minutes)

BASIC EXERCISES:
- Bodyweight squats
- Push-ups (modified as needed)
- Planks
- Walking or light jogging
- Basic stretching routine

Note: This is a general plan. For personalized recommendations, please ensure your LLM connection is working properly.`,

	domain.ContentNutrition: `PERSONALIZED NUTRITION PLAN

GENERAL NUTRITION GUIDELINES

DAILY NUTRITION FRAMEWORK:
- Eat 3 balanced meals and 2 healthy snacks
- Include protein with every meal
- Fill half your plate with vegetables
- Choose whole grains over refined carbs
- Stay hydrated with 8+ glasses of water daily

SAMPLE DAILY MEAL STRUCTURE:

BREAKFAST:
- Protein source (eggs, Greek yogurt, protein smoothie)
- Complex carbs (oatmeal, whole grain toast)
- Fruits and/or vegetables

LUNCH:
- Lean protein (chicken, fish, legumes)
- Vegetables (variety of colors)
- Healthy carbs (quinoa, brown rice, sweet potato)

DINNER:
- Protein source
- Large portion of vegetables
- Moderate healthy carbs
- Small amount of healthy fats

SNACKS:
- Nuts and fruits
- Vegetables with hummus
- Greek yogurt with berries

GENERAL TIPS:
- Plan meals in advance
- Prep ingredients on weekends
- Listen to hunger and fullness cues
- Allow for occasional treats in moderation

Note: This is a general plan. For personalized recommendations, please ensure your LLM connection is working properly.`,
}
