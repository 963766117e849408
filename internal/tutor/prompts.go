package tutor

import (
	"fmt"
	"strings"

	"github.com/curioquest/backend/internal/models"
)

const basePrompt = `You are Curio, a friendly and encouraging AI teacher for middle and high school students. You explain concepts clearly, use age-appropriate language, and celebrate effort. Keep answers focused and under 200 words. When a student is stuck, guide them with questions rather than giving the answer away.`

const hintPrompt = `The student is asking for a hint on a quiz question. Do NOT reveal the answer. Give a single nudge that points them toward the right way of thinking about the problem, in two sentences or less.`

// SystemPrompt assembles the tutor persona plus whatever is known about
// the student. A nil context produces the bare persona.
func SystemPrompt(lc *models.LearningContext, isHintRequest bool) string {
	var b strings.Builder
	b.WriteString(basePrompt)

	if lc != nil {
		b.WriteString("\n\nAbout this student:\n")
		fmt.Fprintf(&b, "- Name: %s (grade %d)\n", lc.Name, lc.Grade)
		fmt.Fprintf(&b, "- Level %d with %d total points\n", lc.Level, lc.TotalScore)
		fmt.Fprintf(&b, "- Current learning streak: %d days\n", lc.CurrentStreak)
		fmt.Fprintf(&b, "- Overall course progress: %.0f%%\n", lc.OverallProgressPct)
		fmt.Fprintf(&b, "- Quiz accuracy: %.0f%%\n", lc.QuizAccuracyPct)
		if len(lc.RecentAchievements) > 0 {
			fmt.Fprintf(&b, "- Recent achievements: %s\n", strings.Join(lc.RecentAchievements, ", "))
		}
		b.WriteString("Use this context to personalize your response and encourage them.")
	}

	if isHintRequest {
		b.WriteString("\n\n")
		b.WriteString(hintPrompt)
	}

	return b.String()
}
