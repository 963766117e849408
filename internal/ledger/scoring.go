package ledger

import (
	"fmt"

	"github.com/curioquest/backend/internal/models"
)

// Quiz session shape: a fixed batch of questions with a per-question timer.
// A timeout submits as incorrect with SelectedAnswer = NoAnswer.
const (
	QuestionsPerSession = 3
	QuestionTimeSeconds = 30
	MinCorrectPoints    = 10
	NoAnswer            = -1

	PointsPerLevel = 1000
)

// QuizPoints returns the reward for an answer: the seconds remaining on the
// timer for a correct answer (floored at MinCorrectPoints), zero otherwise.
func QuizPoints(correct bool, timeRemainingSeconds int) int {
	if !correct {
		return 0
	}
	if timeRemainingSeconds < MinCorrectPoints {
		return MinCorrectPoints
	}
	return timeRemainingSeconds
}

// StreakBonus returns the score multiplier a daily streak earns.
func StreakBonus(streak int) float64 {
	switch {
	case streak >= 30:
		return 3.0
	case streak >= 14:
		return 2.5
	case streak >= 7:
		return 2.0
	case streak >= 3:
		return 1.5
	default:
		return 1.0
	}
}

// LevelInfo describes where a total score sits in the level curve.
type LevelInfo struct {
	Level             int     `json:"level"`
	CurrentLevelScore int     `json:"current_level_score"`
	NextLevelScore    int     `json:"next_level_score"`
	Progress          float64 `json:"progress"` // percent into the current level
}

// UserLevel maps a total score onto levels of PointsPerLevel points each.
func UserLevel(totalScore int) LevelInfo {
	current := totalScore % PointsPerLevel
	return LevelInfo{
		Level:             totalScore/PointsPerLevel + 1,
		CurrentLevelScore: current,
		NextLevelScore:    PointsPerLevel,
		Progress:          float64(current) / float64(PointsPerLevel) * 100,
	}
}

// FormatScore renders a score compactly for display: 1.2k, 3.4M.
func FormatScore(score int) string {
	switch {
	case score >= 1000000:
		return fmt.Sprintf("%.1fM", float64(score)/1000000)
	case score >= 1000:
		return fmt.Sprintf("%.1fk", float64(score)/1000)
	default:
		return fmt.Sprintf("%d", score)
	}
}

// MetricProgress tracks one counter against a display target.
type MetricProgress struct {
	Current    int     `json:"current"`
	Target     int     `json:"target"`
	Percentage float64 `json:"percentage"`
}

type AchievementProgressView struct {
	VideosWatched    MetricProgress `json:"videos_watched"`
	QuizzesCompleted MetricProgress `json:"quizzes_completed"`
	StreakDays       MetricProgress `json:"streak_days"`
	TotalScore       MetricProgress `json:"total_score"`
}

func metricProgress(current, target int) MetricProgress {
	pct := float64(current) / float64(target) * 100
	if pct > 100 {
		pct = 100
	}
	return MetricProgress{Current: current, Target: target, Percentage: pct}
}

// AchievementProgress summarizes a user's counters against the long-term
// targets shown on the profile screen.
func AchievementProgress(u *models.User) AchievementProgressView {
	return AchievementProgressView{
		VideosWatched:    metricProgress(u.VideosWatched, 100),
		QuizzesCompleted: metricProgress(u.QuizzesCompleted, 50),
		StreakDays:       metricProgress(u.CurrentStreak, 30),
		TotalScore:       metricProgress(u.TotalScore, 10000),
	}
}
