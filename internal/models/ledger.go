package models

import "time"

// ── Ledger Records ────────────────────────────────────────

type UserProgress struct {
	ID                 int64      `json:"id"`
	UserID             int64      `json:"user_id"`
	SubjectID          int64      `json:"subject_id"`
	CompletedTopics    int        `json:"completed_topics"`
	LastTopicCompleted *time.Time `json:"last_topic_completed"`
}

// ProgressEntry joins a progress row with its subject for read views.
type ProgressEntry struct {
	UserProgress
	Subject Subject `json:"subject"`
}

// QuizAttempt is an append-only fact; rows are never mutated or deleted.
// SelectedAnswer of -1 means the question timed out with no answer.
type QuizAttempt struct {
	ID             int64     `json:"id"`
	UserID         int64     `json:"user_id"`
	QuizID         int64     `json:"quiz_id"`
	SelectedAnswer int       `json:"selected_answer"`
	IsCorrect      bool      `json:"is_correct"`
	PointsEarned   int       `json:"points_earned"`
	CompletedAt    time.Time `json:"completed_at"`
}

type UserAchievement struct {
	ID            int64     `json:"id"`
	UserID        int64     `json:"user_id"`
	AchievementID int64     `json:"achievement_id"`
	EarnedAt      time.Time `json:"earned_at"`
}

// EarnedAchievement joins an earned row with its catalog definition.
type EarnedAchievement struct {
	UserAchievement
	Achievement Achievement `json:"achievement"`
}

type QuizStats struct {
	TotalAttempts  int `json:"total_attempts"`
	CorrectAnswers int `json:"correct_answers"`
	TotalPoints    int `json:"total_points"`
}

// ── Request Types ─────────────────────────────────────────

// Numeric fields are pointers so a missing or non-numeric payload is
// rejected at the boundary instead of defaulting to zero.

type UpdateScoreRequest struct {
	Score *int `json:"score"`
}

type UpdateStreakRequest struct {
	Streak *int `json:"streak"`
}

type UpdateProgressRequest struct {
	CompletedTopics *int `json:"completed_topics"`
}

type SubmitAttemptRequest struct {
	UserID         int64 `json:"user_id"`
	QuizID         int64 `json:"quiz_id"`
	SelectedAnswer int   `json:"selected_answer"`
	IsCorrect      bool  `json:"is_correct"`
	PointsEarned   int   `json:"points_earned"`
}

type VideoViewRequest struct {
	UserID int64 `json:"user_id,omitempty"`
}

// ── Response Types ────────────────────────────────────────

type SubmitAttemptResponse struct {
	Attempt         QuizAttempt       `json:"attempt"`
	NewAchievements []UserAchievement `json:"new_achievements"`
}

type VideoViewResponse struct {
	Success         bool              `json:"success"`
	NewAchievements []UserAchievement `json:"new_achievements,omitempty"`
}

// LearningContext is the read-only summary the AI tutor consumes.
type LearningContext struct {
	UserID             int64    `json:"user_id"`
	Name               string   `json:"name"`
	Grade              int      `json:"grade"`
	Level              int      `json:"level"`
	TotalScore         int      `json:"total_score"`
	CurrentStreak      int      `json:"current_streak"`
	OverallProgressPct float64  `json:"overall_progress_pct"`
	QuizAccuracyPct    float64  `json:"quiz_accuracy_pct"`
	RecentAchievements []string `json:"recent_achievements"`
}
