package ledger

import (
	"errors"

	"github.com/curioquest/backend/internal/models"
)

var (
	ErrUserNotFound     = errors.New("user not found")
	ErrProgressNotFound = errors.New("user progress not found")
	// ErrAlreadyAwarded is returned when an achievement has already been
	// earned by the user; awarding is one-way and never duplicates.
	ErrAlreadyAwarded = errors.New("achievement already awarded")
)

// Store holds the mutable per-user state: scores, streaks, progress rows,
// quiz attempts, and earned achievements. Implementations must make each
// method atomic; CreateAttempt in particular appends the attempt and bumps
// the user's counters as one unit.
type Store interface {
	GetUser(id int64) (*models.User, error)
	// CreateUser assigns an id, zeroes the counters, and eagerly creates a
	// progress row for every given subject.
	CreateUser(req models.CreateUserRequest, subjects []models.Subject) (*models.User, error)
	AddScore(id int64, delta int) (*models.User, error)
	// SetStreak sets the current streak, raises the longest streak if
	// needed, and stamps the last-active date with today.
	SetStreak(id int64, streak int) (*models.User, error)
	IncrementVideosWatched(id int64) (*models.User, error)

	ProgressByUser(userID int64) ([]models.UserProgress, error)
	UpdateProgress(userID, subjectID int64, completedTopics int) (*models.UserProgress, error)

	CreateAttempt(req models.SubmitAttemptRequest) (*models.QuizAttempt, error)
	AttemptsByUser(userID int64) ([]models.QuizAttempt, error)

	AchievementsByUser(userID int64) ([]models.UserAchievement, error)
	AwardAchievement(userID, achievementID int64) (*models.UserAchievement, error)

	// TopUsers returns users ordered by total score descending; ties break
	// by ascending id so the ordering is deterministic.
	TopUsers(limit int) ([]models.User, error)
}
