package catalog

import (
	"errors"

	"github.com/curioquest/backend/internal/models"
)

// ErrNotFound signals an unknown subject, video, quiz, or achievement id.
var ErrNotFound = errors.New("not found")

// Store holds the static reference data. Everything is read-only after
// seeding except video view counts, which only ever go up.
type Store interface {
	Subjects() ([]models.Subject, error)
	Subject(id int64) (*models.Subject, error)

	Videos() ([]models.Video, error)
	VideosBySubject(subjectID int64) ([]models.Video, error)
	IncrementVideoViews(videoID int64) error

	Quiz(id int64) (*models.Quiz, error)
	QuizzesBySubject(subjectID int64) ([]models.Quiz, error)
	RandomQuiz() (*models.Quiz, error)

	Achievements() ([]models.Achievement, error)

	InsertSubject(s models.Subject) error
	InsertVideo(v models.Video) error
	InsertQuiz(q models.Quiz) error
	InsertAchievement(a models.Achievement) error
}
