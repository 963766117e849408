package catalog

import "github.com/curioquest/backend/internal/models"

// Service exposes the catalog's read operations to handlers and to the
// ledger, which uses it for validation and achievement definitions.
type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

func (s *Service) Subjects() ([]models.Subject, error) {
	return s.store.Subjects()
}

func (s *Service) Subject(id int64) (*models.Subject, error) {
	return s.store.Subject(id)
}

func (s *Service) Videos() ([]models.Video, error) {
	return s.store.Videos()
}

func (s *Service) VideosBySubject(subjectID int64) ([]models.Video, error) {
	return s.store.VideosBySubject(subjectID)
}

func (s *Service) IncrementVideoViews(videoID int64) error {
	return s.store.IncrementVideoViews(videoID)
}

func (s *Service) Quiz(id int64) (*models.Quiz, error) {
	return s.store.Quiz(id)
}

func (s *Service) QuizzesBySubject(subjectID int64) ([]models.Quiz, error) {
	return s.store.QuizzesBySubject(subjectID)
}

func (s *Service) RandomQuiz() (*models.Quiz, error) {
	return s.store.RandomQuiz()
}

func (s *Service) Achievements() ([]models.Achievement, error) {
	return s.store.Achievements()
}
