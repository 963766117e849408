package catalog

import (
	"math/rand"
	"sort"
	"sync"

	"github.com/curioquest/backend/internal/models"
)

// MemStore is the in-memory catalog backend. Reads take the read lock;
// the only writes are seeding and view-count bumps.
type MemStore struct {
	mu           sync.RWMutex
	subjects     map[int64]models.Subject
	videos       map[int64]models.Video
	quizzes      map[int64]models.Quiz
	achievements map[int64]models.Achievement
}

func NewMemStore() *MemStore {
	return &MemStore{
		subjects:     make(map[int64]models.Subject),
		videos:       make(map[int64]models.Video),
		quizzes:      make(map[int64]models.Quiz),
		achievements: make(map[int64]models.Achievement),
	}
}

func (s *MemStore) Subjects() ([]models.Subject, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	subjects := make([]models.Subject, 0, len(s.subjects))
	for _, subject := range s.subjects {
		subjects = append(subjects, subject)
	}
	sort.Slice(subjects, func(i, j int) bool { return subjects[i].ID < subjects[j].ID })
	return subjects, nil
}

func (s *MemStore) Subject(id int64) (*models.Subject, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	subject, ok := s.subjects[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &subject, nil
}

func (s *MemStore) Videos() ([]models.Video, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	videos := make([]models.Video, 0, len(s.videos))
	for _, video := range s.videos {
		videos = append(videos, video)
	}
	sort.Slice(videos, func(i, j int) bool { return videos[i].ID < videos[j].ID })
	return videos, nil
}

func (s *MemStore) VideosBySubject(subjectID int64) ([]models.Video, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var videos []models.Video
	for _, video := range s.videos {
		if video.SubjectID == subjectID {
			videos = append(videos, video)
		}
	}
	sort.Slice(videos, func(i, j int) bool { return videos[i].ID < videos[j].ID })
	return videos, nil
}

func (s *MemStore) IncrementVideoViews(videoID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	video, ok := s.videos[videoID]
	if !ok {
		return ErrNotFound
	}
	video.Views++
	s.videos[videoID] = video
	return nil
}

func (s *MemStore) Quiz(id int64) (*models.Quiz, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	quiz, ok := s.quizzes[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &quiz, nil
}

func (s *MemStore) QuizzesBySubject(subjectID int64) ([]models.Quiz, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var quizzes []models.Quiz
	for _, quiz := range s.quizzes {
		if quiz.SubjectID == subjectID {
			quizzes = append(quizzes, quiz)
		}
	}
	sort.Slice(quizzes, func(i, j int) bool { return quizzes[i].ID < quizzes[j].ID })
	return quizzes, nil
}

func (s *MemStore) RandomQuiz() (*models.Quiz, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(s.quizzes) == 0 {
		return nil, ErrNotFound
	}

	ids := make([]int64, 0, len(s.quizzes))
	for id := range s.quizzes {
		ids = append(ids, id)
	}
	quiz := s.quizzes[ids[rand.Intn(len(ids))]]
	return &quiz, nil
}

func (s *MemStore) Achievements() ([]models.Achievement, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	achievements := make([]models.Achievement, 0, len(s.achievements))
	for _, a := range s.achievements {
		achievements = append(achievements, a)
	}
	sort.Slice(achievements, func(i, j int) bool { return achievements[i].ID < achievements[j].ID })
	return achievements, nil
}

func (s *MemStore) InsertSubject(subject models.Subject) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subjects[subject.ID] = subject
	return nil
}

func (s *MemStore) InsertVideo(video models.Video) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.videos[video.ID] = video
	return nil
}

func (s *MemStore) InsertQuiz(quiz models.Quiz) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.quizzes[quiz.ID] = quiz
	return nil
}

func (s *MemStore) InsertAchievement(achievement models.Achievement) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.achievements[achievement.ID] = achievement
	return nil
}
