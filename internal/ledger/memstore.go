package ledger

import (
	"sort"
	"sync"
	"time"

	"github.com/curioquest/backend/internal/models"
)

type progressKey struct {
	userID    int64
	subjectID int64
}

type achievementKey struct {
	userID        int64
	achievementID int64
}

// MemStore is the in-memory ledger backend. A single mutex guards every
// read-modify-write sequence, so each operation is atomic with respect to
// concurrent requests for the same user.
type MemStore struct {
	mu               sync.RWMutex
	users            map[int64]*models.User
	progress         map[progressKey]*models.UserProgress
	attempts         []models.QuizAttempt
	userAchievements map[achievementKey]*models.UserAchievement

	nextUserID            int64
	nextProgressID        int64
	nextAttemptID         int64
	nextUserAchievementID int64
}

func NewMemStore() *MemStore {
	return &MemStore{
		users:                 make(map[int64]*models.User),
		progress:              make(map[progressKey]*models.UserProgress),
		userAchievements:      make(map[achievementKey]*models.UserAchievement),
		nextUserID:            1,
		nextProgressID:        1,
		nextAttemptID:         1,
		nextUserAchievementID: 1,
	}
}

func (s *MemStore) GetUser(id int64) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[id]
	if !ok {
		return nil, ErrUserNotFound
	}
	copied := *user
	return &copied, nil
}

func (s *MemStore) CreateUser(req models.CreateUserRequest, subjects []models.Subject) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user := &models.User{
		ID:        s.nextUserID,
		Name:      req.Name,
		Grade:     req.Grade,
		School:    req.School,
		CreatedAt: time.Now().UTC(),
	}
	s.nextUserID++
	s.users[user.ID] = user

	for _, subject := range subjects {
		key := progressKey{userID: user.ID, subjectID: subject.ID}
		s.progress[key] = &models.UserProgress{
			ID:        s.nextProgressID,
			UserID:    user.ID,
			SubjectID: subject.ID,
		}
		s.nextProgressID++
	}

	copied := *user
	return &copied, nil
}

func (s *MemStore) AddScore(id int64, delta int) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[id]
	if !ok {
		return nil, ErrUserNotFound
	}
	user.TotalScore += delta
	copied := *user
	return &copied, nil
}

func (s *MemStore) SetStreak(id int64, streak int) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[id]
	if !ok {
		return nil, ErrUserNotFound
	}
	user.CurrentStreak = streak
	if streak > user.LongestStreak {
		user.LongestStreak = streak
	}
	today := dateOf(time.Now().UTC())
	user.LastActiveDate = &today

	copied := *user
	return &copied, nil
}

func (s *MemStore) IncrementVideosWatched(id int64) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[id]
	if !ok {
		return nil, ErrUserNotFound
	}
	user.VideosWatched++
	copied := *user
	return &copied, nil
}

func (s *MemStore) ProgressByUser(userID int64) ([]models.UserProgress, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var rows []models.UserProgress
	for _, p := range s.progress {
		if p.UserID == userID {
			rows = append(rows, *p)
		}
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].SubjectID < rows[j].SubjectID })
	return rows, nil
}

func (s *MemStore) UpdateProgress(userID, subjectID int64, completedTopics int) (*models.UserProgress, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.progress[progressKey{userID: userID, subjectID: subjectID}]
	if !ok {
		return nil, ErrProgressNotFound
	}
	now := time.Now().UTC()
	p.CompletedTopics = completedTopics
	p.LastTopicCompleted = &now

	copied := *p
	return &copied, nil
}

func (s *MemStore) CreateAttempt(req models.SubmitAttemptRequest) (*models.QuizAttempt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// The user update and the attempt append happen under the same lock:
	// either both are visible or neither is.
	user, ok := s.users[req.UserID]
	if !ok {
		return nil, ErrUserNotFound
	}

	attempt := models.QuizAttempt{
		ID:             s.nextAttemptID,
		UserID:         req.UserID,
		QuizID:         req.QuizID,
		SelectedAnswer: req.SelectedAnswer,
		IsCorrect:      req.IsCorrect,
		PointsEarned:   req.PointsEarned,
		CompletedAt:    time.Now().UTC(),
	}
	s.nextAttemptID++
	s.attempts = append(s.attempts, attempt)

	user.TotalScore += req.PointsEarned
	user.QuizzesCompleted++

	return &attempt, nil
}

func (s *MemStore) AttemptsByUser(userID int64) ([]models.QuizAttempt, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var attempts []models.QuizAttempt
	for _, a := range s.attempts {
		if a.UserID == userID {
			attempts = append(attempts, a)
		}
	}
	return attempts, nil
}

func (s *MemStore) AchievementsByUser(userID int64) ([]models.UserAchievement, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var earned []models.UserAchievement
	for _, ua := range s.userAchievements {
		if ua.UserID == userID {
			earned = append(earned, *ua)
		}
	}
	sort.Slice(earned, func(i, j int) bool { return earned[i].ID < earned[j].ID })
	return earned, nil
}

func (s *MemStore) AwardAchievement(userID, achievementID int64) (*models.UserAchievement, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := achievementKey{userID: userID, achievementID: achievementID}
	if _, ok := s.userAchievements[key]; ok {
		return nil, ErrAlreadyAwarded
	}

	ua := &models.UserAchievement{
		ID:            s.nextUserAchievementID,
		UserID:        userID,
		AchievementID: achievementID,
		EarnedAt:      time.Now().UTC(),
	}
	s.nextUserAchievementID++
	s.userAchievements[key] = ua

	copied := *ua
	return &copied, nil
}

func (s *MemStore) TopUsers(limit int) ([]models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	users := make([]models.User, 0, len(s.users))
	for _, u := range s.users {
		users = append(users, *u)
	}
	sort.Slice(users, func(i, j int) bool {
		if users[i].TotalScore != users[j].TotalScore {
			return users[i].TotalScore > users[j].TotalScore
		}
		return users[i].ID < users[j].ID
	})
	if limit > 0 && len(users) > limit {
		users = users[:limit]
	}
	return users, nil
}

// SeedUser inserts a pre-built user, used to load demo leaderboard data.
func (s *MemStore) SeedUser(user models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.users[user.ID] = &user
	if user.ID >= s.nextUserID {
		s.nextUserID = user.ID + 1
	}
}
