package ledger

import (
	"errors"
	"fmt"
	"strings"

	"github.com/curioquest/backend/internal/catalog"
	"github.com/curioquest/backend/internal/models"
)

const defaultLeaderboardLimit = 10

// ErrValidation wraps registration and payload validation failures so the
// boundary can map them to a 400 instead of a 404.
var ErrValidation = errors.New("validation failed")

// Service implements the progress-and-rewards ledger on top of a Store,
// using the catalog for validation and achievement definitions.
type Service struct {
	store   Store
	catalog *catalog.Service
}

func NewService(store Store, cat *catalog.Service) *Service {
	return &Service{store: store, catalog: cat}
}

// ── User Lifecycle ──────────────────────────────────────

func (s *Service) CreateUser(req models.CreateUserRequest) (*models.User, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.School = strings.TrimSpace(req.School)

	if req.Name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrValidation)
	}
	if req.School == "" {
		return nil, fmt.Errorf("%w: school is required", ErrValidation)
	}
	if req.Grade < 1 || req.Grade > 12 {
		return nil, fmt.Errorf("%w: grade must be between 1 and 12", ErrValidation)
	}

	subjects, err := s.catalog.Subjects()
	if err != nil {
		return nil, fmt.Errorf("load subjects: %w", err)
	}

	return s.store.CreateUser(req, subjects)
}

func (s *Service) GetUser(id int64) (*models.User, error) {
	return s.store.GetUser(id)
}

// AddScore adds delta to the user's total. It is not idempotent; callers
// are responsible for at-most-once invocation per rewarded event.
func (s *Service) AddScore(id int64, delta int) (*models.User, error) {
	return s.store.AddScore(id, delta)
}

// SetStreak records a caller-computed streak value. The decision whether
// the streak continues or resets belongs to the caller via IsStreakActive
// and ShouldUpdateStreak; the ledger only enforces longest >= current.
func (s *Service) SetStreak(id int64, streak int) (*models.User, []models.UserAchievement, error) {
	if streak < 0 {
		return nil, nil, fmt.Errorf("%w: streak must be non-negative", ErrValidation)
	}
	user, err := s.store.SetStreak(id, streak)
	if err != nil {
		return nil, nil, err
	}
	newAchievements, err := s.CheckAndAwardAchievements(id)
	if err != nil {
		return nil, nil, err
	}
	return user, newAchievements, nil
}

// ── Progress Tracking ───────────────────────────────────

func (s *Service) Progress(userID int64) ([]models.ProgressEntry, error) {
	rows, err := s.store.ProgressByUser(userID)
	if err != nil {
		return nil, err
	}

	entries := make([]models.ProgressEntry, 0, len(rows))
	for _, row := range rows {
		subject, err := s.catalog.Subject(row.SubjectID)
		if err != nil {
			// Progress rows are created from the catalog, so a missing
			// subject means the catalog shrank underneath us; skip the row.
			continue
		}
		entries = append(entries, models.ProgressEntry{UserProgress: row, Subject: *subject})
	}
	return entries, nil
}

// UpdateProgress overwrites the completed-topic count for a (user, subject)
// pair, clamped to [0, subject.TotalTopics].
func (s *Service) UpdateProgress(userID, subjectID int64, completedTopics int) (*models.UserProgress, error) {
	subject, err := s.catalog.Subject(subjectID)
	if err != nil {
		return nil, ErrProgressNotFound
	}

	if completedTopics < 0 {
		completedTopics = 0
	}
	if completedTopics > subject.TotalTopics {
		completedTopics = subject.TotalTopics
	}

	return s.store.UpdateProgress(userID, subjectID, completedTopics)
}

// ── Quiz Attempts & Scoring ─────────────────────────────

func (s *Service) SubmitQuizAttempt(req models.SubmitAttemptRequest) (*models.SubmitAttemptResponse, error) {
	if req.PointsEarned < 0 {
		return nil, fmt.Errorf("%w: points_earned must be non-negative", ErrValidation)
	}
	if _, err := s.catalog.Quiz(req.QuizID); err != nil {
		return nil, fmt.Errorf("%w: unknown quiz %d", ErrValidation, req.QuizID)
	}

	attempt, err := s.store.CreateAttempt(req)
	if err != nil {
		return nil, err
	}

	newAchievements, err := s.CheckAndAwardAchievements(req.UserID)
	if err != nil {
		return nil, err
	}

	return &models.SubmitAttemptResponse{
		Attempt:         *attempt,
		NewAchievements: newAchievements,
	}, nil
}

// QuizStats recomputes the aggregate from the attempt history on every
// call; the attempt log is the single source of truth, so the stats can
// never drift from it.
func (s *Service) QuizStats(userID int64) (*models.QuizStats, error) {
	if _, err := s.store.GetUser(userID); err != nil {
		return nil, err
	}

	attempts, err := s.store.AttemptsByUser(userID)
	if err != nil {
		return nil, err
	}

	stats := &models.QuizStats{TotalAttempts: len(attempts)}
	for _, a := range attempts {
		if a.IsCorrect {
			stats.CorrectAnswers++
		}
		stats.TotalPoints += a.PointsEarned
	}
	return stats, nil
}

// ── Video Views ─────────────────────────────────────────

// RecordVideoView bumps the video's view counter and, when a user is
// identified, the user's videos-watched counter, then sweeps achievements.
func (s *Service) RecordVideoView(videoID, userID int64) (*models.VideoViewResponse, error) {
	if err := s.catalog.IncrementVideoViews(videoID); err != nil {
		return nil, err
	}

	resp := &models.VideoViewResponse{Success: true}
	if userID == 0 {
		return resp, nil
	}

	if _, err := s.store.IncrementVideosWatched(userID); err != nil {
		return nil, err
	}
	newAchievements, err := s.CheckAndAwardAchievements(userID)
	if err != nil {
		return nil, err
	}
	resp.NewAchievements = newAchievements
	return resp, nil
}

// ── Achievement Evaluation ──────────────────────────────

// CheckAndAwardAchievements evaluates every not-yet-earned achievement
// against the user's current state and awards the satisfied ones. Earned
// achievements are terminal: repeated calls with no intervening state
// change award nothing.
func (s *Service) CheckAndAwardAchievements(userID int64) ([]models.UserAchievement, error) {
	user, err := s.store.GetUser(userID)
	if err != nil {
		return nil, err
	}

	definitions, err := s.catalog.Achievements()
	if err != nil {
		return nil, err
	}

	earned, err := s.store.AchievementsByUser(userID)
	if err != nil {
		return nil, err
	}
	earnedSet := make(map[int64]bool, len(earned))
	for _, ua := range earned {
		earnedSet[ua.AchievementID] = true
	}

	correctAnswers := -1 // computed lazily, only when a quiz requirement needs it

	newAchievements := []models.UserAchievement{}
	for _, def := range definitions {
		if earnedSet[def.ID] {
			continue
		}

		satisfied := false
		switch def.Requirement.Type {
		case models.RequirementVideosWatched:
			satisfied = user.VideosWatched >= def.Requirement.Value
		case models.RequirementStreakDays:
			satisfied = user.CurrentStreak >= def.Requirement.Value
		case models.RequirementPerfectQuizzes:
			if correctAnswers < 0 {
				attempts, err := s.store.AttemptsByUser(userID)
				if err != nil {
					return nil, err
				}
				correctAnswers = 0
				for _, a := range attempts {
					if a.IsCorrect {
						correctAnswers++
					}
				}
			}
			satisfied = correctAnswers >= def.Requirement.Value
		}

		if !satisfied {
			continue
		}

		ua, err := s.store.AwardAchievement(userID, def.ID)
		if errors.Is(err, ErrAlreadyAwarded) {
			continue
		}
		if err != nil {
			return nil, err
		}
		newAchievements = append(newAchievements, *ua)
	}

	return newAchievements, nil
}

// EarnedAchievements joins a user's earned rows with their definitions.
func (s *Service) EarnedAchievements(userID int64) ([]models.EarnedAchievement, error) {
	if _, err := s.store.GetUser(userID); err != nil {
		return nil, err
	}

	earned, err := s.store.AchievementsByUser(userID)
	if err != nil {
		return nil, err
	}

	definitions, err := s.catalog.Achievements()
	if err != nil {
		return nil, err
	}
	byID := make(map[int64]models.Achievement, len(definitions))
	for _, def := range definitions {
		byID[def.ID] = def
	}

	entries := make([]models.EarnedAchievement, 0, len(earned))
	for _, ua := range earned {
		def, ok := byID[ua.AchievementID]
		if !ok {
			continue
		}
		entries = append(entries, models.EarnedAchievement{UserAchievement: ua, Achievement: def})
	}
	return entries, nil
}

// ── Leaderboard ─────────────────────────────────────────

// Leaderboard returns users by total score descending, ties broken by
// ascending id.
func (s *Service) Leaderboard(limit int) ([]models.User, error) {
	if limit <= 0 {
		limit = defaultLeaderboardLimit
	}
	return s.store.TopUsers(limit)
}

// ── Learning Context ────────────────────────────────────

// LearningContext builds the read-only summary the AI tutor injects into
// its prompt: level, overall progress, quiz accuracy, recent unlocks.
func (s *Service) LearningContext(userID int64) (*models.LearningContext, error) {
	user, err := s.store.GetUser(userID)
	if err != nil {
		return nil, err
	}

	progress, err := s.Progress(userID)
	if err != nil {
		return nil, err
	}
	completed, total := 0, 0
	for _, entry := range progress {
		completed += entry.CompletedTopics
		total += entry.Subject.TotalTopics
	}
	progressPct := 0.0
	if total > 0 {
		progressPct = float64(completed) / float64(total) * 100
	}

	stats, err := s.QuizStats(userID)
	if err != nil {
		return nil, err
	}
	accuracyPct := 0.0
	if stats.TotalAttempts > 0 {
		accuracyPct = float64(stats.CorrectAnswers) / float64(stats.TotalAttempts) * 100
	}

	earned, err := s.EarnedAchievements(userID)
	if err != nil {
		return nil, err
	}
	recent := []string{}
	for i := len(earned) - 1; i >= 0 && len(recent) < 3; i-- {
		recent = append(recent, earned[i].Achievement.Name)
	}

	return &models.LearningContext{
		UserID:             user.ID,
		Name:               user.Name,
		Grade:              user.Grade,
		Level:              UserLevel(user.TotalScore).Level,
		TotalScore:         user.TotalScore,
		CurrentStreak:      user.CurrentStreak,
		OverallProgressPct: progressPct,
		QuizAccuracyPct:    accuracyPct,
		RecentAchievements: recent,
	}, nil
}
