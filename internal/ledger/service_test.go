package ledger

import (
	"errors"
	"testing"

	"github.com/curioquest/backend/internal/catalog"
	"github.com/curioquest/backend/internal/models"
)

func newTestService(t *testing.T) (*Service, *MemStore) {
	t.Helper()

	catalogStore := catalog.NewMemStore()
	if err := catalog.Seed(catalogStore); err != nil {
		t.Fatalf("seed catalog: %v", err)
	}

	store := NewMemStore()
	return NewService(store, catalog.NewService(catalogStore)), store
}

func mustCreateUser(t *testing.T, svc *Service) *models.User {
	t.Helper()
	user, err := svc.CreateUser(models.CreateUserRequest{
		Name: "Test Student", Grade: 9, School: "Test High",
	})
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	return user
}

// ── User Lifecycle ──────────────────────────────────────

func TestCreateUser_MaterializesProgressForAllSubjects(t *testing.T) {
	svc, _ := newTestService(t)
	user := mustCreateUser(t, svc)

	if user.TotalScore != 0 || user.CurrentStreak != 0 || user.VideosWatched != 0 {
		t.Errorf("new user counters not zero: %+v", user)
	}

	progress, err := svc.Progress(user.ID)
	if err != nil {
		t.Fatalf("get progress: %v", err)
	}
	if len(progress) != 5 {
		t.Fatalf("expected progress rows for all 5 subjects, got %d", len(progress))
	}
	for _, entry := range progress {
		if entry.CompletedTopics != 0 {
			t.Errorf("subject %d starts with %d completed topics, want 0", entry.SubjectID, entry.CompletedTopics)
		}
	}
}

func TestCreateUser_Validation(t *testing.T) {
	svc, _ := newTestService(t)

	tests := []struct {
		name string
		req  models.CreateUserRequest
	}{
		{"blank name", models.CreateUserRequest{Name: "  ", Grade: 9, School: "Test High"}},
		{"blank school", models.CreateUserRequest{Name: "Student", Grade: 9, School: ""}},
		{"grade too low", models.CreateUserRequest{Name: "Student", Grade: 0, School: "Test High"}},
		{"grade too high", models.CreateUserRequest{Name: "Student", Grade: 13, School: "Test High"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.CreateUser(tt.req); !errors.Is(err, ErrValidation) {
				t.Errorf("expected validation error, got %v", err)
			}
		})
	}
}

func TestGetUser_NotFound(t *testing.T) {
	svc, _ := newTestService(t)
	if _, err := svc.GetUser(999); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
}

// ── Score & Streak ──────────────────────────────────────

func TestAddScore_Accumulates(t *testing.T) {
	svc, _ := newTestService(t)
	user := mustCreateUser(t, svc)

	if _, err := svc.AddScore(user.ID, 25); err != nil {
		t.Fatalf("add score: %v", err)
	}
	updated, err := svc.AddScore(user.ID, 30)
	if err != nil {
		t.Fatalf("add score: %v", err)
	}
	if updated.TotalScore != 55 {
		t.Errorf("total score = %d, want 55", updated.TotalScore)
	}
}

func TestAddScore_UnknownUser(t *testing.T) {
	svc, _ := newTestService(t)
	if _, err := svc.AddScore(999, 10); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
}

func TestSetStreak_TracksLongest(t *testing.T) {
	svc, _ := newTestService(t)
	user := mustCreateUser(t, svc)

	updated, _, err := svc.SetStreak(user.ID, 5)
	if err != nil {
		t.Fatalf("set streak: %v", err)
	}
	if updated.CurrentStreak != 5 || updated.LongestStreak != 5 {
		t.Errorf("after 5: current=%d longest=%d", updated.CurrentStreak, updated.LongestStreak)
	}
	if updated.LastActiveDate == nil {
		t.Error("expected last active date to be stamped")
	}

	// A reset must not erase the record.
	updated, _, err = svc.SetStreak(user.ID, 1)
	if err != nil {
		t.Fatalf("set streak: %v", err)
	}
	if updated.CurrentStreak != 1 || updated.LongestStreak != 5 {
		t.Errorf("after reset: current=%d longest=%d, want 1 and 5", updated.CurrentStreak, updated.LongestStreak)
	}
}

func TestSetStreak_NegativeRejected(t *testing.T) {
	svc, _ := newTestService(t)
	user := mustCreateUser(t, svc)

	if _, _, err := svc.SetStreak(user.ID, -1); !errors.Is(err, ErrValidation) {
		t.Errorf("expected validation error, got %v", err)
	}
}

func TestSetStreak_AwardsStreakAchievement(t *testing.T) {
	svc, _ := newTestService(t)
	user := mustCreateUser(t, svc)

	_, newAchievements, err := svc.SetStreak(user.ID, 7)
	if err != nil {
		t.Fatalf("set streak: %v", err)
	}
	if len(newAchievements) != 1 {
		t.Fatalf("expected 1 new achievement at 7-day streak, got %d", len(newAchievements))
	}

	// Same threshold again: already earned, nothing new.
	_, newAchievements, err = svc.SetStreak(user.ID, 8)
	if err != nil {
		t.Fatalf("set streak: %v", err)
	}
	if len(newAchievements) != 0 {
		t.Errorf("expected no repeat award, got %d", len(newAchievements))
	}
}

// ── Progress ────────────────────────────────────────────

func TestUpdateProgress_ClampsToSubjectRange(t *testing.T) {
	svc, _ := newTestService(t)
	user := mustCreateUser(t, svc)

	// Subject 2 (Mathematics) has 10 topics.
	p, err := svc.UpdateProgress(user.ID, 2, 50)
	if err != nil {
		t.Fatalf("update progress: %v", err)
	}
	if p.CompletedTopics != 10 {
		t.Errorf("completed topics = %d, want clamped to 10", p.CompletedTopics)
	}
	if p.LastTopicCompleted == nil {
		t.Error("expected last topic completion timestamp")
	}

	p, err = svc.UpdateProgress(user.ID, 2, -3)
	if err != nil {
		t.Fatalf("update progress: %v", err)
	}
	if p.CompletedTopics != 0 {
		t.Errorf("completed topics = %d, want clamped to 0", p.CompletedTopics)
	}
}

func TestUpdateProgress_UnknownSubjectOrUser(t *testing.T) {
	svc, _ := newTestService(t)
	user := mustCreateUser(t, svc)

	if _, err := svc.UpdateProgress(user.ID, 999, 1); !errors.Is(err, ErrProgressNotFound) {
		t.Errorf("unknown subject: expected ErrProgressNotFound, got %v", err)
	}
	if _, err := svc.UpdateProgress(999, 2, 1); !errors.Is(err, ErrProgressNotFound) {
		t.Errorf("unknown user: expected ErrProgressNotFound, got %v", err)
	}
}

// ── Quiz Attempts ───────────────────────────────────────

func TestSubmitQuizAttempt_UpdatesUserAndLog(t *testing.T) {
	svc, _ := newTestService(t)
	user := mustCreateUser(t, svc)

	resp, err := svc.SubmitQuizAttempt(models.SubmitAttemptRequest{
		UserID: user.ID, QuizID: 1, SelectedAnswer: 2, IsCorrect: true, PointsEarned: 25,
	})
	if err != nil {
		t.Fatalf("submit attempt: %v", err)
	}
	if resp.Attempt.ID == 0 {
		t.Error("expected attempt to be assigned an id")
	}

	updated, err := svc.GetUser(user.ID)
	if err != nil {
		t.Fatalf("get user: %v", err)
	}
	if updated.TotalScore != 25 {
		t.Errorf("total score = %d, want 25", updated.TotalScore)
	}
	if updated.QuizzesCompleted != 1 {
		t.Errorf("quizzes completed = %d, want 1", updated.QuizzesCompleted)
	}

	stats, err := svc.QuizStats(user.ID)
	if err != nil {
		t.Fatalf("quiz stats: %v", err)
	}
	if stats.TotalAttempts != 1 || stats.CorrectAnswers != 1 || stats.TotalPoints != 25 {
		t.Errorf("stats = %+v, want 1 attempt, 1 correct, 25 points", stats)
	}
}

func TestSubmitQuizAttempt_TimeoutRecordsSentinel(t *testing.T) {
	svc, _ := newTestService(t)
	user := mustCreateUser(t, svc)

	resp, err := svc.SubmitQuizAttempt(models.SubmitAttemptRequest{
		UserID: user.ID, QuizID: 1, SelectedAnswer: NoAnswer, IsCorrect: false, PointsEarned: 0,
	})
	if err != nil {
		t.Fatalf("submit attempt: %v", err)
	}
	if resp.Attempt.SelectedAnswer != NoAnswer {
		t.Errorf("selected answer = %d, want %d", resp.Attempt.SelectedAnswer, NoAnswer)
	}

	updated, _ := svc.GetUser(user.ID)
	if updated.TotalScore != 0 {
		t.Errorf("timeout must not score, got %d", updated.TotalScore)
	}
	if updated.QuizzesCompleted != 1 {
		t.Errorf("timeout still counts as an attempt, got %d", updated.QuizzesCompleted)
	}
}

func TestSubmitQuizAttempt_Validation(t *testing.T) {
	svc, _ := newTestService(t)
	user := mustCreateUser(t, svc)

	_, err := svc.SubmitQuizAttempt(models.SubmitAttemptRequest{
		UserID: user.ID, QuizID: 999, SelectedAnswer: 0, IsCorrect: true, PointsEarned: 10,
	})
	if !errors.Is(err, ErrValidation) {
		t.Errorf("unknown quiz: expected validation error, got %v", err)
	}

	_, err = svc.SubmitQuizAttempt(models.SubmitAttemptRequest{
		UserID: user.ID, QuizID: 1, SelectedAnswer: 0, IsCorrect: true, PointsEarned: -5,
	})
	if !errors.Is(err, ErrValidation) {
		t.Errorf("negative points: expected validation error, got %v", err)
	}

	_, err = svc.SubmitQuizAttempt(models.SubmitAttemptRequest{
		UserID: 999, QuizID: 1, SelectedAnswer: 0, IsCorrect: true, PointsEarned: 10,
	})
	if !errors.Is(err, ErrUserNotFound) {
		t.Errorf("unknown user: expected ErrUserNotFound, got %v", err)
	}
}

func TestSubmitQuizAttempt_AwardsAfterFiveCorrect(t *testing.T) {
	svc, _ := newTestService(t)
	user := mustCreateUser(t, svc)

	for i := 0; i < 4; i++ {
		resp, err := svc.SubmitQuizAttempt(models.SubmitAttemptRequest{
			UserID: user.ID, QuizID: 1, SelectedAnswer: 2, IsCorrect: true, PointsEarned: 10,
		})
		if err != nil {
			t.Fatalf("submit attempt %d: %v", i, err)
		}
		if len(resp.NewAchievements) != 0 {
			t.Fatalf("attempt %d: unexpected early award", i)
		}
	}

	resp, err := svc.SubmitQuizAttempt(models.SubmitAttemptRequest{
		UserID: user.ID, QuizID: 1, SelectedAnswer: 2, IsCorrect: true, PointsEarned: 10,
	})
	if err != nil {
		t.Fatalf("submit fifth attempt: %v", err)
	}
	if len(resp.NewAchievements) != 1 {
		t.Fatalf("expected quiz achievement after 5 correct answers, got %d", len(resp.NewAchievements))
	}

	earned, err := svc.EarnedAchievements(user.ID)
	if err != nil {
		t.Fatalf("earned achievements: %v", err)
	}
	if len(earned) != 1 || earned[0].Achievement.Name != "Quiz Master" {
		t.Errorf("earned = %+v, want single Quiz Master", earned)
	}
}

// ── Video Views ─────────────────────────────────────────

func TestRecordVideoView_AnonymousAndIdentified(t *testing.T) {
	svc, _ := newTestService(t)
	user := mustCreateUser(t, svc)

	// Anonymous view: no user side effects.
	resp, err := svc.RecordVideoView(1, 0)
	if err != nil {
		t.Fatalf("anonymous view: %v", err)
	}
	if !resp.Success || len(resp.NewAchievements) != 0 {
		t.Errorf("anonymous view response = %+v", resp)
	}

	// First identified view unlocks the first-video achievement.
	resp, err = svc.RecordVideoView(1, user.ID)
	if err != nil {
		t.Fatalf("identified view: %v", err)
	}
	if len(resp.NewAchievements) != 1 {
		t.Fatalf("expected first-video achievement, got %d", len(resp.NewAchievements))
	}

	updated, _ := svc.GetUser(user.ID)
	if updated.VideosWatched != 1 {
		t.Errorf("videos watched = %d, want 1", updated.VideosWatched)
	}
}

func TestRecordVideoView_UnknownVideo(t *testing.T) {
	svc, _ := newTestService(t)
	if _, err := svc.RecordVideoView(999, 0); !errors.Is(err, catalog.ErrNotFound) {
		t.Errorf("expected catalog.ErrNotFound, got %v", err)
	}
}

// ── Achievements ────────────────────────────────────────

func TestCheckAndAwardAchievements_Idempotent(t *testing.T) {
	svc, _ := newTestService(t)
	user := mustCreateUser(t, svc)

	if _, err := svc.RecordVideoView(1, user.ID); err != nil {
		t.Fatalf("record view: %v", err)
	}

	// State unchanged: repeated sweeps award nothing.
	for i := 0; i < 3; i++ {
		newAchievements, err := svc.CheckAndAwardAchievements(user.ID)
		if err != nil {
			t.Fatalf("sweep %d: %v", i, err)
		}
		if len(newAchievements) != 0 {
			t.Fatalf("sweep %d awarded %d achievements, want 0", i, len(newAchievements))
		}
	}

	earned, _ := svc.EarnedAchievements(user.ID)
	if len(earned) != 1 {
		t.Errorf("earned = %d achievements, want exactly 1", len(earned))
	}
}

// ── Leaderboard ─────────────────────────────────────────

func TestLeaderboard_OrderTieBreakAndLimit(t *testing.T) {
	svc, store := newTestService(t)

	store.SeedUser(models.User{ID: 1, Name: "Low", TotalScore: 100})
	store.SeedUser(models.User{ID: 2, Name: "High", TotalScore: 300})
	store.SeedUser(models.User{ID: 3, Name: "Tied Late", TotalScore: 200})
	store.SeedUser(models.User{ID: 4, Name: "Tied Later", TotalScore: 200})

	users, err := svc.Leaderboard(0)
	if err != nil {
		t.Fatalf("leaderboard: %v", err)
	}
	gotIDs := make([]int64, len(users))
	for i, u := range users {
		gotIDs[i] = u.ID
	}
	wantIDs := []int64{2, 3, 4, 1}
	for i := range wantIDs {
		if gotIDs[i] != wantIDs[i] {
			t.Fatalf("leaderboard order = %v, want %v", gotIDs, wantIDs)
		}
	}

	users, err = svc.Leaderboard(2)
	if err != nil {
		t.Fatalf("leaderboard: %v", err)
	}
	if len(users) != 2 {
		t.Errorf("limit 2 returned %d users", len(users))
	}
}

func TestSeedDemoUsers_PopulatesLeaderboard(t *testing.T) {
	svc, store := newTestService(t)
	SeedDemoUsers(store)

	users, err := svc.Leaderboard(10)
	if err != nil {
		t.Fatalf("leaderboard: %v", err)
	}
	if len(users) != 10 {
		t.Fatalf("expected 10 of 12 demo users, got %d", len(users))
	}
	if users[0].Name != "Emma Chen" || users[0].TotalScore != 2850 {
		t.Errorf("top user = %s (%d)", users[0].Name, users[0].TotalScore)
	}
	for i := 1; i < len(users); i++ {
		if users[i].TotalScore > users[i-1].TotalScore {
			t.Errorf("leaderboard not sorted at position %d", i)
		}
	}
}

// ── Learning Context ────────────────────────────────────

func TestLearningContext_Summarizes(t *testing.T) {
	svc, _ := newTestService(t)
	user := mustCreateUser(t, svc)

	if _, err := svc.UpdateProgress(user.ID, 2, 5); err != nil {
		t.Fatalf("update progress: %v", err)
	}
	if _, err := svc.SubmitQuizAttempt(models.SubmitAttemptRequest{
		UserID: user.ID, QuizID: 1, SelectedAnswer: 2, IsCorrect: true, PointsEarned: 20,
	}); err != nil {
		t.Fatalf("submit attempt: %v", err)
	}
	if _, err := svc.SubmitQuizAttempt(models.SubmitAttemptRequest{
		UserID: user.ID, QuizID: 2, SelectedAnswer: 0, IsCorrect: false, PointsEarned: 0,
	}); err != nil {
		t.Fatalf("submit attempt: %v", err)
	}

	lc, err := svc.LearningContext(user.ID)
	if err != nil {
		t.Fatalf("learning context: %v", err)
	}
	if lc.Level != 1 {
		t.Errorf("level = %d, want 1", lc.Level)
	}
	if lc.QuizAccuracyPct != 50 {
		t.Errorf("accuracy = %v, want 50", lc.QuizAccuracyPct)
	}
	// 5 of 59 total topics across the seeded subjects.
	if lc.OverallProgressPct <= 0 || lc.OverallProgressPct >= 100 {
		t.Errorf("progress pct = %v, want within (0, 100)", lc.OverallProgressPct)
	}
}
