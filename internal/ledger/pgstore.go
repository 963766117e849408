package ledger

import (
	"database/sql"
	"fmt"

	"github.com/curioquest/backend/internal/models"
)

const userColumns = `id, name, grade, school, total_score, current_streak, longest_streak,
	last_active_date, videos_watched, quizzes_completed, created_at`

// SQLStore is the Postgres-backed ledger.
type SQLStore struct {
	db *sql.DB
}

func NewSQLStore(db *sql.DB) *SQLStore {
	return &SQLStore{db: db}
}

func scanUser(row interface{ Scan(...interface{}) error }) (*models.User, error) {
	var u models.User
	err := row.Scan(&u.ID, &u.Name, &u.Grade, &u.School, &u.TotalScore,
		&u.CurrentStreak, &u.LongestStreak, &u.LastActiveDate,
		&u.VideosWatched, &u.QuizzesCompleted, &u.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan user: %w", err)
	}
	return &u, nil
}

func (s *SQLStore) GetUser(id int64) (*models.User, error) {
	return scanUser(s.db.QueryRow(
		`SELECT `+userColumns+` FROM users WHERE id = $1`, id,
	))
}

func (s *SQLStore) CreateUser(req models.CreateUserRequest, subjects []models.Subject) (*models.User, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("begin create user: %w", err)
	}
	defer tx.Rollback()

	user, err := scanUser(tx.QueryRow(
		`INSERT INTO users (name, grade, school) VALUES ($1, $2, $3)
		 RETURNING `+userColumns,
		req.Name, req.Grade, req.School,
	))
	if err != nil {
		return nil, fmt.Errorf("insert user: %w", err)
	}

	for _, subject := range subjects {
		if _, err := tx.Exec(
			`INSERT INTO user_progress (user_id, subject_id, completed_topics)
			 VALUES ($1, $2, 0)`,
			user.ID, subject.ID,
		); err != nil {
			return nil, fmt.Errorf("materialize progress for subject %d: %w", subject.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit create user: %w", err)
	}
	return user, nil
}

func (s *SQLStore) AddScore(id int64, delta int) (*models.User, error) {
	return scanUser(s.db.QueryRow(
		`UPDATE users SET total_score = total_score + $2 WHERE id = $1
		 RETURNING `+userColumns,
		id, delta,
	))
}

func (s *SQLStore) SetStreak(id int64, streak int) (*models.User, error) {
	return scanUser(s.db.QueryRow(
		`UPDATE users SET
		    current_streak = $2,
		    longest_streak = GREATEST(longest_streak, $2),
		    last_active_date = CURRENT_DATE
		 WHERE id = $1
		 RETURNING `+userColumns,
		id, streak,
	))
}

func (s *SQLStore) IncrementVideosWatched(id int64) (*models.User, error) {
	return scanUser(s.db.QueryRow(
		`UPDATE users SET videos_watched = videos_watched + 1 WHERE id = $1
		 RETURNING `+userColumns,
		id,
	))
}

func (s *SQLStore) ProgressByUser(userID int64) ([]models.UserProgress, error) {
	rows, err := s.db.Query(
		`SELECT id, user_id, subject_id, completed_topics, last_topic_completed
		 FROM user_progress WHERE user_id = $1 ORDER BY subject_id`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("get progress: %w", err)
	}
	defer rows.Close()

	var progress []models.UserProgress
	for rows.Next() {
		var p models.UserProgress
		if err := rows.Scan(&p.ID, &p.UserID, &p.SubjectID, &p.CompletedTopics, &p.LastTopicCompleted); err != nil {
			return nil, err
		}
		progress = append(progress, p)
	}
	return progress, rows.Err()
}

func (s *SQLStore) UpdateProgress(userID, subjectID int64, completedTopics int) (*models.UserProgress, error) {
	var p models.UserProgress
	err := s.db.QueryRow(
		`UPDATE user_progress SET completed_topics = $3, last_topic_completed = NOW()
		 WHERE user_id = $1 AND subject_id = $2
		 RETURNING id, user_id, subject_id, completed_topics, last_topic_completed`,
		userID, subjectID, completedTopics,
	).Scan(&p.ID, &p.UserID, &p.SubjectID, &p.CompletedTopics, &p.LastTopicCompleted)
	if err == sql.ErrNoRows {
		return nil, ErrProgressNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("update progress: %w", err)
	}
	return &p, nil
}

func (s *SQLStore) CreateAttempt(req models.SubmitAttemptRequest) (*models.QuizAttempt, error) {
	// Attempt append and user counter bump are one transaction; a partial
	// failure must not score without recording or vice versa.
	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("begin submit attempt: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.Exec(
		`UPDATE users SET total_score = total_score + $2, quizzes_completed = quizzes_completed + 1
		 WHERE id = $1`,
		req.UserID, req.PointsEarned,
	)
	if err != nil {
		return nil, fmt.Errorf("update user stats: %w", err)
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		return nil, ErrUserNotFound
	}

	var attempt models.QuizAttempt
	err = tx.QueryRow(
		`INSERT INTO quiz_attempts (user_id, quiz_id, selected_answer, is_correct, points_earned)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, user_id, quiz_id, selected_answer, is_correct, points_earned, completed_at`,
		req.UserID, req.QuizID, req.SelectedAnswer, req.IsCorrect, req.PointsEarned,
	).Scan(&attempt.ID, &attempt.UserID, &attempt.QuizID, &attempt.SelectedAnswer,
		&attempt.IsCorrect, &attempt.PointsEarned, &attempt.CompletedAt)
	if err != nil {
		return nil, fmt.Errorf("insert attempt: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit submit attempt: %w", err)
	}
	return &attempt, nil
}

func (s *SQLStore) AttemptsByUser(userID int64) ([]models.QuizAttempt, error) {
	rows, err := s.db.Query(
		`SELECT id, user_id, quiz_id, selected_answer, is_correct, points_earned, completed_at
		 FROM quiz_attempts WHERE user_id = $1 ORDER BY id`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("get attempts: %w", err)
	}
	defer rows.Close()

	var attempts []models.QuizAttempt
	for rows.Next() {
		var a models.QuizAttempt
		if err := rows.Scan(&a.ID, &a.UserID, &a.QuizID, &a.SelectedAnswer,
			&a.IsCorrect, &a.PointsEarned, &a.CompletedAt); err != nil {
			return nil, err
		}
		attempts = append(attempts, a)
	}
	return attempts, rows.Err()
}

func (s *SQLStore) AchievementsByUser(userID int64) ([]models.UserAchievement, error) {
	rows, err := s.db.Query(
		`SELECT id, user_id, achievement_id, earned_at
		 FROM user_achievements WHERE user_id = $1 ORDER BY earned_at`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("get user achievements: %w", err)
	}
	defer rows.Close()

	var earned []models.UserAchievement
	for rows.Next() {
		var ua models.UserAchievement
		if err := rows.Scan(&ua.ID, &ua.UserID, &ua.AchievementID, &ua.EarnedAt); err != nil {
			return nil, err
		}
		earned = append(earned, ua)
	}
	return earned, rows.Err()
}

func (s *SQLStore) AwardAchievement(userID, achievementID int64) (*models.UserAchievement, error) {
	var ua models.UserAchievement
	err := s.db.QueryRow(
		`INSERT INTO user_achievements (user_id, achievement_id) VALUES ($1, $2)
		 ON CONFLICT (user_id, achievement_id) DO NOTHING
		 RETURNING id, user_id, achievement_id, earned_at`,
		userID, achievementID,
	).Scan(&ua.ID, &ua.UserID, &ua.AchievementID, &ua.EarnedAt)
	if err == sql.ErrNoRows {
		return nil, ErrAlreadyAwarded
	}
	if err != nil {
		return nil, fmt.Errorf("award achievement: %w", err)
	}
	return &ua, nil
}

func (s *SQLStore) TopUsers(limit int) ([]models.User, error) {
	rows, err := s.db.Query(
		`SELECT `+userColumns+` FROM users
		 ORDER BY total_score DESC, id ASC
		 LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("get leaderboard: %w", err)
	}
	defer rows.Close()

	var users []models.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, *user)
	}
	return users, rows.Err()
}
