package catalog

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/curioquest/backend/internal/models"
)

// SQLStore is the Postgres-backed catalog.
type SQLStore struct {
	db *sql.DB
}

func NewSQLStore(db *sql.DB) *SQLStore {
	return &SQLStore{db: db}
}

func (s *SQLStore) Subjects() ([]models.Subject, error) {
	rows, err := s.db.Query(
		`SELECT id, name, icon, color, total_topics FROM subjects ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("get subjects: %w", err)
	}
	defer rows.Close()

	var subjects []models.Subject
	for rows.Next() {
		var subject models.Subject
		if err := rows.Scan(&subject.ID, &subject.Name, &subject.Icon, &subject.Color, &subject.TotalTopics); err != nil {
			return nil, err
		}
		subjects = append(subjects, subject)
	}
	return subjects, rows.Err()
}

func (s *SQLStore) Subject(id int64) (*models.Subject, error) {
	var subject models.Subject
	err := s.db.QueryRow(
		`SELECT id, name, icon, color, total_topics FROM subjects WHERE id = $1`,
		id,
	).Scan(&subject.ID, &subject.Name, &subject.Icon, &subject.Color, &subject.TotalTopics)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get subject: %w", err)
	}
	return &subject, nil
}

func (s *SQLStore) Videos() ([]models.Video, error) {
	return s.queryVideos(`SELECT id, title, description, subject_id, thumbnail_url, video_url,
	        duration, created_by, likes, views
	 FROM videos ORDER BY id`)
}

func (s *SQLStore) VideosBySubject(subjectID int64) ([]models.Video, error) {
	return s.queryVideos(`SELECT id, title, description, subject_id, thumbnail_url, video_url,
	        duration, created_by, likes, views
	 FROM videos WHERE subject_id = $1 ORDER BY id`, subjectID)
}

func (s *SQLStore) queryVideos(query string, args ...interface{}) ([]models.Video, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("get videos: %w", err)
	}
	defer rows.Close()

	var videos []models.Video
	for rows.Next() {
		var v models.Video
		if err := rows.Scan(&v.ID, &v.Title, &v.Description, &v.SubjectID, &v.ThumbnailURL,
			&v.VideoURL, &v.Duration, &v.CreatedBy, &v.Likes, &v.Views); err != nil {
			return nil, err
		}
		videos = append(videos, v)
	}
	return videos, rows.Err()
}

func (s *SQLStore) IncrementVideoViews(videoID int64) error {
	result, err := s.db.Exec(
		`UPDATE videos SET views = views + 1 WHERE id = $1`,
		videoID,
	)
	if err != nil {
		return fmt.Errorf("increment views: %w", err)
	}
	affected, _ := result.RowsAffected()
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *SQLStore) Quiz(id int64) (*models.Quiz, error) {
	return s.scanQuiz(s.db.QueryRow(
		`SELECT id, subject_id, question, options, correct_answer, COALESCE(explanation, ''), difficulty
		 FROM quizzes WHERE id = $1`,
		id,
	))
}

func (s *SQLStore) QuizzesBySubject(subjectID int64) ([]models.Quiz, error) {
	rows, err := s.db.Query(
		`SELECT id, subject_id, question, options, correct_answer, COALESCE(explanation, ''), difficulty
		 FROM quizzes WHERE subject_id = $1 ORDER BY id`,
		subjectID,
	)
	if err != nil {
		return nil, fmt.Errorf("get quizzes: %w", err)
	}
	defer rows.Close()

	var quizzes []models.Quiz
	for rows.Next() {
		var quiz models.Quiz
		var options []byte
		if err := rows.Scan(&quiz.ID, &quiz.SubjectID, &quiz.Question, &options,
			&quiz.CorrectAnswer, &quiz.Explanation, &quiz.Difficulty); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(options, &quiz.Options); err != nil {
			return nil, fmt.Errorf("decode quiz options: %w", err)
		}
		quizzes = append(quizzes, quiz)
	}
	return quizzes, rows.Err()
}

func (s *SQLStore) RandomQuiz() (*models.Quiz, error) {
	return s.scanQuiz(s.db.QueryRow(
		`SELECT id, subject_id, question, options, correct_answer, COALESCE(explanation, ''), difficulty
		 FROM quizzes ORDER BY RANDOM() LIMIT 1`,
	))
}

func (s *SQLStore) scanQuiz(row *sql.Row) (*models.Quiz, error) {
	var quiz models.Quiz
	var options []byte
	err := row.Scan(&quiz.ID, &quiz.SubjectID, &quiz.Question, &options,
		&quiz.CorrectAnswer, &quiz.Explanation, &quiz.Difficulty)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get quiz: %w", err)
	}
	if err := json.Unmarshal(options, &quiz.Options); err != nil {
		return nil, fmt.Errorf("decode quiz options: %w", err)
	}
	return &quiz, nil
}

func (s *SQLStore) Achievements() ([]models.Achievement, error) {
	rows, err := s.db.Query(
		`SELECT id, name, description, icon, color, requirement FROM achievements ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("get achievements: %w", err)
	}
	defer rows.Close()

	var achievements []models.Achievement
	for rows.Next() {
		var a models.Achievement
		var requirement []byte
		if err := rows.Scan(&a.ID, &a.Name, &a.Description, &a.Icon, &a.Color, &requirement); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(requirement, &a.Requirement); err != nil {
			return nil, fmt.Errorf("decode achievement requirement: %w", err)
		}
		achievements = append(achievements, a)
	}
	return achievements, rows.Err()
}

// Seeding inserts are idempotent so startup re-seeding is safe.

func (s *SQLStore) InsertSubject(subject models.Subject) error {
	_, err := s.db.Exec(
		`INSERT INTO subjects (id, name, icon, color, total_topics)
		 VALUES ($1, $2, $3, $4, $5)
		 ON CONFLICT (id) DO NOTHING`,
		subject.ID, subject.Name, subject.Icon, subject.Color, subject.TotalTopics,
	)
	return err
}

func (s *SQLStore) InsertVideo(video models.Video) error {
	_, err := s.db.Exec(
		`INSERT INTO videos (id, title, description, subject_id, thumbnail_url, video_url,
		                     duration, created_by, likes, views)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		 ON CONFLICT (id) DO NOTHING`,
		video.ID, video.Title, video.Description, video.SubjectID, video.ThumbnailURL,
		video.VideoURL, video.Duration, video.CreatedBy, video.Likes, video.Views,
	)
	return err
}

func (s *SQLStore) InsertQuiz(quiz models.Quiz) error {
	options, err := json.Marshal(quiz.Options)
	if err != nil {
		return fmt.Errorf("encode quiz options: %w", err)
	}
	_, err = s.db.Exec(
		`INSERT INTO quizzes (id, subject_id, question, options, correct_answer, explanation, difficulty)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 ON CONFLICT (id) DO NOTHING`,
		quiz.ID, quiz.SubjectID, quiz.Question, options, quiz.CorrectAnswer, quiz.Explanation, quiz.Difficulty,
	)
	return err
}

func (s *SQLStore) InsertAchievement(achievement models.Achievement) error {
	requirement, err := json.Marshal(achievement.Requirement)
	if err != nil {
		return fmt.Errorf("encode achievement requirement: %w", err)
	}
	_, err = s.db.Exec(
		`INSERT INTO achievements (id, name, description, icon, color, requirement)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 ON CONFLICT (id) DO NOTHING`,
		achievement.ID, achievement.Name, achievement.Description, achievement.Icon, achievement.Color, requirement,
	)
	return err
}
