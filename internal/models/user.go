package models

import "time"

type User struct {
	ID               int64      `json:"id"`
	Name             string     `json:"name"`
	Grade            int        `json:"grade"`
	School           string     `json:"school"`
	TotalScore       int        `json:"total_score"`
	CurrentStreak    int        `json:"current_streak"`
	LongestStreak    int        `json:"longest_streak"`
	LastActiveDate   *time.Time `json:"last_active_date"`
	VideosWatched    int        `json:"videos_watched"`
	QuizzesCompleted int        `json:"quizzes_completed"`
	CreatedAt        time.Time  `json:"created_at"`
}

type CreateUserRequest struct {
	Name   string `json:"name"`
	Grade  int    `json:"grade"`
	School string `json:"school"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
