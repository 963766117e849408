package models

type Subject struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Icon        string `json:"icon"`
	Color       string `json:"color"`
	TotalTopics int    `json:"total_topics"`
}

type Video struct {
	ID           int64  `json:"id"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	SubjectID    int64  `json:"subject_id"`
	ThumbnailURL string `json:"thumbnail_url"`
	VideoURL     string `json:"video_url"`
	Duration     int    `json:"duration"` // seconds
	CreatedBy    string `json:"created_by"`
	Likes        int    `json:"likes"`
	Views        int    `json:"views"`
}

type Quiz struct {
	ID            int64    `json:"id"`
	SubjectID     int64    `json:"subject_id"`
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correct_answer"` // index into Options
	Explanation   string   `json:"explanation"`
	Difficulty    string   `json:"difficulty"` // easy, medium, hard
}

// ── Achievement Requirement Types ─────────────────────────

const (
	RequirementVideosWatched = "videos_watched"
	RequirementStreakDays    = "streak_days"
	// RequirementPerfectQuizzes counts individually correct quiz attempts,
	// not fully-perfect quiz sessions. The name is historical; the unlock
	// behavior depends on the literal count of correct answers.
	RequirementPerfectQuizzes = "perfect_quizzes"
)

type AchievementRequirement struct {
	Type  string `json:"type"`
	Value int    `json:"value"`
}

type Achievement struct {
	ID          int64                  `json:"id"`
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	Icon        string                 `json:"icon"`
	Color       string                 `json:"color"`
	Requirement AchievementRequirement `json:"requirement"`
}
