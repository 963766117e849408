package catalog

import (
	"fmt"

	"github.com/curioquest/backend/internal/models"
)

var seedSubjects = []models.Subject{
	{ID: 1, Name: "Chemistry", Icon: "flask", Color: "#6C5CE7", TotalTopics: 12},
	{ID: 2, Name: "Mathematics", Icon: "calculator", Color: "#00B894", TotalTopics: 10},
	{ID: 3, Name: "English", Icon: "book", Color: "#FDCB6E", TotalTopics: 8},
	{ID: 4, Name: "Physics", Icon: "atom", Color: "#E17055", TotalTopics: 15},
	{ID: 5, Name: "Biology", Icon: "dna", Color: "#00E676", TotalTopics: 14},
}

var seedVideos = []models.Video{
	{
		ID:           1,
		Title:        "Chemistry Class: Molecular Bonding",
		Description:  "Interactive chemistry lesson on how molecules form bonds!",
		SubjectID:    1,
		ThumbnailURL: "https://images.unsplash.com/photo-1532634893-8e5c6f9acc41?w=400",
		VideoURL:     "/videos/molecular-bonding.mp4",
		Duration:     180,
		CreatedBy:    "@ChemTeacher",
		Likes:        342,
		Views:        1850,
	},
	{
		ID:           2,
		Title:        "Math Made Easy: Quick Tips",
		Description:  "Master math concepts with this engaging lesson!",
		SubjectID:    2,
		ThumbnailURL: "https://images.unsplash.com/photo-1509228468518-180dd4864904?w=400",
		VideoURL:     "/videos/math-quick-tips.mp4",
		Duration:     240,
		CreatedBy:    "@MathGuru",
		Likes:        528,
		Views:        2340,
	},
	{
		ID:           3,
		Title:        "English Literature: Creative Writing",
		Description:  "Learn creative writing techniques from expert teachers!",
		SubjectID:    3,
		ThumbnailURL: "https://images.unsplash.com/photo-1481627834876-b7833e8f5570?w=400",
		VideoURL:     "/videos/creative-writing.mp4",
		Duration:     195,
		CreatedBy:    "@EnglishPro",
		Likes:        412,
		Views:        1920,
	},
	{
		ID:           4,
		Title:        "Science Fundamentals",
		Description:  "Essential science concepts explained in an engaging way!",
		SubjectID:    4,
		ThumbnailURL: "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=400",
		VideoURL:     "/videos/science-fundamentals.mp4",
		Duration:     210,
		CreatedBy:    "@ScienceTeacher",
		Likes:        367,
		Views:        1650,
	},
}

var seedQuizzes = []models.Quiz{
	{
		ID:            1,
		SubjectID:     1,
		Question:      "What happens when two hydrogen atoms bond with one oxygen atom?",
		Options:       []string{"They form carbon dioxide", "They form water (H2O)", "They form methane", "Nothing happens"},
		CorrectAnswer: 1,
		Explanation:   "Two hydrogen atoms and one oxygen atom combine to form water (H2O), which is essential for life.",
		Difficulty:    "easy",
	},
	{
		ID:            2,
		SubjectID:     2,
		Question:      "What is the value of x in the equation 2x + 5 = 13?",
		Options:       []string{"x = 3", "x = 4", "x = 5", "x = 6"},
		CorrectAnswer: 1,
		Explanation:   "Solving 2x + 5 = 13: 2x = 8, therefore x = 4",
		Difficulty:    "easy",
	},
	{
		ID:            3,
		SubjectID:     3,
		Question:      "Who wrote the famous play 'Romeo and Juliet'?",
		Options:       []string{"Charles Dickens", "William Shakespeare", "Jane Austen", "Mark Twain"},
		CorrectAnswer: 1,
		Explanation:   "William Shakespeare wrote Romeo and Juliet, one of his most famous tragedies.",
		Difficulty:    "easy",
	},
}

var seedAchievements = []models.Achievement{
	{
		ID:          1,
		Name:        "First Steps",
		Description: "Complete your first video",
		Icon:        "play",
		Color:       "#00E676",
		Requirement: models.AchievementRequirement{Type: models.RequirementVideosWatched, Value: 1},
	},
	{
		ID:          2,
		Name:        "Quiz Master",
		Description: "Score 100% on 5 quizzes",
		Icon:        "medal",
		Color:       "#FDCB6E",
		Requirement: models.AchievementRequirement{Type: models.RequirementPerfectQuizzes, Value: 5},
	},
	{
		ID:          3,
		Name:        "Speed Learner",
		Description: "Watch 20 videos in one session",
		Icon:        "lightning-bolt",
		Color:       "#6C5CE7",
		Requirement: models.AchievementRequirement{Type: models.RequirementVideosWatched, Value: 20},
	},
	{
		ID:          4,
		Name:        "Streak Master",
		Description: "Maintain a 7-day learning streak",
		Icon:        "fire",
		Color:       "#E17055",
		Requirement: models.AchievementRequirement{Type: models.RequirementStreakDays, Value: 7},
	},
}

// Seed loads the reference data into the store. Inserts are idempotent,
// so calling it against an already-seeded backend is a no-op.
func Seed(store Store) error {
	for _, subject := range seedSubjects {
		if err := store.InsertSubject(subject); err != nil {
			return fmt.Errorf("seed subject %q: %w", subject.Name, err)
		}
	}
	for _, video := range seedVideos {
		if err := store.InsertVideo(video); err != nil {
			return fmt.Errorf("seed video %q: %w", video.Title, err)
		}
	}
	for _, quiz := range seedQuizzes {
		if err := store.InsertQuiz(quiz); err != nil {
			return fmt.Errorf("seed quiz %d: %w", quiz.ID, err)
		}
	}
	for _, achievement := range seedAchievements {
		if err := store.InsertAchievement(achievement); err != nil {
			return fmt.Errorf("seed achievement %q: %w", achievement.Name, err)
		}
	}
	return nil
}
