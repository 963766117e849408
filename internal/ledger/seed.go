package ledger

import (
	"time"

	"github.com/curioquest/backend/internal/models"
)

type demoUser struct {
	id       int64
	name     string
	grade    int
	school   string
	score    int
	streak   int
	daysBack int
}

var demoUsers = []demoUser{
	{2, "Emma Chen", 10, "Lincoln High School", 2850, 15, 30},
	{3, "Marcus Johnson", 11, "Central Academy", 2720, 12, 25},
	{4, "Sofia Rodriguez", 9, "Riverside High", 2610, 18, 20},
	{5, "James Liu", 10, "Tech Valley High", 2480, 8, 15},
	{6, "Aisha Patel", 11, "Innovation Academy", 2390, 22, 12},
	{7, "Alex Thompson", 9, "Metro High School", 2275, 6, 10},
	{8, "Maya Singh", 10, "Eastside Academy", 2150, 14, 8},
	{9, "David Kim", 11, "Pioneer High", 2040, 9, 6},
	{10, "Isabella Garcia", 9, "Summit Academy", 1920, 11, 5},
	{11, "Ryan Williams", 10, "Northside High", 1850, 4, 4},
	{12, "Zoe Anderson", 11, "Valley High School", 1730, 16, 3},
	{13, "Carlos Martinez", 9, "Westfield Academy", 1640, 7, 2},
}

// SeedDemoUsers loads sample leaderboard users into the in-memory store so
// a fresh process has a populated leaderboard to render.
func SeedDemoUsers(store *MemStore) {
	now := time.Now().UTC()
	today := dateOf(now)

	for _, d := range demoUsers {
		store.SeedUser(models.User{
			ID:             d.id,
			Name:           d.name,
			Grade:          d.grade,
			School:         d.school,
			TotalScore:     d.score,
			CurrentStreak:  d.streak,
			LongestStreak:  d.streak,
			LastActiveDate: &today,
			CreatedAt:      now.AddDate(0, 0, -d.daysBack),
		})
	}
}
