package catalog

import (
	"errors"
	"testing"
)

func newSeededStore(t *testing.T) *MemStore {
	t.Helper()
	store := NewMemStore()
	if err := Seed(store); err != nil {
		t.Fatalf("seed: %v", err)
	}
	return store
}

func TestSeed_Idempotent(t *testing.T) {
	store := newSeededStore(t)
	if err := Seed(store); err != nil {
		t.Fatalf("second seed: %v", err)
	}

	subjects, err := store.Subjects()
	if err != nil {
		t.Fatalf("subjects: %v", err)
	}
	if len(subjects) != 5 {
		t.Errorf("expected 5 subjects after double seed, got %d", len(subjects))
	}
}

func TestSubjects_SortedByID(t *testing.T) {
	store := newSeededStore(t)

	subjects, err := store.Subjects()
	if err != nil {
		t.Fatalf("subjects: %v", err)
	}
	for i := 1; i < len(subjects); i++ {
		if subjects[i].ID <= subjects[i-1].ID {
			t.Fatalf("subjects out of order at position %d", i)
		}
	}
}

func TestSubject_NotFound(t *testing.T) {
	store := newSeededStore(t)
	if _, err := store.Subject(999); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestVideosBySubject_FiltersCorrectly(t *testing.T) {
	store := newSeededStore(t)

	videos, err := store.VideosBySubject(1)
	if err != nil {
		t.Fatalf("videos by subject: %v", err)
	}
	for _, v := range videos {
		if v.SubjectID != 1 {
			t.Errorf("video %d belongs to subject %d", v.ID, v.SubjectID)
		}
	}
	if len(videos) == 0 {
		t.Error("expected at least one seeded video for subject 1")
	}

	videos, err = store.VideosBySubject(999)
	if err != nil {
		t.Fatalf("videos by unknown subject: %v", err)
	}
	if len(videos) != 0 {
		t.Errorf("expected no videos for unknown subject, got %d", len(videos))
	}
}

func TestIncrementVideoViews(t *testing.T) {
	store := newSeededStore(t)

	before, err := store.Videos()
	if err != nil {
		t.Fatalf("videos: %v", err)
	}
	initialViews := before[0].Views

	if err := store.IncrementVideoViews(before[0].ID); err != nil {
		t.Fatalf("increment views: %v", err)
	}

	after, _ := store.Videos()
	if after[0].Views != initialViews+1 {
		t.Errorf("views = %d, want %d", after[0].Views, initialViews+1)
	}

	if err := store.IncrementVideoViews(999); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound for unknown video, got %v", err)
	}
}

func TestRandomQuiz_ReturnsSeededQuiz(t *testing.T) {
	store := newSeededStore(t)

	quiz, err := store.RandomQuiz()
	if err != nil {
		t.Fatalf("random quiz: %v", err)
	}
	if quiz.ID < 1 || quiz.ID > 3 {
		t.Errorf("unexpected quiz id %d", quiz.ID)
	}
	if len(quiz.Options) != 4 {
		t.Errorf("quiz %d has %d options, want 4", quiz.ID, len(quiz.Options))
	}
	if quiz.CorrectAnswer < 0 || quiz.CorrectAnswer >= len(quiz.Options) {
		t.Errorf("quiz %d correct answer %d out of range", quiz.ID, quiz.CorrectAnswer)
	}
}

func TestRandomQuiz_EmptyStore(t *testing.T) {
	store := NewMemStore()
	if _, err := store.RandomQuiz(); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound on empty store, got %v", err)
	}
}
