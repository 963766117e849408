package tutor

import (
	"context"
	"strings"
	"testing"

	"github.com/curioquest/backend/internal/catalog"
	"github.com/curioquest/backend/internal/ledger"
	"github.com/curioquest/backend/internal/models"
)

// recordingClient captures what the service sends to the model.
type recordingClient struct {
	lastSystem  string
	lastHistory []models.ChatMessage
	lastMessage string
}

func (c *recordingClient) Chat(ctx context.Context, systemPrompt string, history []models.ChatMessage, userMessage string) (*LLMResponse, error) {
	c.lastSystem = systemPrompt
	c.lastHistory = history
	c.lastMessage = userMessage
	return &LLMResponse{Content: "ok"}, nil
}

func newTestService(t *testing.T) (*Service, *recordingClient, *ledger.Service) {
	t.Helper()

	catalogStore := catalog.NewMemStore()
	if err := catalog.Seed(catalogStore); err != nil {
		t.Fatalf("seed catalog: %v", err)
	}
	ledgerSvc := ledger.NewService(ledger.NewMemStore(), catalog.NewService(catalogStore))

	client := &recordingClient{}
	return NewService(client, ledgerSvc), client, ledgerSvc
}

func TestRespond_PersonalizesForKnownUser(t *testing.T) {
	svc, client, ledgerSvc := newTestService(t)

	user, err := ledgerSvc.CreateUser(models.CreateUserRequest{
		Name: "Maya Singh", Grade: 10, School: "Eastside Academy",
	})
	if err != nil {
		t.Fatalf("create user: %v", err)
	}

	resp, err := svc.Respond(context.Background(), models.TutorRequest{
		UserID:      user.ID,
		UserMessage: "Can you explain photosynthesis?",
	})
	if err != nil {
		t.Fatalf("respond: %v", err)
	}
	if resp.Response != "ok" {
		t.Errorf("response = %q", resp.Response)
	}
	if !strings.Contains(client.lastSystem, "Maya Singh") {
		t.Error("expected student name in system prompt")
	}
	if client.lastMessage != "Can you explain photosynthesis?" {
		t.Errorf("user message = %q", client.lastMessage)
	}
}

func TestRespond_UnknownUserFallsBackToBarePrompt(t *testing.T) {
	svc, client, _ := newTestService(t)

	_, err := svc.Respond(context.Background(), models.TutorRequest{
		UserID:      999,
		UserMessage: "help",
	})
	if err != nil {
		t.Fatalf("respond: %v", err)
	}
	if strings.Contains(client.lastSystem, "About this student") {
		t.Error("unknown user must not produce a student section")
	}
}

func TestRespond_TruncatesLongHistory(t *testing.T) {
	svc, client, _ := newTestService(t)

	history := make([]models.ChatMessage, 30)
	for i := range history {
		history[i] = models.ChatMessage{Role: "user", Content: "message"}
	}

	if _, err := svc.Respond(context.Background(), models.TutorRequest{
		UserMessage:         "latest question",
		ConversationHistory: history,
	}); err != nil {
		t.Fatalf("respond: %v", err)
	}
	if len(client.lastHistory) != maxHistoryMessages {
		t.Errorf("history length = %d, want %d", len(client.lastHistory), maxHistoryMessages)
	}
}
