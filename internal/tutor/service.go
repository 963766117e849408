package tutor

import (
	"context"
	"fmt"
	"log"

	"github.com/curioquest/backend/internal/ledger"
	"github.com/curioquest/backend/internal/models"
)

// maxHistoryMessages caps how much conversation we replay to the model.
const maxHistoryMessages = 20

// Service answers student questions, personalizing each reply with the
// student's ledger state when a user id is supplied.
type Service struct {
	llm    LLMClient
	ledger *ledger.Service
}

func NewService(llm LLMClient, ledgerSvc *ledger.Service) *Service {
	return &Service{llm: llm, ledger: ledgerSvc}
}

func (s *Service) Respond(ctx context.Context, req models.TutorRequest) (*models.TutorResponse, error) {
	var lc *models.LearningContext
	if req.UserID != 0 {
		var err error
		lc, err = s.ledger.LearningContext(req.UserID)
		if err != nil {
			// An unknown or broken user record should not block tutoring;
			// fall back to the impersonal prompt.
			log.Printf("[tutor] learning context for user %d unavailable: %v", req.UserID, err)
			lc = nil
		}
	}

	history := req.ConversationHistory
	if len(history) > maxHistoryMessages {
		history = history[len(history)-maxHistoryMessages:]
	}

	systemPrompt := SystemPrompt(lc, req.IsHintRequest)
	resp, err := s.llm.Chat(ctx, systemPrompt, history, req.UserMessage)
	if err != nil {
		return nil, fmt.Errorf("tutor chat: %w", err)
	}

	return &models.TutorResponse{Response: resp.Content}, nil
}
