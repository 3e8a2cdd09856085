package service

import (
	"context"
	"sort"
	"time"

	"github.com/darshan27122006-bit/Equilearn/internal/model"
	"github.com/darshan27122006-bit/Equilearn/internal/store"

	"github.com/google/uuid"
)

// TutorService fronts the AI tutor: every answered question is
// appended to the question log; nothing in the app ever edits or
// deletes log entries.
type TutorService struct {
	Store *store.Store
	AI    *AIService
}

func NewTutorService(st *store.Store, ai *AIService) *TutorService {
	return &TutorService{Store: st, AI: ai}
}

// Ask forwards the question to the AI backend and logs the exchange.
func (s *TutorService) Ask(ctx context.Context, token string, student *model.User, contentID, question string) (model.Question, error) {
	answer, err := s.AI.Answer(ctx, token, question, contentID, student.Language)
	if err != nil {
		return model.Question{}, err
	}

	entry := model.Question{
		ID:        "question-" + uuid.New().String(),
		StudentID: student.ID,
		ContentID: contentID,
		Question:  question,
		Answer:    answer,
		Timestamp: time.Now(),
	}
	if err := s.Store.Questions().Add(entry); err != nil {
		return model.Question{}, err
	}
	return entry, nil
}

// History returns the student's past questions, newest first.
func (s *TutorService) History(studentID string) []model.Question {
	all := s.Store.Questions().GetAll()
	mine := make([]model.Question, 0, len(all))
	for _, q := range all {
		if q.StudentID == studentID {
			mine = append(mine, q)
		}
	}
	sort.Slice(mine, func(i, j int) bool { return mine[i].Timestamp.After(mine[j].Timestamp) })
	return mine
}
