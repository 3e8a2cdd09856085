package service

import (
	"time"

	"github.com/darshan27122006-bit/Equilearn/internal/model"
	"github.com/darshan27122006-bit/Equilearn/internal/store"
	"github.com/darshan27122006-bit/Equilearn/internal/util"

	"github.com/google/uuid"
)

type ProgressService struct {
	Store *store.Store
}

func NewProgressService(st *store.Store) *ProgressService {
	return &ProgressService{Store: st}
}

// Open records a lesson access: the first open creates the progress
// row, later opens refresh lastAccessed. The referenced student and
// content must exist; the store itself stays permissive, this check
// lives here.
func (s *ProgressService) Open(studentID, contentID string) (model.Progress, error) {
	if _, ok := s.Store.Users().Find(studentID); !ok {
		return model.Progress{}, util.ErrNotFound
	}
	content, ok := s.Store.Content().Find(contentID)
	if !ok {
		return model.Progress{}, util.ErrNotFound
	}

	if existing, ok := s.find(studentID, contentID); ok {
		_, err := s.Store.Progress().Update(existing.ID, map[string]any{
			"lastAccessed": time.Now(),
		})
		if err != nil {
			return model.Progress{}, err
		}
		existing.LastAccessed = time.Now()
		return existing, nil
	}

	progress := model.Progress{
		ID:           "progress-" + uuid.New().String(),
		StudentID:    studentID,
		ContentID:    contentID,
		Topic:        content.Topic,
		Completion:   0,
		Score:        0,
		LastAccessed: time.Now(),
	}
	if err := s.Store.Progress().Add(progress); err != nil {
		return model.Progress{}, err
	}
	return progress, nil
}

// Record updates completion and score. Completion is clamped to
// [0,100] before it is stored.
func (s *ProgressService) Record(progressID string, completion, score int) (bool, error) {
	return s.Store.Progress().Update(progressID, map[string]any{
		"completion":   model.ClampCompletion(completion),
		"score":        score,
		"lastAccessed": time.Now(),
	})
}

// ForStudent returns the student's progress rows.
func (s *ProgressService) ForStudent(studentID string) []model.Progress {
	all := s.Store.Progress().GetAll()
	mine := make([]model.Progress, 0, len(all))
	for _, p := range all {
		if p.StudentID == studentID {
			mine = append(mine, p)
		}
	}
	return mine
}

// All returns every progress row, for teacher and admin dashboards.
func (s *ProgressService) All() []model.Progress {
	return s.Store.Progress().GetAll()
}

func (s *ProgressService) find(studentID, contentID string) (model.Progress, bool) {
	for _, p := range s.Store.Progress().GetAll() {
		if p.StudentID == studentID && p.ContentID == contentID {
			return p, true
		}
	}
	return model.Progress{}, false
}
