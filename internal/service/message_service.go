package service

import (
	"sort"
	"time"

	"github.com/darshan27122006-bit/Equilearn/internal/model"
	"github.com/darshan27122006-bit/Equilearn/internal/store"
	"github.com/darshan27122006-bit/Equilearn/internal/util"

	"github.com/google/uuid"
)

// MessageService covers direct messages between users and classroom
// doubt threads.
type MessageService struct {
	Store *store.Store
}

func NewMessageService(st *store.Store) *MessageService {
	return &MessageService{Store: st}
}

type SendMessageInput struct {
	ReceiverID string
	Content    string
	MediaURL   string
	MediaType  string
}

func (s *MessageService) Send(senderID string, in SendMessageInput) (model.DirectMessage, error) {
	if _, ok := s.Store.Users().Find(in.ReceiverID); !ok {
		return model.DirectMessage{}, util.ErrNotFound
	}
	msg := model.DirectMessage{
		ID:         uuid.New().String(),
		SenderID:   senderID,
		ReceiverID: in.ReceiverID,
		Content:    in.Content,
		MediaURL:   in.MediaURL,
		MediaType:  in.MediaType,
		Timestamp:  time.Now(),
	}
	if err := s.Store.Messages().Add(msg); err != nil {
		return model.DirectMessage{}, err
	}
	return msg, nil
}

// Conversation returns both directions of traffic between the caller
// and the peer, oldest first, and marks messages the caller received
// as read.
func (s *MessageService) Conversation(callerID, peerID string) ([]model.DirectMessage, error) {
	all := s.Store.Messages().GetAll()
	conv := make([]model.DirectMessage, 0)
	dirty := false
	for i := range all {
		m := &all[i]
		if (m.SenderID == callerID && m.ReceiverID == peerID) ||
			(m.SenderID == peerID && m.ReceiverID == callerID) {
			if m.ReceiverID == callerID && !m.Read {
				m.Read = true
				dirty = true
			}
			conv = append(conv, *m)
		}
	}
	if dirty {
		if err := s.Store.Messages().SetAll(all); err != nil {
			return nil, err
		}
	}
	sort.Slice(conv, func(i, j int) bool { return conv[i].Timestamp.Before(conv[j].Timestamp) })
	return conv, nil
}

// UnreadCount counts messages waiting for the user.
func (s *MessageService) UnreadCount(userID string) int {
	count := 0
	for _, m := range s.Store.Messages().GetAll() {
		if m.ReceiverID == userID && !m.Read {
			count++
		}
	}
	return count
}

// OpenDoubt starts a doubt thread in a classroom with the student's
// first message.
func (s *MessageService) OpenDoubt(studentID, classroomID, title, content string) (model.DoubtThread, error) {
	classroom, ok := s.Store.Classrooms().Find(classroomID)
	if !ok {
		return model.DoubtThread{}, util.ErrNotFound
	}
	if !classroom.HasStudent(studentID) {
		return model.DoubtThread{}, util.ErrNotEnrolled
	}

	now := time.Now()
	thread := model.DoubtThread{
		ID:          "doubt-" + uuid.New().String(),
		ClassroomID: classroomID,
		StudentID:   studentID,
		Title:       title,
		Messages: []model.DoubtMessage{{
			ID:        uuid.New().String(),
			SenderID:  studentID,
			Content:   content,
			Timestamp: now,
		}},
		CreatedAt: now,
	}
	if err := s.Store.Doubts().Add(thread); err != nil {
		return model.DoubtThread{}, err
	}
	return thread, nil
}

// ReplyDoubt appends a message to an existing thread.
func (s *MessageService) ReplyDoubt(threadID, senderID, content string) (model.DoubtThread, error) {
	thread, ok := s.Store.Doubts().Find(threadID)
	if !ok {
		return model.DoubtThread{}, util.ErrNotFound
	}
	thread.Messages = append(thread.Messages, model.DoubtMessage{
		ID:        uuid.New().String(),
		SenderID:  senderID,
		Content:   content,
		Timestamp: time.Now(),
	})
	if _, err := s.Store.Doubts().Update(threadID, map[string]any{"messages": thread.Messages}); err != nil {
		return model.DoubtThread{}, err
	}
	return thread, nil
}

// ResolveDoubt marks a thread answered.
func (s *MessageService) ResolveDoubt(threadID string) (bool, error) {
	return s.Store.Doubts().Update(threadID, map[string]any{"resolved": true})
}

// DoubtsForClassroom lists a classroom's threads, newest first.
func (s *MessageService) DoubtsForClassroom(classroomID string) []model.DoubtThread {
	all := s.Store.Doubts().GetAll()
	threads := make([]model.DoubtThread, 0, len(all))
	for _, t := range all {
		if t.ClassroomID == classroomID {
			threads = append(threads, t)
		}
	}
	sort.Slice(threads, func(i, j int) bool { return threads[i].CreatedAt.After(threads[j].CreatedAt) })
	return threads
}
