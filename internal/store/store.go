package store

import (
	"encoding/json"

	"github.com/darshan27122006-bit/Equilearn/internal/model"
	"github.com/darshan27122006-bit/Equilearn/pkg/monitoring"
)

// Collection key suffixes. Each collection lives under a single
// namespaced backend key holding the whole serialized slice.
const (
	keyUsers         = "users"
	keyContent       = "content"
	keyProgress      = "progress"
	keyInstitutions  = "institutions"
	keyCachedLessons = "cached_lessons"
	keyQuestions     = "questions"
	keyClassrooms    = "classrooms"
	keyMessages      = "messages"
	keyDoubts        = "doubts"
	keyQuizzes       = "quizzes"
	keyQuizAttempts  = "quiz_attempts"
	keyAssignments   = "assignments"
	keySubmissions   = "submissions"
	keySession       = "session"
)

var collectionKeys = []string{
	keyUsers, keyContent, keyProgress, keyInstitutions,
	keyCachedLessons, keyQuestions, keyClassrooms, keyMessages,
	keyDoubts, keyQuizzes, keyQuizAttempts, keyAssignments,
	keySubmissions, keySession,
}

// Store is the durable, synchronous collection layer over a Backend. Every
// mutation rewrites the whole collection; there is no delta write and
// no cross-process locking (last writer wins). That bounds practical
// collection sizes to hundreds of rows, which is the intended scale.
type Store struct {
	backend Backend
	prefix  string
}

// New wraps a backend under the given key namespace. Namespacing keeps
// unrelated data sharing the same backend from colliding.
func New(backend Backend, prefix string) *Store {
	if prefix == "" {
		prefix = "equilearn"
	}
	return &Store{backend: backend, prefix: prefix}
}

func (s *Store) key(name string) string {
	return s.prefix + ":" + name
}

// readAll deserializes a whole collection. The read path never fails:
// a missing key, a backend error, or a corrupt value all yield an
// empty slice.
func readAll[T any](s *Store, name string) []T {
	monitoring.StoreOps.WithLabelValues(name, "read").Inc()
	raw, err := s.backend.Get(s.key(name))
	if err != nil || len(raw) == 0 {
		return []T{}
	}
	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		monitoring.StoreCorruptReads.WithLabelValues(name).Inc()
		return []T{}
	}
	return items
}

func writeAll[T any](s *Store, name string, items []T) error {
	monitoring.StoreOps.WithLabelValues(name, "write").Inc()
	raw, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return s.backend.Set(s.key(name), raw)
}

// Collection is a typed accessor over one persisted collection. The id
// func extracts the collection-specific identifying field (`id`,
// `contentId`, ...).
type Collection[T any] struct {
	store *Store
	name  string
	id    func(*T) string
}

// GetAll returns the full collection, empty if none persisted.
func (c *Collection[T]) GetAll() []T {
	return readAll[T](c.store, c.name)
}

// SetAll overwrites the entire collection in one synchronous write.
func (c *Collection[T]) SetAll(items []T) error {
	return writeAll(c.store, c.name, items)
}

// Add appends one item: read-whole, push, write-whole.
func (c *Collection[T]) Add(item T) error {
	items := c.GetAll()
	items = append(items, item)
	return c.SetAll(items)
}

// Find returns the item with the given id, if present.
func (c *Collection[T]) Find(id string) (T, bool) {
	for _, item := range c.GetAll() {
		if c.id(&item) == id {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// Update locates the item by id via linear scan and shallow-merges the
// patch onto it: only the fields present in the patch are overwritten.
// An absent id is a no-op reported through the found return, so
// callers can tell "nothing matched" from a write failure.
func (c *Collection[T]) Update(id string, patch any) (bool, error) {
	raw, err := json.Marshal(patch)
	if err != nil {
		return false, err
	}
	items := c.GetAll()
	for i := range items {
		if c.id(&items[i]) != id {
			continue
		}
		if err := json.Unmarshal(raw, &items[i]); err != nil {
			return false, err
		}
		return true, c.SetAll(items)
	}
	return false, nil
}

// Delete filters the id out of the collection and rewrites it. Absent
// ids no-op, reported through the found return.
func (c *Collection[T]) Delete(id string) (bool, error) {
	items := c.GetAll()
	kept := items[:0:0]
	for _, item := range items {
		if c.id(&item) != id {
			kept = append(kept, item)
		}
	}
	if len(kept) == len(items) {
		return false, nil
	}
	return true, c.SetAll(kept)
}

func (s *Store) Users() *Collection[model.User] {
	return &Collection[model.User]{store: s, name: keyUsers, id: func(u *model.User) string { return u.ID }}
}

func (s *Store) Content() *Collection[model.Content] {
	return &Collection[model.Content]{store: s, name: keyContent, id: func(c *model.Content) string { return c.ContentID }}
}

func (s *Store) Progress() *Collection[model.Progress] {
	return &Collection[model.Progress]{store: s, name: keyProgress, id: func(p *model.Progress) string { return p.ID }}
}

func (s *Store) Institutions() *Collection[model.Institution] {
	return &Collection[model.Institution]{store: s, name: keyInstitutions, id: func(i *model.Institution) string { return i.ID }}
}

// Questions is the append-only AI-tutor log. Update/Delete exist on
// the accessor but nothing in the app calls them for this collection.
func (s *Store) Questions() *Collection[model.Question] {
	return &Collection[model.Question]{store: s, name: keyQuestions, id: func(q *model.Question) string { return q.ID }}
}

func (s *Store) Classrooms() *Collection[model.Classroom] {
	return &Collection[model.Classroom]{store: s, name: keyClassrooms, id: func(c *model.Classroom) string { return c.ID }}
}

func (s *Store) Messages() *Collection[model.DirectMessage] {
	return &Collection[model.DirectMessage]{store: s, name: keyMessages, id: func(m *model.DirectMessage) string { return m.ID }}
}

func (s *Store) Doubts() *Collection[model.DoubtThread] {
	return &Collection[model.DoubtThread]{store: s, name: keyDoubts, id: func(d *model.DoubtThread) string { return d.ID }}
}

func (s *Store) Quizzes() *Collection[model.Quiz] {
	return &Collection[model.Quiz]{store: s, name: keyQuizzes, id: func(q *model.Quiz) string { return q.ID }}
}

func (s *Store) QuizAttempts() *Collection[model.QuizAttempt] {
	return &Collection[model.QuizAttempt]{store: s, name: keyQuizAttempts, id: func(a *model.QuizAttempt) string { return a.ID }}
}

func (s *Store) Assignments() *Collection[model.Assignment] {
	return &Collection[model.Assignment]{store: s, name: keyAssignments, id: func(a *model.Assignment) string { return a.ID }}
}

func (s *Store) Submissions() *Collection[model.Submission] {
	return &Collection[model.Submission]{store: s, name: keySubmissions, id: func(sub *model.Submission) string { return sub.ID }}
}

// CachedLessons returns the offline-read snapshots.
func (s *Store) CachedLessons() []model.CachedLesson {
	return readAll[model.CachedLesson](s, keyCachedLessons)
}

// CacheLesson upserts a lesson snapshot by contentId: replaced in
// place when present, appended otherwise.
func (s *Store) CacheLesson(lesson model.CachedLesson) error {
	cached := s.CachedLessons()
	for i := range cached {
		if cached[i].ContentID == lesson.ContentID {
			cached[i] = lesson
			return writeAll(s, keyCachedLessons, cached)
		}
	}
	cached = append(cached, lesson)
	return writeAll(s, keyCachedLessons, cached)
}

// SetCurrentUser writes the authenticated user into the session slot.
func (s *Store) SetCurrentUser(u model.User) error {
	monitoring.StoreOps.WithLabelValues(keySession, "write").Inc()
	raw, err := json.Marshal(u)
	if err != nil {
		return err
	}
	return s.backend.Set(s.key(keySession), raw)
}

// CurrentUser returns the session user, or nil when no session is
// active (or the slot is corrupt).
func (s *Store) CurrentUser() *model.User {
	monitoring.StoreOps.WithLabelValues(keySession, "read").Inc()
	raw, err := s.backend.Get(s.key(keySession))
	if err != nil || len(raw) == 0 {
		return nil
	}
	var u model.User
	if err := json.Unmarshal(raw, &u); err != nil {
		return nil
	}
	return &u
}

// ClearCurrentUser empties the session slot.
func (s *Store) ClearCurrentUser() error {
	return s.backend.Delete(s.key(keySession))
}

// ClearAll removes every collection in this namespace.
func (s *Store) ClearAll() error {
	for _, name := range collectionKeys {
		if err := s.backend.Delete(s.key(name)); err != nil {
			return err
		}
	}
	return nil
}

func (s *Store) Close() error {
	return s.backend.Close()
}
