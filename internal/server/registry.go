package server

import (
	"sync"

	"github.com/swipeai/deskassist/internal/models"
)

// session tracks one ingestion run and its aftermath. Events arrive
// from the ingestion goroutine; readers come from request handlers.
type session struct {
	mu       sync.Mutex
	id       string
	filename string
	events   []models.ProgressEvent
	result   *models.IngestResult
	done     bool
}

func (s *session) appendEvent(e models.ProgressEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, e)
}

func (s *session) finish(result models.IngestResult) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.result = &result
	s.done = true
}

// extractedText returns the document text and whether ingestion has
// finished.
func (s *session) extractedText() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.done || s.result == nil {
		return "", false
	}
	return s.result.Text, true
}

func (s *session) status() models.DocumentStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := models.DocumentStatus{
		DocumentID: s.id,
		Filename:   s.filename,
		Done:       s.done,
		Events:     append([]models.ProgressEvent(nil), s.events...),
	}
	if s.done && s.result != nil {
		r := *s.result
		st.Result = &r
	}
	return st
}

// registry holds the live document sessions, keyed by document ID.
type registry struct {
	mu       sync.RWMutex
	sessions map[string]*session
}

func newRegistry() *registry {
	return &registry{sessions: map[string]*session{}}
}

func (r *registry) create(id, filename string) *session {
	s := &session{id: id, filename: filename}
	r.mu.Lock()
	r.sessions[id] = s
	r.mu.Unlock()
	return s
}

func (r *registry) get(id string) (*session, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.sessions[id]
	return s, ok
}
