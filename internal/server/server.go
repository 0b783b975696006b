// Package server exposes the assistant over HTTP: document ingestion
// with progress reporting, document Q&A, and clipboard translation
// and Q&A.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/swipeai/deskassist/internal/assistant"
	"github.com/swipeai/deskassist/internal/ingest"
	"github.com/swipeai/deskassist/internal/models"
)

const maxUploadBytes = 64 << 20

// DocumentIngestor runs one ingestion sequence per call.
type DocumentIngestor interface {
	Run(ctx context.Context, path string, emit ingest.EventFunc) models.IngestResult
}

// Asker answers questions in the two assistant modes.
type Asker interface {
	AskDocument(ctx context.Context, docText, question, language string) (string, error)
	AskClipboard(ctx context.Context, copied, question, language string) (string, error)
}

// SnippetTranslator renders clipboard text into a target language.
type SnippetTranslator interface {
	Translate(ctx context.Context, text, target string) (string, error)
}

// Server wires the HTTP surface to the assistant components.
type Server struct {
	ingestor   DocumentIngestor
	asker      Asker
	translator SnippetTranslator
	documents  *registry
}

// New creates a Server.
func New(ingestor DocumentIngestor, asker Asker, translator SnippetTranslator) *Server {
	return &Server{
		ingestor:   ingestor,
		asker:      asker,
		translator: translator,
		documents:  newRegistry(),
	}
}

// Routes builds the chi router.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"ok": true, "service": "deskassist"})
	})

	r.Post("/documents", s.handleUpload)
	r.Get("/documents/{id}", s.handleStatus)
	r.Post("/documents/{id}/ask", s.handleDocumentAsk)

	r.Post("/clipboard/translate", s.handleTranslate)
	r.Post("/clipboard/ask", s.handleClipboardAsk)

	return r
}

// handleUpload accepts a multipart document, spools it to a temp file,
// and starts the ingestion sequence on its own goroutine. The response
// goes out immediately; progress is polled via the status endpoint.
// There is no queueing and no cancellation: each upload gets an
// independent run.
func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "missing file field", http.StatusBadRequest)
		return
	}
	defer file.Close()

	tempDir, err := os.MkdirTemp("", "deskassist-upload-*")
	if err != nil {
		http.Error(w, "failed to spool upload", http.StatusInternalServerError)
		return
	}

	// Keep the original filename: it is the object key and the sole
	// duplicate-detection signal.
	path := filepath.Join(tempDir, filepath.Base(header.Filename))
	dst, err := os.Create(path)
	if err != nil {
		os.RemoveAll(tempDir)
		http.Error(w, "failed to spool upload", http.StatusInternalServerError)
		return
	}
	if _, err := io.Copy(dst, file); err != nil {
		dst.Close()
		os.RemoveAll(tempDir)
		http.Error(w, "failed to spool upload", http.StatusInternalServerError)
		return
	}
	dst.Close()

	docID := uuid.NewString()
	sess := s.documents.create(docID, filepath.Base(header.Filename))

	go func() {
		defer os.RemoveAll(tempDir)
		result := s.ingestor.Run(context.Background(), path, sess.appendEvent)
		sess.finish(result)
		slog.Info("Ingestion run finished.", "documentId", docID, "outcome", result.Outcome)
	}()

	writeJSON(w, http.StatusAccepted, models.UploadResponse{
		DocumentID: docID,
		Filename:   filepath.Base(header.Filename),
		Status:     "ingesting",
	})
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.documents.get(chi.URLParam(r, "id"))
	if !ok {
		http.Error(w, "document not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, sess.status())
}

func (s *Server) handleDocumentAsk(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.documents.get(chi.URLParam(r, "id"))
	if !ok {
		http.Error(w, "document not found", http.StatusNotFound)
		return
	}

	var req models.AskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "could not parse JSON", http.StatusBadRequest)
		return
	}
	if req.Question == "" {
		http.Error(w, "question is required", http.StatusBadRequest)
		return
	}

	text, done := sess.extractedText()
	if !done {
		http.Error(w, "document is still being ingested", http.StatusConflict)
		return
	}

	answer, err := s.asker.AskDocument(r.Context(), text, req.Question, req.Language)
	if err != nil {
		s.writeAskError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, models.AskResponse{Answer: answer, Language: language(req.Language)})
}

func (s *Server) handleTranslate(w http.ResponseWriter, r *http.Request) {
	var req models.TranslateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "could not parse JSON", http.StatusBadRequest)
		return
	}
	if req.Text == "" {
		http.Error(w, "text is required", http.StatusBadRequest)
		return
	}

	translated, err := s.translator.Translate(r.Context(), req.Text, language(req.Language))
	if err != nil {
		// A failed translation never aborts the flow: the caller gets
		// the original text back with the failure noted.
		slog.Warn("Translation failed; returning original text.", "error", err)
		writeJSON(w, http.StatusOK, models.TranslateResponse{Translated: req.Text, Language: "auto"})
		return
	}
	writeJSON(w, http.StatusOK, models.TranslateResponse{Translated: translated, Language: language(req.Language)})
}

func (s *Server) handleClipboardAsk(w http.ResponseWriter, r *http.Request) {
	var req models.ClipboardAskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "could not parse JSON", http.StatusBadRequest)
		return
	}
	if req.Question == "" {
		http.Error(w, "question is required", http.StatusBadRequest)
		return
	}

	answer, err := s.asker.AskClipboard(r.Context(), req.Text, req.Question, req.Language)
	if err != nil {
		s.writeAskError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, models.AskResponse{Answer: answer, Language: language(req.Language)})
}

func (s *Server) writeAskError(w http.ResponseWriter, err error) {
	if errors.Is(err, assistant.ErrNoContext) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	slog.Warn("Model request failed.", "error", err)
	http.Error(w, fmt.Sprintf("model request failed: %v", err), http.StatusBadGateway)
}

func language(lang string) string {
	if lang == "" {
		return assistant.DefaultLanguage
	}
	return lang
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Failed to write response.", "error", err)
	}
}
