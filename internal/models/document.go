package models

import (
	"path/filepath"
	"strings"
)

// SourceFile is a local document selected for ingestion.
type SourceFile struct {
	Path string
}

// Filename returns the base name of the file, which doubles as its
// object key in the document bucket.
func (s SourceFile) Filename() string {
	return filepath.Base(s.Path)
}

// Stem returns the filename without its extension.
func (s SourceFile) Stem() string {
	name := s.Filename()
	return strings.TrimSuffix(name, filepath.Ext(name))
}

// Outcome classifies how an ingestion run ended.
type Outcome string

const (
	// OutcomeSuccess means every step that applied ran cleanly.
	OutcomeSuccess Outcome = "success"
	// OutcomePartial means at least one step failed but the run still
	// delivered whatever text it had.
	OutcomePartial Outcome = "partial"
	// OutcomeFailure means the run was cut short by an unexpected fault.
	OutcomeFailure Outcome = "failure"
)

// IngestResult is what an ingestion run hands back to its consumer.
// Text may be empty; StorageKey is empty when the extracted text was
// not stored (extraction empty, bucket unset, or store failure).
type IngestResult struct {
	RunID      string  `json:"runId"`
	Outcome    Outcome `json:"outcome"`
	Text       string  `json:"text"`
	StorageKey string  `json:"storageKey"`
}

// ProgressEvent is a human-readable status string describing one
// step's outcome. Purely observational, never persisted.
type ProgressEvent struct {
	Step    string `json:"step"`
	Message string `json:"message"`
}

// Ingestion step names used in ProgressEvents.
const (
	StepDuplicate = "duplicate-check"
	StepUpload    = "upload"
	StepExtract   = "extract"
	StepStore     = "store"
	StepFault     = "fault"
)
