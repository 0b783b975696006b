package ingest

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/swipeai/deskassist/internal/extract"
	"github.com/swipeai/deskassist/internal/models"
)

// ObjectStore is the slice of the object-store client the ingestion
// sequence needs.
type ObjectStore interface {
	HasObject(ctx context.Context, bucket, key string) (bool, error)
	UploadFile(ctx context.Context, bucket, key, path string) error
	PutBytes(ctx context.Context, bucket, key string, body []byte, contentType string) error
}

// Extractor produces the sequence of page texts for a local document.
type Extractor interface {
	Pages(path string) ([]string, error)
}

// Config names the two buckets the sequence writes to. ExtractBucket
// may be empty, in which case extracted text is delivered but never
// stored.
type Config struct {
	DocumentBucket string
	ExtractBucket  string
}

// EventFunc receives ProgressEvents as the sequence advances. It is
// called from the ingestion goroutine.
type EventFunc func(models.ProgressEvent)

// Ingestor runs the duplicate-check, upload, extract, store, notify
// sequence for one document per call.
type Ingestor struct {
	store     ObjectStore
	extractor Extractor
	config    Config
}

// New creates an Ingestor.
func New(store ObjectStore, extractor Extractor, cfg Config) *Ingestor {
	return &Ingestor{store: store, extractor: extractor, config: cfg}
}

// Run executes the ingestion sequence for the file at path. It never
// returns an error: every failure is converted into a ProgressEvent
// and reflected in the result's outcome. The extracted text (possibly
// empty) is always part of the result, with an empty storage key when
// it was not stored.
func (i *Ingestor) Run(ctx context.Context, path string, emit EventFunc) (result models.IngestResult) {
	if emit == nil {
		emit = func(models.ProgressEvent) {}
	}

	result.RunID = uuid.NewString()
	result.Outcome = models.OutcomeSuccess
	logger := slog.With("runId", result.RunID, "path", path)

	// Whatever goes wrong below, the consumer gets a final diagnostic
	// event instead of a panic.
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Ingestion run panicked.", "panic", r)
			result.Outcome = models.OutcomeFailure
			emit(models.ProgressEvent{
				Step:    models.StepFault,
				Message: fmt.Sprintf("Ingestion failed unexpectedly: %v", r),
			})
		}
	}()

	src := models.SourceFile{Path: path}
	filename := src.Filename()

	// Duplicate check. A listing error is swallowed: transient store
	// errors must not block the upload.
	exists, err := i.store.HasObject(ctx, i.config.DocumentBucket, filename)
	if err != nil {
		logger.Warn("Duplicate check failed; proceeding as non-duplicate.", "error", err)
		exists = false
	}

	if exists {
		logger.Info("Duplicate detected, skipping upload.", "filename", filename)
		emit(models.ProgressEvent{
			Step:    models.StepDuplicate,
			Message: fmt.Sprintf("File %q already exists in %s. Skipping upload.", filename, i.config.DocumentBucket),
		})
	} else {
		if err := i.store.UploadFile(ctx, i.config.DocumentBucket, filename, path); err != nil {
			logger.Error("Upload failed.", "error", err)
			result.Outcome = models.OutcomeFailure
			emit(models.ProgressEvent{
				Step:    models.StepFault,
				Message: fmt.Sprintf("Upload of %q failed: %v", filename, err),
			})
			return result
		}
		emit(models.ProgressEvent{
			Step:    models.StepUpload,
			Message: fmt.Sprintf("Uploaded %q to s3://%s/%s", filename, i.config.DocumentBucket, filename),
		})
	}

	// Extraction failure is non-fatal: the run continues with empty text.
	text := ""
	pages, err := i.extractor.Pages(path)
	if err != nil {
		logger.Warn("Extraction failed.", "error", err)
		result.Outcome = models.OutcomePartial
		emit(models.ProgressEvent{
			Step:    models.StepExtract,
			Message: fmt.Sprintf("PDF extraction failed: %v", err),
		})
	} else {
		text = strings.Join(pages, extract.Separator)
	}
	result.Text = text

	if strings.TrimSpace(text) == "" || i.config.ExtractBucket == "" {
		// Nothing to store, or nowhere to store it. The text still goes
		// back to the consumer with an empty key.
		return result
	}

	key := src.Stem() + ".txt"
	if err := i.store.PutBytes(ctx, i.config.ExtractBucket, key, []byte(text), "text/plain; charset=utf-8"); err != nil {
		logger.Warn("Failed to store extracted text.", "error", err)
		result.Outcome = models.OutcomePartial
		emit(models.ProgressEvent{
			Step:    models.StepStore,
			Message: fmt.Sprintf("Failed to store extracted text: %v", err),
		})
		return result
	}

	result.StorageKey = key
	emit(models.ProgressEvent{
		Step:    models.StepStore,
		Message: fmt.Sprintf("Extracted text stored at s3://%s/%s", i.config.ExtractBucket, key),
	})
	return result
}
