// Package repair runs a two-stage find-bugs-then-fix pass over a
// single source file using the local model's completion endpoint.
package repair

import (
	"context"
	"fmt"
	"log/slog"
	"os"
)

const (
	finderMaxTokens = 1000
	fixerMaxTokens  = 1500
)

const finderPrompt = `You are a code bug detection assistant.
Analyze the following code carefully and identify all bugs, errors, and logical issues.
Provide line numbers and explanations for each issue.

Code:
%s

Return only the bug report.`

const fixerPrompt = `You are a code repair assistant.
The following code has bugs/issues:

Code:
%s

Bug Report:
%s

Rewrite the code to fix all bugs, optimize it, and make it fully executable.
Return only the corrected code.`

// Completer is the slice of the model client the fixer needs.
type Completer interface {
	Complete(ctx context.Context, prompt string, maxTokens int) (string, error)
}

// Fixer drives the two model passes.
type Fixer struct {
	llm Completer
}

// New creates a Fixer.
func New(llm Completer) *Fixer {
	return &Fixer{llm: llm}
}

// FindBugs asks the model for a structured bug report on the code.
func (f *Fixer) FindBugs(ctx context.Context, code string) (string, error) {
	report, err := f.llm.Complete(ctx, fmt.Sprintf(finderPrompt, code), finderMaxTokens)
	if err != nil {
		return "", fmt.Errorf("bug finder pass failed: %w", err)
	}
	return report, nil
}

// FixBugs asks the model to rewrite the code according to the report.
func (f *Fixer) FixBugs(ctx context.Context, code, report string) (string, error) {
	fixed, err := f.llm.Complete(ctx, fmt.Sprintf(fixerPrompt, code, report), fixerMaxTokens)
	if err != nil {
		return "", fmt.Errorf("bug fixer pass failed: %w", err)
	}
	return fixed, nil
}

// ImproveFile reads inputPath, runs both passes, and writes the
// corrected code to outputPath. The fixer output is written verbatim.
func (f *Fixer) ImproveFile(ctx context.Context, inputPath, outputPath string) error {
	code, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", inputPath, err)
	}

	slog.Info("Finding bugs.", "input", inputPath)
	report, err := f.FindBugs(ctx, string(code))
	if err != nil {
		return err
	}
	slog.Info("Bug report ready.", "bytes", len(report))

	slog.Info("Fixing code.")
	fixed, err := f.FixBugs(ctx, string(code), report)
	if err != nil {
		return err
	}

	if err := os.WriteFile(outputPath, []byte(fixed), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", outputPath, err)
	}
	slog.Info("Fixed code saved.", "output", outputPath)
	return nil
}
