// Package assistant implements the two query modes: questions about a
// copied snippet and questions about an ingested document. Both
// forward to the local model endpoint and force the reply into the
// requested language.
package assistant

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/swipeai/deskassist/internal/llm"
)

// DefaultLanguage is used when a request does not name one.
const DefaultLanguage = "english"

// insufficientReply replaces document-mode answers too short to be
// useful.
const insufficientReply = "The model provided an insufficient response. " +
	"Please try rephrasing your question or ensure the document contains relevant information."

// ErrNoContext is returned when a question arrives without any copied
// text or document text to ground it.
var ErrNoContext = errors.New("no source text available for this question")

// ChatClient is the slice of the model client the assistant needs.
type ChatClient interface {
	Chat(ctx context.Context, messages []llm.Message, opts llm.ChatOptions) (string, error)
}

// TextTranslator renders text into a target language.
type TextTranslator interface {
	Translate(ctx context.Context, text, target string) (string, error)
}

// Assistant answers questions through the model endpoint.
type Assistant struct {
	llm        ChatClient
	translator TextTranslator
}

// New creates an Assistant. translator may be nil, in which case
// replies are returned in whatever language the model produced.
func New(chat ChatClient, translator TextTranslator) *Assistant {
	return &Assistant{llm: chat, translator: translator}
}

// AskClipboard answers a question about a copied snippet.
func (a *Assistant) AskClipboard(ctx context.Context, copied, question, language string) (string, error) {
	if strings.TrimSpace(copied) == "" {
		return "", fmt.Errorf("%w: copy some text first", ErrNoContext)
	}
	language = normalizeLanguage(language)

	messages := []llm.Message{
		{Role: "system", Content: fmt.Sprintf(clipboardSystemPrompt, language, language, copied)},
		{Role: "user", Content: fmt.Sprintf("Answer in %s language only: %s", language, question)},
	}
	reply, err := a.llm.Chat(ctx, messages, llm.ChatOptions{Temperature: 0.7, NumPredict: 2000})
	if err != nil {
		return "", fmt.Errorf("model request failed: %w", err)
	}

	return a.forceLanguage(ctx, reply, language), nil
}

// AskDocument answers a question strictly from the given document text.
func (a *Assistant) AskDocument(ctx context.Context, docText, question, language string) (string, error) {
	if strings.TrimSpace(docText) == "" {
		return "", fmt.Errorf("%w: upload a document first", ErrNoContext)
	}
	language = normalizeLanguage(language)

	messages := []llm.Message{
		{Role: "system", Content: fmt.Sprintf(documentSystemPrompt, docText, question, language)},
		{Role: "user", Content: fmt.Sprintf("IMPORTANT: You MUST answer in %s language ONLY. Question: %s", language, question)},
	}
	reply, err := a.llm.Chat(ctx, messages, llm.ChatOptions{Temperature: 0.3, TopP: 0.9, NumPredict: 3000})
	if err != nil {
		return "", fmt.Errorf("model request failed: %w", err)
	}

	reply = a.forceLanguage(ctx, reply, language)
	if len(strings.TrimSpace(reply)) < 20 {
		return insufficientReply, nil
	}
	return reply, nil
}

// forceLanguage re-translates a reply into the requested language. A
// translation failure keeps the original reply.
func (a *Assistant) forceLanguage(ctx context.Context, reply, language string) string {
	if reply == "" || a.translator == nil || language == DefaultLanguage {
		return reply
	}
	translated, err := a.translator.Translate(ctx, reply, language)
	if err != nil {
		slog.Warn("Failed to translate model reply; keeping original.", "language", language, "error", err)
		return reply
	}
	return translated
}

func normalizeLanguage(language string) string {
	language = strings.ToLower(strings.TrimSpace(language))
	if language == "" {
		return DefaultLanguage
	}
	return language
}
