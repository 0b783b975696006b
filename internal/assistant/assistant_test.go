package assistant

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/swipeai/deskassist/internal/llm"
)

type fakeChat struct {
	reply    string
	err      error
	messages []llm.Message
	opts     llm.ChatOptions
}

func (f *fakeChat) Chat(_ context.Context, messages []llm.Message, opts llm.ChatOptions) (string, error) {
	f.messages = messages
	f.opts = opts
	return f.reply, f.err
}

type fakeTranslator struct {
	err    error
	called bool
}

func (f *fakeTranslator) Translate(_ context.Context, text, target string) (string, error) {
	f.called = true
	if f.err != nil {
		return "", f.err
	}
	return "[" + target + "] " + text, nil
}

func TestAskClipboard_RequiresCopiedText(t *testing.T) {
	a := New(&fakeChat{}, nil)
	_, err := a.AskClipboard(context.Background(), "  ", "what is this?", "english")
	if !errors.Is(err, ErrNoContext) {
		t.Fatalf("expected ErrNoContext, got %v", err)
	}
}

func TestAskClipboard_BuildsPromptFromSnippet(t *testing.T) {
	chat := &fakeChat{reply: "a detailed answer with several numbered points in it"}
	a := New(chat, nil)

	got, err := a.AskClipboard(context.Background(), "the copied paragraph", "summarize", "english")
	if err != nil {
		t.Fatalf("AskClipboard returned error: %v", err)
	}
	if got != chat.reply {
		t.Fatalf("unexpected reply: %q", got)
	}
	if len(chat.messages) != 2 || chat.messages[0].Role != "system" {
		t.Fatalf("expected system+user messages, got %+v", chat.messages)
	}
	if !strings.Contains(chat.messages[0].Content, "the copied paragraph") {
		t.Fatalf("system prompt must embed the copied text")
	}
	if chat.opts.NumPredict != 2000 {
		t.Fatalf("expected num_predict 2000, got %d", chat.opts.NumPredict)
	}
}

func TestAskDocument_ForcesTargetLanguage(t *testing.T) {
	chat := &fakeChat{reply: "this is a sufficiently long answer about the document"}
	tr := &fakeTranslator{}
	a := New(chat, tr)

	got, err := a.AskDocument(context.Background(), "document body", "what does it say?", "hindi")
	if err != nil {
		t.Fatalf("AskDocument returned error: %v", err)
	}
	if !tr.called {
		t.Fatal("non-english replies must be re-translated")
	}
	if !strings.HasPrefix(got, "[hindi] ") {
		t.Fatalf("expected translated reply, got %q", got)
	}
}

func TestAskDocument_EnglishSkipsTranslation(t *testing.T) {
	chat := &fakeChat{reply: "this is a sufficiently long answer about the document"}
	tr := &fakeTranslator{}
	a := New(chat, tr)

	if _, err := a.AskDocument(context.Background(), "document body", "q", "English"); err != nil {
		t.Fatalf("AskDocument returned error: %v", err)
	}
	if tr.called {
		t.Fatal("english replies must not be re-translated")
	}
}

func TestAskDocument_TranslationFailureKeepsReply(t *testing.T) {
	chat := &fakeChat{reply: "this is a sufficiently long answer about the document"}
	tr := &fakeTranslator{err: errors.New("quota exceeded")}
	a := New(chat, tr)

	got, err := a.AskDocument(context.Background(), "document body", "q", "french")
	if err != nil {
		t.Fatalf("AskDocument returned error: %v", err)
	}
	if got != chat.reply {
		t.Fatalf("failed translation must keep the original reply, got %q", got)
	}
}

func TestAskDocument_ShortReplyBecomesNotice(t *testing.T) {
	chat := &fakeChat{reply: "ok"}
	a := New(chat, nil)

	got, err := a.AskDocument(context.Background(), "document body", "q", "english")
	if err != nil {
		t.Fatalf("AskDocument returned error: %v", err)
	}
	if got != insufficientReply {
		t.Fatalf("expected the insufficient-response notice, got %q", got)
	}
}
