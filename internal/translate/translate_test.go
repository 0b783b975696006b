package translate

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestCode(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"english", "en"},
		{"Hindi", "hi"},
		{" chinese ", "zh-CN"},
		{"pt", "pt"},
	}
	for _, c := range cases {
		if got := Code(c.in); got != c.want {
			t.Errorf("Code(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestTranslate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/translate_a/single" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("sl") != "auto" {
			t.Errorf("source must be auto, got %q", q.Get("sl"))
		}
		if q.Get("tl") != "es" {
			t.Errorf("expected target es, got %q", q.Get("tl"))
		}
		w.Write([]byte(`[[["Hola ","Hello ",null],["mundo","world",null]],null,"en"]`))
	}))
	defer srv.Close()

	got, err := NewWithBaseURL(srv.URL).Translate(context.Background(), "Hello world", "spanish")
	if err != nil {
		t.Fatalf("Translate returned error: %v", err)
	}
	if got != "Hola mundo" {
		t.Fatalf("expected Hola mundo, got %q", got)
	}
}

func TestTranslate_BadPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"error":"nope"}`))
	}))
	defer srv.Close()

	if _, err := NewWithBaseURL(srv.URL).Translate(context.Background(), "x", "fr"); err == nil {
		t.Fatal("expected an error for a non-array payload")
	}
}
