package models

// These structs define the JSON payloads for HTTP requests and
// responses between clients and the assistant service.

// UploadResponse acknowledges a document upload; ingestion continues
// in the background under the returned document ID.
type UploadResponse struct {
	DocumentID string `json:"documentId"`
	Filename   string `json:"filename"`
	Status     string `json:"status"`
}

// DocumentStatus reports the progress of one ingestion run and, once
// finished, its result.
type DocumentStatus struct {
	DocumentID string          `json:"documentId"`
	Filename   string          `json:"filename"`
	Done       bool            `json:"done"`
	Events     []ProgressEvent `json:"events"`
	Result     *IngestResult   `json:"result,omitempty"`
}

// AskRequest carries a question about an ingested document.
type AskRequest struct {
	Question string `json:"question"`
	Language string `json:"language,omitempty"`
}

// AskResponse carries the model's reply.
type AskResponse struct {
	Answer   string `json:"answer"`
	Language string `json:"language"`
}

// TranslateRequest asks for a clipboard snippet to be translated.
type TranslateRequest struct {
	Text     string `json:"text"`
	Language string `json:"language"`
}

// TranslateResponse returns the translated snippet.
type TranslateResponse struct {
	Translated string `json:"translated"`
	Language   string `json:"language"`
}

// ClipboardAskRequest carries a question about a copied snippet.
type ClipboardAskRequest struct {
	Text     string `json:"text"`
	Question string `json:"question"`
	Language string `json:"language,omitempty"`
}
