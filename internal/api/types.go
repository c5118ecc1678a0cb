package api

import "github.com/jetstream-ai/warden/internal/store"

// --- POST /api/validate ---

// ValidateRequest is the JSON body for POST /api/validate. Text is a
// pointer so a missing field is distinguishable from an empty string.
type ValidateRequest struct {
	Text *string `json:"text"`
}

// ValidateResponse reports the screening outcome.
type ValidateResponse struct {
	HasPII     bool     `json:"has_pii"`
	HasSecrets bool     `json:"has_secrets"`
	Sanitized  string   `json:"sanitized"`
	Detections []string `json:"detections"`
}

// --- POST /api/extract-text ---

// ExtractTextRequest carries a base64 payload plus its declared type.
type ExtractTextRequest struct {
	FileData string `json:"file_data"`
	Filename string `json:"filename"`
	MimeType string `json:"mime_type"`
}

// ExtractTextResponse reports extraction as data; the HTTP call itself
// succeeds even when extraction fails.
type ExtractTextResponse struct {
	Text    string  `json:"text"`
	Success bool    `json:"success"`
	Error   *string `json:"error"`
}

// --- Events ---

// EventCreateRequest is the JSON body for POST /api/events.
type EventCreateRequest struct {
	URL           string            `json:"url"`
	Domain        string            `json:"domain"`
	ContentType   string            `json:"content_type"`
	DetectionType string            `json:"detection_type"`
	Summary       string            `json:"summary"`
	Detections    []store.Detection `json:"detections"`
	ContentHash   string            `json:"content_hash"`
	Message       string            `json:"message"`
}

// EventUpdateRequest is the JSON body for PATCH /api/events/{id}.
type EventUpdateRequest struct {
	Status *string `json:"status"`
}

// EventListResponse is one page of events plus the pre-pagination total.
type EventListResponse struct {
	Items []store.Event `json:"items"`
	Total int           `json:"total"`
	Page  int           `json:"page"`
}

// --- Approvals ---

// ApprovalListResponse is the full approval set in insertion order.
type ApprovalListResponse struct {
	Hashes []string `json:"hashes"`
}

// ApprovalCheckResponse reports membership of one content hash.
type ApprovalCheckResponse struct {
	Approved bool `json:"approved"`
}

// ErrorResp is a standard error response body.
type ErrorResp struct {
	Detail string `json:"detail"`
}
