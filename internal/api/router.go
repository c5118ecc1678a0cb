package api

import (
	"net/http"

	"github.com/jetstream-ai/warden/internal/extract"
	"github.com/jetstream-ai/warden/internal/guard"
	"github.com/jetstream-ai/warden/internal/store"
	"go.uber.org/zap"
)

// Dependencies holds shared state injected into all HTTP handlers.
type Dependencies struct {
	Events    *store.EventStore
	Approvals *store.ApprovalStore
	Guard     *guard.Guard
	Extractor *extract.Extractor
	Logger    *zap.Logger
}

// NewRouter builds the HTTP mux with all routes wired up.
func NewRouter(deps *Dependencies) http.Handler {
	mux := http.NewServeMux()

	// Content screening
	mux.HandleFunc("POST /api/validate", deps.handleValidate)
	mux.HandleFunc("POST /api/extract-text", deps.handleExtractText)

	// Events
	mux.HandleFunc("GET /api/events", deps.handleListEvents)
	mux.HandleFunc("GET /api/events/{id}", deps.handleGetEvent)
	mux.HandleFunc("POST /api/events", deps.handleCreateEvent)
	mux.HandleFunc("PATCH /api/events/{id}", deps.handleUpdateEvent)

	// Approvals
	mux.HandleFunc("GET /api/approvals", deps.handleListApprovals)
	mux.HandleFunc("GET /api/approvals/check/{hash}", deps.handleCheckApproval)

	// Health check
	mux.HandleFunc("GET /api/health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok", "guardrails": "enabled"})
	})

	return corsMiddleware(requestLogging(mux, deps.Logger))
}
