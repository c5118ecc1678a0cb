package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/jetstream-ai/warden/internal/store"
	"github.com/santhosh-tekuri/jsonschema/v6"
	"go.uber.org/zap"
)

// maxListLimit caps page size on GET /api/events.
const maxListLimit = 200

func (d *Dependencies) handleListEvents(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	limit := queryInt(q, "limit", 50)
	if limit < 1 {
		writeJSON(w, http.StatusBadRequest, ErrorResp{Detail: "limit must be a positive integer"})
		return
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}

	page := queryInt(q, "page", 1)
	if page < 1 {
		page = 1
	}

	items, total, err := d.Events.List(store.ListParams{
		Page:   page,
		Limit:  limit,
		Status: q.Get("status"),
	})
	if err != nil {
		d.Logger.Error("failed to list events", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, ErrorResp{Detail: "Failed to list events"})
		return
	}

	writeJSON(w, http.StatusOK, EventListResponse{Items: items, Total: total, Page: page})
}

func (d *Dependencies) handleGetEvent(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	event, err := d.Events.Get(id)
	if errors.Is(err, store.ErrNotFound) {
		writeJSON(w, http.StatusNotFound, ErrorResp{Detail: "Event not found"})
		return
	}
	if err != nil {
		d.Logger.Error("failed to get event", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, ErrorResp{Detail: "Failed to get event"})
		return
	}

	writeJSON(w, http.StatusOK, event)
}

func (d *Dependencies) handleCreateEvent(w http.ResponseWriter, r *http.Request) {
	defer func() { _ = r.Body.Close() }()
	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResp{Detail: "Invalid JSON body"})
		return
	}

	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(body))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResp{Detail: "Invalid JSON body"})
		return
	}
	if err := eventCreateCompiled.Validate(doc); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResp{Detail: err.Error()})
		return
	}

	var req EventCreateRequest
	if err := json.Unmarshal(body, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResp{Detail: "Invalid JSON body"})
		return
	}
	if req.ContentType == "" {
		req.ContentType = "prompt"
	}

	// Screen the raw message server-side. Errored validators contribute
	// nothing here; a detector outage must never block event creation.
	guardrails := []string{}
	if req.Message != "" {
		guardrails = d.Guard.Screen(r.Context(), req.Message).Categories()
	}

	detections := req.Detections
	if detections == nil {
		detections = []store.Detection{}
	}

	event, err := d.Events.Create(store.Event{
		URL:                  req.URL,
		Domain:               req.Domain,
		ContentType:          req.ContentType,
		DetectionType:        req.DetectionType,
		Summary:              req.Summary,
		Detections:           detections,
		GuardrailsDetections: guardrails,
		ContentHash:          req.ContentHash,
		Message:              req.Message,
		Status:               "pending",
		CreatedAt:            nowStamp(),
	})
	if err != nil {
		d.Logger.Error("failed to create event", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, ErrorResp{Detail: "Failed to create event"})
		return
	}

	writeJSON(w, http.StatusOK, event)
}

func (d *Dependencies) handleUpdateEvent(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req EventUpdateRequest
	if err := readJSON(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResp{Detail: "Invalid JSON body"})
		return
	}
	if req.Status == nil {
		writeJSON(w, http.StatusBadRequest, ErrorResp{Detail: "status is required"})
		return
	}

	event, err := d.Events.UpdateStatus(id, *req.Status, nowStamp())
	if errors.Is(err, store.ErrNotFound) {
		writeJSON(w, http.StatusNotFound, ErrorResp{Detail: "Event not found"})
		return
	}
	if err != nil {
		d.Logger.Error("failed to update event", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, ErrorResp{Detail: "Failed to update event"})
		return
	}

	// Approving an event with a content hash promotes that hash into the
	// approval set. Separate write; rejections never remove hashes.
	if *req.Status == "approved" && event.ContentHash != "" {
		if err := d.Approvals.Add(event.ContentHash); err != nil {
			d.Logger.Error("failed to record approval",
				zap.Int("event_id", id),
				zap.Error(err),
			)
			writeJSON(w, http.StatusInternalServerError, ErrorResp{Detail: "Failed to record approval"})
			return
		}
	}

	writeJSON(w, http.StatusOK, event)
}

// pathID parses the {id} path value, writing a 400 on anything non-numeric.
func pathID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResp{Detail: "event id must be an integer"})
		return 0, false
	}
	return id, true
}

// nowStamp formats the current time the way events store timestamps.
// Lexicographic order on these strings matches chronological order, which
// the list sort relies on.
func nowStamp() string {
	return time.Now().UTC().Format("2006-01-02T15:04:05.000000")
}

func queryInt(q url.Values, key string, defaultVal int) int {
	v := q.Get(key)
	if v == "" {
		return defaultVal
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return defaultVal
	}
	return i
}
