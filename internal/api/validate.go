package api

import "net/http"

// handleValidate implements POST /api/validate. Validator failures are
// folded into the response per the guard's fail-open contract; this
// endpoint never returns a server error for detector trouble.
func (d *Dependencies) handleValidate(w http.ResponseWriter, r *http.Request) {
	var req ValidateRequest
	if err := readJSON(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResp{Detail: "Invalid JSON body"})
		return
	}
	if req.Text == nil {
		writeJSON(w, http.StatusBadRequest, ErrorResp{Detail: "text is required"})
		return
	}

	result := d.Guard.Screen(r.Context(), *req.Text)

	writeJSON(w, http.StatusOK, ValidateResponse{
		HasPII:     result.HasPII,
		HasSecrets: result.HasSecrets,
		Sanitized:  result.Sanitized,
		Detections: result.Detections(),
	})
}
