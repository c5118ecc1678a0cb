package api

import "net/http"

// handleExtractText implements POST /api/extract-text. Extraction failure
// is reported in the body with a 200; only a malformed request produces a
// protocol-level error.
func (d *Dependencies) handleExtractText(w http.ResponseWriter, r *http.Request) {
	var req ExtractTextRequest
	if err := readJSON(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResp{Detail: "Invalid JSON body"})
		return
	}
	if req.MimeType == "" {
		writeJSON(w, http.StatusBadRequest, ErrorResp{Detail: "mime_type is required"})
		return
	}

	result := d.Extractor.Extract(req.Filename, req.MimeType, req.FileData)

	resp := ExtractTextResponse{Text: result.Text, Success: result.OK}
	if result.Err != "" {
		resp.Error = &result.Err
	}
	writeJSON(w, http.StatusOK, resp)
}
