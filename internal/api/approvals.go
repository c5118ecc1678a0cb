package api

import (
	"net/http"

	"go.uber.org/zap"
)

func (d *Dependencies) handleListApprovals(w http.ResponseWriter, r *http.Request) {
	hashes, err := d.Approvals.List()
	if err != nil {
		d.Logger.Error("failed to list approvals", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, ErrorResp{Detail: "Failed to list approvals"})
		return
	}
	writeJSON(w, http.StatusOK, ApprovalListResponse{Hashes: hashes})
}

func (d *Dependencies) handleCheckApproval(w http.ResponseWriter, r *http.Request) {
	approved, err := d.Approvals.Contains(r.PathValue("hash"))
	if err != nil {
		d.Logger.Error("failed to check approval", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, ErrorResp{Detail: "Failed to check approval"})
		return
	}
	writeJSON(w, http.StatusOK, ApprovalCheckResponse{Approved: approved})
}
