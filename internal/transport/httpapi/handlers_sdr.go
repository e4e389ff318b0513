package httpapi

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"agentcrm/internal/domain/crm"
	"agentcrm/internal/usecase/sdr"
)

func (s *Server) listICPProfiles(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.store.Snapshot().ICPProfiles)
}

type createICPRequest struct {
	Name          string   `json:"name"`
	Geography     string   `json:"geography"`
	Categories    []string `json:"categories"`
	TargetPackage string   `json:"targetPackage"`
}

func (s *Server) createICPProfile(w http.ResponseWriter, r *http.Request) {
	var req createICPRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid request body", err)
		return
	}

	profile, err := s.sdr.CreateProfile(r.Context(), sdr.CreateProfileInput{
		Name:          req.Name,
		Geography:     req.Geography,
		Categories:    req.Categories,
		TargetPackage: crm.PackageTier(req.TargetPackage),
	})
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error(), err)
		return
	}
	writeJSON(w, http.StatusCreated, profile)
}

func (s *Server) runICPProfile(w http.ResponseWriter, r *http.Request) {
	result, err := s.sdr.RunProfile(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, crm.ErrProfileNotFound) {
			writeError(w, r, http.StatusNotFound, "icp profile not found", err)
			return
		}
		writeError(w, r, http.StatusInternalServerError, "generation run failed", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"status":    result.Status,
		"batchId":   result.BatchID,
		"leadCount": result.LeadCount,
	})
}

func (s *Server) listBatches(w http.ResponseWriter, r *http.Request) {
	batches, err := s.sdr.ListBatches(r.Context())
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, "list batches failed", err)
		return
	}
	writeJSON(w, http.StatusOK, batches)
}

func (s *Server) listLeads(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	leads, err := s.sdr.ListLeads(r.Context(), sdr.ListLeadsInput{
		BatchID:    q.Get("batch"),
		SortKey:    crm.LeadSortKey(q.Get("sort")),
		Descending: q.Get("dir") == "desc",
	})
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, "list leads failed", err)
		return
	}
	writeJSON(w, http.StatusOK, leads)
}

func (s *Server) approveLead(w http.ResponseWriter, r *http.Request) {
	customer, promoted, err := s.sdr.Approve(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, "approve failed", err)
		return
	}
	if !promoted {
		// Unknown or already-reviewed lead: idempotent no-op.
		writeJSON(w, http.StatusOK, map[string]any{"promoted": false})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"promoted": true, "customer": customer})
}

func (s *Server) rejectLead(w http.ResponseWriter, r *http.Request) {
	rejected, err := s.sdr.Reject(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, "reject failed", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"rejected": rejected})
}
