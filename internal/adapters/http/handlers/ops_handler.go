// Package handlers provides HTTP request handlers for the service's API endpoints.
package handlers

import (
	"net/http"

	"github.com/blackbird-voyages/ops-engine/internal/adapters/http/dto"
	"github.com/blackbird-voyages/ops-engine/internal/domain/departure"
	"github.com/blackbird-voyages/ops-engine/internal/ports"
)

// OpsHandler handles HTTP requests for the departure operations API:
// the dashboard worklist, project lifecycle, and group updates.
type OpsHandler struct {
	svc ports.OpsService
}

// NewOpsHandler creates a new OpsHandler with the given service port.
func NewOpsHandler(svc ports.OpsService) *OpsHandler {
	return &OpsHandler{svc: svc}
}

// ListDepartures handles GET /api/v1/departures?role={role}.
func (h *OpsHandler) ListDepartures(w http.ResponseWriter, r *http.Request) {
	role, err := roleFromQuery(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	entries, err := h.svc.ListDepartures(r.Context(), role)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToWorklistResponse(entries))
}

// CreateProject handles POST /api/v1/projects.
func (h *OpsHandler) CreateProject(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateProjectRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	created, err := h.svc.CreateProject(r.Context(), req.PackageID)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.ToProjectResponse(created))
}

// GetProject handles GET /api/v1/projects/{packageId}.
func (h *OpsHandler) GetProject(w http.ResponseWriter, r *http.Request) {
	packageID, err := pathParam(r, "packageId")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	p, err := h.svc.GetProject(r.Context(), packageID)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToProjectResponse(p))
}

// UpdateNotes handles PATCH /api/v1/projects/{packageId}.
func (h *OpsHandler) UpdateNotes(w http.ResponseWriter, r *http.Request) {
	packageID, err := pathParam(r, "packageId")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.UpdateNotesRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	updated, err := h.svc.UpdateNotes(r.Context(), packageID, *req.Notes)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToProjectResponse(updated))
}

// DeleteProject handles DELETE /api/v1/projects/{packageId}.
func (h *OpsHandler) DeleteProject(w http.ResponseWriter, r *http.Request) {
	packageID, err := pathParam(r, "packageId")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	if err := h.svc.DeleteProject(r.Context(), packageID); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// GetGroupDetail handles GET /api/v1/projects/{packageId}/groups/{groupId}.
func (h *OpsHandler) GetGroupDetail(w http.ResponseWriter, r *http.Request) {
	packageID, groupID, err := groupParams(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	detail, err := h.svc.GetGroupDetail(r.Context(), packageID, groupID)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToGroupDetailResponse(detail))
}

// UpdateGroup handles PATCH /api/v1/projects/{packageId}/groups/{groupId}.
func (h *OpsHandler) UpdateGroup(w http.ResponseWriter, r *http.Request) {
	packageID, groupID, err := groupParams(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.UpdateGroupRequest
	if !decodeJSONBody(w, r, &req) {
		return
	}

	patch, err := req.ToPatch()
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	updated, err := h.svc.UpdateGroup(r.Context(), packageID, groupID, patch)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToGroupResponse(updated))
}

// UpdateMilestone handles
// PATCH /api/v1/projects/{packageId}/groups/{groupId}/milestones/{key}.
func (h *OpsHandler) UpdateMilestone(w http.ResponseWriter, r *http.Request) {
	packageID, groupID, err := groupParams(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	key, err := pathParam(r, "key")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.UpdateMilestoneRequest
	if !decodeJSONBody(w, r, &req) {
		return
	}

	patch, err := req.ToPatch()
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	updated, err := h.svc.UpdateMilestone(r.Context(), packageID, groupID, departure.MilestoneKey(key), patch)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToGroupResponse(updated))
}

// ValidateGroup handles
// POST /api/v1/projects/{packageId}/groups/{groupId}/validate.
func (h *OpsHandler) ValidateGroup(w http.ResponseWriter, r *http.Request) {
	packageID, groupID, err := groupParams(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	validated, err := h.svc.ValidateGroup(r.Context(), packageID, groupID)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToGroupResponse(validated))
}

// groupParams extracts the packageId and groupId path parameters.
func groupParams(r *http.Request) (packageID, groupID string, err error) {
	packageID, err = pathParam(r, "packageId")
	if err != nil {
		return "", "", err
	}
	groupID, err = pathParam(r, "groupId")
	if err != nil {
		return "", "", err
	}
	return packageID, groupID, nil
}
