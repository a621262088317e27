package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"cafeteria-be/internal/metrics"
	"cafeteria-be/internal/report"
	"cafeteria-be/internal/table"
	"cafeteria-be/internal/user"
	"cafeteria-be/internal/utils"
)

type AdminHandler struct {
	userSvc   user.Service
	tableSvc  table.Service
	reportSvc report.Service
}

func NewAdminHandler(userSvc user.Service, tableSvc table.Service, reportSvc report.Service) *AdminHandler {
	return &AdminHandler{userSvc: userSvc, tableSvc: tableSvc, reportSvc: reportSvc}
}

type generateQrRequest struct {
	TableID int `json:"table_id"`
}

func (h *AdminHandler) GenerateQrCode(w http.ResponseWriter, r *http.Request) {
	var req generateQrRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteErrorResponse(w, http.StatusBadRequest, "bad_request", "invalid JSON body")
		return
	}

	qr, err := h.tableSvc.GenerateQrCode(r.Context(), req.TableID)
	if err != nil {
		if errors.Is(err, table.ErrTableNotFound) {
			WriteValidationError(w, err)
			return
		}
		WriteDomainError(w, err)
		return
	}

	WriteJSONResponse(w, http.StatusOK, map[string]any{
		"message": "QR Code data generated",
		"qr_code": qr,
	})
}

func (h *AdminHandler) Reports(w http.ResponseWriter, r *http.Request) {
	rep, err := h.reportSvc.BuildReport(r.Context())
	if err != nil {
		WriteDomainError(w, err)
		return
	}

	WriteJSONResponse(w, http.StatusOK, rep)
}

func (h *AdminHandler) Stats(w http.ResponseWriter, r *http.Request) {
	WriteJSONResponse(w, http.StatusOK, map[string]uint64{
		"requests_total":    metrics.RequestsTotal.Load(),
		"orders_created":    metrics.OrdersCreated.Load(),
		"payments_recorded": metrics.PaymentsRecorded.Load(),
	})
}

func (h *AdminHandler) ListStaff(w http.ResponseWriter, r *http.Request) {
	staff, err := h.userSvc.ListStaff(r.Context())
	if err != nil {
		WriteDomainError(w, err)
		return
	}
	if staff == nil {
		staff = []*user.User{}
	}

	WriteJSONResponse(w, http.StatusOK, staff)
}

type createStaffRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

func (h *AdminHandler) CreateStaff(w http.ResponseWriter, r *http.Request) {
	var req createStaffRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteErrorResponse(w, http.StatusBadRequest, "bad_request", "invalid JSON body")
		return
	}

	if req.Name == "" || req.Email == "" {
		WriteErrorResponse(w, http.StatusUnprocessableEntity, "validation_failed", "name and email are required")
		return
	}

	u, err := h.userSvc.CreateStaff(r.Context(), user.CreateStaffParams{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     user.Role(req.Role),
	})
	if err != nil {
		WriteDomainError(w, err)
		return
	}

	WriteJSONResponse(w, http.StatusCreated, u)
}

type updateStaffRequest struct {
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
	Role     *string `json:"role"`
}

func (h *AdminHandler) UpdateStaff(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ToInt(r.PathValue("id"))
	if err != nil {
		WriteErrorResponse(w, http.StatusNotFound, "not_found", "user not found")
		return
	}

	var req updateStaffRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteErrorResponse(w, http.StatusBadRequest, "bad_request", "invalid JSON body")
		return
	}

	params := user.UpdateStaffParams{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	}
	if req.Role != nil {
		role := user.Role(*req.Role)
		params.Role = &role
	}

	u, err := h.userSvc.UpdateStaff(r.Context(), id, params)
	if err != nil {
		WriteDomainError(w, err)
		return
	}

	WriteJSONResponse(w, http.StatusOK, u)
}

func (h *AdminHandler) DeleteStaff(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ToInt(r.PathValue("id"))
	if err != nil {
		WriteErrorResponse(w, http.StatusNotFound, "not_found", "user not found")
		return
	}

	actorID, _ := utils.GetUserIDFromContext(r.Context())

	if err := h.userSvc.DeleteStaff(r.Context(), actorID, id); err != nil {
		WriteDomainError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
