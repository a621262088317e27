package api

import (
	"net/http"

	"cafeteria-be/internal/table"
	"cafeteria-be/internal/utils"
)

type TableHandler struct {
	tableSvc table.Service
}

func NewTableHandler(tableSvc table.Service) *TableHandler {
	return &TableHandler{tableSvc: tableSvc}
}

func (h *TableHandler) List(w http.ResponseWriter, r *http.Request) {
	tables, err := h.tableSvc.ListTables(r.Context())
	if err != nil {
		WriteDomainError(w, err)
		return
	}

	WriteJSONResponse(w, http.StatusOK, tables)
}

func (h *TableHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ToInt(r.PathValue("id"))
	if err != nil {
		WriteErrorResponse(w, http.StatusNotFound, "not_found", "table not found")
		return
	}

	t, err := h.tableSvc.GetTable(r.Context(), id)
	if err != nil {
		WriteDomainError(w, err)
		return
	}

	WriteJSONResponse(w, http.StatusOK, t)
}
