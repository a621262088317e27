package api

import (
	"encoding/json"
	"net/http"

	"cafeteria-be/internal/category"
	"cafeteria-be/internal/utils"
)

type CategoryHandler struct {
	categorySvc category.Service
}

func NewCategoryHandler(categorySvc category.Service) *CategoryHandler {
	return &CategoryHandler{categorySvc: categorySvc}
}

type categoryRequest struct {
	Name string `json:"name"`
}

func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	categories, err := h.categorySvc.ListCategories(r.Context())
	if err != nil {
		WriteDomainError(w, err)
		return
	}

	WriteJSONResponse(w, http.StatusOK, categories)
}

func (h *CategoryHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ToInt(r.PathValue("id"))
	if err != nil {
		WriteErrorResponse(w, http.StatusNotFound, "not_found", "category not found")
		return
	}

	c, err := h.categorySvc.GetCategory(r.Context(), id)
	if err != nil {
		WriteDomainError(w, err)
		return
	}

	WriteJSONResponse(w, http.StatusOK, c)
}

func (h *CategoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req categoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteErrorResponse(w, http.StatusBadRequest, "bad_request", "invalid JSON body")
		return
	}

	c, err := h.categorySvc.CreateCategory(r.Context(), req.Name)
	if err != nil {
		WriteDomainError(w, err)
		return
	}

	WriteJSONResponse(w, http.StatusCreated, c)
}

func (h *CategoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ToInt(r.PathValue("id"))
	if err != nil {
		WriteErrorResponse(w, http.StatusNotFound, "not_found", "category not found")
		return
	}

	var req categoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteErrorResponse(w, http.StatusBadRequest, "bad_request", "invalid JSON body")
		return
	}

	c, err := h.categorySvc.UpdateCategory(r.Context(), id, req.Name)
	if err != nil {
		WriteDomainError(w, err)
		return
	}

	WriteJSONResponse(w, http.StatusOK, c)
}

func (h *CategoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ToInt(r.PathValue("id"))
	if err != nil {
		WriteErrorResponse(w, http.StatusNotFound, "not_found", "category not found")
		return
	}

	if err := h.categorySvc.DeleteCategory(r.Context(), id); err != nil {
		WriteDomainError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
