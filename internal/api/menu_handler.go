package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"cafeteria-be/internal/menu"
	"cafeteria-be/internal/utils"
)

type MenuHandler struct {
	menuSvc menu.Service
}

func NewMenuHandler(menuSvc menu.Service) *MenuHandler {
	return &MenuHandler{menuSvc: menuSvc}
}

func (h *MenuHandler) List(w http.ResponseWriter, r *http.Request) {
	var filter menu.MenuItemFilter

	if v := r.URL.Query().Get("category_id"); v != "" {
		categoryID, err := utils.ToInt(v)
		if err != nil {
			WriteErrorResponse(w, http.StatusUnprocessableEntity, "validation_failed", "category_id must be an integer")
			return
		}
		filter.CategoryID = &categoryID
	}
	if v := r.URL.Query().Get("available"); v != "" {
		available, err := strconv.ParseBool(v)
		if err != nil {
			WriteErrorResponse(w, http.StatusUnprocessableEntity, "validation_failed", "available must be a boolean")
			return
		}
		filter.Available = &available
	}

	items, err := h.menuSvc.ListMenuItems(r.Context(), filter)
	if err != nil {
		WriteDomainError(w, err)
		return
	}

	WriteJSONResponse(w, http.StatusOK, items)
}

func (h *MenuHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ToInt(r.PathValue("id"))
	if err != nil {
		WriteErrorResponse(w, http.StatusNotFound, "not_found", "menu item not found")
		return
	}

	item, err := h.menuSvc.GetMenuItem(r.Context(), id)
	if err != nil {
		WriteDomainError(w, err)
		return
	}

	WriteJSONResponse(w, http.StatusOK, item)
}

func (h *MenuHandler) Create(w http.ResponseWriter, r *http.Request) {
	var params menu.CreateMenuItemParams
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		WriteErrorResponse(w, http.StatusBadRequest, "bad_request", "invalid JSON body")
		return
	}

	item, err := h.menuSvc.CreateMenuItem(r.Context(), params)
	if err != nil {
		if errors.Is(err, menu.ErrCategoryNotFound) {
			WriteValidationError(w, err)
			return
		}
		WriteDomainError(w, err)
		return
	}

	WriteJSONResponse(w, http.StatusCreated, item)
}

func (h *MenuHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ToInt(r.PathValue("id"))
	if err != nil {
		WriteErrorResponse(w, http.StatusNotFound, "not_found", "menu item not found")
		return
	}

	var params menu.UpdateMenuItemParams
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		WriteErrorResponse(w, http.StatusBadRequest, "bad_request", "invalid JSON body")
		return
	}

	item, err := h.menuSvc.UpdateMenuItem(r.Context(), id, params)
	if err != nil {
		if errors.Is(err, menu.ErrCategoryNotFound) {
			WriteValidationError(w, err)
			return
		}
		WriteDomainError(w, err)
		return
	}

	WriteJSONResponse(w, http.StatusOK, item)
}

func (h *MenuHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ToInt(r.PathValue("id"))
	if err != nil {
		WriteErrorResponse(w, http.StatusNotFound, "not_found", "menu item not found")
		return
	}

	if err := h.menuSvc.DeleteMenuItem(r.Context(), id); err != nil {
		WriteDomainError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
