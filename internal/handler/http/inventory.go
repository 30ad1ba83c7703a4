package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/officedesk/officeops-backend-go/internal/domain/inventory"
	"github.com/officedesk/officeops-backend-go/internal/handler/http/response"
)

type InventoryHandler interface {
	AddCategory(w http.ResponseWriter, r *http.Request)
	DeleteCategory(w http.ResponseWriter, r *http.Request)
	ListCategories(w http.ResponseWriter, r *http.Request)
	AddItem(w http.ResponseWriter, r *http.Request)
	DeleteItem(w http.ResponseWriter, r *http.Request)
	ListItems(w http.ResponseWriter, r *http.Request)
}

type InventoryHandlerImpl struct {
	inventoryService inventory.Service
}

func NewInventoryHandler(inventoryService inventory.Service) InventoryHandler {
	return &InventoryHandlerImpl{inventoryService: inventoryService}
}

// AddCategory implements InventoryHandler.
func (h *InventoryHandlerImpl) AddCategory(w http.ResponseWriter, r *http.Request) {
	var createReq inventory.CreateCategoryRequest

	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("AddCategory decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := createReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	category, err := h.inventoryService.AddCategory(r.Context(), createReq)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Category created", category)
}

// DeleteCategory implements InventoryHandler.
func (h *InventoryHandlerImpl) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	if err := h.inventoryService.DeleteCategory(r.Context(), chi.URLParam(r, "categoryID")); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Category deleted", nil)
}

// ListCategories implements InventoryHandler.
func (h *InventoryHandlerImpl) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.inventoryService.ListCategories(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, categories)
}

// AddItem implements InventoryHandler.
func (h *InventoryHandlerImpl) AddItem(w http.ResponseWriter, r *http.Request) {
	var createReq inventory.CreateItemRequest

	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("AddItem decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := createReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	item, err := h.inventoryService.AddItem(r.Context(), createReq)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Item created", item)
}

// DeleteItem implements InventoryHandler.
func (h *InventoryHandlerImpl) DeleteItem(w http.ResponseWriter, r *http.Request) {
	if err := h.inventoryService.DeleteItem(r.Context(), chi.URLParam(r, "itemID")); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Item deleted", nil)
}

// ListItems implements InventoryHandler.
func (h *InventoryHandlerImpl) ListItems(w http.ResponseWriter, r *http.Request) {
	items, err := h.inventoryService.ListItems(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, items)
}
