package catalog

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/getawayhq/getaway-platform/pkg/logging"
)

// Handler handles HTTP requests for the property catalog
type Handler struct {
	repo   Repository
	logger *logging.Logger
}

// NewHandler creates a new catalog handler
func NewHandler(repo Repository, logger *logging.Logger) *Handler {
	return &Handler{
		repo:   repo,
		logger: logger,
	}
}

// ListPropertiesResponse is the response for listing properties
type ListPropertiesResponse struct {
	Properties []Property `json:"properties"`
	Count      int        `json:"count"`
}

// ListProperties handles GET /properties requests
func (h *Handler) ListProperties(w http.ResponseWriter, r *http.Request) {
	properties, err := h.repo.List(r.Context())
	if err != nil {
		h.logger.Error("failed to list properties", "error", err)
		http.Error(w, "failed to list properties", http.StatusInternalServerError)
		return
	}

	response := ListPropertiesResponse{
		Properties: properties,
		Count:      len(properties),
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// GetProperty handles GET /properties/{propertyID} requests
func (h *Handler) GetProperty(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "propertyID"), 10, 64)
	if err != nil {
		http.Error(w, "invalid property id", http.StatusBadRequest)
		return
	}

	property, err := h.repo.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrPropertyNotFound) {
			http.Error(w, "property not found", http.StatusNotFound)
			return
		}
		h.logger.Error("failed to load property", "error", err, "property_id", id)
		http.Error(w, "failed to load property", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(property)
}
