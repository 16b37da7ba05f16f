package search_shops

import (
	"net/http"

	"github.com/kalathiyadhruv74-afk/BookMyCut/internal/api/handlers"
)

type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/shops?area=Indira
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	area := r.URL.Query().Get("area")

	result, err := h.service.SearchShops(r.Context(), area)
	if err != nil {
		h.logger.Error("GET /shops - Failed to search shops: area=%q, error=%v", area, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
