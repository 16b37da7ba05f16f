package add_service

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/kalathiyadhruv74-afk/BookMyCut/internal/api/handlers"
	"github.com/kalathiyadhruv74-afk/BookMyCut/internal/api/middleware"
	catalogService "github.com/kalathiyadhruv74-afk/BookMyCut/internal/service/catalog"
	"github.com/kalathiyadhruv74-afk/BookMyCut/internal/service/catalog/models"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidShopID      = "invalid shop id"
	msgUnauthorized       = "authentication required"
	msgShopNotFound       = "shop not found"
	msgAccessDenied       = "only the shop owner may add services"
	msgInvalidInput       = "invalid service data"
)

// AddServiceRequest HTTP request model
type AddServiceRequest struct {
	Name            string  `json:"name"`
	Price           float64 `json:"price"`
	DurationMinutes int     `json:"durationMinutes"`
	Description     *string `json:"description,omitempty"`
}

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

// Handle POST /api/v1/shops/{shopId}/services
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.ActorFromContext(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, msgUnauthorized)
		return
	}

	shopID, err := strconv.ParseInt(mux.Vars(r)["shopId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /shops/{shopId}/services - Invalid shop id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidShopID)
		return
	}

	var req AddServiceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /shops/%d/services - Invalid request body: %v", shopID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.AddService(r.Context(), &models.CreateServiceRequest{
		UserID:          actor.UserID,
		ShopID:          shopID,
		Name:            req.Name,
		Price:           req.Price,
		DurationMinutes: req.DurationMinutes,
		Description:     req.Description,
	})
	if err != nil {
		switch {
		case errors.Is(err, catalogService.ErrShopNotFound):
			h.logger.Warn("POST /shops/%d/services - Shop not found", shopID)
			handlers.RespondNotFound(w, msgShopNotFound)

		case errors.Is(err, catalogService.ErrAccessDenied):
			h.logger.Warn("POST /shops/%d/services - Access denied: user_id=%d", shopID, actor.UserID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, catalogService.ErrInvalidInput):
			h.logger.Warn("POST /shops/%d/services - Invalid input: %v", shopID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /shops/%d/services - Failed to add service: user_id=%d, error=%v",
				shopID, actor.UserID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /shops/%d/services - Service added: service_id=%d, user_id=%d",
		shopID, result.ID, actor.UserID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
