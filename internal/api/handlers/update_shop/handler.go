package update_shop

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
	msgAccessDenied       = "only the shop owner may update the shop"
	msgInvalidInput       = "invalid shop data"
)

// UpdateShopRequest HTTP request model. Omitted fields stay unchanged.
type UpdateShopRequest struct {
	Name        *string `json:"name,omitempty"`
	Area        *string `json:"area,omitempty"`
	Address     *string `json:"address,omitempty"`
	Contact     *string `json:"contact,omitempty"`
	Description *string `json:"description,omitempty"`
	ImageRef    *string `json:"imageRef,omitempty"`
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

// Handle PUT /api/v1/shops/{shopId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.ActorFromContext(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, msgUnauthorized)
		return
	}

	shopID, err := strconv.ParseInt(mux.Vars(r)["shopId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /shops/{shopId} - Invalid shop id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidShopID)
		return
	}

	var req UpdateShopRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /shops/%d - Invalid request body: %v", shopID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.UpdateShop(r.Context(), shopID, &models.UpdateShopRequest{
		UserID:      actor.UserID,
		Name:        req.Name,
		Area:        req.Area,
		Address:     req.Address,
		Contact:     req.Contact,
		Description: req.Description,
		ImageRef:    req.ImageRef,
	})
	if err != nil {
		switch {
		case errors.Is(err, catalogService.ErrShopNotFound):
			h.logger.Warn("PUT /shops/%d - Shop not found", shopID)
			handlers.RespondNotFound(w, msgShopNotFound)

		case errors.Is(err, catalogService.ErrAccessDenied):
			h.logger.Warn("PUT /shops/%d - Access denied: user_id=%d", shopID, actor.UserID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, catalogService.ErrInvalidInput):
			h.logger.Warn("PUT /shops/%d - Invalid input: %v", shopID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PUT /shops/%d - Failed to update shop: user_id=%d, error=%v", shopID, actor.UserID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /shops/%d - Shop updated by user_id=%d", shopID, actor.UserID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
