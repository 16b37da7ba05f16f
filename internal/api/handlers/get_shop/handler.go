package get_shop

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/kalathiyadhruv74-afk/BookMyCut/internal/api/handlers"
	"github.com/kalathiyadhruv74-afk/BookMyCut/internal/api/middleware"
	catalogService "github.com/kalathiyadhruv74-afk/BookMyCut/internal/service/catalog"
)

const (
	msgInvalidShopID = "invalid shop id"
	msgUnauthorized  = "authentication required"
	msgShopNotFound  = "shop not found"
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

// Handle GET /api/v1/shops/{shopId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	shopID, err := strconv.ParseInt(mux.Vars(r)["shopId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /shops/{shopId} - Invalid shop id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidShopID)
		return
	}

	result, err := h.service.GetShop(r.Context(), shopID)
	if err != nil {
		if errors.Is(err, catalogService.ErrShopNotFound) {
			h.logger.Warn("GET /shops/%d - Shop not found", shopID)
			handlers.RespondNotFound(w, msgShopNotFound)
			return
		}
		h.logger.Error("GET /shops/%d - Failed to get shop: %v", shopID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleMy GET /api/v1/shops/my returns the shop of the authenticated owner
func (h *Handler) HandleMy(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.ActorFromContext(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, msgUnauthorized)
		return
	}

	result, err := h.service.GetShopByOwner(r.Context(), actor.UserID)
	if err != nil {
		if errors.Is(err, catalogService.ErrShopNotFound) {
			h.logger.Warn("GET /shops/my - Owner has no shop: user_id=%d", actor.UserID)
			handlers.RespondNotFound(w, msgShopNotFound)
			return
		}
		h.logger.Error("GET /shops/my - Failed to get shop: user_id=%d, error=%v", actor.UserID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
