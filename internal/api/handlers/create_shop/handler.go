package create_shop

import (
	"errors"
	"net/http"

	"github.com/kalathiyadhruv74-afk/BookMyCut/internal/api/handlers"
	"github.com/kalathiyadhruv74-afk/BookMyCut/internal/api/middleware"
	"github.com/kalathiyadhruv74-afk/BookMyCut/internal/domain"
	catalogService "github.com/kalathiyadhruv74-afk/BookMyCut/internal/service/catalog"
	"github.com/kalathiyadhruv74-afk/BookMyCut/internal/service/catalog/models"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgUnauthorized       = "authentication required"
	msgOwnerOnly          = "only shop owners may register a shop"
	msgShopAlreadyExists  = "this owner already has a registered shop"
	msgInvalidInput       = "invalid shop data"
)

// CreateShopRequest HTTP request model
type CreateShopRequest struct {
	Name        string  `json:"name"`
	Area        string  `json:"area"`
	Address     string  `json:"address"`
	Contact     string  `json:"contact"`
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

// Handle POST /api/v1/shops
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.ActorFromContext(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, msgUnauthorized)
		return
	}

	if actor.Role != domain.RoleShopOwner {
		h.logger.Warn("POST /shops - Role check failed: user_id=%d, role=%s", actor.UserID, actor.Role)
		handlers.RespondForbidden(w, msgOwnerOnly)
		return
	}

	var req CreateShopRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /shops - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.CreateShop(r.Context(), &models.CreateShopRequest{
		OwnerID:     actor.UserID,
		Name:        req.Name,
		Area:        req.Area,
		Address:     req.Address,
		Contact:     req.Contact,
		Description: req.Description,
		ImageRef:    req.ImageRef,
	})
	if err != nil {
		switch {
		case errors.Is(err, catalogService.ErrShopAlreadyExists):
			h.logger.Warn("POST /shops - Owner already has a shop: user_id=%d", actor.UserID)
			handlers.RespondError(w, http.StatusConflict, msgShopAlreadyExists)

		case errors.Is(err, catalogService.ErrInvalidInput):
			h.logger.Warn("POST /shops - Invalid input: user_id=%d: %v", actor.UserID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /shops - Failed to create shop: user_id=%d, error=%v", actor.UserID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /shops - Shop created: shop_id=%d, owner_id=%d", result.ID, actor.UserID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
