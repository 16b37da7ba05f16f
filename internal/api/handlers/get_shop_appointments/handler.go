package get_shop_appointments

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/kalathiyadhruv74-afk/BookMyCut/internal/api/handlers"
	"github.com/kalathiyadhruv74-afk/BookMyCut/internal/api/middleware"
	appointmentsService "github.com/kalathiyadhruv74-afk/BookMyCut/internal/service/appointments"
	"github.com/kalathiyadhruv74-afk/BookMyCut/internal/service/appointments/models"
)

const (
	msgInvalidShopID = "invalid shop id"
	msgUnauthorized  = "authentication required"
	msgShopNotFound  = "shop not found"
	msgAccessDenied  = "only the shop owner may view shop appointments"
	msgInvalidStatus = "invalid status filter"
)

type Handler struct {
	service AppointmentsService
	logger  Logger
}

func NewHandler(service AppointmentsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/shops/{shopId}/appointments?status=pending
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.ActorFromContext(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, msgUnauthorized)
		return
	}

	shopID, err := strconv.ParseInt(mux.Vars(r)["shopId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /shops/{shopId}/appointments - Invalid shop id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidShopID)
		return
	}

	req := &models.GetShopAppointmentsRequest{
		UserID: actor.UserID,
		ShopID: shopID,
	}
	if status := r.URL.Query().Get("status"); status != "" {
		req.Status = &status
	}

	result, err := h.service.GetShopAppointments(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, appointmentsService.ErrShopNotFound):
			h.logger.Warn("GET /shops/%d/appointments - Shop not found", shopID)
			handlers.RespondNotFound(w, msgShopNotFound)

		case errors.Is(err, appointmentsService.ErrAccessDenied):
			h.logger.Warn("GET /shops/%d/appointments - Access denied: user_id=%d", shopID, actor.UserID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, appointmentsService.ErrInvalidInput):
			h.logger.Warn("GET /shops/%d/appointments - Invalid status filter", shopID)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			h.logger.Error("GET /shops/%d/appointments - Failed: user_id=%d, error=%v", shopID, actor.UserID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
