package get_available_slots

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/mux"

	"github.com/kalathiyadhruv74-afk/BookMyCut/internal/api/handlers"
	"github.com/kalathiyadhruv74-afk/BookMyCut/internal/domain"
	getAvailableSlots "github.com/kalathiyadhruv74-afk/BookMyCut/internal/usecase/get_available_slots"
)

const (
	msgInvalidShopID     = "invalid shop id"
	msgInvalidDate       = "invalid date parameter, expected YYYY-MM-DD"
	msgInvalidServiceIDs = "invalid serviceIds parameter, expected comma-separated ids"
	msgShopNotFound      = "shop not found"
	msgServiceNotFound   = "service not found for this shop"
	msgPastDate          = "the selected date has already passed"
	msgInvalidInput      = "invalid request parameters"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/shops/{shopId}/slots?date=YYYY-MM-DD&serviceIds=1,2
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	shopID, err := strconv.ParseInt(mux.Vars(r)["shopId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /shops/{shopId}/slots - Invalid shop id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidShopID)
		return
	}

	date, err := time.ParseInLocation(domain.DateFormat, r.URL.Query().Get("date"), domain.ShopLocation)
	if err != nil {
		h.logger.Warn("GET /shops/%d/slots - Invalid date: %v", shopID, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	serviceIDs, err := parseServiceIDs(r.URL.Query().Get("serviceIds"))
	if err != nil {
		h.logger.Warn("GET /shops/%d/slots - Invalid serviceIds: %v", shopID, err)
		handlers.RespondBadRequest(w, msgInvalidServiceIDs)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getAvailableSlots.Request{
		ShopID:     shopID,
		ServiceIDs: serviceIDs,
		Date:       date,
	})
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrShopNotFound):
			h.logger.Warn("GET /shops/%d/slots - Shop not found", shopID)
			handlers.RespondNotFound(w, msgShopNotFound)

		case errors.Is(err, getAvailableSlots.ErrServiceNotFound):
			h.logger.Warn("GET /shops/%d/slots - Service not found: service_ids=%v", shopID, serviceIDs)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, getAvailableSlots.ErrPastDate):
			h.logger.Warn("GET /shops/%d/slots - Past date: %s", shopID, r.URL.Query().Get("date"))
			handlers.RespondBadRequest(w, msgPastDate)

		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /shops/%d/slots - Invalid input: %v", shopID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /shops/%d/slots - Failed to get slots: %v", shopID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /shops/%d/slots - Returned %d slots for date=%s",
		shopID, len(result.Slots), result.Date.Format(domain.DateFormat))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

func parseServiceIDs(raw string) ([]int64, error) {
	if raw == "" {
		return nil, nil
	}

	parts := strings.Split(raw, ",")
	ids := make([]int64, 0, len(parts))
	for _, p := range parts {
		id, err := strconv.ParseInt(strings.TrimSpace(p), 10, 64)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
