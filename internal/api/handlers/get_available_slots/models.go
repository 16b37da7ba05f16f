package get_available_slots

import (
	"github.com/kalathiyadhruv74-afk/BookMyCut/internal/domain"
	getAvailableSlots "github.com/kalathiyadhruv74-afk/BookMyCut/internal/usecase/get_available_slots"
)

// SlotResponse one grid slot with its availability flag
type SlotResponse struct {
	StartTime string `json:"startTime"` // "10:00"
	Available bool   `json:"available"`
	Reason    string `json:"reason,omitempty"` // "booked" or "past"
}

// SlotsResponse HTTP response model
type SlotsResponse struct {
	Date          string         `json:"date"`
	ShopID        int64          `json:"shopId"`
	TotalDuration int            `json:"totalDurationMinutes"`
	TotalPrice    float64        `json:"totalPrice"`
	Slots         []SlotResponse `json:"slots"`
}

// FromUseCaseResponse converts the use case response into the HTTP model
func FromUseCaseResponse(resp *getAvailableSlots.Response) *SlotsResponse {
	slots := make([]SlotResponse, 0, len(resp.Slots))
	for _, s := range resp.Slots {
		slots = append(slots, SlotResponse{
			StartTime: s.StartTime.String(),
			Available: s.Available,
			Reason:    s.Reason,
		})
	}

	return &SlotsResponse{
		Date:          resp.Date.Format(domain.DateFormat),
		ShopID:        resp.ShopID,
		TotalDuration: resp.TotalDuration,
		TotalPrice:    resp.TotalPrice,
		Slots:         slots,
	}
}
