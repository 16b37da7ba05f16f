package get_available_slots

import (
	"time"

	"github.com/kalathiyadhruv74-afk/BookMyCut/internal/domain"
)

// Request input data for fetching available slots
type Request struct {
	ShopID     int64
	ServiceIDs []int64
	Date       time.Time
}

// Response list of slots with availability flags for the requested day
type Response struct {
	Date          time.Time
	ShopID        int64
	TotalDuration int
	TotalPrice    float64
	Slots         []domain.Slot
}
