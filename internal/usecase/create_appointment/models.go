package create_appointment

import (
	"time"

	"github.com/kalathiyadhruv74-afk/BookMyCut/pkg/types"
)

// Request input data for creating an appointment
type Request struct {
	CustomerID int64
	ShopID     int64
	ServiceIDs []int64
	Date       time.Time
	StartTime  types.TimeString
}

// Response created appointment data
type Response struct {
	ID            int64
	CustomerID    int64
	ShopID        int64
	ServiceIDs    []int64
	Date          time.Time
	StartTime     types.TimeString
	TotalDuration int
	TotalPrice    float64
	Status        string
	PaymentStatus string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
