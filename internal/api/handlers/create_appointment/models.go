package create_appointment

import (
	"time"

	"github.com/kalathiyadhruv74-afk/BookMyCut/internal/domain"
	createAppointment "github.com/kalathiyadhruv74-afk/BookMyCut/internal/usecase/create_appointment"
	"github.com/kalathiyadhruv74-afk/BookMyCut/pkg/types"
)

// CreateAppointmentRequest HTTP request model
type CreateAppointmentRequest struct {
	ShopID     int64   `json:"shopId"`
	ServiceIDs []int64 `json:"serviceIds"`
	Date       string  `json:"date"`      // "2026-03-15"
	StartTime  string  `json:"startTime"` // "10:00"
}

// AppointmentResponse HTTP response model
type AppointmentResponse struct {
	ID            int64   `json:"id"`
	CustomerID    int64   `json:"customerId"`
	ShopID        int64   `json:"shopId"`
	ServiceIDs    []int64 `json:"serviceIds"`
	Date          string  `json:"date"`
	StartTime     string  `json:"startTime"`
	TotalDuration int     `json:"totalDurationMinutes"`
	TotalPrice    float64 `json:"totalPrice"`
	Status        string  `json:"status"`
	PaymentStatus string  `json:"paymentStatus"`
	CreatedAt     string  `json:"createdAt"`
	UpdatedAt     string  `json:"updatedAt"`
}

// ToUseCaseRequest converts the HTTP request into the use case model
func (r *CreateAppointmentRequest) ToUseCaseRequest(customerID int64) (*createAppointment.Request, error) {
	date, err := time.ParseInLocation(domain.DateFormat, r.Date, domain.ShopLocation)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &createAppointment.Request{
		CustomerID: customerID,
		ShopID:     r.ShopID,
		ServiceIDs: r.ServiceIDs,
		Date:       date,
		StartTime:  startTime,
	}, nil
}

// FromUseCaseResponse converts the use case response into the HTTP model
func FromUseCaseResponse(resp *createAppointment.Response) *AppointmentResponse {
	return &AppointmentResponse{
		ID:            resp.ID,
		CustomerID:    resp.CustomerID,
		ShopID:        resp.ShopID,
		ServiceIDs:    resp.ServiceIDs,
		Date:          resp.Date.Format(domain.DateFormat),
		StartTime:     resp.StartTime.String(),
		TotalDuration: resp.TotalDuration,
		TotalPrice:    resp.TotalPrice,
		Status:        resp.Status,
		PaymentStatus: resp.PaymentStatus,
		CreatedAt:     resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     resp.UpdatedAt.Format(time.RFC3339),
	}
}
