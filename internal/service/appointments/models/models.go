package models

import (
	"errors"
	"time"

	"github.com/kalathiyadhruv74-afk/BookMyCut/internal/domain"
)

var (
	// ErrInvalidStatus is returned on an unknown status value
	ErrInvalidStatus = errors.New("invalid appointment status")
)

// Request models

// GetUserAppointmentsRequest lists the appointments of one customer
type GetUserAppointmentsRequest struct {
	UserID int64   `json:"userId"`
	Status *string `json:"status,omitempty"`
}

// GetShopAppointmentsRequest lists the appointments of one shop
type GetShopAppointmentsRequest struct {
	UserID int64   `json:"userId"`
	ShopID int64   `json:"shopId"`
	Status *string `json:"status,omitempty"`
}

// Response models

// AppointmentResponse appointment data returned to clients
type AppointmentResponse struct {
	ID            int64    `json:"id"`
	CustomerID    int64    `json:"customerId"`
	ShopID        int64    `json:"shopId"`
	Date          string   `json:"date"`      // "2026-03-15"
	StartTime     string   `json:"startTime"` // "10:00"
	EndTime       string   `json:"endTime"`   // "10:45"
	TotalDuration int      `json:"totalDurationMinutes"`
	TotalPrice    float64  `json:"totalPrice"`
	Status        string   `json:"status"`
	PaymentStatus string   `json:"paymentStatus"`
	ServiceIDs    []int64  `json:"serviceIds"`
	ServiceNames  []string `json:"serviceNames,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// AppointmentListResponse list of appointments
type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
}

// Conversion helpers

// FromDomainAppointment converts a domain model to a DTO
func FromDomainAppointment(a *domain.Appointment) *AppointmentResponse {
	if a == nil {
		return nil
	}

	endTime := ""
	if end, err := a.EndTime(); err == nil {
		endTime = end.String()
	}

	return &AppointmentResponse{
		ID:            a.ID,
		CustomerID:    a.CustomerID,
		ShopID:        a.ShopID,
		Date:          a.Date.Format(domain.DateFormat),
		StartTime:     a.StartTime.String(),
		EndTime:       endTime,
		TotalDuration: a.TotalDuration,
		TotalPrice:    a.TotalPrice,
		Status:        string(a.Status),
		PaymentStatus: string(a.PaymentStatus),
		ServiceIDs:    a.ServiceIDs,
		ServiceNames:  a.ServiceNames,
		CreatedAt:     a.CreatedAt,
		UpdatedAt:     a.UpdatedAt,
	}
}

// FromDomainAppointmentList converts a list of domain models to a DTO
func FromDomainAppointmentList(list []*domain.Appointment) *AppointmentListResponse {
	resp := &AppointmentListResponse{
		Appointments: make([]AppointmentResponse, 0, len(list)),
	}
	for _, a := range list {
		resp.Appointments = append(resp.Appointments, *FromDomainAppointment(a))
	}
	return resp
}

// ToDomainAppointmentStatus converts a string status to the domain type
func ToDomainAppointmentStatus(s string) (domain.AppointmentStatus, error) {
	if !domain.ValidAppointmentStatus(s) {
		return "", ErrInvalidStatus
	}
	return domain.AppointmentStatus(s), nil
}
