package models

import (
	"time"

	"github.com/kalathiyadhruv74-afk/BookMyCut/internal/domain"
)

// Request models

// CreateShopRequest request for registering a shop
type CreateShopRequest struct {
	OwnerID     int64   `json:"ownerId"`
	Name        string  `json:"name"`
	Area        string  `json:"area"`
	Address     string  `json:"address"`
	Contact     string  `json:"contact"`
	Description *string `json:"description,omitempty"`
	ImageRef    *string `json:"imageRef,omitempty"`
}

// UpdateShopRequest request for updating shop details.
// Nil fields keep their current value.
type UpdateShopRequest struct {
	UserID      int64   `json:"userId"`
	Name        *string `json:"name,omitempty"`
	Area        *string `json:"area,omitempty"`
	Address     *string `json:"address,omitempty"`
	Contact     *string `json:"contact,omitempty"`
	Description *string `json:"description,omitempty"`
	ImageRef    *string `json:"imageRef,omitempty"`
}

// CreateServiceRequest request for adding a service to a shop
type CreateServiceRequest struct {
	UserID          int64   `json:"userId"`
	ShopID          int64   `json:"shopId"`
	Name            string  `json:"name"`
	Price           float64 `json:"price"`
	DurationMinutes int     `json:"durationMinutes"`
	Description     *string `json:"description,omitempty"`
}

// Response models

// ShopResponse shop data returned to clients
type ShopResponse struct {
	ID          int64   `json:"id"`
	OwnerID     int64   `json:"ownerId"`
	Name        string  `json:"name"`
	Area        string  `json:"area"`
	Address     string  `json:"address"`
	Contact     string  `json:"contact"`
	Description *string `json:"description,omitempty"`
	ImageRef    *string `json:"imageRef,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ShopListResponse list of shops
type ShopListResponse struct {
	Shops []ShopResponse `json:"shops"`
}

// ServiceResponse service data returned to clients
type ServiceResponse struct {
	ID              int64   `json:"id"`
	ShopID          int64   `json:"shopId"`
	Name            string  `json:"name"`
	Price           float64 `json:"price"`
	DurationMinutes int     `json:"durationMinutes"`
	Description     *string `json:"description,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
}

// ServiceListResponse list of services
type ServiceListResponse struct {
	Services []ServiceResponse `json:"services"`
}

// Conversion helpers

// FromDomainShop converts a domain model to a DTO
func FromDomainShop(s *domain.Shop) *ShopResponse {
	if s == nil {
		return nil
	}
	return &ShopResponse{
		ID:          s.ID,
		OwnerID:     s.OwnerID,
		Name:        s.Name,
		Area:        s.Area,
		Address:     s.Address,
		Contact:     s.Contact,
		Description: s.Description,
		ImageRef:    s.ImageRef,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

// FromDomainShopList converts a list of domain models to a DTO
func FromDomainShopList(list []*domain.Shop) *ShopListResponse {
	resp := &ShopListResponse{Shops: make([]ShopResponse, 0, len(list))}
	for _, s := range list {
		resp.Shops = append(resp.Shops, *FromDomainShop(s))
	}
	return resp
}

// FromDomainService converts a domain model to a DTO
func FromDomainService(s *domain.Service) *ServiceResponse {
	if s == nil {
		return nil
	}
	return &ServiceResponse{
		ID:              s.ID,
		ShopID:          s.ShopID,
		Name:            s.Name,
		Price:           s.Price,
		DurationMinutes: s.DurationMinutes,
		Description:     s.Description,
		CreatedAt:       s.CreatedAt,
	}
}

// FromDomainServiceList converts a list of domain models to a DTO
func FromDomainServiceList(list []*domain.Service) *ServiceListResponse {
	resp := &ServiceListResponse{Services: make([]ServiceResponse, 0, len(list))}
	for _, s := range list {
		resp.Services = append(resp.Services, *FromDomainService(s))
	}
	return resp
}
