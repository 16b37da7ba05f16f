package domain

import "time"

// Role of an authenticated identity, provided by the external auth
// system and trusted as given.
type Role string

const (
	RoleCustomer  Role = "customer"
	RoleShopOwner Role = "shop_owner"
)

// Actor is the identity a request acts as.
type Actor struct {
	UserID int64
	Role   Role
}

// Shop is a bookable establishment. Each owner has at most one shop;
// the invariant is enforced by the catalog service, not the schema.
type Shop struct {
	ID          int64
	OwnerID     int64
	Name        string
	Area        string
	Address     string
	Contact     string
	Description *string
	ImageRef    *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Service is a bookable offering of a shop.
type Service struct {
	ID              int64
	ShopID          int64
	Name            string
	Price           float64
	DurationMinutes int
	Description     *string
	CreatedAt       time.Time
}

// SumServices totals duration and price over a set of services.
func SumServices(services []*Service) (durationMinutes int, price float64) {
	for _, s := range services {
		durationMinutes += s.DurationMinutes
		price += s.Price
	}
	return durationMinutes, price
}
