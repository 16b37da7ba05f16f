package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/kalathiyadhruv74-afk/BookMyCut/internal/domain"
	catalogRepo "github.com/kalathiyadhruv74-afk/BookMyCut/internal/infra/storage/catalog"
	"github.com/kalathiyadhruv74-afk/BookMyCut/internal/service/catalog/models"
)

// Service manages the shop and service catalog
type Service struct {
	catalogRepo CatalogRepository
	logger      Logger
}

// NewService creates a new catalog service instance
func NewService(catalogRepo CatalogRepository, logger Logger) *Service {
	return &Service{
		catalogRepo: catalogRepo,
		logger:      logger,
	}
}

// CreateShop registers a shop for an owner.
// Each owner may register at most one shop.
func (s *Service) CreateShop(ctx context.Context, req *models.CreateShopRequest) (*models.ShopResponse, error) {
	s.logger.Info("CreateShop: creating shop %q for owner=%d", req.Name, req.OwnerID)

	if err := validateCreateShop(req); err != nil {
		s.logger.Warn("CreateShop: validation failed: %v", err)
		return nil, err
	}

	_, err := s.catalogRepo.GetShopByOwner(ctx, req.OwnerID)
	if err == nil {
		s.logger.Warn("CreateShop: owner=%d already has a shop", req.OwnerID)
		return nil, ErrShopAlreadyExists
	}
	if !errors.Is(err, catalogRepo.ErrShopNotFound) {
		s.logger.Error("CreateShop: repository error for owner=%d: %v", req.OwnerID, err)
		return nil, fmt.Errorf("%w: CreateShop - repository error: %v", ErrInternal, err)
	}

	shop := &domain.Shop{
		OwnerID:     req.OwnerID,
		Name:        strings.TrimSpace(req.Name),
		Area:        strings.TrimSpace(req.Area),
		Address:     strings.TrimSpace(req.Address),
		Contact:     strings.TrimSpace(req.Contact),
		Description: req.Description,
		ImageRef:    req.ImageRef,
	}

	created, err := s.catalogRepo.CreateShop(ctx, shop)
	if err != nil {
		s.logger.Error("CreateShop: repository error for owner=%d: %v", req.OwnerID, err)
		return nil, fmt.Errorf("%w: CreateShop - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateShop: successfully created shop id=%d for owner=%d", created.ID, req.OwnerID)
	return models.FromDomainShop(created), nil
}

// UpdateShop updates shop details. Owner only.
func (s *Service) UpdateShop(ctx context.Context, shopID int64, req *models.UpdateShopRequest) (*models.ShopResponse, error) {
	s.logger.Info("UpdateShop: updating shop id=%d by user=%d", shopID, req.UserID)

	shop, err := s.getOwnedShop(ctx, shopID, req.UserID, "UpdateShop")
	if err != nil {
		return nil, err
	}

	applyShopUpdate(shop, req)

	if err := validateShopFields(shop.Name, shop.Area, shop.Address, shop.Contact, shop.Description); err != nil {
		s.logger.Warn("UpdateShop: validation failed: %v", err)
		return nil, err
	}

	if err := s.catalogRepo.UpdateShop(ctx, shop); err != nil {
		if errors.Is(err, catalogRepo.ErrShopNotFound) {
			return nil, ErrShopNotFound
		}
		s.logger.Error("UpdateShop: repository error for shop id=%d: %v", shopID, err)
		return nil, fmt.Errorf("%w: UpdateShop - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateShop: successfully updated shop id=%d", shopID)
	return models.FromDomainShop(shop), nil
}

// GetShop fetches one shop by id
func (s *Service) GetShop(ctx context.Context, id int64) (*models.ShopResponse, error) {
	s.logger.Info("GetShop: fetching shop id=%d", id)

	shop, err := s.catalogRepo.GetShop(ctx, id)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrShopNotFound) {
			s.logger.Warn("GetShop: shop id=%d not found", id)
			return nil, ErrShopNotFound
		}
		s.logger.Error("GetShop: repository error for shop id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetShop - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainShop(shop), nil
}

// GetShopByOwner fetches the shop registered by an owner
func (s *Service) GetShopByOwner(ctx context.Context, ownerID int64) (*models.ShopResponse, error) {
	s.logger.Info("GetShopByOwner: fetching shop for owner=%d", ownerID)

	shop, err := s.catalogRepo.GetShopByOwner(ctx, ownerID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrShopNotFound) {
			s.logger.Warn("GetShopByOwner: owner=%d has no shop", ownerID)
			return nil, ErrShopNotFound
		}
		s.logger.Error("GetShopByOwner: repository error for owner=%d: %v", ownerID, err)
		return nil, fmt.Errorf("%w: GetShopByOwner - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainShop(shop), nil
}

// SearchShops lists shops whose area starts with the given prefix.
// An empty prefix lists every shop.
func (s *Service) SearchShops(ctx context.Context, areaPrefix string) (*models.ShopListResponse, error) {
	areaPrefix = strings.TrimSpace(areaPrefix)
	s.logger.Info("SearchShops: searching shops with area prefix %q", areaPrefix)

	shops, err := s.catalogRepo.SearchShops(ctx, areaPrefix)
	if err != nil {
		s.logger.Error("SearchShops: repository error: %v", err)
		return nil, fmt.Errorf("%w: SearchShops - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("SearchShops: found %d shops for prefix %q", len(shops), areaPrefix)
	return models.FromDomainShopList(shops), nil
}

// AddService adds a service to a shop. Owner only.
func (s *Service) AddService(ctx context.Context, req *models.CreateServiceRequest) (*models.ServiceResponse, error) {
	s.logger.Info("AddService: adding service %q to shop=%d by user=%d", req.Name, req.ShopID, req.UserID)

	if err := validateCreateService(req); err != nil {
		s.logger.Warn("AddService: validation failed: %v", err)
		return nil, err
	}

	if _, err := s.getOwnedShop(ctx, req.ShopID, req.UserID, "AddService"); err != nil {
		return nil, err
	}

	service := &domain.Service{
		ShopID:          req.ShopID,
		Name:            strings.TrimSpace(req.Name),
		Price:           req.Price,
		DurationMinutes: req.DurationMinutes,
		Description:     req.Description,
	}

	created, err := s.catalogRepo.CreateService(ctx, service)
	if err != nil {
		s.logger.Error("AddService: repository error for shop=%d: %v", req.ShopID, err)
		return nil, fmt.Errorf("%w: AddService - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("AddService: successfully created service id=%d for shop=%d", created.ID, req.ShopID)
	return models.FromDomainService(created), nil
}

// ListServices lists the services offered by a shop
func (s *Service) ListServices(ctx context.Context, shopID int64) (*models.ServiceListResponse, error) {
	s.logger.Info("ListServices: fetching services for shop=%d", shopID)

	if _, err := s.catalogRepo.GetShop(ctx, shopID); err != nil {
		if errors.Is(err, catalogRepo.ErrShopNotFound) {
			s.logger.Warn("ListServices: shop id=%d not found", shopID)
			return nil, ErrShopNotFound
		}
		s.logger.Error("ListServices: repository error for shop id=%d: %v", shopID, err)
		return nil, fmt.Errorf("%w: ListServices - repository error: %v", ErrInternal, err)
	}

	services, err := s.catalogRepo.ListServices(ctx, shopID)
	if err != nil {
		s.logger.Error("ListServices: repository error for shop=%d: %v", shopID, err)
		return nil, fmt.Errorf("%w: ListServices - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListServices: successfully fetched %d services for shop=%d", len(services), shopID)
	return models.FromDomainServiceList(services), nil
}

// getOwnedShop loads a shop and verifies ownership
func (s *Service) getOwnedShop(ctx context.Context, shopID, userID int64, method string) (*domain.Shop, error) {
	shop, err := s.catalogRepo.GetShop(ctx, shopID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrShopNotFound) {
			s.logger.Warn("%s: shop id=%d not found", method, shopID)
			return nil, ErrShopNotFound
		}
		s.logger.Error("%s: repository error for shop id=%d: %v", method, shopID, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, method, err)
	}

	if shop.OwnerID != userID {
		s.logger.Warn("%s: user=%d is not the owner of shop=%d", method, userID, shopID)
		return nil, ErrAccessDenied
	}

	return shop, nil
}

func applyShopUpdate(shop *domain.Shop, req *models.UpdateShopRequest) {
	if req.Name != nil {
		shop.Name = strings.TrimSpace(*req.Name)
	}
	if req.Area != nil {
		shop.Area = strings.TrimSpace(*req.Area)
	}
	if req.Address != nil {
		shop.Address = strings.TrimSpace(*req.Address)
	}
	if req.Contact != nil {
		shop.Contact = strings.TrimSpace(*req.Contact)
	}
	if req.Description != nil {
		shop.Description = req.Description
	}
	if req.ImageRef != nil {
		shop.ImageRef = req.ImageRef
	}
}

func validateCreateShop(req *models.CreateShopRequest) error {
	if req.OwnerID <= 0 {
		return fmt.Errorf("%w: owner_id must be positive", ErrInvalidInput)
	}
	return validateShopFields(req.Name, req.Area, req.Address, req.Contact, req.Description)
}

func validateShopFields(name, area, address, contact string, description *string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("%w: shop name is required", ErrInvalidInput)
	}
	if len(name) > domain.MaxShopNameLength {
		return fmt.Errorf("%w: shop name exceeds %d characters", ErrInvalidInput, domain.MaxShopNameLength)
	}
	if strings.TrimSpace(area) == "" {
		return fmt.Errorf("%w: area is required", ErrInvalidInput)
	}
	if strings.TrimSpace(address) == "" {
		return fmt.Errorf("%w: address is required", ErrInvalidInput)
	}
	if strings.TrimSpace(contact) == "" {
		return fmt.Errorf("%w: contact is required", ErrInvalidInput)
	}
	if description != nil && len(*description) > domain.MaxDescriptionLength {
		return fmt.Errorf("%w: description exceeds %d characters", ErrInvalidInput, domain.MaxDescriptionLength)
	}
	return nil
}

func validateCreateService(req *models.CreateServiceRequest) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: user_id must be positive", ErrInvalidInput)
	}
	if req.ShopID <= 0 {
		return fmt.Errorf("%w: shop_id must be positive", ErrInvalidInput)
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return fmt.Errorf("%w: service name is required", ErrInvalidInput)
	}
	if len(name) > domain.MaxServiceNameLength {
		return fmt.Errorf("%w: service name exceeds %d characters", ErrInvalidInput, domain.MaxServiceNameLength)
	}
	if req.Price <= 0 {
		return fmt.Errorf("%w: price must be positive", ErrInvalidInput)
	}
	if req.DurationMinutes <= 0 {
		return fmt.Errorf("%w: duration must be positive", ErrInvalidInput)
	}
	if req.Description != nil && len(*req.Description) > domain.MaxDescriptionLength {
		return fmt.Errorf("%w: description exceeds %d characters", ErrInvalidInput, domain.MaxDescriptionLength)
	}
	return nil
}
