package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kalathiyadhruv74-afk/BookMyCut/internal/domain"
	catalogRepo "github.com/kalathiyadhruv74-afk/BookMyCut/internal/infra/storage/catalog"
	"github.com/kalathiyadhruv74-afk/BookMyCut/internal/service/catalog/models"
	"github.com/kalathiyadhruv74-afk/BookMyCut/pkg/ptr"
)

type fakeCatalogRepo struct {
	shops    map[int64]*domain.Shop
	byOwner  map[int64]*domain.Shop
	services []*domain.Service
	nextID   int64
	updated  *domain.Shop
}

func newFakeCatalogRepo() *fakeCatalogRepo {
	return &fakeCatalogRepo{
		shops:   make(map[int64]*domain.Shop),
		byOwner: make(map[int64]*domain.Shop),
	}
}

func (f *fakeCatalogRepo) addShop(shop *domain.Shop) {
	f.shops[shop.ID] = shop
	f.byOwner[shop.OwnerID] = shop
}

func (f *fakeCatalogRepo) CreateShop(_ context.Context, shop *domain.Shop) (*domain.Shop, error) {
	f.nextID++
	stored := *shop
	stored.ID = f.nextID
	f.addShop(&stored)
	return &stored, nil
}

func (f *fakeCatalogRepo) UpdateShop(_ context.Context, shop *domain.Shop) error {
	f.updated = shop
	return nil
}

func (f *fakeCatalogRepo) GetShop(_ context.Context, id int64) (*domain.Shop, error) {
	shop, ok := f.shops[id]
	if !ok {
		return nil, catalogRepo.ErrShopNotFound
	}
	return shop, nil
}

func (f *fakeCatalogRepo) GetShopByOwner(_ context.Context, ownerID int64) (*domain.Shop, error) {
	shop, ok := f.byOwner[ownerID]
	if !ok {
		return nil, catalogRepo.ErrShopNotFound
	}
	return shop, nil
}

func (f *fakeCatalogRepo) SearchShops(_ context.Context, _ string) ([]*domain.Shop, error) {
	shops := make([]*domain.Shop, 0, len(f.shops))
	for _, shop := range f.shops {
		shops = append(shops, shop)
	}
	return shops, nil
}

func (f *fakeCatalogRepo) CreateService(_ context.Context, service *domain.Service) (*domain.Service, error) {
	f.nextID++
	stored := *service
	stored.ID = f.nextID
	f.services = append(f.services, &stored)
	return &stored, nil
}

func (f *fakeCatalogRepo) ListServices(_ context.Context, _ int64) ([]*domain.Service, error) {
	return f.services, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func validCreateShopRequest() *models.CreateShopRequest {
	return &models.CreateShopRequest{
		OwnerID: 7,
		Name:    "Classic Cuts",
		Area:    "Koramangala",
		Address: "12 5th Block",
		Contact: "+91-9000000000",
	}
}

func TestCreateShop_OnePerOwner(t *testing.T) {
	repo := newFakeCatalogRepo()
	svc := NewService(repo, nopLogger{})

	created, err := svc.CreateShop(context.Background(), validCreateShopRequest())
	require.NoError(t, err)
	assert.Equal(t, "Classic Cuts", created.Name)

	_, err = svc.CreateShop(context.Background(), validCreateShopRequest())
	assert.ErrorIs(t, err, ErrShopAlreadyExists)
}

func TestCreateShop_Validation(t *testing.T) {
	svc := NewService(newFakeCatalogRepo(), nopLogger{})

	tests := []struct {
		name   string
		mutate func(req *models.CreateShopRequest)
	}{
		{"empty name", func(req *models.CreateShopRequest) { req.Name = "" }},
		{"empty area", func(req *models.CreateShopRequest) { req.Area = "" }},
		{"empty address", func(req *models.CreateShopRequest) { req.Address = "" }},
		{"empty contact", func(req *models.CreateShopRequest) { req.Contact = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validCreateShopRequest()
			tt.mutate(req)

			_, err := svc.CreateShop(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestUpdateShop_OwnerOnly(t *testing.T) {
	repo := newFakeCatalogRepo()
	repo.addShop(&domain.Shop{ID: 1, OwnerID: 7, Name: "Classic Cuts", Area: "Koramangala", Address: "12 5th Block", Contact: "x"})
	svc := NewService(repo, nopLogger{})

	resp, err := svc.UpdateShop(context.Background(), 1, &models.UpdateShopRequest{
		UserID: 7,
		Name:   ptr.Ptr("Modern Cuts"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Modern Cuts", resp.Name)
	assert.Equal(t, "Koramangala", resp.Area, "unset fields keep their value")

	_, err = svc.UpdateShop(context.Background(), 1, &models.UpdateShopRequest{
		UserID: 99,
		Name:   ptr.Ptr("Hijacked"),
	})
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestAddService_OwnerOnly(t *testing.T) {
	repo := newFakeCatalogRepo()
	repo.addShop(&domain.Shop{ID: 1, OwnerID: 7, Name: "Classic Cuts"})
	svc := NewService(repo, nopLogger{})

	created, err := svc.AddService(context.Background(), &models.CreateServiceRequest{
		UserID:          7,
		ShopID:          1,
		Name:            "Haircut",
		Price:           25,
		DurationMinutes: 30,
	})
	require.NoError(t, err)
	assert.Equal(t, "Haircut", created.Name)

	_, err = svc.AddService(context.Background(), &models.CreateServiceRequest{
		UserID:          99,
		ShopID:          1,
		Name:            "Haircut",
		Price:           25,
		DurationMinutes: 30,
	})
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestAddService_Validation(t *testing.T) {
	repo := newFakeCatalogRepo()
	repo.addShop(&domain.Shop{ID: 1, OwnerID: 7})
	svc := NewService(repo, nopLogger{})

	_, err := svc.AddService(context.Background(), &models.CreateServiceRequest{
		UserID: 7, ShopID: 1, Name: "Haircut", Price: 0, DurationMinutes: 30,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.AddService(context.Background(), &models.CreateServiceRequest{
		UserID: 7, ShopID: 1, Name: "Haircut", Price: 25, DurationMinutes: 0,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestListServices_ShopNotFound(t *testing.T) {
	svc := NewService(newFakeCatalogRepo(), nopLogger{})

	_, err := svc.ListServices(context.Background(), 404)
	assert.ErrorIs(t, err, ErrShopNotFound)
}
