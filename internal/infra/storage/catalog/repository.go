package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"

	"github.com/kalathiyadhruv74-afk/BookMyCut/internal/domain"
	"github.com/kalathiyadhruv74-afk/BookMyCut/pkg/dbmetrics"
	"github.com/kalathiyadhruv74-afk/BookMyCut/pkg/psqlbuilder"
)

var shopColumns = []string{
	"id",
	"owner_id",
	"name",
	"area",
	"address",
	"contact",
	"description",
	"image_ref",
	"created_at",
	"updated_at",
}

var serviceColumns = []string{
	"id",
	"shop_id",
	"name",
	"price",
	"duration_minutes",
	"description",
	"created_at",
}

// Repository reads and writes the shop/service catalog.
type Repository struct {
	db dbmetrics.DBExecutor
}

func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// CreateShop inserts a shop. The one-shop-per-owner invariant is
// enforced by the catalog service, not here.
func (r *Repository) CreateShop(ctx context.Context, shop *domain.Shop) (*domain.Shop, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("shops").
		Columns("owner_id", "name", "area", "address", "contact", "description", "image_ref").
		Values(shop.OwnerID, shop.Name, shop.Area, shop.Address, shop.Contact, shop.Description, shop.ImageRef).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: CreateShop - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&shop.ID, &createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: CreateShop - execute insert: %v", ErrExecQuery, err)
	}

	shop.CreatedAt = createdAt.Time
	shop.UpdatedAt = updatedAt.Time
	return shop, nil
}

// UpdateShop rewrites the mutable shop fields.
func (r *Repository) UpdateShop(ctx context.Context, shop *domain.Shop) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("shops").
		Set("name", shop.Name).
		Set("area", shop.Area).
		Set("address", shop.Address).
		Set("contact", shop.Contact).
		Set("description", shop.Description).
		Set("image_ref", shop.ImageRef).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": shop.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateShop - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateShop - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateShop - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrShopNotFound
	}
	return nil
}

// GetShop fetches one shop by id.
func (r *Repository) GetShop(ctx context.Context, id int64) (*domain.Shop, error) {
	return r.getShop(ctx, squirrel.Eq{"id": id}, "GetShop")
}

// GetShopByOwner fetches the shop owned by ownerID, if any.
func (r *Repository) GetShopByOwner(ctx context.Context, ownerID int64) (*domain.Shop, error) {
	return r.getShop(ctx, squirrel.Eq{"owner_id": ownerID}, "GetShopByOwner")
}

func (r *Repository) getShop(ctx context.Context, where squirrel.Eq, method string) (*domain.Shop, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(shopColumns...).
		From("shops").
		Where(where).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, method, err)
	}

	shop, err := scanShop(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrShopNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan shop: %v", ErrScanRow, method, err)
	}
	return shop, nil
}

// SearchShops lists shops, optionally narrowed to areas starting with
// the given prefix. The prefix query replaces the in-memory area
// index the legacy application rebuilt per process.
func (r *Repository) SearchShops(ctx context.Context, areaPrefix string) ([]*domain.Shop, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(shopColumns...).
		From("shops").
		OrderBy("name ASC")

	if areaPrefix != "" {
		selectBuilder = selectBuilder.Where(squirrel.ILike{"area": escapeLikePattern(areaPrefix) + "%"})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: SearchShops - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: SearchShops - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	shops := make([]*domain.Shop, 0)
	for rows.Next() {
		shop, err := scanShop(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: SearchShops - scan row: %v", ErrScanRow, err)
		}
		shops = append(shops, shop)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: SearchShops - rows error: %v", ErrScanRow, err)
	}
	return shops, nil
}

// escapeLikePattern neutralizes LIKE metacharacters in user input so a
// prefix like "100%" matches areas literally instead of everything.
func escapeLikePattern(s string) string {
	return likeEscaper.Replace(s)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// CreateService inserts a service for a shop.
func (r *Repository) CreateService(ctx context.Context, service *domain.Service) (*domain.Service, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("services").
		Columns("shop_id", "name", "price", "duration_minutes", "description").
		Values(service.ShopID, service.Name, service.Price, service.DurationMinutes, service.Description).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: CreateService - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&service.ID, &createdAt)
	if err != nil {
		return nil, fmt.Errorf("%w: CreateService - execute insert: %v", ErrExecQuery, err)
	}

	service.CreatedAt = createdAt.Time
	return service, nil
}

// ListServices returns all services offered by a shop.
func (r *Repository) ListServices(ctx context.Context, shopID int64) ([]*domain.Service, error) {
	return r.listServices(ctx, squirrel.Eq{"shop_id": shopID}, "ListServices")
}

// GetServicesByIDs resolves a set of service ids. Callers must check
// the returned count to detect unknown ids.
func (r *Repository) GetServicesByIDs(ctx context.Context, ids []int64) ([]*domain.Service, error) {
	if len(ids) == 0 {
		return []*domain.Service{}, nil
	}
	return r.listServices(ctx, squirrel.Eq{"id": ids}, "GetServicesByIDs")
}

func (r *Repository) listServices(ctx context.Context, where squirrel.Eq, method string) ([]*domain.Service, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(serviceColumns...).
		From("services").
		Where(where).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, method, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute query: %v", ErrExecQuery, method, err)
	}
	defer rows.Close()

	services := make([]*domain.Service, 0)
	for rows.Next() {
		var (
			service   domain.Service
			createdAt sql.NullTime
		)
		err := rows.Scan(
			&service.ID,
			&service.ShopID,
			&service.Name,
			&service.Price,
			&service.DurationMinutes,
			&service.Description,
			&createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: %s - scan row: %v", ErrScanRow, method, err)
		}
		service.CreatedAt = createdAt.Time
		services = append(services, &service)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows error: %v", ErrScanRow, method, err)
	}
	return services, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanShop(row rowScanner) (*domain.Shop, error) {
	var (
		shop                 domain.Shop
		createdAt, updatedAt sql.NullTime
	)
	err := row.Scan(
		&shop.ID,
		&shop.OwnerID,
		&shop.Name,
		&shop.Area,
		&shop.Address,
		&shop.Contact,
		&shop.Description,
		&shop.ImageRef,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}
	shop.CreatedAt = createdAt.Time
	shop.UpdatedAt = updatedAt.Time
	return &shop, nil
}
