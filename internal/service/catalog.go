package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/egonzalezhe/techflow/internal/cache"
	dom "github.com/egonzalezhe/techflow/internal/domain"
	"github.com/egonzalezhe/techflow/internal/dto"
	"github.com/egonzalezhe/techflow/internal/repo"

	"github.com/jackc/pgx/v5"
	"golang.org/x/sync/singleflight"
)

var (
	ErrNotFound   = errors.New("not found")
	ErrValidation = errors.New("invalid input")
)

// DefaultIcon is used when a new service is created without one.
const DefaultIcon = "🔧"

// CreateServiceInput carries raw form values for a new service. Price and
// stock arrive as strings and are coerced here, matching the form boundary.
type CreateServiceInput struct {
	Name        string
	Description string
	Price       string
	Stock       string
	Promotion   bool
	Icon        string
}

// CatalogService orchestrates catalog use cases over the repo.
type CatalogService struct {
	repo  repo.ServiceRepo
	cache *cache.CatalogCache
	sf    singleflight.Group
}

// NewCatalogService creates a CatalogService. If c is nil, caching is disabled.
func NewCatalogService(r repo.ServiceRepo, c *cache.CatalogCache) *CatalogService {
	return &CatalogService{repo: r, cache: c}
}

// List returns every service ordered by ascending id.
func (s *CatalogService) List(ctx context.Context) ([]dom.Service, error) {
	if s.cache != nil {
		v, err, _ := s.sf.Do("list", func() (interface{}, error) {
			if list, err := s.cache.GetList(ctx); err == nil && list != nil {
				return list, nil
			}
			list, err := s.repo.List(ctx)
			if err != nil {
				return nil, err
			}
			_ = s.cache.SetList(ctx, list)
			return list, nil
		})
		if err != nil {
			return nil, err
		}
		return v.([]dom.Service), nil
	}
	return s.repo.List(ctx)
}

// GetByID returns one service, or ErrNotFound.
func (s *CatalogService) GetByID(ctx context.Context, id int64) (dom.Service, error) {
	svc, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.Service{}, ErrNotFound
		}
		return dom.Service{}, err
	}
	return svc, nil
}

// Create validates and coerces the input, then inserts the service.
// Name is required; price and stock must coerce to non-negative numbers;
// promotion defaults to false and icon to DefaultIcon.
func (s *CatalogService) Create(ctx context.Context, in CreateServiceInput) (dom.Service, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return dom.Service{}, fmt.Errorf("%w: nombre is required", ErrValidation)
	}

	price, err := strconv.ParseFloat(strings.TrimSpace(in.Price), 64)
	if err != nil || price < 0 {
		return dom.Service{}, fmt.Errorf("%w: precio must be a non-negative number", ErrValidation)
	}
	stock, err := strconv.Atoi(strings.TrimSpace(in.Stock))
	if err != nil || stock < 0 {
		return dom.Service{}, fmt.Errorf("%w: stock must be a non-negative integer", ErrValidation)
	}

	icon := strings.TrimSpace(in.Icon)
	if icon == "" {
		icon = DefaultIcon
	}

	svc, err := s.repo.Create(ctx, dom.Service{
		Name:        name,
		Description: strings.TrimSpace(in.Description),
		Price:       price,
		Stock:       stock,
		OnPromotion: in.Promotion,
		Icon:        icon,
	})
	if err != nil {
		return dom.Service{}, err
	}
	s.invalidateCache(ctx)
	return svc, nil
}

// Delete removes a service. Deleting an absent id is a no-op, not an error.
func (s *CatalogService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidateCache(ctx)
	return nil
}

// Export maps every service to the wire records served by the JSON API.
func (s *CatalogService) Export(ctx context.Context) ([]dto.ServiceExport, error) {
	list, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ServiceExport, 0, len(list))
	for _, svc := range list {
		out = append(out, dto.ServiceExport{
			ID:          svc.ID,
			Name:        svc.Name,
			Description: svc.Description,
			Price:       svc.Price,
			Stock:       svc.Stock,
			Promotion:   svc.OnPromotion,
			Icon:        svc.Icon,
		})
	}
	return out, nil
}

func (s *CatalogService) invalidateCache(ctx context.Context) {
	if s.cache != nil {
		_ = s.cache.Invalidate(ctx)
	}
}
