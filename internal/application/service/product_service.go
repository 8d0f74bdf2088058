package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/structurachem/scpl-api/internal/domain/entity"
	"github.com/structurachem/scpl-api/internal/domain/repository"
	"github.com/structurachem/scpl-api/pkg/apperror"
	"github.com/structurachem/scpl-api/pkg/pagination"
)

// ProductService handles catalog operations
type ProductService struct {
	productRepo repository.ProductRepository
}

// NewProductService creates a new product service
func NewProductService(productRepo repository.ProductRepository) *ProductService {
	return &ProductService{productRepo: productRepo}
}

// ProductInput represents the product fields for create and update
type ProductInput struct {
	Name        string
	Category    string
	UOM         string
	Packaging   string
	BasePrice   float64
	Description *string
}

// CreateProduct creates a new catalog product
func (s *ProductService) CreateProduct(ctx context.Context, input *ProductInput) (*entity.Product, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, apperror.NewBadRequestError("product name is required")
	}
	if input.BasePrice < 0 {
		return nil, apperror.NewBadRequestError("base price cannot be negative")
	}

	product := &entity.Product{
		Name:        strings.TrimSpace(input.Name),
		Category:    input.Category,
		UOM:         input.UOM,
		Packaging:   input.Packaging,
		BasePrice:   input.BasePrice,
		Description: input.Description,
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// GetProduct retrieves a product by ID
func (s *ProductService) GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}
	return product, nil
}

// UpdateProduct replaces a product record. Price changes affect only
// future line items; existing ones keep the price that was captured.
func (s *ProductService) UpdateProduct(ctx context.Context, id uuid.UUID, input *ProductInput) (*entity.Product, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, apperror.NewBadRequestError("product name is required")
	}
	if input.BasePrice < 0 {
		return nil, apperror.NewBadRequestError("base price cannot be negative")
	}

	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}

	product.Name = strings.TrimSpace(input.Name)
	product.Category = input.Category
	product.UOM = input.UOM
	product.Packaging = input.Packaging
	product.BasePrice = input.BasePrice
	product.Description = input.Description

	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// DeleteProduct removes a product from the catalog. Line items keep
// their captured name and price, so archived documents are unaffected.
func (s *ProductService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if product == nil {
		return apperror.NewNotFoundError("Product")
	}
	return s.productRepo.Delete(ctx, id)
}

// ListProducts lists products with filtering and pagination
func (s *ProductService) ListProducts(ctx context.Context, params *repository.ProductFilterParams) (*pagination.PaginatedResult[entity.Product], error) {
	products, total, err := s.productRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(products, pag), nil
}

// ImportRow is one row of a bulk catalog import
type ImportRow struct {
	Name      string
	Category  string
	UOM       string
	Packaging string
	BasePrice float64
}

// ImportResult summarizes a bulk import
type ImportResult struct {
	Added   int `json:"added"`
	Updated int `json:"updated"`
	Skipped int `json:"skipped"`
}

// BulkUpsert merges imported rows into the catalog. Identity is the
// normalized product name: an existing match is updated in place, a miss
// becomes a new product with defaults for any blank field. Rows without
// a name are skipped rather than failing the batch.
func (s *ProductService) BulkUpsert(ctx context.Context, rows []ImportRow) (*ImportResult, error) {
	result := &ImportResult{}

	for _, row := range rows {
		name := strings.TrimSpace(row.Name)
		if name == "" {
			result.Skipped++
			continue
		}

		existing, err := s.productRepo.GetByNormalizedName(ctx, name)
		if err != nil {
			return nil, err
		}

		if existing != nil {
			if row.Category != "" {
				existing.Category = row.Category
			}
			if row.UOM != "" {
				existing.UOM = row.UOM
			}
			if row.Packaging != "" {
				existing.Packaging = row.Packaging
			}
			existing.BasePrice = row.BasePrice
			if err := s.productRepo.Update(ctx, existing); err != nil {
				return nil, err
			}
			result.Updated++
			continue
		}

		product := &entity.Product{
			Name:      name,
			Category:  orDefault(row.Category, "General"),
			UOM:       orDefault(row.UOM, "Units"),
			Packaging: orDefault(row.Packaging, "Standard"),
			BasePrice: row.BasePrice,
		}
		if err := s.productRepo.Create(ctx, product); err != nil {
			return nil, err
		}
		result.Added++
	}

	return result, nil
}

func orDefault(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}
