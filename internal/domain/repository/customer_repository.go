package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/structurachem/scpl-api/internal/domain/entity"
	"github.com/structurachem/scpl-api/internal/domain/enum"
	"github.com/structurachem/scpl-api/pkg/pagination"
)

// CustomerRepository defines the interface for customer data operations.
// There is deliberately no Delete: customer records are never removed.
type CustomerRepository interface {
	Create(ctx context.Context, customer *entity.Customer) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error)
	GetWithVisits(ctx context.Context, id uuid.UUID) (*entity.Customer, error)
	Update(ctx context.Context, customer *entity.Customer) error
	List(ctx context.Context, params *CustomerFilterParams) ([]entity.Customer, int64, error)
	AppendVisit(ctx context.Context, visit *entity.VisitLog) error
}

// CustomerFilterParams contains filtering parameters for customer queries
type CustomerFilterParams struct {
	Pagination   *pagination.PaginationParams
	Search       string
	CustomerType *enum.CustomerType
	InterestType *enum.InterestType
}
