package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/structurachem/scpl-api/internal/domain/entity"
	"github.com/structurachem/scpl-api/internal/domain/enum"
	"github.com/structurachem/scpl-api/internal/domain/repository"
	"github.com/structurachem/scpl-api/pkg/apperror"
	"github.com/structurachem/scpl-api/pkg/pagination"
)

// CustomerService handles customer-related operations
type CustomerService struct {
	customerRepo repository.CustomerRepository
}

// NewCustomerService creates a new customer service
func NewCustomerService(customerRepo repository.CustomerRepository) *CustomerService {
	return &CustomerService{customerRepo: customerRepo}
}

// CustomerInput represents the customer fields for create and update.
// Updates replace the whole record; visit logs are appended separately.
type CustomerInput struct {
	Name           string
	Location       string
	Address        *string
	Phone          string
	ContactPerson  string
	Designation    *string
	Email          *string
	AlternatePhone *string
	CustomerType   enum.CustomerType
	InterestType   enum.InterestType
	MessageConsent bool
}

func (in *CustomerInput) validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return apperror.NewBadRequestError("customer name is required")
	}
	return nil
}

// CreateCustomer creates a new customer
func (s *CustomerService) CreateCustomer(ctx context.Context, input *CustomerInput) (*entity.Customer, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	customer := &entity.Customer{
		Name:           input.Name,
		Location:       input.Location,
		Address:        input.Address,
		Phone:          input.Phone,
		ContactPerson:  input.ContactPerson,
		Designation:    input.Designation,
		Email:          input.Email,
		AlternatePhone: input.AlternatePhone,
		CustomerType:   input.CustomerType,
		InterestType:   input.InterestType,
		MessageConsent: input.MessageConsent,
	}

	if err := s.customerRepo.Create(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

// GetCustomer retrieves a customer with its visit history
func (s *CustomerService) GetCustomer(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	customer, err := s.customerRepo.GetWithVisits(ctx, id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}
	return customer, nil
}

// UpdateCustomer replaces a customer record. There is no delete:
// customers referenced by archived documents must stay resolvable.
func (s *CustomerService) UpdateCustomer(ctx context.Context, id uuid.UUID, input *CustomerInput) (*entity.Customer, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}

	customer.Name = input.Name
	customer.Location = input.Location
	customer.Address = input.Address
	customer.Phone = input.Phone
	customer.ContactPerson = input.ContactPerson
	customer.Designation = input.Designation
	customer.Email = input.Email
	customer.AlternatePhone = input.AlternatePhone
	customer.CustomerType = input.CustomerType
	customer.InterestType = input.InterestType
	customer.MessageConsent = input.MessageConsent

	if err := s.customerRepo.Update(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

// ListCustomers lists customers with filtering and pagination
func (s *CustomerService) ListCustomers(ctx context.Context, params *repository.CustomerFilterParams) (*pagination.PaginatedResult[entity.Customer], error) {
	customers, total, err := s.customerRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(customers, pag), nil
}

// VisitInput represents a field-visit log entry
type VisitInput struct {
	Latitude       float64
	Longitude      float64
	Notes          string
	MeetingMinutes *string
}

// AddVisit appends a visit log entry to a customer's history. The trail
// is append-only; entries are never edited or removed.
func (s *CustomerService) AddVisit(ctx context.Context, actor Actor, customerID uuid.UUID, input *VisitInput) (*entity.VisitLog, error) {
	customer, err := s.customerRepo.GetByID(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}

	visit := &entity.VisitLog{
		CustomerID:     customerID,
		UserName:       actor.Name,
		Latitude:       input.Latitude,
		Longitude:      input.Longitude,
		Notes:          input.Notes,
		MeetingMinutes: input.MeetingMinutes,
	}

	if err := s.customerRepo.AppendVisit(ctx, visit); err != nil {
		return nil, err
	}
	return visit, nil
}
