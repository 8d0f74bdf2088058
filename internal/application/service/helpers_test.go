package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/structurachem/scpl-api/internal/domain/entity"
	"github.com/structurachem/scpl-api/internal/domain/enum"
	"github.com/structurachem/scpl-api/internal/domain/repository"
	"github.com/structurachem/scpl-api/internal/domain/workflow"
	"github.com/structurachem/scpl-api/internal/infrastructure/database"
	infraRepo "github.com/structurachem/scpl-api/internal/infrastructure/repository"
	"github.com/structurachem/scpl-api/pkg/pagination"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var (
	adminActor = Actor{ID: uuid.New(), Name: "Asim Raza", Role: enum.UserRoleAdmin}
	salesActor = Actor{ID: uuid.New(), Name: "Bilal Khan", Role: enum.UserRoleSales}
)

type testEnv struct {
	db         *gorm.DB
	settings   *SettingsService
	customers  *CustomerService
	products   *ProductService
	quotations *QuotationService
	invoices   *InvoiceService
	users      *UserService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// In-memory sqlite lives per connection; keep the pool at one.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.AutoMigrate(db))

	settingsService := NewSettingsService(infraRepo.NewSettingsRepository(db))
	customerRepo := infraRepo.NewCustomerRepository(db)
	productRepo := infraRepo.NewProductRepository(db)
	quotationRepo := infraRepo.NewQuotationRepository(db)
	invoiceRepo := infraRepo.NewInvoiceRepository(db)

	return &testEnv{
		db:         db,
		settings:   settingsService,
		customers:  NewCustomerService(customerRepo),
		products:   NewProductService(productRepo),
		quotations: NewQuotationService(quotationRepo, customerRepo, productRepo, settingsService),
		invoices:   NewInvoiceService(invoiceRepo, quotationRepo, customerRepo, settingsService),
		users:      NewUserService(infraRepo.NewUserRepository(db), settingsService),
	}
}

func (env *testEnv) seedCustomer(t *testing.T, name string) *entity.Customer {
	t.Helper()

	customer, err := env.customers.CreateCustomer(context.Background(), &CustomerInput{
		Name:           name,
		Location:       "Karachi",
		ContactPerson:  "Site Manager",
		CustomerType:   enum.CustomerTypeCorporate,
		InterestType:   enum.InterestTypeSales,
		MessageConsent: true,
	})
	require.NoError(t, err)
	return customer
}

func (env *testEnv) seedProduct(t *testing.T, name string, price float64) *entity.Product {
	t.Helper()

	product, err := env.products.CreateProduct(context.Background(), &ProductInput{
		Name:      name,
		Category:  "Admixture",
		UOM:       "Litres",
		Packaging: "20L drum",
		BasePrice: price,
	})
	require.NoError(t, err)
	return product
}

// seedSubmittedQuotation walks a fresh draft through submission and
// returns it archived.
func (env *testEnv) seedSubmittedQuotation(t *testing.T, customerID uuid.UUID, taxType enum.TaxType) *entity.Quotation {
	t.Helper()
	ctx := context.Background()

	buyerNTN := "9876543-2"
	if taxType == enum.TaxTypeCash {
		buyerNTN = ""
	}

	draft, err := env.quotations.CreateDraft(ctx, adminActor, &QuotationInput{
		Type:       enum.QuotationTypeSales,
		CustomerID: &customerID,
		BuyerNTN:   buyerNTN,
		Subject:    "Supply of concrete admixture",
		TaxType:    taxType,
		LineItems: []LineItemInput{
			{Name: "StructuraFlow 200", UOM: "Litres", Quantity: 10, UnitPrice: 100},
			{Name: "StructuraCure 50", UOM: "Litres", Quantity: 5, UnitPrice: 50},
		},
	})
	require.NoError(t, err)

	submitted, err := env.quotations.Submit(ctx, adminActor, draft.ID)
	require.NoError(t, err)
	return submitted
}

// advanceToJobCompleted drives a submitted quotation to Job Completed.
func (env *testEnv) advanceToJobCompleted(t *testing.T, id uuid.UUID) *entity.Quotation {
	t.Helper()
	ctx := context.Background()

	var quotation *entity.Quotation
	var err error
	events := []workflow.Event{
		workflow.EventAccept,
		workflow.EventGrantPO,
		workflow.EventStartJob,
		workflow.EventCompleteJob,
	}
	for _, event := range events {
		quotation, err = env.quotations.ApplyEvent(ctx, adminActor, id, &ApplyEventInput{Event: event})
		require.NoError(t, err, "event %s", event)
	}
	return quotation
}

func listAllProducts() *repository.ProductFilterParams {
	return &repository.ProductFilterParams{
		Pagination: &pagination.PaginationParams{Page: 1, PerPage: 100},
	}
}
