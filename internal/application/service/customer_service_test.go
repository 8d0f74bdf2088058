package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/structurachem/scpl-api/internal/domain/enum"
	"github.com/structurachem/scpl-api/internal/domain/repository"
	"github.com/structurachem/scpl-api/pkg/pagination"
)

func TestCreateCustomerRequiresName(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.customers.CreateCustomer(context.Background(), &CustomerInput{
		Name: "   ",
	})
	assert.Error(t, err)
}

func TestUpdateCustomerReplacesRecord(t *testing.T) {
	env := newTestEnv(t)
	customer := env.seedCustomer(t, "Acme Builders")

	email := "procurement@acme.example"
	updated, err := env.customers.UpdateCustomer(context.Background(), customer.ID, &CustomerInput{
		Name:           customer.Name,
		Location:       "Hyderabad",
		Phone:          customer.Phone,
		ContactPerson:  "Saira Ahmed",
		Email:          &email,
		CustomerType:   enum.CustomerTypeCommercial,
		InterestType:   enum.InterestTypeServices,
		MessageConsent: false,
	})
	require.NoError(t, err)
	assert.Equal(t, "Hyderabad", updated.Location)
	assert.Equal(t, "Saira Ahmed", updated.ContactPerson)
	assert.Equal(t, enum.CustomerTypeCommercial, updated.CustomerType)
	assert.False(t, updated.MessageConsent)
}

func TestAddVisitAppendsToHistory(t *testing.T) {
	env := newTestEnv(t)
	customer := env.seedCustomer(t, "Acme Builders")

	minutes := "Discussed admixture trials for the new tower project."
	visit, err := env.customers.AddVisit(context.Background(), salesActor, customer.ID, &VisitInput{
		Latitude:       24.8607,
		Longitude:      67.0011,
		Notes:          "Site walkthrough with the project engineer.",
		MeetingMinutes: &minutes,
	})
	require.NoError(t, err)
	assert.Equal(t, salesActor.Name, visit.UserName)

	_, err = env.customers.AddVisit(context.Background(), adminActor, customer.ID, &VisitInput{
		Latitude:  24.8615,
		Longitude: 67.0099,
		Notes:     "Follow-up on pending quotation.",
	})
	require.NoError(t, err)

	loaded, err := env.customers.GetCustomer(context.Background(), customer.ID)
	require.NoError(t, err)
	require.Len(t, loaded.Visits, 2)
	// Visits come back newest first.
	assert.Equal(t, adminActor.Name, loaded.Visits[0].UserName)
	assert.Equal(t, salesActor.Name, loaded.Visits[1].UserName)
}

func TestListCustomersFiltersByType(t *testing.T) {
	env := newTestEnv(t)
	env.seedCustomer(t, "Acme Builders")

	_, err := env.customers.CreateCustomer(context.Background(), &CustomerInput{
		Name:         "Horizon Towers",
		Location:     "Lahore",
		CustomerType: enum.CustomerTypeMegaCorporate,
		InterestType: enum.InterestTypeServices,
	})
	require.NoError(t, err)

	mega := enum.CustomerTypeMegaCorporate
	result, err := env.customers.ListCustomers(context.Background(), &repository.CustomerFilterParams{
		Pagination:   &pagination.PaginationParams{Page: 1, PerPage: 20},
		CustomerType: &mega,
	})
	require.NoError(t, err)
	require.Len(t, result.Items, 1)
	assert.Equal(t, "Horizon Towers", result.Items[0].Name)
}
