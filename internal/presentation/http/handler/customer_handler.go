package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/structurachem/scpl-api/internal/application/service"
	"github.com/structurachem/scpl-api/internal/domain/enum"
	"github.com/structurachem/scpl-api/internal/domain/repository"
	"github.com/structurachem/scpl-api/internal/presentation/http/dto/response"
	"github.com/structurachem/scpl-api/pkg/pagination"
)

// CustomerHandler handles customer-related HTTP requests
type CustomerHandler struct {
	customerService *service.CustomerService
}

// NewCustomerHandler creates a new customer handler
func NewCustomerHandler(customerService *service.CustomerService) *CustomerHandler {
	return &CustomerHandler{customerService: customerService}
}

type customerRequest struct {
	Name           string            `json:"name" binding:"required"`
	Location       string            `json:"location"`
	Address        *string           `json:"address"`
	Phone          string            `json:"phone"`
	ContactPerson  string            `json:"contact_person"`
	Designation    *string           `json:"designation"`
	Email          *string           `json:"email"`
	AlternatePhone *string           `json:"alternate_phone"`
	CustomerType   enum.CustomerType `json:"customer_type"`
	InterestType   enum.InterestType `json:"interest_type"`
	MessageConsent bool              `json:"message_consent"`
}

func (r *customerRequest) toInput() *service.CustomerInput {
	return &service.CustomerInput{
		Name:           r.Name,
		Location:       r.Location,
		Address:        r.Address,
		Phone:          r.Phone,
		ContactPerson:  r.ContactPerson,
		Designation:    r.Designation,
		Email:          r.Email,
		AlternatePhone: r.AlternatePhone,
		CustomerType:   r.CustomerType,
		InterestType:   r.InterestType,
		MessageConsent: r.MessageConsent,
	}
}

// Create handles creating a customer
func (h *CustomerHandler) Create(c *gin.Context) {
	var req customerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	customer, err := h.customerService.CreateCustomer(c.Request.Context(), req.toInput())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Customer created successfully", customer)
}

// Get handles retrieving a customer with its visit history
func (h *CustomerHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid customer ID")
		return
	}

	customer, err := h.customerService.GetCustomer(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Customer retrieved successfully", customer)
}

// Update handles updating a customer
func (h *CustomerHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid customer ID")
		return
	}

	var req customerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	customer, err := h.customerService.UpdateCustomer(c.Request.Context(), id, req.toInput())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Customer updated successfully", customer)
}

// List handles listing customers
func (h *CustomerHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "15"))

	params := &repository.CustomerFilterParams{
		Pagination: &pagination.PaginationParams{Page: page, PerPage: perPage},
		Search:     c.Query("search"),
	}

	var customerType enum.CustomerType
	if bindEnumQuery(c.Query("customer_type"), &customerType) {
		params.CustomerType = &customerType
	}
	var interestType enum.InterestType
	if bindEnumQuery(c.Query("interest_type"), &interestType) {
		params.InterestType = &interestType
	}

	result, err := h.customerService.ListCustomers(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Customers retrieved successfully", result)
}

// AddVisit handles appending a visit log entry to a customer
func (h *CustomerHandler) AddVisit(c *gin.Context) {
	actor, ok := GetActor(c)
	if !ok {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid customer ID")
		return
	}

	var req struct {
		Latitude       float64 `json:"latitude"`
		Longitude      float64 `json:"longitude"`
		Notes          string  `json:"notes"`
		MeetingMinutes *string `json:"meeting_minutes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	visit, err := h.customerService.AddVisit(c.Request.Context(), actor, id, &service.VisitInput{
		Latitude:       req.Latitude,
		Longitude:      req.Longitude,
		Notes:          req.Notes,
		MeetingMinutes: req.MeetingMinutes,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Visit logged successfully", visit)
}
