package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/structurachem/scpl-api/internal/application/service"
	"github.com/structurachem/scpl-api/internal/domain/entity"
	"github.com/structurachem/scpl-api/internal/domain/enum"
	"github.com/structurachem/scpl-api/internal/domain/repository"
	"github.com/structurachem/scpl-api/internal/domain/workflow"
	"github.com/structurachem/scpl-api/internal/presentation/http/dto/response"
	"github.com/structurachem/scpl-api/pkg/pagination"
)

// QuotationHandler handles quotation HTTP requests
type QuotationHandler struct {
	quotationService *service.QuotationService
	documentService  *service.DocumentService
}

// NewQuotationHandler creates a new quotation handler
func NewQuotationHandler(quotationService *service.QuotationService, documentService *service.DocumentService) *QuotationHandler {
	return &QuotationHandler{
		quotationService: quotationService,
		documentService:  documentService,
	}
}

type lineItemRequest struct {
	ID        *uuid.UUID `json:"id"`
	ProductID *uuid.UUID `json:"product_id"`
	Name      string     `json:"name"`
	UOM       string     `json:"uom"`
	Quantity  float64    `json:"quantity"`
	UnitPrice float64    `json:"unit_price"`
}

type quotationRequest struct {
	Type                    enum.QuotationType `json:"type"`
	CustomerID              *uuid.UUID         `json:"customer_id"`
	BuyerNTN                string             `json:"buyer_ntn"`
	PONumber                *string            `json:"po_number"`
	Subject                 string             `json:"subject"`
	CommercialOffer         string             `json:"commercial_offer"`
	Terms                   string             `json:"terms"`
	ScopeOfWork             *string            `json:"scope_of_work"`
	TechnicalData           *string            `json:"technical_data"`
	ClientResponsibilities  *string            `json:"client_responsibilities"`
	CompanyResponsibilities *string            `json:"company_responsibilities"`
	TaxType                 enum.TaxType       `json:"tax_type"`
	TechnicalSignature      *entity.Signature  `json:"technical_signature"`
	CommercialSignature     *entity.Signature  `json:"commercial_signature"`
	LineItems               []lineItemRequest  `json:"line_items"`
}

func (r *quotationRequest) toInput() *service.QuotationInput {
	items := make([]service.LineItemInput, 0, len(r.LineItems))
	for _, item := range r.LineItems {
		items = append(items, service.LineItemInput{
			ID:        item.ID,
			ProductID: item.ProductID,
			Name:      item.Name,
			UOM:       item.UOM,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		})
	}

	return &service.QuotationInput{
		Type:                    r.Type,
		CustomerID:              r.CustomerID,
		BuyerNTN:                r.BuyerNTN,
		PONumber:                r.PONumber,
		Subject:                 r.Subject,
		CommercialOffer:         r.CommercialOffer,
		Terms:                   r.Terms,
		ScopeOfWork:             r.ScopeOfWork,
		TechnicalData:           r.TechnicalData,
		ClientResponsibilities:  r.ClientResponsibilities,
		CompanyResponsibilities: r.CompanyResponsibilities,
		TaxType:                 r.TaxType,
		TechnicalSignature:      r.TechnicalSignature,
		CommercialSignature:     r.CommercialSignature,
		LineItems:               items,
	}
}

// Create handles creating a draft quotation
func (h *QuotationHandler) Create(c *gin.Context) {
	actor, ok := GetActor(c)
	if !ok {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req quotationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	quotation, err := h.quotationService.CreateDraft(c.Request.Context(), actor, req.toInput())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Quotation created successfully", quotation)
}

// Get handles retrieving a quotation
func (h *QuotationHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid quotation ID")
		return
	}

	quotation, err := h.quotationService.GetQuotation(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Quotation retrieved successfully", quotation)
}

// Update handles updating a quotation
func (h *QuotationHandler) Update(c *gin.Context) {
	actor, ok := GetActor(c)
	if !ok {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid quotation ID")
		return
	}

	var req quotationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	quotation, err := h.quotationService.UpdateDraft(c.Request.Context(), actor, id, req.toInput())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Quotation updated successfully", quotation)
}

// List handles listing quotations
func (h *QuotationHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "15"))

	params := &repository.QuotationFilterParams{
		Pagination: &pagination.PaginationParams{Page: page, PerPage: perPage},
		Search:     c.Query("search"),
	}

	var status enum.WorkflowStatus
	if bindEnumQuery(c.Query("status"), &status) {
		params.Status = &status
	}
	var qType enum.QuotationType
	if bindEnumQuery(c.Query("type"), &qType) {
		params.Type = &qType
	}
	if customerID, err := uuid.Parse(c.Query("customer_id")); err == nil {
		params.CustomerID = &customerID
	}

	result, err := h.quotationService.ListQuotations(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Quotations retrieved successfully", result)
}

// Submit handles finalizing a quotation
func (h *QuotationHandler) Submit(c *gin.Context) {
	actor, ok := GetActor(c)
	if !ok {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid quotation ID")
		return
	}

	quotation, err := h.quotationService.Submit(c.Request.Context(), actor, id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Quotation submitted successfully", quotation)
}

// Unlock handles reverting an archived quotation to draft
func (h *QuotationHandler) Unlock(c *gin.Context) {
	actor, ok := GetActor(c)
	if !ok {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid quotation ID")
		return
	}

	quotation, err := h.quotationService.Unlock(c.Request.Context(), actor, id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Quotation unlocked successfully", quotation)
}

// UpdateStatus handles workflow transitions requested by target status
func (h *QuotationHandler) UpdateStatus(c *gin.Context) {
	actor, ok := GetActor(c)
	if !ok {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid quotation ID")
		return
	}

	var req struct {
		Status   enum.WorkflowStatus `json:"status"`
		Remarks  *string             `json:"remarks"`
		PONumber *string             `json:"po_number"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	event, err := workflow.EventForStatus(req.Status)
	if err != nil {
		response.Error(c, err)
		return
	}

	// Submission and unlocking carry extra side effects and route to
	// their dedicated operations.
	var quotation *entity.Quotation
	switch event {
	case workflow.EventSubmit:
		quotation, err = h.quotationService.Submit(c.Request.Context(), actor, id)
	case workflow.EventUnlock:
		quotation, err = h.quotationService.Unlock(c.Request.Context(), actor, id)
	default:
		quotation, err = h.quotationService.ApplyEvent(c.Request.Context(), actor, id, &service.ApplyEventInput{
			Event:    event,
			Remarks:  req.Remarks,
			PONumber: req.PONumber,
		})
	}
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Quotation status updated successfully", quotation)
}

// Document handles rendering the printable form of a quotation
func (h *QuotationHandler) Document(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid quotation ID")
		return
	}

	doc, err := h.documentService.RenderQuotation(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Data(200, "text/plain; charset=utf-8", []byte(doc))
}

// Dispatch handles emailing a quotation to its customer
func (h *QuotationHandler) Dispatch(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid quotation ID")
		return
	}

	if err := h.documentService.EmailQuotation(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Quotation dispatched successfully", nil)
}
