package repository

import (
	"context"

	"github.com/structurachem/scpl-api/internal/domain/enum"
)

// AnalyticsRepository defines read-only aggregate queries for the dashboard
type AnalyticsRepository interface {
	CountEntities(ctx context.Context) (*EntityCounts, error)
	QuotationPipeline(ctx context.Context) ([]PipelineBucket, error)
	Receivables(ctx context.Context) ([]ReceivableBucket, error)
}

// EntityCounts holds the headline record counts
type EntityCounts struct {
	Customers  int64 `json:"customers"`
	Products   int64 `json:"products"`
	Quotations int64 `json:"quotations"`
	Invoices   int64 `json:"invoices"`
}

// PipelineBucket is one quotation-status slice of the pipeline
type PipelineBucket struct {
	Status     enum.WorkflowStatus `json:"status"`
	Count      int64               `json:"count"`
	GrandTotal float64             `json:"grand_total"`
}

// ReceivableBucket is one invoice-status slice of outstanding value
type ReceivableBucket struct {
	Status     enum.InvoiceStatus `json:"status"`
	Count      int64              `json:"count"`
	GrandTotal float64            `json:"grand_total"`
}
