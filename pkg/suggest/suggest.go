// Package suggest wraps an optional external text-generation endpoint
// that drafts narrative sections of a services proposal. The feature is
// advisory: every failure path returns canned fallback text instead of
// an error, so document editing never blocks on the endpoint.
package suggest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// Field identifies which narrative section a suggestion is for.
type Field string

const (
	FieldScopeOfWork             Field = "scope_of_work"
	FieldTechnicalData           Field = "technical_data"
	FieldClientResponsibilities  Field = "client_responsibilities"
	FieldCompanyResponsibilities Field = "company_responsibilities"
)

// Fallback returns the canned text served when no endpoint is configured
// or the call fails.
func Fallback(field Field) string {
	switch field {
	case FieldScopeOfWork:
		return "Supply and application of specified chemical products as per site requirements. Detailed scope to be confirmed after site survey."
	case FieldTechnicalData:
		return "Product technical data sheets available on request. Application to follow manufacturer guidelines."
	case FieldClientResponsibilities:
		return "Client to provide site access, water, electricity and secure storage for materials during the execution period."
	case FieldCompanyResponsibilities:
		return "Company to supply all specified materials, skilled applicators and supervision until handover."
	default:
		return "Error generating AI suggestion."
	}
}

// Input carries the document context a suggestion is drafted from.
type Input struct {
	Subject      string
	CustomerName string
	Products     []string
}

// Suggester drafts text for a proposal section.
type Suggester interface {
	Suggest(ctx context.Context, field Field, input Input) string
}

// NullSuggester serves fallbacks only, for deployments without an
// endpoint.
type NullSuggester struct{}

func (NullSuggester) Suggest(_ context.Context, field Field, _ Input) string {
	return Fallback(field)
}

// HTTPSuggester calls a JSON completion endpoint.
type HTTPSuggester struct {
	endpoint string
	apiKey   string
	client   *http.Client
}

// NewHTTPSuggester creates a suggester backed by the given endpoint.
func NewHTTPSuggester(endpoint, apiKey string, timeout time.Duration) *HTTPSuggester {
	return &HTTPSuggester{
		endpoint: endpoint,
		apiKey:   apiKey,
		client:   &http.Client{Timeout: timeout},
	}
}

// New returns an HTTP suggester when an endpoint is configured and the
// null suggester otherwise.
func New(endpoint, apiKey string, timeout time.Duration) Suggester {
	if endpoint == "" {
		return NullSuggester{}
	}
	return NewHTTPSuggester(endpoint, apiKey, timeout)
}

type suggestRequest struct {
	Prompt string `json:"prompt"`
}

type suggestResponse struct {
	Text string `json:"text"`
}

// Suggest drafts text for the given field, falling back to canned text
// on any transport, status or decode failure.
func (s *HTTPSuggester) Suggest(ctx context.Context, field Field, input Input) string {
	payload, err := json.Marshal(suggestRequest{Prompt: buildPrompt(field, input)})
	if err != nil {
		return Fallback(field)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(payload))
	if err != nil {
		return Fallback(field)
	}
	req.Header.Set("Content-Type", "application/json")
	if s.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+s.apiKey)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return Fallback(field)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Fallback(field)
	}

	var out suggestResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil || strings.TrimSpace(out.Text) == "" {
		return Fallback(field)
	}
	return out.Text
}

func buildPrompt(field Field, input Input) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Draft the %s section of a chemical-works services proposal.", strings.ReplaceAll(string(field), "_", " "))
	if input.Subject != "" {
		fmt.Fprintf(&b, " Subject: %s.", input.Subject)
	}
	if input.CustomerName != "" {
		fmt.Fprintf(&b, " Client: %s.", input.CustomerName)
	}
	if len(input.Products) > 0 {
		fmt.Fprintf(&b, " Products involved: %s.", strings.Join(input.Products, ", "))
	}
	b.WriteString(" Keep it concise and professional.")
	return b.String()
}
