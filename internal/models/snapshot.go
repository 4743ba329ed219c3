package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DocumentType distinguishes the two document kinds the engine renders.
type DocumentType string

const (
	DocumentTypeInvoice DocumentType = "Invoice"
	DocumentTypeQuote   DocumentType = "Quote"
)

// LineItemSnapshot is one billable line captured at generation time.
// The line total is never stored; it is always recomputed from quantity
// and unit price so a stale total can never leak into the document.
type LineItemSnapshot struct {
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
}

// Total returns quantity × unit price rounded once to two decimals.
func (li LineItemSnapshot) Total() decimal.Decimal {
	return li.Quantity.Mul(li.UnitPrice).Round(2)
}

// InvoiceSnapshot is the immutable input of one document generation event.
// It is constructed from already-validated domain data immediately before
// rendering and discarded afterwards; the renderer never mutates it.
type InvoiceSnapshot struct {
	ID           uuid.UUID    `json:"id"`
	DocumentType DocumentType `json:"document_type"`
	Number       string       `json:"number"`

	CustomerName    string `json:"customer_name"`
	CustomerAddress string `json:"customer_address"`
	CustomerEmail   string `json:"customer_email"`

	BusinessName           string `json:"business_name"`
	BusinessRegistrationID string `json:"business_registration_id"`
	BusinessEmail          string `json:"business_email"`
	BusinessPhone          string `json:"business_phone"`
	BusinessAddress        string `json:"business_address"`

	IssueDate time.Time `json:"issue_date"`
	DueDate   time.Time `json:"due_date"`

	Items []LineItemSnapshot `json:"items"`

	Subtotal  decimal.Decimal `json:"subtotal"`
	Discount  decimal.Decimal `json:"discount"`
	TaxRate   decimal.Decimal `json:"tax_rate"`
	TaxAmount decimal.Decimal `json:"tax_amount"`
	Total     decimal.Decimal `json:"total"`

	CurrencyCode string   `json:"currency_code"`
	LogoRef      string   `json:"logo_ref,omitempty"`
	PhotoRefs    []string `json:"photo_refs,omitempty"`
	Notes        string   `json:"notes,omitempty"`
}

// Validate checks the monetary invariants of the snapshot:
// subtotal equals the sum of recomputed line totals and
// total equals subtotal - discount + tax amount.
func (s *InvoiceSnapshot) Validate() error {
	if s.DocumentType != DocumentTypeInvoice && s.DocumentType != DocumentTypeQuote {
		return fmt.Errorf("document type must be %q or %q", DocumentTypeInvoice, DocumentTypeQuote)
	}
	if s.Number == "" {
		return fmt.Errorf("document number is required")
	}
	if s.CustomerName == "" {
		return fmt.Errorf("customer name is required")
	}

	sum := decimal.Zero
	for i, item := range s.Items {
		if item.Quantity.IsNegative() {
			return fmt.Errorf("item %d: quantity cannot be negative", i)
		}
		if item.UnitPrice.IsNegative() {
			return fmt.Errorf("item %d: unit price cannot be negative", i)
		}
		sum = sum.Add(item.Total())
	}
	if !s.Subtotal.Equal(sum) {
		return fmt.Errorf("subtotal %s does not match sum of line totals %s", s.Subtotal, sum)
	}
	if s.Discount.IsNegative() {
		return fmt.Errorf("discount cannot be negative")
	}
	expected := s.Subtotal.Sub(s.Discount).Add(s.TaxAmount)
	if !s.Total.Equal(expected) {
		return fmt.Errorf("total %s does not match subtotal - discount + tax = %s", s.Total, expected)
	}
	return nil
}
