package normalize

import (
	"fmt"

	"invex/internal/domain"
)

// Validate checks a normalized bag for required fields and zero-value
// anomalies, returning human-readable warnings with 1-indexed positions.
// Warnings never block the pipeline. A genuinely missing currency field is
// not flagged; only an explicit zero is.
func Validate(bag *domain.RecordBag) []string {
	var warnings []string

	for i, inv := range bag.Invoices {
		if inv.SerialNumber == "" {
			warnings = append(warnings, fmt.Sprintf("Invoice %d is missing serial number", i+1))
		}
		if inv.TotalAmount != nil && *inv.TotalAmount == 0 {
			warnings = append(warnings, fmt.Sprintf("Invoice %d has zero total amount", i+1))
		}
	}

	for i, p := range bag.Products {
		if p.Name == "" {
			warnings = append(warnings, fmt.Sprintf("Product %d is missing name", i+1))
		}
		if p.UnitPrice != nil && *p.UnitPrice == 0 {
			warnings = append(warnings, fmt.Sprintf("Product %d has zero unit price", i+1))
		}
	}

	return warnings
}
