// Package linker assigns surrogate identifiers to normalized records and
// resolves invoice references to products and customers by exact name.
package linker

import (
	"github.com/google/uuid"

	"invex/internal/domain"
)

// Reference describes an invoice reference that matched no record.
type Reference struct {
	InvoiceIndex int    `json:"invoice_index"`
	Kind         string `json:"kind"` // "product" or "customer"
	Name         string `json:"name"`
}

// Result reports the outcome of a linking pass.
type Result struct {
	Unmatched []Reference
}

// Link assigns a uuid to every record that lacks one, then resolves each
// invoice's ProductID and CustomerID by exact name match. When several
// records share a name the first one wins. Unresolved references are
// reported, not errors.
func Link(bag *domain.RecordBag) Result {
	productIDs := map[string]string{}
	for i := range bag.Products {
		p := &bag.Products[i]
		if p.ID == "" {
			p.ID = uuid.New().String()
		}
		if _, seen := productIDs[p.Name]; !seen {
			productIDs[p.Name] = p.ID
		}
	}

	customerIDs := map[string]string{}
	for i := range bag.Customers {
		c := &bag.Customers[i]
		if c.ID == "" {
			c.ID = uuid.New().String()
		}
		if _, seen := customerIDs[c.Name]; !seen {
			customerIDs[c.Name] = c.ID
		}
	}

	var result Result
	for i := range bag.Invoices {
		inv := &bag.Invoices[i]
		if inv.ID == "" {
			inv.ID = uuid.New().String()
		}

		if id, ok := productIDs[inv.ProductName.String()]; ok {
			inv.ProductID = id
		} else {
			result.Unmatched = append(result.Unmatched, Reference{
				InvoiceIndex: i,
				Kind:         "product",
				Name:         inv.ProductName.String(),
			})
		}

		if id, ok := customerIDs[inv.CustomerName]; ok {
			inv.CustomerID = id
		} else {
			result.Unmatched = append(result.Unmatched, Reference{
				InvoiceIndex: i,
				Kind:         "customer",
				Name:         inv.CustomerName,
			})
		}
	}
	return result
}
