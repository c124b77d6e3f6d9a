package tabular

import "invex/internal/domain"

// Extract converts a classified table into a provisional record bag using the
// shape's aggregation rules. The bag is unrounded and unvalidated; that is
// the normalizer's job.
func Extract(t *Table, shape Shape, mapping Mapping) *domain.RecordBag {
	switch shape {
	case ShapeSummary:
		return extractSummary(t, mapping)
	case ShapeLineItem:
		return extractLineItems(t, mapping)
	default:
		return extractGeneric(t, mapping)
	}
}

// customerTotals accumulates per-customer purchase totals preserving first-seen order.
type customerTotals struct {
	order  []string
	totals map[string]float64
}

func newCustomerTotals() *customerTotals {
	return &customerTotals{totals: map[string]float64{}}
}

func (c *customerTotals) add(name string, amount float64) {
	if _, seen := c.totals[name]; !seen {
		c.order = append(c.order, name)
	}
	c.totals[name] += amount
}

func (c *customerTotals) records() []domain.Customer {
	customers := make([]domain.Customer, 0, len(c.order))
	for _, name := range c.order {
		customers = append(customers, domain.Customer{
			Name:                name,
			TotalPurchaseAmount: c.totals[name],
		})
	}
	return customers
}
