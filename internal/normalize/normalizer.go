// Package normalize reconciles a provisional record bag into a consistent
// relational shape: absolute tax amounts, 2-decimal currency fields, one
// invoice row per product, and aggregated customer totals.
package normalize

import (
	"math"

	"invex/internal/domain"
)

// Round2 rounds a currency value to 2 decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Normalize transforms a provisional bag in place. Order matters: product
// tax resolution and rounding run before invoice expansion, which reads the
// already-resolved product values. Malformed records pass through best-effort
// rather than being dropped.
func Normalize(bag *domain.RecordBag) {
	for i := range bag.Products {
		resolveProductTax(&bag.Products[i])
	}

	bag.Invoices = expandInvoices(bag.Invoices, bag.Products)

	for i := range bag.Customers {
		bag.Customers[i].TotalPurchaseAmount = Round2(bag.Customers[i].TotalPurchaseAmount)
	}
}

// resolveProductTax converts a product's tax field to an absolute, rounded
// currency amount and rounds the remaining currency fields.
//
// A present tax value at or below 100 is treated as a percentage. This cannot
// distinguish a genuine small absolute tax from a rate; the threshold is a
// known false-positive source kept for compatibility with existing data.
func resolveProductTax(p *domain.Product) {
	switch {
	case p.Tax != nil && *p.Tax <= 100 && p.UnitPrice != nil:
		p.Tax = domain.Float(Round2(*p.UnitPrice * p.Quantity * *p.Tax / 100))
	case p.Tax == nil:
		if p.PriceWithTax != nil && p.UnitPrice != nil {
			tax := Round2(*p.PriceWithTax - *p.UnitPrice*p.Quantity)
			if tax < 0 {
				tax = 0
			}
			p.Tax = domain.Float(tax)
		} else {
			p.Tax = domain.Float(0)
		}
	default:
		p.Tax = domain.Float(Round2(*p.Tax))
	}

	if p.PriceWithTax != nil {
		p.PriceWithTax = domain.Float(Round2(*p.PriceWithTax))
	}
	if p.UnitPrice != nil {
		p.UnitPrice = domain.Float(Round2(*p.UnitPrice))
	}
	if p.Discount != nil {
		p.Discount = domain.Float(Round2(*p.Discount))
	}
}

// expandInvoices emits one invoice per product name, pairing list entries
// positionally with quantities. Products are matched by exact name against
// the already-normalized product list; a matched product's tax and
// price-with-tax overwrite the invoice's values, and an unmatched multi-name
// invoice splits its own tax/total evenly across the names.
func expandInvoices(invoices []domain.Invoice, products []domain.Product) []domain.Invoice {
	productByName := map[string]*domain.Product{}
	for i := range products {
		p := &products[i]
		if _, seen := productByName[p.Name]; !seen {
			productByName[p.Name] = p
		}
	}

	var out []domain.Invoice
	for _, inv := range invoices {
		if inv.ProductName.IsList {
			out = append(out, expandListInvoice(inv, productByName)...)
			continue
		}

		if p, ok := productByName[inv.ProductName.String()]; ok {
			inv.Tax = domain.Float(*p.Tax)
			inv.TotalAmount = copyRounded(p.PriceWithTax)
		} else {
			inv.Tax = copyRounded(inv.Tax)
			inv.TotalAmount = copyRounded(inv.TotalAmount)
		}
		out = append(out, inv)
	}
	return out
}

func expandListInvoice(inv domain.Invoice, productByName map[string]*domain.Product) []domain.Invoice {
	names := inv.ProductName.Values
	n := len(names)
	if n == 0 {
		return nil
	}

	var quantities []float64
	if inv.Quantity.IsList {
		quantities = inv.Quantity.Values
	}

	out := make([]domain.Invoice, 0, n)
	for i, name := range names {
		quantity := 1.0
		if i < len(quantities) {
			quantity = quantities[i]
		}

		row := inv
		row.ProductName = domain.NewString(name)
		row.Quantity = domain.NewNumber(quantity)

		if p, ok := productByName[name]; ok {
			row.Tax = domain.Float(*p.Tax)
			row.TotalAmount = copyRounded(p.PriceWithTax)
		} else {
			row.Tax = domain.Float(Round2(orZero(inv.Tax) / float64(n)))
			row.TotalAmount = domain.Float(Round2(orZero(inv.TotalAmount) / float64(n)))
		}
		out = append(out, row)
	}
	return out
}

func copyRounded(v *float64) *float64 {
	if v == nil {
		return nil
	}
	return domain.Float(Round2(*v))
}

func orZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
