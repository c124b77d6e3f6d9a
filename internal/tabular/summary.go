package tabular

import (
	"fmt"

	"invex/internal/domain"
)

// extractSummary handles the row-per-invoice summary shape: each row becomes
// one invoice and one synthetic product carrying the row's amounts. Customer
// totals accumulate across rows sharing the same customer name.
func extractSummary(t *Table, mapping Mapping) *domain.RecordBag {
	bag := domain.EmptyBag()
	customers := newCustomerTotals()

	for _, row := range t.Rows {
		serial, ok := row.Cell(mapping[ColSerialNumber])
		if !ok {
			continue
		}

		// Party Name first, then Party Company Name, then a synthesized name.
		customerName, _ := row.Cell(mapping[ColPartyName])
		if customerName == "" {
			customerName, _ = row.Cell(mapping[ColPartyCompanyName])
		}
		if customerName == "" {
			customerName = fmt.Sprintf("Customer for %s", serial)
		}

		netAmount := row.Number(mapping[ColNetAmount])
		taxAmount := row.Number(mapping[ColTaxAmount])
		totalAmount := row.Number(mapping[ColTotalAmount])

		date, ok := row.Cell(mapping[ColDate])
		if !ok {
			date = domain.UnknownDate
		}

		// Synthetic product representing the whole row; the name marks it as
		// a summary rather than a real line item.
		productName := fmt.Sprintf("%s - Summary", serial)

		bag.Invoices = append(bag.Invoices, domain.Invoice{
			SerialNumber: serial,
			CustomerName: customerName,
			ProductName:  domain.NewString(productName),
			Quantity:     domain.NewNumber(1),
			Tax:          domain.Float(taxAmount),
			TotalAmount:  domain.Float(totalAmount),
			Date:         date,
		})

		bag.Products = append(bag.Products, domain.Product{
			Name:         productName,
			Quantity:     1,
			UnitPrice:    domain.Float(netAmount),
			Tax:          domain.Float(taxAmount),
			PriceWithTax: domain.Float(totalAmount),
			Discount:     domain.Float(0),
		})

		customers.add(customerName, totalAmount)
	}

	bag.Customers = customers.records()
	return bag
}
