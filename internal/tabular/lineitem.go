package tabular

import (
	"fmt"
	"strings"

	"invex/internal/domain"
)

// footerSerials marks summary footer rows that must not become line items.
var footerSerials = map[string]bool{
	"total":  true,
	"totals": true,
	"sum":    true,
}

// extractLineItems handles the row-per-line-item detail shape: rows are
// grouped by serial number into invoices and by (product name, unit price)
// into products, merging quantity/tax/price on repeat. Each invoice line
// keeps its own row's resolved values, not the merged product's.
func extractLineItems(t *Table, mapping Mapping) *domain.RecordBag {
	bag := domain.EmptyBag()
	customers := newCustomerTotals()

	type lineItem struct {
		productName string
		quantity    float64
		tax         float64
		totalAmount float64
	}
	type invoiceGroup struct {
		customerName string
		date         string
		lines        []lineItem
	}

	var serialOrder []string
	invoices := map[string]*invoiceGroup{}

	var productOrder []string
	products := map[string]*domain.Product{}

	for _, row := range t.Rows {
		serial, ok := row.Cell(mapping[ColSerialNumber])
		if !ok {
			continue
		}
		if footerSerials[strings.ToLower(serial)] {
			continue
		}

		date, ok := row.Cell(mapping[ColInvoiceDate])
		if !ok {
			date = domain.UnknownDate
		}

		productName, ok := row.Cell(mapping[ColProductName])
		if !ok {
			productName = domain.UnknownProduct
		}

		quantity := 1.0
		if q, ok := row.Cell(mapping[ColQty]); ok && q != "" {
			quantity = row.Number(mapping[ColQty])
		}

		priceWithTax := row.Number(mapping[ColPriceWithTax])
		unitPrice := row.Number(mapping[ColUnitPrice])
		taxPercent := row.Number(mapping[ColTaxPercent])

		// Tax per row: percentage column when positive, otherwise the price
		// difference, clamped to zero.
		var taxAmount float64
		if taxPercent > 0 {
			taxAmount = unitPrice * quantity * taxPercent / 100
		} else {
			taxAmount = priceWithTax - unitPrice*quantity
			if taxAmount < 0 {
				taxAmount = 0
			}
		}

		// This format has no customer identity column.
		customerName := fmt.Sprintf("Customer for %s", serial)

		productKey := fmt.Sprintf("%s-%v", productName, unitPrice)
		if p, seen := products[productKey]; seen {
			p.Quantity += quantity
			*p.Tax += taxAmount
			*p.PriceWithTax += priceWithTax
		} else {
			productOrder = append(productOrder, productKey)
			products[productKey] = &domain.Product{
				Name:         productName,
				Quantity:     quantity,
				UnitPrice:    domain.Float(unitPrice),
				Tax:          domain.Float(taxAmount),
				PriceWithTax: domain.Float(priceWithTax),
				Discount:     domain.Float(0),
			}
		}

		group, seen := invoices[serial]
		if !seen {
			serialOrder = append(serialOrder, serial)
			group = &invoiceGroup{customerName: customerName, date: date}
			invoices[serial] = group
		}
		group.lines = append(group.lines, lineItem{
			productName: productName,
			quantity:    quantity,
			tax:         taxAmount,
			totalAmount: priceWithTax,
		})

		customers.add(customerName, priceWithTax)
	}

	for _, serial := range serialOrder {
		group := invoices[serial]
		for _, line := range group.lines {
			bag.Invoices = append(bag.Invoices, domain.Invoice{
				SerialNumber: serial,
				CustomerName: group.customerName,
				ProductName:  domain.NewString(line.productName),
				Quantity:     domain.NewNumber(line.quantity),
				Tax:          domain.Float(line.tax),
				TotalAmount:  domain.Float(line.totalAmount),
				Date:         group.date,
			})
		}
	}

	for _, key := range productOrder {
		bag.Products = append(bag.Products, *products[key])
	}

	bag.Customers = customers.records()
	return bag
}
