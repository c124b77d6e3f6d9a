package tabular

import (
	"fmt"

	"invex/internal/domain"
)

// extractGeneric handles tables with no recognized shape. Column roles come
// from the classifier's keyword heuristic; every row with a serial-like value
// becomes exactly one invoice and one product, with no line-item aggregation
// and no tax detection. A table with no serial-like column yields zero records.
func extractGeneric(t *Table, mapping Mapping) *domain.RecordBag {
	bag := domain.EmptyBag()

	serialCol, ok := mapping[RoleSerial]
	if !ok {
		return bag
	}

	customers := newCustomerTotals()

	var productOrder []string
	products := map[string]*domain.Product{}

	for _, row := range t.Rows {
		serial, ok := row.Cell(serialCol)
		if !ok {
			continue
		}

		productName, ok := row.Cell(mapping[RoleProduct])
		if !ok {
			productName = domain.UnknownProduct
		}

		customerName, ok := row.Cell(mapping[RoleCustomer])
		if !ok {
			customerName = fmt.Sprintf("Customer for %s", serial)
		}

		totalAmount := row.Number(mapping[RoleAmount])

		date, ok := row.Cell(mapping[RoleDate])
		if !ok {
			date = domain.UnknownDate
		}

		bag.Invoices = append(bag.Invoices, domain.Invoice{
			SerialNumber: serial,
			CustomerName: customerName,
			ProductName:  domain.NewString(productName),
			Quantity:     domain.NewNumber(1),
			Tax:          domain.Float(0),
			TotalAmount:  domain.Float(totalAmount),
			Date:         date,
		})

		customers.add(customerName, totalAmount)

		// One product per (name, serial); a repeated pair keeps the last row's amount.
		productKey := fmt.Sprintf("%s_%s", productName, serial)
		if _, seen := products[productKey]; !seen {
			productOrder = append(productOrder, productKey)
		}
		products[productKey] = &domain.Product{
			Name:         productName,
			Quantity:     1,
			UnitPrice:    domain.Float(totalAmount),
			Tax:          domain.Float(0),
			PriceWithTax: domain.Float(totalAmount),
			Discount:     domain.Float(0),
		}
	}

	for _, key := range productOrder {
		bag.Products = append(bag.Products, *products[key])
	}

	bag.Customers = customers.records()
	return bag
}
