package tabular

import "strings"

// Shape identifies which of the known invoice-table layouts a table follows.
type Shape string

const (
	// ShapeLineItem is a row-per-line-item detail table.
	ShapeLineItem Shape = "line_item"
	// ShapeSummary is a row-per-invoice summary table.
	ShapeSummary Shape = "summary"
	// ShapeGeneric is the fallback for unrecognized layouts.
	ShapeGeneric Shape = "generic"
)

// Canonical column names used by the summary and line-item extractors.
const (
	ColSerialNumber     = "Serial Number"
	ColPartyName        = "Party Name"
	ColPartyCompanyName = "Party Company Name"
	ColNetAmount        = "Net Amount"
	ColTaxAmount        = "Tax Amount"
	ColTotalAmount      = "Total Amount"
	ColDate             = "Date"
	ColInvoiceDate      = "Invoice Date"
	ColProductName      = "Product Name"
	ColQty              = "Qty"
	ColPriceWithTax     = "Price with Tax"
	ColUnitPrice        = "Unit Price"
	ColTaxPercent       = "Tax (%)"
)

// Generic role names resolved by keyword matching.
const (
	RoleSerial   = "serial"
	RoleProduct  = "product"
	RoleCustomer = "customer"
	RoleAmount   = "amount"
	RoleDate     = "date"
)

var canonicalColumns = []string{
	ColSerialNumber,
	ColPartyName,
	ColPartyCompanyName,
	ColNetAmount,
	ColTaxAmount,
	ColTotalAmount,
	ColDate,
	ColInvoiceDate,
	ColProductName,
	ColQty,
	ColPriceWithTax,
	ColUnitPrice,
	ColTaxPercent,
}

var roleKeywords = map[string][]string{
	RoleSerial:   {"serial", "invoice", "bill", "number"},
	RoleProduct:  {"product", "item", "description", "service"},
	RoleCustomer: {"customer", "client", "party", "buyer", "name"},
	RoleAmount:   {"amount", "total", "price", "value"},
	RoleDate:     {"date", "time"},
}

// Mapping is a lookup from a canonical column (or generic role) name to the
// actual header string found in the source table.
type Mapping map[string]string

// Classify inspects the table's column headers and decides which known shape
// the table represents, producing a canonical column mapping. Classification
// is deterministic: canonical columns and generic roles resolve to the first
// matching column in declaration order.
func Classify(columns []string) (Shape, Mapping) {
	mapping := Mapping{}
	for _, expected := range canonicalColumns {
		for _, col := range columns {
			if strings.Contains(strings.ToLower(col), strings.ToLower(expected)) {
				mapping[expected] = col
				break
			}
		}
	}

	if mapping.has(ColProductName) && mapping.has(ColQty) {
		return ShapeLineItem, mapping
	}

	if mapping.has(ColSerialNumber) &&
		(mapping.has(ColPartyName) || mapping.has(ColPartyCompanyName)) &&
		mapping.has(ColNetAmount) && mapping.has(ColTaxAmount) && mapping.has(ColTotalAmount) {
		return ShapeSummary, mapping
	}

	return ShapeGeneric, classifyRoles(columns)
}

// classifyRoles resolves generic role names to columns by keyword membership,
// first column in table order wins per role.
func classifyRoles(columns []string) Mapping {
	mapping := Mapping{}
	for role, keywords := range roleKeywords {
		for _, col := range columns {
			if containsAny(strings.ToLower(col), keywords) {
				mapping[role] = col
				break
			}
		}
	}
	return mapping
}

func containsAny(s string, terms []string) bool {
	for _, t := range terms {
		if strings.Contains(s, t) {
			return true
		}
	}
	return false
}

func (m Mapping) has(key string) bool {
	_, ok := m[key]
	return ok
}
