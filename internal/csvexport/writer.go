// Package csvexport renders a record bag as CSV for download.
package csvexport

import (
	"encoding/csv"
	"io"
	"strconv"

	"invex/internal/domain"
)

// UTF-8 BOM bytes for Excel compatibility on Windows.
var BOM = []byte{0xEF, 0xBB, 0xBF}

var invoiceColumns = []string{
	"Serial Number",
	"Customer Name",
	"Product Name",
	"Quantity",
	"Tax",
	"Total Amount",
	"Date",
}

var productColumns = []string{
	"Name",
	"Quantity",
	"Unit Price",
	"Tax",
	"Price with Tax",
	"Discount",
}

var customerColumns = []string{
	"Name",
	"Phone Number",
	"Total Purchase Amount",
	"Address",
	"Email",
}

// Writer wraps csv.Writer for exporting a record bag as sectioned CSV.
type Writer struct {
	csv *csv.Writer
}

// NewWriter creates a Writer that writes CSV to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{csv: csv.NewWriter(w)}
}

// WriteBag writes the three record sections, each with a title row, a header
// row, and one row per record, separated by blank rows.
func (w *Writer) WriteBag(bag *domain.RecordBag) error {
	if err := w.writeSection("Invoices", invoiceColumns, len(bag.Invoices), func(i int) []string {
		return invoiceToRow(&bag.Invoices[i])
	}); err != nil {
		return err
	}
	if err := w.csv.Write([]string{}); err != nil {
		return err
	}

	if err := w.writeSection("Products", productColumns, len(bag.Products), func(i int) []string {
		return productToRow(&bag.Products[i])
	}); err != nil {
		return err
	}
	if err := w.csv.Write([]string{}); err != nil {
		return err
	}

	return w.writeSection("Customers", customerColumns, len(bag.Customers), func(i int) []string {
		return customerToRow(&bag.Customers[i])
	})
}

// Flush flushes the underlying csv.Writer buffer.
func (w *Writer) Flush() {
	w.csv.Flush()
}

// Error returns any error from the underlying csv.Writer.
func (w *Writer) Error() error {
	return w.csv.Error()
}

func (w *Writer) writeSection(title string, columns []string, n int, row func(int) []string) error {
	if err := w.csv.Write([]string{title}); err != nil {
		return err
	}
	if err := w.csv.Write(columns); err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		if err := w.csv.Write(row(i)); err != nil {
			return err
		}
	}
	return nil
}

func invoiceToRow(inv *domain.Invoice) []string {
	return []string{
		inv.SerialNumber,
		inv.CustomerName,
		inv.ProductName.String(),
		formatFloat(inv.Quantity.Value()),
		formatOptional(inv.Tax),
		formatOptional(inv.TotalAmount),
		inv.Date,
	}
}

func productToRow(p *domain.Product) []string {
	return []string{
		p.Name,
		formatFloat(p.Quantity),
		formatOptional(p.UnitPrice),
		formatOptional(p.Tax),
		formatOptional(p.PriceWithTax),
		formatOptional(p.Discount),
	}
}

func customerToRow(c *domain.Customer) []string {
	return []string{
		c.Name,
		formatOptionalString(c.PhoneNumber),
		formatFloat(c.TotalPurchaseAmount),
		formatOptionalString(c.Address),
		formatOptionalString(c.Email),
	}
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatOptional(v *float64) string {
	if v == nil {
		return ""
	}
	return formatFloat(*v)
}

func formatOptionalString(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}
