package domain

import (
	"encoding/json"
	"fmt"
)

// Product represents a single product extracted from a source document.
// Pre-normalization, Tax may be absent (nil) or hold a raw percentage; after
// normalization it always holds an absolute, 2-decimal-rounded currency amount.
// Pointer fields distinguish "not present in the source" from an explicit zero.
type Product struct {
	ID           string   `json:"id,omitempty"`
	Name         string   `json:"name"`
	Quantity     float64  `json:"quantity"`
	UnitPrice    *float64 `json:"unit_price"`
	Tax          *float64 `json:"tax"`
	PriceWithTax *float64 `json:"price_with_tax"`
	Discount     *float64 `json:"discount,omitempty"`
}

// Customer represents a buyer aggregated across their invoices.
type Customer struct {
	ID                  string  `json:"id,omitempty"`
	Name                string  `json:"name"`
	PhoneNumber         *string `json:"phone_number"`
	TotalPurchaseAmount float64 `json:"total_purchase_amount"`
	Address             *string `json:"address"`
	Email               *string `json:"email"`
}

// Invoice represents one invoice row. A multi-product source record carries a
// list-valued ProductName/Quantity until normalization expands it into one
// Invoice per product. ProductID/CustomerID are filled by the linking pass.
type Invoice struct {
	ID           string       `json:"id,omitempty"`
	SerialNumber string       `json:"serial_number"`
	CustomerName string       `json:"customer_name"`
	ProductName  StringOrList `json:"product_name"`
	Quantity     NumberOrList `json:"quantity"`
	Tax          *float64     `json:"tax"`
	TotalAmount  *float64     `json:"total_amount"`
	Date         string       `json:"date"`
	ProductID    string       `json:"product_id,omitempty"`
	CustomerID   string       `json:"customer_id,omitempty"`
}

// RecordBag is the output schema of an extraction request: the full set of
// records plus any non-fatal validation warnings.
type RecordBag struct {
	Invoices         []Invoice  `json:"invoices"`
	Products         []Product  `json:"products"`
	Customers        []Customer `json:"customers"`
	ValidationErrors []string   `json:"validation_errors"`
}

// Sentinel values used when a source document omits a field.
const (
	UnknownDate    = "Unknown Date"
	UnknownProduct = "Unknown Product"
)

// EmptyBag returns a RecordBag with empty (non-nil) record slices and the
// given validation errors. Used for request-level failures.
func EmptyBag(validationErrors ...string) *RecordBag {
	return &RecordBag{
		Invoices:         []Invoice{},
		Products:         []Product{},
		Customers:        []Customer{},
		ValidationErrors: validationErrors,
	}
}

// IsEmpty reports whether the bag holds no records of any kind.
func (b *RecordBag) IsEmpty() bool {
	return len(b.Invoices) == 0 && len(b.Products) == 0 && len(b.Customers) == 0
}

// StringOrList decodes a JSON value that is either a string or an array of
// strings. Document-understanding models emit either form for product names.
type StringOrList struct {
	Values []string
	IsList bool
}

// String returns the scalar form: the single value, or "" when empty.
// List-valued fields are expanded before this is meaningful.
func (s StringOrList) String() string {
	if len(s.Values) == 0 {
		return ""
	}
	return s.Values[0]
}

// NewString builds a scalar StringOrList.
func NewString(v string) StringOrList {
	return StringOrList{Values: []string{v}}
}

// NewStringList builds a list-valued StringOrList.
func NewStringList(vs ...string) StringOrList {
	return StringOrList{Values: vs, IsList: true}
}

func (s *StringOrList) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		s.Values = []string{single}
		s.IsList = false
		return nil
	}
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		s.Values = list
		s.IsList = true
		return nil
	}
	if string(data) == "null" {
		s.Values = nil
		s.IsList = false
		return nil
	}
	return fmt.Errorf("product_name must be a string or array of strings, got %s", data)
}

func (s StringOrList) MarshalJSON() ([]byte, error) {
	if s.IsList {
		return json.Marshal(s.Values)
	}
	return json.Marshal(s.String())
}

// NumberOrList decodes a JSON value that is either a number or an array of
// numbers, pairing positionally with a list-valued product name.
type NumberOrList struct {
	Values []float64
	IsList bool
}

// Value returns the scalar form. A missing quantity defaults to 1.
func (n NumberOrList) Value() float64 {
	if len(n.Values) == 0 {
		return 1
	}
	return n.Values[0]
}

// NewNumber builds a scalar NumberOrList.
func NewNumber(v float64) NumberOrList {
	return NumberOrList{Values: []float64{v}}
}

// NewNumberList builds a list-valued NumberOrList.
func NewNumberList(vs ...float64) NumberOrList {
	return NumberOrList{Values: vs, IsList: true}
}

func (n *NumberOrList) UnmarshalJSON(data []byte) error {
	var single float64
	if err := json.Unmarshal(data, &single); err == nil {
		n.Values = []float64{single}
		n.IsList = false
		return nil
	}
	var list []float64
	if err := json.Unmarshal(data, &list); err == nil {
		n.Values = list
		n.IsList = true
		return nil
	}
	if string(data) == "null" {
		n.Values = nil
		n.IsList = false
		return nil
	}
	return fmt.Errorf("quantity must be a number or array of numbers, got %s", data)
}

func (n NumberOrList) MarshalJSON() ([]byte, error) {
	if n.IsList {
		return json.Marshal(n.Values)
	}
	return json.Marshal(n.Value())
}

// Float returns a pointer to v. Convenience for building records with
// optional currency fields.
func Float(v float64) *float64 {
	return &v
}

// Str returns a pointer to v.
func Str(v string) *string {
	return &v
}
