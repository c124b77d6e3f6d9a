package parser

// BuildInvoicePrompt returns the extraction prompt sent alongside document
// bytes to the document-understanding model.
func BuildInvoicePrompt() string {
	return `Extract the following information from this invoice document in JSON format:
1. Invoice details: serial number, date, total amount, tax
2. Customer details: name, phone number, address (if available)
3. Product details: name, quantity, unit price, tax, price with tax

Format the response as a valid JSON object with three arrays: "invoices", "products", and "customers".
Each invoice must have: serial_number, customer_name, product_name, quantity, tax, total_amount, date
Each product must have: name, quantity, unit_price, tax, price_with_tax, discount (optional)
Each customer must have: name, phone_number, total_purchase_amount, address (optional), email (optional)

IMPORTANT: Return ONLY the JSON object, no other text.`
}
