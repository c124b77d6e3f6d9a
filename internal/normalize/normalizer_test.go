package normalize_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"invex/internal/domain"
	"invex/internal/normalize"
)

func TestRound2(t *testing.T) {
	assert.Equal(t, 36.0, normalize.Round2(36.0))
	assert.Equal(t, 36.46, normalize.Round2(36.456))
	assert.Equal(t, 0.1, normalize.Round2(0.1))
	assert.Equal(t, -1.23, normalize.Round2(-1.234))
}

func TestRound2_Idempotent(t *testing.T) {
	for _, v := range []float64{36.456, 0.005, 118.55, 1234.1, -7.891} {
		once := normalize.Round2(v)
		assert.Equal(t, once, normalize.Round2(once))
	}
}

func TestNormalize_TaxPercentageConversion(t *testing.T) {
	bag := &domain.RecordBag{
		Products: []domain.Product{{
			Name:      "Widget",
			Quantity:  2,
			UnitPrice: domain.Float(100),
			Tax:       domain.Float(18),
		}},
	}

	normalize.Normalize(bag)

	// 100 * 2 * 18% = 36, an absolute amount.
	require.NotNil(t, bag.Products[0].Tax)
	assert.Equal(t, 36.0, *bag.Products[0].Tax)
}

func TestNormalize_TaxAboveHundredIsAbsolute(t *testing.T) {
	bag := &domain.RecordBag{
		Products: []domain.Product{{
			Name:      "Machine",
			Quantity:  1,
			UnitPrice: domain.Float(10000),
			Tax:       domain.Float(1800.456),
		}},
	}

	normalize.Normalize(bag)

	require.NotNil(t, bag.Products[0].Tax)
	assert.Equal(t, 1800.46, *bag.Products[0].Tax)
}

func TestNormalize_TaxDerivedFromPriceWithTax(t *testing.T) {
	bag := &domain.RecordBag{
		Products: []domain.Product{{
			Name:         "Widget",
			Quantity:     1,
			UnitPrice:    domain.Float(100),
			PriceWithTax: domain.Float(105),
		}},
	}

	normalize.Normalize(bag)

	require.NotNil(t, bag.Products[0].Tax)
	assert.Equal(t, 5.0, *bag.Products[0].Tax)
}

func TestNormalize_NegativeDerivedTaxClampsToZero(t *testing.T) {
	bag := &domain.RecordBag{
		Products: []domain.Product{{
			Name:         "Clearance",
			Quantity:     2,
			UnitPrice:    domain.Float(100),
			PriceWithTax: domain.Float(150),
		}},
	}

	normalize.Normalize(bag)

	require.NotNil(t, bag.Products[0].Tax)
	assert.Equal(t, 0.0, *bag.Products[0].Tax)
}

func TestNormalize_MissingTaxAndPriceDefaultsToZero(t *testing.T) {
	bag := &domain.RecordBag{
		Products: []domain.Product{{Name: "Mystery", Quantity: 1}},
	}

	normalize.Normalize(bag)

	require.NotNil(t, bag.Products[0].Tax)
	assert.Equal(t, 0.0, *bag.Products[0].Tax)
	assert.Nil(t, bag.Products[0].UnitPrice)
	assert.Nil(t, bag.Products[0].PriceWithTax)
}

func TestNormalize_ZeroTaxWithoutUnitPriceStaysZero(t *testing.T) {
	bag := &domain.RecordBag{
		Products: []domain.Product{{
			Name:     "Freebie",
			Quantity: 3,
			Tax:      domain.Float(0),
		}},
	}

	normalize.Normalize(bag)

	require.NotNil(t, bag.Products[0].Tax)
	assert.Equal(t, 0.0, *bag.Products[0].Tax)
}

func TestNormalize_FullBag(t *testing.T) {
	bag := &domain.RecordBag{
		Products: []domain.Product{{
			Name:         "Widget",
			Quantity:     2,
			UnitPrice:    domain.Float(100),
			Tax:          domain.Float(18),
			PriceWithTax: domain.Float(236),
		}},
		Invoices: []domain.Invoice{{
			SerialNumber: "INV-1",
			ProductName:  domain.NewString("Widget"),
			Quantity:     domain.NewNumber(2),
		}},
		Customers: []domain.Customer{{Name: "Acme", TotalPurchaseAmount: 236.004}},
	}

	normalize.Normalize(bag)
	first := *bag.Products[0].Tax
	firstTotal := bag.Customers[0].TotalPurchaseAmount

	assert.Equal(t, 36.0, first)
	assert.Equal(t, 236.0, firstTotal)
	require.NotNil(t, bag.Invoices[0].Tax)
	assert.Equal(t, 36.0, *bag.Invoices[0].Tax)
	require.NotNil(t, bag.Invoices[0].TotalAmount)
	assert.Equal(t, 236.0, *bag.Invoices[0].TotalAmount)
}

func TestNormalize_ExpandsListInvoiceWithProductMatch(t *testing.T) {
	bag := &domain.RecordBag{
		Products: []domain.Product{
			{Name: "Bolt", Quantity: 10, UnitPrice: domain.Float(2), Tax: domain.Float(200), PriceWithTax: domain.Float(220)},
			{Name: "Nut", Quantity: 5, UnitPrice: domain.Float(1), Tax: domain.Float(150), PriceWithTax: domain.Float(155)},
		},
		Invoices: []domain.Invoice{{
			SerialNumber: "INV-7",
			CustomerName: "Acme",
			ProductName:  domain.NewStringList("Bolt", "Nut"),
			Quantity:     domain.NewNumberList(10, 5),
			Tax:          domain.Float(350),
			TotalAmount:  domain.Float(375),
			Date:         "2024-02-01",
		}},
	}

	normalize.Normalize(bag)

	require.Len(t, bag.Invoices, 2)

	first := bag.Invoices[0]
	assert.Equal(t, "INV-7", first.SerialNumber)
	assert.Equal(t, "Bolt", first.ProductName.String())
	assert.False(t, first.ProductName.IsList)
	assert.Equal(t, 10.0, first.Quantity.Value())
	assert.Equal(t, 200.0, *first.Tax)
	assert.Equal(t, 220.0, *first.TotalAmount)

	second := bag.Invoices[1]
	assert.Equal(t, "Nut", second.ProductName.String())
	assert.Equal(t, 5.0, second.Quantity.Value())
	assert.Equal(t, 150.0, *second.Tax)
	assert.Equal(t, 155.0, *second.TotalAmount)
	assert.Equal(t, "2024-02-01", second.Date)
}

func TestNormalize_ExpandsListInvoiceEvenSplit(t *testing.T) {
	bag := &domain.RecordBag{
		Invoices: []domain.Invoice{{
			SerialNumber: "INV-9",
			ProductName:  domain.NewStringList("Ghost A", "Ghost B"),
			Quantity:     domain.NewNumberList(1, 2),
			Tax:          domain.Float(30),
			TotalAmount:  domain.Float(300),
		}},
	}

	normalize.Normalize(bag)

	require.Len(t, bag.Invoices, 2)
	for _, inv := range bag.Invoices {
		assert.Equal(t, 15.0, *inv.Tax)
		assert.Equal(t, 150.0, *inv.TotalAmount)
	}
	assert.Equal(t, 1.0, bag.Invoices[0].Quantity.Value())
	assert.Equal(t, 2.0, bag.Invoices[1].Quantity.Value())
}

func TestNormalize_ShortQuantityListDefaultsToOne(t *testing.T) {
	bag := &domain.RecordBag{
		Invoices: []domain.Invoice{{
			SerialNumber: "INV-3",
			ProductName:  domain.NewStringList("A", "B", "C"),
			Quantity:     domain.NewNumberList(4),
			Tax:          domain.Float(9),
			TotalAmount:  domain.Float(90),
		}},
	}

	normalize.Normalize(bag)

	require.Len(t, bag.Invoices, 3)
	assert.Equal(t, 4.0, bag.Invoices[0].Quantity.Value())
	assert.Equal(t, 1.0, bag.Invoices[1].Quantity.Value())
	assert.Equal(t, 1.0, bag.Invoices[2].Quantity.Value())
	assert.Equal(t, 3.0, *bag.Invoices[0].Tax)
	assert.Equal(t, 30.0, *bag.Invoices[0].TotalAmount)
}

func TestNormalize_EmptyNameListDropsInvoice(t *testing.T) {
	bag := &domain.RecordBag{
		Invoices: []domain.Invoice{{
			SerialNumber: "INV-0",
			ProductName:  domain.NewStringList(),
		}},
	}

	normalize.Normalize(bag)

	assert.Empty(t, bag.Invoices)
}

func TestNormalize_ScalarInvoiceWithoutMatchKeepsOwnValues(t *testing.T) {
	bag := &domain.RecordBag{
		Invoices: []domain.Invoice{{
			SerialNumber: "INV-2",
			ProductName:  domain.NewString("Orphan"),
			Quantity:     domain.NewNumber(1),
			Tax:          domain.Float(12.345),
			TotalAmount:  domain.Float(112.345),
		}},
	}

	normalize.Normalize(bag)

	require.Len(t, bag.Invoices, 1)
	assert.Equal(t, 12.35, *bag.Invoices[0].Tax)
	assert.Equal(t, 112.35, *bag.Invoices[0].TotalAmount)
}

func TestNormalize_ScalarInvoiceNilFieldsStayNil(t *testing.T) {
	bag := &domain.RecordBag{
		Invoices: []domain.Invoice{{
			SerialNumber: "INV-2",
			ProductName:  domain.NewString("Orphan"),
		}},
	}

	normalize.Normalize(bag)

	require.Len(t, bag.Invoices, 1)
	assert.Nil(t, bag.Invoices[0].Tax)
	assert.Nil(t, bag.Invoices[0].TotalAmount)
}

func TestNormalize_DuplicateProductNamesFirstWins(t *testing.T) {
	bag := &domain.RecordBag{
		Products: []domain.Product{
			{Name: "Widget", Quantity: 1, UnitPrice: domain.Float(100), Tax: domain.Float(101), PriceWithTax: domain.Float(201)},
			{Name: "Widget", Quantity: 1, UnitPrice: domain.Float(50), Tax: domain.Float(999), PriceWithTax: domain.Float(1049)},
		},
		Invoices: []domain.Invoice{{
			SerialNumber: "INV-5",
			ProductName:  domain.NewString("Widget"),
			Quantity:     domain.NewNumber(1),
		}},
	}

	normalize.Normalize(bag)

	require.Len(t, bag.Invoices, 1)
	assert.Equal(t, 101.0, *bag.Invoices[0].Tax)
	assert.Equal(t, 201.0, *bag.Invoices[0].TotalAmount)
}

func TestNormalize_CustomerTotalsRounded(t *testing.T) {
	bag := &domain.RecordBag{
		Customers: []domain.Customer{
			{Name: "Acme", TotalPurchaseAmount: 100.456},
			{Name: "Globex", TotalPurchaseAmount: 0},
		},
	}

	normalize.Normalize(bag)

	assert.Equal(t, 100.46, bag.Customers[0].TotalPurchaseAmount)
	assert.Equal(t, 0.0, bag.Customers[1].TotalPurchaseAmount)
}
