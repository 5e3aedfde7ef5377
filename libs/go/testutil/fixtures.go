package testutil

import (
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/regime-co/regime-api/libs/go/db"
	"github.com/regime-co/regime-api/libs/go/helpers"
	"github.com/shopspring/decimal"
)

func timestamp() pgtype.Timestamptz {
	return pgtype.Timestamptz{Time: time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC), Valid: true}
}

// CreateTestRegime creates an active regimes row priced 2999 / 7999 / 14999 PKR,
// with 10% off the three month tier and 20% off the six month tier
func CreateTestRegime(name, slug string) db.Regime {
	return db.Regime{
		ID:                        uuid.New(),
		Name:                      name,
		Slug:                      slug,
		Description:               pgtype.Text{String: "A gentle daily routine", Valid: true},
		StepCount:                 4,
		Items:                     []byte(`["Cleanser","Toner","Serum","Moisturiser"]`),
		Active:                    true,
		PriceOneTime:              helpers.DecimalToNumeric(decimal.NewFromInt(2999)),
		PriceThreeMonths:          helpers.DecimalToNumeric(decimal.NewFromInt(7999)),
		DiscountThreeMonths:       pgtype.Int4{Int32: 10, Valid: true},
		DiscountReasonThreeMonths: pgtype.Text{String: "Quarterly saver", Valid: true},
		PriceSixMonths:            helpers.DecimalToNumeric(decimal.NewFromInt(14999)),
		DiscountSixMonths:         pgtype.Int4{Int32: 20, Valid: true},
		CreatedAt:                 timestamp(),
		UpdatedAt:                 timestamp(),
	}
}

// CreateTestOrder creates an orders row with a Lahore shipping address
func CreateTestOrder(orderNumber, status, paymentMethod, paymentStatus string) db.Order {
	return db.Order{
		ID:              uuid.New(),
		OrderNumber:     orderNumber,
		CustomerName:    "Ayesha Khan",
		CustomerEmail:   "ayesha@example.com",
		CustomerPhone:   "+923001234567",
		ShippingAddress: []byte(`{"line1":"12 Canal View","city":"Lahore","country":"Pakistan"}`),
		Items:           []byte(`[]`),
		Subtotal:        helpers.DecimalToNumeric(decimal.NewFromInt(2999)),
		DiscountAmount:  helpers.DecimalToNumeric(decimal.Zero),
		Total:           helpers.DecimalToNumeric(decimal.NewFromInt(2999)),
		Currency:        "PKR",
		Status:          status,
		PaymentMethod:   paymentMethod,
		PaymentStatus:   paymentStatus,
		CreatedAt:       timestamp(),
		UpdatedAt:       timestamp(),
	}
}

// CreateTestDiscountCode creates a discount_codes row
func CreateTestDiscountCode(code string, percentageOff int32, recurring bool) db.DiscountCode {
	return db.DiscountCode{
		ID:            uuid.New(),
		Code:          code,
		PercentageOff: percentageOff,
		IsActive:      true,
		IsRecurring:   recurring,
		CreatedAt:     timestamp(),
		UpdatedAt:     timestamp(),
	}
}
