package helpers

import (
	"encoding/json"
	"fmt"

	"github.com/regime-co/regime-api/libs/go/db"
	"github.com/regime-co/regime-api/libs/go/types/business"
)

// Rows coming out of the store are converted to business value objects here and
// nowhere else. JSONB columns are decoded strictly so a malformed row surfaces as an error.

// RegimeFromRow converts a regimes row
func RegimeFromRow(row db.Regime) (business.Regime, error) {
	items := []string{}
	if len(row.Items) > 0 {
		if err := json.Unmarshal(row.Items, &items); err != nil {
			return business.Regime{}, fmt.Errorf("decode items of regime %s: %w", row.ID, err)
		}
	}

	return business.Regime{
		ID:          row.ID,
		Name:        row.Name,
		Slug:        row.Slug,
		Description: TextToString(row.Description),
		ImageURL:    TextToString(row.ImageUrl),
		StepCount:   row.StepCount,
		Items:       items,
		Active:      row.Active,
		OneTime: business.TierPricing{
			Price:           NumericToDecimal(row.PriceOneTime),
			DiscountPercent: Int4ToInt32Ptr(row.DiscountOneTime),
			DiscountReason:  TextToStringPtr(row.DiscountReasonOneTime),
		},
		ThreeMonths: business.TierPricing{
			Price:           NumericToDecimal(row.PriceThreeMonths),
			DiscountPercent: Int4ToInt32Ptr(row.DiscountThreeMonths),
			DiscountReason:  TextToStringPtr(row.DiscountReasonThreeMonths),
		},
		SixMonths: business.TierPricing{
			Price:           NumericToDecimal(row.PriceSixMonths),
			DiscountPercent: Int4ToInt32Ptr(row.DiscountSixMonths),
			DiscountReason:  TextToStringPtr(row.DiscountReasonSixMonths),
		},
		CreatedAt: row.CreatedAt.Time,
		UpdatedAt: row.UpdatedAt.Time,
	}, nil
}

// RegimesFromRows converts a slice of regimes rows
func RegimesFromRows(rows []db.Regime) ([]business.Regime, error) {
	regimes := make([]business.Regime, 0, len(rows))
	for _, row := range rows {
		regime, err := RegimeFromRow(row)
		if err != nil {
			return nil, err
		}
		regimes = append(regimes, regime)
	}
	return regimes, nil
}

// OrderFromRow converts an orders row
func OrderFromRow(row db.Order) (business.Order, error) {
	order := business.Order{
		ID:              row.ID,
		OrderNumber:     row.OrderNumber,
		Customer:        business.CustomerDetails{Name: row.CustomerName, Email: row.CustomerEmail, Phone: row.CustomerPhone},
		Items:           []business.OrderItem{},
		Subtotal:        NumericToDecimal(row.Subtotal),
		DiscountCode:    TextToStringPtr(row.DiscountCode),
		DiscountAmount:  NumericToDecimal(row.DiscountAmount),
		Total:           NumericToDecimal(row.Total),
		Currency:        row.Currency,
		Status:          business.OrderStatus(row.Status),
		PaymentMethod:   business.PaymentMethod(row.PaymentMethod),
		PaymentStatus:   business.PaymentStatus(row.PaymentStatus),
		PaymentIntentID: TextToStringPtr(row.PaymentIntentID),
		IsGift:          row.IsGift,
		Notes:           TextToStringPtr(row.Notes),
		CreatedAt:       row.CreatedAt.Time,
		UpdatedAt:       row.UpdatedAt.Time,
	}

	if len(row.ShippingAddress) > 0 {
		if err := json.Unmarshal(row.ShippingAddress, &order.Shipping); err != nil {
			return business.Order{}, fmt.Errorf("decode shipping address of order %s: %w", row.OrderNumber, err)
		}
	}
	if len(row.Items) > 0 {
		if err := json.Unmarshal(row.Items, &order.Items); err != nil {
			return business.Order{}, fmt.Errorf("decode items of order %s: %w", row.OrderNumber, err)
		}
	}
	if len(row.FormAnswers) > 0 && string(row.FormAnswers) != "null" {
		var answers business.RegimeFormAnswers
		if err := json.Unmarshal(row.FormAnswers, &answers); err != nil {
			return business.Order{}, fmt.Errorf("decode form answers of order %s: %w", row.OrderNumber, err)
		}
		order.FormAnswers = &answers
	}
	return order, nil
}

// OrdersFromRows converts a slice of orders rows
func OrdersFromRows(rows []db.Order) ([]business.Order, error) {
	orders := make([]business.Order, 0, len(rows))
	for _, row := range rows {
		order, err := OrderFromRow(row)
		if err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}
	return orders, nil
}

// DiscountCodeFromRow converts a discount_codes row
func DiscountCodeFromRow(row db.DiscountCode) business.DiscountCode {
	return business.DiscountCode{
		ID:            row.ID,
		Code:          row.Code,
		PercentageOff: row.PercentageOff,
		Description:   TextToStringPtr(row.Description),
		IsActive:      row.IsActive,
		IsRecurring:   row.IsRecurring,
		UsageCount:    row.UsageCount,
		CreatedAt:     row.CreatedAt.Time,
		UpdatedAt:     row.UpdatedAt.Time,
	}
}

// ReviewFromRow converts a reviews row
func ReviewFromRow(row db.Review) business.Review {
	return business.Review{
		ID:           row.ID,
		RegimeID:     row.RegimeID,
		CustomerName: row.CustomerName,
		Rating:       row.Rating,
		Comment:      row.Comment,
		IsApproved:   row.IsApproved,
		CreatedAt:    row.CreatedAt.Time,
	}
}

// SubscriberFromRow converts a subscribers row
func SubscriberFromRow(row db.Subscriber) business.Subscriber {
	return business.Subscriber{
		ID:        row.ID,
		Email:     row.Email,
		IsActive:  row.IsActive,
		CreatedAt: row.CreatedAt.Time,
	}
}

// GiftCardFromRow converts a gift_cards row
func GiftCardFromRow(row db.GiftCard) business.GiftCard {
	return business.GiftCard{
		ID:              row.ID,
		Code:            row.Code,
		RegimeID:        row.RegimeID,
		Tier:            business.ParseSubscriptionTier(row.Tier),
		PurchaserName:   row.PurchaserName,
		PurchaserEmail:  row.PurchaserEmail,
		RecipientName:   row.RecipientName,
		RecipientEmail:  row.RecipientEmail,
		Message:         TextToStringPtr(row.Message),
		Status:          business.GiftStatus(row.Status),
		OrderID:         row.OrderID,
		RedeemedOrderID: PgtypeToUUIDPtr(row.RedeemedOrderID),
		RedeemedAt:      TimestamptzToTimePtr(row.RedeemedAt),
		CreatedAt:       row.CreatedAt.Time,
	}
}
