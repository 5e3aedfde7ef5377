package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/regime-co/regime-api/libs/go/constants"
	"github.com/regime-co/regime-api/libs/go/interfaces"
	"github.com/regime-co/regime-api/libs/go/logger"
	"github.com/regime-co/regime-api/libs/go/types/business"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var (
	ErrCartEmpty        = errors.New("cart is empty")
	ErrCartFull         = errors.New("cart has too many lines")
	ErrCartItemNotFound = errors.New("item is not in the cart")
	ErrInvalidQuantity  = fmt.Errorf("quantity must be between 1 and %d", constants.MaxCartLineQuantity)
	ErrInvalidTier      = errors.New("unknown subscription tier")
)

// CartService keeps the basket in the session store and prices it on every read
type CartService struct {
	store     interfaces.SessionStore
	regimes   interfaces.RegimeService
	pricing   interfaces.PricingService
	discounts interfaces.DiscountService
	logger    *zap.Logger
}

// NewCartService creates a new cart service
func NewCartService(
	store interfaces.SessionStore,
	regimes interfaces.RegimeService,
	pricing interfaces.PricingService,
	discounts interfaces.DiscountService,
) *CartService {
	return &CartService{
		store:     store,
		regimes:   regimes,
		pricing:   pricing,
		discounts: discounts,
		logger:    logger.Log,
	}
}

// Load returns the session cart, empty when nothing was saved yet
func (s *CartService) Load(ctx context.Context, sessionID string) (*business.Cart, error) {
	if sessionID == "" {
		return nil, ErrMissingSessionID
	}
	cart := business.Cart{Items: []business.CartItem{}}
	if _, err := s.store.Get(ctx, cartKey(sessionID), &cart); err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}
	if cart.Items == nil {
		cart.Items = []business.CartItem{}
	}
	return &cart, nil
}

// Summary loads and prices the session cart
func (s *CartService) Summary(ctx context.Context, sessionID string) (*business.CartSummary, error) {
	cart, err := s.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return s.Summarize(ctx, *cart)
}

// Summarize prices a cart against current regime data. Lines whose regime was removed or
// hidden are dropped, as is a discount code that is no longer redeemable.
func (s *CartService) Summarize(ctx context.Context, cart business.Cart) (*business.CartSummary, error) {
	summary := &business.CartSummary{
		Lines:    []business.CartLine{},
		Subtotal: decimal.Zero,
		Currency: constants.DefaultCurrency,
	}

	for _, item := range cart.Items {
		regime, err := s.regimes.Get(ctx, item.RegimeID)
		if err != nil {
			if errors.Is(err, ErrRegimeNotFound) {
				s.logger.Warn("dropping cart line for missing regime", zap.String("regime_id", item.RegimeID.String()))
				continue
			}
			return nil, err
		}
		if !regime.Active {
			continue
		}

		quote := s.pricing.CalculatePrice(*regime, item.Tier)
		lineTotal := quote.DiscountedPrice.Mul(decimal.NewFromInt32(item.Quantity))
		summary.Lines = append(summary.Lines, business.CartLine{
			RegimeID:   regime.ID,
			RegimeName: regime.Name,
			ImageURL:   regime.ImageURL,
			Tier:       quote.Tier,
			Quantity:   item.Quantity,
			Quote:      quote,
			LineTotal:  lineTotal,
		})
		summary.ItemCount += item.Quantity
		summary.Subtotal = summary.Subtotal.Add(lineTotal)
	}

	summary.Total = summary.Subtotal
	summary.DiscountAmount = decimal.Zero
	if cart.DiscountCode == nil || len(summary.Lines) == 0 {
		return summary, nil
	}

	discount, err := s.discounts.ValidateCode(ctx, *cart.DiscountCode)
	if err != nil {
		if isDiscountRejection(err) {
			s.logger.Info("discount code no longer applies", zap.String("code", *cart.DiscountCode), zap.Error(err))
			return summary, nil
		}
		return nil, err
	}

	applied := s.pricing.ApplyPercent(summary.Subtotal, discount.PercentageOff, nil)
	summary.DiscountCode = &discount.Code
	summary.DiscountCodeID = &discount.ID
	summary.DiscountAmount = applied.SavingsAmount
	summary.Total = applied.DiscountedPrice
	return summary, nil
}

// AddItem adds a regime to the cart. Adding a regime and tier that is already there
// increases its quantity.
func (s *CartService) AddItem(ctx context.Context, sessionID string, item business.CartItem) (*business.CartSummary, error) {
	if !item.Tier.IsValid() {
		return nil, ErrInvalidTier
	}
	if item.Quantity < 1 || item.Quantity > constants.MaxCartLineQuantity {
		return nil, ErrInvalidQuantity
	}
	regime, err := s.regimes.Get(ctx, item.RegimeID)
	if err != nil {
		return nil, err
	}
	if !regime.Active {
		return nil, ErrRegimeInactive
	}

	cart, err := s.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	_, idx, found := lo.FindIndexOf(cart.Items, sameLine(item.RegimeID, item.Tier))
	if found {
		quantity := cart.Items[idx].Quantity + item.Quantity
		if quantity > constants.MaxCartLineQuantity {
			return nil, ErrInvalidQuantity
		}
		cart.Items[idx].Quantity = quantity
	} else {
		if len(cart.Items) >= constants.MaxCartLines {
			return nil, ErrCartFull
		}
		cart.Items = append(cart.Items, item)
	}

	return s.saveAndSummarize(ctx, sessionID, cart)
}

// UpdateItem sets the quantity of a line. A quantity of zero removes it.
func (s *CartService) UpdateItem(ctx context.Context, sessionID string, item business.CartItem) (*business.CartSummary, error) {
	if item.Quantity < 0 || item.Quantity > constants.MaxCartLineQuantity {
		return nil, ErrInvalidQuantity
	}
	if item.Quantity == 0 {
		return s.RemoveItem(ctx, sessionID, item.RegimeID, item.Tier)
	}

	cart, err := s.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	_, idx, found := lo.FindIndexOf(cart.Items, sameLine(item.RegimeID, item.Tier))
	if !found {
		return nil, ErrCartItemNotFound
	}
	cart.Items[idx].Quantity = item.Quantity

	return s.saveAndSummarize(ctx, sessionID, cart)
}

// RemoveItem drops a line from the cart
func (s *CartService) RemoveItem(ctx context.Context, sessionID string, regimeID uuid.UUID, tier business.SubscriptionTier) (*business.CartSummary, error) {
	cart, err := s.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	match := sameLine(regimeID, tier)
	remaining := lo.Reject(cart.Items, func(item business.CartItem, _ int) bool { return match(item) })
	if len(remaining) == len(cart.Items) {
		return nil, ErrCartItemNotFound
	}
	cart.Items = remaining

	return s.saveAndSummarize(ctx, sessionID, cart)
}

// ApplyDiscount validates a code and remembers it on the cart
func (s *CartService) ApplyDiscount(ctx context.Context, sessionID string, code string) (*business.CartSummary, error) {
	cart, err := s.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if cart.IsEmpty() {
		return nil, ErrCartEmpty
	}

	discount, err := s.discounts.ValidateCode(ctx, code)
	if err != nil {
		return nil, err
	}
	cart.DiscountCode = &discount.Code

	return s.saveAndSummarize(ctx, sessionID, cart)
}

// RemoveDiscount takes the discount code off the cart
func (s *CartService) RemoveDiscount(ctx context.Context, sessionID string) (*business.CartSummary, error) {
	cart, err := s.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	cart.DiscountCode = nil

	return s.saveAndSummarize(ctx, sessionID, cart)
}

// Clear empties the cart
func (s *CartService) Clear(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return ErrMissingSessionID
	}
	if err := s.store.Clear(ctx, cartKey(sessionID)); err != nil {
		return fmt.Errorf("failed to clear cart: %w", err)
	}
	return nil
}

func (s *CartService) saveAndSummarize(ctx context.Context, sessionID string, cart *business.Cart) (*business.CartSummary, error) {
	if err := s.store.Put(ctx, cartKey(sessionID), cart); err != nil {
		return nil, fmt.Errorf("failed to save cart: %w", err)
	}
	return s.Summarize(ctx, *cart)
}

func cartKey(sessionID string) string {
	return SessionKey(constants.CartSessionPrefix, sessionID)
}

func sameLine(regimeID uuid.UUID, tier business.SubscriptionTier) func(business.CartItem) bool {
	return func(item business.CartItem) bool {
		return item.RegimeID == regimeID && item.Tier == tier
	}
}

func isDiscountRejection(err error) bool {
	return errors.Is(err, ErrDiscountNotFound) ||
		errors.Is(err, ErrDiscountInactive) ||
		errors.Is(err, ErrDiscountExhausted)
}

// orderItemsFromSummary freezes priced cart lines into order items
func orderItemsFromSummary(summary *business.CartSummary) []business.OrderItem {
	return lo.Map(summary.Lines, func(line business.CartLine, _ int) business.OrderItem {
		return business.OrderItem{
			RegimeID:        line.RegimeID,
			RegimeName:      line.RegimeName,
			Tier:            line.Tier,
			Quantity:        line.Quantity,
			UnitPrice:       line.Quote.OriginalPrice,
			DiscountedPrice: line.Quote.DiscountedPrice,
			DiscountPercent: line.Quote.DiscountPercent,
			DiscountReason:  line.Quote.DiscountReason,
			LineTotal:       line.LineTotal,
		}
	})
}
