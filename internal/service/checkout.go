package service

import (
	"atelier/internal/apperr"
	"atelier/internal/database"
	"atelier/internal/metrics"
	"atelier/internal/model"
	"atelier/internal/notify"
	"atelier/internal/pricing"
	"atelier/internal/validator"
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"strings"

	"github.com/google/uuid"
)

// Checkout резервирует товар и создает заказ в одной транзакции.
// Строки работ блокируются от проверки остатка до списания, поэтому два
// покупателя последнего экземпляра не могут купить его оба.
func (s *Service) Checkout(ctx context.Context, req model.CheckoutRequest) (*model.CheckoutResult, error) {
	ctx, span := s.tracer.Start(ctx, "Service.Checkout")
	defer span.End()

	if err := validator.Check(&req); err != nil {
		return nil, err
	}

	items := mergeCart(req.Items)
	var order *model.StoreOrder

	err := s.storage.InTx(ctx, func(tx database.Tx) error {
		now := s.now()
		lines := make([]model.LineItem, 0, len(items))
		var total, units int64

		for _, item := range items {
			art, err := tx.LockArtwork(ctx, item.ArtworkID)
			if err != nil {
				if errors.Is(err, apperr.ErrNotFound) {
					return fmt.Errorf("работа %s не найдена: %w", item.ArtworkID, apperr.ErrStockUnavailable)
				}
				return err
			}
			if art.StockCount < item.Quantity {
				return fmt.Errorf("%q: в наличии %d, запрошено %d: %w", art.Title, art.StockCount, item.Quantity, apperr.ErrStockUnavailable)
			}
			if art.DropExpired(now) {
				return fmt.Errorf("%q: %w", art.Title, apperr.ErrDropExpired)
			}
			if err := tx.AdjustStock(ctx, art.ID, -item.Quantity); err != nil {
				return err
			}

			lines = append(lines, model.LineItem{ArtworkID: art.ID, Quantity: item.Quantity, PriceAtPurchase: art.Price})
			total += art.Price * int64(item.Quantity)
			units += int64(item.Quantity)
		}

		var discount int64
		var couponCode string
		if code := strings.TrimSpace(req.CouponCode); code != "" {
			coupon, err := tx.GetCoupon(ctx, strings.ToUpper(code))
			switch {
			case err == nil && coupon.Active:
				discount = pricing.Discount(total, coupon.PercentOff)
				couponCode = coupon.Code
			case err != nil && !errors.Is(err, apperr.ErrNotFound):
				return err
			}
		}
		total -= discount
		advance := total / 2

		order = &model.StoreOrder{
			ID:              uuid.NewString(),
			TrackingCode:    model.NewOrderCode(),
			UserID:          req.UserID,
			BuyerName:       strings.TrimSpace(req.Name),
			BuyerEmail:      strings.TrimSpace(req.Email),
			Items:           lines,
			TotalAmount:     total,
			DiscountAmount:  discount,
			AdvanceAmount:   advance,
			RemainingAmount: total - advance,
			CouponCode:      couponCode,
			Phase:           model.PhaseAdvancePending,
			ShippingAddress: req.Address,
			AdvanceStatus:   model.VerificationNone,
			FinalStatus:     model.VerificationNone,
			CreatedAt:       now,
			UpdatedAt:       now,
		}
		if err := tx.InsertOrder(ctx, order); err != nil {
			return err
		}
		metrics.UnitsReserved.Add(float64(units))
		return nil
	})
	if err != nil {
		metrics.CheckoutsTotal.WithLabelValues(checkoutResult(err)).Inc()
		return nil, err
	}
	metrics.CheckoutsTotal.WithLabelValues("success").Inc()
	log.Printf("Заказ %s оформлен на сумму %d", order.TrackingCode, order.TotalAmount)

	for _, audience := range []notify.Audience{notify.AudienceCustomer, notify.AudienceAdmin} {
		ev := orderEvent(notify.EventOrderPlaced, audience, order)
		ev.Amount = order.TotalAmount
		if audience == notify.AudienceCustomer {
			ev.Amount = order.AdvanceAmount
			ev.FinalTotal = order.TotalAmount
			ev.RemainingAmount = order.RemainingAmount
		}
		s.notifier.Notify(ctx, ev)
	}

	return &model.CheckoutResult{TrackingCode: order.TrackingCode, TotalAmount: order.TotalAmount}, nil
}

// mergeCart объединяет повторяющиеся позиции и сортирует их по id работы.
// Единый порядок блокировок исключает взаимоблокировку пересекающихся корзин.
func mergeCart(items []model.CartItem) []model.CartItem {
	qty := make(map[string]int, len(items))
	for _, it := range items {
		qty[it.ArtworkID] += it.Quantity
	}
	merged := make([]model.CartItem, 0, len(qty))
	for id, q := range qty {
		merged = append(merged, model.CartItem{ArtworkID: id, Quantity: q})
	}
	sort.Slice(merged, func(i, j int) bool { return merged[i].ArtworkID < merged[j].ArtworkID })
	return merged
}

func checkoutResult(err error) string {
	switch {
	case errors.Is(err, apperr.ErrStockUnavailable):
		return "stock_unavailable"
	case errors.Is(err, apperr.ErrDropExpired):
		return "drop_expired"
	case apperr.KindOf(err) == apperr.KindValidation:
		return "invalid"
	default:
		return "error"
	}
}
