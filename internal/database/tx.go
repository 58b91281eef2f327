package database

import (
	"atelier/internal/apperr"
	"atelier/internal/metrics"
	"atelier/internal/model"
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
)

const commissionColumns = `id, tracking_code, customer_name, customer_email, customer_phone, size, medium, difficulty, deadline, ` +
	`reference_image, notes, calculated_price, final_total, advance_amount, remaining_amount, ` +
	`requires_delivery, shipping_address, shipping_city, shipping_state, shipping_pincode, shipping_country, ` +
	`shipping_landmark, shipping_phone, status, payment_status, advance_payment_status, advance_proof, ` +
	`advance_rejection, final_payment_status, final_proof, final_rejection, cancel_reason, created_at, updated_at`

const orderColumns = `id, tracking_code, user_id, buyer_name, buyer_email, total_amount, discount_amount, advance_amount, remaining_amount, ` +
	`coupon_code, payment_phase, shipping_address, courier_name, courier_tracking_code, ` +
	`advance_payment_status, advance_proof, advance_rejection, final_payment_status, final_proof, final_rejection, ` +
	`cancel_reason, created_at, updated_at`

const (
	refFilter             = ` WHERE tracking_code = $1 OR id::text = $1`
	selectCommissionQuery = `SELECT ` + commissionColumns + ` FROM commissions` + refFilter
	lockCommissionQuery   = selectCommissionQuery + ` FOR UPDATE`
	selectOrderQuery      = `SELECT ` + orderColumns + ` FROM orders` + refFilter
	lockOrderQuery        = selectOrderQuery + ` FOR UPDATE`
	selectItemsQuery      = `SELECT id, order_id, artwork_id, quantity, price_at_purchase FROM order_items WHERE order_id = $1 ORDER BY id`

	lockArtworkQuery = `SELECT id, title, price, stock_count, is_limited_drop, drop_end_time FROM artworks WHERE id = $1 FOR UPDATE`
	adjustStockQuery = `UPDATE artworks SET stock_count = stock_count + $1 WHERE id = $2 AND stock_count + $1 >= 0`
	getCouponQuery   = `SELECT code, percent_off, active FROM coupons WHERE code = $1`

	insertOrderQuery = `INSERT INTO orders (id, tracking_code, user_id, buyer_name, buyer_email, total_amount, discount_amount, ` +
		`advance_amount, remaining_amount, coupon_code, payment_phase, status, shipping_address, advance_payment_status, ` +
		`final_payment_status, created_at, updated_at) ` +
		`VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`
	insertItemQuery = `INSERT INTO order_items (order_id, artwork_id, quantity, price_at_purchase) VALUES ($1, $2, $3, $4) RETURNING id`

	updateCommissionQuery = `UPDATE commissions SET final_total = $1, advance_amount = $2, remaining_amount = $3, status = $4, ` +
		`payment_status = $5, advance_payment_status = $6, advance_proof = $7, advance_rejection = $8, ` +
		`final_payment_status = $9, final_proof = $10, final_rejection = $11, cancel_reason = $12, updated_at = $13 WHERE id = $14`
	updateOrderQuery = `UPDATE orders SET payment_phase = $1, status = $2, courier_name = $3, courier_tracking_code = $4, ` +
		`advance_payment_status = $5, advance_proof = $6, advance_rejection = $7, final_payment_status = $8, ` +
		`final_proof = $9, final_rejection = $10, cancel_reason = $11, updated_at = $12 WHERE id = $13`
)

// postgresTx реализует Tx поверх открытой транзакции sqlx.
type postgresTx struct {
	tx *sqlx.Tx
}

// LockArtwork блокирует строку работы до конца транзакции. Конкурентные
// покупатели той же работы ждут здесь, пока первая транзакция не завершится.
func (t *postgresTx) LockArtwork(ctx context.Context, id string) (*model.Artwork, error) {
	var art model.Artwork
	if err := t.tx.GetContext(ctx, &art, lockArtworkQuery, id); err != nil {
		return nil, notFound(err, "работа", id)
	}
	return &art, nil
}

// AdjustStock меняет остаток на delta. Остаток не может стать отрицательным.
func (t *postgresTx) AdjustStock(ctx context.Context, artworkID string, delta int) error {
	res, err := t.tx.ExecContext(ctx, adjustStockQuery, delta, artworkID)
	if err != nil {
		metrics.DBErrors.WithLabelValues("adjust_stock").Inc()
		return fmt.Errorf("ошибка изменения остатка %s: %w", artworkID, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка изменения остатка %s: %w", artworkID, err)
	}
	if affected == 0 {
		return fmt.Errorf("работа %s: %w", artworkID, apperr.ErrStockUnavailable)
	}
	return nil
}

// GetCoupon возвращает купон или ErrNotFound.
func (t *postgresTx) GetCoupon(ctx context.Context, code string) (*model.Coupon, error) {
	var c model.Coupon
	if err := t.tx.GetContext(ctx, &c, getCouponQuery, code); err != nil {
		return nil, notFound(err, "купон", code)
	}
	return &c, nil
}

// InsertOrder сохраняет заказ и все его позиции.
func (t *postgresTx) InsertOrder(ctx context.Context, o *model.StoreOrder) error {
	if _, err := t.tx.ExecContext(ctx, insertOrderQuery,
		o.ID, o.TrackingCode, o.UserID, o.BuyerName, o.BuyerEmail, o.TotalAmount, o.DiscountAmount, o.AdvanceAmount, o.RemainingAmount,
		o.CouponCode, o.Phase, o.Status(), o.ShippingAddress, o.AdvanceStatus, o.FinalStatus, o.CreatedAt, o.UpdatedAt,
	); err != nil {
		metrics.DBErrors.WithLabelValues("insert_order").Inc()
		return fmt.Errorf("ошибка сохранения заказа: %w", err)
	}

	for i := range o.Items {
		item := &o.Items[i]
		item.OrderID = o.ID
		if err := t.tx.GetContext(ctx, &item.ID, insertItemQuery, o.ID, item.ArtworkID, item.Quantity, item.PriceAtPurchase); err != nil {
			metrics.DBErrors.WithLabelValues("insert_item").Inc()
			return fmt.Errorf("ошибка сохранения позиции заказа: %w", err)
		}
	}
	return nil
}

// LockCommission читает заявку с блокировкой строки.
func (t *postgresTx) LockCommission(ctx context.Context, ref string) (*model.Commission, error) {
	return getCommission(ctx, t.tx, lockCommissionQuery, ref)
}

// UpdateCommission записывает изменяемые поля заявки.
func (t *postgresTx) UpdateCommission(ctx context.Context, c *model.Commission) error {
	if _, err := t.tx.ExecContext(ctx, updateCommissionQuery,
		c.FinalTotal, c.AdvanceAmount, c.RemainingAmount, c.Status,
		c.PaymentStatus, c.AdvanceStatus, c.AdvanceProof, c.AdvanceRejection,
		c.FinalStatus, c.FinalProof, c.FinalRejection, c.CancelReason, c.UpdatedAt, c.ID,
	); err != nil {
		metrics.DBErrors.WithLabelValues("update_commission").Inc()
		return fmt.Errorf("ошибка обновления заявки %s: %w", c.TrackingCode, err)
	}
	return nil
}

// LockOrder читает заказ с блокировкой строки вместе с позициями.
func (t *postgresTx) LockOrder(ctx context.Context, ref string) (*model.StoreOrder, error) {
	return getOrder(ctx, t.tx, lockOrderQuery, ref)
}

// UpdateOrder записывает изменяемые поля заказа. Грубый статус пишется
// из фазы, чтобы отчеты могли фильтровать по нему без пересчета.
func (t *postgresTx) UpdateOrder(ctx context.Context, o *model.StoreOrder) error {
	if _, err := t.tx.ExecContext(ctx, updateOrderQuery,
		o.Phase, o.Status(), o.CourierName, o.CourierTracking,
		o.AdvanceStatus, o.AdvanceProof, o.AdvanceRejection, o.FinalStatus,
		o.FinalProof, o.FinalRejection, o.CancelReason, o.UpdatedAt, o.ID,
	); err != nil {
		metrics.DBErrors.WithLabelValues("update_order").Inc()
		return fmt.Errorf("ошибка обновления заказа %s: %w", o.TrackingCode, err)
	}
	return nil
}

func getCommission(ctx context.Context, q sqlx.QueryerContext, query, ref string) (*model.Commission, error) {
	var c model.Commission
	if err := sqlx.GetContext(ctx, q, &c, query, ref); err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			metrics.DBErrors.WithLabelValues("get_commission").Inc()
		}
		return nil, notFound(err, "заявка", ref)
	}
	return &c, nil
}

func getOrder(ctx context.Context, q sqlx.QueryerContext, query, ref string) (*model.StoreOrder, error) {
	var o model.StoreOrder
	if err := sqlx.GetContext(ctx, q, &o, query, ref); err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			metrics.DBErrors.WithLabelValues("get_order").Inc()
		}
		return nil, notFound(err, "заказ", ref)
	}

	if err := sqlx.SelectContext(ctx, q, &o.Items, selectItemsQuery, o.ID); err != nil {
		metrics.DBErrors.WithLabelValues("get_items").Inc()
		return nil, fmt.Errorf("не удалось получить позиции заказа: %w", err)
	}
	return &o, nil
}
