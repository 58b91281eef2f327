package service

import (
	"atelier/internal/apperr"
	"atelier/internal/database"
	"atelier/internal/model"
	"context"
	"fmt"
	"sync"
)

// memStore - хранилище в памяти. Транзакции выполняются строго по одной,
// что эквивалентно построчным блокировкам для проверяемых сценариев.
// При ошибке состояние восстанавливается из копии, снятой в начале транзакции.
type memStore struct {
	mu          sync.Mutex
	artworks    map[string]model.Artwork
	coupons     map[string]model.Coupon
	commissions map[string]model.Commission
	orders      map[string]model.StoreOrder
	pricing     map[string]string
	insertErr   error
}

func newMemStore() *memStore {
	return &memStore{
		artworks:    map[string]model.Artwork{},
		coupons:     map[string]model.Coupon{},
		commissions: map[string]model.Commission{},
		orders:      map[string]model.StoreOrder{},
		pricing:     map[string]string{},
	}
}

type memState struct {
	artworks    map[string]model.Artwork
	commissions map[string]model.Commission
	orders      map[string]model.StoreOrder
}

func (s *memStore) snapshot() memState {
	st := memState{
		artworks:    make(map[string]model.Artwork, len(s.artworks)),
		commissions: make(map[string]model.Commission, len(s.commissions)),
		orders:      make(map[string]model.StoreOrder, len(s.orders)),
	}
	for k, v := range s.artworks {
		st.artworks[k] = v
	}
	for k, v := range s.commissions {
		st.commissions[k] = v
	}
	for k, v := range s.orders {
		v.Items = append([]model.LineItem(nil), v.Items...)
		st.orders[k] = v
	}
	return st
}

func (s *memStore) restore(st memState) {
	s.artworks, s.commissions, s.orders = st.artworks, st.commissions, st.orders
}

func (s *memStore) InTx(_ context.Context, fn func(tx database.Tx) error) (err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	saved := s.snapshot()
	defer func() {
		if p := recover(); p != nil {
			s.restore(saved)
			panic(p)
		}
		if err != nil {
			s.restore(saved)
		}
	}()
	return fn(&memTx{s: s})
}

func (s *memStore) CreateCommission(_ context.Context, c *model.Commission) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.commissions[c.TrackingCode] = *c
	return nil
}

func (s *memStore) GetCommission(_ context.Context, ref string) (*model.Commission, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.findCommission(ref)
}

func (s *memStore) GetOrder(_ context.Context, ref string) (*model.StoreOrder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.findOrder(ref)
}

func (s *memStore) GetPricingConfig(context.Context) (map[string]string, error) {
	return s.pricing, nil
}

func (s *memStore) ListPendingVerifications(context.Context) ([]model.PendingVerification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []model.PendingVerification
	for _, c := range s.commissions {
		for _, stage := range []model.Stage{model.StageAdvance, model.StageFinal} {
			if p := c.Stage(stage); p.Status == model.VerificationUnderReview {
				out = append(out, model.PendingVerification{TrackingCode: c.TrackingCode, Type: model.EntityCommission, Stage: stage, ProofRef: p.ProofRef})
			}
		}
	}
	for _, o := range s.orders {
		for _, stage := range []model.Stage{model.StageAdvance, model.StageFinal} {
			if p := o.Stage(stage); p.Status == model.VerificationUnderReview {
				out = append(out, model.PendingVerification{TrackingCode: o.TrackingCode, Type: model.EntityOrder, Stage: stage, ProofRef: p.ProofRef})
			}
		}
	}
	return out, nil
}

func (s *memStore) ActiveCommissions(context.Context, int) ([]model.Commission, error) { return nil, nil }
func (s *memStore) ActiveOrders(context.Context, int) ([]model.StoreOrder, error)     { return nil, nil }
func (s *memStore) Close() error                                                      { return nil }

func (s *memStore) findCommission(ref string) (*model.Commission, error) {
	for _, c := range s.commissions {
		if c.TrackingCode == ref || c.ID == ref {
			cp := c
			return &cp, nil
		}
	}
	return nil, fmt.Errorf("заявка %s: %w", ref, apperr.ErrNotFound)
}

func (s *memStore) findOrder(ref string) (*model.StoreOrder, error) {
	for _, o := range s.orders {
		if o.TrackingCode == ref || o.ID == ref {
			cp := o
			cp.Items = append([]model.LineItem(nil), o.Items...)
			return &cp, nil
		}
	}
	return nil, fmt.Errorf("заказ %s: %w", ref, apperr.ErrNotFound)
}

func (s *memStore) stock(id string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.artworks[id].StockCount
}

// memTx работает под мьютексом, захваченным в InTx.
type memTx struct {
	s *memStore
}

func (t *memTx) LockArtwork(_ context.Context, id string) (*model.Artwork, error) {
	art, ok := t.s.artworks[id]
	if !ok {
		return nil, fmt.Errorf("работа %s: %w", id, apperr.ErrNotFound)
	}
	return &art, nil
}

func (t *memTx) AdjustStock(_ context.Context, id string, delta int) error {
	art, ok := t.s.artworks[id]
	if !ok || art.StockCount+delta < 0 {
		return fmt.Errorf("работа %s: %w", id, apperr.ErrStockUnavailable)
	}
	art.StockCount += delta
	t.s.artworks[id] = art
	return nil
}

func (t *memTx) GetCoupon(_ context.Context, code string) (*model.Coupon, error) {
	c, ok := t.s.coupons[code]
	if !ok {
		return nil, fmt.Errorf("купон %s: %w", code, apperr.ErrNotFound)
	}
	return &c, nil
}

func (t *memTx) InsertOrder(_ context.Context, o *model.StoreOrder) error {
	if t.s.insertErr != nil {
		return t.s.insertErr
	}
	cp := *o
	cp.Items = append([]model.LineItem(nil), o.Items...)
	t.s.orders[o.TrackingCode] = cp
	return nil
}

func (t *memTx) LockCommission(_ context.Context, ref string) (*model.Commission, error) {
	return t.s.findCommission(ref)
}

func (t *memTx) UpdateCommission(_ context.Context, c *model.Commission) error {
	t.s.commissions[c.TrackingCode] = *c
	return nil
}

func (t *memTx) LockOrder(_ context.Context, ref string) (*model.StoreOrder, error) {
	return t.s.findOrder(ref)
}

func (t *memTx) UpdateOrder(_ context.Context, o *model.StoreOrder) error {
	cp := *o
	cp.Items = append([]model.LineItem(nil), o.Items...)
	t.s.orders[o.TrackingCode] = cp
	return nil
}
