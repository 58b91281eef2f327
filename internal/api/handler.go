package api

import (
	"atelier/internal/admin"
	"atelier/internal/apperr"
	"atelier/internal/model"
	"context"
	"io"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
)

//go:generate mockgen -source=handler.go -destination=./mocks/service_mock.go -package=mocks Storefront,AdminActions

// Storefront - операции, доступные покупателю.
type Storefront interface {
	SubmitCommission(ctx context.Context, req model.CommissionRequest) (*model.SubmitResult, error)
	Checkout(ctx context.Context, req model.CheckoutRequest) (*model.CheckoutResult, error)
	SubmitProof(ctx context.Context, trackingCode string, stage model.Stage, file io.Reader) (string, error)
	TrackStatus(ctx context.Context, trackingCode string) (*model.Snapshot, error)
}

// AdminActions - точка входа административных действий.
type AdminActions interface {
	Dispatch(ctx context.Context, a admin.Action) error
	PendingVerifications(ctx context.Context) ([]model.PendingVerification, error)
}

// StoreHandler обрабатывает запросы покупателей.
type StoreHandler struct {
	svc       Storefront
	maxUpload int64
}

func NewStoreHandler(svc Storefront, maxUpload int64) *StoreHandler {
	return &StoreHandler{svc: svc, maxUpload: maxUpload}
}

// SubmitCommission принимает заявку на портрет.
func (h *StoreHandler) SubmitCommission(w http.ResponseWriter, r *http.Request) {
	var req model.CommissionRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondWithError(w, err, false)
		return
	}

	res, err := h.svc.SubmitCommission(r.Context(), req)
	if err != nil {
		respondWithError(w, err, false)
		return
	}
	respondWithJSON(w, http.StatusCreated, res)
}

// Checkout оформляет заказ из корзины.
func (h *StoreHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	var req model.CheckoutRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondWithError(w, err, false)
		return
	}

	res, err := h.svc.Checkout(r.Context(), req)
	if err != nil {
		respondWithError(w, err, false)
		return
	}
	respondWithJSON(w, http.StatusCreated, res)
}

type proofResponse struct {
	Accepted  bool   `json:"accepted"`
	Reference string `json:"reference"`
}

// SubmitProof принимает скриншот оплаты (multipart: tracking_code, stage, file).
func (h *StoreHandler) SubmitProof(w http.ResponseWriter, r *http.Request) {
	// Запас в 1 МБ на остальные поля формы.
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUpload+1<<20)
	if err := r.ParseMultipartForm(h.maxUpload); err != nil {
		respondWithError(w, apperr.ErrInvalidRequest, false)
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, _, err := r.FormFile("file")
	if err != nil {
		respondWithError(w, apperr.ErrInvalidRequest, false)
		return
	}
	defer file.Close()

	code := r.FormValue("tracking_code")
	stage := model.Stage(r.FormValue("stage"))
	ref, err := h.svc.SubmitProof(r.Context(), code, stage, file)
	if err != nil {
		respondWithError(w, err, false)
		return
	}
	log.Printf("Подтверждение оплаты для %s (%s) сохранено: %s", code, stage, ref)
	respondWithJSON(w, http.StatusOK, proofResponse{Accepted: true, Reference: ref})
}

// Track возвращает текущее состояние заявки или заказа.
func (h *StoreHandler) Track(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "trackingCode")
	if code == "" {
		respondWithError(w, apperr.ErrInvalidRequest, false)
		return
	}

	snap, err := h.svc.TrackStatus(r.Context(), code)
	if err != nil {
		respondWithError(w, err, false)
		return
	}
	respondWithJSON(w, http.StatusOK, snap)
}

// AdminHandler обрабатывает запросы администратора.
type AdminHandler struct {
	admin AdminActions
}

func NewAdminHandler(a AdminActions) *AdminHandler {
	return &AdminHandler{admin: a}
}

type actionResponse struct {
	OK     bool             `json:"ok"`
	Action admin.ActionType `json:"action"`
	Target string           `json:"target"`
}

// Action выполняет административное действие.
func (h *AdminHandler) Action(w http.ResponseWriter, r *http.Request) {
	var a admin.Action
	if err := decodeJSON(w, r, &a); err != nil {
		respondWithError(w, err, true)
		return
	}

	if err := h.admin.Dispatch(r.Context(), a); err != nil {
		respondWithError(w, err, true)
		return
	}
	respondWithJSON(w, http.StatusOK, actionResponse{OK: true, Action: a.Action, Target: a.Target})
}

// Verifications возвращает очередь проверки оплат.
func (h *AdminHandler) Verifications(w http.ResponseWriter, r *http.Request) {
	items, err := h.admin.PendingVerifications(r.Context())
	if err != nil {
		respondWithError(w, err, true)
		return
	}
	if items == nil {
		items = []model.PendingVerification{}
	}
	respondWithJSON(w, http.StatusOK, items)
}
