package api

import (
	"atelier/internal/admin"
	"atelier/internal/api/mocks"
	"atelier/internal/apperr"
	"atelier/internal/identity"
	"atelier/internal/model"
	rl_mocks "atelier/internal/ratelimit/mocks"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const adminToken = "s3cret"

type testEnv struct {
	router  *chi.Mux
	store   *mocks.MockStorefront
	admin   *mocks.MockAdminActions
	limiter *rl_mocks.MockLimiter
}

// setupRouter - хелпер для сборки роутера с моками
func setupRouter(t *testing.T, withLimiter bool) *testEnv {
	ctrl := gomock.NewController(t)
	env := &testEnv{
		store: mocks.NewMockStorefront(ctrl),
		admin: mocks.NewMockAdminActions(ctrl),
	}
	deps := Deps{
		Store:          env.store,
		Admin:          env.admin,
		Identity:       identity.NewStaticTokenProvider(adminToken),
		MediaDir:       t.TempDir(),
		MediaPrefix:    "/uploads",
		MaxUploadBytes: 1 << 20,
	}
	if withLimiter {
		env.limiter = rl_mocks.NewMockLimiter(ctrl)
		deps.Limiter = env.limiter
	}
	env.router = NewServer("0", deps).router
	return env
}

func (e *testEnv) do(req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	e.router.ServeHTTP(rr, req)
	return rr
}

func jsonRequest(method, target string, body interface{}) *http.Request {
	var buf bytes.Buffer
	switch b := body.(type) {
	case string:
		buf.WriteString(b)
	default:
		json.NewEncoder(&buf).Encode(b)
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func decodeError(t *testing.T, rr *httptest.ResponseRecorder) errorResponse {
	var resp errorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	return resp
}

func TestSubmitCommission_Created(t *testing.T) {
	env := setupRouter(t, false)

	env.store.EXPECT().SubmitCommission(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, req model.CommissionRequest) (*model.SubmitResult, error) {
			assert.Equal(t, "Asha", req.Contact.Name)
			assert.Equal(t, model.SizeA3, req.Selection.Size)
			return &model.SubmitResult{TrackingCode: "CM-ABCD1234", ProvisionalAmount: 13500}, nil
		})

	body := `{"contact":{"name":"Asha","email":"asha@example.com","phone":"+919876543210"},
		"selection":{"size":"A3","medium":"Pencil","difficulty":"Hard","deadline":"Normal"}}`
	rr := env.do(jsonRequest(http.MethodPost, "/api/commissions", body))

	assert.Equal(t, http.StatusCreated, rr.Code)
	var res model.SubmitResult
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &res))
	assert.Equal(t, "CM-ABCD1234", res.TrackingCode)
	assert.Equal(t, int64(13500), res.ProvisionalAmount)
}

func TestSubmitCommission_BadJSON(t *testing.T) {
	env := setupRouter(t, false)
	env.store.EXPECT().SubmitCommission(gomock.Any(), gomock.Any()).Times(0)

	rr := env.do(jsonRequest(http.MethodPost, "/api/commissions", "{not json"))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, apperr.ErrInvalidRequest.Message, decodeError(t, rr).Error)
}

func TestSubmitCommission_ValidationErrorHasNoCode(t *testing.T) {
	env := setupRouter(t, false)
	env.store.EXPECT().SubmitCommission(gomock.Any(), gomock.Any()).
		Return(nil, fmt.Errorf("индекс %q: %w", "12", apperr.ErrInvalidPincode))

	rr := env.do(jsonRequest(http.MethodPost, "/api/commissions", `{}`))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	resp := decodeError(t, rr)
	assert.Equal(t, apperr.ErrInvalidPincode.Message, resp.Error)
	assert.Empty(t, resp.Code)
}

func TestCheckout_ErrorMapping(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"stock", apperr.ErrStockUnavailable, http.StatusConflict},
		{"drop expired", fmt.Errorf("art-1: %w", apperr.ErrDropExpired), http.StatusConflict},
		{"validation", apperr.ErrInvalidRequest, http.StatusBadRequest},
		{"internal", errors.New("pq: connection reset"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := setupRouter(t, false)
			env.store.EXPECT().Checkout(gomock.Any(), gomock.Any()).Return(nil, tt.err)

			rr := env.do(jsonRequest(http.MethodPost, "/api/checkout", model.CheckoutRequest{
				Name:    "Ravi Kumar",
				Email:   "ravi@example.com",
				Items:   []model.CartItem{{ArtworkID: "art-1", Quantity: 1}},
				Address: "Mumbai",
			}))

			assert.Equal(t, tt.status, rr.Code)
			assert.NotContains(t, rr.Body.String(), "pq:")
		})
	}
}

func TestCheckout_Created(t *testing.T) {
	env := setupRouter(t, false)
	env.store.EXPECT().Checkout(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, req model.CheckoutRequest) (*model.CheckoutResult, error) {
			require.Len(t, req.Items, 1)
			assert.Equal(t, "ART2026", req.CouponCode)
			return &model.CheckoutResult{TrackingCode: "AW-ABCD1234", TotalAmount: 10350}, nil
		})

	rr := env.do(jsonRequest(http.MethodPost, "/api/checkout", model.CheckoutRequest{
		Name:       "Ravi Kumar",
		Email:      "ravi@example.com",
		Items:      []model.CartItem{{ArtworkID: "art-1", Quantity: 2}},
		Address:    "Mumbai",
		CouponCode: "ART2026",
	}))

	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.Contains(t, rr.Body.String(), `"total_amount":10350`)
}

func multipartProof(t *testing.T, code, stage string, file []byte) *http.Request {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("tracking_code", code))
	require.NoError(t, mw.WriteField("stage", stage))
	if file != nil {
		fw, err := mw.CreateFormFile("file", "proof.png")
		require.NoError(t, err)
		fw.Write(file)
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/proofs", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestSubmitProof_Accepted(t *testing.T) {
	env := setupRouter(t, false)
	content := []byte("\x89PNG\r\n\x1a\nfake")

	env.store.EXPECT().SubmitProof(gomock.Any(), "CM-ABCD1234", model.StageAdvance, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, _ model.Stage, file io.Reader) (string, error) {
			got, err := io.ReadAll(file)
			require.NoError(t, err)
			assert.Equal(t, content, got)
			return "/uploads/proofs/x.png", nil
		})

	rr := env.do(multipartProof(t, "CM-ABCD1234", "advance", content))

	assert.Equal(t, http.StatusOK, rr.Code)
	var resp proofResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.True(t, resp.Accepted)
	assert.Equal(t, "/uploads/proofs/x.png", resp.Reference)
}

func TestSubmitProof_MissingFile(t *testing.T) {
	env := setupRouter(t, false)
	env.store.EXPECT().SubmitProof(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	rr := env.do(multipartProof(t, "CM-ABCD1234", "advance", nil))
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestSubmitProof_StateConflict(t *testing.T) {
	env := setupRouter(t, false)
	env.store.EXPECT().SubmitProof(gomock.Any(), "AW-ABCD1234", model.StageFinal, gomock.Any()).
		Return("", apperr.ErrInvalidTransition)

	rr := env.do(multipartProof(t, "AW-ABCD1234", "final", []byte("x")))
	assert.Equal(t, http.StatusConflict, rr.Code)
}

func TestTrack(t *testing.T) {
	env := setupRouter(t, false)
	total := int64(6500)
	env.store.EXPECT().TrackStatus(gomock.Any(), "CM-ABCD1234").
		Return(&model.Snapshot{TrackingCode: "CM-ABCD1234", Type: model.EntityCommission, Status: "pending", TotalAmount: &total}, nil)
	env.store.EXPECT().TrackStatus(gomock.Any(), "CM-NOPE").Return(nil, apperr.ErrNotFound)

	rr := env.do(httptest.NewRequest(http.MethodGet, "/api/track/CM-ABCD1234", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	var snap model.Snapshot
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &snap))
	assert.Equal(t, "pending", snap.Status)
	assert.Equal(t, int64(6500), *snap.TotalAmount)

	rr = env.do(httptest.NewRequest(http.MethodGet, "/api/track/CM-NOPE", nil))
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func adminRequest(method, target string, body interface{}, token string) *http.Request {
	var req *http.Request
	if body == nil {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = jsonRequest(method, target, body)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req
}

func TestAdminAction_PrincipalFromToken(t *testing.T) {
	env := setupRouter(t, false)
	action := admin.Action{Action: admin.ActionSendQuote, Target: "CM-ABCD1234", FinalTotal: 10000, AdvanceAmount: 3000}

	env.admin.EXPECT().Dispatch(gomock.Any(), action).DoAndReturn(func(ctx context.Context, _ admin.Action) error {
		assert.True(t, identity.FromContext(ctx).IsAdmin())
		return nil
	})

	rr := env.do(adminRequest(http.MethodPost, "/api/admin/actions", action, adminToken))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"ok":true`)
}

func TestAdminAction_WrongTokenIsForbidden(t *testing.T) {
	env := setupRouter(t, false)

	env.admin.EXPECT().Dispatch(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, _ admin.Action) error {
		if !identity.FromContext(ctx).IsAdmin() {
			return apperr.ErrForbidden
		}
		return nil
	})

	rr := env.do(adminRequest(http.MethodPost, "/api/admin/actions", admin.Action{Action: admin.ActionDeliver, Target: "AW-1"}, "guess"))
	assert.Equal(t, http.StatusForbidden, rr.Code)
	assert.Equal(t, "Forbidden", decodeError(t, rr).Code)
}

func TestAdminAction_ErrorCarriesCode(t *testing.T) {
	env := setupRouter(t, false)
	env.admin.EXPECT().Dispatch(gomock.Any(), gomock.Any()).
		Return(fmt.Errorf("CM-1 advance: %w", apperr.ErrAlreadyDecided))

	rr := env.do(adminRequest(http.MethodPost, "/api/admin/actions", admin.Action{
		Action: admin.ActionDecidePayment, Target: "CM-1", Stage: model.StageAdvance, Outcome: model.OutcomeApprove,
	}, adminToken))

	assert.Equal(t, http.StatusConflict, rr.Code)
	resp := decodeError(t, rr)
	assert.Equal(t, "AlreadyDecided", resp.Code)
	assert.Contains(t, resp.Details, "CM-1 advance")
}

func TestAdminAction_InternalErrorHidesDetails(t *testing.T) {
	env := setupRouter(t, false)
	env.admin.EXPECT().Dispatch(gomock.Any(), gomock.Any()).Return(errors.New("pq: deadlock detected"))

	rr := env.do(adminRequest(http.MethodPost, "/api/admin/actions", admin.Action{Action: admin.ActionDeliver, Target: "AW-1"}, adminToken))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	resp := decodeError(t, rr)
	assert.Equal(t, "Internal", resp.Code)
	assert.Empty(t, resp.Details)
}

func TestAdminAction_RateLimited(t *testing.T) {
	env := setupRouter(t, true)
	env.limiter.EXPECT().Allow(gomock.Any(), "admin:192.0.2.1").Return(false, nil)
	env.admin.EXPECT().Dispatch(gomock.Any(), gomock.Any()).Times(0)

	rr := env.do(adminRequest(http.MethodPost, "/api/admin/actions", admin.Action{Action: admin.ActionDeliver, Target: "AW-1"}, adminToken))

	assert.Equal(t, http.StatusTooManyRequests, rr.Code)
	assert.Equal(t, "TooManyRequests", decodeError(t, rr).Code)
}

func TestAdminAction_LimiterAllows(t *testing.T) {
	env := setupRouter(t, true)
	env.limiter.EXPECT().Allow(gomock.Any(), gomock.Any()).Return(true, nil)
	env.admin.EXPECT().Dispatch(gomock.Any(), gomock.Any()).Return(nil)

	rr := env.do(adminRequest(http.MethodPost, "/api/admin/actions", admin.Action{Action: admin.ActionDeliver, Target: "AW-1"}, adminToken))
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestAdminVerifications(t *testing.T) {
	env := setupRouter(t, false)
	env.admin.EXPECT().PendingVerifications(gomock.Any()).Return(nil, nil)

	rr := env.do(adminRequest(http.MethodGet, "/api/admin/verifications", nil, adminToken))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "[]", strings.TrimSpace(rr.Body.String()))
}

func TestMetricsEndpoint(t *testing.T) {
	env := setupRouter(t, false)

	rr := env.do(httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestUploadsAreServed(t *testing.T) {
	ctrl := gomock.NewController(t)
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "proofs"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "proofs", "p.png"), []byte("png"), 0o644))

	router := NewServer("0", Deps{
		Store:       mocks.NewMockStorefront(ctrl),
		Admin:       mocks.NewMockAdminActions(ctrl),
		Identity:    identity.NewStaticTokenProvider(adminToken),
		MediaDir:    dir,
		MediaPrefix: "/uploads",
	}).router

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/uploads/proofs/p.png", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "png", rr.Body.String())
}
