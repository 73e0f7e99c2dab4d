package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goliatone/go-admin-console/components/admin"
	"github.com/goliatone/go-admin-console/components/admin/commands"
	"github.com/goliatone/go-admin-console/components/collection"
	"github.com/goliatone/go-admin-console/components/entities/orders"
	"github.com/goliatone/go-admin-console/components/entities/products"
)

func newOrdersAPI(t *testing.T) (*Handlers[orders.Order], *admin.Workspace) {
	t.Helper()
	sessions := admin.NewSessions(admin.SessionsOptions{})
	w := sessions.Create(context.Background())
	return NewHandlers(sessions.OrdersResolver(), nil), w
}

func decodeView[T any](t *testing.T, rec *httptest.ResponseRecorder) struct {
	Records []T                     `json:"records"`
	Session collection.SessionState `json:"session"`
} {
	t.Helper()
	var view struct {
		Records []T                     `json:"records"`
		Session collection.SessionState `json:"session"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &view))
	return view
}

func TestStatusMapping(t *testing.T) {
	cases := []struct {
		err    error
		status int
	}{
		{nil, http.StatusOK},
		{commands.ErrNotFound, http.StatusOK},
		{collection.Invalid("Total must be greater than 0."), http.StatusUnprocessableEntity},
		{errors.Join(ErrBadRequest, errors.New("eof")), http.StatusBadRequest},
		{collection.ErrUnknownField, http.StatusBadRequest},
		{collection.ErrInvalidValue, http.StatusBadRequest},
		{admin.ErrUnknownSession, http.StatusNotFound},
		{admin.ErrUnknownCollection, http.StatusNotFound},
		{collection.ErrNoDraft, http.StatusConflict},
		{errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.status, Status(tc.err), "%v", tc.err)
	}
}

func TestHandleOrderDraftFlow(t *testing.T) {
	api, w := newOrdersAPI(t)

	rec := httptest.NewRecorder()
	api.HandleBeginDraft(rec, httptest.NewRequest(http.MethodPost, "/draft", nil), w.ID)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, collection.ModeAdding, decodeView[orders.Order](t, rec).Session.Mode)

	for _, body := range []string{
		`{"field":"id","value":"3"}`,
		`{"field":"user","value":"Kai"}`,
		`{"field":"date","value":"2024-01-01"}`,
		`{"field":"total","value":"-5"}`,
	} {
		rec = httptest.NewRecorder()
		api.HandleUpdateDraft(rec, httptest.NewRequest(http.MethodPatch, "/draft", strings.NewReader(body)), w.ID)
		require.Equal(t, http.StatusOK, rec.Code)
	}

	rec = httptest.NewRecorder()
	api.HandleCommitDraft(rec, httptest.NewRequest(http.MethodPost, "/draft/commit", nil), w.ID)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.JSONEq(t, `{"error":"Total must be greater than 0."}`, rec.Body.String())
	assert.Len(t, w.Orders.Records(), 2)

	rec = httptest.NewRecorder()
	api.HandleUpdateDraft(rec, httptest.NewRequest(http.MethodPatch, "/draft", strings.NewReader(`{"field":"total","value":"5"}`)), w.ID)
	require.Equal(t, http.StatusOK, rec.Code)
	rec = httptest.NewRecorder()
	api.HandleCommitDraft(rec, httptest.NewRequest(http.MethodPost, "/draft/commit", nil), w.ID)
	require.Equal(t, http.StatusOK, rec.Code)
	view := decodeView[orders.Order](t, rec)
	assert.Len(t, view.Records, 3)
	assert.Equal(t, collection.ModeIdle, view.Session.Mode)
}

func TestHandleUpdateWithoutDraft(t *testing.T) {
	api, w := newOrdersAPI(t)
	rec := httptest.NewRecorder()

	api.HandleUpdateDraft(rec, httptest.NewRequest(http.MethodPatch, "/draft", strings.NewReader(`{"field":"user","value":"x"}`)), w.ID)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestHandleMalformedJSON(t *testing.T) {
	api, w := newOrdersAPI(t)
	rec := httptest.NewRecorder()

	api.HandleTransitionRecord(rec, httptest.NewRequest(http.MethodPatch, "/records/1", strings.NewReader(`{"field":`)), w.ID, 1)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleTransitionAndRemove(t *testing.T) {
	api, w := newOrdersAPI(t)

	rec := httptest.NewRecorder()
	api.HandleTransitionRecord(rec, httptest.NewRequest(http.MethodPatch, "/records/2", strings.NewReader(`{"field":"status","value":"Delivered"}`)), w.ID, 2)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, orders.StatusDelivered, w.Orders.Records()[1].Status)

	rec = httptest.NewRecorder()
	api.HandleTransitionRecord(rec, httptest.NewRequest(http.MethodPatch, "/records/2", strings.NewReader(`{"field":"status","value":"Lost"}`)), w.ID, 2)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = httptest.NewRecorder()
	api.HandleRemoveRecord(rec, httptest.NewRequest(http.MethodDelete, "/records/9", nil), w.ID, 9)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"noop"}`, rec.Body.String())

	rec = httptest.NewRecorder()
	api.HandleRemoveRecord(rec, httptest.NewRequest(http.MethodDelete, "/records/1", nil), w.ID, 1)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeView[orders.Order](t, rec).Records, 1)
}

func TestHandleListFilters(t *testing.T) {
	sessions := admin.NewSessions(admin.SessionsOptions{})
	w := sessions.Create(context.Background())
	api := NewHandlers(sessions.ProductsResolver(), nil)

	rec := httptest.NewRecorder()
	api.HandleList(rec, httptest.NewRequest(http.MethodGet, "/products?search=PRODUCT%201", nil), w.ID)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeView[products.Product](t, rec).Records, 1)

	rec = httptest.NewRecorder()
	api.HandleList(rec, httptest.NewRequest(http.MethodGet, "/products", nil), w.ID)
	assert.Len(t, decodeView[products.Product](t, rec).Records, 1)

	rec = httptest.NewRecorder()
	api.HandleList(rec, httptest.NewRequest(http.MethodGet, "/products?category=", nil), w.ID)
	assert.Len(t, decodeView[products.Product](t, rec).Records, 2)
}

func TestHandleUnknownSession(t *testing.T) {
	api, _ := newOrdersAPI(t)
	rec := httptest.NewRecorder()

	api.HandleList(rec, httptest.NewRequest(http.MethodGet, "/orders", nil), "missing")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandleCancelKeepsStore(t *testing.T) {
	api, w := newOrdersAPI(t)
	before := w.Orders.Records()

	rec := httptest.NewRecorder()
	api.HandleBeginDraft(rec, httptest.NewRequest(http.MethodPost, "/draft", strings.NewReader(`{"id":1}`)), w.ID)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, decodeView[orders.Order](t, rec).Session.EditingID)

	rec = httptest.NewRecorder()
	api.HandleCancelDraft(rec, httptest.NewRequest(http.MethodDelete, "/draft", nil), w.ID)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, before, w.Orders.Records())
}
