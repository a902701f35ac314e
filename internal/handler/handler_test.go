package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cashflow-api/internal/i18n"
	"cashflow-api/internal/middleware"
	"cashflow-api/internal/model"
	"cashflow-api/internal/validation"
	"cashflow-api/pkg/apierror"
)

var testNow = time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)

func testValidator() *validation.Validator {
	return validation.NewWithClock(func() time.Time { return testNow })
}

type fakeLogin struct {
	result model.LoginResult
	err    error
	email  string
}

func (f *fakeLogin) Login(_ context.Context, email string, _ string) (model.LoginResult, error) {
	f.email = email
	return f.result, f.err
}

type fakeExpenses struct {
	list    model.ExpenseList
	expense model.Expense
	err     error
	gotID   int64
	gotReq  model.ExpenseRequest
}

func (f *fakeExpenses) Register(_ context.Context, _ model.Identity, req model.ExpenseRequest) (model.RegisteredExpense, error) {
	f.gotReq = req
	return model.RegisteredExpense{ID: 77, Title: req.Title}, f.err
}

func (f *fakeExpenses) List(context.Context, model.Identity) (model.ExpenseList, error) {
	return f.list, f.err
}

func (f *fakeExpenses) Get(_ context.Context, _ model.Identity, id int64) (model.Expense, error) {
	f.gotID = id
	return f.expense, f.err
}

func (f *fakeExpenses) Update(_ context.Context, _ model.Identity, id int64, req model.ExpenseRequest) error {
	f.gotID, f.gotReq = id, req
	return f.err
}

func (f *fakeExpenses) Delete(_ context.Context, _ model.Identity, id int64) error {
	f.gotID = id
	return f.err
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) model.APIResponse {
	t.Helper()

	var body model.APIResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func asMember(req *http.Request) *http.Request {
	return req.WithContext(middleware.WithIdentity(req.Context(), model.Identity{UserID: 5, Role: model.RoleTeamMember}))
}

func TestAuthHandler_Login(t *testing.T) {
	t.Parallel()

	svc := &fakeLogin{result: model.LoginResult{UserID: 5, Name: "Maria", Role: model.RoleTeamMember, Token: "tok"}}
	h := NewAuthHandler(svc, testValidator())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/login", strings.NewReader(`{"email":"maria@cashflow.test","password":"x"}`))
	rec := httptest.NewRecorder()
	h.Login(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true,"data":{"name":"Maria","token":"tok"}}`, rec.Body.String())
	assert.Equal(t, "maria@cashflow.test", svc.email)
}

func TestAuthHandler_LoginInvalidCredentials(t *testing.T) {
	t.Parallel()

	creds := apierror.Wrap(model.ErrInvalidCredentials, i18n.KeyInvalidCredentials, "Email or password invalid.", http.StatusUnauthorized)
	h := NewAuthHandler(&fakeLogin{err: creds}, testValidator())

	for locale, message := range map[string]string{
		"en":    "Email or password invalid.",
		"pt-BR": "E-mail e/ou senha inválidos.",
	} {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/login", strings.NewReader(`{"email":"a@b.c","password":"x"}`))
		req = req.WithContext(i18n.WithLocale(req.Context(), i18n.Match(locale, i18n.English)))
		rec := httptest.NewRecorder()
		h.Login(rec, req)

		require.Equal(t, http.StatusUnauthorized, rec.Code)
		body := decode(t, rec)
		assert.False(t, body.Success)
		assert.Equal(t, "INVALID_CREDENTIALS", body.Error.Code)
		assert.Equal(t, message, body.Error.Message)
		assert.Empty(t, body.Error.Details)
	}
}

func TestAuthHandler_LoginBadBody(t *testing.T) {
	t.Parallel()

	h := NewAuthHandler(&fakeLogin{}, testValidator())

	for name, payload := range map[string]string{
		"not json":       `{`,
		"trailing data":  `{"email":"a","password":"b"} {}`,
		"missing fields": `{}`,
	} {
		t.Run(name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			h.Login(rec, httptest.NewRequest(http.MethodPost, "/api/v1/login", strings.NewReader(payload)))
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestWriteError_HidesInternalDetail(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	writeError(rec, req, errors.New("pq: password authentication failed for user cashflow"))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, "INTERNAL_ERROR", body.Error.Code)
	assert.NotContains(t, rec.Body.String(), "pq:")
}

func TestWriteError_Sentinels(t *testing.T) {
	t.Parallel()

	tests := []struct {
		err    error
		status int
		code   string
	}{
		{err: model.ErrMissingOrMalformedToken, status: http.StatusUnauthorized, code: "UNAUTHORIZED"},
		{err: model.ErrInvalidToken, status: http.StatusUnauthorized, code: "UNAUTHORIZED"},
		{err: model.ErrForbidden, status: http.StatusForbidden, code: "FORBIDDEN"},
		{err: model.ErrExpenseNotFound, status: http.StatusNotFound, code: "EXPENSE_NOT_FOUND"},
		{err: model.ErrUserAlreadyExists, status: http.StatusConflict, code: "EMAIL_ALREADY_REGISTERED"},
	}

	for _, tt := range tests {
		rec := httptest.NewRecorder()
		writeError(rec, httptest.NewRequest(http.MethodGet, "/", nil), tt.err)

		assert.Equal(t, tt.status, rec.Code, tt.code)
		body := decode(t, rec)
		assert.Equal(t, tt.code, body.Error.Code)
		assert.NotEmpty(t, body.Error.Message)
	}
}

func expenseRouter(h *ExpenseHandler) http.Handler {
	r := chi.NewRouter()
	r.Get("/expenses", h.List)
	r.Post("/expenses", h.Create)
	r.Get("/expenses/{id}", h.Get)
	r.Put("/expenses/{id}", h.Update)
	r.Delete("/expenses/{id}", h.Delete)
	return r
}

const validExpenseJSON = `{"title":"Taxi","description":"airport","date":"2026-05-30T10:00:00Z","amount":35.5,"payment_type":"Cash"}`

func TestExpenseHandler_Create(t *testing.T) {
	t.Parallel()

	svc := &fakeExpenses{}
	router := expenseRouter(NewExpenseHandler(svc, testValidator()))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, asMember(httptest.NewRequest(http.MethodPost, "/expenses", strings.NewReader(validExpenseJSON))))

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"success":true,"data":{"id":77,"title":"Taxi"}}`, rec.Body.String())
	assert.Equal(t, model.PaymentCash, svc.gotReq.PaymentType)
}

func TestExpenseHandler_CreateValidation(t *testing.T) {
	t.Parallel()

	router := expenseRouter(NewExpenseHandler(&fakeExpenses{}, testValidator()))
	payload := `{"title":"","date":"2027-01-01T00:00:00Z","amount":0,"payment_type":"Barter"}`

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, asMember(httptest.NewRequest(http.MethodPost, "/expenses", strings.NewReader(payload))))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, "VALIDATION_FAILED", body.Error.Code)

	fields := make([]string, 0, len(body.Error.Fields))
	for _, f := range body.Error.Fields {
		fields = append(fields, f.Field)
	}
	assert.ElementsMatch(t, []string{"title", "date", "amount", "payment_type"}, fields)
}

func TestExpenseHandler_ListEmptyIsNoContent(t *testing.T) {
	t.Parallel()

	router := expenseRouter(NewExpenseHandler(&fakeExpenses{}, testValidator()))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, asMember(httptest.NewRequest(http.MethodGet, "/expenses", nil)))

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Zero(t, rec.Body.Len())
}

func TestExpenseHandler_GetLocalizesPaymentLabel(t *testing.T) {
	t.Parallel()

	svc := &fakeExpenses{expense: model.Expense{ID: 9, Title: "Taxi", Amount: 10, PaymentType: model.PaymentDebitCard, UserID: 5}}
	router := expenseRouter(NewExpenseHandler(svc, testValidator()))

	req := asMember(httptest.NewRequest(http.MethodGet, "/expenses/9", nil))
	req = req.WithContext(i18n.WithLocale(req.Context(), i18n.BrazilianPortuguese))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(9), svc.gotID)
	assert.Contains(t, rec.Body.String(), `"payment_label":"Cartão de débito"`)
}

func TestExpenseHandler_ErrorsFromService(t *testing.T) {
	t.Parallel()

	forbidden := apierror.Wrap(model.ErrForbidden, i18n.KeyForbidden, "You do not have access to this resource.", http.StatusForbidden)
	svc := &fakeExpenses{err: forbidden}
	router := expenseRouter(NewExpenseHandler(svc, testValidator()))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, asMember(httptest.NewRequest(http.MethodDelete, "/expenses/3", nil)))
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, asMember(httptest.NewRequest(http.MethodPut, "/expenses/3", strings.NewReader(validExpenseJSON))))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestExpenseHandler_UpdateAndDelete(t *testing.T) {
	t.Parallel()

	svc := &fakeExpenses{}
	router := expenseRouter(NewExpenseHandler(svc, testValidator()))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, asMember(httptest.NewRequest(http.MethodPut, "/expenses/4", strings.NewReader(validExpenseJSON))))
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, int64(4), svc.gotID)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, asMember(httptest.NewRequest(http.MethodDelete, "/expenses/6", nil)))
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, int64(6), svc.gotID)
}

func TestExpenseHandler_OverflowingIDIsNotFound(t *testing.T) {
	t.Parallel()

	router := expenseRouter(NewExpenseHandler(&fakeExpenses{}, testValidator()))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, asMember(httptest.NewRequest(http.MethodGet, "/expenses/99999999999999999999", nil)))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestExpenseHandler_RequiresIdentity(t *testing.T) {
	t.Parallel()

	router := expenseRouter(NewExpenseHandler(&fakeExpenses{}, testValidator()))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/expenses", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

type fakePinger struct {
	err error
}

func (f fakePinger) Health(context.Context) error { return f.err }

func TestHealthHandler(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	NewHealthHandler(fakePinger{}).Health(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	NewHealthHandler(fakePinger{err: errors.New("down")}).Health(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.False(t, decode(t, rec).Success)
}
