package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"cashflow-api/internal/i18n"
	"cashflow-api/internal/middleware"
	"cashflow-api/internal/model"
	"cashflow-api/internal/validation"
)

type expenseService interface {
	Register(ctx context.Context, actor model.Identity, req model.ExpenseRequest) (model.RegisteredExpense, error)
	List(ctx context.Context, actor model.Identity) (model.ExpenseList, error)
	Get(ctx context.Context, actor model.Identity, id int64) (model.Expense, error)
	Update(ctx context.Context, actor model.Identity, id int64, req model.ExpenseRequest) error
	Delete(ctx context.Context, actor model.Identity, id int64) error
}

type ExpenseHandler struct {
	service   expenseService
	validator *validation.Validator
}

func NewExpenseHandler(service expenseService, validator *validation.Validator) *ExpenseHandler {
	return &ExpenseHandler{service: service, validator: validator}
}

func (h *ExpenseHandler) Create(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		writeError(w, r, model.ErrMissingOrMalformedToken)
		return
	}

	payload, ok := h.readExpense(w, r)
	if !ok {
		return
	}

	registered, err := h.service.Register(r.Context(), actor, payload)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeSuccess(w, http.StatusCreated, registered)
}

func (h *ExpenseHandler) List(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		writeError(w, r, model.ErrMissingOrMalformedToken)
		return
	}

	list, err := h.service.List(r.Context(), actor)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if len(list.Expenses) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	writeSuccess(w, http.StatusOK, list)
}

func (h *ExpenseHandler) Get(w http.ResponseWriter, r *http.Request) {
	actor, id, ok := actorAndID(w, r)
	if !ok {
		return
	}

	expense, err := h.service.Get(r.Context(), actor, id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeSuccess(w, http.StatusOK, model.ExpenseView{
		Expense:      expense,
		PaymentLabel: i18n.PaymentLabel(i18n.FromContext(r.Context()), expense.PaymentType),
	})
}

func (h *ExpenseHandler) Update(w http.ResponseWriter, r *http.Request) {
	actor, id, ok := actorAndID(w, r)
	if !ok {
		return
	}

	payload, ok := h.readExpense(w, r)
	if !ok {
		return
	}

	if err := h.service.Update(r.Context(), actor, id, payload); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *ExpenseHandler) Delete(w http.ResponseWriter, r *http.Request) {
	actor, id, ok := actorAndID(w, r)
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), actor, id); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *ExpenseHandler) readExpense(w http.ResponseWriter, r *http.Request) (model.ExpenseRequest, bool) {
	var payload model.ExpenseRequest
	if err := decodeJSON(w, r, &payload); err != nil {
		writeError(w, r, err)
		return model.ExpenseRequest{}, false
	}

	if failures := h.validator.Struct(i18n.FromContext(r.Context()), payload); failures != nil {
		writeValidationError(w, r, failures)
		return model.ExpenseRequest{}, false
	}

	return payload, true
}

// actorAndID reads the caller and the {id} path parameter. An id that does
// not fit an int64 cannot exist and is reported as not found.
func actorAndID(w http.ResponseWriter, r *http.Request) (model.Identity, int64, bool) {
	actor, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		writeError(w, r, model.ErrMissingOrMalformedToken)
		return model.Identity{}, 0, false
	}

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		writeError(w, r, model.ErrExpenseNotFound)
		return model.Identity{}, 0, false
	}

	return actor, id, true
}
