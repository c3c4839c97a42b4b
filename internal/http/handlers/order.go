package handlers

import (
	"errors"
	"net/http"

	"courier-dispatch/internal/apperr"
	"courier-dispatch/internal/logx"
)

// OrderHandler serves HTTP endpoints for order resources and the dispatch
// operations on them.
type OrderHandler struct {
	usecase    orderUsecase
	assignment assignmentUsecase
	completion completionUsecase
	logger     logx.Logger
}

// NewOrderHandler wires the order usecases into HTTP handlers.
func NewOrderHandler(logger logx.Logger, uc orderUsecase, asg assignmentUsecase, cmp completionUsecase) *OrderHandler {
	return &OrderHandler{usecase: uc, assignment: asg, completion: cmp, logger: logger}
}

// Create handles POST /orders. All-or-nothing, same contract as courier
// creation.
func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createOrdersRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}
	if len(req.Data) == 0 {
		writeError(h.logger, w, r, http.StatusBadRequest, "empty data")
		return
	}

	ids, err := h.usecase.CreateBatch(r.Context(), req.toInputs())

	var batchErrs apperr.BatchErrors
	switch {
	case err == nil:
		writeJSON(h.logger, w, r, http.StatusCreated, createdOrdersResponse{Orders: idsToRefs(ids)})
	case errors.As(err, &batchErrs):
		writeJSON(h.logger, w, r, http.StatusBadRequest, validationErrorResponse{
			ValidationError: validationErrorBody{Orders: batchErrorsToResponse(batchErrs)},
		})
	case errors.Is(err, apperr.ErrConflict):
		writeError(h.logger, w, r, http.StatusConflict, "order id already exists")
	case errors.Is(err, apperr.ErrInvalid):
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid input")
	default:
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
	}
}

// GetByID handles GET /orders/{id}.
func (h *OrderHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "id")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid id")
		return
	}

	o, err := h.usecase.Get(r.Context(), id)
	switch {
	case err == nil:
		writeJSON(h.logger, w, r, http.StatusOK, orderToResponse(*o))
	case errors.Is(err, apperr.ErrNotFound):
		writeError(h.logger, w, r, http.StatusNotFound, "order not found")
	default:
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
	}
}

// Assign handles POST /orders/assign. Hands the courier every currently
// unassigned order they can carry, all stamped with one assign time.
func (h *OrderHandler) Assign(w http.ResponseWriter, r *http.Request) {
	var req assignOrdersRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}

	res, err := h.assignment.AssignBatch(r.Context(), req.CourierID)
	switch {
	case err == nil:
		writeJSON(h.logger, w, r, http.StatusOK, assignResultToResponse(res))
	case errors.Is(err, apperr.ErrInvalid):
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid input")
	case errors.Is(err, apperr.ErrNotFound):
		writeError(h.logger, w, r, http.StatusNotFound, "courier not found")
	default:
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
	}
}

// Complete handles POST /orders/complete.
func (h *OrderHandler) Complete(w http.ResponseWriter, r *http.Request) {
	var req completeOrderRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}

	err := h.completion.Complete(r.Context(), req.OrderID, req.CourierID, req.CompleteTime)
	switch {
	case err == nil:
		writeJSON(h.logger, w, r, http.StatusOK, completeOrderResponse{OrderID: req.OrderID})
	case errors.Is(err, apperr.ErrMismatch):
		writeError(h.logger, w, r, http.StatusBadRequest, "order is not assigned to this courier")
	case errors.Is(err, apperr.ErrInvalid):
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid input")
	case errors.Is(err, apperr.ErrNotFound):
		writeError(h.logger, w, r, http.StatusNotFound, "order not found")
	default:
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
	}
}
