package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"courier-dispatch/internal/apperr"
	"courier-dispatch/internal/domain"
	"courier-dispatch/internal/logx"
)

// CourierHandler serves HTTP endpoints for courier resources.
type CourierHandler struct {
	usecase courierUsecase
	logger  logx.Logger
}

// NewCourierHandler wires a courierUsecase into HTTP handlers.
func NewCourierHandler(logger logx.Logger, uc courierUsecase) *CourierHandler {
	return &CourierHandler{usecase: uc, logger: logger}
}

// Create handles POST /couriers. The whole batch is created or the whole
// batch is rejected with a per-courier validation report.
func (h *CourierHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createCouriersRequest
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
		writeJSON(h.logger, w, r, http.StatusCreated, createdCouriersResponse{Couriers: idsToRefs(ids)})
	case errors.As(err, &batchErrs):
		writeJSON(h.logger, w, r, http.StatusBadRequest, validationErrorResponse{
			ValidationError: validationErrorBody{Couriers: batchErrorsToResponse(batchErrs)},
		})
	case errors.Is(err, apperr.ErrConflict):
		writeError(h.logger, w, r, http.StatusConflict, "courier id already exists")
	case errors.Is(err, apperr.ErrInvalid):
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid input")
	default:
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
	}
}

// GetByID handles GET /couriers/{id}.
func (h *CourierHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "id")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid id")
		return
	}

	c, err := h.usecase.Get(r.Context(), id)
	switch {
	case err == nil:
		writeJSON(h.logger, w, r, http.StatusOK, courierToResponse(*c))
	case errors.Is(err, apperr.ErrNotFound):
		writeError(h.logger, w, r, http.StatusNotFound, "courier not found")
	default:
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
	}
}

// List handles GET /couriers with optional limit/offset.
func (h *CourierHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	var limitPtr, offsetPtr *int
	if s := q.Get("limit"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil || v < 0 {
			writeError(h.logger, w, r, http.StatusBadRequest, "invalid limit")
			return
		}
		limitPtr = &v
	}
	if s := q.Get("offset"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil || v < 0 {
			writeError(h.logger, w, r, http.StatusBadRequest, "invalid offset")
			return
		}
		offsetPtr = &v
	}

	list, err := h.usecase.List(r.Context(), limitPtr, offsetPtr)
	if err != nil {
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, couriersListResponse{Couriers: couriersToResponse(list)})
}

// Patch handles PATCH /couriers/{id}. Orders the courier can no longer carry
// after the update are released back to the unassigned pool.
func (h *CourierHandler) Patch(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "id")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid id")
		return
	}

	var req patchCourierRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}

	update := domain.PartialCourierUpdate{
		ID:           id,
		Regions:      req.Regions,
		WorkingHours: req.WorkingHours,
	}
	if req.CourierType != nil {
		ct := domain.CourierType(*req.CourierType)
		update.Type = &ct
	}

	c, err := h.usecase.Patch(r.Context(), update)
	switch {
	case err == nil:
		writeJSON(h.logger, w, r, http.StatusOK, courierToResponse(*c))
	case errors.Is(err, apperr.ErrInvalid):
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid input")
	case errors.Is(err, apperr.ErrNotFound):
		writeError(h.logger, w, r, http.StatusNotFound, "courier not found")
	default:
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
	}
}
