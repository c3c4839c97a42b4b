package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"courier-dispatch/internal/apperr"
	"courier-dispatch/internal/domain"
	"courier-dispatch/internal/logx"
)

// RegionHandler serves HTTP endpoints for region resources.
type RegionHandler struct {
	usecase regionUsecase
	logger  logx.Logger
}

// NewRegionHandler wires a regionUsecase into HTTP handlers.
func NewRegionHandler(logger logx.Logger, uc regionUsecase) *RegionHandler {
	return &RegionHandler{usecase: uc, logger: logger}
}

// Create handles POST /regions.
func (h *RegionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createRegionRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}

	region := domain.Region{Name: req.Name}
	id, err := h.usecase.Create(r.Context(), &region)
	switch {
	case err == nil:
		w.Header().Set("Location", "/regions/"+strconv.FormatInt(id, 10))
		writeJSON(h.logger, w, r, http.StatusCreated, idRef{ID: id})
	case errors.Is(err, apperr.ErrInvalid):
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid input")
	case errors.Is(err, apperr.ErrConflict):
		writeError(h.logger, w, r, http.StatusConflict, "region already exists")
	default:
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
	}
}
