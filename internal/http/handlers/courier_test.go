package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"courier-dispatch/internal/apperr"
	"courier-dispatch/internal/domain"
	"courier-dispatch/internal/service/courier"
)

type stubCourierUsecase struct {
	createFn func(ctx context.Context, inputs []courier.CreateInput) ([]int64, error)
	getFn    func(ctx context.Context, id int64) (*domain.Courier, error)
	listFn   func(ctx context.Context, limit, offset *int) ([]domain.Courier, error)
	patchFn  func(ctx context.Context, u domain.PartialCourierUpdate) (*domain.Courier, error)
}

func (s *stubCourierUsecase) CreateBatch(ctx context.Context, inputs []courier.CreateInput) ([]int64, error) {
	return s.createFn(ctx, inputs)
}

func (s *stubCourierUsecase) Get(ctx context.Context, id int64) (*domain.Courier, error) {
	return s.getFn(ctx, id)
}

func (s *stubCourierUsecase) List(ctx context.Context, limit, offset *int) ([]domain.Courier, error) {
	return s.listFn(ctx, limit, offset)
}

func (s *stubCourierUsecase) Patch(ctx context.Context, u domain.PartialCourierUpdate) (*domain.Courier, error) {
	return s.patchFn(ctx, u)
}

// withURLParam attaches a chi route parameter so handlers reading
// chi.URLParam see it without a full router.
func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestCourierCreate_Success(t *testing.T) {
	t.Parallel()

	uc := &stubCourierUsecase{
		createFn: func(_ context.Context, inputs []courier.CreateInput) ([]int64, error) {
			require.Len(t, inputs, 1)
			require.Equal(t, int64(1), *inputs[0].CourierID)
			return []int64{1}, nil
		},
	}
	h := NewCourierHandler(nil, uc)

	body := `{"data":[{"courier_id":1,"courier_type":"foot","regions":[1],"working_hours":["09:00-18:00"]}]}`
	req := httptest.NewRequest(http.MethodPost, "/couriers", strings.NewReader(body))
	rr := httptest.NewRecorder()

	h.Create(rr, req)

	require.Equal(t, http.StatusCreated, rr.Code)
	require.JSONEq(t, `{"couriers":[{"id":1}]}`, rr.Body.String())
}

func TestCourierCreate_ValidationReport(t *testing.T) {
	t.Parallel()

	uc := &stubCourierUsecase{
		createFn: func(context.Context, []courier.CreateInput) ([]int64, error) {
			return nil, apperr.BatchErrors{{
				ID: 2,
				Errors: map[string]apperr.FieldError{
					"courier_type": {Code: apperr.CodeInvalidFormat, Description: "unknown courier type"},
				},
			}}
		},
	}
	h := NewCourierHandler(nil, uc)

	body := `{"data":[{"courier_id":2,"courier_type":"plane"}]}`
	req := httptest.NewRequest(http.MethodPost, "/couriers", strings.NewReader(body))
	rr := httptest.NewRecorder()

	h.Create(rr, req)

	require.Equal(t, http.StatusBadRequest, rr.Code)
	require.JSONEq(t, `{
		"validation_error": {
			"couriers": [
				{"id":2,"errors":{"courier_type":{"code":2,"description":"unknown courier type"}}}
			]
		}
	}`, rr.Body.String())
}

func TestCourierCreate_EmptyData(t *testing.T) {
	t.Parallel()

	h := NewCourierHandler(nil, &stubCourierUsecase{})

	req := httptest.NewRequest(http.MethodPost, "/couriers", strings.NewReader(`{"data":[]}`))
	rr := httptest.NewRecorder()

	h.Create(rr, req)

	require.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestCourierCreate_Conflict(t *testing.T) {
	t.Parallel()

	uc := &stubCourierUsecase{
		createFn: func(context.Context, []courier.CreateInput) ([]int64, error) {
			return nil, apperr.ErrConflict
		},
	}
	h := NewCourierHandler(nil, uc)

	body := `{"data":[{"courier_id":1,"courier_type":"foot","regions":[1],"working_hours":[]}]}`
	req := httptest.NewRequest(http.MethodPost, "/couriers", strings.NewReader(body))
	rr := httptest.NewRecorder()

	h.Create(rr, req)

	require.Equal(t, http.StatusConflict, rr.Code)
}

func TestCourierGetByID(t *testing.T) {
	t.Parallel()

	uc := &stubCourierUsecase{
		getFn: func(_ context.Context, id int64) (*domain.Courier, error) {
			require.Equal(t, int64(7), id)
			return &domain.Courier{
				ID:           7,
				Type:         domain.TypeBike,
				Regions:      []int64{1, 2},
				WorkingHours: []string{"09:00-18:00"},
				Rating:       4.5,
				Earnings:     2500,
			}, nil
		},
	}
	h := NewCourierHandler(nil, uc)

	req := withURLParam(httptest.NewRequest(http.MethodGet, "/couriers/7", nil), "id", "7")
	rr := httptest.NewRecorder()

	h.GetByID(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	require.JSONEq(t, `{
		"courier_id": 7,
		"courier_type": "bike",
		"regions": [1, 2],
		"working_hours": ["09:00-18:00"],
		"rating": 4.5,
		"earnings": 2500
	}`, rr.Body.String())
}

func TestCourierGetByID_NotFound(t *testing.T) {
	t.Parallel()

	uc := &stubCourierUsecase{
		getFn: func(context.Context, int64) (*domain.Courier, error) {
			return nil, apperr.ErrNotFound
		},
	}
	h := NewCourierHandler(nil, uc)

	req := withURLParam(httptest.NewRequest(http.MethodGet, "/couriers/7", nil), "id", "7")
	rr := httptest.NewRecorder()

	h.GetByID(rr, req)

	require.Equal(t, http.StatusNotFound, rr.Code)
}

func TestCourierGetByID_BadID(t *testing.T) {
	t.Parallel()

	h := NewCourierHandler(nil, &stubCourierUsecase{})

	req := withURLParam(httptest.NewRequest(http.MethodGet, "/couriers/abc", nil), "id", "abc")
	rr := httptest.NewRecorder()

	h.GetByID(rr, req)

	require.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestCourierList(t *testing.T) {
	t.Parallel()

	uc := &stubCourierUsecase{
		listFn: func(_ context.Context, limit, offset *int) ([]domain.Courier, error) {
			require.NotNil(t, limit)
			require.Equal(t, 1, *limit)
			require.NotNil(t, offset)
			require.Equal(t, 2, *offset)
			return []domain.Courier{{ID: 3, Type: domain.TypeCar}}, nil
		},
	}
	h := NewCourierHandler(nil, uc)

	req := httptest.NewRequest(http.MethodGet, "/couriers?limit=1&offset=2", nil)
	rr := httptest.NewRecorder()

	h.List(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	require.JSONEq(t, `{
		"couriers":[
			{"courier_id":3,"courier_type":"car","regions":[],"working_hours":[],"rating":0,"earnings":0}
		]
	}`, rr.Body.String())
}

func TestCourierList_InvalidLimit(t *testing.T) {
	t.Parallel()

	h := NewCourierHandler(nil, &stubCourierUsecase{})

	req := httptest.NewRequest(http.MethodGet, "/couriers?limit=-1", nil)
	rr := httptest.NewRecorder()

	h.List(rr, req)

	require.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestCourierPatch(t *testing.T) {
	t.Parallel()

	uc := &stubCourierUsecase{
		patchFn: func(_ context.Context, u domain.PartialCourierUpdate) (*domain.Courier, error) {
			require.Equal(t, int64(9), u.ID)
			require.NotNil(t, u.Type)
			require.Equal(t, domain.TypeFoot, *u.Type)
			require.Equal(t, []int64{1}, u.Regions)
			return &domain.Courier{ID: 9, Type: domain.TypeFoot, Regions: []int64{1}, WorkingHours: []string{"09:00-18:00"}}, nil
		},
	}
	h := NewCourierHandler(nil, uc)

	body := `{"courier_type":"foot","regions":[1]}`
	req := withURLParam(httptest.NewRequest(http.MethodPatch, "/couriers/9", strings.NewReader(body)), "id", "9")
	rr := httptest.NewRecorder()

	h.Patch(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	require.JSONEq(t, `{
		"courier_id": 9,
		"courier_type": "foot",
		"regions": [1],
		"working_hours": ["09:00-18:00"],
		"rating": 0,
		"earnings": 0
	}`, rr.Body.String())
}

func TestCourierPatch_Invalid(t *testing.T) {
	t.Parallel()

	uc := &stubCourierUsecase{
		patchFn: func(context.Context, domain.PartialCourierUpdate) (*domain.Courier, error) {
			return nil, apperr.ErrInvalid
		},
	}
	h := NewCourierHandler(nil, uc)

	req := withURLParam(httptest.NewRequest(http.MethodPatch, "/couriers/9", strings.NewReader(`{}`)), "id", "9")
	rr := httptest.NewRecorder()

	h.Patch(rr, req)

	require.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestCourierPatch_NotFound(t *testing.T) {
	t.Parallel()

	uc := &stubCourierUsecase{
		patchFn: func(context.Context, domain.PartialCourierUpdate) (*domain.Courier, error) {
			return nil, apperr.ErrNotFound
		},
	}
	h := NewCourierHandler(nil, uc)

	req := withURLParam(httptest.NewRequest(http.MethodPatch, "/couriers/9", strings.NewReader(`{"regions":[1]}`)), "id", "9")
	rr := httptest.NewRecorder()

	h.Patch(rr, req)

	require.Equal(t, http.StatusNotFound, rr.Code)
}
