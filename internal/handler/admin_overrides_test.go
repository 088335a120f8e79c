package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/TribalScore_Go/internal/domain"
	"github.com/osse101/TribalScore_Go/internal/override"
)

func overrideRouter(h *OverrideHandler) http.Handler {
	r := chi.NewRouter()
	r.Put("/overrides/category", h.HandleSetCategoryOverride)
	r.Delete("/overrides/category", h.HandleDeleteCategoryOverride)
	r.Put("/overrides/total", h.HandleSetTotalOverride)
	r.Delete("/overrides/total", h.HandleDeleteTotalOverride)
	r.Get("/overrides/episode/{episode}", h.HandleGetEpisodeOverrides)
	r.Delete("/overrides/episode/{episode}", h.HandleClearEpisode)
	r.Delete("/overrides", h.HandleClearAll)
	r.Post("/materialize/{episode}", h.HandleMaterializeEpisode)
	r.Post("/materialize", h.HandleMaterializeAll)
	return r
}

func intPtrEq(want int) interface{} {
	return mock.MatchedBy(func(p *int) bool { return p != nil && *p == want })
}

func nilIntPtr() interface{} {
	return mock.MatchedBy(func(p *int) bool { return p == nil })
}

func TestOverrideHandler_SetCategoryOverride(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		setup      func(*MockOverrideService)
		wantStatus int
		wantBody   string
	}{
		{
			name: "set",
			body: `{"contestant_id":"c1","episode":1,"category":"Survival","points":10}`,
			setup: func(m *MockOverrideService) {
				m.On("SetCategoryOverride", mock.Anything, "c1", 1, "Survival", intPtrEq(10)).Return(nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   MsgOverrideSaved,
		},
		{
			name: "null points deletes",
			body: `{"contestant_id":"c1","episode":1,"category":"Survival","points":null}`,
			setup: func(m *MockOverrideService) {
				m.On("SetCategoryOverride", mock.Anything, "c1", 1, "Survival", nilIntPtr()).Return(nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   MsgOverrideDeleted,
		},
		{
			name: "delete of missing override",
			body: `{"contestant_id":"c1","episode":1,"category":"Survival"}`,
			setup: func(m *MockOverrideService) {
				m.On("SetCategoryOverride", mock.Anything, "c1", 1, "Survival", nilIntPtr()).Return(domain.ErrOverrideNotFound)
			},
			wantStatus: http.StatusNotFound,
			wantBody:   ErrMsgOverrideNotFoundError,
		},
		{
			name:       "episode zero rejected",
			body:       `{"contestant_id":"c1","episode":0,"category":"Survival","points":1}`,
			setup:      func(m *MockOverrideService) {},
			wantStatus: http.StatusBadRequest,
			wantBody:   `"episode"`,
		},
		{
			name:       "blank category rejected",
			body:       `{"contestant_id":"c1","episode":2,"category":"  ","points":1}`,
			setup:      func(m *MockOverrideService) {},
			wantStatus: http.StatusBadRequest,
			wantBody:   `"category"`,
		},
		{
			name:       "malformed json",
			body:       `{"contestant_id":`,
			setup:      func(m *MockOverrideService) {},
			wantStatus: http.StatusBadRequest,
			wantBody:   ErrMsgInvalidRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &MockOverrideService{}
			tt.setup(svc)

			req := httptest.NewRequest("PUT", "/overrides/category", bytes.NewBufferString(tt.body))
			rec := httptest.NewRecorder()
			overrideRouter(NewOverrideHandler(svc)).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
			svc.AssertExpectations(t)
		})
	}
}

func TestOverrideHandler_DeleteCategoryOverride(t *testing.T) {
	svc := &MockOverrideService{}
	svc.On("DeleteCategoryOverride", mock.Anything, "c1", 3, "Clue read").Return(nil)

	body := `{"contestant_id":"c1","episode":3,"category":"Clue read"}`
	rec := httptest.NewRecorder()
	overrideRouter(NewOverrideHandler(svc)).ServeHTTP(rec, httptest.NewRequest("DELETE", "/overrides/category", bytes.NewBufferString(body)))

	assert.Equal(t, http.StatusOK, rec.Code)
	svc.AssertExpectations(t)
}

func TestOverrideHandler_TotalOverride(t *testing.T) {
	svc := &MockOverrideService{}
	svc.On("SetTotalOverride", mock.Anything, "c2", 4, intPtrEq(-3)).Return(nil)
	svc.On("DeleteTotalOverride", mock.Anything, "c2", 5).Return(domain.ErrOverrideNotFound)
	router := overrideRouter(NewOverrideHandler(svc))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("PUT", "/overrides/total",
		bytes.NewBufferString(`{"contestant_id":"c2","episode":4,"total":-3}`)))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), MsgOverrideSaved)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("DELETE", "/overrides/total",
		bytes.NewBufferString(`{"contestant_id":"c2","episode":5}`)))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	svc.AssertExpectations(t)
}

func TestOverrideHandler_EpisodeRoutes(t *testing.T) {
	svc := &MockOverrideService{}
	view := &override.EpisodeOverrides{
		Episode:    2,
		Categories: []domain.CategoryOverride{{ContestantID: "c1", Episode: 2, Category: "Survival", Points: 10}},
	}
	svc.On("ListEpisode", mock.Anything, 2).Return(view, nil)
	svc.On("ClearEpisode", mock.Anything, 2).Return(nil)
	svc.On("ClearAll", mock.Anything).Return(nil)
	router := overrideRouter(NewOverrideHandler(svc))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/overrides/episode/2", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	var got override.EpisodeOverrides
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, 10, got.Categories[0].Points)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("DELETE", "/overrides/episode/2", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), MsgEpisodeCleared)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("DELETE", "/overrides", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), MsgAllCleared)

	for _, bad := range []string{"0", "-1", "abc"} {
		rec = httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest("GET", "/overrides/episode/"+bad, nil))
		assert.Equal(t, http.StatusBadRequest, rec.Code, bad)
	}

	svc.AssertExpectations(t)
}

func TestOverrideHandler_Materialize(t *testing.T) {
	svc := &MockOverrideService{}
	rows := []domain.MaterializedPoints{
		{Episode: 1, ContestantID: "c1", TotalPoints: 10, Breakdown: map[string]int{"Survival": 10}},
	}
	svc.On("MaterializeEpisode", mock.Anything, 1).Return(rows, nil)
	svc.On("MaterializeAll", mock.Anything).Return(7, nil)
	router := overrideRouter(NewOverrideHandler(svc))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("POST", "/materialize/1", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	var resp MaterializeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Episode)
	assert.Equal(t, 1, resp.RowCount)
	assert.Equal(t, 10, resp.Rows[0].TotalPoints)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("POST", "/materialize", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	resp = MaterializeResponse{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 7, resp.RowCount)

	svc.AssertExpectations(t)
}
