package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	panelapp "github.com/NoMulaax/MoonSoftwareMeta/internal/application/panel"
	"github.com/NoMulaax/MoonSoftwareMeta/internal/domain/panel"
	"github.com/NoMulaax/MoonSoftwareMeta/internal/domain/shared"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTrackTestEnv(t *testing.T) (*gin.Engine, *MockCommissionRepository, *panel.Commission) {
	t.Helper()

	commRepo := new(MockCommissionRepository)
	clientRepo := new(MockClientRepository)

	service := panelapp.NewCommissionService(commRepo, clientRepo)
	h := NewCommissionHandler(service)

	engine := gin.New()
	engine.GET("/public/commissions/:tracking_id/:id", h.Track)

	commission, err := panel.NewCommission(uuid.New(), uuid.New(), "Discord bot", decimal.NewFromInt(400))
	require.NoError(t, err)
	commission.Notes = "internal notes, not for the client"

	return engine, commRepo, commission
}

func TestCommissionTrack(t *testing.T) {
	t.Run("matching token and id returns the public view", func(t *testing.T) {
		engine, commRepo, commission := newTrackTestEnv(t)

		commRepo.On("FindByTracking", mock.Anything, commission.TrackingID, commission.ID).Return(commission, nil)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet,
			"/public/commissions/"+commission.TrackingID+"/"+commission.ID.String(), nil)
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"title":"Discord bot"`)
		// Internal fields stay off the public view
		assert.NotContains(t, w.Body.String(), "internal notes")
		assert.NotContains(t, w.Body.String(), `"notes"`)
	})

	t.Run("mismatched pair is a plain not found", func(t *testing.T) {
		engine, commRepo, commission := newTrackTestEnv(t)

		commRepo.On("FindByTracking", mock.Anything, "wrongtoken", commission.ID).Return(nil, shared.ErrNotFound)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet,
			"/public/commissions/wrongtoken/"+commission.ID.String(), nil)
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "ERR_NOT_FOUND")
	})

	t.Run("malformed commission id", func(t *testing.T) {
		engine, commRepo, commission := newTrackTestEnv(t)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet,
			"/public/commissions/"+commission.TrackingID+"/nope", nil)
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		commRepo.AssertNotCalled(t, "FindByTracking", mock.Anything, mock.Anything, mock.Anything)
	})
}
