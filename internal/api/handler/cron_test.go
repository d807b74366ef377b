package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/comexflow/import-dashboard-api/internal/api/handler"
	"github.com/comexflow/import-dashboard-api/internal/api/handler/router"
	"github.com/comexflow/import-dashboard-api/internal/config"
	"github.com/comexflow/import-dashboard-api/internal/domain"
	"github.com/comexflow/import-dashboard-api/internal/scheduler"
	"github.com/comexflow/import-dashboard-api/internal/usecases/dashboarding"
	dashboardingmocks "github.com/comexflow/import-dashboard-api/internal/usecases/dashboarding/mocks"
	"github.com/comexflow/import-dashboard-api/pkg/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type cronDeps struct {
	sync   *scheduler.CacheRefreshSyncService
	router router.Router
}

func newCronRouter(t *testing.T) *cronDeps {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	dashboard := dashboardingmocks.NewMockDashboarder(ctrl)
	dashboard.EXPECT().Invalidate().AnyTimes()
	dashboard.EXPECT().LoadDashboard(gomock.Any(), gomock.Any()).Return(&dashboarding.DashboardResult{}).AnyTimes()
	dashboard.EXPECT().CacheLastUpdate().Return(time.Time{}).AnyTimes()

	cfg := &config.Config{
		CacheRefreshSync: config.CacheRefreshSync{CronSchedule: "*/15 * * * *", Enabled: true},
	}
	sync := scheduler.NewCacheRefreshSyncService(dashboard, cfg)

	rt := router.New(router.WithRoutes(handler.CronJobs(handler.CronJobServices{
		CacheRefreshSyncService: sync,
	})...))

	return &cronDeps{sync: sync, router: rt}
}

func adminClaims() *domain.Claims {
	return &domain.Claims{UserID: 1, UserName: "Admin", UserRoleID: middleware.RoleAdmin}
}

func waitSyncCompleted(t *testing.T, sync *scheduler.CacheRefreshSyncService) {
	t.Helper()

	require.Eventually(t, func() bool {
		status := sync.GetStatus()
		completed, ok := status["last_sync_completed_at"].(time.Time)
		return ok && !completed.IsZero()
	}, 2*time.Second, 10*time.Millisecond)
}

func TestRunCronJob(t *testing.T) {
	t.Run("Deve disparar o reaquecimento do cache", func(t *testing.T) {
		deps := newCronRouter(t)

		rec := httptest.NewRecorder()
		deps.router.ServeHTTP(rec, authedRequest(http.MethodPost, "/v1/cron/cache-refresh/run", adminClaims(), nil))

		require.Equal(t, http.StatusOK, rec.Code)

		var response map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
		assert.Equal(t, "Cron job iniciada com sucesso", response["message"])
		assert.Equal(t, "cache-refresh", response["type"])

		waitSyncCompleted(t, deps.sync)
	})

	t.Run("Deve rejeitar tipo desconhecido", func(t *testing.T) {
		deps := newCronRouter(t)

		rec := httptest.NewRecorder()
		deps.router.ServeHTTP(rec, authedRequest(http.MethodPost, "/v1/cron/inexistente/run", adminClaims(), nil))

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "VAL_001", decodeErrorCode(t, rec.Body))
	})

	t.Run("Deve negar execução para quem não é administrador", func(t *testing.T) {
		deps := newCronRouter(t)

		rec := httptest.NewRecorder()
		deps.router.ServeHTTP(rec, authedRequest(http.MethodPost, "/v1/cron/cache-refresh/run", clientClaims(), nil))

		require.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, "AUTH_004", decodeErrorCode(t, rec.Body))
	})
}

func TestGetCronStatus(t *testing.T) {
	t.Run("Deve devolver o status do agendador", func(t *testing.T) {
		deps := newCronRouter(t)

		rec := httptest.NewRecorder()
		deps.router.ServeHTTP(rec, authedRequest(http.MethodGet, "/v1/cron/status", adminClaims(), nil))

		require.Equal(t, http.StatusOK, rec.Code)

		var status map[string]map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &status))
		require.Contains(t, status, "cache-refresh")
		assert.Equal(t, true, status["cache-refresh"]["sync_enabled"])
		assert.Equal(t, "*/15 * * * *", status["cache-refresh"]["sync_cron"])
	})

	t.Run("Deve permitir consulta por analistas", func(t *testing.T) {
		deps := newCronRouter(t)

		claims := &domain.Claims{UserID: 2, UserRoleID: middleware.RoleAnalyst}

		rec := httptest.NewRecorder()
		deps.router.ServeHTTP(rec, authedRequest(http.MethodGet, "/v1/cron/status", claims, nil))

		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Deve negar consulta para clientes", func(t *testing.T) {
		deps := newCronRouter(t)

		rec := httptest.NewRecorder()
		deps.router.ServeHTTP(rec, authedRequest(http.MethodGet, "/v1/cron/status", clientClaims(), nil))

		require.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, "AUTH_004", decodeErrorCode(t, rec.Body))
	})
}
