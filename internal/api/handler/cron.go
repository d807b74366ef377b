package handler

import (
	"net/http"

	"github.com/comexflow/import-dashboard-api/internal/scheduler"
	"github.com/comexflow/import-dashboard-api/pkg/apiErrors"
	"github.com/comexflow/import-dashboard-api/pkg/middleware"
	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypeCacheRefresh = "cache-refresh"
	CronJobTypeAll          = "all"
)

// CronJobServices contém os serviços de cron necessários para executar manualmente
type CronJobServices struct {
	CacheRefreshSyncService *scheduler.CacheRefreshSyncService
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunCronJob")

		// Apenas administradores podem executar cron jobs manualmente
		userClaims, ok := middleware.UserFromContext(r.Context())
		if !ok || userClaims.UserRoleID != middleware.RoleAdmin {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Apenas administradores podem executar cron jobs", nil)
			return
		}

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		switch cronType {
		case CronJobTypeCacheRefresh, CronJobTypeAll:
			if services.CacheRefreshSyncService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de reaquecimento do cache não disponível", nil)
				return
			}
			services.CacheRefreshSyncService.TriggerManualSync()

		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: cache-refresh, all", nil)
			return
		}

		response := map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		}
		json.NewEncoder(w).Encode(response)
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetCronStatus")

		// Administradores e analistas podem acompanhar o estado das crons
		userClaims, ok := middleware.UserFromContext(r.Context())
		if !ok || (userClaims.UserRoleID != middleware.RoleAdmin && userClaims.UserRoleID != middleware.RoleAnalyst) {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Você não tem permissão para verificar status de cron jobs", nil)
			return
		}

		if services.CacheRefreshSyncService == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de reaquecimento do cache não disponível", nil)
			return
		}

		status := map[string]any{
			CronJobTypeCacheRefresh: services.CacheRefreshSyncService.GetStatus(),
		}

		json.NewEncoder(w).Encode(status)
	}
}
