package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/comexflow/import-dashboard-api/internal/config"
	"github.com/comexflow/import-dashboard-api/internal/usecases/dashboarding"
	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
)

// CacheRefreshSyncConfig representa a configuração do agendador de
// reaquecimento do cache da dashboard
type CacheRefreshSyncConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

// CacheRefreshSyncService invalida e reaquece o cache da dashboard em
// segundo plano, para que o primeiro acesso do dia não pague o custo da
// carga completa contra a ComexAPI.
type CacheRefreshSyncService struct {
	scheduler        *gocron.Scheduler
	config           CacheRefreshSyncConfig
	appConfig        *config.Config
	dashboardService dashboarding.Dashboarder

	syncMutex           sync.Mutex
	syncRunning         bool
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

// NewCacheRefreshSyncService cria uma nova instância do serviço de
// reaquecimento de cache
func NewCacheRefreshSyncService(
	dashboardService dashboarding.Dashboarder,
	appConfig *config.Config,
) *CacheRefreshSyncService {
	refreshConfig := CacheRefreshSyncConfig{
		CronSchedule: appConfig.CacheRefreshSync.CronSchedule,
		SyncEnabled:  appConfig.CacheRefreshSync.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": refreshConfig.CronSchedule,
		"sync_enabled":  refreshConfig.SyncEnabled,
	}).Info("Configuração do agendador de reaquecimento de cache carregada")

	return &CacheRefreshSyncService{
		scheduler:        scheduler,
		config:           refreshConfig,
		appConfig:        appConfig,
		dashboardService: dashboardService,
	}
}

// Start inicia o agendador
func (s *CacheRefreshSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Reaquecimento agendado do cache desabilitado por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de reaquecimento do cache da dashboard")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.refreshDashboardCache()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar reaquecimento do cache: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de reaquecimento do cache")
		s.scheduler.Stop()
	}()

	return nil
}

// refreshDashboardCache descarta o cache e recarrega os quatro recursos
// da dashboard. Execuções sobrepostas são ignoradas.
func (s *CacheRefreshSyncService) refreshDashboardCache() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Reaquecimento do cache já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	startTime := time.Now()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	logrus.Info("Iniciando reaquecimento do cache da dashboard")

	s.dashboardService.Invalidate()

	result := s.dashboardService.LoadDashboard(context.Background(), nil)

	duration := time.Since(startTime)

	if result.FailedResources >= 4 {
		logrus.WithFields(logrus.Fields{
			"duration":         duration.String(),
			"failed_resources": result.FailedResources,
		}).Error("Reaquecimento do cache falhou: nenhum recurso carregado")
		return
	}

	logrus.WithFields(logrus.Fields{
		"duration":         duration.String(),
		"failed_resources": result.FailedResources,
	}).Info("Reaquecimento do cache da dashboard concluído")

	s.syncMutex.Lock()
	s.lastSyncCompletedAt = time.Now()
	s.syncMutex.Unlock()
}

// TriggerManualSync inicia manualmente um reaquecimento do cache
func (s *CacheRefreshSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Reaquecimento do cache já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando reaquecimento manual do cache da dashboard")
	go s.refreshDashboardCache()
}

// GetStatus retorna o status atual do agendador
func (s *CacheRefreshSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"cache_last_update":      s.dashboardService.CacheLastUpdate(),
	}
}
