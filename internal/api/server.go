package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/comexflow/import-dashboard-api/internal/api/handler"
	"github.com/comexflow/import-dashboard-api/internal/api/handler/router"
	"github.com/comexflow/import-dashboard-api/internal/config"
	"github.com/comexflow/import-dashboard-api/internal/scheduler"
	"github.com/comexflow/import-dashboard-api/internal/usecases/authorizing"
	"github.com/comexflow/import-dashboard-api/internal/usecases/charting"
	"github.com/comexflow/import-dashboard-api/internal/usecases/columns"
	"github.com/comexflow/import-dashboard-api/internal/usecases/dashboarding"
	"github.com/comexflow/import-dashboard-api/internal/usecases/documents"
	"github.com/comexflow/import-dashboard-api/internal/usecases/rendering"
	"github.com/comexflow/import-dashboard-api/pkg/middleware"
	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"
)

type Server struct {
	httpServer *http.Server
}

func New(
	config *config.Config,
	authorizer authorizing.Authorizer,
	dashboardService dashboarding.Dashboarder,
	chartService charting.Charter,
	renderService rendering.Renderer,
	columnService columns.Configurator,
	documentService documents.Manager,
	cacheRefreshSyncService *scheduler.CacheRefreshSyncService,
) (*Server, error) {
	dashboardServices := handler.DashboardServices{
		Dashboard: dashboardService,
		Charts:    chartService,
		Renderer:  renderService,
		Columns:   columnService,
	}

	cronServices := handler.CronJobServices{
		CacheRefreshSyncService: cacheRefreshSyncService,
	}

	rt := router.New(
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Dashboard(dashboardServices)...),
		router.WithRoutes(handler.ColumnSettings(columnService)...),
		router.WithRoutes(handler.ProcessDocuments(documentService)...),
		router.WithRoutes(handler.CronJobs(cronServices)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(config.Cors.AllowedOrigins),
		middleware.AuthMiddleware(authorizer),
	}

	chain := alice.New(middlewares...).Then(rt)

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           chain,
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	// Aguarda sinal de término ou cancelamento do contexto da aplicação
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logrus.WithFields(logrus.Fields{
		"timeout": "15s",
	}).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

// Shutdown encerra o servidor HTTP aguardando as requisições em andamento
func (s Server) Shutdown(ctx context.Context) error {
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return err
	}

	logrus.Info("Servidor HTTP desligado com sucesso")
	return nil
}
