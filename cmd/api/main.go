package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/comexflow/import-dashboard-api/infrastructure/database/postgres"
	"github.com/comexflow/import-dashboard-api/infrastructure/integrator/comex"
	"github.com/comexflow/import-dashboard-api/infrastructure/integrator/comex/comexclient"
	"github.com/comexflow/import-dashboard-api/infrastructure/repository"
	"github.com/comexflow/import-dashboard-api/internal/api"
	"github.com/comexflow/import-dashboard-api/internal/config"
	"github.com/comexflow/import-dashboard-api/internal/scheduler"
	"github.com/comexflow/import-dashboard-api/internal/usecases/authorizing"
	"github.com/comexflow/import-dashboard-api/internal/usecases/charting"
	"github.com/comexflow/import-dashboard-api/internal/usecases/columns"
	"github.com/comexflow/import-dashboard-api/internal/usecases/dashboarding"
	"github.com/comexflow/import-dashboard-api/internal/usecases/documents"
	"github.com/comexflow/import-dashboard-api/internal/usecases/rendering"
	"github.com/sirupsen/logrus"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	columnConfigRepo := repository.NewColumnConfigRepository(pgConn)

	comexClient := comexclient.NewClient(cfg)
	comexIntegrator := comex.New(cfg, comexClient)

	authorizer := authorizing.NewService(cfg)
	columnService := columns.NewService(columnConfigRepo)
	dashboardService := dashboarding.NewService(cfg, comexIntegrator)
	documentService := documents.NewService(cfg, comexIntegrator)
	chartService := charting.NewService()
	renderService := rendering.NewService()

	// Agendador de reaquecimento do cache da dashboard
	cacheRefreshSyncService := scheduler.NewCacheRefreshSyncService(dashboardService, cfg)

	if err := cacheRefreshSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de reaquecimento do cache")
	} else {
		logrus.Info("Agendador de reaquecimento do cache iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		authorizer,
		dashboardService,
		chartService,
		renderService,
		columnService,
		documentService,
		cacheRefreshSyncService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
