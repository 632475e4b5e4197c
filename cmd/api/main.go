package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/competitor-radar-api/infrastructure/database/postgres"
	"github.com/vfg2006/competitor-radar-api/infrastructure/integrator/adlibrary"
	"github.com/vfg2006/competitor-radar-api/infrastructure/integrator/adlibrary/adlibraryclient"
	"github.com/vfg2006/competitor-radar-api/infrastructure/integrator/browser"
	"github.com/vfg2006/competitor-radar-api/infrastructure/integrator/textreader"
	"github.com/vfg2006/competitor-radar-api/infrastructure/repository"
	"github.com/vfg2006/competitor-radar-api/internal/api"
	"github.com/vfg2006/competitor-radar-api/internal/config"
	"github.com/vfg2006/competitor-radar-api/internal/scheduler"
	"github.com/vfg2006/competitor-radar-api/internal/usecases/analyzing"
	"github.com/vfg2006/competitor-radar-api/internal/usecases/discovering"
	"github.com/vfg2006/competitor-radar-api/internal/usecases/pricing"
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

	runRepo := repository.NewAnalysisRunRepository(pgConn)
	searchRepo := repository.NewTrackedSearchRepository(pgConn)

	adLibraryClient := adlibraryclient.NewClient(cfg)
	adLibraryIntegrator := adlibrary.New(cfg, adLibraryClient)

	discoveryService := discovering.NewService(adLibraryIntegrator)

	// A ordem define a prioridade da cadeia de fontes: o renderizador
	// interativo primeiro, o extrator de texto como fallback
	contentSources := []analyzing.ContentSource{
		browser.New(cfg.Renderer, cfg.Market),
		textreader.New(cfg.TextReader),
	}

	analysisService := analyzing.NewService(contentSources, cfg.Analysis, cfg.Market)
	marginService := pricing.NewService(cfg.Market)

	discoverySyncService := scheduler.NewDiscoverySyncService(
		searchRepo,
		discoveryService,
		cfg,
	)

	if err := discoverySyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de buscas acompanhadas")
	} else {
		logrus.Info("Agendador de buscas acompanhadas iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		discoveryService,
		analysisService,
		marginService,
		runRepo,
		searchRepo,
		discoverySyncService,
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
