package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/competitor-radar-api/infrastructure/repository"
	"github.com/vfg2006/competitor-radar-api/internal/config"
	"github.com/vfg2006/competitor-radar-api/internal/domain"
	"github.com/vfg2006/competitor-radar-api/internal/usecases/discovering"
)

// DiscoverySyncConfig representa a configuração do agendador de atualização
// das buscas acompanhadas
type DiscoverySyncConfig struct {
	CronSchedule        string
	RequestDelaySeconds int
	SyncEnabled         bool
}

// DiscoverySyncService refaz periodicamente a descoberta das buscas
// acompanhadas e grava um snapshot do tamanho da concorrência. O delay entre
// requisições protege a biblioteca de anúncios de rajadas.
type DiscoverySyncService struct {
	scheduler           *gocron.Scheduler
	config              DiscoverySyncConfig
	searchRepo          repository.TrackedSearchRepository
	discoverer          discovering.Discoverer
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

// SyncStatus é o retrato do agendador exposto pela rota de status
type SyncStatus struct {
	Enabled             bool       `json:"enabled"`
	Running             bool       `json:"running"`
	CronSchedule        string     `json:"cronSchedule"`
	LastSyncStartedAt   *time.Time `json:"lastSyncStartedAt,omitempty"`
	LastSyncCompletedAt *time.Time `json:"lastSyncCompletedAt,omitempty"`
}

func NewDiscoverySyncService(
	searchRepo repository.TrackedSearchRepository,
	discoverer discovering.Discoverer,
	appConfig *config.Config,
) *DiscoverySyncService {
	syncConfig := DiscoverySyncConfig{
		CronSchedule:        appConfig.DiscoverySync.CronSchedule,
		RequestDelaySeconds: appConfig.DiscoverySync.RequestDelaySeconds,
		SyncEnabled:         appConfig.DiscoverySync.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":         syncConfig.CronSchedule,
		"request_delay_seconds": syncConfig.RequestDelaySeconds,
		"sync_enabled":          syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de buscas acompanhadas carregada")

	return &DiscoverySyncService{
		scheduler:  scheduler,
		config:     syncConfig,
		searchRepo: searchRepo,
		discoverer: discoverer,
	}
}

// Start inicia o agendador
func (s *DiscoverySyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Atualização agendada de buscas acompanhadas desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de buscas acompanhadas")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncTrackedSearches(context.Background())
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar atualização de buscas acompanhadas: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de buscas acompanhadas")
		s.scheduler.Stop()
	}()

	return nil
}

// TriggerManualSync dispara uma atualização fora do horário agendado
func (s *DiscoverySyncService) TriggerManualSync() {
	go s.syncTrackedSearches(context.Background())
}

// Status devolve o estado atual do agendador
func (s *DiscoverySyncService) Status() SyncStatus {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	status := SyncStatus{
		Enabled:      s.config.SyncEnabled,
		Running:      s.syncRunning,
		CronSchedule: s.config.CronSchedule,
	}
	if !s.lastSyncStartedAt.IsZero() {
		started := s.lastSyncStartedAt
		status.LastSyncStartedAt = &started
	}
	if !s.lastSyncCompletedAt.IsZero() {
		completed := s.lastSyncCompletedAt
		status.LastSyncCompletedAt = &completed
	}

	return status
}

// syncTrackedSearches refaz a descoberta de todas as buscas ativas, uma por
// vez, respeitando o delay configurado entre requisições
func (s *DiscoverySyncService) syncTrackedSearches(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Atualização de buscas acompanhadas já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.lastSyncCompletedAt = time.Now()
		s.syncMutex.Unlock()
	}()

	searches, err := s.searchRepo.ListActive()
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar lista de buscas acompanhadas")
		return
	}

	if len(searches) == 0 {
		logrus.Info("Nenhuma busca acompanhada ativa para atualizar")
		return
	}

	logrus.WithField("searches", len(searches)).Info("Iniciando atualização de buscas acompanhadas")

	for i, search := range searches {
		s.refreshSearch(ctx, search)

		if i < len(searches)-1 {
			time.Sleep(time.Duration(s.config.RequestDelaySeconds) * time.Second)
		}
	}

	logrus.WithFields(logrus.Fields{
		"searches": len(searches),
		"duration": time.Since(s.lastSyncStartedAt).String(),
	}).Info("Atualização de buscas acompanhadas concluída")
}

func (s *DiscoverySyncService) refreshSearch(ctx context.Context, search *domain.TrackedSearch) {
	logger := logrus.WithFields(logrus.Fields{
		"search_id": search.ID,
		"keyword":   search.Keyword,
		"country":   search.Country,
	})

	result, err := s.discoverer.Search(ctx, domain.DiscoveryRequest{
		Keyword: search.Keyword,
		Country: search.Country,
	})
	if err != nil {
		logger.WithError(err).Error("Erro ao atualizar busca acompanhada")
		return
	}

	if err := s.searchRepo.UpdateSnapshot(search.ID, len(result.Candidates)); err != nil {
		logger.WithError(err).Error("Erro ao gravar snapshot da busca acompanhada")
		return
	}

	logger.WithField("candidates", len(result.Candidates)).Info("Busca acompanhada atualizada")
}
