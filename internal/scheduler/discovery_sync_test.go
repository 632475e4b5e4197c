package scheduler

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	repomocks "github.com/vfg2006/competitor-radar-api/infrastructure/repository/mocks"
	"github.com/vfg2006/competitor-radar-api/internal/domain"
	discoveringmocks "github.com/vfg2006/competitor-radar-api/internal/usecases/discovering/mocks"
	"go.uber.org/mock/gomock"
)

func TestDiscoverySyncService_syncTrackedSearches(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	searchRepo := repomocks.NewMockTrackedSearchRepository(ctrl)
	discoverer := discoveringmocks.NewMockDiscoverer(ctrl)

	service := &DiscoverySyncService{
		config:     DiscoverySyncConfig{SyncEnabled: true},
		searchRepo: searchRepo,
		discoverer: discoverer,
	}

	searches := []*domain.TrackedSearch{
		{ID: "s1", Keyword: "masajeador", Country: "MX", Active: true},
		{ID: "s2", Keyword: "corrector postura", Country: "CO", Active: true},
	}

	searchRepo.EXPECT().ListActive().Return(searches, nil)

	discoverer.EXPECT().
		Search(gomock.Any(), domain.DiscoveryRequest{Keyword: "masajeador", Country: "MX"}).
		Return(&domain.DiscoveryResponse{
			Candidates: make([]domain.ScoredAdCandidate, 7),
		}, nil)
	searchRepo.EXPECT().UpdateSnapshot("s1", 7).Return(nil)

	discoverer.EXPECT().
		Search(gomock.Any(), domain.DiscoveryRequest{Keyword: "corrector postura", Country: "CO"}).
		Return(&domain.DiscoveryResponse{
			Candidates: make([]domain.ScoredAdCandidate, 3),
		}, nil)
	searchRepo.EXPECT().UpdateSnapshot("s2", 3).Return(nil)

	service.syncTrackedSearches(context.Background())

	status := service.Status()
	assert.False(t, status.Running)
	assert.NotNil(t, status.LastSyncStartedAt)
	assert.NotNil(t, status.LastSyncCompletedAt)
}

func TestDiscoverySyncService_syncTrackedSearches_FalhaIsolada(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	searchRepo := repomocks.NewMockTrackedSearchRepository(ctrl)
	discoverer := discoveringmocks.NewMockDiscoverer(ctrl)

	service := &DiscoverySyncService{
		config:     DiscoverySyncConfig{SyncEnabled: true},
		searchRepo: searchRepo,
		discoverer: discoverer,
	}

	searches := []*domain.TrackedSearch{
		{ID: "s1", Keyword: "masajeador", Country: "MX", Active: true},
		{ID: "s2", Keyword: "corrector postura", Country: "CO", Active: true},
	}

	searchRepo.EXPECT().ListActive().Return(searches, nil)

	// A primeira busca falha; a segunda continua normalmente
	discoverer.EXPECT().
		Search(gomock.Any(), domain.DiscoveryRequest{Keyword: "masajeador", Country: "MX"}).
		Return(nil, errors.New("rate limit"))

	discoverer.EXPECT().
		Search(gomock.Any(), domain.DiscoveryRequest{Keyword: "corrector postura", Country: "CO"}).
		Return(&domain.DiscoveryResponse{
			Candidates: make([]domain.ScoredAdCandidate, 5),
		}, nil)
	searchRepo.EXPECT().UpdateSnapshot("s2", 5).Return(nil)

	service.syncTrackedSearches(context.Background())
}

func TestDiscoverySyncService_syncTrackedSearches_SemBuscasAtivas(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	searchRepo := repomocks.NewMockTrackedSearchRepository(ctrl)
	discoverer := discoveringmocks.NewMockDiscoverer(ctrl)

	service := &DiscoverySyncService{
		config:     DiscoverySyncConfig{SyncEnabled: true},
		searchRepo: searchRepo,
		discoverer: discoverer,
	}

	searchRepo.EXPECT().ListActive().Return(nil, nil)

	service.syncTrackedSearches(context.Background())
}

func TestDiscoverySyncService_ExecucaoConcorrenteIgnorada(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	searchRepo := repomocks.NewMockTrackedSearchRepository(ctrl)
	discoverer := discoveringmocks.NewMockDiscoverer(ctrl)

	service := &DiscoverySyncService{
		config:     DiscoverySyncConfig{SyncEnabled: true},
		searchRepo: searchRepo,
		discoverer: discoverer,
	}

	// Simula uma execução em andamento: a nova chamada volta sem tocar o
	// repositório
	service.syncRunning = true
	service.syncTrackedSearches(context.Background())

	status := service.Status()
	assert.True(t, status.Running)
}
