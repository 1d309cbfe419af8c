package main

import (
	"io"
	"sync"
	"testing"

	"github.com/dan13ram/auction-client/app"
	"github.com/dan13ram/auction-client/auction"
	"github.com/dan13ram/auction-client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	log "github.com/sirupsen/logrus"
)

func init() {
	log.SetOutput(io.Discard)
}

func newTestSynchronizer() *auction.Synchronizer {
	return auction.NewSynchronizer(nil, nil, nil, 0, auction.NewMetrics())
}

func TestCreateServices(t *testing.T) {
	t.Run("Refresh Disabled", func(t *testing.T) {
		app.Config.Refresh = models.ServiceConfig{Enabled: false}
		var wg sync.WaitGroup

		services, err := CreateServices(&wg, newTestSynchronizer())

		require.NoError(t, err)
		require.Len(t, services, 2)
		assert.IsType(t, &models.EmptyService{}, services[0])
		assert.IsType(t, &app.HealthService{}, services[1])
	})

	t.Run("Refresh Enabled", func(t *testing.T) {
		app.Config.Refresh = models.ServiceConfig{Enabled: true, IntervalMillis: 1000}
		app.Config.Ethereum.RPCTimeoutMillis = 5000
		var wg sync.WaitGroup

		services, err := CreateServices(&wg, newTestSynchronizer())

		require.NoError(t, err)
		require.Len(t, services, 2)
		assert.IsType(t, &app.RunnerService{}, services[0])
		assert.Equal(t, auction.RefreshRunnerName, services[0].Health().Name)
	})

	t.Run("Invalid Refresh Timeout", func(t *testing.T) {
		app.Config.Refresh = models.ServiceConfig{Enabled: true, IntervalMillis: 1000}
		app.Config.Ethereum.RPCTimeoutMillis = 0
		var wg sync.WaitGroup

		_, err := CreateServices(&wg, newTestSynchronizer())

		assert.Error(t, err)
	})
}
