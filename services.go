package main

import (
	"fmt"
	"sync"
	"time"

	"github.com/dan13ram/auction-client/app"
	"github.com/dan13ram/auction-client/auction"
	"github.com/dan13ram/auction-client/models"
)

const defaultHealthInterval = time.Minute

type ServiceFactory func(*sync.WaitGroup, *auction.Synchronizer) (models.Service, error)

func GetServiceFactories() map[string]ServiceFactory {
	return map[string]ServiceFactory{
		auction.RefreshRunnerName: NewRefreshService,
	}
}

func NewRefreshService(wg *sync.WaitGroup, synchronizer *auction.Synchronizer) (models.Service, error) {
	if !app.Config.Refresh.Enabled {
		return models.NewEmptyService(wg), nil
	}

	interval := time.Duration(app.Config.Refresh.IntervalMillis) * time.Millisecond
	timeout := time.Duration(app.Config.Ethereum.RPCTimeoutMillis) * time.Millisecond
	runner, err := auction.NewRefreshRunner(synchronizer, timeout)
	if err != nil {
		return nil, err
	}

	service := app.NewRunnerService(auction.RefreshRunnerName, runner, wg, interval)
	if service == nil {
		return nil, fmt.Errorf("invalid %s service parameters", auction.RefreshRunnerName)
	}
	return service, nil
}

// CreateServices builds every service plus the health service watching them.
// Each returned service calls wg.Done once it has stopped.
func CreateServices(wg *sync.WaitGroup, synchronizer *auction.Synchronizer) ([]models.Service, error) {
	var services []models.Service
	for name, factory := range GetServiceFactories() {
		service, err := factory(wg, synchronizer)
		if err != nil {
			return nil, fmt.Errorf("creating %s: %w", name, err)
		}
		services = append(services, service)
	}

	interval := defaultHealthInterval
	if app.Config.Refresh.Enabled && app.Config.Refresh.IntervalMillis > 0 {
		interval = time.Duration(app.Config.Refresh.IntervalMillis) * time.Millisecond
	}
	health := app.NewHealthService(services, wg, interval, nil)
	services = append(services, health)

	wg.Add(len(services))
	return services, nil
}
