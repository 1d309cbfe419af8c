package app

import (
	"sync"
	"time"

	"github.com/dan13ram/auction-client/models"
	"github.com/jonboulle/clockwork"
	log "github.com/sirupsen/logrus"
)

const HealthServiceName = "HEALTH"

// HealthService periodically collects and logs the health of the other
// services.
type HealthService struct {
	services []models.Service
	stop     chan bool
	interval time.Duration
	wg       *sync.WaitGroup
	clock    clockwork.Clock

	mu      sync.RWMutex
	last    []models.ServiceHealth
	lastRun time.Time
}

var _ models.Service = &HealthService{}

func (x *HealthService) Collect() []models.ServiceHealth {
	healths := make([]models.ServiceHealth, 0, len(x.services))
	for _, service := range x.services {
		health := service.Health()
		healths = append(healths, health)
		entry := log.WithField("service", health.Name).WithField("refreshes", health.Refreshes)
		if health.Healthy {
			entry.Debugln("[HEALTH]", "Service is healthy")
		} else {
			entry.WithField("failed_fields", health.FailedFields).Warnln("[HEALTH]", "Service is unhealthy")
		}
	}

	x.mu.Lock()
	x.last = healths
	x.lastRun = x.clock.Now()
	x.mu.Unlock()

	return healths
}

func (x *HealthService) ServiceHealths() []models.ServiceHealth {
	x.mu.RLock()
	defer x.mu.RUnlock()
	return append([]models.ServiceHealth(nil), x.last...)
}

func (x *HealthService) Start() {
	log.Debug("[HEALTH] Starting health")
	stop := false
	for !stop {
		x.Collect()

		select {
		case <-x.stop:
			stop = true
			log.Debug("[HEALTH] Stopped health")
		case <-x.clock.After(x.interval):
		}
	}
	x.wg.Done()
}

func (x *HealthService) Stop() {
	log.Debug("[HEALTH] Stopping health")
	select {
	case x.stop <- true:
	default:
	}
}

func (x *HealthService) Health() models.ServiceHealth {
	x.mu.RLock()
	defer x.mu.RUnlock()

	healthy := true
	for _, health := range x.last {
		healthy = healthy && health.Healthy
	}
	return models.ServiceHealth{
		Name:         HealthServiceName,
		LastSyncTime: x.lastRun,
		NextSyncTime: x.lastRun.Add(x.interval),
		Healthy:      healthy,
	}
}

func NewHealthService(services []models.Service, wg *sync.WaitGroup, interval time.Duration, clock clockwork.Clock) *HealthService {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &HealthService{
		services: services,
		stop:     make(chan bool, 1),
		interval: interval,
		wg:       wg,
		clock:    clock,
	}
}
