package app

import (
	"sync"
	"time"

	"github.com/dan13ram/auction-client/models"
	"github.com/jonboulle/clockwork"
	log "github.com/sirupsen/logrus"
)

// RunnerService calls its runner every interval until stopped.
type RunnerService struct {
	name     string
	runner   models.Runner
	stop     chan bool
	interval time.Duration
	wg       *sync.WaitGroup
	clock    clockwork.Clock

	mu     sync.RWMutex
	health models.ServiceHealth
}

var _ models.Service = &RunnerService{}

func (x *RunnerService) Start() {
	log.Infof("[%s] Starting service", x.name)
	stop := false
	for !stop {
		log.Debugf("[%s] Starting run", x.name)
		x.runner.Run()
		x.updateHealth()
		log.Debugf("[%s] Finished run, sleeping for %v", x.name, x.interval)

		select {
		case <-x.stop:
			stop = true
			log.Infof("[%s] Stopped service", x.name)
		case <-x.clock.After(x.interval):
		}
	}
	x.wg.Done()
}

func (x *RunnerService) updateHealth() {
	status := x.runner.Status()
	now := x.clock.Now()

	x.mu.Lock()
	defer x.mu.Unlock()

	x.health = models.ServiceHealth{
		Name:         x.name,
		LastSyncTime: now,
		NextSyncTime: now.Add(x.interval),
		FailedFields: status.FailedFields,
		Healthy:      status.Connected && len(status.FailedFields) == 0,
		Refreshes:    x.health.Refreshes + 1,
		LastSnapshot: status.LastSnapshot,
	}
}

func (x *RunnerService) Health() models.ServiceHealth {
	x.mu.RLock()
	defer x.mu.RUnlock()
	return x.health
}

func (x *RunnerService) Stop() {
	log.Debugf("[%s] Stopping service", x.name)
	select {
	case x.stop <- true:
	default:
	}
}

func NewRunnerService(name string, runner models.Runner, wg *sync.WaitGroup, interval time.Duration) *RunnerService {
	return NewRunnerServiceWithClock(name, runner, wg, interval, clockwork.NewRealClock())
}

func NewRunnerServiceWithClock(name string, runner models.Runner, wg *sync.WaitGroup, interval time.Duration, clock clockwork.Clock) *RunnerService {
	if name == "" || runner == nil || wg == nil || interval <= 0 || clock == nil {
		log.Debug("[RUNNER] Invalid parameters")
		return nil
	}

	return &RunnerService{
		name:     name,
		runner:   runner,
		stop:     make(chan bool, 1),
		interval: interval,
		wg:       wg,
		clock:    clock,
		health: models.ServiceHealth{
			Name: name,
		},
	}
}
