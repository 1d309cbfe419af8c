package models

import (
	"sync"
	"time"
)

type Service interface {
	Start()
	Health() ServiceHealth
	Stop()
}

// Runner is one unit of periodic work driven by a runner service.
type Runner interface {
	Run()
	Status() RunnerStatus
}

type RunnerStatus struct {
	Connected    bool             `json:"connected"`
	FailedFields []Field          `json:"failed_fields"`
	LastSnapshot *AuctionSnapshot `json:"last_snapshot,omitempty"`
}

type ServiceHealth struct {
	Name         string           `json:"name"`
	LastSyncTime time.Time        `json:"last_sync_time"`
	NextSyncTime time.Time        `json:"next_sync_time"`
	FailedFields []Field          `json:"failed_fields"`
	Healthy      bool             `json:"healthy"`
	Refreshes    int64            `json:"refreshes"`
	LastSnapshot *AuctionSnapshot `json:"last_snapshot,omitempty"`
}

type EmptyService struct {
	wg *sync.WaitGroup
}

func (e *EmptyService) Start() {}

func (e *EmptyService) Stop() {
	e.wg.Done()
}

const EmptyServiceName = "empty"

func (e *EmptyService) Health() ServiceHealth {
	return ServiceHealth{
		Name:         EmptyServiceName,
		LastSyncTime: time.Now(),
		NextSyncTime: time.Now(),
		Healthy:      true,
	}
}

func NewEmptyService(wg *sync.WaitGroup) *EmptyService {
	return &EmptyService{
		wg: wg,
	}
}
