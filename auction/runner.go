package auction

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/dan13ram/auction-client/models"

	log "github.com/sirupsen/logrus"
)

const RefreshRunnerName = "auction refresh"

// RefreshRunner re-reads every field on each run. It does nothing while the
// synchronizer is disconnected.
type RefreshRunner struct {
	synchronizer *Synchronizer
	timeout      time.Duration

	mu     sync.Mutex
	status models.RunnerStatus
}

var _ models.Runner = &RefreshRunner{}

func (x *RefreshRunner) Run() {
	if x.synchronizer.State() != models.StateConnected {
		log.Debugln("[REFRESH]", "Skipping refresh, not connected")
		x.setStatus(models.RunnerStatus{Connected: false})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), x.timeout)
	defer cancel()

	failed, err := x.synchronizer.refreshFields(ctx, models.Fields...)
	x.synchronizer.metrics.observeRefreshRun(err)
	if err != nil {
		log.WithError(err).Warnln("[REFRESH]", "Refresh failed for", len(failed), "fields")
	} else {
		log.Debugln("[REFRESH]", "Refreshed all fields")
	}

	snapshot := x.synchronizer.Snapshot()
	x.setStatus(models.RunnerStatus{
		Connected:    true,
		FailedFields: failed,
		LastSnapshot: &snapshot,
	})
}

func (x *RefreshRunner) setStatus(status models.RunnerStatus) {
	x.mu.Lock()
	x.status = status
	x.mu.Unlock()
}

func (x *RefreshRunner) Status() models.RunnerStatus {
	x.mu.Lock()
	defer x.mu.Unlock()

	status := x.status
	status.FailedFields = append([]models.Field(nil), x.status.FailedFields...)
	if x.status.LastSnapshot != nil {
		snapshot := x.status.LastSnapshot.Copy()
		status.LastSnapshot = &snapshot
	}
	return status
}

func NewRefreshRunner(s *Synchronizer, timeout time.Duration) (*RefreshRunner, error) {
	if s == nil {
		return nil, fmt.Errorf("synchronizer is nil")
	}
	if timeout <= 0 {
		return nil, fmt.Errorf("refresh timeout must be positive")
	}
	return &RefreshRunner{synchronizer: s, timeout: timeout}, nil
}
