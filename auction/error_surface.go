package auction

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/dan13ram/auction-client/models"

	log "github.com/sirupsen/logrus"
)

// ErrorSurface holds the one error currently shown to the user. Reporting
// never blocks operations that are still running.
type ErrorSurface struct {
	mu      sync.RWMutex
	current *models.ErrorRecord
	metrics *Metrics
}

func NewErrorSurface(metrics *Metrics) *ErrorSurface {
	return &ErrorSurface{metrics: metrics}
}

// NewErrorRecord normalizes err into a record. Taxonomy errors keep their
// kind and message; anything else is classified by what it wraps.
func NewErrorRecord(err error, at time.Time) models.ErrorRecord {
	record := models.ErrorRecord{
		Kind:    models.KindOf(err),
		Message: err.Error(),
		Cause:   err,
		At:      at,
	}

	var auctionErr *models.AuctionError
	if errors.As(err, &auctionErr) {
		record.Message = auctionErr.Message
		return record
	}
	if errors.Is(err, context.DeadlineExceeded) {
		record.Kind = models.KindTimeout
	}
	return record
}

// Report replaces the active error with err. A nil err is ignored.
func (s *ErrorSurface) Report(err error) models.ErrorRecord {
	if err == nil {
		return models.ErrorRecord{}
	}
	record := NewErrorRecord(err, time.Now())

	s.mu.Lock()
	s.current = &record
	s.mu.Unlock()

	s.metrics.setActiveError(true)
	log.WithError(err).WithField("kind", record.Kind).Warnln("[SYNC]", "Error reported:", record.Message)
	return record
}

func (s *ErrorSurface) Current() (models.ErrorRecord, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.current == nil {
		return models.ErrorRecord{}, false
	}
	return *s.current, true
}

func (s *ErrorSurface) Clear() {
	s.mu.Lock()
	s.current = nil
	s.mu.Unlock()

	s.metrics.setActiveError(false)
}

func (s *ErrorSurface) reportAndReturn(err error) error {
	s.Report(err)
	return err
}
