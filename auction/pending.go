package auction

import (
	"sort"
	"sync"
	"time"

	"github.com/dan13ram/auction-client/models"
	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
)

type pendingKey struct {
	identity common.Address
	kind     models.ActionKind
}

// PendingRegistry allows at most one in-flight action per identity and kind.
type PendingRegistry struct {
	mu      sync.Mutex
	actions map[pendingKey]models.PendingAction
	metrics *Metrics
}

func NewPendingRegistry(metrics *Metrics) *PendingRegistry {
	return &PendingRegistry{
		actions: make(map[pendingKey]models.PendingAction),
		metrics: metrics,
	}
}

// Begin registers a new action or fails with ActionInProgressError when one
// of the same kind is already running for identity.
func (r *PendingRegistry) Begin(identity common.Address, kind models.ActionKind) (models.PendingAction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := pendingKey{identity: identity, kind: kind}
	if existing, ok := r.actions[key]; ok {
		return models.PendingAction{}, models.NewActionInProgressError(kind, existing)
	}

	action := models.PendingAction{
		ID:        uuid.NewString(),
		Kind:      kind,
		Identity:  identity,
		StartedAt: time.Now(),
	}
	r.actions[key] = action
	r.metrics.setPending(len(r.actions))
	return action, nil
}

// End removes action if it is still the registered one.
func (r *PendingRegistry) End(action models.PendingAction) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := pendingKey{identity: action.Identity, kind: action.Kind}
	if current, ok := r.actions[key]; ok && current.ID == action.ID {
		delete(r.actions, key)
	}
	r.metrics.setPending(len(r.actions))
}

func (r *PendingRegistry) State(identity common.Address, kind models.ActionKind) models.ActionState {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.actions[pendingKey{identity: identity, kind: kind}]; ok {
		return models.ActionStateSubmitting
	}
	return models.ActionStateIdle
}

// List returns the in-flight actions, oldest first.
func (r *PendingRegistry) List() []models.PendingAction {
	r.mu.Lock()
	defer r.mu.Unlock()

	list := make([]models.PendingAction, 0, len(r.actions))
	for _, action := range r.actions {
		list = append(list, action)
	}
	sort.Slice(list, func(i, j int) bool {
		return list[i].StartedAt.Before(list[j].StartedAt)
	})
	return list
}
