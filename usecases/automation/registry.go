package automation

import (
	"context"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/replyflow/replyflow-backend/models"
	"github.com/replyflow/replyflow-backend/repositories"
)

const ENGINE_CACHE_SIZE = 1024

type automationsLoader interface {
	AutomationsOfUser(ctx context.Context, exec repositories.Executor, userId string) ([]models.Automation, error)
}

// Registry keeps one matching engine per user, loaded lazily from the
// automations table. Invalidate drops a user's engine so the next lookup
// reloads the current rule set.
type Registry struct {
	executorGetter repositories.ExecutorGetter
	repository     automationsLoader
	engines        *lru.Cache[string, *Engine]
}

func NewRegistry(executorGetter repositories.ExecutorGetter, repository automationsLoader) *Registry {
	engines, _ := lru.New[string, *Engine](ENGINE_CACHE_SIZE)
	return &Registry{
		executorGetter: executorGetter,
		repository:     repository,
		engines:        engines,
	}
}

// EngineForUser returns the user's engine, loading their active rules on
// first access.
func (r *Registry) EngineForUser(ctx context.Context, userId string) (*Engine, error) {
	if engine, ok := r.engines.Get(userId); ok {
		return engine, nil
	}

	automations, err := r.repository.AutomationsOfUser(ctx, r.executorGetter.NewExecutor(), userId)
	if err != nil {
		return nil, err
	}

	engine := NewEngine()
	engine.LoadRules(automations)

	// A concurrent load may have won the race; keep the first one.
	if previous, found, _ := r.engines.PeekOrAdd(userId, engine); found {
		engine = previous
	}
	return engine, nil
}

// Invalidate forgets a user's engine after their automations changed.
func (r *Registry) Invalidate(userId string) {
	r.engines.Remove(userId)
}

// InvalidateAll drops every cached engine. Engines reload lazily on the
// next lookup.
func (r *Registry) InvalidateAll() {
	r.engines.Purge()
}

// Watch drops the cached engines whenever an automations change event
// arrives, so rule changes applied by another instance take effect here
// too. Events carry no owner, hence the full flush. Returns when ctx is
// cancelled or the channel closes.
func (r *Registry) Watch(ctx context.Context, events <-chan models.ChangeEvent) {
	for {
		select {
		case <-ctx.Done():
			return
		case _, ok := <-events:
			if !ok {
				return
			}
			r.InvalidateAll()
		}
	}
}
