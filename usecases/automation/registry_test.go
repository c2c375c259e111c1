package automation

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/replyflow/replyflow-backend/models"
	"github.com/replyflow/replyflow-backend/repositories"
)

type automationsLoaderMock struct {
	mock.Mock
}

func (m *automationsLoaderMock) AutomationsOfUser(ctx context.Context, exec repositories.Executor,
	userId string,
) ([]models.Automation, error) {
	args := m.Called(ctx, exec, userId)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Automation), args.Error(1)
}

func TestRegistryLoadsOnceAndServesFromCache(t *testing.T) {
	loader := new(automationsLoaderMock)
	loader.On("AutomationsOfUser", mock.Anything, mock.Anything, "user-1").
		Return([]models.Automation{}, nil).Once()

	registry := NewRegistry(repositories.ExecutorGetter{}, loader)

	first, err := registry.EngineForUser(context.Background(), "user-1")
	assert.NoError(t, err)
	second, err := registry.EngineForUser(context.Background(), "user-1")
	assert.NoError(t, err)

	assert.Same(t, first, second)
	loader.AssertExpectations(t)
}

func TestRegistryInvalidateForcesReload(t *testing.T) {
	loader := new(automationsLoaderMock)
	loader.On("AutomationsOfUser", mock.Anything, mock.Anything, "user-1").
		Return([]models.Automation{}, nil).Twice()

	registry := NewRegistry(repositories.ExecutorGetter{}, loader)

	_, err := registry.EngineForUser(context.Background(), "user-1")
	assert.NoError(t, err)

	registry.Invalidate("user-1")

	_, err = registry.EngineForUser(context.Background(), "user-1")
	assert.NoError(t, err)
	loader.AssertExpectations(t)
}

func TestRegistryWatchFlushesOnChangeEvents(t *testing.T) {
	loader := new(automationsLoaderMock)
	loader.On("AutomationsOfUser", mock.Anything, mock.Anything, "user-1").
		Return([]models.Automation{}, nil).Twice()

	registry := NewRegistry(repositories.ExecutorGetter{}, loader)

	_, err := registry.EngineForUser(context.Background(), "user-1")
	assert.NoError(t, err)

	// An automations change on another instance reaches the registry as a
	// bare change event; the cached engine must not survive it.
	events := make(chan models.ChangeEvent, 1)
	done := make(chan struct{})
	go func() {
		defer close(done)
		registry.Watch(context.Background(), events)
	}()

	events <- models.ChangeEvent{Table: "automations", Op: models.ChangeUpdate, RecordId: "auto-1"}
	close(events)
	<-done

	_, err = registry.EngineForUser(context.Background(), "user-1")
	assert.NoError(t, err)
	loader.AssertExpectations(t)
}

func TestRegistryWatchStopsOnContextCancel(t *testing.T) {
	registry := NewRegistry(repositories.ExecutorGetter{}, new(automationsLoaderMock))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		registry.Watch(ctx, make(chan models.ChangeEvent))
	}()

	cancel()
	<-done
}
