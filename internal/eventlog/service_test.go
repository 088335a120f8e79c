package eventlog

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/TribalScore_Go/internal/domain"
	"github.com/osse101/TribalScore_Go/internal/event"
	"github.com/osse101/TribalScore_Go/internal/repository"
)

// MockRepository is a mock implementation of repository.EventLog
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) LogEvent(ctx context.Context, eventType string, episode *int, payload, metadata map[string]interface{}) error {
	args := m.Called(ctx, eventType, episode, payload, metadata)
	return args.Error(0)
}

func (m *MockRepository) GetEvents(ctx context.Context, filter repository.EventLogFilter) ([]repository.EventLogEntry, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.EventLogEntry), args.Error(1)
}

func (m *MockRepository) CleanupOldEvents(ctx context.Context, retentionDays int) (int64, error) {
	args := m.Called(ctx, retentionDays)
	return args.Get(0).(int64), args.Error(1)
}

func intPtr(v int) *int { return &v }

func TestService_LogsEveryDomainEvent(t *testing.T) {
	tests := []struct {
		name    string
		evt     event.Event
		episode *int
	}{
		{"outcome", event.NewOutcomeRecordedEvent(3, domain.PhasePreMerge, true), intPtr(3)},
		{"overrides changed", event.NewOverridesChangedEvent("clear_all", []int{2, 5}), intPtr(2)},
		{"materialized", event.NewOverridesMaterializedEvent(4, 12), intPtr(4)},
		{"prices", event.NewPricesRecomputedEvent(6, 40), intPtr(6)},
		{"config", event.NewConfigUpdatedEvent(domain.ConfigKindScoring, 2), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockRepository)
			bus := event.NewMemoryBus()
			NewService(repo).Subscribe(bus)

			repo.On("LogEvent", mock.Anything, string(tt.evt.Type), tt.episode, mock.AnythingOfType("map[string]interface {}"), mock.Anything).
				Return(nil).Once()

			require.NoError(t, bus.Publish(context.Background(), tt.evt))
			repo.AssertExpectations(t)
		})
	}
}

func TestService_HandleEvent_KeepsMetadata(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo).(*service)

	evt := event.NewOverridesChangedEvent("set_category", []int{7})
	repo.On("LogEvent", mock.Anything, string(event.OverridesChanged), intPtr(7),
		mock.MatchedBy(func(p map[string]interface{}) bool { return p["action"] == "set_category" }),
		map[string]interface{}{event.MetadataKeyAction: "set_category"},
	).Return(nil)

	require.NoError(t, svc.handleEvent(context.Background(), evt))
	repo.AssertExpectations(t)
}

func TestService_HandleEvent_UndecodablePayloadSkipped(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo).(*service)

	err := svc.handleEvent(context.Background(), event.Event{Type: event.OutcomeRecorded, Payload: "not an object"})
	assert.NoError(t, err)
	repo.AssertNotCalled(t, "LogEvent", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestService_HandleEvent_RepositoryError(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo).(*service)

	repo.On("LogEvent", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(errors.New("db down"))

	err := svc.handleEvent(context.Background(), event.NewOverridesMaterializedEvent(1, 0))
	assert.Error(t, err)
}

func TestService_ListEvents_ClampsLimit(t *testing.T) {
	tests := []struct {
		name  string
		limit int
		want  int
	}{
		{"default", 0, DefaultListLimit},
		{"negative", -5, DefaultListLimit},
		{"within", 25, 25},
		{"clamped", MaxListLimit + 1, MaxListLimit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockRepository)
			svc := NewService(repo)

			repo.On("GetEvents", mock.Anything, repository.EventLogFilter{Limit: tt.want}).Return(nil, nil)

			events, err := svc.ListEvents(context.Background(), repository.EventLogFilter{Limit: tt.limit})
			require.NoError(t, err)
			assert.NotNil(t, events)
			assert.Empty(t, events)
			repo.AssertExpectations(t)
		})
	}
}

func TestService_ListEvents_WrapsError(t *testing.T) {
	repo := new(MockRepository)
	repo.On("GetEvents", mock.Anything, mock.Anything).Return(nil, errors.New("boom"))

	_, err := NewService(repo).ListEvents(context.Background(), repository.EventLogFilter{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrMsgListEventsFailed)
}

func TestService_CleanupOldEvents(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo)
	ctx := context.Background()

	repo.On("CleanupOldEvents", ctx, 10).Return(int64(5), nil)

	count, err := svc.CleanupOldEvents(ctx, 10)
	assert.NoError(t, err)
	assert.Equal(t, int64(5), count)
	repo.AssertExpectations(t)
}
