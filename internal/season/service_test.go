package season

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/TribalScore_Go/internal/domain"
	"github.com/osse101/TribalScore_Go/internal/event"
)

// MockRepository is a mock implementation of repository.Season
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) ListOutcomes(ctx context.Context) ([]domain.EpisodeOutcome, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.EpisodeOutcome), args.Error(1)
}

func (m *MockRepository) GetOutcome(ctx context.Context, episode int) (*domain.EpisodeOutcome, error) {
	args := m.Called(ctx, episode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.EpisodeOutcome), args.Error(1)
}

func (m *MockRepository) UpsertOutcome(ctx context.Context, outcome *domain.EpisodeOutcome) error {
	return m.Called(ctx, outcome).Error(0)
}

func (m *MockRepository) ListContestants(ctx context.Context) ([]domain.Contestant, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Contestant), args.Error(1)
}

func (m *MockRepository) GetContestant(ctx context.Context, contestantID string) (*domain.Contestant, error) {
	args := m.Called(ctx, contestantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Contestant), args.Error(1)
}

func (m *MockRepository) GetScoringConfig(ctx context.Context) (*domain.ScoringConfig, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ScoringConfig), args.Error(1)
}

func (m *MockRepository) SaveScoringConfig(ctx context.Context, cfg *domain.ScoringConfig) (int, error) {
	args := m.Called(ctx, cfg)
	return args.Int(0), args.Error(1)
}

func (m *MockRepository) GetBPSConfig(ctx context.Context) (*domain.BPSConfig, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BPSConfig), args.Error(1)
}

func (m *MockRepository) SaveBPSConfig(ctx context.Context, cfg *domain.BPSConfig) (int, error) {
	args := m.Called(ctx, cfg)
	return args.Int(0), args.Error(1)
}

func captureEvents(bus *event.MemoryBus, typ event.Type) *[]event.Event {
	var got []event.Event
	bus.Subscribe(typ, func(ctx context.Context, evt event.Event) error {
		got = append(got, evt)
		return nil
	})
	return &got
}

func validOutcome() *domain.EpisodeOutcome {
	return &domain.EpisodeOutcome{
		Episode:       2,
		Phase:         domain.PhasePreMerge,
		TribalCouncil: true,
		Active:        []string{"a", "b", "c"},
		Survivors:     []string{"a", "b"},
		Eliminated:    "c",
	}
}

func TestValidateOutcome(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(o *domain.EpisodeOutcome)
		wantErr error
	}{
		{"valid", func(o *domain.EpisodeOutcome) {}, nil},
		{"zero episode", func(o *domain.EpisodeOutcome) { o.Episode = 0 }, domain.ErrInvalidEpisode},
		{"unknown phase", func(o *domain.EpisodeOutcome) { o.Phase = "jury" }, domain.ErrInvalidInput},
		{"unknown immunity", func(o *domain.EpisodeOutcome) { o.ImmunityType = "solo" }, domain.ErrInvalidInput},
		{"eliminated survivor", func(o *domain.EpisodeOutcome) { o.Survivors = append(o.Survivors, "c") }, domain.ErrInvalidInput},
		{"oversized final three", func(o *domain.EpisodeOutcome) { o.FinalThree = []string{"a", "b", "c", "d"} }, domain.ErrInvalidInput},
		{"winner outside final three", func(o *domain.EpisodeOutcome) {
			o.Phase = domain.PhaseFinal
			o.FinalThree = []string{"a", "b"}
			o.Winner = "c"
		}, domain.ErrInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := validOutcome()
			tt.mutate(o)
			err := ValidateOutcome(o)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	assert.ErrorIs(t, ValidateOutcome(nil), domain.ErrInvalidInput)
}

func TestRecordOutcome_New(t *testing.T) {
	repo := new(MockRepository)
	bus := event.NewMemoryBus()
	events := captureEvents(bus, event.OutcomeRecorded)
	svc := NewService(repo, bus)
	o := validOutcome()

	repo.On("GetOutcome", mock.Anything, 2).Return(nil, nil)
	repo.On("UpsertOutcome", mock.Anything, o).Return(nil)

	superseded, err := svc.RecordOutcome(context.Background(), o)
	require.NoError(t, err)
	assert.False(t, superseded)
	repo.AssertExpectations(t)

	require.Len(t, *events, 1)
	payload, err := event.DecodePayload[event.OutcomeRecordedPayloadV1]((*events)[0].Payload)
	require.NoError(t, err)
	assert.Equal(t, 2, payload.Episode)
	assert.False(t, payload.Superseded)
}

func TestRecordOutcome_Supersedes(t *testing.T) {
	repo := new(MockRepository)
	bus := event.NewMemoryBus()
	events := captureEvents(bus, event.OutcomeRecorded)
	svc := NewService(repo, bus)
	o := validOutcome()

	repo.On("GetOutcome", mock.Anything, 2).Return(&domain.EpisodeOutcome{Episode: 2}, nil)
	repo.On("UpsertOutcome", mock.Anything, o).Return(nil)

	superseded, err := svc.RecordOutcome(context.Background(), o)
	require.NoError(t, err)
	assert.True(t, superseded)

	payload, err := event.DecodePayload[event.OutcomeRecordedPayloadV1]((*events)[0].Payload)
	require.NoError(t, err)
	assert.True(t, payload.Superseded)
}

func TestRecordOutcome_InvalidNeverWrites(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo, nil)
	o := validOutcome()
	o.Episode = -1

	_, err := svc.RecordOutcome(context.Background(), o)
	assert.ErrorIs(t, err, domain.ErrInvalidEpisode)
	repo.AssertNotCalled(t, "UpsertOutcome", mock.Anything, mock.Anything)
}

func TestRecordOutcome_RepoError(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo, nil)
	o := validOutcome()

	repo.On("GetOutcome", mock.Anything, 2).Return(nil, nil)
	repo.On("UpsertOutcome", mock.Anything, o).Return(errors.New("disk full"))

	_, err := svc.RecordOutcome(context.Background(), o)
	assert.ErrorContains(t, err, ErrMsgSaveOutcome)
}

func TestGetOutcome_NotFound(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo, nil)
	repo.On("GetOutcome", mock.Anything, 7).Return(nil, nil)

	_, err := svc.GetOutcome(context.Background(), 7)
	assert.ErrorIs(t, err, domain.ErrOutcomeNotFound)

	_, err = svc.GetOutcome(context.Background(), 0)
	assert.ErrorIs(t, err, domain.ErrInvalidEpisode)
}

func TestScoringConfig(t *testing.T) {
	repo := new(MockRepository)
	bus := event.NewMemoryBus()
	events := captureEvents(bus, event.ConfigUpdated)
	svc := NewService(repo, bus)
	ctx := context.Background()

	repo.On("GetScoringConfig", mock.Anything).Return(nil, nil).Once()
	_, err := svc.GetScoringConfig(ctx)
	assert.ErrorIs(t, err, domain.ErrConfigNotFound)

	cfg := &domain.ScoringConfig{SurvivalPreMerge: 1, CaptainMultiplier: 2}
	repo.On("SaveScoringConfig", mock.Anything, cfg).Return(3, nil)
	version, err := svc.SaveScoringConfig(ctx, cfg)
	require.NoError(t, err)
	assert.Equal(t, 3, version)

	require.Len(t, *events, 1)
	payload, err := event.DecodePayload[event.ConfigUpdatedPayloadV1]((*events)[0].Payload)
	require.NoError(t, err)
	assert.Equal(t, domain.ConfigKindScoring, payload.Kind)
	assert.Equal(t, 3, payload.Version)

	_, err = svc.SaveScoringConfig(ctx, &domain.ScoringConfig{CaptainMultiplier: -1})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestBPSConfig(t *testing.T) {
	repo := new(MockRepository)
	bus := event.NewMemoryBus()
	events := captureEvents(bus, event.ConfigUpdated)
	svc := NewService(repo, bus)
	ctx := context.Background()

	cfg := &domain.BPSConfig{FirstBonus: 3, SecondBonus: 2, ThirdBonus: 1}
	repo.On("GetBPSConfig", mock.Anything).Return(cfg, nil)
	repo.On("SaveBPSConfig", mock.Anything, cfg).Return(1, nil)

	got, err := svc.GetBPSConfig(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, got.FirstBonus)

	_, err = svc.SaveBPSConfig(ctx, cfg)
	require.NoError(t, err)
	payload, err := event.DecodePayload[event.ConfigUpdatedPayloadV1]((*events)[0].Payload)
	require.NoError(t, err)
	assert.Equal(t, domain.ConfigKindBPS, payload.Kind)
}

func TestEnsureDefaults(t *testing.T) {
	t.Run("seeds empty tables", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo, nil)

		repo.On("GetScoringConfig", mock.Anything).Return(nil, nil)
		repo.On("GetBPSConfig", mock.Anything).Return(nil, nil)
		repo.On("SaveScoringConfig", mock.Anything, mock.AnythingOfType("*domain.ScoringConfig")).Return(1, nil)
		repo.On("SaveBPSConfig", mock.Anything, mock.AnythingOfType("*domain.BPSConfig")).Return(1, nil)

		err := svc.EnsureDefaults(context.Background(), domain.ScoringConfig{}, domain.BPSConfig{})
		require.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("keeps existing versions", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo, nil)

		repo.On("GetScoringConfig", mock.Anything).Return(&domain.ScoringConfig{Version: 4}, nil)
		repo.On("GetBPSConfig", mock.Anything).Return(&domain.BPSConfig{Version: 2}, nil)

		err := svc.EnsureDefaults(context.Background(), domain.ScoringConfig{}, domain.BPSConfig{})
		require.NoError(t, err)
		repo.AssertNotCalled(t, "SaveScoringConfig", mock.Anything, mock.Anything)
		repo.AssertNotCalled(t, "SaveBPSConfig", mock.Anything, mock.Anything)
	})
}
