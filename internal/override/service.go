package override

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/unicode/norm"

	"github.com/osse101/TribalScore_Go/internal/concurrency"
	"github.com/osse101/TribalScore_Go/internal/domain"
	"github.com/osse101/TribalScore_Go/internal/event"
	"github.com/osse101/TribalScore_Go/internal/logger"
	"github.com/osse101/TribalScore_Go/internal/metrics"
	"github.com/osse101/TribalScore_Go/internal/repository"
)

// EpisodeOverrides is the admin view of one episode's corrections
type EpisodeOverrides struct {
	Episode      int                         `json:"episode"`
	Categories   []domain.CategoryOverride   `json:"categories"`
	Totals       []domain.TotalOverride      `json:"totals"`
	Materialized []domain.MaterializedPoints `json:"materialized"`
}

// Service defines the override and materialization business logic
type Service interface {
	// SetCategoryOverride writes a category override, or deletes it when
	// points is nil, then re-materializes the episode
	SetCategoryOverride(ctx context.Context, contestantID string, episode int, category string, points *int) error
	DeleteCategoryOverride(ctx context.Context, contestantID string, episode int, category string) error
	// SetTotalOverride writes a whole-row total, or deletes it when total is nil
	SetTotalOverride(ctx context.Context, contestantID string, episode int, total *int) error
	DeleteTotalOverride(ctx context.Context, contestantID string, episode int) error
	ClearEpisode(ctx context.Context, episode int) error
	ClearAll(ctx context.Context) error

	ListEpisode(ctx context.Context, episode int) (*EpisodeOverrides, error)
	MaterializeEpisode(ctx context.Context, episode int) ([]domain.MaterializedPoints, error)
	MaterializeAll(ctx context.Context) (int, error)

	// Corrections returns the corrections readers should reconcile against:
	// materialized rows for materialized episodes, raw overrides otherwise
	Corrections(ctx context.Context) (Map, error)
}

type service struct {
	repo  repository.Override
	locks *concurrency.LockManager
	bus   event.Bus
	now   func() time.Time
}

// NewService creates a new override service
func NewService(repo repository.Override, locks *concurrency.LockManager, bus event.Bus) Service {
	if locks == nil {
		locks = concurrency.NewLockManager()
	}
	return &service{
		repo:  repo,
		locks: locks,
		bus:   bus,
		now:   time.Now,
	}
}

// NormalizeCategory trims the label and puts it in NFC form so visually
// identical labels match the scorer's vocabulary byte for byte
func NormalizeCategory(category string) string {
	return norm.NFC.String(strings.TrimSpace(category))
}

func validateTarget(contestantID string, episode int) error {
	if strings.TrimSpace(contestantID) == "" {
		return fmt.Errorf("%w: contestant id required", domain.ErrInvalidInput)
	}
	if episode < 1 {
		return fmt.Errorf("%w: %d", domain.ErrInvalidEpisode, episode)
	}
	return nil
}

func (s *service) SetCategoryOverride(ctx context.Context, contestantID string, episode int, category string, points *int) error {
	if points == nil {
		return s.DeleteCategoryOverride(ctx, contestantID, episode, category)
	}
	if err := validateTarget(contestantID, episode); err != nil {
		return err
	}
	category = NormalizeCategory(category)
	if category == "" {
		return domain.ErrInvalidCategory
	}
	if !domain.IsKnownCategory(category) {
		// accepted and injected as a new source; flagged in case it is a typo
		logger.FromContext(ctx).Warn(LogMsgUnknownCategory,
			"contestant_id", contestantID, "episode", episode, "category", category)
	}

	row := &domain.CategoryOverride{
		ContestantID: contestantID,
		Episode:      episode,
		Category:     category,
		Points:       *points,
		UpdatedAt:    s.now(),
	}
	if err := s.repo.UpsertCategoryOverride(ctx, row); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgWriteOverride, err)
	}
	logger.FromContext(ctx).Info(LogMsgOverrideSet,
		"contestant_id", contestantID, "episode", episode, "category", category, "points", *points)

	return s.afterChange(ctx, ActionSetCategory, episode)
}

func (s *service) DeleteCategoryOverride(ctx context.Context, contestantID string, episode int, category string) error {
	if err := validateTarget(contestantID, episode); err != nil {
		return err
	}
	category = NormalizeCategory(category)

	deleted, err := s.repo.DeleteCategoryOverride(ctx, contestantID, episode, category)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgWriteOverride, err)
	}
	if !deleted {
		return domain.ErrOverrideNotFound
	}
	logger.FromContext(ctx).Info(LogMsgOverrideDeleted,
		"contestant_id", contestantID, "episode", episode, "category", category)

	return s.afterChange(ctx, ActionDeleteCategory, episode)
}

func (s *service) SetTotalOverride(ctx context.Context, contestantID string, episode int, total *int) error {
	if total == nil {
		return s.DeleteTotalOverride(ctx, contestantID, episode)
	}
	if err := validateTarget(contestantID, episode); err != nil {
		return err
	}

	row := &domain.TotalOverride{
		ContestantID: contestantID,
		Episode:      episode,
		Total:        *total,
		UpdatedAt:    s.now(),
	}
	if err := s.repo.UpsertTotalOverride(ctx, row); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgWriteOverride, err)
	}
	logger.FromContext(ctx).Info(LogMsgTotalOverrideSet,
		"contestant_id", contestantID, "episode", episode, "total", *total)

	return s.afterChange(ctx, ActionSetTotal, episode)
}

func (s *service) DeleteTotalOverride(ctx context.Context, contestantID string, episode int) error {
	if err := validateTarget(contestantID, episode); err != nil {
		return err
	}

	deleted, err := s.repo.DeleteTotalOverride(ctx, contestantID, episode)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgWriteOverride, err)
	}
	if !deleted {
		return domain.ErrOverrideNotFound
	}
	logger.FromContext(ctx).Info(LogMsgTotalOverrideDeleted, "contestant_id", contestantID, "episode", episode)

	return s.afterChange(ctx, ActionDeleteTotal, episode)
}

func (s *service) ClearEpisode(ctx context.Context, episode int) error {
	if episode < 1 {
		return fmt.Errorf("%w: %d", domain.ErrInvalidEpisode, episode)
	}
	if err := s.repo.ClearEpisode(ctx, episode); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgWriteOverride, err)
	}
	logger.FromContext(ctx).Info(LogMsgEpisodeCleared, "episode", episode)

	return s.afterChange(ctx, ActionClearEpisode, episode)
}

func (s *service) ClearAll(ctx context.Context) error {
	episodes, err := s.repo.ClearAll(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgWriteOverride, err)
	}
	logger.FromContext(ctx).Info(LogMsgAllCleared, "episodes", episodes)

	return s.afterChange(ctx, ActionClearAll, episodes...)
}

// afterChange re-materializes exactly the affected episodes before returning
func (s *service) afterChange(ctx context.Context, action string, episodes ...int) error {
	s.publish(ctx, event.NewOverridesChangedEvent(action, episodes))
	for _, ep := range episodes {
		if _, err := s.MaterializeEpisode(ctx, ep); err != nil {
			return err
		}
	}
	return nil
}

func (s *service) ListEpisode(ctx context.Context, episode int) (*EpisodeOverrides, error) {
	if episode < 1 {
		return nil, fmt.Errorf("%w: %d", domain.ErrInvalidEpisode, episode)
	}
	cats, err := s.repo.ListCategoryOverridesByEpisode(ctx, episode)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgLoadOverrides, err)
	}
	totals, err := s.repo.ListTotalOverridesByEpisode(ctx, episode)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgLoadOverrides, err)
	}
	rows, err := s.repo.ListMaterializedByEpisode(ctx, episode)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgLoadOverrides, err)
	}
	return &EpisodeOverrides{Episode: episode, Categories: cats, Totals: totals, Materialized: rows}, nil
}

// MaterializeEpisode rebuilds the canonical rows for one episode from the
// override tables. Calls for the same episode are serialized; different
// episodes proceed independently.
func (s *service) MaterializeEpisode(ctx context.Context, episode int) ([]domain.MaterializedPoints, error) {
	log := logger.FromContext(ctx)
	if episode < 1 {
		return nil, fmt.Errorf("%w: %d", domain.ErrInvalidEpisode, episode)
	}

	lock := s.locks.GetLock(LockKeyEpisodePrefix + strconv.Itoa(episode))
	lock.Lock()
	defer lock.Unlock()

	log.Debug(LogMsgMaterializeStarted, "episode", episode)

	rows, err := s.materializeLocked(ctx, episode)
	if err != nil {
		metrics.MaterializationsTotal.WithLabelValues(metrics.ResultFailure).Inc()
		log.Error(LogMsgMaterializeFailed, "episode", episode, "error", err)
		return nil, fmt.Errorf(ErrMsgMaterializeFailed+": %w", episode, err)
	}
	metrics.MaterializationsTotal.WithLabelValues(metrics.ResultSuccess).Inc()
	log.Info(LogMsgMaterializeCompleted, "episode", episode, "rows", len(rows))

	s.publish(ctx, event.NewOverridesMaterializedEvent(episode, len(rows)))
	return rows, nil
}

func (s *service) materializeLocked(ctx context.Context, episode int) ([]domain.MaterializedPoints, error) {
	cats, err := s.repo.ListCategoryOverridesByEpisode(ctx, episode)
	if err != nil {
		return nil, err
	}
	totals, err := s.repo.ListTotalOverridesByEpisode(ctx, episode)
	if err != nil {
		return nil, err
	}

	rows := BuildRows(episode, cats, totals, s.now())
	if err := s.repo.ReplaceMaterialized(ctx, episode, rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// MaterializeAll re-materializes every episode that has overrides or was
// materialized before, in increasing order, and returns the row count
func (s *service) MaterializeAll(ctx context.Context) (int, error) {
	cats, err := s.repo.ListCategoryOverrides(ctx)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgLoadOverrides, err)
	}
	totals, err := s.repo.ListTotalOverrides(ctx)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgLoadOverrides, err)
	}
	done, err := s.repo.ListMaterializedEpisodes(ctx)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgLoadOverrides, err)
	}

	episodes := mergeEpisodes(Episodes(cats, totals), done)
	count := 0
	for _, ep := range episodes {
		rows, err := s.MaterializeEpisode(ctx, ep)
		if err != nil {
			return count, err
		}
		count += len(rows)
	}
	return count, nil
}

func (s *service) Corrections(ctx context.Context) (Map, error) {
	rows, err := s.repo.ListMaterialized(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgLoadOverrides, err)
	}
	done, err := s.repo.ListMaterializedEpisodes(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgLoadOverrides, err)
	}
	cats, err := s.repo.ListCategoryOverrides(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgLoadOverrides, err)
	}
	totals, err := s.repo.ListTotalOverrides(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgLoadOverrides, err)
	}
	return Reconcile(rows, done, cats, totals, s.now()), nil
}

// Reconcile combines materialized rows with raw overrides: an episode that
// was ever materialized is read from its rows, any other episode is
// computed from the raw overrides as materialization would.
func Reconcile(rows []domain.MaterializedPoints, materialized []int, cats []domain.CategoryOverride, totals []domain.TotalOverride, now time.Time) Map {
	isDone := make(map[int]bool, len(materialized))
	for _, ep := range materialized {
		isDone[ep] = true
	}

	m := make(Map)
	var current []domain.MaterializedPoints
	for _, row := range rows {
		if isDone[row.Episode] {
			current = append(current, row)
		}
	}
	m.Merge(FromMaterialized(current))

	for _, ep := range Episodes(cats, totals) {
		if isDone[ep] {
			continue
		}
		m.Merge(FromMaterialized(BuildRows(ep, cats, totals, now)))
	}
	return m
}

func mergeEpisodes(a, b []int) []int {
	seen := make(map[int]bool, len(a)+len(b))
	var out []int
	for _, ep := range append(append([]int(nil), a...), b...) {
		if !seen[ep] {
			seen[ep] = true
			out = append(out, ep)
		}
	}
	sort.Ints(out)
	return out
}

func (s *service) publish(ctx context.Context, evt event.Event) {
	if s.bus == nil {
		return
	}
	if err := s.bus.Publish(ctx, evt); err != nil {
		logger.FromContext(ctx).Warn(LogMsgPublishMaterializeFailed, "type", evt.Type, "error", err)
	}
}
