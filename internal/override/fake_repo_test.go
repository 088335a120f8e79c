package override

import (
	"context"
	"sort"
	"sync"

	"github.com/osse101/TribalScore_Go/internal/domain"
)

type catKey struct {
	contestantID string
	episode      int
	category     string
}

// fakeRepo is an in-memory repository.Override
type fakeRepo struct {
	mu           sync.Mutex
	cats         map[catKey]domain.CategoryOverride
	totals       map[Key]domain.TotalOverride
	materialized map[int][]domain.MaterializedPoints
	replaceCalls []int
	failReplace  error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		cats:         make(map[catKey]domain.CategoryOverride),
		totals:       make(map[Key]domain.TotalOverride),
		materialized: make(map[int][]domain.MaterializedPoints),
	}
}

func (f *fakeRepo) UpsertCategoryOverride(ctx context.Context, o *domain.CategoryOverride) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cats[catKey{o.ContestantID, o.Episode, o.Category}] = *o
	return nil
}

func (f *fakeRepo) DeleteCategoryOverride(ctx context.Context, contestantID string, episode int, category string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	k := catKey{contestantID, episode, category}
	_, ok := f.cats[k]
	delete(f.cats, k)
	return ok, nil
}

func (f *fakeRepo) UpsertTotalOverride(ctx context.Context, o *domain.TotalOverride) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.totals[Key{o.ContestantID, o.Episode}] = *o
	return nil
}

func (f *fakeRepo) DeleteTotalOverride(ctx context.Context, contestantID string, episode int) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	k := Key{contestantID, episode}
	_, ok := f.totals[k]
	delete(f.totals, k)
	return ok, nil
}

func (f *fakeRepo) ListCategoryOverrides(ctx context.Context) ([]domain.CategoryOverride, error) {
	return f.listCats(func(int) bool { return true }), nil
}

func (f *fakeRepo) ListCategoryOverridesByEpisode(ctx context.Context, episode int) ([]domain.CategoryOverride, error) {
	return f.listCats(func(ep int) bool { return ep == episode }), nil
}

func (f *fakeRepo) listCats(keep func(int) bool) []domain.CategoryOverride {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []domain.CategoryOverride
	for _, o := range f.cats {
		if keep(o.Episode) {
			out = append(out, o)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].ContestantID != out[j].ContestantID {
			return out[i].ContestantID < out[j].ContestantID
		}
		return out[i].Category < out[j].Category
	})
	return out
}

func (f *fakeRepo) ListTotalOverrides(ctx context.Context) ([]domain.TotalOverride, error) {
	return f.listTotals(func(int) bool { return true }), nil
}

func (f *fakeRepo) ListTotalOverridesByEpisode(ctx context.Context, episode int) ([]domain.TotalOverride, error) {
	return f.listTotals(func(ep int) bool { return ep == episode }), nil
}

func (f *fakeRepo) listTotals(keep func(int) bool) []domain.TotalOverride {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []domain.TotalOverride
	for _, o := range f.totals {
		if keep(o.Episode) {
			out = append(out, o)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ContestantID < out[j].ContestantID })
	return out
}

func (f *fakeRepo) ClearEpisode(ctx context.Context, episode int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for k := range f.cats {
		if k.episode == episode {
			delete(f.cats, k)
		}
	}
	for k := range f.totals {
		if k.Episode == episode {
			delete(f.totals, k)
		}
	}
	return nil
}

func (f *fakeRepo) ClearAll(ctx context.Context) ([]int, error) {
	cats, _ := f.ListCategoryOverrides(ctx)
	totals, _ := f.ListTotalOverrides(ctx)
	episodes := Episodes(cats, totals)

	f.mu.Lock()
	defer f.mu.Unlock()
	f.cats = make(map[catKey]domain.CategoryOverride)
	f.totals = make(map[Key]domain.TotalOverride)
	return episodes, nil
}

func (f *fakeRepo) ReplaceMaterialized(ctx context.Context, episode int, rows []domain.MaterializedPoints) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failReplace != nil {
		return f.failReplace
	}
	f.replaceCalls = append(f.replaceCalls, episode)
	f.materialized[episode] = append([]domain.MaterializedPoints{}, rows...)
	return nil
}

func (f *fakeRepo) ListMaterialized(ctx context.Context) ([]domain.MaterializedPoints, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []domain.MaterializedPoints
	for _, rows := range f.materialized {
		out = append(out, rows...)
	}
	return out, nil
}

func (f *fakeRepo) ListMaterializedByEpisode(ctx context.Context, episode int) ([]domain.MaterializedPoints, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]domain.MaterializedPoints{}, f.materialized[episode]...), nil
}

func (f *fakeRepo) ListMaterializedEpisodes(ctx context.Context) ([]int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]int, 0, len(f.materialized))
	for ep := range f.materialized {
		out = append(out, ep)
	}
	sort.Ints(out)
	return out, nil
}
