package usecase

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	repo "fridge-inventory/internal/inventory/repository"
	"fridge-inventory/internal/model"
	"fridge-inventory/internal/voice"
	"fridge-inventory/pkg/log"
	"fridge-inventory/pkg/metrics"
)

// failingCreateRepo fails CreateItem for one item name.
type failingCreateRepo struct {
	repo.Repository
	failName string
}

func (r failingCreateRepo) CreateItem(ctx context.Context, opt repo.CreateItemOptions) (model.Item, error) {
	if opt.Name == r.failName {
		return model.Item{}, errors.New("disk I/O error")
	}
	return r.Repository.CreateItem(ctx, opt)
}

// staleLookupRepo reports an item as missing for the first misses lookups,
// as if another request stored it in the meantime.
type staleLookupRepo struct {
	repo.Repository
	hideName string
	misses   int
}

func (r *staleLookupRepo) FindItemOnShelf(ctx context.Context, shelfID, name string) (model.Item, error) {
	if name == r.hideName && r.misses > 0 {
		r.misses--
		return model.Item{}, nil
	}
	return r.Repository.FindItemOnShelf(ctx, shelfID, name)
}

func (f *fixture) useRepo(r repo.Repository, m *metrics.Metrics) {
	f.uc = New(log.NewNop(), r, f.interp, nil, m, LocaleEN)
}

func TestProcessCommand_RepositoryErrorFailsOnlyThatAction(t *testing.T) {
	f := newFixture(t, LocaleEN)
	f.useRepo(failingCreateRepo{Repository: f.repo, failName: "fish"}, nil)

	out := f.run(t, add("milk", 1, 1), add("fish", 1, 1), add("ice", 2, 2))

	assert.False(t, out.Success)
	require.Len(t, out.Actions, 3)
	assert.Equal(t, voice.StatusSuccess, out.Actions[0].Status)
	assert.Equal(t, voice.StatusFailed, out.Actions[1].Status)
	assert.Equal(t, voice.ReasonRepositoryError, out.Actions[1].Reason)
	assert.Equal(t, voice.StatusSuccess, out.Actions[2].Status)
	assert.Equal(t, "Added 1 milk to Top in Freezer. Added 2 ice to Bottom in Freezer", out.Message)
	assert.NotContains(t, out.Message, "disk I/O")

	assert.Equal(t, 1, f.quantity(t, f.top, "milk"))
	assert.Equal(t, 2, f.quantity(t, f.bottom, "ice"))
	assert.Equal(t, 0, f.quantity(t, f.top, "fish"))
}

func TestProcessCommand_AddRetriesAfterConcurrentInsert(t *testing.T) {
	f := newFixture(t, LocaleEN)
	f.seed(t, f.top, "ice", 3)
	stale := &staleLookupRepo{Repository: f.repo, hideName: "ice", misses: 1}
	f.useRepo(stale, nil)

	out := f.run(t, add("ice", 2, 1))

	assert.True(t, out.Success)
	require.Len(t, out.Actions, 1)
	assert.Equal(t, voice.StatusSuccess, out.Actions[0].Status)
	assert.Equal(t, 5, out.Actions[0].ResultQuantity)
	assert.Equal(t, 0, stale.misses)

	items, err := f.repo.ListItems(context.Background(), f.top.ID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 5, items[0].Quantity)
}

func TestProcessCommand_UnknownActionTypeMetricLabel(t *testing.T) {
	f := newFixture(t, LocaleEN)
	m := metrics.New()
	f.useRepo(f.repo, m)

	out := f.run(t, voice.ParsedAction{Type: "dance_wildly", ItemName: "milk", Quantity: 1, ShelfID: 1})
	require.Len(t, out.Actions, 1)
	assert.Equal(t, voice.ReasonUnknownAction, out.Actions[0].Reason)

	w := httptest.NewRecorder()
	m.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `type="unknown"`)
	assert.NotContains(t, w.Body.String(), "dance_wildly")
}

func TestActionLabel(t *testing.T) {
	assert.Equal(t, "add_item", actionLabel(voice.ActionAddItem))
	assert.Equal(t, "clarify_message", actionLabel(voice.ActionClarifyMessage))
	assert.Equal(t, "unknown", actionLabel("teleport_item"))
}
