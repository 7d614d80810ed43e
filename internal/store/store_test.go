package store_test

import (
	"context"
	"testing"

	"gamereview/backend/internal/config"
	"gamereview/backend/internal/database"
	"gamereview/backend/internal/models"
	"gamereview/backend/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newStore(t *testing.T) *store.Store {
	t.Helper()
	cfg := &config.Config{DatabaseDriver: config.DriverSQLite, DatabaseURL: ":memory:"}

	db, err := database.Connect(cfg, zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })
	require.NoError(t, database.Migrate(db, zap.NewNop()))

	return store.New(db)
}

func TestCreateGetList(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)

	games, err := store.List[models.Game](ctx, s)
	require.NoError(t, err)
	assert.Empty(t, games)
	assert.NotNil(t, games)

	first := &models.Game{Title: "Celeste", Genre: "Platformer", Platform: "PC", Price: 19.99}
	second := &models.Game{Title: "Hades", Genre: "Roguelike", Platform: "Switch", Price: 24.99}
	require.NoError(t, store.Create(ctx, s, first))
	require.NoError(t, store.Create(ctx, s, second))
	assert.NotZero(t, first.ID)
	assert.Greater(t, second.ID, first.ID)

	got, err := store.Get[models.Game](ctx, s, first.ID)
	require.NoError(t, err)
	assert.Equal(t, "Celeste", got.Title)
	assert.Equal(t, 19.99, got.Price)

	games, err = store.List[models.Game](ctx, s)
	require.NoError(t, err)
	require.Len(t, games, 2)
	assert.Equal(t, "Celeste", games[0].Title)
	assert.Equal(t, "Hades", games[1].Title)
}

func TestGet_NotFound(t *testing.T) {
	_, err := store.Get[models.User](context.Background(), newStore(t), 42)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestSave(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)

	user := &models.User{Name: "alice"}
	require.NoError(t, store.Create(ctx, s, user))

	user.Name = "bob"
	require.NoError(t, store.Save(ctx, s, user))

	got, err := store.Get[models.User](ctx, s, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "bob", got.Name)
}

func TestSave_DeletedRowIsNotRecreated(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)

	game := &models.Game{Title: "Hades", Genre: "Roguelike", Platform: "Switch", Price: 24.99}
	require.NoError(t, store.Create(ctx, s, game))

	loaded, err := store.Get[models.Game](ctx, s, game.ID)
	require.NoError(t, err)
	stale, err := store.Get[models.Game](ctx, s, game.ID)
	require.NoError(t, err)

	require.NoError(t, store.Delete(ctx, s, loaded))

	stale.Price = 9.99
	assert.ErrorIs(t, store.Save(ctx, s, stale), store.ErrNotFound)

	_, err = store.Get[models.Game](ctx, s, game.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)

	games, err := store.List[models.Game](ctx, s)
	require.NoError(t, err)
	assert.Empty(t, games)
}

func TestSave_UnchangedValuesStillMatch(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)

	user := &models.User{Name: "alice"}
	require.NoError(t, store.Create(ctx, s, user))
	assert.NoError(t, store.Save(ctx, s, user))
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)

	user := &models.User{Name: "alice"}
	require.NoError(t, store.Create(ctx, s, user))
	require.NoError(t, store.Delete(ctx, s, user))

	_, err := store.Get[models.User](ctx, s, user.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)

	assert.ErrorIs(t, store.Delete(ctx, s, user), store.ErrNotFound)
}

func TestCreate_ForeignKeyViolationRollsBack(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)

	review := &models.Review{Score: 5, Comment: "great", GameID: 99, UserID: 99}
	err := store.Create(ctx, s, review)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "FOREIGN KEY")

	reviews, err := store.List[models.Review](ctx, s)
	require.NoError(t, err)
	assert.Empty(t, reviews)
}
