package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"gamereview/backend/internal/config"
	"gamereview/backend/internal/database"
	"gamereview/backend/internal/models"
	"gamereview/backend/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestSave_RecordDeletedAfterFetchIsNotFound(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctx := context.Background()

	cfg := &config.Config{DatabaseDriver: config.DriverSQLite, DatabaseURL: ":memory:"}
	db, err := database.Connect(cfg, zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })
	require.NoError(t, database.Migrate(db, zap.NewNop()))

	s := store.New(db)
	h := New(s, zap.NewNop())

	game := &models.Game{Title: "Hades", Genre: "Roguelike", Platform: "Switch", Price: 24.99}
	require.NoError(t, store.Create(ctx, s, game))
	stale, err := store.Get[models.Game](ctx, s, game.ID)
	require.NoError(t, err)
	require.NoError(t, store.Delete(ctx, s, game))

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPatch, "/games/1", nil)

	stale.Title = "Zagreus"
	save(h, c, stale, "Game", newGameResponse)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"message":"Game not found."}`, w.Body.String())

	_, err = store.Get[models.Game](ctx, s, game.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)
}
