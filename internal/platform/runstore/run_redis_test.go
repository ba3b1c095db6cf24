package runstore

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"kline_viewer/internal/feature/backtest/domain/entity"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestRedis creates a miniredis instance for testing.
func setupTestRedis(t *testing.T) (*redis.Client, *miniredis.Miniredis) {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err, "failed to start miniredis")

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})

	t.Cleanup(func() {
		_ = client.Close()
		mr.Close()
	})

	return client, mr
}

func newRun(id, symbol string) *entity.Run {
	return &entity.Run{
		ID:             id,
		Symbol:         symbol,
		StartDate:      "20230101",
		EndDate:        "20231231",
		InitialCapital: 100000,
		Result: entity.Result{
			Stats:       entity.Stats{TotalReturn: 0.05, TotalTrades: 2, WinRate: 0.5, MaxDrawdown: -0.02},
			EquityCurve: []entity.EquityPoint{{Date: "2023-01-03", TotalValue: 100000}},
			Trades:      []entity.Trade{{BuyDate: "2023-01-03", Price: 10, Shares: 100, Signal: entity.SignalMACD}},
		},
		CreatedAt: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestNewRunRedis_Defaults(t *testing.T) {
	client, _ := setupTestRedis(t)

	repo := NewRunRedis(client, "", 0)

	assert.Equal(t, "backtest", repo.prefix)
	assert.Equal(t, int64(DefaultMaxRuns), repo.maxRuns)
	assert.Equal(t, "backtest:run:abc", repo.runKey("abc"))
	assert.Equal(t, "backtest:symbol:600519", repo.symbolKey("600519"))
	assert.Equal(t, "backtest:all", repo.allKey())
}

func TestRunRedis_SaveAndList(t *testing.T) {
	t.Parallel()

	client, mr := setupTestRedis(t)
	repo := NewRunRedis(client, "bt", 10)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, newRun("r1", "600519")))
	require.NoError(t, repo.Save(ctx, newRun("r2", "000001")))
	require.NoError(t, repo.Save(ctx, newRun("r3", "600519")))

	assert.True(t, mr.Exists("bt:run:r1"))
	all, err := mr.List("bt:all")
	require.NoError(t, err)
	assert.Equal(t, []string{"r3", "r2", "r1"}, all)

	runs, err := repo.List(ctx, "600519", 10)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, "r3", runs[0].ID)
	assert.Equal(t, "r1", runs[1].ID)
	assert.Equal(t, newRun("r1", "600519").Result, runs[1].Result)
	assert.True(t, runs[1].CreatedAt.Equal(newRun("r1", "600519").CreatedAt))

	runs, err = repo.List(ctx, "", 2)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, "r3", runs[0].ID)
	assert.Equal(t, "r2", runs[1].ID)
}

func TestRunRedis_TrimsLists(t *testing.T) {
	t.Parallel()

	client, mr := setupTestRedis(t)
	repo := NewRunRedis(client, "bt", 3)
	ctx := context.Background()

	for i := 1; i <= 5; i++ {
		require.NoError(t, repo.Save(ctx, newRun(fmt.Sprintf("r%d", i), "600519")))
	}

	ids, err := mr.List("bt:symbol:600519")
	require.NoError(t, err)
	assert.Equal(t, []string{"r5", "r4", "r3"}, ids)

	runs, err := repo.List(ctx, "600519", 100)
	require.NoError(t, err)
	assert.Len(t, runs, 3)
}

func TestRunRedis_ListSkipsMissingRuns(t *testing.T) {
	t.Parallel()

	client, mr := setupTestRedis(t)
	repo := NewRunRedis(client, "bt", 10)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, newRun("r1", "600519")))
	require.NoError(t, repo.Save(ctx, newRun("r2", "600519")))
	mr.Del("bt:run:r2")

	runs, err := repo.List(ctx, "600519", 10)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, "r1", runs[0].ID)
}

func TestRunRedis_ListEmpty(t *testing.T) {
	t.Parallel()

	client, _ := setupTestRedis(t)

	runs, err := NewRunRedis(client, "bt", 10).List(context.Background(), "600519", 10)

	require.NoError(t, err)
	assert.NotNil(t, runs)
	assert.Empty(t, runs)
}

func TestRunRedis_ListErrors(t *testing.T) {
	t.Parallel()

	t.Run("lrange error", func(t *testing.T) {
		t.Parallel()

		rdb, mock := redismock.NewClientMock()
		mock.ExpectLRange("bt:symbol:600519", 0, 4).SetErr(errors.New("connection reset"))

		_, err := NewRunRedis(rdb, "bt", 10).List(context.Background(), "600519", 5)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "list run ids")
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("mget error", func(t *testing.T) {
		t.Parallel()

		rdb, mock := redismock.NewClientMock()
		mock.ExpectLRange("bt:all", 0, 4).SetVal([]string{"r1"})
		mock.ExpectMGet("bt:run:r1").SetErr(errors.New("connection reset"))

		_, err := NewRunRedis(rdb, "bt", 10).List(context.Background(), "", 5)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "load runs")
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("corrupted value", func(t *testing.T) {
		t.Parallel()

		rdb, mock := redismock.NewClientMock()
		mock.ExpectLRange("bt:all", 0, 4).SetVal([]string{"r1"})
		mock.ExpectMGet("bt:run:r1").SetVal([]interface{}{"{not json"})

		_, err := NewRunRedis(rdb, "bt", 10).List(context.Background(), "", 5)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "unmarshal run r1")
	})
}
