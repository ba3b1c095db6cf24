// Package runstore はバックテスト実行結果をRedisに保存します。
package runstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"kline_viewer/internal/feature/backtest/domain/entity"
	"kline_viewer/internal/feature/backtest/usecase"

	"github.com/redis/go-redis/v9"
)

const (
	defaultPrefix = "backtest"
	// DefaultMaxRuns は銘柄ごと、および全体の一覧に残す件数の上限です。
	DefaultMaxRuns = 500
)

// RunRedis implements usecase.RunRepository using Redis.
//
// キー構成:
//
//	<prefix>:run:<id>        実行結果のJSON
//	<prefix>:symbol:<symbol> 銘柄ごとの実行IDリスト（新しい順）
//	<prefix>:all             全銘柄の実行IDリスト（新しい順）
type RunRedis struct {
	client  *redis.Client
	prefix  string
	maxRuns int64
}

var _ usecase.RunRepository = (*RunRedis)(nil)

// NewRunRedis creates a new RunRedis. Empty prefix and non-positive maxRuns fall back to defaults.
func NewRunRedis(client *redis.Client, prefix string, maxRuns int) *RunRedis {
	if prefix == "" {
		prefix = defaultPrefix
	}
	if maxRuns <= 0 {
		maxRuns = DefaultMaxRuns
	}
	return &RunRedis{client: client, prefix: prefix, maxRuns: int64(maxRuns)}
}

func (r *RunRedis) runKey(id string) string {
	return fmt.Sprintf("%s:run:%s", r.prefix, id)
}

func (r *RunRedis) symbolKey(symbol string) string {
	return fmt.Sprintf("%s:symbol:%s", r.prefix, symbol)
}

func (r *RunRedis) allKey() string {
	return r.prefix + ":all"
}

// Save stores the run and pushes its ID onto the per-symbol and global lists.
// 上限を超えた古いIDはリストから外れますが、本体のキーは残ります。
func (r *RunRedis) Save(ctx context.Context, run *entity.Run) error {
	data, err := json.Marshal(run)
	if err != nil {
		return fmt.Errorf("failed to marshal run: %w", err)
	}

	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, r.runKey(run.ID), data, 0)
		for _, key := range []string{r.symbolKey(run.Symbol), r.allKey()} {
			pipe.LPush(ctx, key, run.ID)
			pipe.LTrim(ctx, key, 0, r.maxRuns-1)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("save run %s: %w", run.ID, err)
	}
	return nil
}

// List returns up to limit runs, newest first. An empty symbol lists every symbol.
func (r *RunRedis) List(ctx context.Context, symbol string, limit int) ([]entity.Run, error) {
	key := r.allKey()
	if symbol != "" {
		key = r.symbolKey(symbol)
	}

	ids, err := r.client.LRange(ctx, key, 0, int64(limit)-1).Result()
	if err != nil {
		return nil, fmt.Errorf("list run ids: %w", err)
	}
	if len(ids) == 0 {
		return []entity.Run{}, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = r.runKey(id)
	}
	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("load runs: %w", err)
	}

	runs := make([]entity.Run, 0, len(values))
	for i, v := range values {
		s, ok := v.(string)
		if !ok {
			// 削除済み
			continue
		}
		var run entity.Run
		if err := json.Unmarshal([]byte(s), &run); err != nil {
			return nil, fmt.Errorf("failed to unmarshal run %s: %w", ids[i], err)
		}
		runs = append(runs, run)
	}
	return runs, nil
}
