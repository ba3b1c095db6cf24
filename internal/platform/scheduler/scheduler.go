// Package scheduler は全銘柄バックテストの定期実行をcronで管理します。
package scheduler

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/robfig/cron/v3"
)

// Sweeper は全銘柄のバックテストを1回実行します（usecase.SweepUsecaseが満たします）。
type Sweeper interface {
	RunAll(ctx context.Context) (int, error)
}

// Scheduler はcronジョブを保持します。
type Scheduler struct {
	cron    *cron.Cron
	sweeper Sweeper
	ctx     context.Context
}

// New はSchedulerを生成します。ctx はジョブの実行に使われ、キャンセルされると実行中の一括処理も止まります。
// 式は秒フィールド付きの6フィールド形式です（例: "0 30 16 * * 1-5"）。
// 前回の実行が終わっていない場合、次の起動はスキップします。
func New(ctx context.Context, sweeper Sweeper) *Scheduler {
	return &Scheduler{
		cron:    cron.New(cron.WithSeconds(), cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		sweeper: sweeper,
		ctx:     ctx,
	}
}

// RegisterSweep は一括バックテストを cron 式 expr のスケジュールで登録します。
func (s *Scheduler) RegisterSweep(expr string) error {
	if _, err := s.cron.AddFunc(expr, s.sweepTask); err != nil {
		return fmt.Errorf("register sweep task: %w", err)
	}
	slog.Info("sweep task registered", "cron", expr)
	return nil
}

// Start はスケジューラーを開始します。
func (s *Scheduler) Start() {
	s.cron.Start()
	slog.Info("scheduler started", "jobs", len(s.cron.Entries()))
}

// Stop は新しい起動を止め、実行中のジョブの終了を待ちます。
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
	slog.Info("scheduler stopped")
}

// RunSweepNow は一括バックテストを即時実行します。
func (s *Scheduler) RunSweepNow() {
	s.sweepTask()
}

func (s *Scheduler) sweepTask() {
	slog.Info("running backtest sweep")
	n, err := s.sweeper.RunAll(s.ctx)
	if err != nil {
		slog.Error("backtest sweep failed", "succeeded", n, "error", err)
		return
	}
	slog.Info("backtest sweep done", "succeeded", n)
}
