package background

import (
	"context"
	"fmt"
	"runtime/debug"
	"time"

	"depot/pkg/logger"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"golang.org/x/sync/errgroup"
)

var (
	taskRunDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "background_task_duration_seconds",
			Help:    "Duration of background task runs",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"task"},
	)

	taskFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "background_task_failures_total",
			Help: "Total number of failed or panicked background task runs",
		},
		[]string{"task"},
	)
)

// Task периодическая фоновая задача.
type Task interface {
	TTL() time.Duration
	Do(context.Context) error
	Info() string
}

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Worker struct {
	log   handlerLogger
	tasks []Task
}

// New прогревает задачи: каждая выполняется один раз синхронно, ошибка прогрева
// возвращается сразу. Затем задачи крутятся в фоне до отмены ctx.
func New(ctx context.Context, log handlerLogger, tasks []Task) (*Worker, error) {
	worker := &Worker{
		log:   log,
		tasks: tasks,
	}

	initGroup, initCtx := errgroup.WithContext(ctx)
	for _, task := range tasks {
		initGroup.Go(func() error {
			log.Info("Initializing", logger.NewField("task", task.Info()))
			return worker.run(initCtx, task)
		})
	}

	if err := initGroup.Wait(); err != nil {
		return nil, fmt.Errorf("failed to initialize tasks: %w", err)
	}

	for _, task := range tasks {
		go worker.loop(ctx, task)
	}

	return worker, nil
}

func (w *Worker) loop(ctx context.Context, task Task) {
	taskLog := w.log.With(logger.NewField("task", task.Info()))

	ttl := task.TTL()
	if ttl <= 0 {
		taskLog.Warn("invalid TTL, skipping periodic execution", logger.NewField("TTL", ttl))
		return
	}
	taskLog.Info("Starting periodic execution", logger.NewField("TTL", ttl))

	ticker := time.NewTicker(ttl)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			taskLog.Info("Stopping task (context cancelled)")
			return
		case <-ticker.C:
			if err := w.run(ctx, task); err != nil {
				taskLog.Error("Background task failed", logger.NewField("error", err))
			}
		}
	}
}

// run выполняет задачу один раз, паника превращается в ошибку.
func (w *Worker) run(ctx context.Context, task Task) (err error) {
	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			stack := debug.Stack()
			w.log.Error("Background task panic",
				logger.NewField("task", task.Info()),
				logger.NewField("recover", r),
				logger.NewField("stack", string(stack)),
			)
			err = fmt.Errorf("task %s panic: %v", task.Info(), r)
		}

		taskRunDuration.WithLabelValues(task.Info()).Observe(time.Since(start).Seconds())
		if err != nil {
			taskFailuresTotal.WithLabelValues(task.Info()).Inc()
		}
	}()

	return task.Do(ctx)
}
