package worker

import (
	"context"
	"errors"
	"fmt"

	"github.com/hibiken/asynq"

	"deal_factory/internal/domain"
	"deal_factory/pkg/application/modules"
	"deal_factory/pkg/errcodes"
	"deal_factory/pkg/logx"
)

const (
	TypeAnalyzeAll = "property:analyze_all"
	QueueDefault   = "default"
)

// Enqueuer ставит пересчёт скоринга в очередь asynq.
type Enqueuer struct {
	client *asynq.Client
}

// NewEnqueuer с nil клиентом очередь считается не настроенной.
func NewEnqueuer(client *asynq.Client) *Enqueuer {
	return &Enqueuer{client: client}
}

func (e *Enqueuer) EnqueueAnalyze(ctx context.Context) (string, error) {
	if e.client == nil {
		return "", domain.WrapError(domain.ErrNotConfigured, errcodes.IntegrationNotConfigured,
			"Background queue not configured. Set REDIS_ADDRESS environment variable.")
	}

	info, err := e.client.EnqueueContext(ctx, asynq.NewTask(TypeAnalyzeAll, nil),
		asynq.Queue(QueueDefault),
		asynq.MaxRetry(0),
	)
	if err != nil {
		return "", domain.WrapError(err, errcodes.InternalServerError, "failed to enqueue analysis")
	}

	logger(ctx).Info("analysis enqueued", logx.FieldTaskType, info.Type, "task-id", info.ID)

	return info.ID, nil
}

// AnalyzeHandler обработчик задачи для modules.AsynqServer.
func AnalyzeHandler(analyzer Analyzer) modules.AsynqHandler {
	return modules.AsynqHandler{
		Pattern: TypeAnalyzeAll,
		Handle: func(ctx context.Context, _ *asynq.Task) error {
			result, err := analyzer.AnalyzeAll(ctx)
			if err != nil {
				if errors.Is(err, domain.ErrNoProperties) {
					logger(ctx).Info("analysis skipped, store is empty")
					return nil
				}
				return fmt.Errorf("analyzer.AnalyzeAll: %w", err)
			}

			logger(ctx).Info("background analysis finished", "count", result.Analyzed)

			return nil
		},
	}
}
