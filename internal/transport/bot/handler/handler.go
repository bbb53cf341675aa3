package handler

import (
	"context"

	"deal_factory/internal/domain/service/property"
	"deal_factory/internal/worker"
)

const pageSize = 10

type Handler struct {
	// контекст приложения, живёт дольше отдельного апдейта
	baseCtx context.Context //nolint:containedctx

	svc     *property.Service
	scanner *worker.Scanner
}

func New(ctx context.Context, svc *property.Service, scanner *worker.Scanner) *Handler {
	return &Handler{
		baseCtx: ctx,
		svc:     svc,
		scanner: scanner,
	}
}
