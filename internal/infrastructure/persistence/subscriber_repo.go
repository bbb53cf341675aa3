package persistence

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"deal_factory/internal/domain"
	"deal_factory/internal/domain/entity"
	"deal_factory/internal/domain/value"
	"deal_factory/pkg/errcodes"
	"deal_factory/pkg/lox"
)

type SubscriberRepository struct {
	db *sqlx.DB
}

func NewSubscriberRepository(db *sqlx.DB) *SubscriberRepository {
	return &SubscriberRepository{db: db}
}

// Upsert создаёт или обновляет подписку по её id.
// created_at остаётся от первой записи, первая отмена не перезаписывается,
// а более старое событие не затирает более новое состояние.
func (r *SubscriberRepository) Upsert(ctx context.Context, sub entity.Subscriber) error {
	query := `
		INSERT INTO subscribers (
			id, stripe_customer_id, status, plan_id, current_period_end,
			created_at, updated_at, canceled_at
		) VALUES (
			:id, :stripe_customer_id, :status, :plan_id, :current_period_end,
			:created_at, :updated_at, :canceled_at
		)
		ON CONFLICT (id) DO UPDATE SET
			stripe_customer_id = EXCLUDED.stripe_customer_id,
			status = EXCLUDED.status,
			plan_id = EXCLUDED.plan_id,
			current_period_end = EXCLUDED.current_period_end,
			updated_at = EXCLUDED.updated_at,
			canceled_at = COALESCE(subscribers.canceled_at, EXCLUDED.canceled_at)
		WHERE subscribers.updated_at <= EXCLUDED.updated_at`

	if _, err := r.db.NamedExecContext(ctx, query, fromSubscriber(sub)); err != nil {
		return domain.WrapError(err, errcodes.InternalServerError, "failed to upsert subscriber")
	}

	return nil
}

func (r *SubscriberRepository) GetByID(ctx context.Context, id string) (*entity.Subscriber, error) {
	query := `SELECT * FROM subscribers WHERE id = $1`

	var schema subscriberSchema
	if err := r.db.GetContext(ctx, &schema, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NewError(errcodes.SubscriberNotFound, "subscriber not found")
		}
		return nil, domain.WrapError(err, errcodes.InternalServerError, "failed to get subscriber")
	}

	sub, err := schema.toDomain()
	if err != nil {
		return nil, domain.WrapError(err, errcodes.InternalServerError, "failed to convert subscriber")
	}

	return &sub, nil
}

func (r *SubscriberRepository) ListByStatus(ctx context.Context, status value.SubscriptionStatus) ([]entity.Subscriber, error) {
	query := `SELECT * FROM subscribers WHERE status = $1 ORDER BY created_at ASC, id ASC`

	var schemas []subscriberSchema
	if err := r.db.SelectContext(ctx, &schemas, query, status.String()); err != nil {
		return nil, domain.WrapError(err, errcodes.InternalServerError, "failed to list subscribers")
	}

	result, err := lox.MapErr(schemas, subscriberSchema.toDomain)
	if err != nil {
		return nil, domain.WrapError(err, errcodes.InternalServerError, "failed to convert subscriber")
	}

	return result, nil
}
