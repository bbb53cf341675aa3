package persistence

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"deal_factory/internal/domain"
	"deal_factory/internal/domain/entity"
	"deal_factory/pkg/errcodes"
	"deal_factory/pkg/lox"
)

const propertyColumns = `
	id, address, zip_code, price, units, monthly_rent, days_on_market,
	opportunity_zone, images, description, scraped_at, ai_score,
	score_breakdown, verdict, monthly_cash_flow, price_per_unit, analyzed_at`

type PropertyRepository struct {
	db *sqlx.DB
}

func NewPropertyRepository(db *sqlx.DB) *PropertyRepository {
	return &PropertyRepository{db: db}
}

// Ping проверяет соединение с хранилищем.
func (r *PropertyRepository) Ping(ctx context.Context) error {
	if err := r.db.PingContext(ctx); err != nil {
		return domain.WrapError(err, errcodes.InternalServerError, "failed to ping database")
	}
	return nil
}

// CreateBatch добавляет объекты одной транзакцией.
func (r *PropertyRepository) CreateBatch(ctx context.Context, properties []entity.Property) error {
	if len(properties) == 0 {
		return nil
	}

	query := `
		INSERT INTO properties (` + propertyColumns + `)
		VALUES (
			:id, :address, :zip_code, :price, :units, :monthly_rent, :days_on_market,
			:opportunity_zone, :images, :description, :scraped_at, :ai_score,
			:score_breakdown, :verdict, :monthly_cash_flow, :price_per_unit, :analyzed_at
		)`

	return withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		for i, p := range properties {
			schema, err := fromProperty(p)
			if err != nil {
				return domain.WrapError(err, errcodes.InternalServerError, "failed to map property")
			}

			if _, err := tx.NamedExecContext(ctx, query, schema); err != nil {
				return domain.WrapError(err, errcodes.InternalServerError,
					fmt.Sprintf("failed to insert property at index %d", i))
			}
		}
		return nil
	})
}

// GetByID возвращает объект по идентификатору.
func (r *PropertyRepository) GetByID(ctx context.Context, id string) (*entity.Property, error) {
	query := `SELECT ` + propertyColumns + ` FROM properties WHERE id = $1`

	var schema propertySchema
	if err := r.db.GetContext(ctx, &schema, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NewError(errcodes.PropertyNotFound, "property not found")
		}
		return nil, domain.WrapError(err, errcodes.InternalServerError, "failed to get property")
	}

	p, err := schema.toDomain()
	if err != nil {
		return nil, domain.WrapError(err, errcodes.InternalServerError, "failed to convert property")
	}

	return &p, nil
}

// List выборка по фильтру, лучшие сделки первыми.
func (r *PropertyRepository) List(ctx context.Context, filter entity.PropertyFilter) ([]entity.Property, error) {
	var (
		sb   strings.Builder
		args []any
	)

	sb.WriteString(`SELECT ` + propertyColumns + ` FROM properties`)

	if filter.MinScore != nil {
		args = append(args, *filter.MinScore)
		fmt.Fprintf(&sb, ` WHERE ai_score >= $%d`, len(args))
	}

	sb.WriteString(` ORDER BY ai_score DESC NULLS LAST, id ASC`)

	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		fmt.Fprintf(&sb, ` LIMIT $%d`, len(args))
	}

	var schemas []propertySchema
	if err := r.db.SelectContext(ctx, &schemas, sb.String(), args...); err != nil {
		return nil, domain.WrapError(err, errcodes.InternalServerError, "failed to list properties")
	}

	result, err := lox.MapErr(schemas, propertySchema.toDomain)
	if err != nil {
		return nil, domain.WrapError(err, errcodes.InternalServerError, "failed to convert property")
	}

	return result, nil
}

// Count общее число объектов.
func (r *PropertyRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM properties`); err != nil {
		return 0, domain.WrapError(err, errcodes.InternalServerError, "failed to count properties")
	}
	return count, nil
}

// SaveAnalyses записывает результаты скоринга пакетом, поля объявления не трогает.
func (r *PropertyRepository) SaveAnalyses(ctx context.Context, properties []entity.Property) error {
	if len(properties) == 0 {
		return nil
	}

	query := `
		UPDATE properties SET
			ai_score = :ai_score,
			score_breakdown = :score_breakdown,
			verdict = :verdict,
			monthly_cash_flow = :monthly_cash_flow,
			price_per_unit = :price_per_unit,
			analyzed_at = :analyzed_at
		WHERE id = :id`

	return withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		for _, p := range properties {
			schema, err := fromProperty(p)
			if err != nil {
				return domain.WrapError(err, errcodes.InternalServerError, "failed to map property")
			}

			res, err := tx.NamedExecContext(ctx, query, schema)
			if err != nil {
				return domain.WrapError(err, errcodes.InternalServerError, "failed to save analysis")
			}

			rows, err := res.RowsAffected()
			if err != nil {
				return domain.WrapError(err, errcodes.InternalServerError, "failed to check affected rows")
			}

			if rows == 0 {
				return domain.NewError(errcodes.PropertyNotFound, fmt.Sprintf("property %s not found", p.ID))
			}
		}
		return nil
	})
}
