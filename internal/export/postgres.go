package export

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/msarvaro/gastro-sub000/internal/models"
)

const createArchiveTables = `
CREATE TABLE IF NOT EXISTS order_archive (
    id          TEXT PRIMARY KEY,
    table_number INT,
    total       DOUBLE PRECISION,
    status      TEXT,
    comment     TEXT,
    created_at  TIMESTAMPTZ,
    closed_at   TIMESTAMPTZ,
    payload     JSONB
);
CREATE TABLE IF NOT EXISTS request_archive (
    id          TEXT PRIMARY KEY,
    branch      TEXT,
    supplier_id TEXT,
    priority    TEXT,
    status      TEXT,
    created_at  TIMESTAMPTZ,
    closed_at   TIMESTAMPTZ,
    payload     JSONB
);`

// PostgresSink archives history snapshots into a reporting database. Rows are
// upserted by id so re-running an export stays idempotent.
type PostgresSink struct {
	pool *pgxpool.Pool
}

func NewPostgresSink(cfg models.ArchiveConfig) (*PostgresSink, error) {
	connStr := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.DBName, cfg.SSLMode,
	)

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, connStr)
	if err != nil {
		return nil, fmt.Errorf("error connecting to archive database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("error pinging archive database: %w", err)
	}
	if _, err := pool.Exec(ctx, createArchiveTables); err != nil {
		pool.Close()
		return nil, fmt.Errorf("error creating archive tables: %w", err)
	}

	return &PostgresSink{pool: pool}, nil
}

func (p *PostgresSink) WriteSnapshot(topic string, msg []byte) error {
	ctx := context.Background()
	switch topic {
	case TopicOrderHistory:
		var order models.Order
		if err := json.Unmarshal(msg, &order); err != nil {
			return err
		}
		return p.insertOrder(ctx, &order, msg)
	case TopicRequestHistory:
		var request models.SupplyRequest
		if err := json.Unmarshal(msg, &request); err != nil {
			return err
		}
		return p.insertRequest(ctx, &request, msg)
	default:
		return fmt.Errorf("unknown snapshot topic %q", topic)
	}
}

func (p *PostgresSink) insertOrder(ctx context.Context, order *models.Order, payload []byte) error {
	stmt := `
        INSERT INTO order_archive (id, table_number, total, status, comment, created_at, closed_at, payload)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        ON CONFLICT (id) DO UPDATE SET
            total = EXCLUDED.total,
            status = EXCLUDED.status,
            closed_at = EXCLUDED.closed_at,
            payload = EXCLUDED.payload`

	_, err := p.pool.Exec(ctx, stmt,
		order.ID,
		order.TableNumber,
		order.Total,
		order.Status,
		order.Comment,
		order.CreatedAt,
		order.ClosedAt(),
		payload,
	)
	if err != nil {
		return fmt.Errorf("failed to archive order %s: %w", order.ID, err)
	}
	return nil
}

func (p *PostgresSink) insertRequest(ctx context.Context, request *models.SupplyRequest, payload []byte) error {
	stmt := `
        INSERT INTO request_archive (id, branch, supplier_id, priority, status, created_at, closed_at, payload)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        ON CONFLICT (id) DO UPDATE SET
            status = EXCLUDED.status,
            closed_at = EXCLUDED.closed_at,
            payload = EXCLUDED.payload`

	_, err := p.pool.Exec(ctx, stmt,
		request.ID,
		request.Branch,
		request.SupplierID,
		request.Priority,
		request.Status,
		request.CreatedAt,
		request.ClosedAt(),
		payload,
	)
	if err != nil {
		return fmt.Errorf("failed to archive request %s: %w", request.ID, err)
	}
	return nil
}

func (p *PostgresSink) Close() error {
	p.pool.Close()
	return nil
}
