package calclog

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/clinscore/clinscore/internal/platform/db"
)

type queryable interface {
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
}

type RepoPG struct {
	pool *pgxpool.Pool
}

func NewRepoPG(pool *pgxpool.Pool) *RepoPG {
	return &RepoPG{pool: pool}
}

func (r *RepoPG) conn(ctx context.Context) queryable {
	if tx := db.TxFromContext(ctx); tx != nil {
		return tx
	}
	if c := db.ConnFromContext(ctx); c != nil {
		return c
	}
	return r.pool
}

const recordCols = `id, score_id, outcome, status_code, duration_ms, request_id, client_ip, created_at`

func scanRecord(row pgx.Row) (*Record, error) {
	var rec Record
	err := row.Scan(
		&rec.ID, &rec.ScoreID, &rec.Outcome, &rec.StatusCode,
		&rec.DurationMS, &rec.RequestID, &rec.ClientIP, &rec.CreatedAt,
	)
	return &rec, err
}

func (r *RepoPG) Create(ctx context.Context, rec *Record) error {
	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}
	q := fmt.Sprintf(`INSERT INTO calculation_log (%s) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`, recordCols)
	_, err := r.conn(ctx).Exec(ctx, q,
		rec.ID, rec.ScoreID, rec.Outcome, rec.StatusCode,
		rec.DurationMS, rec.RequestID, rec.ClientIP, rec.CreatedAt,
	)
	return err
}

func (r *RepoPG) Search(ctx context.Context, params map[string]string, limit, offset int) ([]*Record, int, error) {
	where := []string{}
	args := []interface{}{}
	idx := 1

	if v, ok := params["score_id"]; ok {
		where = append(where, fmt.Sprintf("score_id = $%d", idx))
		args = append(args, v)
		idx++
	}
	if v, ok := params["outcome"]; ok {
		where = append(where, fmt.Sprintf("outcome = $%d", idx))
		args = append(args, v)
		idx++
	}

	whereClause := ""
	if len(where) > 0 {
		whereClause = "WHERE " + strings.Join(where, " AND ")
	}

	countQ := fmt.Sprintf("SELECT COUNT(*) FROM calculation_log %s", whereClause)
	var total int
	if err := r.conn(ctx).QueryRow(ctx, countQ, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	q := fmt.Sprintf("SELECT %s FROM calculation_log %s ORDER BY created_at DESC LIMIT $%d OFFSET $%d",
		recordCols, whereClause, idx, idx+1)
	args = append(args, limit, offset)

	rows, err := r.conn(ctx).Query(ctx, q, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var items []*Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, rec)
	}
	return items, total, rows.Err()
}
