package calclog

import (
	"context"
)

type Repository interface {
	Create(ctx context.Context, rec *Record) error
	Search(ctx context.Context, params map[string]string, limit, offset int) ([]*Record, int, error)
}
