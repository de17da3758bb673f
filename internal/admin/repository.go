// AngelaMos | 2026
// repository.go

package admin

import (
	"context"
	"fmt"

	"github.com/smartstyle/api/internal/core"
)

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Counter {
	return &repository{db: db}
}

func (r *repository) CountUsers(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM users`)
	if err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}

	return count, nil
}

func (r *repository) CountProducts(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM products`)
	if err != nil {
		return 0, fmt.Errorf("count products: %w", err)
	}

	return count, nil
}
