package postgre

import (
	"context"

	"items-api/internal/item/repository"
)

const createItemsTable = `
	CREATE TABLE IF NOT EXISTS items (
		id          BIGSERIAL PRIMARY KEY,
		name        TEXT NOT NULL CHECK (length(btrim(name)) > 0),
		description TEXT
	)`

// EnsureSchema creates the items table when it does not exist yet.
func (r *implRepository) EnsureSchema(ctx context.Context) error {
	sess, err := r.session(ctx, "EnsureSchema")
	if err != nil {
		return err
	}
	if _, err := sess.ExecContext(ctx, createItemsTable); err != nil {
		return r.fail(ctx, "EnsureSchema", err, repository.ErrFailedToMigrate)
	}
	return nil
}
