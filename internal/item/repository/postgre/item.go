package postgre

import (
	"context"
	"database/sql"
	"errors"

	"items-api/internal/item"
	repo "items-api/internal/item/repository"
)

// CreateItem inserts a new Item row and returns the created entity.
func (r *implRepository) CreateItem(ctx context.Context, opt repo.CreateItemOptions) (item.Item, error) {
	sess, err := r.session(ctx, "CreateItem")
	if err != nil {
		return item.Item{}, err
	}

	const query = `
		INSERT INTO items (name, description)
		VALUES ($1, $2)
		RETURNING id, name, description`

	it, err := scanItem(sess.QueryRowContext(ctx, query, opt.Name, toNullString(opt.Description)))
	if err != nil {
		return item.Item{}, r.fail(ctx, "CreateItem", err, repo.ErrFailedToInsert)
	}
	return it, nil
}

// GetOneItem retrieves a single Item by ID.
// Returns zero-value Item (ID == 0) when not found, never an error.
func (r *implRepository) GetOneItem(ctx context.Context, opt repo.GetOneItemOptions) (item.Item, error) {
	sess, err := r.session(ctx, "GetOneItem")
	if err != nil {
		return item.Item{}, err
	}

	const query = `SELECT id, name, description FROM items WHERE id = $1`

	it, err := scanItem(sess.QueryRowContext(ctx, query, opt.ID))
	if errors.Is(err, sql.ErrNoRows) {
		return item.Item{}, nil
	}
	if err != nil {
		return item.Item{}, r.fail(ctx, "GetOneItem", err, repo.ErrFailedToGet)
	}
	return it, nil
}

// ListItems returns every Item, in insertion order unless opt says otherwise.
func (r *implRepository) ListItems(ctx context.Context, opt repo.ListItemsOptions) ([]item.Item, error) {
	sess, err := r.session(ctx, "ListItems")
	if err != nil {
		return nil, err
	}

	rows, err := sess.QueryContext(ctx, r.buildListQuery(opt))
	if err != nil {
		return nil, r.fail(ctx, "ListItems", err, repo.ErrFailedToList)
	}
	defer rows.Close()

	items := make([]item.Item, 0)
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, r.fail(ctx, "ListItems scan", err, repo.ErrFailedToList)
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, r.fail(ctx, "ListItems rows", err, repo.ErrFailedToList)
	}
	return items, nil
}

// UpdateItem overwrites the non-nil fields of opt in a single statement and
// returns the updated entity. Returns zero-value Item when no row has opt.ID.
func (r *implRepository) UpdateItem(ctx context.Context, opt repo.UpdateItemOptions) (item.Item, error) {
	sess, err := r.session(ctx, "UpdateItem")
	if err != nil {
		return item.Item{}, err
	}

	const query = `
		UPDATE items
		SET name = COALESCE($1, name), description = COALESCE($2, description)
		WHERE id = $3
		RETURNING id, name, description`

	it, err := scanItem(sess.QueryRowContext(ctx, query,
		toNullString(opt.Name), toNullString(opt.Description), opt.ID,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return item.Item{}, nil
	}
	if err != nil {
		return item.Item{}, r.fail(ctx, "UpdateItem", err, repo.ErrFailedToUpdate)
	}
	return it, nil
}

// DeleteItem removes an Item by ID and reports whether a row was deleted.
func (r *implRepository) DeleteItem(ctx context.Context, id int64) (bool, error) {
	sess, err := r.session(ctx, "DeleteItem")
	if err != nil {
		return false, err
	}

	const query = `DELETE FROM items WHERE id = $1`

	res, err := sess.ExecContext(ctx, query, id)
	if err != nil {
		return false, r.fail(ctx, "DeleteItem", err, repo.ErrFailedToDelete)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, r.fail(ctx, "DeleteItem rows", err, repo.ErrFailedToDelete)
	}
	return n > 0, nil
}
