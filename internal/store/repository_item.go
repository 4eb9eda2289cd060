package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/echosell-api/internal/logger"
	"github.com/MKhiriev/echosell-api/models"
	"github.com/jackc/pgerrcode"
)

// itemRepository is the PostgreSQL-backed implementation of [ItemRepository].
// It handles item CRUD against the "items" table.
type itemRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewItemRepository constructs an [ItemRepository] backed by the provided
// database connection and logger.
func NewItemRepository(db *DB, logger *logger.Logger) ItemRepository {
	logger.Debug().Msg("creating item repository")
	return &itemRepository{
		db:     db,
		logger: logger,
	}
}

// scanItem scans one full item row in itemColumns order.
func scanItem(row interface{ Scan(dest ...any) error }) (models.Item, error) {
	var i models.Item
	err := row.Scan(
		&i.ID,
		&i.Title,
		&i.Description,
		&i.OwnerID,
		&i.IsCompleted,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

// CreateItem persists a new item and returns the fully populated
// [models.Item] with server-assigned fields.
//
// Error handling:
//   - foreign_key_violation (23503) on owner_id → [ErrOwnerNotFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *itemRepository) CreateItem(ctx context.Context, item models.Item) (models.Item, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createItem, item.Title, item.Description, item.OwnerID)

	created, err := scanItem(row)
	if err != nil {
		log.Err(err).Str("func", "*itemRepository.CreateItem").Msg("error: item insert failed")

		if postgresError(err) == pgerrcode.ForeignKeyViolation {
			return models.Item{}, ErrOwnerNotFound
		}
		return models.Item{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return created, nil
}

// GetItemByID retrieves one item by primary key.
// Returns [ErrItemNotFound] when the id does not exist.
func (r *itemRepository) GetItemByID(ctx context.Context, id int64) (models.Item, error) {
	log := logger.FromContext(ctx)

	item, err := scanItem(r.db.QueryRowContext(ctx, getItemByID, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Item{}, ErrItemNotFound
		}
		log.Err(err).Str("func", "*itemRepository.GetItemByID").Msg("error: scanning error")
		return models.Item{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return item, nil
}

// ListItems returns one page of items of all owners ordered by descending id.
func (r *itemRepository) ListItems(ctx context.Context, offset, limit int) ([]models.Item, error) {
	return r.list(ctx, 0, offset, limit)
}

// ListItemsByOwner returns one page of the given owner's items ordered by
// descending id.
func (r *itemRepository) ListItemsByOwner(ctx context.Context, ownerID int64, offset, limit int) ([]models.Item, error) {
	return r.list(ctx, ownerID, offset, limit)
}

func (r *itemRepository) list(ctx context.Context, ownerID int64, offset, limit int) ([]models.Item, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListItemsQuery(ownerID, offset, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*itemRepository.list").Msg("error: listing items failed")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	items := make([]models.Item, 0, limit)
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return items, nil
}

// CountItems returns the total number of item rows.
func (r *itemRepository) CountItems(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.QueryRowContext(ctx, countItems).Scan(&total); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return total, nil
}

// CountItemsByOwner returns the number of item rows belonging to ownerID.
func (r *itemRepository) CountItemsByOwner(ctx context.Context, ownerID int64) (int64, error) {
	var total int64
	if err := r.db.QueryRowContext(ctx, countItemsByOwner, ownerID).Scan(&total); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return total, nil
}

// UpdateItem applies the set fields of patch to the stored item and returns
// the canonical post-update row.
//
// Error handling:
//   - empty patch → [ErrNothingToUpdate].
//   - missing id → [ErrItemNotFound].
func (r *itemRepository) UpdateItem(ctx context.Context, id int64, patch models.ItemUpdate) (models.Item, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildItemUpdateQuery(id, patch)
	if err != nil {
		return models.Item{}, err
	}

	updated, err := scanItem(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Item{}, ErrItemNotFound
		}
		log.Err(err).Str("func", "*itemRepository.UpdateItem").Int64("id", id).Msg("error: item update failed")
		return models.Item{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return updated, nil
}

// DeleteItem removes an item by id. Returns [ErrItemNotFound] when no row was
// deleted.
func (r *itemRepository) DeleteItem(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteItem, id)
	if err != nil {
		log.Err(err).Str("func", "*itemRepository.DeleteItem").Int64("id", id).Msg("error: item delete failed")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrItemNotFound
	}

	return nil
}
