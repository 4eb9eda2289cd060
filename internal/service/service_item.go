package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/echosell-api/internal/logger"
	"github.com/MKhiriev/echosell-api/internal/store"
	"github.com/MKhiriev/echosell-api/models"
)

// itemService is the concrete implementation of [ItemService].
type itemService struct {
	itemRepository store.ItemRepository
	logger         *logger.Logger
}

// NewItemService constructs an [ItemService] wired to the given repository.
func NewItemService(itemRepository store.ItemRepository, logger *logger.Logger) ItemService {
	return &itemService{
		itemRepository: itemRepository,
		logger:         logger,
	}
}

// Create persists a new item owned by ownerID. The owner id is taken from
// the caller verbatim, not from the authenticated identity.
func (s *itemService) Create(ctx context.Context, item models.Item, ownerID int64) (models.Item, error) {
	log := logger.FromContext(ctx)

	if item.Title == "" || ownerID == 0 {
		log.Error().Int64("owner_id", ownerID).Msg("invalid item data provided")
		return models.Item{}, ErrInvalidDataProvided
	}

	item.OwnerID = ownerID

	createdItem, err := s.itemRepository.CreateItem(ctx, item)
	if err != nil {
		log.Err(err).Str("title", item.Title).Msg("item creation ended with error")
		return models.Item{}, fmt.Errorf("item creation ended with error: %w", err)
	}

	return createdItem, nil
}

// Get retrieves one item by id.
func (s *itemService) Get(ctx context.Context, id int64) (models.Item, error) {
	return s.itemRepository.GetItemByID(ctx, id)
}

// ListAll returns one page of all items and the total item count.
func (s *itemService) ListAll(ctx context.Context, offset, limit int) ([]models.Item, int64, error) {
	items, err := s.itemRepository.ListItems(ctx, offset, limit)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.itemRepository.CountItems(ctx)
	if err != nil {
		return nil, 0, err
	}

	return items, total, nil
}

// ListByOwner returns one page of the owner's items and that owner's item
// count.
func (s *itemService) ListByOwner(ctx context.Context, ownerID int64, offset, limit int) ([]models.Item, int64, error) {
	items, err := s.itemRepository.ListItemsByOwner(ctx, ownerID, offset, limit)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.itemRepository.CountItemsByOwner(ctx, ownerID)
	if err != nil {
		return nil, 0, err
	}

	return items, total, nil
}

// Update applies a partial patch to an existing item. Only the set fields of
// the patch change, and updated_at advances.
func (s *itemService) Update(ctx context.Context, id int64, patch models.ItemUpdate) (models.Item, error) {
	log := logger.FromContext(ctx)

	updatedItem, err := s.itemRepository.UpdateItem(ctx, id, patch)
	if err != nil {
		log.Err(err).Int64("id", id).Msg("item update ended with error")
		return models.Item{}, err
	}

	return updatedItem, nil
}

// Delete hard-deletes an item by id. Absent ids surface
// [store.ErrItemNotFound].
func (s *itemService) Delete(ctx context.Context, id int64) error {
	return s.itemRepository.DeleteItem(ctx, id)
}
