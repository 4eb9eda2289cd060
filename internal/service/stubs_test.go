package service

import (
	"context"
	"time"

	"github.com/MKhiriev/echosell-api/internal/store"
	"github.com/MKhiriev/echosell-api/models"
)

// stubUserRepository is an in-memory store.UserRepository for service tests.
// Per-method hooks override the default map-backed behavior when set.
type stubUserRepository struct {
	users  map[int64]models.User
	nextID int64

	createUserFn     func(ctx context.Context, user models.User) (models.User, error)
	usernameExistsFn func(ctx context.Context, username string, excludeID int64) (bool, error)
	emailExistsFn    func(ctx context.Context, email string, excludeID int64) (bool, error)
	updateUserFn     func(ctx context.Context, id int64, patch models.UserUpdate) (models.User, error)
}

func newStubUserRepository() *stubUserRepository {
	return &stubUserRepository{users: map[int64]models.User{}, nextID: 1}
}

func (s *stubUserRepository) add(user models.User) models.User {
	if user.ID == 0 {
		user.ID = s.nextID
		s.nextID++
	}
	s.users[user.ID] = user
	return user
}

func (s *stubUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	if s.createUserFn != nil {
		return s.createUserFn(ctx, user)
	}
	user.IsActive = true
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	return s.add(user), nil
}

func (s *stubUserRepository) GetUserByID(ctx context.Context, id int64) (models.User, error) {
	user, ok := s.users[id]
	if !ok {
		return models.User{}, store.ErrUserNotFound
	}
	return user, nil
}

func (s *stubUserRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	for _, user := range s.users {
		if user.Username == username {
			return user, nil
		}
	}
	return models.User{}, store.ErrUserNotFound
}

func (s *stubUserRepository) UsernameExists(ctx context.Context, username string, excludeID int64) (bool, error) {
	if s.usernameExistsFn != nil {
		return s.usernameExistsFn(ctx, username, excludeID)
	}
	for _, user := range s.users {
		if user.Username == username && user.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (s *stubUserRepository) EmailExists(ctx context.Context, email string, excludeID int64) (bool, error) {
	if s.emailExistsFn != nil {
		return s.emailExistsFn(ctx, email, excludeID)
	}
	for _, user := range s.users {
		if user.Email == email && user.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (s *stubUserRepository) ListUsers(ctx context.Context, offset, limit int) ([]models.User, error) {
	users := make([]models.User, 0, len(s.users))
	for _, user := range s.users {
		users = append(users, user)
	}
	return users, nil
}

func (s *stubUserRepository) CountUsers(ctx context.Context) (int64, error) {
	return int64(len(s.users)), nil
}

func (s *stubUserRepository) UpdateUser(ctx context.Context, id int64, patch models.UserUpdate) (models.User, error) {
	if s.updateUserFn != nil {
		return s.updateUserFn(ctx, id, patch)
	}
	user, ok := s.users[id]
	if !ok {
		return models.User{}, store.ErrUserNotFound
	}
	if patch.Username != nil {
		user.Username = *patch.Username
	}
	if patch.Email != nil {
		user.Email = *patch.Email
	}
	if patch.FullName != nil {
		user.FullName = *patch.FullName
	}
	if patch.IsActive != nil {
		user.IsActive = *patch.IsActive
	}
	user.UpdatedAt = time.Now()
	s.users[id] = user
	return user, nil
}

func (s *stubUserRepository) DeleteUser(ctx context.Context, id int64) error {
	if _, ok := s.users[id]; !ok {
		return store.ErrUserNotFound
	}
	delete(s.users, id)
	return nil
}

// stubItemRepository is an in-memory store.ItemRepository for service tests.
type stubItemRepository struct {
	items  map[int64]models.Item
	nextID int64

	createItemFn func(ctx context.Context, item models.Item) (models.Item, error)
}

func newStubItemRepository() *stubItemRepository {
	return &stubItemRepository{items: map[int64]models.Item{}, nextID: 1}
}

func (s *stubItemRepository) CreateItem(ctx context.Context, item models.Item) (models.Item, error) {
	if s.createItemFn != nil {
		return s.createItemFn(ctx, item)
	}
	item.ID = s.nextID
	s.nextID++
	item.CreatedAt = time.Now()
	item.UpdatedAt = item.CreatedAt
	s.items[item.ID] = item
	return item, nil
}

func (s *stubItemRepository) GetItemByID(ctx context.Context, id int64) (models.Item, error) {
	item, ok := s.items[id]
	if !ok {
		return models.Item{}, store.ErrItemNotFound
	}
	return item, nil
}

func (s *stubItemRepository) ListItems(ctx context.Context, offset, limit int) ([]models.Item, error) {
	items := make([]models.Item, 0, len(s.items))
	for _, item := range s.items {
		items = append(items, item)
	}
	return items, nil
}

func (s *stubItemRepository) CountItems(ctx context.Context) (int64, error) {
	return int64(len(s.items)), nil
}

func (s *stubItemRepository) ListItemsByOwner(ctx context.Context, ownerID int64, offset, limit int) ([]models.Item, error) {
	items := make([]models.Item, 0)
	for _, item := range s.items {
		if item.OwnerID == ownerID {
			items = append(items, item)
		}
	}
	return items, nil
}

func (s *stubItemRepository) CountItemsByOwner(ctx context.Context, ownerID int64) (int64, error) {
	var total int64
	for _, item := range s.items {
		if item.OwnerID == ownerID {
			total++
		}
	}
	return total, nil
}

func (s *stubItemRepository) UpdateItem(ctx context.Context, id int64, patch models.ItemUpdate) (models.Item, error) {
	item, ok := s.items[id]
	if !ok {
		return models.Item{}, store.ErrItemNotFound
	}
	if patch.IsEmpty() {
		return models.Item{}, store.ErrNothingToUpdate
	}
	if patch.Title != nil {
		item.Title = *patch.Title
	}
	if patch.Description != nil {
		item.Description = *patch.Description
	}
	if patch.IsCompleted != nil {
		item.IsCompleted = *patch.IsCompleted
	}
	item.UpdatedAt = time.Now()
	s.items[id] = item
	return item, nil
}

func (s *stubItemRepository) DeleteItem(ctx context.Context, id int64) error {
	if _, ok := s.items[id]; !ok {
		return store.ErrItemNotFound
	}
	delete(s.items, id)
	return nil
}

// stubTokenCache records cache interactions in memory.
type stubTokenCache struct {
	entries map[string]time.Duration

	cacheErr error
	evictErr error
}

func newStubTokenCache() *stubTokenCache {
	return &stubTokenCache{entries: map[string]time.Duration{}}
}

func (s *stubTokenCache) Cache(ctx context.Context, token string, ttl time.Duration) error {
	if s.cacheErr != nil {
		return s.cacheErr
	}
	s.entries[token] = ttl
	return nil
}

func (s *stubTokenCache) Exists(ctx context.Context, token string) (bool, error) {
	_, ok := s.entries[token]
	return ok, nil
}

func (s *stubTokenCache) Evict(ctx context.Context, token string) error {
	if s.evictErr != nil {
		return s.evictErr
	}
	delete(s.entries, token)
	return nil
}
