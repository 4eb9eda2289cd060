package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/echosell-api/internal/logger"
	"github.com/MKhiriev/echosell-api/internal/store"
	"github.com/MKhiriev/echosell-api/internal/utils"
	"github.com/MKhiriev/echosell-api/models"
)

func newTestUserService(repo store.UserRepository) UserService {
	return NewUserService(repo, logger.Nop())
}

func TestRegister_Success(t *testing.T) {
	repo := newStubUserRepository()
	svc := newTestUserService(repo)

	user, err := svc.Register(context.Background(), models.User{
		Username: "john",
		Email:    "john@example.com",
		FullName: "John Doe",
	}, "s3cret-password")

	require.NoError(t, err)
	assert.NotZero(t, user.ID)
	assert.True(t, user.IsActive)

	// stored digest verifies against the original password
	stored := repo.users[user.ID]
	assert.NotEqual(t, "s3cret-password", stored.HashedPassword)
	assert.True(t, utils.CheckPassword("s3cret-password", stored.HashedPassword))
}

func TestRegister_MissingFields(t *testing.T) {
	svc := newTestUserService(newStubUserRepository())

	tests := []struct {
		name     string
		user     models.User
		password string
	}{
		{"no username", models.User{Email: "a@b.c"}, "pass"},
		{"no email", models.User{Username: "john"}, "pass"},
		{"no password", models.User{Username: "john", Email: "a@b.c"}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Register(context.Background(), tt.user, tt.password)
			assert.ErrorIs(t, err, ErrInvalidDataProvided)
		})
	}
}

func TestRegister_UsernameConflict(t *testing.T) {
	repo := newStubUserRepository()
	repo.add(models.User{Username: "john", Email: "john@example.com"})
	svc := newTestUserService(repo)

	_, err := svc.Register(context.Background(), models.User{
		Username: "john",
		Email:    "fresh@example.com",
	}, "pass")

	assert.ErrorIs(t, err, store.ErrUsernameAlreadyExists)
}

func TestRegister_EmailConflict(t *testing.T) {
	repo := newStubUserRepository()
	repo.add(models.User{Username: "jane", Email: "taken@example.com"})
	svc := newTestUserService(repo)

	_, err := svc.Register(context.Background(), models.User{
		Username: "fresh",
		Email:    "taken@example.com",
	}, "pass")

	assert.ErrorIs(t, err, store.ErrEmailAlreadyExists)
}

func TestRegister_DoubleConflictReportsUsernameFirst(t *testing.T) {
	repo := newStubUserRepository()
	repo.add(models.User{Username: "john", Email: "john@example.com"})
	svc := newTestUserService(repo)

	_, err := svc.Register(context.Background(), models.User{
		Username: "john",
		Email:    "john@example.com",
	}, "pass")

	assert.ErrorIs(t, err, store.ErrUsernameAlreadyExists)
}

func TestAuthenticate_Success(t *testing.T) {
	repo := newStubUserRepository()
	digest, err := utils.HashPassword("right-password")
	require.NoError(t, err)
	repo.add(models.User{Username: "john", Email: "j@e.c", HashedPassword: digest, IsActive: true})

	svc := newTestUserService(repo)

	user, err := svc.Authenticate(context.Background(), "john", "right-password")
	require.NoError(t, err)
	assert.Equal(t, "john", user.Username)
}

func TestAuthenticate_UnknownUserAndWrongPasswordLookAlike(t *testing.T) {
	repo := newStubUserRepository()
	digest, err := utils.HashPassword("right-password")
	require.NoError(t, err)
	repo.add(models.User{Username: "john", HashedPassword: digest})

	svc := newTestUserService(repo)

	_, unknownErr := svc.Authenticate(context.Background(), "ghost", "whatever")
	_, wrongPassErr := svc.Authenticate(context.Background(), "john", "wrong-password")

	assert.ErrorIs(t, unknownErr, ErrInvalidCredentials)
	assert.ErrorIs(t, wrongPassErr, ErrInvalidCredentials)
	// the two failures must be indistinguishable
	assert.Equal(t, unknownErr, wrongPassErr)
}

func TestUpdate_NotFound(t *testing.T) {
	svc := newTestUserService(newStubUserRepository())

	username := "ghost"
	_, err := svc.Update(context.Background(), 99, models.UserUpdate{Username: &username})
	assert.ErrorIs(t, err, store.ErrUserNotFound)
}

func TestUpdate_KeepingOwnUsernameIsNotAConflict(t *testing.T) {
	repo := newStubUserRepository()
	user := repo.add(models.User{Username: "john", Email: "john@example.com"})
	svc := newTestUserService(repo)

	// same username, new email: uniqueness check must exclude the user itself
	username := "john"
	email := "new@example.com"
	updated, err := svc.Update(context.Background(), user.ID, models.UserUpdate{Username: &username, Email: &email})

	require.NoError(t, err)
	assert.Equal(t, "new@example.com", updated.Email)
}

func TestUpdate_UsernameTakenByAnotherUser(t *testing.T) {
	repo := newStubUserRepository()
	repo.add(models.User{Username: "john", Email: "john@example.com"})
	jane := repo.add(models.User{Username: "jane", Email: "jane@example.com"})
	svc := newTestUserService(repo)

	username := "john"
	_, err := svc.Update(context.Background(), jane.ID, models.UserUpdate{Username: &username})
	assert.ErrorIs(t, err, store.ErrUsernameAlreadyExists)
}

func TestList_ReturnsTotalCount(t *testing.T) {
	repo := newStubUserRepository()
	for i := 0; i < 5; i++ {
		repo.add(models.User{Username: string(rune('a' + i))})
	}
	svc := newTestUserService(repo)

	_, total, err := svc.List(context.Background(), 0, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
}

func TestDelete_NotFound(t *testing.T) {
	svc := newTestUserService(newStubUserRepository())

	err := svc.Delete(context.Background(), 404)
	assert.ErrorIs(t, err, store.ErrUserNotFound)
}
