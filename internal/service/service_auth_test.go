package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ileskov/personahub/internal/config"
	"github.com/ileskov/personahub/internal/crypto"
	"github.com/ileskov/personahub/internal/logger"
	"github.com/ileskov/personahub/internal/mock"
	"github.com/ileskov/personahub/internal/store"
	"github.com/ileskov/personahub/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestAuthService(users *mockUserRepository, hasher crypto.PasswordHasher) AuthService {
	return newTestAuthServiceWithSettings(users, &mockSettingsRepository{}, hasher)
}

func newTestAuthServiceWithSettings(users *mockUserRepository, settings *mockSettingsRepository, hasher crypto.PasswordHasher) AuthService {
	cfg := config.App{
		TokenSignKey:  "test-sign-key",
		TokenIssuer:   "personahub-test",
		TokenDuration: time.Hour,
	}
	return NewAuthService(users, settings, hasher, cfg, logger.Nop())
}

func TestAuthService_RegisterUser_FirstUserBecomesAdmin(t *testing.T) {
	users := &mockUserRepository{
		countUsersFn: func(ctx context.Context) (int, error) { return 0, nil },
		createUserFn: func(ctx context.Context, user models.User) (models.User, error) {
			assert.True(t, user.IsAdmin)
			assert.Empty(t, user.Password, "plaintext password must be cleared before persistence")
			assert.NotEmpty(t, user.PasswordHash)
			user.UserID = 1
			return user, nil
		},
	}
	svc := newTestAuthService(users, crypto.NewPasswordHasher())

	registered, err := svc.RegisterUser(context.Background(), models.User{Username: "gopher", Password: "p@ssw0rd"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), registered.UserID)
	assert.True(t, registered.IsAdmin)
}

func TestAuthService_RegisterUser_LaterUsersAreNotAdmin(t *testing.T) {
	users := &mockUserRepository{
		countUsersFn: func(ctx context.Context) (int, error) { return 3, nil },
		createUserFn: func(ctx context.Context, user models.User) (models.User, error) {
			assert.False(t, user.IsAdmin)
			user.UserID = 4
			return user, nil
		},
	}
	svc := newTestAuthService(users, crypto.NewPasswordHasher())

	registered, err := svc.RegisterUser(context.Background(), models.User{Username: "newcomer", Password: "p@ssw0rd"})
	require.NoError(t, err)
	assert.False(t, registered.IsAdmin)
}

func TestAuthService_RegisterUser_PersistsPermissiveSettings(t *testing.T) {
	var saved *models.UserPrivacySettings

	users := &mockUserRepository{
		createUserFn: func(ctx context.Context, user models.User) (models.User, error) {
			user.UserID = 11
			return user, nil
		},
	}
	settings := &mockSettingsRepository{
		saveSettingsFn: func(ctx context.Context, s models.UserPrivacySettings) (models.UserPrivacySettings, error) {
			saved = &s
			return s, nil
		},
	}
	svc := newTestAuthServiceWithSettings(users, settings, crypto.NewPasswordHasher())

	_, err := svc.RegisterUser(context.Background(), models.User{Username: "gopher", Password: "p@ssw0rd"})
	require.NoError(t, err)

	require.NotNil(t, saved, "registration must create a settings row")
	assert.Equal(t, models.NewUserPrivacySettings(11), *saved)
	assert.True(t, saved.AIAssistantAccess)
	assert.False(t, saved.BusinessCardMode)
}

func TestAuthService_RegisterUser_SettingsSaveFailureIsNotFatal(t *testing.T) {
	users := &mockUserRepository{
		createUserFn: func(ctx context.Context, user models.User) (models.User, error) {
			user.UserID = 12
			return user, nil
		},
	}
	settings := &mockSettingsRepository{
		saveSettingsFn: func(ctx context.Context, s models.UserPrivacySettings) (models.UserPrivacySettings, error) {
			return models.UserPrivacySettings{}, errors.New("connection reset")
		},
	}
	svc := newTestAuthServiceWithSettings(users, settings, crypto.NewPasswordHasher())

	// The account exists; reads fall back to the conservative defaults
	// until settings are saved.
	registered, err := svc.RegisterUser(context.Background(), models.User{Username: "gopher", Password: "p@ssw0rd"})
	require.NoError(t, err)
	assert.Equal(t, int64(12), registered.UserID)
}

func TestAuthService_RegisterUser_EmptyCredentials(t *testing.T) {
	svc := newTestAuthService(&mockUserRepository{}, crypto.NewPasswordHasher())

	_, err := svc.RegisterUser(context.Background(), models.User{Username: "gopher"})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	_, err = svc.RegisterUser(context.Background(), models.User{Password: "p@ssw0rd"})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestAuthService_RegisterUser_HashingError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	hasher := mock.NewMockPasswordHasher(ctrl)
	hasher.EXPECT().Hash("p@ssw0rd").Return("", errors.New("entropy exhausted"))

	svc := newTestAuthService(&mockUserRepository{}, hasher)

	_, err := svc.RegisterUser(context.Background(), models.User{Username: "gopher", Password: "p@ssw0rd"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "password hashing failed")
}

func TestAuthService_RegisterUser_DuplicateUsername(t *testing.T) {
	users := &mockUserRepository{
		createUserFn: func(ctx context.Context, user models.User) (models.User, error) {
			return models.User{}, store.ErrUsernameAlreadyExists
		},
	}
	svc := newTestAuthService(users, crypto.NewPasswordHasher())

	_, err := svc.RegisterUser(context.Background(), models.User{Username: "gopher", Password: "p@ssw0rd"})
	assert.ErrorIs(t, err, store.ErrUsernameAlreadyExists)
}

func TestAuthService_RegisterUser_CountError(t *testing.T) {
	users := &mockUserRepository{
		countUsersFn: func(ctx context.Context) (int, error) { return 0, errors.New("connection reset") },
	}
	svc := newTestAuthService(users, crypto.NewPasswordHasher())

	_, err := svc.RegisterUser(context.Background(), models.User{Username: "gopher", Password: "p@ssw0rd"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "counting users failed")
}

func TestAuthService_Login_Success(t *testing.T) {
	hasher := crypto.NewPasswordHasher()
	hash, err := hasher.Hash("p@ssw0rd")
	require.NoError(t, err)

	users := &mockUserRepository{
		findUserByUsernameFn: func(ctx context.Context, username string) (models.User, error) {
			assert.Equal(t, "gopher", username)
			return models.User{UserID: 7, Username: "gopher", PasswordHash: hash}, nil
		},
	}
	svc := newTestAuthService(users, hasher)

	user, err := svc.Login(context.Background(), models.User{Username: "gopher", Password: "p@ssw0rd"})
	require.NoError(t, err)
	assert.Equal(t, int64(7), user.UserID)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	hasher := crypto.NewPasswordHasher()
	hash, err := hasher.Hash("p@ssw0rd")
	require.NoError(t, err)

	users := &mockUserRepository{
		findUserByUsernameFn: func(ctx context.Context, username string) (models.User, error) {
			return models.User{UserID: 7, Username: "gopher", PasswordHash: hash}, nil
		},
	}
	svc := newTestAuthService(users, hasher)

	_, err = svc.Login(context.Background(), models.User{Username: "gopher", Password: "guess"})
	assert.ErrorIs(t, err, ErrWrongPassword)
}

func TestAuthService_Login_UserNotFound(t *testing.T) {
	users := &mockUserRepository{
		findUserByUsernameFn: func(ctx context.Context, username string) (models.User, error) {
			return models.User{}, store.ErrNoUserWasFound
		},
	}
	svc := newTestAuthService(users, crypto.NewPasswordHasher())

	_, err := svc.Login(context.Background(), models.User{Username: "ghost", Password: "p@ssw0rd"})
	assert.ErrorIs(t, err, store.ErrNoUserWasFound)
}

func TestAuthService_Login_EmptyCredentials(t *testing.T) {
	svc := newTestAuthService(&mockUserRepository{}, crypto.NewPasswordHasher())

	_, err := svc.Login(context.Background(), models.User{Username: "gopher"})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestAuthService_TokenRoundTrip(t *testing.T) {
	svc := newTestAuthService(&mockUserRepository{}, crypto.NewPasswordHasher())
	ctx := context.Background()

	token, err := svc.CreateToken(ctx, models.User{UserID: 42, IsAdmin: true})
	require.NoError(t, err)
	require.NotEmpty(t, token.SignedString)

	parsed, err := svc.ParseToken(ctx, token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, int64(42), parsed.UserID)
	assert.True(t, parsed.Admin)
}

func TestAuthService_ParseToken_Garbage(t *testing.T) {
	svc := newTestAuthService(&mockUserRepository{}, crypto.NewPasswordHasher())

	_, err := svc.ParseToken(context.Background(), "not-a-jwt")
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

func TestAuthService_ParseToken_WrongKey(t *testing.T) {
	svc := newTestAuthService(&mockUserRepository{}, crypto.NewPasswordHasher())

	other := NewAuthService(&mockUserRepository{}, &mockSettingsRepository{}, crypto.NewPasswordHasher(), config.App{
		TokenSignKey:  "different-key",
		TokenIssuer:   "personahub-test",
		TokenDuration: time.Hour,
	}, logger.Nop())

	token, err := other.CreateToken(context.Background(), models.User{UserID: 1})
	require.NoError(t, err)

	_, err = svc.ParseToken(context.Background(), token.SignedString)
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}
