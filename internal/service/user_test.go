package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/pageza/nubereats/backend/internal/mocks"
	"github.com/pageza/nubereats/backend/internal/models"
	"github.com/pageza/nubereats/backend/internal/testhelpers"
)

func TestCreateAccount(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	user, err := env.users.CreateAccount(ctx, nil, CreateAccountInput{
		Email:    " New@Test.com ",
		Password: "12345",
		Role:     models.RoleClient,
	})
	require.NoError(t, err)
	assert.Equal(t, "new@test.com", user.Email)
	assert.False(t, user.Verified)

	var v models.Verification
	require.NoError(t, env.db.Where("user_id = ?", user.ID).First(&v).Error)

	sent := env.mailer.Emails()
	require.Len(t, sent, 1)
	assert.Equal(t, "new@test.com", sent[0].To)
	assert.Equal(t, v.Code, sent[0].Code)
}

func TestCreateAccountExistingEmail(t *testing.T) {
	env := newTestEnv(t)
	testhelpers.CreateUser(t, env.db, "a@test.com", models.RoleClient)

	_, err := env.users.CreateAccount(context.Background(), nil, CreateAccountInput{
		Email: "a@test.com", Password: "12345", Role: models.RoleOwner,
	})
	assertServiceError(t, err, KindConflict, MsgUserExists)
	assert.Empty(t, env.mailer.Emails())
}

func TestCreateAdminAccount(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	admin := testhelpers.CreateUser(t, env.db, "admin@test.com", models.RoleAdmin)
	client := testhelpers.CreateUser(t, env.db, "client@test.com", models.RoleClient)

	in := CreateAccountInput{Email: "boss@test.com", Password: "12345", Role: models.RoleAdmin}

	_, err := env.users.CreateAccount(ctx, nil, in)
	assertServiceError(t, err, KindForbidden, MsgAdminOnly)

	_, err = env.users.CreateAccount(ctx, client, in)
	assertServiceError(t, err, KindForbidden, MsgAdminOnly)

	// the admin gate is checked before the email, even for taken addresses
	_, err = env.users.CreateAccount(ctx, nil, CreateAccountInput{Email: "client@test.com", Password: "x", Role: models.RoleAdmin})
	assertServiceError(t, err, KindForbidden, MsgAdminOnly)

	created, err := env.users.CreateAccount(ctx, admin, in)
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, created.Role)
}

func TestCreateAccountStoreFailure(t *testing.T) {
	store := mocks.NewMockStore()
	env := newEnvWithStore(nil, store)
	store.UserRepo.On("ExistsByEmail", mock.Anything, "a@test.com").Return(false, nil)
	store.UserRepo.On("Create", mock.Anything, mock.Anything).Return(errStore)

	_, err := env.users.CreateAccount(context.Background(), nil, CreateAccountInput{
		Email: "a@test.com", Password: "12345", Role: models.RoleClient,
	})
	assertServiceError(t, err, KindInternal, MsgCreateAccountFailed)
	assert.ErrorIs(t, err, errStore)
	assert.Empty(t, env.mailer.Emails())
}

func TestLogin(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	user := testhelpers.CreateUser(t, env.db, "a@test.com", models.RoleClient)

	token, err := env.users.Login(ctx, "a@test.com", testhelpers.TestPassword)
	require.NoError(t, err)
	id, err := env.tokens.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, id)

	_, err = env.users.Login(ctx, "a@test.com", "wrong")
	assertServiceError(t, err, KindInvalidCredentials, MsgWrongPassword)

	_, err = env.users.Login(ctx, "nobody@test.com", "12345")
	assertServiceError(t, err, KindNotFound, MsgUserNotFound)
}

func TestLoginStoreFailure(t *testing.T) {
	store := mocks.NewMockStore()
	env := newEnvWithStore(nil, store)
	store.UserRepo.On("FindByEmail", mock.Anything, "a@test.com").Return(nil, errStore)

	_, err := env.users.Login(context.Background(), "a@test.com", "12345")
	assertServiceError(t, err, KindInternal, MsgLoginFailed)
}

func TestLoginCorruptHash(t *testing.T) {
	store := mocks.NewMockStore()
	env := newEnvWithStore(nil, store)
	store.UserRepo.On("FindByEmail", mock.Anything, "a@test.com").
		Return(&models.User{ID: 1, Email: "a@test.com", PasswordHash: "garbage"}, nil)

	_, err := env.users.Login(context.Background(), "a@test.com", "12345")
	assertServiceError(t, err, KindInternal, MsgLoginFailed)
}

func TestFindByIDAndAuthenticate(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	user := testhelpers.CreateUser(t, env.db, "a@test.com", models.RoleOwner)

	found, err := env.users.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "a@test.com", found.Email)

	_, err = env.users.FindByID(ctx, 999)
	assertServiceError(t, err, KindNotFound, MsgUserNotFound)

	token, err := env.tokens.Sign(user.ID)
	require.NoError(t, err)
	principal, err := env.users.Authenticate(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, principal.ID)

	ghost, err := env.tokens.Sign(999)
	require.NoError(t, err)
	_, err = env.users.Authenticate(ctx, ghost)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = env.users.Authenticate(ctx, "garbage")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestEditProfileChangesEmail(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	user := testhelpers.CreateUser(t, env.db, "old@test.com", models.RoleClient)
	require.NoError(t, env.db.Model(user).Update("verified", true).Error)
	require.NoError(t, env.db.Create(&models.Verification{UserID: user.ID, Code: "stale"}).Error)

	updated, err := env.users.EditProfile(ctx, user.ID, EditProfileInput{Email: strPtr("new@test.com")})
	require.NoError(t, err)
	assert.Equal(t, "new@test.com", updated.Email)
	assert.False(t, updated.Verified)

	var stored models.User
	require.NoError(t, env.db.First(&stored, user.ID).Error)
	assert.False(t, stored.Verified)
	assert.Equal(t, "new@test.com", stored.Email)

	var verifications []models.Verification
	require.NoError(t, env.db.Where("user_id = ?", user.ID).Find(&verifications).Error)
	require.Len(t, verifications, 1)
	assert.NotEqual(t, "stale", verifications[0].Code)

	sent := env.mailer.Emails()
	require.Len(t, sent, 1)
	assert.Equal(t, verifications[0].Code, sent[0].Code)
	assert.Equal(t, "new@test.com", sent[0].To)
}

func TestEditProfileSameEmailKeepsVerification(t *testing.T) {
	env := newTestEnv(t)
	user := testhelpers.CreateUser(t, env.db, "same@test.com", models.RoleClient)
	require.NoError(t, env.db.Model(user).Update("verified", true).Error)

	updated, err := env.users.EditProfile(context.Background(), user.ID, EditProfileInput{Email: strPtr("same@test.com")})
	require.NoError(t, err)
	assert.True(t, updated.Verified)
	assert.Empty(t, env.mailer.Emails())
}

func TestEditProfileChangesPassword(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	user := testhelpers.CreateUser(t, env.db, "a@test.com", models.RoleClient)
	require.NoError(t, env.db.Model(user).Update("verified", true).Error)

	updated, err := env.users.EditProfile(ctx, user.ID, EditProfileInput{Password: strPtr("new-password")})
	require.NoError(t, err)
	assert.True(t, updated.Verified)
	assert.Empty(t, env.mailer.Emails())

	var count int64
	env.db.Model(&models.Verification{}).Where("user_id = ?", user.ID).Count(&count)
	assert.Zero(t, count)

	_, err = env.users.Login(ctx, "a@test.com", testhelpers.TestPassword)
	assertServiceError(t, err, KindInvalidCredentials, MsgWrongPassword)
	_, err = env.users.Login(ctx, "a@test.com", "new-password")
	assert.NoError(t, err)
}

func TestEditProfileEmailTaken(t *testing.T) {
	env := newTestEnv(t)
	testhelpers.CreateUser(t, env.db, "taken@test.com", models.RoleClient)
	user := testhelpers.CreateUser(t, env.db, "me@test.com", models.RoleClient)

	_, err := env.users.EditProfile(context.Background(), user.ID, EditProfileInput{Email: strPtr("taken@test.com")})
	assertServiceError(t, err, KindConflict, MsgUserExists)

	var stored models.User
	require.NoError(t, env.db.First(&stored, user.ID).Error)
	assert.Equal(t, "me@test.com", stored.Email)
}

func TestEditProfileStoreFailure(t *testing.T) {
	store := mocks.NewMockStore()
	env := newEnvWithStore(nil, store)
	store.UserRepo.On("FindByID", mock.Anything, uint(1)).Return(&models.User{ID: 1, Email: "a@test.com"}, nil)
	store.UserRepo.On("Save", mock.Anything, mock.Anything).Return(errStore)

	_, err := env.users.EditProfile(context.Background(), 1, EditProfileInput{Password: strPtr("x")})
	assertServiceError(t, err, KindInternal, MsgUpdateProfileFailed)
}

func TestVerifyEmail(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	user, err := env.users.CreateAccount(ctx, nil, CreateAccountInput{Email: "v@test.com", Password: "12345", Role: models.RoleClient})
	require.NoError(t, err)
	code := env.mailer.Emails()[0].Code

	require.NoError(t, env.users.VerifyEmail(ctx, code))

	var stored models.User
	require.NoError(t, env.db.First(&stored, user.ID).Error)
	assert.True(t, stored.Verified)

	var count int64
	env.db.Model(&models.Verification{}).Count(&count)
	assert.Zero(t, count)

	err = env.users.VerifyEmail(ctx, code)
	assertServiceError(t, err, KindNotFound, MsgVerificationNotFound)
}

func TestVerifyEmailStoreFailure(t *testing.T) {
	store := mocks.NewMockStore()
	env := newEnvWithStore(nil, store)
	store.VerificationRepo.On("FindByCode", mock.Anything, "code").Return(&models.Verification{ID: 1, UserID: 2, Code: "code"}, nil)
	store.UserRepo.On("FindByID", mock.Anything, uint(2)).Return(&models.User{ID: 2}, nil)
	store.UserRepo.On("Save", mock.Anything, mock.Anything).Return(errStore)

	err := env.users.VerifyEmail(context.Background(), "code")
	assertServiceError(t, err, KindInternal, MsgVerifyEmailFailed)
}

func TestDeleteAccount(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	user := testhelpers.CreateUser(t, env.db, "a@test.com", models.RoleOwner)

	require.NoError(t, env.users.DeleteAccount(ctx, user.ID))
	_, err := env.users.FindByID(ctx, user.ID)
	assertServiceError(t, err, KindNotFound, MsgUserNotFound)

	err = env.users.DeleteAccount(ctx, user.ID)
	assertServiceError(t, err, KindNotFound, MsgUserNotFound)
}

func TestDeleteAccountStoreFailure(t *testing.T) {
	store := mocks.NewMockStore()
	env := newEnvWithStore(nil, store)
	store.UserRepo.On("Delete", mock.Anything, uint(1)).Return(errStore)

	err := env.users.DeleteAccount(context.Background(), 1)
	assertServiceError(t, err, KindInternal, MsgDeleteAccountFailed)
}
