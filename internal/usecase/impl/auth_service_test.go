package impl

import (
	"context"
	"testing"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
	mockRepo "storefront/internal/mocks/repository"
	mockSvc "storefront/internal/mocks/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// authServiceFixtures holds all test dependencies for auth service tests.
type authServiceFixtures struct {
	service          *authService
	txManager        *mockRepo.MockTransactionManager
	userRepo         *mockRepo.MockUserRepository
	authRepo         *mockRepo.MockAuthRepository
	refreshTokenRepo *mockRepo.MockRefreshTokenRepository
	hasher           *mockSvc.MockPasswordHasher
	tokenService     *mockSvc.MockTokenService
	now              time.Time
}

func createTestAuthService(t *testing.T, maxActiveSessions int) authServiceFixtures {
	fx := authServiceFixtures{
		txManager:        mockRepo.NewMockTransactionManager(t),
		userRepo:         mockRepo.NewMockUserRepository(t),
		authRepo:         mockRepo.NewMockAuthRepository(t),
		refreshTokenRepo: mockRepo.NewMockRefreshTokenRepository(t),
		hasher:           mockSvc.NewMockPasswordHasher(t),
		tokenService:     mockSvc.NewMockTokenService(t),
		now:              time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}

	srv := NewAuthService(AuthServiceParams{
		TxManager:        fx.txManager,
		UserRepo:         fx.userRepo,
		AuthRepo:         fx.authRepo,
		RefreshTokenRepo: fx.refreshTokenRepo,
		Hasher:           fx.hasher,
		TokenService:     fx.tokenService,
		Config:           newTestConfig(maxActiveSessions),
		Logger:           newDiscardLogger(),
	}).(*authService)
	srv.now = func() time.Time { return fx.now }
	fx.service = srv

	return fx
}

func (fx authServiceFixtures) expectTokens(userID uuid.UUID, email string) {
	fx.tokenService.EXPECT().GenerateTokens(userID, email).Return("access", "refresh", nil)
	fx.tokenService.EXPECT().HashToken("refresh").Return("refresh-hash")
	fx.tokenService.EXPECT().GetRefreshTokenDuration().Return(time.Hour)
}

func TestAuthService_Signup_Success(t *testing.T) {
	fx := createTestAuthService(t, 0)
	ctx := context.Background()
	repos := newTxRepos(t)
	input := &usecase.SignupInput{Email: "ada@example.com", Password: "secret-pass"}
	userID := uuid.New()

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed", nil)
	expectTx(fx.txManager, ctx, repos)
	repos.auth.EXPECT().FindAuthentication(ctx, entity.ProviderEmail, input.Email).Return(nil, repository.ErrAuthNotFound)
	repos.user.EXPECT().Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(_ context.Context, user *entity.User) { user.ID = userID }).
		Return(nil)
	repos.auth.EXPECT().CreateAuthentication(ctx, mock.MatchedBy(func(a *entity.Authentication) bool {
		return a.UserID == userID && a.ProviderUserID == input.Email && a.PasswordHash == "hashed"
	})).Return(nil)
	fx.expectTokens(userID, input.Email)
	repos.refreshToken.EXPECT().CreateRefreshToken(ctx, mock.MatchedBy(func(tok *entity.RefreshToken) bool {
		return tok.UserID == userID && tok.TokenHash == "refresh-hash" && tok.ExpiresAt.Equal(fx.now.Add(time.Hour))
	})).Return(nil)

	output, err := fx.service.Signup(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "access", output.AccessToken)
	assert.Equal(t, "refresh", output.RefreshToken)
	assert.Equal(t, userID, output.User.ID)
}

func TestAuthService_Signup_EmailTaken(t *testing.T) {
	fx := createTestAuthService(t, 0)
	ctx := context.Background()
	repos := newTxRepos(t)
	input := &usecase.SignupInput{Email: "ada@example.com", Password: "secret-pass"}

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed", nil)
	expectTx(fx.txManager, ctx, repos)
	repos.auth.EXPECT().FindAuthentication(ctx, entity.ProviderEmail, input.Email).
		Return(&entity.Authentication{UserID: uuid.New()}, nil)

	output, err := fx.service.Signup(ctx, input)

	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrCredentialsTaken)
}

func TestAuthService_Signup_RaceOnUniqueEmail(t *testing.T) {
	fx := createTestAuthService(t, 0)
	ctx := context.Background()
	repos := newTxRepos(t)
	input := &usecase.SignupInput{Email: "ada@example.com", Password: "secret-pass"}

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed", nil)
	expectTx(fx.txManager, ctx, repos)
	repos.auth.EXPECT().FindAuthentication(ctx, entity.ProviderEmail, input.Email).Return(nil, repository.ErrAuthNotFound)
	repos.user.EXPECT().Create(ctx, mock.AnythingOfType("*entity.User")).Return(repository.ErrUserAlreadyExists)

	_, err := fx.service.Signup(ctx, input)

	assert.ErrorIs(t, err, domainerrors.ErrCredentialsTaken)
}

func TestAuthService_Signup_WeakPassword(t *testing.T) {
	fx := createTestAuthService(t, 0)
	ctx := context.Background()
	input := &usecase.SignupInput{Email: "ada@example.com", Password: "abc"}

	fx.hasher.EXPECT().Hash(input.Password).Return("", domainerrors.ErrPasswordStrength.WithDetails("too short"))

	_, err := fx.service.Signup(ctx, input)

	assert.ErrorIs(t, err, domainerrors.ErrPasswordStrength)
	fx.txManager.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}

func TestAuthService_Signin_Success(t *testing.T) {
	fx := createTestAuthService(t, 0)
	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "ada@example.com"}
	input := &usecase.SigninInput{Email: user.Email, Password: "secret-pass"}

	fx.authRepo.EXPECT().FindAuthentication(ctx, entity.ProviderEmail, input.Email).
		Return(&entity.Authentication{UserID: user.ID, PasswordHash: "hashed"}, nil)
	fx.hasher.EXPECT().Check(input.Password, "hashed").Return(true)
	fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	fx.expectTokens(user.ID, user.Email)
	fx.refreshTokenRepo.EXPECT().CreateRefreshToken(ctx, mock.AnythingOfType("*entity.RefreshToken")).Return(nil)

	output, err := fx.service.Signin(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, user, output.User)
	assert.Equal(t, "access", output.AccessToken)
}

func TestAuthService_Signin_IncorrectCredentials(t *testing.T) {
	t.Run("unknown email", func(t *testing.T) {
		fx := createTestAuthService(t, 0)
		ctx := context.Background()

		fx.authRepo.EXPECT().FindAuthentication(ctx, entity.ProviderEmail, "nobody@example.com").
			Return(nil, repository.ErrAuthNotFound)

		_, err := fx.service.Signin(ctx, &usecase.SigninInput{Email: "nobody@example.com", Password: "x"})

		assert.ErrorIs(t, err, domainerrors.ErrCredentialsIncorrect)
	})

	t.Run("wrong password", func(t *testing.T) {
		fx := createTestAuthService(t, 0)
		ctx := context.Background()

		fx.authRepo.EXPECT().FindAuthentication(ctx, entity.ProviderEmail, "ada@example.com").
			Return(&entity.Authentication{UserID: uuid.New(), PasswordHash: "hashed"}, nil)
		fx.hasher.EXPECT().Check("wrong", "hashed").Return(false)

		_, err := fx.service.Signin(ctx, &usecase.SigninInput{Email: "ada@example.com", Password: "wrong"})

		assert.ErrorIs(t, err, domainerrors.ErrCredentialsIncorrect)
	})
}

func TestAuthService_Signin_PrunesOldestSessions(t *testing.T) {
	fx := createTestAuthService(t, 2)
	ctx := context.Background()
	repos := newTxRepos(t)
	user := &entity.User{ID: uuid.New(), Email: "ada@example.com"}
	active := []*entity.RefreshToken{
		{ID: uuid.New(), UserID: user.ID},
		{ID: uuid.New(), UserID: user.ID},
	}

	fx.authRepo.EXPECT().FindAuthentication(ctx, entity.ProviderEmail, user.Email).
		Return(&entity.Authentication{UserID: user.ID, PasswordHash: "hashed"}, nil)
	fx.hasher.EXPECT().Check("secret-pass", "hashed").Return(true)
	fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	expectTx(fx.txManager, ctx, repos)
	fx.expectTokens(user.ID, user.Email)
	repos.refreshToken.EXPECT().FindRefreshTokensByUserID(ctx, user.ID).Return(active, nil)
	repos.refreshToken.EXPECT().DeleteRefreshToken(ctx, active[0].ID).Return(nil).Once()
	repos.refreshToken.EXPECT().CreateRefreshToken(ctx, mock.AnythingOfType("*entity.RefreshToken")).Return(nil)

	_, err := fx.service.Signin(ctx, &usecase.SigninInput{Email: user.Email, Password: "secret-pass"})

	require.NoError(t, err)
	repos.refreshToken.AssertNotCalled(t, "DeleteRefreshToken", ctx, active[1].ID)
}

func TestAuthService_RefreshToken(t *testing.T) {
	userID := uuid.New()
	user := &entity.User{ID: userID, Email: "ada@example.com"}
	claims := &service.Claims{UserID: userID, Email: user.Email, Type: service.TokenTypeRefresh}

	t.Run("success", func(t *testing.T) {
		fx := createTestAuthService(t, 0)
		ctx := context.Background()

		fx.tokenService.EXPECT().ValidateRefreshToken("refresh").Return(claims, nil)
		fx.tokenService.EXPECT().HashToken("refresh").Return("refresh-hash")
		fx.refreshTokenRepo.EXPECT().FindRefreshTokenByHash(ctx, "refresh-hash").
			Return(&entity.RefreshToken{UserID: userID, ExpiresAt: fx.now.Add(time.Minute)}, nil)
		fx.userRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
		fx.tokenService.EXPECT().GenerateAccessToken(userID, user.Email).Return("new-access", nil)

		output, err := fx.service.RefreshToken(ctx, &usecase.RefreshTokenInput{RefreshToken: "refresh"})

		require.NoError(t, err)
		assert.Equal(t, "new-access", output.AccessToken)
	})

	t.Run("bad signature", func(t *testing.T) {
		fx := createTestAuthService(t, 0)

		fx.tokenService.EXPECT().ValidateRefreshToken("forged").Return(nil, errors.New("signature is invalid"))

		_, err := fx.service.RefreshToken(context.Background(), &usecase.RefreshTokenInput{RefreshToken: "forged"})

		assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid)
	})

	t.Run("revoked", func(t *testing.T) {
		fx := createTestAuthService(t, 0)
		ctx := context.Background()

		fx.tokenService.EXPECT().ValidateRefreshToken("refresh").Return(claims, nil)
		fx.tokenService.EXPECT().HashToken("refresh").Return("refresh-hash")
		fx.refreshTokenRepo.EXPECT().FindRefreshTokenByHash(ctx, "refresh-hash").Return(nil, repository.ErrRefreshTokenNotFound)

		_, err := fx.service.RefreshToken(ctx, &usecase.RefreshTokenInput{RefreshToken: "refresh"})

		assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid)
	})

	t.Run("expired in store", func(t *testing.T) {
		fx := createTestAuthService(t, 0)
		ctx := context.Background()

		fx.tokenService.EXPECT().ValidateRefreshToken("refresh").Return(claims, nil)
		fx.tokenService.EXPECT().HashToken("refresh").Return("refresh-hash")
		fx.refreshTokenRepo.EXPECT().FindRefreshTokenByHash(ctx, "refresh-hash").
			Return(&entity.RefreshToken{UserID: userID, ExpiresAt: fx.now}, nil)

		_, err := fx.service.RefreshToken(ctx, &usecase.RefreshTokenInput{RefreshToken: "refresh"})

		assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid)
	})
}

func TestAuthService_Signout(t *testing.T) {
	fx := createTestAuthService(t, 0)
	ctx := context.Background()
	userID := uuid.New()

	fx.refreshTokenRepo.EXPECT().DeleteRefreshTokensByUserID(ctx, userID).Return(nil)

	require.NoError(t, fx.service.Signout(ctx, userID))
}

func TestSessionService_PurgeExpiredSessions(t *testing.T) {
	refreshRepo := mockRepo.NewMockRefreshTokenRepository(t)
	srv := NewSessionService(refreshRepo, newDiscardLogger())
	ctx := context.Background()

	refreshRepo.EXPECT().DeleteExpiredRefreshTokens(ctx).Return(int64(3), nil).Once()
	deleted, err := srv.PurgeExpiredSessions(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), deleted)

	refreshRepo.EXPECT().DeleteExpiredRefreshTokens(ctx).Return(int64(0), errors.New("db down")).Once()
	_, err = srv.PurgeExpiredSessions(ctx)
	assert.ErrorContains(t, err, "failed to purge expired sessions")
}
