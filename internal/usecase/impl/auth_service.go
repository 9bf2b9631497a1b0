// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	txManager         repository.TransactionManager
	userRepo          repository.UserRepository
	authRepo          repository.AuthRepository
	refreshTokenRepo  repository.RefreshTokenRepository
	hasher            service.PasswordHasher
	tokenService      service.TokenService
	maxActiveSessions int
	logger            *slog.Logger
	now               func() time.Time
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager        repository.TransactionManager
	UserRepo         repository.UserRepository
	AuthRepo         repository.AuthRepository
	RefreshTokenRepo repository.RefreshTokenRepository
	Hasher           service.PasswordHasher
	TokenService     service.TokenService
	Config           *config.Config
	Logger           *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	maxActiveSessions := 0
	if params.Config != nil && params.Config.Auth != nil {
		maxActiveSessions = params.Config.Auth.MaxActiveSessions
	}

	return &authService{
		txManager:         params.TxManager,
		userRepo:          params.UserRepo,
		authRepo:          params.AuthRepo,
		refreshTokenRepo:  params.RefreshTokenRepo,
		hasher:            params.Hasher,
		tokenService:      params.TokenService,
		maxActiveSessions: maxActiveSessions,
		logger:            params.Logger,
		now:               time.Now,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Signup creates the user and its email credential, then opens a first session.
// All writes share one transaction.
func (srv *authService) Signup(ctx context.Context, input *usecase.SignupInput) (*usecase.AuthOutput, error) {
	srv.log(ctx).Info("Starting signup", slog.String("email", input.Email))

	// bcrypt is CPU-bound; hash before opening the transaction.
	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password during signup")
	}

	var output *usecase.AuthOutput
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()
		authRepo := repoFactory.NewAuthRepository()

		_, err := authRepo.FindAuthentication(ctx, entity.ProviderEmail, input.Email)
		if err == nil {
			return errors.Wrap(domainerrors.ErrCredentialsTaken, "email already registered")
		}
		if !errors.Is(err, repository.ErrAuthNotFound) {
			return errors.Wrap(err, "failed to find authentication")
		}

		newUser := &entity.User{
			Email:     input.Email,
			FirstName: input.FirstName,
			LastName:  input.LastName,
		}
		if err := userRepo.Create(ctx, newUser); err != nil {
			if errors.Is(err, repository.ErrUserAlreadyExists) {
				return errors.Wrap(domainerrors.ErrCredentialsTaken, "email already registered")
			}

			return errors.Wrap(err, "failed to create user during signup")
		}

		newAuth := &entity.Authentication{
			UserID:         newUser.ID,
			Provider:       entity.ProviderEmail,
			ProviderUserID: input.Email,
			PasswordHash:   hashedPassword,
		}
		if err := authRepo.CreateAuthentication(ctx, newAuth); err != nil {
			if errors.Is(err, repository.ErrAuthAlreadyExists) {
				return errors.Wrap(domainerrors.ErrCredentialsTaken, "email already registered")
			}

			return errors.Wrap(err, "failed to create authentication during signup")
		}

		output, err = srv.openSession(ctx, repoFactory.NewRefreshTokenRepository(), newUser)

		return err
	})
	if err != nil {
		srv.log(ctx).Warn("Signup failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute signup transaction")
	}

	srv.log(ctx).Debug("Signup completed", slog.Any("userID", output.User.ID))

	return output, nil
}

// Signin checks the email credential and opens a new session.
func (srv *authService) Signin(ctx context.Context, input *usecase.SigninInput) (*usecase.AuthOutput, error) {
	srv.log(ctx).Debug("Starting signin", slog.String("email", input.Email))

	authRecord, err := srv.authRepo.FindAuthentication(ctx, entity.ProviderEmail, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrAuthNotFound) {
			srv.log(ctx).Warn("Signin with unknown email", slog.String("email", input.Email))

			return nil, errors.Wrap(domainerrors.ErrCredentialsIncorrect, "signin failed")
		}

		return nil, errors.Wrap(err, "failed to find authentication")
	}

	if !srv.hasher.Check(input.Password, authRecord.PasswordHash) {
		srv.log(ctx).Warn("Signin with wrong password", slog.String("email", input.Email))

		return nil, errors.Wrap(domainerrors.ErrCredentialsIncorrect, "signin failed")
	}

	user, err := srv.userRepo.FindByID(ctx, authRecord.UserID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load user for signin")
	}

	var output *usecase.AuthOutput
	if srv.maxActiveSessions > 0 {
		// Pruning and insert must see the same session list.
		err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
			var sessionErr error
			output, sessionErr = srv.openSession(ctx, repoFactory.NewRefreshTokenRepository(), user)

			return sessionErr
		})
	} else {
		output, err = srv.openSession(ctx, srv.refreshTokenRepo, user)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to open session during signin")
	}

	srv.log(ctx).Debug("User signed in", slog.Any("userID", user.ID))

	return output, nil
}

// RefreshToken issues a new access token. The refresh token itself is not rotated.
func (srv *authService) RefreshToken(ctx context.Context, input *usecase.RefreshTokenInput) (*usecase.RefreshTokenOutput, error) {
	claims, err := srv.tokenService.ValidateRefreshToken(input.RefreshToken)
	if err != nil {
		srv.log(ctx).Debug("Rejected refresh token", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrRefreshTokenInvalid, "invalid refresh token")
	}

	stored, err := srv.refreshTokenRepo.FindRefreshTokenByHash(ctx, srv.tokenService.HashToken(input.RefreshToken))
	if err != nil {
		if errors.Is(err, repository.ErrRefreshTokenNotFound) {
			return nil, errors.Wrap(domainerrors.ErrRefreshTokenInvalid, "refresh token revoked")
		}

		return nil, errors.Wrap(err, "failed to find refresh token")
	}
	if stored.UserID != claims.UserID || stored.IsExpired(srv.now()) {
		return nil, errors.Wrap(domainerrors.ErrRefreshTokenInvalid, "refresh token expired or mismatched")
	}

	user, err := srv.userRepo.FindByID(ctx, stored.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrRefreshTokenInvalid, "user no longer exists")
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	accessToken, err := srv.tokenService.GenerateAccessToken(user.ID, user.Email)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate new access token")
	}

	return &usecase.RefreshTokenOutput{AccessToken: accessToken}, nil
}

// Signout deletes every refresh token of the user.
func (srv *authService) Signout(ctx context.Context, userID uuid.UUID) error {
	if err := srv.refreshTokenRepo.DeleteRefreshTokensByUserID(ctx, userID); err != nil {
		srv.log(ctx).Error("Failed to delete refresh tokens", slog.Any("userID", userID), slog.Any("error", err))

		return errors.Wrap(err, "failed to sign out")
	}
	srv.log(ctx).Info("User signed out", slog.Any("userID", userID))

	return nil
}

// openSession issues a token pair and stores the refresh token hash.
// With a session limit, the oldest sessions beyond it are pruned first.
func (srv *authService) openSession(ctx context.Context, refreshRepo repository.RefreshTokenRepository, user *entity.User) (*usecase.AuthOutput, error) {
	accessToken, refreshToken, err := srv.tokenService.GenerateTokens(user.ID, user.Email)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	if srv.maxActiveSessions > 0 {
		if err := srv.pruneSessions(ctx, refreshRepo, user.ID); err != nil {
			return nil, err
		}
	}

	token := &entity.RefreshToken{
		UserID:    user.ID,
		TokenHash: srv.tokenService.HashToken(refreshToken),
		ExpiresAt: srv.now().Add(srv.tokenService.GetRefreshTokenDuration()),
	}
	if err := refreshRepo.CreateRefreshToken(ctx, token); err != nil {
		return nil, errors.Wrap(err, "failed to store refresh token")
	}

	return &usecase.AuthOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         user,
	}, nil
}

func (srv *authService) pruneSessions(ctx context.Context, refreshRepo repository.RefreshTokenRepository, userID uuid.UUID) error {
	active, err := refreshRepo.FindRefreshTokensByUserID(ctx, userID)
	if err != nil {
		return errors.Wrap(err, "failed to list active sessions")
	}

	// Leave room for the session about to be created.
	excess := len(active) - srv.maxActiveSessions + 1
	for i := 0; i < excess; i++ {
		if err := refreshRepo.DeleteRefreshToken(ctx, active[i].ID); err != nil {
			return errors.Wrap(err, "failed to prune session")
		}
	}
	if excess > 0 {
		srv.log(ctx).Info("Pruned oldest sessions", slog.Any("userID", userID), slog.Int("count", excess))
	}

	return nil
}
