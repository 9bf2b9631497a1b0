package impl

import (
	"context"
	"log/slog"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/errors"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type userService struct {
	txManager repository.TransactionManager
	userRepo  repository.UserRepository
	logger    *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	UserRepo  repository.UserRepository
	Logger    *slog.Logger
}

// NewUserService is the constructor for userService.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		txManager: params.TxManager,
		userRepo:  params.UserRepo,
		logger:    params.Logger,
	}
}

func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *userService) GetUser(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "get user")
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return user, nil
}

// EditUser applies the non-nil fields. An email change also renames the
// email credential so signin keeps working with the new address.
func (srv *userService) EditUser(ctx context.Context, userID uuid.UUID, input *usecase.EditUserInput) (*entity.User, error) {
	var updated *entity.User

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()

		user, err := userRepo.FindByID(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrUserNotFound, "edit user")
			}

			return errors.Wrap(err, "failed to find user")
		}

		emailChanged := input.Email != nil && *input.Email != user.Email
		if input.Email != nil {
			user.Email = *input.Email
		}
		if input.FirstName != nil {
			user.FirstName = input.FirstName
		}
		if input.LastName != nil {
			user.LastName = input.LastName
		}

		if err := userRepo.Update(ctx, user); err != nil {
			if errors.Is(err, repository.ErrUserAlreadyExists) {
				return errors.Wrap(domainerrors.ErrUserAlreadyExists, "edit user")
			}

			return errors.Wrap(err, "failed to update user")
		}

		if emailChanged {
			if err := srv.renameCredential(ctx, repoFactory.NewAuthRepository(), user); err != nil {
				return err
			}
		}

		updated = user

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute edit user transaction")
	}

	srv.log(ctx).Debug("User profile updated", slog.Any("userID", userID))

	return updated, nil
}

func (srv *userService) renameCredential(ctx context.Context, authRepo repository.AuthRepository, user *entity.User) error {
	auth, err := authRepo.FindAuthenticationByUser(ctx, user.ID, entity.ProviderEmail)
	if err != nil {
		if errors.Is(err, repository.ErrAuthNotFound) {
			return nil
		}

		return errors.Wrap(err, "failed to find email credential")
	}

	auth.ProviderUserID = user.Email
	if err := authRepo.UpdateAuthentication(ctx, auth); err != nil {
		if errors.Is(err, repository.ErrAuthAlreadyExists) {
			return errors.Wrap(domainerrors.ErrUserAlreadyExists, "edit user")
		}

		return errors.Wrap(err, "failed to update email credential")
	}

	return nil
}
