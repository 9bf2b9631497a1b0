package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"storefront/config"
	"storefront/internal/domain/repository"
	mockRepo "storefront/internal/mocks/repository"

	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig(maxActiveSessions int) *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{
			BcryptCost:        4,
			MaxActiveSessions: maxActiveSessions,
		},
	}
}

// txRepos are the repositories handed to a transaction callback.
type txRepos struct {
	factory      *mockRepo.MockRepositoryFactory
	user         *mockRepo.MockUserRepository
	auth         *mockRepo.MockAuthRepository
	refreshToken *mockRepo.MockRefreshTokenRepository
	address      *mockRepo.MockAddressRepository
	product      *mockRepo.MockProductRepository
	cart         *mockRepo.MockCartRepository
	order        *mockRepo.MockOrderRepository
}

func newTxRepos(t *testing.T) *txRepos {
	repos := &txRepos{
		factory:      mockRepo.NewMockRepositoryFactory(t),
		user:         mockRepo.NewMockUserRepository(t),
		auth:         mockRepo.NewMockAuthRepository(t),
		refreshToken: mockRepo.NewMockRefreshTokenRepository(t),
		address:      mockRepo.NewMockAddressRepository(t),
		product:      mockRepo.NewMockProductRepository(t),
		cart:         mockRepo.NewMockCartRepository(t),
		order:        mockRepo.NewMockOrderRepository(t),
	}

	repos.factory.EXPECT().NewUserRepository().Return(repos.user).Maybe()
	repos.factory.EXPECT().NewAuthRepository().Return(repos.auth).Maybe()
	repos.factory.EXPECT().NewRefreshTokenRepository().Return(repos.refreshToken).Maybe()
	repos.factory.EXPECT().NewAddressRepository().Return(repos.address).Maybe()
	repos.factory.EXPECT().NewProductRepository().Return(repos.product).Maybe()
	repos.factory.EXPECT().NewCartRepository().Return(repos.cart).Maybe()
	repos.factory.EXPECT().NewOrderRepository().Return(repos.order).Maybe()

	return repos
}

// expectTx makes txManager run the callback against repos and return its error.
func expectTx(txManager *mockRepo.MockTransactionManager, ctx context.Context, repos *txRepos) {
	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(repos.factory)
		}).
		Once()
}
