package postgres_test

import (
	"context"
	"testing"
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/errors"
	"storefront/internal/infra/persistence/model"
	"storefront/internal/infra/persistence/postgres"
	"storefront/internal/infra/persistence/testdb"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func createUser(t *testing.T, db *gorm.DB, email string) *entity.User {
	t.Helper()

	user := &entity.User{Email: email}
	require.NoError(t, postgres.NewUserRepository(db).Create(context.Background(), user))
	require.NotEqual(t, uuid.Nil, user.ID)

	return user
}

func createProduct(t *testing.T, db *gorm.DB, title string, price string) *entity.Product {
	t.Helper()

	product := &entity.Product{
		Title:  title,
		Price:  decimal.RequireFromString(price),
		Images: []string{"https://img.example/" + title + ".png"},
	}
	require.NoError(t, postgres.NewProductRepository(db).CreateProduct(context.Background(), product))

	return product
}

func createAddress(t *testing.T, db *gorm.DB, userID uuid.UUID) *entity.Address {
	t.Helper()

	address := &entity.Address{
		UserID:   userID,
		Name:     "Home",
		Phone:    "5550100",
		PinCode:  "560001",
		Locality: "Indiranagar",
		Street:   "12th Main",
		City:     "Bengaluru",
		District: "Bengaluru Urban",
		State:    "Karnataka",
	}
	require.NoError(t, postgres.NewAddressRepository(db).CreateAddress(context.Background(), address))

	return address
}

func TestUserRepository(t *testing.T) {
	ctx := context.Background()
	db := testdb.New(t)
	repo := postgres.NewUserRepository(db)

	user := createUser(t, db, "alice@example.com")

	found, err := repo.FindByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, found.ID)

	err = repo.Create(ctx, &entity.User{Email: "alice@example.com"})
	assert.True(t, errors.Is(err, repository.ErrUserAlreadyExists))

	first := "Alice"
	found.FirstName = &first
	require.NoError(t, repo.Update(ctx, found))

	reloaded, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	require.NotNil(t, reloaded.FirstName)
	assert.Equal(t, "Alice", *reloaded.FirstName)

	_, err = repo.FindByID(ctx, uuid.New())
	assert.True(t, errors.Is(err, repository.ErrUserNotFound))
}

func TestAuthRepository(t *testing.T) {
	ctx := context.Background()
	db := testdb.New(t)
	repo := postgres.NewAuthRepository(db)
	user := createUser(t, db, "bob@example.com")

	auth := &entity.Authentication{
		UserID:         user.ID,
		Provider:       entity.ProviderEmail,
		ProviderUserID: user.Email,
		PasswordHash:   "hash",
	}
	require.NoError(t, repo.CreateAuthentication(ctx, auth))

	dup := *auth
	dup.ID = uuid.Nil
	assert.True(t, errors.Is(repo.CreateAuthentication(ctx, &dup), repository.ErrAuthAlreadyExists))

	found, err := repo.FindAuthentication(ctx, entity.ProviderEmail, "bob@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, found.UserID)

	found.ProviderUserID = "robert@example.com"
	require.NoError(t, repo.UpdateAuthentication(ctx, found))

	byUser, err := repo.FindAuthenticationByUser(ctx, user.ID, entity.ProviderEmail)
	require.NoError(t, err)
	assert.Equal(t, "robert@example.com", byUser.ProviderUserID)

	_, err = repo.FindAuthentication(ctx, entity.ProviderEmail, "bob@example.com")
	assert.True(t, errors.Is(err, repository.ErrAuthNotFound))
}

func TestRefreshTokenRepository(t *testing.T) {
	ctx := context.Background()
	db := testdb.New(t)
	repo := postgres.NewRefreshTokenRepository(db)
	user := createUser(t, db, "carol@example.com")

	live := &entity.RefreshToken{UserID: user.ID, TokenHash: "live", ExpiresAt: time.Now().Add(time.Hour)}
	expired := &entity.RefreshToken{UserID: user.ID, TokenHash: "expired", ExpiresAt: time.Now().Add(-time.Hour)}
	require.NoError(t, repo.CreateRefreshToken(ctx, live))
	require.NoError(t, repo.CreateRefreshToken(ctx, expired))

	found, err := repo.FindRefreshTokenByHash(ctx, "expired")
	require.NoError(t, err)
	assert.True(t, found.IsExpired(time.Now()))

	active, err := repo.FindRefreshTokensByUserID(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, live.ID, active[0].ID)

	deleted, err := repo.DeleteExpiredRefreshTokens(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	require.NoError(t, repo.DeleteRefreshTokensByUserID(ctx, user.ID))
	_, err = repo.FindRefreshTokenByHash(ctx, "live")
	assert.True(t, errors.Is(err, repository.ErrRefreshTokenNotFound))
}

func TestAddressRepository(t *testing.T) {
	ctx := context.Background()
	db := testdb.New(t)
	repo := postgres.NewAddressRepository(db)
	user := createUser(t, db, "dave@example.com")

	first := createAddress(t, db, user.ID)
	second := createAddress(t, db, user.ID)

	list, err := repo.FindAddressesByUserID(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, first.ID, list[0].ID)
	assert.Equal(t, second.ID, list[1].ID)

	landmark := "Near the park"
	first.City = "Mysuru"
	first.Landmark = &landmark
	require.NoError(t, repo.UpdateAddress(ctx, first))

	found, err := repo.FindAddressByID(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, "Mysuru", found.City)
	require.NotNil(t, found.Landmark)
	assert.Equal(t, landmark, *found.Landmark)

	require.NoError(t, repo.DeleteAddress(ctx, second.ID))
	assert.True(t, errors.Is(repo.DeleteAddress(ctx, second.ID), repository.ErrAddressNotFound))
	_, err = repo.FindAddressByID(ctx, second.ID)
	assert.True(t, errors.Is(err, repository.ErrAddressNotFound))
}

func TestProductRepository(t *testing.T) {
	ctx := context.Background()
	db := testdb.New(t)
	repo := postgres.NewProductRepository(db)

	mug := createProduct(t, db, "mug", "9.99")
	createProduct(t, db, "lamp", "25.00")

	found, err := repo.FindProductByID(ctx, mug.ID)
	require.NoError(t, err)
	assert.True(t, found.Price.Equal(decimal.RequireFromString("9.99")))
	assert.Equal(t, mug.Images, found.Images)

	found.Title = "big mug"
	require.NoError(t, repo.UpdateProduct(ctx, found))

	list, err := repo.ListProducts(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "lamp", list[0].Title)
	assert.Equal(t, "big mug", list[1].Title)

	require.NoError(t, repo.DeleteProduct(ctx, mug.ID))
	_, err = repo.FindProductByID(ctx, mug.ID)
	assert.True(t, errors.Is(err, repository.ErrProductNotFound))
	assert.True(t, errors.Is(repo.DeleteProduct(ctx, mug.ID), repository.ErrProductNotFound))

	list, err = repo.ListProducts(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestCartRepository_MembershipIsASet(t *testing.T) {
	ctx := context.Background()
	db := testdb.New(t)
	repo := postgres.NewCartRepository(db)
	user := createUser(t, db, "erin@example.com")
	p1 := createProduct(t, db, "p1", "1.00")
	p2 := createProduct(t, db, "p2", "2.00")

	_, err := repo.FindCartByUserID(ctx, user.ID)
	assert.True(t, errors.Is(err, repository.ErrCartNotFound))

	cart, err := repo.GetOrCreateCart(ctx, user.ID)
	require.NoError(t, err)
	again, err := repo.GetOrCreateCart(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, cart.ID, again.ID)

	require.NoError(t, repo.AddProduct(ctx, cart.ID, p1.ID))
	require.NoError(t, repo.AddProduct(ctx, cart.ID, p1.ID))
	require.NoError(t, repo.AddProduct(ctx, cart.ID, p2.ID))

	cart, err = repo.FindCartByUserID(ctx, user.ID)
	require.NoError(t, err)
	assert.ElementsMatch(t, []uuid.UUID{p1.ID, p2.ID}, entity.ProductIDs(cart.Products))

	require.NoError(t, repo.RemoveProducts(ctx, cart.ID, []uuid.UUID{p1.ID}))
	require.NoError(t, repo.RemoveProducts(ctx, cart.ID, nil))

	cart, err = repo.FindCartByUserID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{p2.ID}, entity.ProductIDs(cart.Products))

	assert.True(t, errors.Is(repo.AddProduct(ctx, cart.ID, uuid.New()), repository.ErrProductNotFound))
}

func TestCartRepository_HidesDeletedProducts(t *testing.T) {
	ctx := context.Background()
	db := testdb.New(t)
	carts := postgres.NewCartRepository(db)
	user := createUser(t, db, "frank@example.com")
	p := createProduct(t, db, "gone", "3.00")

	cart, err := carts.GetOrCreateCart(ctx, user.ID)
	require.NoError(t, err)
	require.NoError(t, carts.AddProduct(ctx, cart.ID, p.ID))
	require.NoError(t, postgres.NewProductRepository(db).DeleteProduct(ctx, p.ID))

	cart, err = carts.FindCartByUserID(ctx, user.ID)
	require.NoError(t, err)
	assert.Empty(t, cart.Products)
}

func TestOrderRepository_KeepsDeletedProductsAndOrdersNewestFirst(t *testing.T) {
	ctx := context.Background()
	db := testdb.New(t)
	orders := postgres.NewOrderRepository(db)
	user := createUser(t, db, "grace@example.com")
	address := createAddress(t, db, user.ID)
	p1 := createProduct(t, db, "p1", "1.00")
	p2 := createProduct(t, db, "p2", "2.00")

	older := &entity.Order{UserID: user.ID, AddressID: address.ID, Status: entity.OrderStatusPlaced, Products: []*entity.Product{p1}}
	require.NoError(t, orders.CreateOrder(ctx, older))
	newer := &entity.Order{UserID: user.ID, AddressID: address.ID, Status: entity.OrderStatusPlaced, Products: []*entity.Product{p1, p2}}
	require.NoError(t, orders.CreateOrder(ctx, newer))

	require.NoError(t, postgres.NewProductRepository(db).DeleteProduct(ctx, p1.ID))

	list, err := orders.FindOrdersByUserID(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, newer.ID, list[0].ID)
	assert.Equal(t, entity.OrderStatusPlaced, list[0].Status)
	assert.ElementsMatch(t, []uuid.UUID{p1.ID, p2.ID}, entity.ProductIDs(list[0].Products))
	assert.Equal(t, []uuid.UUID{p1.ID}, entity.ProductIDs(list[1].Products))
	assert.NotNil(t, list[1].Products[0].DeletedAt)

	err = orders.CreateOrder(ctx, &entity.Order{UserID: user.ID, AddressID: uuid.New(), Status: entity.OrderStatusPlaced})
	assert.True(t, errors.Is(err, repository.ErrAddressNotFound))
}

func TestJoinTables_RejectDanglingProducts(t *testing.T) {
	ctx := context.Background()
	db := testdb.New(t)
	user := createUser(t, db, "heidi@example.com")
	address := createAddress(t, db, user.ID)

	carts := postgres.NewCartRepository(db)
	cart, err := carts.GetOrCreateCart(ctx, user.ID)
	require.NoError(t, err)

	err = carts.AddProduct(ctx, cart.ID, uuid.New())
	assert.True(t, errors.Is(err, repository.ErrProductNotFound))

	var cartLinks int64
	require.NoError(t, db.Model(&model.CartProductModel{}).Count(&cartLinks).Error)
	assert.Zero(t, cartLinks)

	ghost := &entity.Product{ID: uuid.New()}
	err = postgres.NewOrderRepository(db).CreateOrder(ctx, &entity.Order{
		UserID:    user.ID,
		AddressID: address.ID,
		Status:    entity.OrderStatusPlaced,
		Products:  []*entity.Product{ghost},
	})
	require.Error(t, err)

	var orderLinks int64
	require.NoError(t, db.Model(&model.OrderProductModel{}).Count(&orderLinks).Error)
	assert.Zero(t, orderLinks)
}
