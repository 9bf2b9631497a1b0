package api_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"storefront/config"
	"storefront/internal/delivery/api"
	"storefront/internal/delivery/api/middleware"
	"storefront/internal/delivery/api/router"
	"storefront/internal/delivery/api/router/handler"
	"storefront/internal/infra/auth"
	"storefront/internal/infra/metrics"
	"storefront/internal/infra/persistence/postgres"
	"storefront/internal/infra/persistence/testdb"
	"storefront/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testServer struct {
	t *testing.T
	e *echo.Echo
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	cfg := &config.Config{
		SecretKey:        config.SecretKey{Access: "access-secret", Refresh: "refresh-secret"},
		Auth:             &config.AuthConfig{BcryptCost: 4},
		PasswordStrength: &config.PasswordStrengthConfig{MinLength: 6, MaxLength: 72},
		Metrics:          &config.MetricsConfig{Enabled: true, Path: "/metrics"},
	}
	cfg.HTTP.MaxRequestBodySize = "100KB"

	logger := slog.New(slog.DiscardHandler)
	db := testdb.New(t)
	m := metrics.New()

	tokenSvc, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	txManager := postgres.NewTransactionManager(db)
	userRepo := postgres.NewUserRepository(db)
	refreshRepo := postgres.NewRefreshTokenRepository(db)
	productRepo := postgres.NewProductRepository(db)
	cartRepo := postgres.NewCartRepository(db)

	authUC := impl.NewAuthService(impl.AuthServiceParams{
		TxManager:        txManager,
		UserRepo:         userRepo,
		AuthRepo:         postgres.NewAuthRepository(db),
		RefreshTokenRepo: refreshRepo,
		Hasher:           auth.NewBcryptHasher(cfg),
		TokenService:     tokenSvc,
		Config:           cfg,
		Logger:           logger,
	})

	r := router.NewRouter(router.RouterParams{
		AuthHandler: handler.NewAuthHandler(authUC),
		UserHandler: handler.NewUserHandler(impl.NewUserService(impl.UserServiceParams{
			TxManager: txManager, UserRepo: userRepo, Logger: logger,
		})),
		AddressHandler: handler.NewAddressHandler(impl.NewAddressService(impl.AddressServiceParams{
			TxManager: txManager, AddressRepo: postgres.NewAddressRepository(db), Logger: logger,
		})),
		ProductHandler: handler.NewProductHandler(impl.NewProductService(impl.ProductServiceParams{
			TxManager: txManager, ProductRepo: productRepo, Logger: logger,
		})),
		CartHandler: handler.NewCartHandler(impl.NewCartService(impl.CartServiceParams{
			TxManager: txManager, CartRepo: cartRepo, ProductRepo: productRepo, Logger: logger,
		})),
		OrderHandler: handler.NewOrderHandler(impl.NewOrderService(impl.OrderServiceParams{
			TxManager: txManager, OrderRepo: postgres.NewOrderRepository(db), Recorder: metrics.NewCheckoutRecorder(m), Logger: logger,
		})),
		HealthHandler:  handler.NewHealthHandler(db),
		AuthMiddleware: middleware.NewAuthMiddleware(tokenSvc),
		Metrics:        m,
		Config:         cfg,
	})

	return &testServer{t: t, e: api.NewEcho(cfg, logger, m, r)}
}

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Details any    `json:"details"`
	} `json:"error"`
}

// do sends a JSON request and decodes the envelope into out when given.
func (s *testServer) do(method, path, token string, body any, out any) (int, *envelope) {
	s.t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(s.t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)

	if rec.Code == http.StatusNoContent {
		assert.Empty(s.t, rec.Body.Bytes())

		return rec.Code, nil
	}

	var env envelope
	require.NoError(s.t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	if out != nil && env.Data != nil {
		require.NoError(s.t, json.Unmarshal(env.Data, out))
	}

	return rec.Code, &env
}

type authBody struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	User         struct {
		ID    string `json:"id"`
		Email string `json:"email"`
	} `json:"user"`
}

type productBody struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Price string `json:"price"`
}

type cartBody struct {
	ID       *string       `json:"id"`
	Products []productBody `json:"products"`
}

type orderBody struct {
	ID        string        `json:"id"`
	AddressID string        `json:"address_id"`
	Status    string        `json:"status"`
	Products  []productBody `json:"products"`
}

type idBody struct {
	ID string `json:"id"`
}

func (s *testServer) signup(email string) authBody {
	s.t.Helper()

	var out authBody
	code, _ := s.do(http.MethodPost, "/auth/signup", "", map[string]any{
		"email": email, "password": "secret-pass", "first_name": "Ada",
	}, &out)
	require.Equal(s.t, http.StatusCreated, code)

	return out
}

func (s *testServer) addProduct(token, title, price string) productBody {
	s.t.Helper()

	var out productBody
	code, _ := s.do(http.MethodPost, "/product", token, map[string]any{
		"title": title, "price": price, "images": []string{"https://img.example/" + title + ".png"},
	}, &out)
	require.Equal(s.t, http.StatusCreated, code)

	return out
}

func (s *testServer) addAddress(token string) idBody {
	s.t.Helper()

	var out idBody
	code, _ := s.do(http.MethodPost, "/address", token, map[string]any{
		"name": "Home", "phone": "5550100", "pin_code": "560001", "locality": "Indiranagar",
		"street": "12th Main", "city": "Bengaluru", "district": "Bengaluru Urban", "state": "Karnataka",
	}, &out)
	require.Equal(s.t, http.StatusCreated, code)

	return out
}

func productIDs(products []productBody) []string {
	ids := make([]string, 0, len(products))
	for _, p := range products {
		ids = append(ids, p.ID)
	}

	return ids
}

func TestAuthFlow(t *testing.T) {
	s := newTestServer(t)

	account := s.signup("ada@example.com")
	assert.NotEmpty(t, account.AccessToken)
	assert.NotEmpty(t, account.RefreshToken)
	assert.Equal(t, "ada@example.com", account.User.Email)

	code, env := s.do(http.MethodPost, "/auth/signup", "", map[string]any{"email": "ada@example.com", "password": "another-pass"}, nil)
	assert.Equal(t, http.StatusForbidden, code)
	assert.Equal(t, "CREDENTIALS_TAKEN", env.Error.Code)

	code, env = s.do(http.MethodPost, "/auth/signin", "", map[string]any{"email": "ada@example.com", "password": "wrong-pass"}, nil)
	assert.Equal(t, http.StatusForbidden, code)
	assert.Equal(t, "CREDENTIALS_INCORRECT", env.Error.Code)

	var signin authBody
	code, _ = s.do(http.MethodPost, "/auth/signin", "", map[string]any{"email": "ada@example.com", "password": "secret-pass"}, &signin)
	require.Equal(t, http.StatusOK, code)

	var refreshed struct {
		AccessToken string `json:"access_token"`
	}
	code, _ = s.do(http.MethodPost, "/auth/refresh", "", map[string]any{"refresh_token": signin.RefreshToken}, &refreshed)
	require.Equal(t, http.StatusOK, code)

	code, _ = s.do(http.MethodGet, "/user", refreshed.AccessToken, nil, nil)
	assert.Equal(t, http.StatusOK, code)

	// An access token is not accepted as a refresh token.
	code, env = s.do(http.MethodPost, "/auth/refresh", "", map[string]any{"refresh_token": signin.AccessToken}, nil)
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.Equal(t, "REFRESH_TOKEN_INVALID", env.Error.Code)

	code, _ = s.do(http.MethodDelete, "/auth/signout", signin.AccessToken, nil, nil)
	require.Equal(t, http.StatusNoContent, code)

	code, _ = s.do(http.MethodPost, "/auth/refresh", "", map[string]any{"refresh_token": signin.RefreshToken}, nil)
	assert.Equal(t, http.StatusUnauthorized, code)
}

func TestSignup_Validation(t *testing.T) {
	s := newTestServer(t)

	code, env := s.do(http.MethodPost, "/auth/signup", "", map[string]any{"email": "not-an-email", "password": "secret-pass"}, nil)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)

	code, env = s.do(http.MethodPost, "/auth/signup", "", map[string]any{"email": "ada@example.com", "password": "abc"}, nil)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "PASSWORD_STRENGTH", env.Error.Code)
}

func TestEditUser(t *testing.T) {
	s := newTestServer(t)
	ada := s.signup("ada@example.com")
	s.signup("grace@example.com")

	code, env := s.do(http.MethodPatch, "/user", ada.AccessToken, map[string]any{"email": "grace@example.com"}, nil)
	assert.Equal(t, http.StatusConflict, code)
	assert.Equal(t, "USER_ALREADY_EXISTS", env.Error.Code)

	code, _ = s.do(http.MethodPatch, "/user", ada.AccessToken, map[string]any{"email": "ada.l@example.com"}, nil)
	require.Equal(t, http.StatusOK, code)

	// The credential follows the new email.
	code, _ = s.do(http.MethodPost, "/auth/signin", "", map[string]any{"email": "ada.l@example.com", "password": "secret-pass"}, nil)
	assert.Equal(t, http.StatusOK, code)
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	s := newTestServer(t)

	for _, path := range []string{"/user", "/cart", "/order", "/address", "/product"} {
		code, env := s.do(http.MethodGet, path, "", nil, nil)
		assert.Equal(t, http.StatusUnauthorized, code, path)
		assert.Equal(t, "UNAUTHORIZED", env.Error.Code, path)
	}

	code, _ := s.do(http.MethodGet, "/cart", "garbage", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, code)
}

func TestCheckoutScenario(t *testing.T) {
	s := newTestServer(t)
	token := s.signup("ada@example.com").AccessToken

	p1 := s.addProduct(token, "lamp", "19.99")
	p2 := s.addProduct(token, "desk", "120.00")
	address := s.addAddress(token)

	var cart cartBody
	code, _ := s.do(http.MethodPost, "/cart", token, map[string]any{"product_id": p1.ID}, &cart)
	require.Equal(t, http.StatusOK, code)
	code, _ = s.do(http.MethodPost, "/cart", token, map[string]any{"product_id": p2.ID}, &cart)
	require.Equal(t, http.StatusOK, code)
	// Adding twice keeps a single membership.
	code, _ = s.do(http.MethodPost, "/cart", token, map[string]any{"product_id": p1.ID}, &cart)
	require.Equal(t, http.StatusOK, code)
	assert.ElementsMatch(t, []string{p1.ID, p2.ID}, productIDs(cart.Products))

	var order orderBody
	code, _ = s.do(http.MethodPost, "/order", token, map[string]any{"address_id": address.ID}, &order)
	require.Equal(t, http.StatusCreated, code)
	assert.Equal(t, "PLACED", order.Status)
	assert.Equal(t, address.ID, order.AddressID)
	assert.ElementsMatch(t, []string{p1.ID, p2.ID}, productIDs(order.Products))

	code, _ = s.do(http.MethodGet, "/cart", token, nil, &cart)
	require.Equal(t, http.StatusOK, code)
	assert.Empty(t, cart.Products)

	// Deleting a product keeps it in past orders.
	code, _ = s.do(http.MethodDelete, "/product/"+p1.ID, token, nil, nil)
	require.Equal(t, http.StatusNoContent, code)
	code, _ = s.do(http.MethodGet, "/product/"+p1.ID, token, nil, nil)
	assert.Equal(t, http.StatusNotFound, code)

	var orders []orderBody
	code, _ = s.do(http.MethodGet, "/order", token, nil, &orders)
	require.Equal(t, http.StatusOK, code)
	require.Len(t, orders, 1)
	assert.ElementsMatch(t, []string{p1.ID, p2.ID}, productIDs(orders[0].Products))

	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), `storefront_checkout_total{outcome="placed"} 1`))
}

func TestCheckout_EmptyCart(t *testing.T) {
	s := newTestServer(t)
	token := s.signup("ada@example.com").AccessToken
	address := s.addAddress(token)

	code, env := s.do(http.MethodPost, "/order", token, map[string]any{"address_id": address.ID}, nil)
	assert.Equal(t, http.StatusForbidden, code)
	assert.Equal(t, "CART_EMPTY", env.Error.Code)

	var orders []orderBody
	code, _ = s.do(http.MethodGet, "/order", token, nil, &orders)
	require.Equal(t, http.StatusOK, code)
	assert.Empty(t, orders)
}

func TestCheckout_ForeignAddressLeavesCart(t *testing.T) {
	s := newTestServer(t)
	ada := s.signup("ada@example.com").AccessToken
	grace := s.signup("grace@example.com").AccessToken

	product := s.addProduct(ada, "lamp", "19.99")
	graceAddress := s.addAddress(grace)

	code, _ := s.do(http.MethodPost, "/cart", ada, map[string]any{"product_id": product.ID}, nil)
	require.Equal(t, http.StatusOK, code)

	code, env := s.do(http.MethodPost, "/order", ada, map[string]any{"address_id": graceAddress.ID}, nil)
	assert.Equal(t, http.StatusForbidden, code)
	assert.Equal(t, "ADDRESS_OWNERSHIP_VIOLATION", env.Error.Code)

	var cart cartBody
	code, _ = s.do(http.MethodGet, "/cart", ada, nil, &cart)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, []string{product.ID}, productIDs(cart.Products))

	code, _ = s.do(http.MethodGet, "/address/"+graceAddress.ID, ada, nil, nil)
	assert.Equal(t, http.StatusForbidden, code)
}

func TestCart_MissingProduct(t *testing.T) {
	s := newTestServer(t)
	token := s.signup("ada@example.com").AccessToken

	code, env := s.do(http.MethodPost, "/cart", token, map[string]any{"product_id": "0190f6a0-0000-7000-8000-000000000000"}, nil)
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "PRODUCT_NOT_FOUND", env.Error.Code)

	// No cart was created.
	var cart cartBody
	code, _ = s.do(http.MethodGet, "/cart", token, nil, &cart)
	require.Equal(t, http.StatusOK, code)
	assert.Nil(t, cart.ID)
	assert.Empty(t, cart.Products)

	code, env = s.do(http.MethodDelete, "/cart", token, map[string]any{"product_id": "0190f6a0-0000-7000-8000-000000000000"}, nil)
	assert.Equal(t, http.StatusForbidden, code)
	assert.Equal(t, "CART_ACCESS_DENIED", env.Error.Code)
}

func TestCart_Remove(t *testing.T) {
	s := newTestServer(t)
	token := s.signup("ada@example.com").AccessToken
	p1 := s.addProduct(token, "lamp", "19.99")
	p2 := s.addProduct(token, "desk", "120.00")

	for _, p := range []productBody{p1, p2} {
		code, _ := s.do(http.MethodPost, "/cart", token, map[string]any{"product_id": p.ID}, nil)
		require.Equal(t, http.StatusOK, code)
	}

	var cart cartBody
	code, _ := s.do(http.MethodDelete, "/cart?product_id="+p1.ID, token, nil, &cart)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, []string{p2.ID}, productIDs(cart.Products))
}

func TestProduct_InvalidPrice(t *testing.T) {
	s := newTestServer(t)
	token := s.signup("ada@example.com").AccessToken

	code, env := s.do(http.MethodPost, "/product", token, map[string]any{
		"title": "lamp", "price": "-1", "images": []string{"https://img.example/lamp.png"},
	}, nil)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "INVALID_PRICE", env.Error.Code)
}

func TestHealth(t *testing.T) {
	s := newTestServer(t)

	code, _ := s.do(http.MethodGet, "/health", "", nil, nil)
	assert.Equal(t, http.StatusOK, code)
}
