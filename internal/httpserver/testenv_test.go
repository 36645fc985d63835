package httpserver

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/Skotchmaster/shop_admin/internal/db"
	"github.com/Skotchmaster/shop_admin/internal/events"
	"github.com/Skotchmaster/shop_admin/internal/hash"
	"github.com/Skotchmaster/shop_admin/internal/models"
	"github.com/Skotchmaster/shop_admin/internal/repo"
	"github.com/Skotchmaster/shop_admin/internal/service"
	"github.com/Skotchmaster/shop_admin/internal/tokens"
	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type testEnv struct {
	T      *testing.T
	E      *echo.Echo
	DB     *gorm.DB
	Tokens *tokens.Service

	A *AuthHandler
	U *UserHandler
	P *ProductHandler
	O *OrderHandler
}

func newTestEnv(t *testing.T) *testEnv {
	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.Migrate(gdb))

	tokenSvc, err := tokens.NewService([]byte("test_secret"), "HS256")
	require.NoError(t, err)

	producer := events.NewProducer("")

	users := &repo.UserRepo{DB: gdb}
	products := &repo.ProductRepo{DB: gdb}
	orders := &repo.OrderRepo{DB: gdb}

	return &testEnv{
		T:      t,
		E:      echo.New(),
		DB:     gdb,
		Tokens: tokenSvc,
		A: &AuthHandler{
			Svc:      &service.AuthService{Users: users, Tokens: tokenSvc},
			Producer: producer,
		},
		U: &UserHandler{
			Svc:      &service.UserService{Users: users},
			Producer: producer,
		},
		P: &ProductHandler{
			Svc:      &service.ProductService{Products: products},
			Producer: producer,
			Index:    "products",
		},
		O: &OrderHandler{
			Svc:      &service.OrderService{Orders: orders},
			Producer: producer,
		},
	}
}

func (env *testEnv) doJSONRequest(method, path string, body interface{}) (*httptest.ResponseRecorder, echo.Context) {
	var buf bytes.Buffer
	if body != nil {
		require.NoError(env.T, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := env.E.NewContext(req, rec)
	return rec, c
}

func (env *testEnv) seedUser(name, login, password, role string) models.User {
	passwordHash, err := hash.HashPassword(password)
	require.NoError(env.T, err)

	user := models.User{
		Name:         name,
		PasswordHash: passwordHash,
		Role:         role,
	}
	if login != "" {
		user.Login = &login
	}
	require.NoError(env.T, env.DB.Create(&user).Error)
	return user
}

func (env *testEnv) seedProduct(name, description string) models.Product {
	prod := models.Product{Name: name, Description: description}
	require.NoError(env.T, env.DB.Create(&prod).Error)
	return prod
}

func setID(c echo.Context, id uint) {
	c.SetParamNames("id")
	c.SetParamValues(strconv.FormatUint(uint64(id), 10))
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), v))
}
