package handlers_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/xablau3666/loja/internal/handlers"
	"github.com/xablau3666/loja/internal/httpserver"
	"github.com/xablau3666/loja/internal/models"
	"github.com/xablau3666/loja/internal/money"
	"github.com/xablau3666/loja/internal/repo"
	"github.com/xablau3666/loja/internal/search"
	"github.com/xablau3666/loja/internal/service"
	websession "github.com/xablau3666/loja/internal/session"
)

const testAdminSecret = "2024"

// testEnv drives the full router, session middleware included, and
// carries cookies between requests like a browser would.
type testEnv struct {
	t       *testing.T
	e       *echo.Echo
	repo    *repo.GormRepo
	cookies map[string]*http.Cookie
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Product{}))

	store := repo.New(db)
	catalog := &service.CatalogService{Repo: store}

	deps := httpserver.Deps{
		AuthHandler: &handlers.AuthHandler{
			Service: &service.AuthService{Repo: store, AdminSecret: testAdminSecret},
		},
		ProductHandler: &handlers.ProductHandler{
			Catalog: catalog,
			Search:  &search.Service{Index: search.DefaultIndex, Repo: store},
		},
		CartHandler: &handlers.CartHandler{Catalog: catalog},
	}

	e := echo.New()
	e.Use(websession.Middleware([]byte("test-secret")))
	httpserver.Register(e, &deps)

	return &testEnv{t: t, e: e, repo: store, cookies: map[string]*http.Cookie{}}
}

func (env *testEnv) do(method, target string, form url.Values) *httptest.ResponseRecorder {
	env.t.Helper()

	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}
	req := httptest.NewRequest(method, target, body)
	if form != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	}
	for _, ck := range env.cookies {
		req.AddCookie(ck)
	}

	rec := httptest.NewRecorder()
	env.e.ServeHTTP(rec, req)

	for _, ck := range rec.Result().Cookies() {
		env.cookies[ck.Name] = ck
	}
	return rec
}

func (env *testEnv) decode(rec *httptest.ResponseRecorder, out interface{}) {
	env.t.Helper()
	require.NoError(env.t, json.Unmarshal(rec.Body.Bytes(), out))
}

func (env *testEnv) register(name, email, senha string, wantAdmin bool, adminSenha string) {
	env.t.Helper()

	form := url.Values{"nome": {name}, "email": {email}, "senha": {senha}}
	if wantAdmin {
		form.Set("is_admin", "on")
		form.Set("admin_senha", adminSenha)
	}
	rec := env.do(http.MethodPost, "/register", form)
	require.Equal(env.t, http.StatusFound, rec.Code)
	require.Equal(env.t, "/login", rec.Header().Get(echo.HeaderLocation))
}

func (env *testEnv) login(email, senha string) *httptest.ResponseRecorder {
	env.t.Helper()
	return env.do(http.MethodPost, "/login", url.Values{"email": {email}, "senha": {senha}})
}

func (env *testEnv) seedProduct(t *testing.T, name, price, category string) *models.Product {
	t.Helper()

	m, err := money.Parse(price)
	require.NoError(t, err)

	p := &models.Product{Name: name, Price: m, Description: name + " desc", Image: name + ".png", Category: category}
	require.NoError(t, env.repo.CreateProduct(context.Background(), p))
	return p
}
