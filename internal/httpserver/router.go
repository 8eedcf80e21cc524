package httpserver

import (
	"github.com/labstack/echo/v4"

	"github.com/xablau3666/loja/internal/handlers"
	authmw "github.com/xablau3666/loja/internal/middleware/auth"
)

type Deps struct {
	AuthHandler    *handlers.AuthHandler
	ProductHandler *handlers.ProductHandler
	CartHandler    *handlers.CartHandler
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(200) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(200) })

	e.GET("/login", d.AuthHandler.LoginForm)
	e.POST("/login", d.AuthHandler.Login)
	e.GET("/register", d.AuthHandler.RegisterForm)
	e.POST("/register", d.AuthHandler.Register)
	e.GET("/logout", d.AuthHandler.Logout)

	// Catalog reads need a logged-in session.
	e.GET("/", d.ProductHandler.Index, authmw.RequireLogin)
	e.GET("/produto/:id", d.ProductHandler.Show, authmw.RequireLogin)
	e.GET("/categoria/:name", d.ProductHandler.Category, authmw.RequireLogin)
	e.GET("/buscar", d.ProductHandler.SearchProducts, authmw.RequireLogin)

	// Catalog writes need an admin session.
	e.GET("/adicionar", d.ProductHandler.CreateForm, authmw.AdminOnly)
	e.POST("/adicionar", d.ProductHandler.Create, authmw.AdminOnly)
	e.GET("/editar/:id", d.ProductHandler.EditForm, authmw.AdminOnly)
	e.POST("/editar/:id", d.ProductHandler.Update, authmw.AdminOnly)
	e.GET("/remover/:id", d.ProductHandler.Delete, authmw.AdminOnly)

	// Cart and checkout are open to anonymous visitors. Inherited
	// behavior; see DESIGN.md.
	e.GET("/carrinho", d.CartHandler.View)
	e.GET("/adicionar_carrinho/:id", d.CartHandler.Add)
	e.GET("/remover_carrinho/:id", d.CartHandler.Remove)
	e.GET("/checkout", d.CartHandler.Checkout)
}
