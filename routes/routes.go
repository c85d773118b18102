package routes

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"marketplace/controllers"
	"marketplace/middleware"
)

// Dependencies carries everything the HTTP layer needs. Controllers are
// injected so the routes stay thin adapters.
type Dependencies struct {
	Auth     *middleware.Auth
	Users    *controllers.UserController
	Carts    *controllers.CartController
	Orders   *controllers.OrderController
	Products *controllers.ProductController
	Sellers  *controllers.SellerController
	Log      *zap.Logger
}

func Register(r *gin.Engine, deps *Dependencies) {
	h := &handlers{deps: deps}

	api := r.Group("/api")
	{
		api.POST("/register", h.register)
		api.POST("/login", h.login)
		api.POST("/logout", deps.Auth.RevokeToken)

		protected := api.Group("/")
		protected.Use(deps.Auth.Middleware())
		{
			protected.GET("/products", h.listProducts)

			protected.GET("/cart", h.getCart)
			protected.PUT("/cart/add-product", h.addProductToCart)
			protected.PUT("/cart/remove-product", h.removeProductFromCart)

			protected.POST("/order", h.createOrder)
			protected.GET("/order/:id", h.getOrder)

			admin := protected.Group("/admin")
			admin.Use(middleware.RequireRole("admin"))
			{
				admin.POST("/sellers", h.createSeller)
				admin.GET("/sellers", h.listSellers)
				admin.GET("/sellers/:id", h.getSeller)
				admin.PUT("/sellers/:id", h.updateSeller)
				admin.DELETE("/sellers/:id", h.deleteSeller)

				admin.POST("/sellers/:id/products", h.createProduct)
				admin.GET("/sellers/:id/products/:productId", h.getProduct)
				admin.PUT("/sellers/:id/products/:productId", h.updateProduct)
				admin.DELETE("/sellers/:id/products/:productId", h.deleteProduct)
			}
		}
	}
}

type handlers struct {
	deps *Dependencies
}
