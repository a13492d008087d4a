// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"retailpos/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	ProductHandler *handler.ProductHandler
	CartHandler    *handler.CartHandler
	ImportHandler  *handler.ImportHandler
	StoreHandler   *handler.StoreHandler
	VatHandler     *handler.VatHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	productHandler *handler.ProductHandler
	cartHandler    *handler.CartHandler
	importHandler  *handler.ImportHandler
	storeHandler   *handler.StoreHandler
	vatHandler     *handler.VatHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		productHandler: params.ProductHandler,
		cartHandler:    params.CartHandler,
		importHandler:  params.ImportHandler,
		storeHandler:   params.StoreHandler,
		vatHandler:     params.VatHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Catalog routes
	productGroup := e.Group("/products")
	{
		productGroup.POST("", r.productHandler.CreateProduct)
		productGroup.GET("", r.productHandler.ListProducts)
		productGroup.GET("/:id", r.productHandler.GetProduct)
		productGroup.PATCH("/:id", r.productHandler.UpdateProduct)
		productGroup.DELETE("/:id", r.productHandler.DeleteProduct)
		productGroup.POST("/:id/stock", r.productHandler.AddStock)
		productGroup.POST("/:id/categories/:categoryID", r.productHandler.AssignCategory)
		productGroup.DELETE("/:id/categories/:categoryID", r.productHandler.UnassignCategory)
		productGroup.POST("/:id/photo", r.productHandler.UploadPhoto)
		productGroup.DELETE("/:id/photo", r.productHandler.DeletePhoto)
		productGroup.GET("/:id/predictions", r.importHandler.PredictionHistory)
	}

	categoryGroup := e.Group("/categories")
	{
		categoryGroup.POST("", r.productHandler.CreateCategory)
		categoryGroup.GET("", r.productHandler.ListCategories)
	}

	e.GET("/photos", r.productHandler.ListPhotos)

	// Cart and checkout routes
	cartGroup := e.Group("/carts")
	{
		cartGroup.POST("", r.cartHandler.CreateCart)
		cartGroup.GET("/:id", r.cartHandler.GetCart)
		cartGroup.POST("/:id/lines", r.cartHandler.AddLine)
		cartGroup.PATCH("/:id/lines/:productID", r.cartHandler.UpdateLine)
		cartGroup.DELETE("/:id/lines/:productID", r.cartHandler.RemoveLine)
		cartGroup.POST("/:id/checkout", r.cartHandler.Checkout)
	}

	purchaseGroup := e.Group("/purchases")
	{
		purchaseGroup.GET("", r.cartHandler.ListPurchases)
		purchaseGroup.GET("/:id", r.cartHandler.GetPurchase)
	}

	// Spreadsheet import routes
	importGroup := e.Group("/imports")
	{
		importGroup.POST("/workbook", r.importHandler.ImportWorkbook)
		importGroup.POST("/rows", r.importHandler.ImportRows)
	}

	// Store and staff routes
	storeGroup := e.Group("/stores")
	{
		storeGroup.POST("", r.storeHandler.CreateStore)
		storeGroup.GET("", r.storeHandler.ListStores)
		storeGroup.GET("/:id", r.storeHandler.GetStore)
		storeGroup.DELETE("/:id", r.storeHandler.DeleteStore)
		storeGroup.POST("/:id/users/:userID", r.storeHandler.AssignUser)
		storeGroup.DELETE("/:id/users/:userID", r.storeHandler.RemoveUser)
		storeGroup.POST("/:id/products", r.storeHandler.AddProduct)
		storeGroup.PATCH("/:id/products/:productID", r.storeHandler.UpdateProductQuantity)
		storeGroup.DELETE("/:id/products/:productID", r.storeHandler.RemoveProduct)
	}

	userGroup := e.Group("/users")
	{
		userGroup.POST("", r.storeHandler.CreateUser)
		userGroup.GET("", r.storeHandler.ListUsers)
	}

	// VAT routes
	vatGroup := e.Group("/vat-rates")
	{
		vatGroup.POST("", r.vatHandler.CreateRate)
		vatGroup.GET("", r.vatHandler.ListRates)
		vatGroup.GET("/applicable", r.vatHandler.ApplicableRate)
	}
}
