package routes

import (
	"github.com/gofiber/fiber/v2"

	"sklyit/handlers"
	"sklyit/middleware"
)

// Registry bundles the handlers the router wires up.
type Registry struct {
	Auth      *handlers.AuthHandler
	Users     *handlers.UserHandler
	Search    *handlers.SearchHandler
	Clients   *handlers.ClientHandler
	Orders    *handlers.OrderHandler
	Customers *handlers.CustomerHandler
	Analytics *handlers.AnalyticsHandler
	Catalog   *handlers.CatalogHandler
	Posts     *handlers.PostHandler
}

// SetupRoutes defines all the routes for the application.
func SetupRoutes(app *fiber.App, r *Registry) {
	// --- Authentication Routes ---
	auth := app.Group("/bs/auth")
	auth.Post("/login", r.Auth.HandleLogin)
	auth.Post("/refresh", r.Auth.HandleRefresh)
	auth.Post("/forgot-password", r.Auth.HandleForgotPassword)
	auth.Post("/verify-reset-code", r.Auth.HandleVerifyResetCode)
	auth.Post("/reset-password", r.Auth.HandleResetPassword)

	// --- User Routes ---
	users := app.Group("/users")
	users.Post("/register", r.Users.HandleRegisterUser)
	users.Get("/me", middleware.Authenticate, r.Users.HandleGetMe)
	users.Put("/me", middleware.Authenticate, r.Users.HandleUpdateUser)
	users.Put("/me/fcm-token", middleware.Authenticate, r.Users.HandleUpdateFcmToken)
	users.Get("/:user_id", middleware.Authenticate, r.Users.HandleGetUser)

	// --- Search Routes ---
	search := app.Group("/search")
	search.Get("/businesses", middleware.Authenticate, r.Search.HandleSearchBusinesses)
	search.Get("/history", middleware.Authenticate, r.Search.HandleGetSearchHistory)
	search.Delete("/cache", middleware.Authenticate, r.Search.HandleClearSearchCache)

	// --- Business Client Routes ---
	clients := app.Group("/bs/clients", middleware.Authenticate)
	clients.Post("/", r.Clients.HandleCreateClient)
	clients.Get("/:business_id", r.Clients.HandleGetClient)
	clients.Put("/:business_id", r.Clients.HandleUpdateClient)
	clients.Delete("/:business_id", r.Clients.HandleDeleteClient)

	// --- Per-business Routes ---
	bs := app.Group("/bs/:business_id", middleware.Authenticate)

	orders := bs.Group("/orders")
	orders.Get("/", r.Orders.HandleGetOrders)
	orders.Post("/", r.Orders.HandleCreateOrder)
	orders.Get("/:oid", r.Orders.HandleGetOrder)
	orders.Put("/:oid", r.Orders.HandleUpdateOrder)
	orders.Delete("/:oid", r.Orders.HandleDeleteOrder)

	customers := bs.Group("/customers")
	customers.Get("/", r.Customers.HandleGetCustomers)
	customers.Post("/", r.Customers.HandleCreateCustomer)
	customers.Get("/:cust_id", r.Customers.HandleGetCustomer)
	customers.Delete("/:cust_id", r.Customers.HandleDeleteCustomer)

	analytics := bs.Group("/analytics")
	analytics.Get("/top-services", r.Analytics.HandleTopServices)
	analytics.Get("/top-services/revenue", r.Analytics.HandleTopServicesByRevenue)
	analytics.Get("/customers/spending", r.Analytics.HandleCustomersBySpending)
	analytics.Get("/customers/spending/range", r.Analytics.HandleTopCustomersByRange)
	analytics.Get("/customers/visits", r.Analytics.HandleCustomersByVisits)
	analytics.Get("/customers/weekly", r.Analytics.HandleWeeklyCustomers)
	analytics.Get("/customers/monthly", r.Analytics.HandleMonthlyCustomers)
	analytics.Get("/monthly-comparison", r.Analytics.HandleMonthlyComparison)
	analytics.Get("/daily", r.Analytics.HandleDailyPerformance)
	analytics.Get("/totals", r.Analytics.HandleBusinessTotals)
	analytics.Get("/retention", r.Analytics.HandleRetention)
	analytics.Get("/revenue", r.Analytics.HandleTotalRevenue)
	analytics.Get("/revenue/new-old", r.Analytics.HandleNewOldRevenue)
	analytics.Get("/customers/:cust_id/past-services", r.Analytics.HandlePastServices)
	analytics.Get("/insights", r.Analytics.HandleBusinessInsights)

	catalogServices := bs.Group("/services")
	catalogServices.Get("/", r.Catalog.HandleGetServices)
	catalogServices.Post("/", r.Catalog.HandleCreateService)
	catalogServices.Get("/:sid", r.Catalog.HandleGetService)
	catalogServices.Put("/:sid", r.Catalog.HandleUpdateService)
	catalogServices.Put("/:sid/flag", r.Catalog.HandleFlagService)
	catalogServices.Delete("/:sid", r.Catalog.HandleDeleteService)

	products := bs.Group("/products")
	products.Get("/", r.Catalog.HandleGetProducts)
	products.Post("/", r.Catalog.HandleCreateProduct)
	products.Put("/:pid", r.Catalog.HandleUpdateProduct)
	products.Put("/:pid/flag", r.Catalog.HandleFlagProduct)
	products.Delete("/:pid", r.Catalog.HandleDeleteProduct)

	posts := bs.Group("/posts")
	posts.Get("/", r.Posts.HandleGetPosts)
	posts.Post("/", r.Posts.HandleCreatePost)
	posts.Get("/:id", r.Posts.HandleGetPost)
	posts.Put("/:id", r.Posts.HandleUpdatePost)
	posts.Put("/:id/flag", r.Posts.HandleFlagPost)
	posts.Put("/:id/like", r.Posts.HandleLikePost)
	posts.Put("/:id/unlike", r.Posts.HandleUnlikePost)
	posts.Put("/:id/comment", r.Posts.HandleCommentPost)
	posts.Put("/:id/uncomment", r.Posts.HandleUncommentPost)
	posts.Delete("/:id", r.Posts.HandleDeletePost)
}
