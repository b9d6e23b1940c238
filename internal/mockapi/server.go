package mockapi

import (
	"log"
	"net/http"
	"time"

	"backoffice/internal/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Server is an in-memory stand-in for the production backend. It exists for
// local development and adapter tests; state resets on every start.
type Server struct {
	st     *Store
	jwtKey []byte
}

func NewServer(env config.Env) *Server {
	return &Server{
		st:     NewStore(),
		jwtKey: []byte(env.MockJWTKey),
	}
}

// Router assembles the gin engine with the full admin API surface.
func (s *Server) Router(env config.Env) *gin.Engine {
	if env.GinMode != "" {
		gin.SetMode(env.GinMode)
	}

	r := gin.New()
	r.Use(requestID(), requestLogger(), gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization", "Accept", "Origin", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.NoRoute(func(c *gin.Context) {
		respondErr(c, http.StatusNotFound, "Route not found")
	})

	api := r.Group("/api")
	{
		admin := api.Group("/admin")
		admin.POST("/login", s.login)

		adminAuthed := admin.Group("")
		adminAuthed.Use(requireAuth(s.jwtKey))
		{
			adminAuthed.GET("/profile", s.profile)
			adminAuthed.PUT("/profile", s.updateProfile)
			adminAuthed.POST("/change-password", s.changePassword)
			adminAuthed.GET("/dashboard", s.dashboard)
			adminAuthed.GET("/reports/sales", s.salesReport)
			adminAuthed.GET("/roles", s.roles)

			customers := adminAuthed.Group("/customers")
			customers.GET("", s.listCustomers)
			customers.GET("/stats", s.customerStats)
			customers.GET("/registrations/pending", s.pendingRegistrations)
			customers.GET("/:id", s.getCustomer)
			customers.PATCH("/:id", s.updateCustomer)
			customers.DELETE("/:id", s.deleteCustomer)
			customers.POST("/:id/approve", s.approveRegistration)
			customers.POST("/:id/reject", s.rejectRegistration)

			admins := adminAuthed.Group("/admins")
			admins.Use(s.requireSuperAdmin)
			admins.GET("", s.listAdmins)
			admins.GET("/:id", s.getAdmin)
			admins.POST("", s.createAdmin)
			admins.PUT("/:id", s.updateAdmin)
			admins.DELETE("/:id", s.deleteAdmin)
		}

		orders := api.Group("/orders")
		orders.Use(requireAuth(s.jwtKey))
		orders.GET("/admin/all", s.listOrders)
		orders.GET("/admin/stats", s.orderStats)
		orders.GET("/:id", s.getOrder)
		orders.PATCH("/:id/process", s.processOrder)

		payments := api.Group("/payments")
		payments.Use(requireAuth(s.jwtKey))
		payments.GET("/admin/all", s.listPayments)
		payments.GET("/admin/stats", s.paymentStats)
		payments.GET("/:id", s.getPayment)
		payments.POST("/admin/:id/confirm-paid", s.confirmPaid)
		payments.POST("/admin/:id/refund", s.refundPayment)
		payments.PATCH("/admin/:id/status", s.updatePaymentStatus)

		wallets := api.Group("/wallets/admin")
		wallets.Use(requireAuth(s.jwtKey))
		wallets.GET("/all", s.listWallets)
		wallets.GET("/stats", s.walletStats)
		wallets.GET("/:id", s.getWallet)
		wallets.POST("/:id/add-funds", s.addFunds)
		wallets.POST("/:id/deduct-funds", s.deductFunds)
		wallets.PATCH("/:id/freeze", s.freezeWallet)

		products := api.Group("/products")
		products.Use(requireAuth(s.jwtKey))
		products.GET("", s.listProducts)
		products.GET("/meta/stats", s.productStats)
		products.GET("/:id", s.getProduct)
		products.POST("", s.createProduct)
		products.PUT("/:id", s.updateProduct)
		products.DELETE("/:id", s.deleteProduct)
		products.PATCH("/:id/stock", s.updateStock)

		settings := api.Group("/settings")
		settings.Use(requireAuth(s.jwtKey))
		settings.GET("", s.listSettings)
		settings.GET("/paynow", s.paynowConfig)
		settings.PUT("/paynow/config", s.updatePaynowConfig)
		settings.POST("/paynow/test", s.testPaynow)
		settings.GET("/:key", s.getSetting)
		settings.POST("", s.createSetting)
		settings.PUT("/:key", s.updateSetting)
		settings.DELETE("/:key", s.deleteSetting)
	}

	uploads := r.Group("/uploads")
	uploads.Use(requireAuth(s.jwtKey))
	uploads.GET("/*path", s.serveUpload)

	return r
}

// serveUpload answers document fetches with a placeholder body. Real files
// never reach the mock.
func (s *Server) serveUpload(c *gin.Context) {
	c.Data(http.StatusOK, "application/octet-stream", []byte("mock-document:"+c.Param("path")))
}
