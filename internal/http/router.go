package api

import (
	"log"
	stdhttp "net/http"

	intconfig "travelagency/internal/config"
	h "travelagency/internal/http/handlers"
	"travelagency/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

func NewRouter(env intconfig.Env) *gin.Engine {
	h.InitAuth(env)

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), middleware.CORS())

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.OPTIONS("/*path", func(c *gin.Context) { c.AbortWithStatus(stdhttp.StatusNoContent) })

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/db-check", h.DBCheck)

		// Auth
		auth := api.Group("/auth")
		auth.POST("/login", h.Login)
		auth.POST("/logout", h.Logout)
		auth.GET("/session", h.Session)
		auth.POST("/register", h.Register)

		// Public website content reads
		api.GET("/abouts", h.GetAbout)
		api.GET("/brand", h.GetBrand)
		api.GET("/counters", h.GetCounters)
		api.GET("/faqs", h.GetFAQs)
		api.GET("/galleries", h.GetGallery)
		api.GET("/testimonials", h.GetTestimonials)
		// form-POST endpoints the public site uses to fetch payloads
		api.POST("/abouts/get-about", h.GetAbout)
		api.POST("/brand/get-brand", h.GetBrand)
		api.POST("/counters/get-counter", h.GetCounters)
		api.POST("/faqs/get-faq", h.GetFAQs)
		api.POST("/galleries/get-gallery", h.GetGallery)
		api.POST("/testimonials/get-testimonial", h.GetTestimonials)

		// Everything below requires an authenticated session or bearer token.
		admin := api.Group("")
		admin.Use(authRequired(env))
		{
			// Clients
			clients := admin.Group("/clients")
			clients.GET("", h.GetClients)
			clients.GET("/:id", h.GetClientByID)
			clients.POST("", h.CreateClient)
			clients.PUT("/:id", h.UpdateClient)
			clients.DELETE("/:id", h.DeleteClient)

			// Vehicles
			vehicles := admin.Group("/vehicles")
			vehicles.GET("", h.GetVehicles)
			vehicles.GET("/:id", h.GetVehicleByID)
			vehicles.POST("", h.CreateVehicle)
			vehicles.PUT("/:id", h.UpdateVehicle)
			vehicles.DELETE("/:id", h.DeleteVehicle)

			// Trips
			trips := admin.Group("/trips")
			trips.GET("", h.GetTrips)
			trips.GET("/:id", h.GetTripByID)
			trips.POST("", h.CreateTrip)
			trips.PUT("/:id", h.UpdateTrip)
			trips.DELETE("/:id", h.DeleteTrip)
			trips.POST("/:id/payments", h.AddTripPayment)

			// Ticket bookings
			tickets := admin.Group("/ticket-bookings")
			tickets.GET("", h.GetTicketBookings)
			tickets.GET("/:id", h.GetTicketBookingByID)
			tickets.POST("", h.CreateTicketBooking)
			tickets.PUT("/:id", h.UpdateTicketBooking)
			tickets.PUT("/:id/refund", h.RefundTicketBooking)
			tickets.DELETE("/:id", h.DeleteTicketBooking)
			tickets.GET("/:id/invoice", h.GetTicketInvoicePDF)

			// Funds ledger
			funds := admin.Group("/funds")
			funds.GET("", h.GetFunds)
			funds.GET("/pools", h.GetFundPools)
			funds.GET("/:id", h.GetFundByID)
			funds.POST("/allocate", h.AllocateFunds)
			funds.POST("/:id/use", h.UseFunds)
			funds.POST("/:id/reverse", h.ReverseFunds)

			// Payments
			payments := admin.Group("/payments")
			payments.GET("", h.GetPayments)
			payments.GET("/:id", h.GetPaymentByID)
			payments.POST("", h.CreatePayment)

			// Quotations
			quotations := admin.Group("/quotations")
			quotations.GET("", h.GetQuotations)
			quotations.GET("/:id", h.GetQuotationByID)
			quotations.POST("", h.CreateQuotation)
			quotations.PUT("/:id", h.UpdateQuotation)
			quotations.PUT("/:id/send", h.SendQuotation)
			quotations.PUT("/:id/accept", h.AcceptQuotation)
			quotations.PUT("/:id/cancel", h.CancelQuotation)
			quotations.DELETE("/:id", h.DeleteQuotation)
			quotations.GET("/:id/pdf", h.GetQuotationPDF)

			// Website content writes
			mountContent(admin)

			// Reports, admin eyes only
			reports := admin.Group("/reports")
			reports.Use(middleware.RequireRoles("admin", "manager"))
			reports.GET("/funds", h.GetFundsReport)
			reports.GET("/outstanding", h.GetOutstandingReport)
		}
	}

	return r
}

func authRequired(env intconfig.Env) gin.HandlerFunc {
	return func(c *gin.Context) {
		middleware.Auth(h.AuthSvc(c), env.CookieName)(c)
	}
}

// mountContent wires the admin content writes, including the dashboard's
// form-POST aliases (new-about, new-counter, ...).
func mountContent(g *gin.RouterGroup) {
	g.POST("/abouts", h.SaveAbout)
	g.POST("/abouts/new-about", h.SaveAbout)

	g.POST("/brand", h.SaveBrand)
	g.POST("/brand/new-brand", h.SaveBrand)

	g.POST("/counters", h.CreateCounter)
	g.POST("/counters/new-counter", h.CreateCounter)
	g.PUT("/counters/:id", h.UpdateCounter)
	g.DELETE("/counters/:id", h.DeleteCounter)

	g.POST("/faqs", h.CreateFAQ)
	g.POST("/faqs/new-faq", h.CreateFAQ)
	g.PUT("/faqs/:id", h.UpdateFAQ)
	g.DELETE("/faqs/:id", h.DeleteFAQ)

	g.POST("/galleries", h.CreateGalleryItem)
	g.POST("/galleries/new-gallery", h.CreateGalleryItem)
	g.PUT("/galleries/:id", h.UpdateGalleryItem)
	g.DELETE("/galleries/:id", h.DeleteGalleryItem)

	g.POST("/testimonials", h.CreateTestimonial)
	g.POST("/testimonials/new-testimonial", h.CreateTestimonial)
	g.PUT("/testimonials/:id", h.UpdateTestimonial)
	g.DELETE("/testimonials/:id", h.DeleteTestimonial)
}
