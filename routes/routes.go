package routes

import (
	"food-ordering-api/auth"
	"food-ordering-api/handlers"
	"food-ordering-api/middleware"
	"food-ordering-api/service"
	"food-ordering-api/telemetry"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, h *handlers.Handler, tokens *auth.Tokens, metrics *telemetry.Metrics) {
	r.GET("/health", h.Health)
	if metrics != nil {
		r.GET("/metrics", gin.WrapH(metrics.Handler()))
	}

	// ── Public routes ──────────────────────────────────────────────
	public := r.Group("/api")
	{
		public.POST("/auth/register", h.Register)
		public.POST("/auth/login", h.Login)

		public.GET("/food/items", h.ListFoodItems)
		public.GET("/food/categories", h.ListCategories)

		public.POST("/coupons/validate", h.ValidateCoupon)
		public.GET("/coupons", h.ListCoupons)

		// State machine info (great for docs/Postman)
		public.GET("/state-machine", h.GetStateMachineInfo)
	}

	// ── Authenticated routes ───────────────────────────────────────
	authed := r.Group("/api")
	authed.Use(middleware.AuthRequired(tokens))
	{
		authed.GET("/profile", h.GetProfile)
		authed.PATCH("/profile", h.UpdateProfile)

		authed.POST("/coupons/create", middleware.Authorize(service.OpCreateCoupon), h.CreateCoupon)
	}

	// ── Order routes ───────────────────────────────────────────────
	orders := r.Group("/api/orders")
	orders.Use(middleware.AuthRequired(tokens))
	{
		orders.POST("/create", middleware.Authorize(service.OpCreateOrder), h.CreateOrder)
		orders.GET("/my-orders", middleware.Authorize(service.OpListMyOrders), h.GetMyOrders)
		orders.GET("/:id", h.GetOrder)
		orders.GET("/:id/history", h.GetOrderHistory)
		orders.POST("/:id/review", h.AddReview)
	}

	// ── Admin routes ───────────────────────────────────────────────
	// Status updates are also open to delivery persons, so each route
	// carries its own gate instead of a group-wide admin check.
	admin := r.Group("/api/admin")
	admin.Use(middleware.AuthRequired(tokens))
	{
		admin.GET("/orders", middleware.Authorize(service.OpListAllOrders), h.AdminListOrders)
		admin.PATCH("/orders/:id/status", middleware.Authorize(service.OpSetOrderStatus), h.UpdateOrderStatus)
		admin.PATCH("/orders/:id/assign-delivery", middleware.Authorize(service.OpAssignDelivery), h.AssignDelivery)
		admin.GET("/delivery-persons", middleware.Authorize(service.OpListDeliveryPersons), h.ListDeliveryPersons)
		admin.GET("/stats", middleware.Authorize(service.OpAdminStats), h.GetStats)
	}

	// ── Delivery person routes ─────────────────────────────────────
	delivery := r.Group("/api/delivery")
	delivery.Use(middleware.AuthRequired(tokens))
	{
		delivery.GET("/my-orders", middleware.Authorize(service.OpListDeliveryOrders), h.GetDeliveryOrders)
		delivery.PATCH("/availability", middleware.Authorize(service.OpSetAvailability), h.SetAvailability)
	}
}
