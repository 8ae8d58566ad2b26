package router

import (
	"github.com/arpandhara/mini-banking-system/internal/bank"
	"github.com/arpandhara/mini-banking-system/internal/config"
	"github.com/arpandhara/mini-banking-system/internal/handler"
	"github.com/arpandhara/mini-banking-system/internal/middleware"
	"github.com/arpandhara/mini-banking-system/internal/sms"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRouter wires the gin engine, middleware chain, and API routes.
func SetupRouter(cfg *config.Config, db *gorm.DB, smsSender sms.Sender) *gin.Engine {
	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	svc := bank.New(db, cfg.Security.BcryptCost)

	api := r.Group("/api")

	jwtSecret := cfg.JWT.Secret

	authHandler := handler.NewAuthHandler(svc, smsSender, jwtSecret, cfg.JWT.ExpireHours)
	api.POST("/signup", authHandler.SignUp)
	api.POST("/login", authHandler.Login)
	api.POST("/forgotPass", authHandler.ForgotPass)

	protected := api.Group("")
	protected.Use(
		middleware.AuthMiddleware(jwtSecret, db),
		middleware.AuditMiddleware(db),
	)

	protected.POST("/logout", authHandler.Logout)

	paymentHandler := handler.NewPaymentHandler(svc)
	protected.POST("/process-payment", paymentHandler.ProcessPayment)

	dashboardHandler := handler.NewDashboardHandler(svc, cfg.Bank.CardPrefix)
	protected.GET("/dashboard-data", dashboardHandler.DashboardData)
	protected.GET("/transactions-data", dashboardHandler.TransactionsData)

	savingsHandler := handler.NewSavingsHandler(svc)
	protected.GET("/savings", savingsHandler.ListSavings)
	protected.POST("/savings", savingsHandler.CreateSaving)
	protected.POST("/savingsDelete", savingsHandler.DeleteSaving)

	peopleHandler := handler.NewPeopleHandler(svc, cfg.Bank.CardPrefix)
	protected.GET("/people", peopleHandler.ListPeople)
	protected.POST("/people", peopleHandler.CreatePerson)
	protected.PUT("/people/:id", peopleHandler.UpdatePerson)
	protected.DELETE("/people/:id", peopleHandler.DeletePerson)

	profileHandler := handler.NewProfileHandler(svc)
	protected.GET("/profile-data", profileHandler.ProfileData)
	protected.POST("/change-password", profileHandler.ChangePassword)

	exportHandler := handler.NewExportHandler(db)
	protected.GET("/transactions/export", exportHandler.ExportStatement)

	return r
}
