package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/ClinicaExecutivas/studio-scheduler/internal/audit"
	"github.com/ClinicaExecutivas/studio-scheduler/internal/config"
	"github.com/ClinicaExecutivas/studio-scheduler/internal/handlers"
	infraRepo "github.com/ClinicaExecutivas/studio-scheduler/internal/infra/repository"
	"github.com/ClinicaExecutivas/studio-scheduler/internal/middleware"
	"github.com/ClinicaExecutivas/studio-scheduler/internal/upload"
	ucAppointment "github.com/ClinicaExecutivas/studio-scheduler/internal/usecase/appointment"
	ucReferral "github.com/ClinicaExecutivas/studio-scheduler/internal/usecase/referral"
	ucStats "github.com/ClinicaExecutivas/studio-scheduler/internal/usecase/stats"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	rdb *redis.Client,
	cfg *config.Config,
	logger zerolog.Logger,
) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)
	referralRepo := infraRepo.NewReferralGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger, logger)

	uploader := upload.NewUploader(cfg)

	publicLimiter := middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)

	// ======================================================
	// USE CASES: REFERRALS
	// ======================================================
	issueCodeUC := ucReferral.NewIssueCode(referralRepo)
	creditUC := ucReferral.NewCreditReferral(referralRepo)
	redeemUC := ucReferral.NewRedeemDiscount(referralRepo, auditDispatcher)
	checkCodeUC := ucReferral.NewCheckCode(referralRepo)
	listReferralsUC := ucReferral.NewListReferrals(referralRepo)

	// ======================================================
	// USE CASES: APPOINTMENTS
	// ======================================================
	createAppointmentUC := ucAppointment.NewCreateAppointment(
		appointmentRepo,
		issueCodeUC,
		creditUC,
		auditDispatcher,
	)
	confirmAppointmentUC := ucAppointment.NewConfirmAppointment(
		appointmentRepo,
		issueCodeUC,
		auditDispatcher,
	)
	cancelAppointmentUC := ucAppointment.NewCancelAppointment(appointmentRepo, auditDispatcher)
	completeAppointmentUC := ucAppointment.NewCompleteAppointment(appointmentRepo, auditDispatcher)
	updateAppointmentUC := ucAppointment.NewUpdateAppointment(appointmentRepo, auditDispatcher)
	deleteAppointmentUC := ucAppointment.NewDeleteAppointment(appointmentRepo, auditDispatcher)
	listAppointmentsUC := ucAppointment.NewListAppointments(appointmentRepo)
	getAppointmentUC := ucAppointment.NewGetAppointment(appointmentRepo)

	// ======================================================
	// USE CASES: STATS
	// ======================================================
	monthlyStatsUC := ucStats.NewMonthlyStats(appointmentRepo)
	clientRankingUC := ucStats.NewClientRanking(appointmentRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, rdb, cfg)

	appointmentHandler := handlers.NewAppointmentHandler(
		createAppointmentUC,
		confirmAppointmentUC,
		cancelAppointmentUC,
		completeAppointmentUC,
		updateAppointmentUC,
		deleteAppointmentUC,
		listAppointmentsUC,
		getAppointmentUC,
	)

	referralHandler := handlers.NewReferralHandler(
		issueCodeUC,
		redeemUC,
		checkCodeUC,
		listReferralsUC,
	)

	statsHandler := handlers.NewStatsHandler(monthlyStatsUC, clientRankingUC, listAppointmentsUC)
	massagistaHandler := handlers.NewMassagistaHandler(db, auditDispatcher)
	contactHandler := handlers.NewContactHandler(db)
	uploadHandler := handlers.NewUploadHandler(uploader)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/login", authHandler.Login)
		api.POST("/logout", authHandler.Logout)

		// ------------------------------
		// API PÚBLICA
		// ------------------------------
		api.POST("/contact", publicLimiter.Middleware(), contactHandler.Create)
		api.POST("/appointments", publicLimiter.Middleware(), appointmentHandler.Create)

		api.GET("/massagistas", massagistaHandler.List)
		api.GET("/massagistas/:id", massagistaHandler.Get)

		api.GET("/referrals/check/:code", referralHandler.Check)
		api.POST("/referrals/generate", publicLimiter.Middleware(), referralHandler.Generate)

		// ------------------------------
		// API PRIVADA
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg, rdb))
		{
			secured.GET("/check-auth", authHandler.CheckAuth)

			secured.GET("/appointments", appointmentHandler.List)
			secured.GET("/appointments/:id", appointmentHandler.Get)
			secured.PUT("/appointments/:id", appointmentHandler.Update)
			secured.DELETE("/appointments/:id", appointmentHandler.Delete)
			secured.PUT("/appointments/:id/confirm", appointmentHandler.Confirm)
			secured.PUT("/appointments/:id/cancel", appointmentHandler.Cancel)
			secured.PUT("/appointments/:id/complete", appointmentHandler.Complete)

			secured.GET("/referrals", referralHandler.List)
			secured.PUT("/referrals/use-discount/:id", referralHandler.UseDiscount)

			secured.GET("/stats/monthly", statsHandler.Monthly)
			secured.GET("/stats/client-ranking", statsHandler.ClientRanking)
			secured.GET("/stats/client-history", statsHandler.ClientHistory)

			secured.POST("/massagistas", massagistaHandler.Create)
			secured.PUT("/massagistas/:id", massagistaHandler.Update)
			secured.DELETE("/massagistas/:id", massagistaHandler.Delete)

			secured.GET("/contact", contactHandler.List)
			secured.GET("/contact/:id", contactHandler.Get)

			secured.POST("/upload-image", uploadHandler.UploadImage)
		}
	}
}
