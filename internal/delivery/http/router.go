package http

import (
	"github.com/gin-gonic/gin"
	"github.com/kindredapp/kindred-backend/internal/delivery/http/handler"
	"github.com/kindredapp/kindred-backend/internal/delivery/http/middleware"
)

type Router struct {
	authHandler       *handler.AuthHandler
	profileHandler    *handler.ProfileHandler
	onboardingHandler *handler.OnboardingHandler
	authMiddleware    *middleware.AuthMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	profileHandler *handler.ProfileHandler,
	onboardingHandler *handler.OnboardingHandler,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		authHandler:       authHandler,
		profileHandler:    profileHandler,
		onboardingHandler: onboardingHandler,
		authMiddleware:    authMiddleware,
	}
}

func (r *Router) Setup() *gin.Engine {
	router := gin.Default()

	// Health check (supports both GET and HEAD)
	healthHandler := func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	}
	router.GET("/health", healthHandler)
	router.HEAD("/health", healthHandler)

	// API v1
	v1 := router.Group("/api/v1")
	{
		// Auth routes (public)
		auth := v1.Group("/auth")
		{
			auth.POST("/register", r.authHandler.Register)
			auth.POST("/login", r.authHandler.Login)
			auth.POST("/logout", r.authMiddleware.RequireAuth(), r.authHandler.Logout)
			auth.GET("/me", r.authMiddleware.RequireAuth(), r.authHandler.Me)
		}

		// Protected routes
		protected := v1.Group("")
		protected.Use(r.authMiddleware.RequireAuth())
		{
			// Profile routes
			profile := protected.Group("/profile")
			{
				profile.GET("/me", r.profileHandler.GetMyProfile)
				profile.PATCH("/me", r.profileHandler.UpdateMyProfile)
				profile.POST("/me/photos/reorder", r.profileHandler.ReorderPhotos)
				profile.GET("/me/completion", r.profileHandler.GetCompletion)
				profile.GET("/me/completion/tips", r.profileHandler.GetCompletionTips)
				profile.POST("/generate-bio", r.profileHandler.GenerateBio)
			}

			// Guided setup routes
			onboarding := protected.Group("/onboarding")
			{
				onboarding.GET("/state", r.onboardingHandler.GetState)
				onboarding.POST("/next", r.onboardingHandler.Next)
				onboarding.POST("/previous", r.onboardingHandler.Previous)

				questionnaire := onboarding.Group("/questionnaire")
				{
					questionnaire.GET("", r.onboardingHandler.GetQuestionnaire)
					questionnaire.POST("/answer", r.onboardingHandler.Answer)
					questionnaire.POST("/next", r.onboardingHandler.QuestionnaireNext)
					questionnaire.POST("/previous", r.onboardingHandler.QuestionnairePrevious)
				}
			}
		}
	}

	return router
}
