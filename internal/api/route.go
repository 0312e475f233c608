package api

import (
	"ProductLobby/internal/api/middleware"
	"ProductLobby/internal/pkg/logger"
	"net/http"

	"github.com/gin-gonic/gin"
)

func SetupRouter(group *HandlersGroup) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies([]string{"localhost"})

	// TraceId & Logger & CORS
	r.Use(middleware.TraceMiddleware())
	r.Use(middleware.AuditMiddleware())
	r.Use(middleware.CORSMiddleware())
	logger.SetupGin(r)

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"Code":    200,
				"Message": "pong",
				"Data":    nil,
			})
		})

		userGroup := apiGroup.Group("/user")
		{
			// 无需登录即可访问的接口
			userGroup.POST("/login", group.UserHandler.Login)
			userGroup.POST("/register", group.UserHandler.Register)

			authGroup := userGroup.Group("")
			authGroup.Use(middleware.AuthMiddleware())
			{
				authGroup.POST("/logout", group.UserHandler.Logout)
				authGroup.GET("/info", group.UserHandler.GetUserInfo)
				authGroup.PUT("/info", group.UserHandler.UpdateUserInfo)
				authGroup.PUT("/password", group.UserHandler.ChangePassword)
				authGroup.POST("/cancel", group.UserHandler.CancelUser)
			}

			// 需要登录 & 拥有 admin 角色
			adminGroup := authGroup.Group("")
			adminGroup.Use(middleware.CheckRoles("ADMIN"))
			{
				adminGroup.POST("/ban", group.UserHandler.BanUser)
				adminGroup.POST("/unban", group.UserHandler.UnbanUser)
			}
		}

		campaignGroup := apiGroup.Group("/campaigns")
		{
			authOptGroup := campaignGroup.Group("")
			authOptGroup.Use(middleware.AuthOptionalMiddleware())
			{
				authOptGroup.GET("", group.CampaignHandler.ListCampaigns)
				authOptGroup.GET("/search", group.CampaignHandler.SearchCampaigns)
				authOptGroup.GET("/suggestions", group.CampaignHandler.GetSuggestions)
				authOptGroup.GET("/slug/:slug", group.CampaignHandler.GetCampaignBySlug)
				authOptGroup.GET("/detail/:campaign_id", group.CampaignHandler.GetCampaign)
				authOptGroup.GET("/:campaign_id/leaderboard", group.ContributionHandler.GetLeaderboard)
				authOptGroup.GET("/:campaign_id/rewards", group.RewardHandler.GetRewardCatalog)
			}

			authGroup := campaignGroup.Group("")
			authGroup.Use(middleware.AuthMiddleware())
			{
				authGroup.POST("", group.CampaignHandler.CreateCampaign)
				authGroup.GET("/self", group.CampaignHandler.ListMyCampaigns)
				authGroup.PUT("/:campaign_id", group.CampaignHandler.UpdateCampaign)
				authGroup.PUT("/:campaign_id/status", group.CampaignHandler.ChangeStatus)
				authGroup.POST("/:campaign_id/cover", group.CampaignHandler.UploadCover)

				authGroup.POST("/:campaign_id/contributions", group.ContributionHandler.RecordContribution)

				authGroup.GET("/:campaign_id/demand-signal", group.InsightHandler.GetDemandSignal)
				authGroup.GET("/:campaign_id/trends/7d", group.InsightHandler.GetTrend7Days)
				authGroup.GET("/:campaign_id/trends/30d", group.InsightHandler.GetTrend30Days)

				authGroup.GET("/:campaign_id/segments", group.SegmentHandler.GetSegments)
				authGroup.POST("/:campaign_id/segments", group.SegmentHandler.CreateSegment)
				authGroup.DELETE("/:campaign_id/segments/:segment_id", group.SegmentHandler.DeleteSegment)

				authGroup.POST("/:campaign_id/rewards", group.RewardHandler.ClaimReward)
				authGroup.POST("/:campaign_id/rewards/create", group.RewardHandler.CreateReward)
				authGroup.GET("/:campaign_id/rewards/status", group.RewardHandler.GetRewardStatus)

				authGroup.POST("/:campaign_id/response", group.BrandHandler.RespondToCampaign)
			}
		}

		brandGroup := apiGroup.Group("/brands")
		{
			brandGroup.GET("/:brand_id", group.BrandHandler.GetBrand)

			authGroup := brandGroup.Group("")
			authGroup.Use(middleware.AuthMiddleware())
			{
				authGroup.POST("", group.BrandHandler.RegisterBrand)
				authGroup.GET("/me", group.BrandHandler.GetMyBrand)
			}
		}

		notificationGroup := apiGroup.Group("/notifications")
		notificationGroup.Use(middleware.AuthMiddleware())
		{
			notificationGroup.GET("/list", group.NotificationHandler.GetNotifications)
			notificationGroup.GET("/unread", group.NotificationHandler.GetUnreadCount)
			notificationGroup.POST("/read", group.NotificationHandler.MarkAsRead)
			notificationGroup.POST("/read/all", group.NotificationHandler.MarkAllAsRead)
		}
	}

	return r
}
