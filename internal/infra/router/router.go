/*
 * @Description: 应用路由注册
 * @Author: 安知鱼
 * @Date: 2026-08-17 11:30:55
 * @LastEditTime: 2026-08-30 21:46:12
 * @LastEditors: 安知鱼
 */
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/mundo-tango/mundo-tango-app/internal/app/middleware"
	content_handler "github.com/mundo-tango/mundo-tango-app/pkg/handler/content"
	moderation_handler "github.com/mundo-tango/mundo-tango-app/pkg/handler/moderation"
	notification_handler "github.com/mundo-tango/mundo-tango-app/pkg/handler/notification"
)

// NoCacheMiddleware 全局反缓存中间件，确保所有API响应都不会被CDN缓存
func NoCacheMiddleware() gin.HandlerFunc {
	return gin.HandlerFunc(func(c *gin.Context) {
		c.Header("Cache-Control", "no-cache, no-store, must-revalidate, private, max-age=0")
		c.Header("Pragma", "no-cache")
		c.Header("Expires", "0")
		c.Header("X-Content-Type-Options", "nosniff")
		c.Header("X-Frame-Options", "DENY")
		c.Header("X-XSS-Protection", "1; mode=block")

		c.Next()
	})
}

// Router 封装了应用的所有路由和其依赖的处理器。
type Router struct {
	contentHandler      *content_handler.Handler
	moderationHandler   *moderation_handler.Handler
	notificationHandler *notification_handler.Handler
	middleware          *middleware.Middleware
}

// NewRouter 创建一个 Router 实例，所有处理器由调用方显式注入。
func NewRouter(
	contentHandler *content_handler.Handler,
	moderationHandler *moderation_handler.Handler,
	notificationHandler *notification_handler.Handler,
	mw *middleware.Middleware,
) *Router {
	return &Router{
		contentHandler:      contentHandler,
		moderationHandler:   moderationHandler,
		notificationHandler: notificationHandler,
		middleware:          mw,
	}
}

// Setup 将所有路由注册到 gin 引擎上。
func (r *Router) Setup(engine *gin.Engine) {
	engine.Use(middleware.Cors())

	api := engine.Group("/api")
	api.Use(NoCacheMiddleware())

	// 公开内容接口，携带 Token 时解析游客身份
	public := api.Group("/public")
	public.Use(r.middleware.JWTAuthOptional())
	{
		content := public.Group("/content")
		{
			content.POST("", r.contentHandler.Create)
			content.POST("/render", r.contentHandler.Render)
			content.GET("/author/:authorId", r.contentHandler.ListByAuthor)
			content.GET("/:id", r.contentHandler.Get)
			content.PUT("/:id", r.contentHandler.Update)
			content.POST("/:id/report", r.contentHandler.Report)
			content.GET("/:id/versions", r.contentHandler.ListVersions)
		}
	}

	// 审核后台接口，要求 moderator 角色
	moderation := api.Group("/moderation")
	moderation.Use(r.middleware.ModeratorOnly())
	{
		moderation.GET("/queue", r.moderationHandler.ListQueue)
		moderation.GET("/stats", r.moderationHandler.Stats)
		moderation.POST("/content/:id/review", r.moderationHandler.Review)
		moderation.GET("/content/:id/events", r.moderationHandler.ListEvents)
	}

	// 站内通知，要求登录
	notifications := api.Group("/notifications")
	notifications.Use(r.middleware.JWTAuth())
	{
		notifications.GET("", r.notificationHandler.List)
		notifications.POST("/:id/read", r.notificationHandler.MarkRead)
	}
}
