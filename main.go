package main

import (
	"context"
	"time"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/hertz-contrib/cors"
	prometheus "github.com/hertz-contrib/monitor-prometheus"
	"github.com/xh-polaris/aiagent-core-api/biz/adaptor"
	"github.com/xh-polaris/aiagent-core-api/biz/adaptor/controller/core_api"
	"github.com/xh-polaris/aiagent-core-api/provider"
)

func main() {
	provider.Init()
	cfg := provider.Get().Config

	h := server.New(
		server.WithHostPorts(cfg.ListenOn),
		server.WithTracer(prometheus.NewServerTracer(":9091", "/metrics")),
	)
	h.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))
	// 把RequestContext注入ctx, 供下游取鉴权头和SSE写出
	h.Use(func(ctx context.Context, c *app.RequestContext) {
		ctx = adaptor.InjectContext(ctx, c)
		c.Next(ctx)
	})

	register(h)
	h.Spin()
}

func register(h *server.Hertz) {
	api := h.Group("/api")
	api.POST("/doChatWithApp", core_api.AcceptChat)
	api.POST("/doChatWithManus", core_api.AcceptChat)
	api.GET("/doChatWithManus", core_api.ChatSSE)
	api.GET("/doChatWithAppSse", core_api.ChatSSE)
	api.POST("/chat", core_api.Chat)

	conv := api.Group("/conversations")
	conv.POST("", core_api.CreateConversation)
	conv.GET("", core_api.ListConversation)
	conv.GET("/:conversationId/messages", core_api.ListMessage)
	conv.DELETE("/:conversationId", core_api.DeleteConversation)
	conv.POST("/:conversationId/delete", core_api.DeleteConversation)
}
