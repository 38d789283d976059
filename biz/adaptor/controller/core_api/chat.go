package core_api

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/xh-polaris/aiagent-core-api/biz/adaptor"
	"github.com/xh-polaris/aiagent-core-api/biz/application/dto/core_api"
	"github.com/xh-polaris/aiagent-core-api/provider"
)

// ChatSSE 流式对话
// @router /api/doChatWithAppSse [GET]
// @router /api/doChatWithManus [GET]
func ChatSSE(ctx context.Context, c *app.RequestContext) {
	var req core_api.ChatSSEReq
	if err := c.BindAndValidate(&req); err != nil {
		adaptor.PostError(ctx, c, err)
		return
	}
	resp, err := provider.Get().ChatService.ChatSSE(c, ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// AcceptChat 受理对话请求, 非流式回执
// @router /api/doChatWithApp [POST]
// @router /api/doChatWithManus [POST]
func AcceptChat(ctx context.Context, c *app.RequestContext) {
	var req core_api.AcceptChatReq
	if err := c.BindAndValidate(&req); err != nil {
		adaptor.PostError(ctx, c, err)
		return
	}
	resp, err := provider.Get().ChatService.Accept(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// Chat 持久化对话
// @router /api/chat [POST]
func Chat(ctx context.Context, c *app.RequestContext) {
	var req core_api.SendMessageReq
	if err := c.BindAndValidate(&req); err != nil {
		adaptor.PostError(ctx, c, err)
		return
	}
	resp, err := provider.Get().ChatService.Send(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}
