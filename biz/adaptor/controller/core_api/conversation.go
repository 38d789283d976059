package core_api

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/xh-polaris/aiagent-core-api/biz/adaptor"
	"github.com/xh-polaris/aiagent-core-api/biz/application/dto/core_api"
	"github.com/xh-polaris/aiagent-core-api/provider"
)

// CreateConversation 创建对话
// @router /api/conversations [POST]
func CreateConversation(ctx context.Context, c *app.RequestContext) {
	var req core_api.CreateConversationReq
	if err := c.BindAndValidate(&req); err != nil {
		adaptor.PostError(ctx, c, err)
		return
	}
	resp, err := provider.Get().ConversationService.CreateConversation(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// ListConversation 分页获取对话列表
// @router /api/conversations [GET]
func ListConversation(ctx context.Context, c *app.RequestContext) {
	var req core_api.ListConversationReq
	if err := c.BindAndValidate(&req); err != nil {
		adaptor.PostError(ctx, c, err)
		return
	}
	resp, err := provider.Get().ConversationService.ListConversation(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// ListMessage 获取对话内消息, lastId游标增量拉取
// @router /api/conversations/:conversationId/messages [GET]
func ListMessage(ctx context.Context, c *app.RequestContext) {
	var req core_api.ListMessageReq
	if err := c.BindAndValidate(&req); err != nil {
		adaptor.PostError(ctx, c, err)
		return
	}
	resp, err := provider.Get().ConversationService.ListMessage(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// DeleteConversation 软删除对话, 幂等
// @router /api/conversations/:conversationId [DELETE]
// @router /api/conversations/:conversationId/delete [POST] 兼容部分网关拦截DELETE方法
func DeleteConversation(ctx context.Context, c *app.RequestContext) {
	var req core_api.DeleteConversationReq
	if err := c.BindAndValidate(&req); err != nil {
		adaptor.PostError(ctx, c, err)
		return
	}
	resp, err := provider.Get().ConversationService.DeleteConversation(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}
