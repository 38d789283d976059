package service

import (
	"context"
	"errors"

	"github.com/google/wire"
	"github.com/xh-polaris/aiagent-core-api/biz/adaptor"
	"github.com/xh-polaris/aiagent-core-api/biz/application/dto/core_api"
	"github.com/xh-polaris/aiagent-core-api/biz/infra/cst"
	"github.com/xh-polaris/aiagent-core-api/biz/infra/mapper/conversation"
	mmsg "github.com/xh-polaris/aiagent-core-api/biz/infra/mapper/message"
	"github.com/xh-polaris/aiagent-core-api/biz/infra/util"
	"github.com/xh-polaris/aiagent-core-api/pkg/errorx"
	"github.com/xh-polaris/aiagent-core-api/pkg/logs"
	"github.com/xh-polaris/aiagent-core-api/types/errno"
	"github.com/zeromicro/go-zero/core/stores/monc"
)

type IConversationService interface {
	CreateConversation(ctx context.Context, req *core_api.CreateConversationReq) (*core_api.CreateConversationResp, error)
	ListConversation(ctx context.Context, req *core_api.ListConversationReq) (*core_api.ListConversationResp, error)
	ListMessage(ctx context.Context, req *core_api.ListMessageReq) (*core_api.ListMessageResp, error)
	DeleteConversation(ctx context.Context, req *core_api.DeleteConversationReq) (*core_api.DeleteConversationResp, error)
}

type ConversationService struct {
	ConversationMapper conversation.MongoMapper
	MessageMapper      mmsg.MongoMapper
}

var ConversationServiceSet = wire.NewSet(
	wire.Struct(new(ConversationService), "*"),
	wire.Bind(new(IConversationService), new(*ConversationService)),
)

func (s *ConversationService) CreateConversation(ctx context.Context, req *core_api.CreateConversationReq) (*core_api.CreateConversationResp, error) {
	// 鉴权
	uid, err := adaptor.ExtractUserId(ctx)
	if err != nil {
		logs.CtxErrorf(ctx, "extract user id error: %s", errorx.ErrorWithoutStack(err))
		return nil, errorx.WrapByCode(err, errno.UnAuthErrCode)
	}

	// 调用mapper创建对话
	newConversation, err := s.ConversationMapper.Insert(ctx, uid, req.Title)
	if err != nil {
		logs.CtxErrorf(ctx, "create conversation error: %s", errorx.ErrorWithoutStack(err))
		return nil, errorx.WrapByCode(err, errno.ConversationCreateErrCode)
	}

	return &core_api.CreateConversationResp{
		Resp:           util.Success(),
		ConversationId: newConversation.ConversationId.Hex(),
		Title:          newConversation.Title,
	}, nil
}

func (s *ConversationService) ListConversation(ctx context.Context, req *core_api.ListConversationReq) (*core_api.ListConversationResp, error) {
	// 鉴权
	uid, err := adaptor.ExtractUserId(ctx)
	if err != nil {
		logs.CtxErrorf(ctx, "extract user id error: %s", errorx.ErrorWithoutStack(err))
		return nil, errorx.WrapByCode(err, errno.UnAuthErrCode)
	}

	limit := req.Limit
	if limit <= 0 {
		limit = cst.DefaultConvLimit
	}
	conversations, err := s.ConversationMapper.List(ctx, uid, limit)
	if err != nil {
		logs.CtxErrorf(ctx, "list conversation error: %s", errorx.ErrorWithoutStack(err))
		return nil, errorx.WrapByCode(err, errno.ConversationListErrCode)
	}
	items := make([]*core_api.Conversation, len(conversations))
	for i, conv := range conversations {
		items[i] = &core_api.Conversation{
			ConversationId: conv.ConversationId.Hex(),
			Title:          conv.Title,
			CreateTime:     conv.CreateTime.Unix(),
			UpdateTime:     conv.UpdateTime.Unix(),
		}
	}

	return &core_api.ListConversationResp{Resp: util.Success(), Conversations: items}, nil
}

func (s *ConversationService) ListMessage(ctx context.Context, req *core_api.ListMessageReq) (*core_api.ListMessageResp, error) {
	// 鉴权
	uid, err := adaptor.ExtractUserId(ctx)
	if err != nil {
		logs.CtxErrorf(ctx, "extract user id error: %s", errorx.ErrorWithoutStack(err))
		return nil, errorx.WrapByCode(err, errno.UnAuthErrCode)
	}

	// 归属校验, 他人或已删除对话一律按不存在处理, 不泄露数据
	if _, err = s.ConversationMapper.FindActive(ctx, uid, req.ConversationId); err != nil {
		if errors.Is(err, monc.ErrNotFound) {
			return nil, errorx.New(errno.ConversationNotFoundErrCode)
		}
		return nil, errorx.WrapByCode(err, errno.ConversationGetErrCode)
	}

	limit := req.Limit
	if limit <= 0 {
		limit = cst.DefaultMessageLimit
	}
	lastId := req.LastId
	if lastId == "0" { // 0为"从头开始"游标
		lastId = ""
	}
	msgs, err := s.MessageMapper.ListAfter(ctx, req.ConversationId, lastId, limit)
	if err != nil {
		logs.CtxErrorf(ctx, "get conversation messages error: %s", errorx.ErrorWithoutStack(err))
		return nil, errorx.WrapByCode(err, errno.ConversationGetErrCode)
	}
	items := make([]*core_api.Message, len(msgs))
	for i, msg := range msgs {
		items[i] = &core_api.Message{
			MessageId:  msg.MessageId.Hex(),
			Role:       mmsg.RoleItoS[msg.Role],
			Content:    msg.Content,
			CreateTime: msg.CreateTime.Unix(),
		}
	}

	return &core_api.ListMessageResp{Resp: util.Success(), Messages: items}, nil
}

func (s *ConversationService) DeleteConversation(ctx context.Context, req *core_api.DeleteConversationReq) (*core_api.DeleteConversationResp, error) {
	uid, err := adaptor.ExtractUserId(ctx)
	if err != nil {
		logs.CtxErrorf(ctx, "extract user id error: %s", errorx.ErrorWithoutStack(err))
		return nil, errorx.WrapByCode(err, errno.UnAuthErrCode)
	}
	if err = s.ConversationMapper.SoftDelete(ctx, uid, req.ConversationId); err != nil {
		logs.CtxErrorf(ctx, "delete conversation error: %s", errorx.ErrorWithoutStack(err))
		return nil, errorx.WrapByCode(err, errno.ConversationDeleteErrCode)
	}
	return &core_api.DeleteConversationResp{Resp: util.Success(), Success: true}, nil
}
