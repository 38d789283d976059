package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/google/wire"
	"github.com/xh-polaris/aiagent-core-api/biz/adaptor"
	"github.com/xh-polaris/aiagent-core-api/biz/application/dto/core_api"
	"github.com/xh-polaris/aiagent-core-api/biz/domain/model"
	"github.com/xh-polaris/aiagent-core-api/biz/infra/config"
	"github.com/xh-polaris/aiagent-core-api/biz/infra/cst"
	"github.com/xh-polaris/aiagent-core-api/biz/infra/mapper/conversation"
	"github.com/xh-polaris/aiagent-core-api/biz/infra/mapper/message"
	"github.com/xh-polaris/aiagent-core-api/biz/infra/util"
	"github.com/xh-polaris/aiagent-core-api/pkg/ac"
	"github.com/xh-polaris/aiagent-core-api/pkg/errorx"
	"github.com/xh-polaris/aiagent-core-api/pkg/logs"
	"github.com/xh-polaris/aiagent-core-api/pkg/safego"
	"github.com/xh-polaris/aiagent-core-api/types/errno"
	"github.com/zeromicro/go-zero/core/stores/monc"
)

type IChatService interface {
	ChatSSE(c *app.RequestContext, ctx context.Context, req *core_api.ChatSSEReq) (*adaptor.SSEStream, error)
	Accept(ctx context.Context, req *core_api.AcceptChatReq) (*core_api.AcceptChatResp, error)
	Send(ctx context.Context, req *core_api.SendMessageReq) (*core_api.SendMessageResp, error)
}

type ChatService struct {
	Config             *config.Config
	Engine             model.IChatEngine
	Moderation         *ac.Matcher
	ConversationMapper conversation.MongoMapper
	MessageMapper      message.MongoMapper
}

var ChatServiceSet = wire.NewSet(
	wire.Struct(new(ChatService), "*"),
	wire.Bind(new(IChatService), new(*ChatService)),
)

// ChatSSE 流式对话入口
// 同步完成参数校验与敏感词筛查, 随后把生成与发送交给后台任务, 不阻塞请求线程
func (s *ChatService) ChatSSE(c *app.RequestContext, ctx context.Context, req *core_api.ChatSSEReq) (*adaptor.SSEStream, error) {
	sessionId, prompt := strings.TrimSpace(req.SessionId), strings.TrimSpace(req.Prompt)
	if sessionId == "" || prompt == "" {
		return nil, errorx.New(errno.ValidateErrCode)
	}
	if hit, words := s.moderate(req.Prompt); hit {
		logs.CtxWarnf(ctx, "[chat] prompt hits sensitive words: %v", words)
		return nil, errorx.New(errno.SensitiveErrCode)
	}

	stream := adaptor.NewSSEStream(c, s.streamTimeout())
	safego.Go(ctx, func() {
		s.relay(ctx, stream, req.Prompt, sessionId)
	})
	return stream, nil
}

// relay 后台任务: start → delta* → done|error
// 任何失败都转换为流内error事件后关闭, 不会让异常逃出任务
func (s *ChatService) relay(ctx context.Context, stream *adaptor.SSEStream, prompt, sessionKey string) {
	defer stream.CloseSend()

	// 客户端断开或超时后取消上游生成, 不让模型调用游离
	genCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	safego.Go(ctx, func() {
		select {
		case <-stream.Done:
			cancel()
		case <-genCtx.Done():
		}
	})

	if e, err := adaptor.StartEvent(time.Now()); err != nil || !stream.Emit(e) {
		return
	}

	answer, err := s.Engine.Generate(genCtx, prompt, sessionKey)
	if err != nil {
		logs.CtxErrorf(ctx, "[chat] generate err: %s", errorx.ErrorWithoutStack(err))
		s.emitError(stream, cst.CodeServerError, err.Error())
		return
	}

	for _, part := range util.ChunkRunes(answer, s.chunkSize()) {
		e, me := adaptor.DeltaEvent(part)
		if me != nil {
			s.emitError(stream, cst.CodeServerError, me.Error())
			return
		}
		if !stream.Emit(e) {
			return
		}
	}
	stream.Emit(adaptor.DoneEvent())
}

// emitError 尽力通知一次错误, 送达失败也照常结束
func (s *ChatService) emitError(stream *adaptor.SSEStream, code, msg string) {
	if e, err := adaptor.ErrorEvent(code, msg); err == nil {
		stream.Emit(e)
	}
}

// Accept 受理请求, 只回执不生成
func (s *ChatService) Accept(ctx context.Context, req *core_api.AcceptChatReq) (*core_api.AcceptChatResp, error) {
	if strings.TrimSpace(req.SessionId) == "" || strings.TrimSpace(req.Prompt) == "" {
		return nil, errorx.New(errno.ValidateErrCode)
	}
	return &core_api.AcceptChatResp{
		Resp:      util.Success(),
		Accepted:  true,
		SessionId: req.SessionId,
		Prompt:    req.Prompt,
		Ts:        time.Now().Format(time.RFC3339),
	}, nil
}

// Send 持久化对话: 确保对话归属 → 存用户消息 → 生成 → 存模型消息 → 刷新对话时间
func (s *ChatService) Send(ctx context.Context, req *core_api.SendMessageReq) (*core_api.SendMessageResp, error) {
	uid, err := adaptor.ExtractUserId(ctx)
	if err != nil {
		logs.CtxErrorf(ctx, "extract user id error: %s", errorx.ErrorWithoutStack(err))
		return nil, errorx.WrapByCode(err, errno.UnAuthErrCode)
	}
	if strings.TrimSpace(req.Content) == "" {
		return nil, errorx.New(errno.ValidateErrCode)
	}
	if hit, words := s.moderate(req.Content); hit {
		logs.CtxWarnf(ctx, "[chat] content hits sensitive words: %v", words)
		return nil, errorx.New(errno.SensitiveErrCode)
	}

	// 确保对话存在且归属当前用户, 未指定时新建, 标题取首条内容
	var conv *conversation.Conversation
	if req.ConversationId == "" {
		if conv, err = s.ConversationMapper.Insert(ctx, uid, req.Content); err != nil {
			logs.CtxErrorf(ctx, "create conversation error: %s", errorx.ErrorWithoutStack(err))
			return nil, errorx.WrapByCode(err, errno.ConversationCreateErrCode)
		}
	} else {
		if conv, err = s.ConversationMapper.FindActive(ctx, uid, req.ConversationId); err != nil {
			if errors.Is(err, monc.ErrNotFound) {
				return nil, errorx.New(errno.ConversationNotFoundErrCode)
			}
			return nil, errorx.WrapByCode(err, errno.ConversationGetErrCode)
		}
	}
	cid := conv.ConversationId

	if err = s.MessageMapper.Insert(ctx, message.NewUserMessage(cid, req.Content)); err != nil {
		return nil, errorx.WrapByCode(err, errno.MessageAppendErrCode)
	}

	answer, err := s.Engine.Generate(ctx, req.Content, cid.Hex())
	if err != nil {
		logs.CtxErrorf(ctx, "[chat] generate err: %s", errorx.ErrorWithoutStack(err))
		return nil, errorx.WrapByCode(err, errno.ChatErrCode)
	}

	am := message.NewAssistantMessage(cid, answer)
	if err = s.MessageMapper.Insert(ctx, am); err != nil {
		return nil, errorx.WrapByCode(err, errno.MessageAppendErrCode)
	}
	// 回答已落库, 刷新失败只影响排序, 不打断本次请求
	if err = s.ConversationMapper.Touch(ctx, cid.Hex()); err != nil {
		logs.CtxErrorf(ctx, "touch conversation error: %s", errorx.ErrorWithoutStack(err))
	}

	return &core_api.SendMessageResp{
		Resp:           util.Success(),
		ConversationId: cid.Hex(),
		MessageId:      am.MessageId.Hex(),
		Answer:         answer,
	}, nil
}

func (s *ChatService) moderate(text string) (bool, []string) {
	if s.Moderation == nil {
		return false, nil
	}
	return s.Moderation.Hit(text, false)
}

func (s *ChatService) chunkSize() int {
	if s.Config != nil && s.Config.Stream.ChunkSize > 0 {
		return s.Config.Stream.ChunkSize
	}
	return cst.DefaultChunkSize
}

func (s *ChatService) streamTimeout() time.Duration {
	if s.Config != nil && s.Config.Stream.TimeoutSec > 0 {
		return time.Duration(s.Config.Stream.TimeoutSec) * time.Second
	}
	return cst.DefaultStreamTimeoutSec * time.Second
}
