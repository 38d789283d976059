package errno

import (
	"github.com/xh-polaris/aiagent-core-api/pkg/errorx/code"
)

const (
	ConversationCreateErrCode   = 30001
	ConversationListErrCode     = 30003
	ConversationGetErrCode      = 30004
	ConversationDeleteErrCode   = 30005
	ConversationNotFoundErrCode = 30009
	MessageAppendErrCode        = 30010
)

func init() {
	code.Register(
		ConversationCreateErrCode,
		"创建对话失败",
		code.WithAffectStability(false),
	)
	code.Register(
		ConversationListErrCode,
		"分页获取历史对话失败",
		code.WithAffectStability(false),
	)
	code.Register(
		ConversationGetErrCode,
		"获取对话历史记录失败",
		code.WithAffectStability(false),
	)
	code.Register(
		ConversationDeleteErrCode,
		"删除历史记录失败",
		code.WithAffectStability(false),
	)
	code.Register(
		ConversationNotFoundErrCode,
		"对话不存在或无权访问",
		code.WithAffectStability(false),
	)
	code.Register(
		MessageAppendErrCode,
		"消息写入失败",
		code.WithAffectStability(false),
	)
}
