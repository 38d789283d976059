package core_api

import "github.com/xh-polaris/aiagent-core-api/biz/application/dto/basic"

// ChatSSEReq 流式对话请求, sessionId与prompt均不可为空
type ChatSSEReq struct {
	SessionId string `query:"sessionId"`
	Prompt    string `query:"prompt"`
}

// AcceptChatReq 受理请求, 只确认不生成
type AcceptChatReq struct {
	SessionId string `json:"sessionId"`
	Prompt    string `json:"prompt"`
}

type AcceptChatResp struct {
	Resp      *basic.Response `json:"-"`
	Accepted  bool            `json:"accepted"`
	SessionId string          `json:"sessionId"`
	Prompt    string          `json:"prompt"`
	Ts        string          `json:"ts"`
}

// SendMessageReq 持久化对话请求, conversationId为空时新建对话
type SendMessageReq struct {
	ConversationId string `json:"conversationId"`
	Content        string `json:"content"`
}

type SendMessageResp struct {
	Resp           *basic.Response `json:"-"`
	ConversationId string          `json:"conversationId"`
	MessageId      string          `json:"messageId"`
	Answer         string          `json:"answer"`
}
