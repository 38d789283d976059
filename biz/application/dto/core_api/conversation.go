package core_api

import "github.com/xh-polaris/aiagent-core-api/biz/application/dto/basic"

type CreateConversationReq struct {
	Title string `json:"title"`
}

type CreateConversationResp struct {
	Resp           *basic.Response `json:"-"`
	ConversationId string          `json:"conversationId"`
	Title          string          `json:"title,omitempty"`
}

type ListConversationReq struct {
	Limit int64 `query:"limit"`
}

// Conversation 对话视图
type Conversation struct {
	ConversationId string `json:"conversationId"`
	Title          string `json:"title,omitempty"`
	CreateTime     int64  `json:"createTime"`
	UpdateTime     int64  `json:"updateTime"`
}

type ListConversationResp struct {
	Resp          *basic.Response `json:"-"`
	Conversations []*Conversation `json:"conversations"`
}

type ListMessageReq struct {
	ConversationId string `path:"conversationId"`
	LastId         string `query:"lastId"`
	Limit          int64  `query:"limit"`
}

// Message 消息视图
type Message struct {
	MessageId  string `json:"messageId"`
	Role       string `json:"role"`
	Content    string `json:"content"`
	CreateTime int64  `json:"createTime"`
}

type ListMessageResp struct {
	Resp     *basic.Response `json:"-"`
	Messages []*Message      `json:"messages"`
}

type DeleteConversationReq struct {
	ConversationId string `path:"conversationId"`
}

type DeleteConversationResp struct {
	Resp    *basic.Response `json:"-"`
	Success bool            `json:"success"`
}
