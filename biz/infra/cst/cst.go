package cst

const (
	// Assistant is the role of an assistant, means the message is returned by ChatModel.
	Assistant = "assistant"
	// User is the role of a user, means the message is a user message.
	User = "user"
	// System is the role of a system, means the message is a system message.
	System = "system"
)

// sse事件名
const (
	// EventMessage 携带JSON负载的消息事件, start/delta/error共用
	EventMessage = "message"
	// EventDone 流结束事件
	EventDone      = "done"
	EventDoneValue = "done"
)

// message事件负载中的type字段
const (
	EventTypeStart = "start"
	EventTypeDelta = "delta"
	EventTypeError = "error"
)

// error事件的code字段
const (
	CodeServerError = "server_error"
	CodeIOError     = "io_error"
)

// 流式响应默认参数
const (
	// DefaultChunkSize 每个delta事件携带的最大字符数(按rune计)
	DefaultChunkSize = 120
	// DefaultStreamTimeoutSec 事件流最长存活时间, 超时强制关闭
	DefaultStreamTimeoutSec = 600
)

// 对话与分页默认参数
const (
	TitleMaxLen         = 40
	DefaultConvLimit    = 20
	DefaultMessageLimit = 50
)

// mapper层字段枚举
const (
	Id             = "_id"
	ConversationId = "conversation_id"
	UserId         = "user_id"
	CreateTime     = "create_time"
	UpdateTime     = "update_time"
	DeleteTime     = "delete_time"
	Title          = "title"

	Status        = "status"
	DeletedStatus = -1

	NE  = "$ne"
	GT  = "$gt"
	Set = "$set"
)
