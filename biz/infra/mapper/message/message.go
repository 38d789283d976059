package message

import (
	"time"

	"github.com/xh-polaris/aiagent-core-api/biz/infra/cst"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	RoleStoI = map[string]int32{cst.System: 0, cst.Assistant: 1, cst.User: 2}
	RoleItoS = map[int32]string{0: cst.System, 1: cst.Assistant, 2: cst.User}
)

// Message 一条消息, 可能归属于用户或模型, 创建后不可变
type Message struct {
	MessageId      primitive.ObjectID `json:"message_id" bson:"_id"`                              // 主键, 插入顺序递增, 作为分页游标
	ConversationId primitive.ObjectID `json:"conversation_id" bson:"conversation_id"`             // 归属的对话id
	Role           int32              `json:"role" bson:"role"`                                   // 角色, system/assistant/user, 依次为0,1,2
	Content        string             `json:"content" bson:"content"`                             // 消息内容
	CreateTime     time.Time          `json:"create_time" bson:"create_time"`                     // 创建时间
	DeleteTime     time.Time          `json:"delete_time,omitempty" bson:"delete_time,omitempty"` // 删除时间
	Status         int32              `json:"status" bson:"status"`                               // 状态, 默认0, 删除-1
}

// NewUserMessage 构造一条用户消息
func NewUserMessage(cid primitive.ObjectID, content string) *Message {
	return newMessage(cid, RoleStoI[cst.User], content)
}

// NewAssistantMessage 构造一条模型消息
func NewAssistantMessage(cid primitive.ObjectID, content string) *Message {
	return newMessage(cid, RoleStoI[cst.Assistant], content)
}

func newMessage(cid primitive.ObjectID, role int32, content string) *Message {
	return &Message{
		MessageId:      primitive.NewObjectID(),
		ConversationId: cid,
		Role:           role,
		Content:        content,
		CreateTime:     time.Now(),
	}
}
