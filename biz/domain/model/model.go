package model

import (
	"context"
	"time"

	"github.com/cloudwego/eino-ext/components/model/openai"
	"github.com/cloudwego/eino/schema"
	"github.com/xh-polaris/aiagent-core-api/biz/domain/memory"
	"github.com/xh-polaris/aiagent-core-api/biz/infra/config"
)

// IChatEngine 生成引擎门面
// 输入完整prompt与会话键, 返回完整回答文本; 流式分片由上层网关负责
type IChatEngine interface {
	Generate(ctx context.Context, prompt, sessionKey string) (string, error)
}

type ChatEngine struct {
	model  *openai.ChatModel
	memory *memory.MemoryManager
}

func NewChatEngine(c *config.Config) (IChatEngine, error) {
	m, err := openai.NewChatModel(context.Background(), &openai.ChatModelConfig{
		BaseURL: c.Engine.BaseURL,
		APIKey:  c.Engine.APIKey,
		Model:   c.Engine.Model,
		Timeout: time.Duration(c.Engine.TimeoutSec) * time.Second,
	})
	if err != nil {
		return nil, err
	}
	return &ChatEngine{model: m, memory: memory.New(memory.DefaultWindow)}, nil
}

// Generate 携带会话历史调用模型, 返回完整回答
// 回答为nil时归一化为空串, 调用失败不重试, 由上层决定如何呈现
func (e *ChatEngine) Generate(ctx context.Context, prompt, sessionKey string) (string, error) {
	in := append(e.memory.Retrieve(sessionKey), schema.UserMessage(prompt))
	out, err := e.model.Generate(ctx, in)
	if err != nil {
		return "", err
	}
	var answer string
	if out != nil {
		answer = out.Content
	}
	e.memory.Append(sessionKey, schema.UserMessage(prompt), schema.AssistantMessage(answer, nil))
	return answer, nil
}
