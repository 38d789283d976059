package memory

import (
	"sync"

	"github.com/cloudwego/eino/schema"
)

// DefaultWindow 每个会话保留的最近消息条数
const DefaultWindow = 20

// MemoryManager 按会话键维护模型上下文
// 同一sessionKey的连续调用共享历史, 进程内存储, 重启即失
type MemoryManager struct {
	mu       sync.RWMutex
	window   int
	sessions map[string][]*schema.Message
}

func New(window int) *MemoryManager {
	if window <= 0 {
		window = DefaultWindow
	}
	return &MemoryManager{window: window, sessions: make(map[string][]*schema.Message)}
}

// Retrieve 返回会话历史的副本
func (m *MemoryManager) Retrieve(key string) []*schema.Message {
	m.mu.RLock()
	defer m.mu.RUnlock()
	his := m.sessions[key]
	out := make([]*schema.Message, len(his))
	copy(out, his)
	return out
}

// Append 追加消息并裁剪到窗口大小
func (m *MemoryManager) Append(key string, msgs ...*schema.Message) {
	m.mu.Lock()
	defer m.mu.Unlock()
	his := append(m.sessions[key], msgs...)
	if len(his) > m.window {
		his = his[len(his)-m.window:]
	}
	m.sessions[key] = his
}
