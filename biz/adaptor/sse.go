package adaptor

// SSE流处理

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/bytedance/sonic"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/sse"
	"github.com/xh-polaris/aiagent-core-api/biz/infra/cst"
	"github.com/xh-polaris/aiagent-core-api/pkg/errorx"
	"github.com/xh-polaris/aiagent-core-api/pkg/logs"
)

// SSEStream SSE事件流
// 生产侧(后台任务)通过Emit/CloseSend写入, 消费侧Serve负责写出到客户端
// Done关闭后生产侧所有写入都会失败返回, 不会panic也不会阻塞
type SSEStream struct {
	C        chan *sse.Event
	Done     chan struct{}
	c        *app.RequestContext
	id       int
	lifetime time.Duration
	abort    sync.Once
}

// NewSSEStream 创建事件流, lifetime为0时取默认600s上限
// 响应头的写出推迟到Serve, 创建流本身没有副作用
func NewSSEStream(c *app.RequestContext, lifetime time.Duration) *SSEStream {
	if lifetime <= 0 {
		lifetime = cst.DefaultStreamTimeoutSec * time.Second
	}
	return &SSEStream{
		C:        make(chan *sse.Event, 100),
		Done:     make(chan struct{}),
		c:        c,
		lifetime: lifetime,
	}
}

// Emit 投递一个事件, 流已终止时返回false
func (s *SSEStream) Emit(e *sse.Event) bool {
	select {
	case s.C <- e:
		return true
	case <-s.Done:
		return false
	}
}

// CloseSend 生产侧结束写入, 只能由生产侧调用一次
func (s *SSEStream) CloseSend() {
	close(s.C)
}

// Abort 终止事件流, 幂等
func (s *SSEStream) Abort() {
	s.abort.Do(func() { close(s.Done) })
}

// Serve 将事件依次写给客户端, 直到生产侧关闭/写失败/超出存活上限
// 写失败视为客户端断开, 终止流但不向上抛错
func (s *SSEStream) Serve(ctx context.Context) {
	w := sse.NewWriter(s.c)
	timer := time.NewTimer(s.lifetime)
	defer timer.Stop()
	defer func() {
		s.Abort()
		_ = w.Close()
	}()

	for {
		select {
		case e, ok := <-s.C:
			if !ok {
				return
			}
			e.ID = strconv.Itoa(s.id)
			s.id++
			if err := w.Write(e); err != nil {
				logs.CtxWarnf(ctx, "write sse err: %s", errorx.ErrorWithoutStack(err))
				return
			}
		case <-timer.C:
			logs.CtxWarnf(ctx, "sse stream exceeded lifetime %s, force close", s.lifetime)
			return
		}
	}
}

// message事件负载

type EventStart struct {
	Type string `json:"type"`
	Ts   int64  `json:"ts"`
}

type EventDelta struct {
	Type    string `json:"type"`
	Content string `json:"content"`
}

type EventError struct {
	Type    string `json:"type"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// StartEvent 流开始事件, 携带服务端毫秒时间戳
func StartEvent(ts time.Time) (*sse.Event, error) {
	return MarshEvent(cst.EventMessage, &EventStart{Type: cst.EventTypeStart, Ts: ts.UnixMilli()})
}

// DeltaEvent 增量内容事件, 各delta按序拼接即完整回答
func DeltaEvent(content string) (*sse.Event, error) {
	return MarshEvent(cst.EventMessage, &EventDelta{Type: cst.EventTypeDelta, Content: content})
}

// ErrorEvent 错误事件, 流内错误的唯一出口
func ErrorEvent(code, msg string) (*sse.Event, error) {
	return MarshEvent(cst.EventMessage, &EventError{Type: cst.EventTypeError, Code: code, Message: msg})
}

// DoneEvent 结束事件
func DoneEvent() *sse.Event {
	return &sse.Event{Type: cst.EventDone, Data: []byte(cst.EventDoneValue)}
}

// MarshEvent 序列化一个消息
func MarshEvent(typ string, obj any) (*sse.Event, error) {
	data, err := sonic.Marshal(obj)
	if err != nil {
		logs.Errorf("[adaptor] event marshal error: %s", errorx.ErrorWithoutStack(err))
		return nil, err
	}
	return &sse.Event{Type: typ, Data: data}, nil
}
