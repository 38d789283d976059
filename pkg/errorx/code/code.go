package code

import "sync"

// 业务错误码注册表, 启动阶段由types/errno各init注册, 运行期只读

type definition struct {
	code            int32
	msg             string
	affectStability bool
}

var (
	mu   sync.RWMutex
	defs = map[int32]*definition{}
)

type Option func(*definition)

// WithAffectStability 标记该错误是否影响服务稳定性指标
func WithAffectStability(affect bool) Option {
	return func(d *definition) {
		d.affectStability = affect
	}
}

// Register 注册一个错误码及其默认文案, 重复注册以后者为准
func Register(code int32, msg string, opts ...Option) {
	d := &definition{code: code, msg: msg}
	for _, opt := range opts {
		opt(d)
	}
	mu.Lock()
	defer mu.Unlock()
	defs[code] = d
}

// MsgOf 返回错误码的注册文案, 未注册返回空串
func MsgOf(code int32) string {
	mu.RLock()
	defer mu.RUnlock()
	if d, ok := defs[code]; ok {
		return d.msg
	}
	return ""
}

// AffectStability 返回错误码是否影响稳定性, 未注册视为影响
func AffectStability(code int32) bool {
	mu.RLock()
	defer mu.RUnlock()
	if d, ok := defs[code]; ok {
		return d.affectStability
	}
	return true
}
