package errorx

// 业务异常
// 若返回StatusError给前端, 则HTTP状态码应该是200, 且响应体为{code,msg}
// 最佳实践:
// - 业务处理链路的末端使用errorx, PostProcess处理后给出用户友好的响应
// - 错误码及文案在types/errno中预注册
// - 除却末端的errorx外, 其余的error照常处理

import (
	"fmt"

	"github.com/xh-polaris/aiagent-core-api/pkg/errorx/code"
)

// StatusError 携带业务错误码的异常
type StatusError interface {
	error
	Code() int32
	Msg() string
}

type statusError struct {
	code  int32
	msg   string
	cause error
}

func (e *statusError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("code=%d, msg=%s, cause=%s", e.code, e.msg, e.cause.Error())
	}
	return fmt.Sprintf("code=%d, msg=%s", e.code, e.msg)
}

func (e *statusError) Code() int32 {
	return e.code
}

func (e *statusError) Msg() string {
	return e.msg
}

func (e *statusError) Unwrap() error {
	return e.cause
}

// New 以注册文案构造一个业务异常
func New(c int32) error {
	return &statusError{code: c, msg: code.MsgOf(c)}
}

// NewWithMsg 以自定义文案构造一个业务异常
func NewWithMsg(c int32, msg string) error {
	return &statusError{code: c, msg: msg}
}

// WrapByCode 将底层错误包装为业务异常, err为nil时原样返回nil
func WrapByCode(err error, c int32) error {
	if err == nil {
		return nil
	}
	return &statusError{code: c, msg: code.MsgOf(c), cause: err}
}

// ErrorWithoutStack 返回不带堆栈的错误描述, nil安全
func ErrorWithoutStack(err error) string {
	if err == nil {
		return "<nil>"
	}
	return err.Error()
}
