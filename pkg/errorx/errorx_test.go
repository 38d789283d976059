package errorx

import (
	"errors"
	"testing"

	"github.com/xh-polaris/aiagent-core-api/pkg/errorx/code"
)

const testCode int32 = 99999

func init() {
	code.Register(testCode, "测试错误", code.WithAffectStability(false))
}

func TestNew(t *testing.T) {
	err := New(testCode)
	var se StatusError
	if !errors.As(err, &se) {
		t.Fatal("expect StatusError")
	}
	if se.Code() != testCode || se.Msg() != "测试错误" {
		t.Fatalf("code=%d msg=%s", se.Code(), se.Msg())
	}
}

func TestWrapByCode(t *testing.T) {
	if WrapByCode(nil, testCode) != nil {
		t.Fatal("wrap nil should be nil")
	}
	cause := errors.New("boom")
	err := WrapByCode(cause, testCode)
	if !errors.Is(err, cause) {
		t.Fatal("expect cause in chain")
	}
	var se StatusError
	if !errors.As(err, &se) || se.Code() != testCode {
		t.Fatal("expect StatusError with code")
	}
}

func TestErrorWithoutStack(t *testing.T) {
	if got := ErrorWithoutStack(nil); got != "<nil>" {
		t.Fatalf("got %q", got)
	}
	if got := ErrorWithoutStack(errors.New("x")); got != "x" {
		t.Fatalf("got %q", got)
	}
}
