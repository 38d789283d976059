package memory

import (
	"strconv"
	"testing"

	"github.com/cloudwego/eino/schema"
)

func TestWindowTrim(t *testing.T) {
	m := New(4)
	for i := 0; i < 10; i++ {
		m.Append("s1", schema.UserMessage(strconv.Itoa(i)))
	}
	his := m.Retrieve("s1")
	if len(his) != 4 {
		t.Fatalf("got %d messages", len(his))
	}
	if his[0].Content != "6" || his[3].Content != "9" {
		t.Fatalf("unexpected window: %s..%s", his[0].Content, his[3].Content)
	}
}

func TestSessionIsolation(t *testing.T) {
	m := New(0)
	m.Append("a", schema.UserMessage("hi"))
	if len(m.Retrieve("b")) != 0 {
		t.Fatal("sessions should be isolated")
	}
	// Retrieve返回副本, 修改不影响内部状态
	his := m.Retrieve("a")
	his[0] = schema.UserMessage("changed")
	if m.Retrieve("a")[0].Content != "hi" {
		t.Fatal("retrieve should copy")
	}
}
