package adaptor

import (
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/xh-polaris/aiagent-core-api/biz/infra/cst"
)

func TestEventPayloads(t *testing.T) {
	ts := time.UnixMilli(1700000000000)
	e, err := StartEvent(ts)
	if err != nil {
		t.Fatal(err)
	}
	if e.Type != cst.EventMessage {
		t.Fatalf("type=%s", e.Type)
	}
	var start EventStart
	if err = sonic.Unmarshal(e.Data, &start); err != nil {
		t.Fatal(err)
	}
	if start.Type != cst.EventTypeStart || start.Ts != ts.UnixMilli() {
		t.Fatalf("%+v", start)
	}

	e, err = DeltaEvent("片段")
	if err != nil {
		t.Fatal(err)
	}
	var delta EventDelta
	if err = sonic.Unmarshal(e.Data, &delta); err != nil {
		t.Fatal(err)
	}
	if delta.Type != cst.EventTypeDelta || delta.Content != "片段" {
		t.Fatalf("%+v", delta)
	}

	e, err = ErrorEvent(cst.CodeIOError, "client gone")
	if err != nil {
		t.Fatal(err)
	}
	var ee EventError
	if err = sonic.Unmarshal(e.Data, &ee); err != nil {
		t.Fatal(err)
	}
	if ee.Type != cst.EventTypeError || ee.Code != cst.CodeIOError || ee.Message != "client gone" {
		t.Fatalf("%+v", ee)
	}

	d := DoneEvent()
	if d.Type != cst.EventDone || string(d.Data) != cst.EventDoneValue {
		t.Fatalf("%+v", d)
	}
}

func TestEmitAfterAbort(t *testing.T) {
	s := NewSSEStream(app.NewContext(16), 0)
	e, err := DeltaEvent("x")
	if err != nil {
		t.Fatal(err)
	}
	if !s.Emit(e) {
		t.Fatal("emit on live stream should succeed")
	}
	s.Abort()
	s.Abort() // 幂等
	if s.Emit(e) {
		t.Fatal("emit after abort should fail")
	}
}

func TestExtractUserIdMissing(t *testing.T) {
	// 无hertz上下文
	if _, err := ExtractUserId(t.Context()); err == nil {
		t.Fatal("expect error without request context")
	}
	// 无Authorization头
	c := app.NewContext(0)
	if _, err := ExtractUserId(InjectContext(t.Context(), c)); err == nil {
		t.Fatal("expect error without token")
	}
}
