package observability

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	h := NoopRenderHooks{}
	h.OnWalkStart(ctx, 3)
	h.OnWalkComplete(ctx, 3, 8, time.Millisecond, nil)
	h.OnExportComplete(ctx, "von_neumann_n3", []string{"svg"}, time.Millisecond, errors.New("boom"))
}

func TestGlobalHooksRegistry(t *testing.T) {
	Reset()

	if _, ok := Render().(NoopRenderHooks); !ok {
		t.Error("Render() should return NoopRenderHooks by default")
	}

	custom := &testRenderHooks{}
	SetRenderHooks(custom)
	if Render() != custom {
		t.Error("SetRenderHooks should set custom hooks")
	}

	Reset()
	if _, ok := Render().(NoopRenderHooks); !ok {
		t.Error("Reset() should restore NoopRenderHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()
	defer Reset()

	custom := &testRenderHooks{}
	SetRenderHooks(custom)
	SetRenderHooks(nil)

	if Render() != custom {
		t.Error("SetRenderHooks(nil) should keep the previous hooks")
	}
}

func TestCustomHooksReceiveEvents(t *testing.T) {
	Reset()
	defer Reset()

	custom := &testRenderHooks{}
	SetRenderHooks(custom)

	ctx := context.Background()
	Render().OnWalkStart(ctx, 2)
	Render().OnWalkComplete(ctx, 2, 4, time.Second, nil)
	Render().OnExportComplete(ctx, "von_neumann_n2", []string{"svg", "png"}, time.Second, nil)

	if custom.walkStarts != 1 || custom.circles != 4 || custom.exported != "von_neumann_n2" {
		t.Errorf("unexpected hook state: %+v", custom)
	}
}

type testRenderHooks struct {
	walkStarts int
	circles    int
	exported   string
}

func (h *testRenderHooks) OnWalkStart(context.Context, int) { h.walkStarts++ }
func (h *testRenderHooks) OnWalkComplete(_ context.Context, _ int, circles int, _ time.Duration, _ error) {
	h.circles = circles
}
func (h *testRenderHooks) OnExportComplete(_ context.Context, name string, _ []string, _ time.Duration, _ error) {
	h.exported = name
}
