package observability

import (
	"context"
	"sync"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	h := NoopRequestHooks{}
	h.OnAttempt(ctx, "GET", "/CountryList", 1)
	h.OnResponse(ctx, "GET", "/CountryList", 200, time.Second)
	h.OnRetry(ctx, "GET", "/CountryList", 2, time.Second)
	h.OnTerminalError(ctx, "GET", "/CountryList", nil)
}

func TestGlobalHooksRegistry(t *testing.T) {
	Reset()

	if _, ok := Request().(NoopRequestHooks); !ok {
		t.Error("Request() should return NoopRequestHooks by default")
	}

	custom := &testRequestHooks{}
	SetRequestHooks(custom)
	if Request() != RequestHooks(custom) {
		t.Error("SetRequestHooks should set custom hooks")
	}

	Reset()
	if _, ok := Request().(NoopRequestHooks); !ok {
		t.Error("Reset() should restore noop hooks")
	}
}

func TestSetNilHooksIgnored(t *testing.T) {
	Reset()
	SetRequestHooks(nil)
	if _, ok := Request().(NoopRequestHooks); !ok {
		t.Error("SetRequestHooks(nil) should keep current hooks")
	}
}

func TestConcurrentAccess(t *testing.T) {
	Reset()
	defer Reset()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			SetRequestHooks(&testRequestHooks{})
		}()
		go func() {
			defer wg.Done()
			Request().OnAttempt(context.Background(), "GET", "/CityList", 1)
		}()
	}
	wg.Wait()
}

type testRequestHooks struct {
	mu       sync.Mutex
	attempts int
}

func (h *testRequestHooks) OnAttempt(_ context.Context, _, _ string, _ int) {
	h.mu.Lock()
	h.attempts++
	h.mu.Unlock()
}
func (h *testRequestHooks) OnResponse(context.Context, string, string, int, time.Duration) {}
func (h *testRequestHooks) OnRetry(context.Context, string, string, int, time.Duration)    {}
func (h *testRequestHooks) OnTerminalError(context.Context, string, string, error)         {}

func TestHooksReceiveEvents(t *testing.T) {
	Reset()
	defer Reset()

	custom := &testRequestHooks{}
	SetRequestHooks(custom)

	Request().OnAttempt(context.Background(), "POST", "/HotelSearch", 1)
	Request().OnAttempt(context.Background(), "POST", "/HotelSearch", 2)

	custom.mu.Lock()
	defer custom.mu.Unlock()
	if custom.attempts != 2 {
		t.Errorf("expected 2 attempts recorded, got %d", custom.attempts)
	}
}
