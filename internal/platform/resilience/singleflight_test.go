package resilience

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestSingleFlight_CollapsesConcurrentCalls(t *testing.T) {
	t.Parallel()

	var g SingleFlight
	var executions atomic.Int32
	var shared atomic.Int32

	fn := func() (any, error) {
		executions.Add(1)
		time.Sleep(20 * time.Millisecond)
		return "result", nil
	}

	const callers = 16
	start := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(callers)

	for i := 0; i < callers; i++ {
		go func() {
			defer wg.Done()
			<-start
			val, err, wasShared := g.Do("token", fn)
			if err != nil {
				t.Errorf("do: %v", err)
				return
			}
			if val != "result" {
				t.Errorf("unexpected value: %v", val)
			}
			if wasShared {
				shared.Add(1)
			}
		}()
	}

	close(start)
	wg.Wait()

	if got := executions.Load(); got != 1 {
		t.Fatalf("fn executed %d times, want 1", got)
	}
	if got := shared.Load(); got != callers-1 {
		t.Fatalf("%d callers shared, want %d", got, callers-1)
	}
}

func TestSingleFlight_KeysDoNotInterfere(t *testing.T) {
	t.Parallel()

	var g SingleFlight

	a, err, sharedA := g.Do("a", func() (any, error) { return 1, nil })
	if err != nil || sharedA {
		t.Fatalf("first call: val=%v err=%v shared=%t", a, err, sharedA)
	}
	b, err, sharedB := g.Do("b", func() (any, error) { return 2, nil })
	if err != nil || sharedB {
		t.Fatalf("second call: val=%v err=%v shared=%t", b, err, sharedB)
	}
	if a == b {
		t.Fatalf("keys must not share results: %v vs %v", a, b)
	}
}

func TestSingleFlight_SequentialCallsRerun(t *testing.T) {
	t.Parallel()

	var g SingleFlight
	var executions atomic.Int32

	fn := func() (any, error) {
		return executions.Add(1), nil
	}

	first, _, _ := g.Do("seq", fn)
	second, _, _ := g.Do("seq", fn)

	if first == second {
		t.Fatalf("sequential calls must re-run fn, got %v twice", first)
	}
	if got := executions.Load(); got != 2 {
		t.Fatalf("fn executed %d times, want 2", got)
	}
}
