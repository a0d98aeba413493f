package pool

import "testing"

func TestWithSubmitRateLimit_ThrottlesAdmission(t *testing.T) {
	p := NewPool(
		WithMode(Fixed),
		WithMaxQueueLength(64),
		WithSubmitRateLimit(1, 1),
	)
	if err := p.Start(1); err != nil {
		t.Fatalf("Start: %v", err)
	}
	defer p.Shutdown()

	h1 := p.Submit(TaskFunc(func() Value { return NewValue(1) }))
	if !h1.Valid() {
		t.Fatal("expected the first submission within the burst to be admitted")
	}

	h2 := p.Submit(TaskFunc(func() Value { return NewValue(2) }))
	if h2.Valid() {
		t.Fatal("expected the second immediate submission to be throttled")
	}
}

func TestWithSubmitRateLimit_ZeroArgsDisablesLimiter(t *testing.T) {
	p := NewPool(WithMode(Fixed), WithSubmitRateLimit(0, 0))
	if err := p.Start(1); err != nil {
		t.Fatalf("Start: %v", err)
	}
	defer p.Shutdown()

	for i := 0; i < 5; i++ {
		h := p.Submit(TaskFunc(func() Value { return NewValue(1) }))
		if !h.Valid() {
			t.Fatalf("submission %d unexpectedly throttled with a disabled limiter", i)
		}
	}
}
