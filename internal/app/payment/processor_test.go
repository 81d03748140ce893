package payment

import (
	"testing"
	"time"

	"ukoradar/internal/pkg/errs"
)

func TestValidPhone(t *testing.T) {
	tests := []struct {
		phone string
		want  bool
	}{
		{"0712345678", true},
		{"0712 345 678", true},
		{"+254712345678", true},
		{"071234", false},
		{"", false},
		{"abcdefghij", false},
	}

	for _, tt := range tests {
		if got := ValidPhone(tt.phone); got != tt.want {
			t.Errorf("ValidPhone(%q) = %v, want %v", tt.phone, got, tt.want)
		}
	}
}

func TestSimulated_ConfirmsAfterDelay(t *testing.T) {
	p := NewSimulatedDelay(20 * time.Millisecond)
	defer p.Close()

	results := make(chan Result, 1)
	token, err := p.Begin("p1", "VIP Night", 500, "0712345678", func(r Result) {
		results <- r
	})
	if err != nil {
		t.Fatalf("begin failed: %v", err)
	}

	select {
	case r := <-results:
		if !r.OK || r.Token != token || r.PartyID != "p1" || r.Amount != 500 {
			t.Errorf("unexpected result %+v", r)
		}
	case <-time.After(time.Second):
		t.Fatal("payment never settled")
	}
}

func TestSimulated_RejectsShortPhone(t *testing.T) {
	p := NewSimulated()
	defer p.Close()

	_, err := p.Begin("p1", "VIP Night", 500, "0712", func(Result) {
		t.Error("callback must not fire for rejected request")
	})
	if err == nil || err.Code != errs.ErrPhoneInvalid {
		t.Fatalf("expected ErrPhoneInvalid, got %v", err)
	}
}

func TestSimulated_CancelSuppressesSettlement(t *testing.T) {
	p := NewSimulatedDelay(30 * time.Millisecond)
	defer p.Close()

	settled := make(chan Result, 1)
	token, err := p.Begin("p1", "VIP Night", 500, "0712345678", func(r Result) {
		settled <- r
	})
	if err != nil {
		t.Fatal(err)
	}

	p.Cancel(token)

	select {
	case r := <-settled:
		t.Errorf("cancelled request settled anyway: %+v", r)
	case <-time.After(150 * time.Millisecond):
	}
}

func TestSimulated_NewRequestInvalidatesPrior(t *testing.T) {
	// Re-opening the payment dialog quickly must not let the first, stale
	// confirmation apply.
	p := NewSimulatedDelay(30 * time.Millisecond)
	defer p.Close()

	settled := make(chan Result, 2)
	first, err := p.Begin("p1", "VIP Night", 500, "0712345678", func(r Result) {
		settled <- r
	})
	if err != nil {
		t.Fatal(err)
	}

	second, err := p.Begin("p1", "VIP Night", 500, "0798765432", func(r Result) {
		settled <- r
	})
	if err != nil {
		t.Fatal(err)
	}

	var got []Result
	timeout := time.After(500 * time.Millisecond)
collect:
	for {
		select {
		case r := <-settled:
			got = append(got, r)
		case <-timeout:
			break collect
		}
	}

	if len(got) != 1 {
		t.Fatalf("expected exactly one settlement, got %d", len(got))
	}
	if got[0].Token != second {
		t.Errorf("settled token %s, want the superseding request %s (stale was %s)", got[0].Token, second, first)
	}
}
