package booking

import (
	"testing"
	"time"

	"ukoradar/internal/app/notify"
	"ukoradar/internal/app/payment"
	"ukoradar/internal/pkg/errs"
)

func TestPriceBreakdown(t *testing.T) {
	tests := []struct {
		name          string
		req           Request
		wantFee       float64
		wantDrinks    int
		wantTotal     float64
		wantPerPerson int
	}{
		{
			name:          "high table no drinks",
			req:           Request{TableID: "t1", SplitCount: 1},
			wantFee:       300,
			wantDrinks:    0,
			wantTotal:     300,
			wantPerPerson: 300,
		},
		{
			name: "club booth with cart split four ways",
			req: Request{
				TableID:    "t2",
				Cart:       map[string]int{"d1": 1, "d5": 2},
				SplitCount: 4,
			},
			wantFee:       1000,
			wantDrinks:    8500 + 2*2500,
			wantTotal:     14500,
			wantPerPerson: 3625,
		},
		{
			name: "vip split three rounds up",
			req: Request{
				TableID:    "t3",
				Cart:       map[string]int{"d4": 1},
				SplitCount: 3,
			},
			wantFee:       2500,
			wantDrinks:    3500,
			wantTotal:     6000,
			wantPerPerson: 2000,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := Price(tt.req)
			if err != nil {
				t.Fatalf("Price: %v", err)
			}
			if q.ReservationFee != tt.wantFee {
				t.Errorf("reservationFee = %v, want %v", q.ReservationFee, tt.wantFee)
			}
			if q.DrinksTotal != tt.wantDrinks {
				t.Errorf("drinksTotal = %v, want %v", q.DrinksTotal, tt.wantDrinks)
			}
			if q.Total != tt.wantTotal {
				t.Errorf("total = %v, want %v", q.Total, tt.wantTotal)
			}
			if q.CostPerPerson != tt.wantPerPerson {
				t.Errorf("costPerPerson = %v, want %v", q.CostPerPerson, tt.wantPerPerson)
			}
		})
	}
}

func TestPriceCeilsSplit(t *testing.T) {
	// 300 fee + 8500 = 8800; split 3 = 2933.33 -> 2934.
	q, err := Price(Request{TableID: "t1", Cart: map[string]int{"d1": 1}, SplitCount: 3})
	if err != nil {
		t.Fatalf("Price: %v", err)
	}
	if q.CostPerPerson != 2934 {
		t.Errorf("costPerPerson = %d, want 2934", q.CostPerPerson)
	}
}

func TestPriceRejectsUnknownSelections(t *testing.T) {
	if _, err := Price(Request{TableID: "t9"}); err == nil || err.Code != errs.ErrTableOptionInvalid {
		t.Errorf("unknown table: got %v, want code %d", err, errs.ErrTableOptionInvalid)
	}
	if _, err := Price(Request{TableID: "t1", Cart: map[string]int{"d9": 1}}); err == nil || err.Code != errs.ErrDrinkInvalid {
		t.Errorf("unknown drink: got %v, want code %d", err, errs.ErrDrinkInvalid)
	}
	if _, err := Price(Request{TableID: "t1", Cart: map[string]int{"d1": -1}}); err == nil || err.Code != errs.ErrDrinkInvalid {
		t.Errorf("negative quantity: got %v, want code %d", err, errs.ErrDrinkInvalid)
	}
}

func TestPriceDefaults(t *testing.T) {
	q, err := Price(Request{TableID: "t1"})
	if err != nil {
		t.Fatalf("Price: %v", err)
	}
	if q.Hours != 3 {
		t.Errorf("hours = %d, want default 3", q.Hours)
	}
	if q.SplitCount != 1 {
		t.Errorf("splitCount = %d, want default 1", q.SplitCount)
	}
}

func TestConfirmRecordsBookingAfterSettlement(t *testing.T) {
	payments := payment.NewSimulatedDelay(10 * time.Millisecond)
	defer payments.Close()
	queue := notify.NewQueue()
	defer queue.Close()

	svc := NewService(payments, queue)

	quote, err := svc.Confirm(Request{PartyID: "p2", TableID: "t2"}, "Neon Basement Rave", "0712345678")
	if err != nil {
		t.Fatalf("Confirm: %v", err)
	}
	if quote.Total != 1000 {
		t.Errorf("quote total = %v, want 1000", quote.Total)
	}

	if got := len(svc.Confirmed()); got != 0 {
		t.Fatalf("bookings recorded before settlement: %d", got)
	}

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) && len(svc.Confirmed()) == 0 {
		time.Sleep(5 * time.Millisecond)
	}

	confirmed := svc.Confirmed()
	if len(confirmed) != 1 {
		t.Fatalf("bookings = %d, want 1", len(confirmed))
	}
	if confirmed[0].Quote.TableName != "Club Booth" {
		t.Errorf("booked table = %q", confirmed[0].Quote.TableName)
	}

	found := false
	for _, n := range queue.Items() {
		if n.Title == "Table Secured! 🍾" {
			found = true
		}
	}
	if !found {
		t.Error("confirmation notification missing")
	}
}

func TestConfirmRejectsShortPhone(t *testing.T) {
	payments := payment.NewSimulatedDelay(time.Millisecond)
	defer payments.Close()
	queue := notify.NewQueue()
	defer queue.Close()

	svc := NewService(payments, queue)

	if _, err := svc.Confirm(Request{PartyID: "p2", TableID: "t1"}, "Neon Basement Rave", "12345"); err == nil || err.Code != errs.ErrPhoneInvalid {
		t.Fatalf("short phone: got %v, want code %d", err, errs.ErrPhoneInvalid)
	}
	time.Sleep(20 * time.Millisecond)
	if got := len(svc.Confirmed()); got != 0 {
		t.Errorf("bookings after rejected phone: %d", got)
	}
}
