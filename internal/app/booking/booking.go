/*
Package booking implements table reservations for a party.

A quote combines a reservation fee (a deposit of one tenth of the table's
minimum spend) with the drinks cart total, optionally split between
attendees. Confirmation is gated behind the payment collaborator the same
way paid party entry is.
*/
package booking

import (
	"math"
	"sync"

	"github.com/rs/zerolog"

	"ukoradar/internal/app/notify"
	"ukoradar/internal/app/payment"
	"ukoradar/internal/pkg/errs"
	"ukoradar/internal/pkg/logx"
	"ukoradar/internal/pkg/randx"
)

// ReservationFeeRate is the deposit fraction of a table's minimum spend.
const ReservationFeeRate = 0.1

// TableOption is one reservable table tier.
type TableOption struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Seats    int    `json:"seats"`
	MinSpend int    `json:"minSpend"`
}

// Drink is one bottle-menu entry.
type Drink struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Price int    `json:"price"`
	Image string `json:"image"`
}

// TableOptions is the fixed table menu.
func TableOptions() []TableOption {
	return []TableOption{
		{ID: "t1", Name: "High Table", Seats: 2, MinSpend: 3000},
		{ID: "t2", Name: "Club Booth", Seats: 4, MinSpend: 10000},
		{ID: "t3", Name: "V.I.P Section", Seats: 8, MinSpend: 25000},
	}
}

// DrinkMenu is the fixed bottle menu.
func DrinkMenu() []Drink {
	return []Drink{
		{ID: "d1", Name: "Hennessy VS", Price: 8500, Image: "https://images.unsplash.com/photo-1619451328014-998858e8749a?auto=format&fit=crop&q=80&w=200"},
		{ID: "d2", Name: "Moët & Chandon", Price: 12000, Image: "https://images.unsplash.com/photo-1598155523122-38423bd4d6bc?auto=format&fit=crop&q=80&w=200"},
		{ID: "d3", Name: "Cîroc Vodka", Price: 6000, Image: "https://images.unsplash.com/photo-1608649983794-6d9b3d0728c7?auto=format&fit=crop&q=80&w=200"},
		{ID: "d4", Name: "Gilbeys Gin", Price: 3500, Image: "https://images.unsplash.com/photo-1620027664875-10874bc9338b?auto=format&fit=crop&q=80&w=200"},
		{ID: "d5", Name: "Tequila Shots (6)", Price: 2500, Image: "https://images.unsplash.com/photo-1516535794938-6063878f08cc?auto=format&fit=crop&q=80&w=200"},
	}
}

// Request selects a table and a drinks cart for a party.
type Request struct {
	PartyID    string         `json:"partyId"`
	TableID    string         `json:"tableId"`
	Hours      int            `json:"hours"`
	Cart       map[string]int `json:"cart"`
	SplitCount int            `json:"splitCount"`
}

// Quote is the priced breakdown of a Request.
type Quote struct {
	PartyID        string  `json:"partyId"`
	TableID        string  `json:"tableId"`
	TableName      string  `json:"tableName"`
	Hours          int     `json:"hours"`
	ReservationFee float64 `json:"reservationFee"`
	DrinksTotal    int     `json:"drinksTotal"`
	Total          float64 `json:"total"`
	SplitCount     int     `json:"splitCount"`
	CostPerPerson  int     `json:"costPerPerson"`
}

// Price turns a Request into a Quote. Unknown tables and unknown cart
// entries are rejected rather than priced at zero.
func Price(req Request) (Quote, *errs.CustomError) {
	var table *TableOption
	for _, t := range TableOptions() {
		if t.ID == req.TableID {
			tt := t
			table = &tt
			break
		}
	}
	if table == nil {
		return Quote{}, errs.NewError(errs.ErrTableOptionInvalid)
	}

	drinkPrices := make(map[string]int)
	for _, d := range DrinkMenu() {
		drinkPrices[d.ID] = d.Price
	}

	drinksTotal := 0
	for id, qty := range req.Cart {
		price, ok := drinkPrices[id]
		if !ok {
			return Quote{}, errs.NewError(errs.ErrDrinkInvalid)
		}
		if qty < 0 {
			return Quote{}, errs.NewError(errs.ErrDrinkInvalid)
		}
		drinksTotal += price * qty
	}

	hours := req.Hours
	if hours <= 0 {
		hours = 3
	}

	split := req.SplitCount
	if split <= 0 {
		split = 1
	}

	reservationFee := float64(table.MinSpend) * ReservationFeeRate
	total := reservationFee + float64(drinksTotal)

	return Quote{
		PartyID:        req.PartyID,
		TableID:        table.ID,
		TableName:      table.Name,
		Hours:          hours,
		ReservationFee: reservationFee,
		DrinksTotal:    drinksTotal,
		Total:          total,
		SplitCount:     split,
		CostPerPerson:  int(math.Ceil(total / float64(split))),
	}, nil
}

// Booking is a confirmed reservation.
type Booking struct {
	ID    string `json:"id"`
	Quote Quote  `json:"quote"`
	Phone string `json:"phone"`
}

// Service confirms bookings through the payment collaborator.
type Service struct {
	mu       sync.Mutex
	payments payment.Processor
	queue    *notify.Queue

	// confirmed is the append-only log of settled bookings.
	confirmed []Booking

	// pendingTokens maps a payment token to its quoted booking.
	pendingTokens map[string]Booking

	logger zerolog.Logger
}

// NewService wires a booking Service over the session's collaborators.
func NewService(payments payment.Processor, queue *notify.Queue) *Service {
	return &Service{
		payments:      payments,
		queue:         queue,
		pendingTokens: make(map[string]Booking),
		logger:        logx.Logger().With().Str("component", "BookingService").Logger(),
	}
}

// Confirm prices the request and starts the payment for it. The booking is
// recorded only when the payment settles.
func (s *Service) Confirm(req Request, partyTitle, phone string) (Quote, *errs.CustomError) {
	quote, err := Price(req)
	if err != nil {
		return Quote{}, err
	}

	token, err := s.payments.Begin(req.PartyID, partyTitle, int(quote.Total), phone, s.onSettled)
	if err != nil {
		return Quote{}, err
	}

	s.mu.Lock()
	s.pendingTokens[token] = Booking{ID: randx.EntityID(), Quote: quote, Phone: phone}
	s.mu.Unlock()

	return quote, nil
}

func (s *Service) onSettled(r payment.Result) {
	s.mu.Lock()
	b, ok := s.pendingTokens[r.Token]
	if ok {
		delete(s.pendingTokens, r.Token)
		if r.OK {
			s.confirmed = append(s.confirmed, b)
		}
	}
	s.mu.Unlock()

	if !ok {
		return
	}

	if !r.OK {
		s.queue.Push("Booking Failed", "The reservation payment did not go through.", notify.TypeAlert)
		return
	}

	s.queue.Push("Table Secured! 🍾", b.Quote.TableName+" reserved. See you there.", notify.TypeSuccess)
	s.logger.Info().Str("booking_id", b.ID).Str("table", b.Quote.TableName).Msg("Booking confirmed.")
}

// Confirmed returns a copy of the settled bookings.
func (s *Service) Confirmed() []Booking {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]Booking(nil), s.confirmed...)
}
