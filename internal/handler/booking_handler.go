/*
Package handler provides HTTP handler functions for table bookings.
*/
package handler

import (
	"net/http"

	"ukoradar/internal/app/booking"
	"ukoradar/internal/pkg/errs"
	"ukoradar/internal/pkg/req"
	"ukoradar/internal/pkg/resp"
)

// HandleBookingOptions returns the table tiers and the bottle menu.
func HandleBookingOptions(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, _, customErr := viewerSession(deps, r); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		resp.RespondSuccess(w, r, map[string]any{
			"tables": booking.TableOptions(),
			"drinks": booking.DrinkMenu(),
		})
	}
}

// HandleBookingQuote prices a table selection without committing to it.
func HandleBookingQuote(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, _, customErr := viewerSession(deps, r); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		var input booking.Request
		if customErr := req.BindJSON(r, &input); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		quote, customErr := booking.Price(input)
		if customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		resp.RespondSuccess(w, r, quote)
	}
}

type BookingConfirmInput struct {
	booking.Request
	Phone string `json:"phone"`
}

// HandleBookingConfirm prices the request and starts the reservation
// payment. The booking lands once the payment settles.
func HandleBookingConfirm(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, _, customErr := viewerSession(deps, r)
		if customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		var input BookingConfirmInput
		if customErr := req.BindJSON(r, &input); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		p, ok := sess.Store.GetParty(input.PartyID)
		if !ok {
			resp.RespondError(w, r, errs.NewError(errs.ErrPartyNotFound))
			return
		}

		quote, customErr := sess.Bookings.Confirm(input.Request, p.Title, input.Phone)
		if customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		resp.RespondSuccess(w, r, quote)
	}
}
