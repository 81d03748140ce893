/*
Package errs provides custom error types and application-level error code constants.

This file defines the map from error codes to their CustomError template,
used to standardize HTTP responses and internal error handling.
*/
package errs

import "net/http"

// errorMap stores the CustomError template for every application error code.
// Entries without an explicit Status default to HTTP 200 with a business code.
var errorMap = map[int]CustomError{
	// 1xxx: General Request Handling Errors
	ErrInvalidParams:        {Code: ErrInvalidParams, Message: "Invalid request parameters."},
	ErrUnsupportedMediaType: {Code: ErrUnsupportedMediaType, Message: "Unsupported request format."},
	ErrInvalidJSONFormat:    {Code: ErrInvalidJSONFormat, Message: "Unsupported request format."},
	ErrExtraContentInBody:   {Code: ErrExtraContentInBody, Message: "Request contains unexpected data."},
	ErrRateLimitExceeded:    {Code: ErrRateLimitExceeded, Message: "Too many requests. Please try again later.", Status: http.StatusTooManyRequests},

	// 2xxx: Party, Radar, and Chat Business Logic Errors
	ErrPartyTitleRequired:   {Code: ErrPartyTitleRequired, Message: "Give your party a title first."},
	ErrPartyNotFound:        {Code: ErrPartyNotFound, Message: "That party is no longer on the radar."},
	ErrPartyFull:            {Code: ErrPartyFull, Message: "This party is at capacity."},
	ErrRatingOutOfRange:     {Code: ErrRatingOutOfRange, Message: "Ratings go from 1 to 5."},
	ErrRadiusUnsupported:    {Code: ErrRadiusUnsupported, Message: "Unsupported scan radius."},
	ErrNoOpenConversation:   {Code: ErrNoOpenConversation, Message: "Join a party to enter the squad chat."},
	ErrConversationNotFound: {Code: ErrConversationNotFound, Message: "Conversation not found."},
	ErrMessageEmpty:         {Code: ErrMessageEmpty, Message: "Message cannot be empty."},
	ErrTableOptionInvalid:   {Code: ErrTableOptionInvalid, Message: "Unknown table option."},
	ErrDrinkInvalid:         {Code: ErrDrinkInvalid, Message: "Unknown drink selection."},

	// 3xxx: Session, Profile, and Payment Errors
	ErrUnauthorized:      {Code: ErrUnauthorized, Message: "Please sign in to continue.", Status: http.StatusUnauthorized},
	ErrSessionNotFound:   {Code: ErrSessionNotFound, Message: "Session expired. Please sign in again.", Status: http.StatusUnauthorized},
	ErrProfileNotFound:   {Code: ErrProfileNotFound, Message: "Set up your profile to enter the radar."},
	ErrNameRequired:      {Code: ErrNameRequired, Message: "Pick a handle first."},
	ErrNameTaken:         {Code: ErrNameTaken, Message: "That handle is taken. Try another."},
	ErrPaymentNotPending: {Code: ErrPaymentNotPending, Message: "No payment is pending for this party."},
	ErrPaymentTokenStale: {Code: ErrPaymentTokenStale, Message: "This payment request is no longer valid."},
	ErrPhoneInvalid:      {Code: ErrPhoneInvalid, Message: "Enter a valid phone number."},
	ErrInviteInvalid:     {Code: ErrInviteInvalid, Message: "This invite link is invalid."},

	// 5xxx: Internal System Errors
	ErrUnknown:       {Code: ErrUnknown, Message: "Something went wrong. Please try again.", Status: http.StatusInternalServerError},
	ErrStorageFailed: {Code: ErrStorageFailed, Message: "Avatar upload failed. Please try again."},
}
