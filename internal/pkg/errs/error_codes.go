/*
Package errs provides custom error types and application-level error code constants.

These error codes identify specific business or system errors both internally
and in responses sent to clients.
*/
package errs

// 1xxx: General Request Handling Errors
const (
	// ErrInvalidParams indicates that request parameter validation failed.
	ErrInvalidParams = 1001

	// ErrUnsupportedMediaType indicates that the request Content-Type is not supported.
	ErrUnsupportedMediaType = 1002

	// ErrInvalidJSONFormat indicates that the request body JSON is malformed.
	ErrInvalidJSONFormat = 1003

	// ErrExtraContentInBody indicates that the request body contained extra content after valid JSON.
	ErrExtraContentInBody = 1004

	// ErrRateLimitExceeded indicates that the request rate exceeded the configured limit.
	ErrRateLimitExceeded = 1005
)

// 2xxx: Party, Radar, and Chat Business Logic Errors
const (
	// ErrPartyTitleRequired indicates a party create request with an empty title.
	ErrPartyTitleRequired = 2101

	// ErrPartyNotFound indicates that the referenced party does not exist.
	ErrPartyNotFound = 2102

	// ErrPartyFull indicates that the party has reached its capacity.
	ErrPartyFull = 2103

	// ErrRatingOutOfRange indicates a hype or safety score outside 1-5.
	ErrRatingOutOfRange = 2105

	// ErrRadiusUnsupported indicates a scan radius outside the supported set.
	ErrRadiusUnsupported = 2201

	// ErrNoOpenConversation indicates a message send with no conversation open.
	ErrNoOpenConversation = 2301

	// ErrConversationNotFound indicates that the referenced conversation does not exist.
	ErrConversationNotFound = 2302

	// ErrMessageEmpty indicates a message send with no text.
	ErrMessageEmpty = 2303

	// ErrTableOptionInvalid indicates an unknown table option in a booking request.
	ErrTableOptionInvalid = 2401

	// ErrDrinkInvalid indicates an unknown drink id in a booking cart.
	ErrDrinkInvalid = 2402
)

// 3xxx: Session, Profile, and Payment Errors
const (
	// ErrUnauthorized indicates a missing or invalid session token.
	ErrUnauthorized = 3001

	// ErrSessionNotFound indicates that the session expired or was torn down.
	ErrSessionNotFound = 3002

	// ErrProfileNotFound indicates that no onboarded profile exists for the viewer.
	ErrProfileNotFound = 3003

	// ErrNameRequired indicates an onboarding request with an empty display name.
	ErrNameRequired = 3004

	// ErrNameTaken indicates that the requested display name is already in use.
	ErrNameTaken = 3005

	// ErrPaymentNotPending indicates a confirmation for a party with no pending payment.
	ErrPaymentNotPending = 3101

	// ErrPaymentTokenStale indicates a confirmation carrying an invalidated payment token.
	ErrPaymentTokenStale = 3102

	// ErrPhoneInvalid indicates a payment request with a malformed phone number.
	ErrPhoneInvalid = 3103

	// ErrInviteInvalid indicates a deep-link invite with missing or unknown references.
	ErrInviteInvalid = 3201
)

// 5xxx: Internal System Errors
const (
	// ErrUnknown represents an unclassified internal server error.
	ErrUnknown = 5000

	// ErrStorageFailed indicates a failure talking to the avatar object store.
	ErrStorageFailed = 5001
)
