// Package acl contains the quote provider adapters.
//
// Each provider speaks its own wire format. The adapters translate those
// payloads into domain.Quote values and every transport or status failure
// into a domain error, so nothing provider-specific leaks past this package.
//
// # Providers
//
//   - [QuotableProvider]: GET /random?tags=a|b|c, one of eight tag groups
//     chosen at random per request
//   - [TypeFitProvider]: GET /api/quotes once, then random picks from the
//     cached corpus
//   - [ZenQuotesProvider]: GET /api/random
//
// Providers without stable identifiers mint ids from the clock, so the same
// text fetched twice gets two ids. Recency checks do not catch those repeats.
//
// # Error mapping
//
// [MapHTTPError] translates responses and client failures:
//   - 404 → [domain.ErrNotFound]
//   - 400/422 → [domain.ErrValidation]
//   - 401/403 → [domain.ErrForbidden]
//   - 429, 5xx and transport failures → [domain.ErrUnavailable]
//
// Client-level errors ([clients.ErrCircuitOpen], [clients.ErrMaxRetriesExceeded])
// become [domain.ErrUnavailable] with the operation in the reason.
package acl
