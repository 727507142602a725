// Package acl is the anti-corruption layer between the rashi service and its
// two downstreams. External DTOs stay unexported here; callers only see
// domain types and domain errors.
//
// Adapters:
//
//   - [Nominatim] implements ports.Geocoder (GET /search, rate limited,
//     mandatory User-Agent).
//   - [Astrology] implements ports.AstrologyGateway (POST /planets with an
//     x-api-key header).
//
// Both also implement ports.HealthChecker for the readiness endpoint.
//
// # Error translation
//
// [MapClientError] turns client failures into domain errors:
//
//   - non-2xx           -> domain.GatewayError carrying the status
//   - circuit open      -> domain.GatewayError
//   - transport failure -> domain.GatewayError
//   - cancellation      -> returned unchanged
//
// A missing API key is reported as domain.MisconfiguredError before any
// request is made.
//
// # Planets decoding
//
// [DecodePlanets] reads the moon position from either known response layout
// and reports which one matched as domain.PlanetsShape. It never returns an
// error; an unrecognized body is a reading with ShapeUnrecognized, which the
// application layer turns into domain.ErrMoonSignNotFound.
package acl
