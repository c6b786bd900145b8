// ABOUTME: Package documentation for the HTTP API layer
// ABOUTME: Describes routing, middleware order, and error mapping

// Package server exposes the board over HTTP.
//
// # Routing
//
// Routes use Go 1.22 method patterns on the standard ServeMux. Public
// reads (post listings, post detail, comment threads, user profiles) need
// no credentials; mutations are gated per-route with auth.RequirePrincipal.
//
// # Middleware
//
// Every request passes through the CORS middleware and then the
// authentication middleware exactly once. The authentication middleware
// never rejects a request; it only attaches a principal when a valid
// bearer token is present. Handlers that need a caller identity enforce
// it themselves.
//
// # Error mapping
//
// Service errors map to statuses: validation failures are 400, missing
// credentials 401, ownership failures 403, missing entities 404, duplicate
// registrations 409. Anything else is logged and masked as a 500.
package server
