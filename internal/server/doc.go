// Package server provides the HTTP layer: routing, request validation,
// session handling for the admin area, and JSON rendering. Business rules
// live in the app package; handlers only translate between HTTP and the
// application service.
package server
