// Package http implements the HTTP transport of the note store.
//
// It exposes route wiring, request handlers and middleware used by the JSON
// API. Request tracing, access logging and response compression are handled
// here before requests are delegated to the service layer.
package http
