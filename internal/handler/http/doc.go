// Package http serves the travel journal web pages.
//
// Pages are rendered on the server with html/template and submitted as plain
// HTML forms. Every protected page resolves the browser session through the
// session middleware, reads through the service layer, validates submitted
// forms before any write, and redirects on success. Open pages listen on
// /events for Server-Sent Events so trip lists, statistics and the navbar
// refresh without polling.
//
// Tracing, access logging and response compression are handled by the
// middlewares in this package before a request reaches a page handler.
package http
