// Package server holds the HTTP server configuration of the puzzle gateway.
//
// The start command builds the Fiber application; this package only defines the
// settings it reads (listen host and port, request body limit).
package server
