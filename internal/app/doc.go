// Package app assembles the application: configuration, logger, services,
// router, and the HTTP server lifecycle.
package app
