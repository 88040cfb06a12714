// Package http contains the HTTP handlers of the REST API. Handlers stay
// thin: they decode and validate the request, delegate to the service layer,
// and render either a JSON payload or an RFC 7807 problem document.
package http
