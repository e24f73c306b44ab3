// Package httpapi serves a single dispenser.Machine over HTTP with chi.
//
// Each request is one stimulus and the response reports what it did:
//
//	$ curl -X POST localhost:8080/payment
//	{"stimulus":"insert-payment","from":"no_payment","state":"has_payment","inventory":1,"messages":["payment accepted"],"dispensed":false}
//
// Every request gets an X-Request-ID (reused from the client when well
// formed). Pass RequestIDExtractor to logger.WithContextExtractors so access
// logs and machine logs carry it.
//
// Errors are JSON bodies of the form {"error":{"code":"...","message":"..."}}.
// Only routing problems produce them; the machine never rejects a known stimulus.
package httpapi
