// Package http implements the JSON REST transport of the plant keeper.
//
// It wires chi routes for plants, journal entries, schedules, the dashboard
// and service endpoints, and applies request tracing, access logging,
// Prometheus metrics, gzip compression and a per-request timeout before
// handing requests to the service layer. Uploaded photos are served
// read-only under /uploads/.
package http
