// Package bench carries the scenario-framework conventions consumed by the
// service layers and scenario helpers: run-scoped resource naming, atomic
// action timing, CIDR allocation, the wait-for-status primitive, and the
// framework error types.
package bench
