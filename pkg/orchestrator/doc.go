// Package orchestrator wires the schema loader, projector and renderer
// registry into a single request/response pipeline for serving forms.
package orchestrator
