// Package timeouts defines shared timeout constants used by the host.
// Centralizing these values keeps the durations discoverable.
package timeouts

import "time"

// ReadHeader limits how long an HTTP server waits for request headers.
const ReadHeader = 5 * time.Second

// Shutdown limits how long an HTTP server waits for in-flight requests
// during graceful shutdown. It also bounds the telemetry flush.
const Shutdown = 5 * time.Second

// CatalogDebounce collapses bursts of catalog file events into one check.
const CatalogDebounce = 250 * time.Millisecond
