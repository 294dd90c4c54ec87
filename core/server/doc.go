// Package server wraps http.Server with graceful shutdown, environment
// configuration, and optional TLS, for serving a dispatch pipeline.
//
// Long-lived upgraded connections are not subject to the write timeout;
// set WriteTimeout to zero when serving websocket-heavy pipelines, or
// route them through a dedicated server instance.
package server
