// Package hooks provides ready-made event hooks for the dispatch pipeline:
// structured request/response logging, request ID correlation, and
// Prometheus metrics.
//
// Each hook participates in the phases it declares; register them on a
// hook.Registry in the order the request phase should run:
//
//	reg := hook.NewRegistry()
//	reg.Add(hooks.RequestID())
//	reg.Add(hooks.Logging(log))
//	reg.Add(hooks.Metrics())
//	p := pipeline.New(r, pipeline.WithHooks(reg))
package hooks
