// Package logger provides slog construction and nil-safe attribute
// helpers shared across the module.
//
// Attribute helpers use the empty Attr pattern for nil safety: calls like
// log.Error("msg", logger.Error(err)) need no explicit nil checks, because
// a nil error yields an empty Attr that slog drops.
package logger
