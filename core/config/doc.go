// Package config provides type-safe environment variable loading with
// caching using Go generics. Each configuration type is loaded once and
// cached for subsequent calls.
//
// The package automatically loads .env files on first use and uses the
// caarlos0/env library for parsing environment variables into struct
// fields.
//
// Basic usage:
//
//	type PipelineConfig struct {
//		Debug bool `env:"PIPELINE_DEBUG" envDefault:"false"`
//	}
//
//	var cfg PipelineConfig
//	if err := config.Load(&cfg); err != nil {
//		log.Fatal(err)
//	}
//
// Each configuration type is loaded only once per application lifetime;
// different types are cached independently.
package config
