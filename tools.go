//go:build tools
// +build tools

package tools

// Pins the versions of the lint, migration, API doc and benchmark
// comparison tools run via `go run`.

import (
	_ "github.com/golangci/golangci-lint/cmd/golangci-lint"
	_ "github.com/pressly/goose/v3/cmd/goose"
	_ "github.com/swaggo/swag/cmd/swag"
	_ "golang.org/x/perf/cmd/benchstat"
)
