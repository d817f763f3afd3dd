//go:build tools

// Package tools pins the code generator and the migration CLI so that
// `go generate ./...` and `go run github.com/pressly/goose/v3/cmd/goose`
// use the versions recorded in go.mod.
package tools

import (
	_ "github.com/oapi-codegen/oapi-codegen/v2/cmd/oapi-codegen"
	_ "github.com/pressly/goose/v3/cmd/goose"
)
