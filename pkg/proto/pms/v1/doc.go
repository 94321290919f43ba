// Package v1 contains the Go types generated from pms.proto.
package v1

//go:generate protoc -I ../.. --go_out=paths=source_relative:../.. pms/v1/pms.proto
