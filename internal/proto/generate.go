// Package proto holds the authgate.v1 wire schema. The generated code is
// produced by protoc; run go generate with protoc, protoc-gen-go and
// protoc-gen-go-grpc on PATH.
package proto

//go:generate protoc --go_out=. --go_opt=paths=source_relative --go-grpc_out=. --go-grpc_opt=paths=source_relative authgate.proto
