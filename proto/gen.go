// Package proto holds the wire schema of the storage node and the
// checked-in code generated from it. The .proto files are the contract
// shared with client applications and must not change incompatibly.
package proto

//go:generate protoc --go_out=plugins=grpc:. --go_opt=paths=source_relative storage.proto info.proto
