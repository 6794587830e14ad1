// Package proto holds the wire schemas of edgebot.
package proto

//go:generate protoc --go_out=. --go_opt=paths=source_relative edgebot/telemetry/v1/telemetry.proto
