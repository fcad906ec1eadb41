// Package resources holds the demo's texture files.
package resources

//go:generate go run generate.go
