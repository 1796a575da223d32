// Package mocks provides centralized mock implementations for testing.
//
// Each mock implements one interface with function fields for per-test
// behavior and a sensible map-backed default, so tests across packages
// share one implementation instead of redefining inline mocks.
package mocks
