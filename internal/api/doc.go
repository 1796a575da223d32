// Package api handles incoming HTTP requests, request decoding, and
// response formatting. It acts as an adapter between external clients and
// the internal account service, translating HTTP concerns to business
// operations.
package api
