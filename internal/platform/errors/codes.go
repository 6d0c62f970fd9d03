// Package errors provides structured error handling for the portfolio.
package errors

import "net/http"

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Catalog errors
	CodeCatalogFetch    Code = "CATALOG_FETCH"
	CodeCatalogDecode   Code = "CATALOG_DECODE"
	CodeCatalogNotFound Code = "CATALOG_NOT_FOUND"
)

// HTTPStatus maps domain codes to HTTP status codes.
func (c Code) HTTPStatus() int {
	switch c {
	case CodeCatalogNotFound:
		return http.StatusNotFound
	case CodeCatalogFetch:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
