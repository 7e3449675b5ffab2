// Package utils provides internal utility functions for the rail ticket query service.
// This package is not intended to be imported by external code.
//
// It contains:
//   - Service time zone loading
//   - Calendar date parsing and formatting
//   - The not-before-today date check
package utils
