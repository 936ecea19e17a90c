// Package validation provides common validation utilities for operator
// arguments across the seqflow library.
//
// This package offers reusable validation functions that help ensure
// consistent error messages and reduce boilerplate code in operators
// checking their inputs before any traversal starts.
package validation
