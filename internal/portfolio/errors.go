// Package portfolio loads and normalizes portfolio items, legacy projects and skill catalogs from JSON files.
package portfolio

import "fmt"

// LoadError represents an error during file I/O or JSON parsing
type LoadError struct {
	Message string
	Cause   error
}

func (e *LoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("load error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("load error: %s", e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}

// NormalizationError represents invalid content found while normalizing
type NormalizationError struct {
	Message string
}

func (e *NormalizationError) Error() string {
	return fmt.Sprintf("normalization error: %s", e.Message)
}
