// Package errors provides structured error types for better observability
// and programmatic error handling across the application.
//
// Every fallible recipe operation reports a *StructuredError whose Code is
// one of a closed set (ErrCodeInvalidRatio, ErrCodeInsufficientFlour, ...),
// whose Message embeds the offending values for direct display, and whose
// Context carries the same values as data.
//
// Example usage:
//
//	err := errors.NewWithContext(
//	    errors.ErrCodeInsufficientFlour,
//	    fmt.Sprintf("insufficient flour: available %s, requested %s", available, requested),
//	    map[string]any{
//	        "available": available.String(),
//	        "requested": requested.String(),
//	    },
//	)
//
//	if errors.IsCode(err, errors.ErrCodeInsufficientFlour) {
//	    // reduce the preferment portion and retry
//	}
package errors
