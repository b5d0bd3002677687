// Package mapper holds generic slice mapping helpers used by DTO and
// persistence mappers.
package mapper

import "fmt"

// MapSlice applies mapFunc to each element. Returns nil for a nil input.
func MapSlice[T any, R any](items []T, mapFunc func(T) R) []R {
	if items == nil {
		return nil
	}

	result := make([]R, 0, len(items))
	for _, item := range items {
		result = append(result, mapFunc(item))
	}
	return result
}

// MapSliceWithError applies mapFunc to each element, stopping at the first error.
func MapSliceWithError[T any, R any](items []T, mapFunc func(T) (R, error)) ([]R, error) {
	if items == nil {
		return nil, nil
	}

	result := make([]R, 0, len(items))
	for i, item := range items {
		mapped, err := mapFunc(item)
		if err != nil {
			return nil, fmt.Errorf("map item %d: %w", i, err)
		}
		result = append(result, mapped)
	}
	return result, nil
}
