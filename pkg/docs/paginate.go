package docs

import "fmt"

// Paginate returns the window of text starting at startIndex and at most
// maxLength long. Positions count unicode characters, not bytes, so a
// window never splits a multi-byte character.
func Paginate(text string, startIndex, maxLength int) (PaginatedResult, error) {
	if startIndex < 0 {
		return PaginatedResult{}, fmt.Errorf("%w: start index %d is negative", ErrInvalidRange, startIndex)
	}
	if maxLength <= 0 {
		return PaginatedResult{}, fmt.Errorf("%w: max length %d is not positive", ErrInvalidRange, maxLength)
	}

	runes := []rune(text)
	total := len(runes)
	if startIndex >= total {
		return PaginatedResult{}, fmt.Errorf("%w: start index %d exceeds document length %d", ErrInvalidRange, startIndex, total)
	}

	end := startIndex + maxLength
	if end > total {
		end = total
	}

	return PaginatedResult{
		Content: string(runes[startIndex:end]),
		HasMore: end < total,
	}, nil
}
