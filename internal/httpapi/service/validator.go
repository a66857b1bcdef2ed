package service

import (
	"fmt"
	"strconv"
	"strings"
)

// inputSeparator splits combined inputs like "Title/Author" and "bookId/readerId".
const inputSeparator = "/"

// ValidateSingleID checks that s is a positive integer literal.
func ValidateSingleID(s string) error {
	id, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil || id <= 0 {
		return fmt.Errorf("%w: id must be a positive integer, got %q", ErrInvalidID, s)
	}
	return nil
}

// ValidateName checks that s is not blank.
func ValidateName(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%w: name must not be blank", ErrInvalidName)
	}
	return nil
}

// ValidateBookTitle checks that s is not blank.
func ValidateBookTitle(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%w: book title must not be blank", ErrInvalidBookTitle)
	}
	return nil
}

// ValidateNewBookInput checks that s splits into exactly two non-blank
// segments, title and author.
func ValidateNewBookInput(s string) error {
	parts := strings.Split(s, inputSeparator)
	if len(parts) != 2 || strings.TrimSpace(parts[0]) == "" || strings.TrimSpace(parts[1]) == "" {
		return fmt.Errorf("%w: expected \"title%sauthor\", got %q", ErrInvalidInputFormat, inputSeparator, s)
	}
	return nil
}

// ValidateBorrowInput checks that s splits into exactly two positive integer
// literals, book id and reader id.
func ValidateBorrowInput(s string) error {
	parts := strings.Split(s, inputSeparator)
	if len(parts) != 2 {
		return fmt.Errorf("%w: expected \"bookId%sreaderId\", got %q", ErrInvalidInputFormat, inputSeparator, s)
	}
	for _, p := range parts {
		if id, err := strconv.ParseInt(strings.TrimSpace(p), 10, 64); err != nil || id <= 0 {
			return fmt.Errorf("%w: ids must be positive integers, got %q", ErrInvalidInputFormat, s)
		}
	}
	return nil
}
