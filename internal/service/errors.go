package service

import (
	"errors"
	"fmt"
	"strconv"
)

var (
	ErrInvalidID = errors.New("invalid id")

	// errIDOutOfRange marks integers too large for any stored row
	errIDOutOfRange = errors.New("id out of range")
)

// parseID validates a raw path identifier before any query runs.
// Non-integers give ErrInvalidID; integers beyond int64 give errIDOutOfRange.
func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if errors.Is(err, strconv.ErrRange) {
		return 0, fmt.Errorf("%w: %s", errIDOutOfRange, raw)
	}
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidID, raw)
	}
	return id, nil
}
