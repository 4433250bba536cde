package nds

import "errors"

// Errors reported by Open. I/O failures are returned wrapped with context
// about the failed operation; these two sentinels cover the domain
// conditions a caller is expected to act on.
var (
	// ErrMalformedHeader indicates a header or logo checksum mismatch. The
	// file is not a recognized ROM image or is corrupted.
	ErrMalformedHeader = errors.New("malformed header")

	// ErrAlreadyTrimmed indicates the file has no padding beyond its
	// computed content size. This is an expected terminal condition, not a
	// corruption signal.
	ErrAlreadyTrimmed = errors.New("already trimmed")
)

// IsMalformedHeader returns true if err is, or wraps, ErrMalformedHeader.
func IsMalformedHeader(err error) bool {
	return errors.Is(err, ErrMalformedHeader)
}

// IsAlreadyTrimmed returns true if err is, or wraps, ErrAlreadyTrimmed.
func IsAlreadyTrimmed(err error) bool {
	return errors.Is(err, ErrAlreadyTrimmed)
}
