package protocol

import "errors"

var (
	ErrMessageTooLong   = errors.New("protocol: message too long")
	ErrTruncatedFrame   = errors.New("protocol: truncated frame")
	ErrChecksumMismatch = errors.New("protocol: checksum mismatch")
)
