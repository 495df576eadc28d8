// SPDX-License-Identifier: MIT

package codec

import (
	"errors"
	"fmt"
)

var (
	// ErrSyntax indicates a malformed expression line.
	ErrSyntax = errors.New("codec: syntax error")

	// ErrTruncated indicates a key line without its expression line.
	ErrTruncated = errors.New("codec: truncated entry")

	// ErrInvalidKey rejects keys that are empty or span lines.
	ErrInvalidKey = errors.New("codec: invalid key")

	// ErrNilOperator rejects entries without an operator.
	ErrNilOperator = errors.New("codec: nil operator")
)

const (
	opWrite = "Write"
	opRead  = "Read"
)

func codecErrorf(op string, line int, err error) error {
	return fmt.Errorf("%s: line %d: %w", op, line, err)
}
