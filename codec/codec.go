// SPDX-License-Identifier: MIT

package codec

import (
	"bufio"
	"io"
	"strings"

	"github.com/katalvlaran/qualg/operator"
)

// maxLine bounds a single expression line; large POVM elements print long.
const maxLine = 64 << 20

// Entry is one named operator.
type Entry struct {
	Key string
	Op  *operator.Operator
}

// Write emits every entry as a key line and an expression line.
//
// Errors: ErrInvalidKey, ErrNilOperator, or the writer's error.
func Write(w io.Writer, entries []Entry) error {
	bw := bufio.NewWriter(w)
	for i, e := range entries {
		line := 2*i + 1
		if strings.TrimSpace(e.Key) == "" || strings.ContainsAny(e.Key, "\r\n") {
			return codecErrorf(opWrite, line, ErrInvalidKey)
		}
		if e.Op == nil {
			return codecErrorf(opWrite, line+1, ErrNilOperator)
		}
		if _, err := bw.WriteString(e.Key + "\n" + e.Op.GoString() + "\n"); err != nil {
			return codecErrorf(opWrite, line, err)
		}
	}
	return bw.Flush()
}

// Read parses entries written by Write. Blank lines between entries are
// ignored.
//
// Errors: ErrSyntax, ErrTruncated, or the reader's error.
func Read(r io.Reader) ([]Entry, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64<<10), maxLine)

	var (
		out     []Entry
		key     string
		keyLine int
		lineNo  int
	)
	for sc.Scan() {
		lineNo++
		text := strings.TrimRight(sc.Text(), "\r")
		if key == "" {
			if strings.TrimSpace(text) == "" {
				continue
			}
			key, keyLine = text, lineNo
			continue
		}
		op, err := parseOperator(text)
		if err != nil {
			return nil, codecErrorf(opRead, lineNo, err)
		}
		out = append(out, Entry{Key: key, Op: op})
		key = ""
	}
	if err := sc.Err(); err != nil {
		return nil, codecErrorf(opRead, lineNo, err)
	}
	if key != "" {
		return nil, codecErrorf(opRead, keyLine, ErrTruncated)
	}
	return out, nil
}
