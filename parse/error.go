package parse

import (
	"fmt"
	"strings"
)

// Error is a syntax error. Pos is the byte offset into Src.
type Error struct {
	Src string
	Pos int
	Msg string
}

// Error renders the message followed by the offending line and a caret
// under the error position.
func (e *Error) Error() string {
	start := strings.LastIndexByte(e.Src[:e.Pos], '\n') + 1
	end := strings.IndexByte(e.Src[e.Pos:], '\n')
	if end < 0 {
		end = len(e.Src)
	} else {
		end += e.Pos
	}
	return fmt.Sprintf("%s\n%s\n%s^", e.Msg, e.Src[start:end], strings.Repeat(" ", e.Pos-start))
}
