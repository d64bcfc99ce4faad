// internal/writers/brokenpipe.go
package writers

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"syscall"
)

// IsBrokenPipe reports whether err is a broken or closed pipe. Tables are
// long; downstream consumers (`head`, `less` quit early) close the pipe
// before the full table is written, and that is not a failure.
func IsBrokenPipe(err error) bool {
	return err != nil && (errors.Is(err, syscall.EPIPE) || errors.Is(err, io.ErrClosedPipe))
}

// Flush drains a buffered writer and translates the outcome into an exit
// code: 0 on success or broken pipe, 3 on any other write error.
func Flush(out *bufio.Writer, stderr io.Writer) int {
	err := out.Flush()
	if err == nil || IsBrokenPipe(err) {
		return 0
	}
	_, _ = fmt.Fprintln(stderr, err)
	return 3
}
