package term

import (
	"io"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/sys/unix"
)

// SetInputDelay bounds how long ReadKey blocks when no key is pressed, via
// termios VMIN=0/VTIME. VTIME counts in tenths of a second, so the effective
// delay is d rounded down to a decisecond (minimum one).
func (s *Screen) SetInputDelay(d time.Duration) error {
	fd := int(s.in.Fd())

	tio, err := unix.IoctlGetTermios(fd, unix.TCGETS)
	if err != nil {
		return errors.Wrap(err, "[SetInputDelay] failed to fetch termios state")
	}

	tio.Cc[unix.VMIN] = 0
	tio.Cc[unix.VTIME] = uint8(max(1, d/(100*time.Millisecond)))
	if err = unix.IoctlSetTermios(fd, unix.TCSETS, tio); err != nil {
		return errors.Wrap(err, "[SetInputDelay] failed to apply termios state")
	}
	return nil
}

// ReadKey waits up to the configured input delay for a single key press.
// ok is false when the delay elapsed with no input; a zero-byte read (which
// the os package surfaces as io.EOF) is exactly that case, since raw mode
// delivers Ctrl-D as an ordinary byte rather than end-of-input.
func (s *Screen) ReadKey() (key byte, ok bool, err error) {
	var buf [1]byte
	n, err := s.in.Read(buf[:])
	if n == 1 {
		return buf[0], true, nil
	}
	if err == nil || errors.Is(err, io.EOF) {
		return 0, false, nil
	}
	return 0, false, errors.Wrap(err, "[ReadKey] failed to read key press")
}
