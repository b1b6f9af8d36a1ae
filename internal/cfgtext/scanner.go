package cfgtext

import (
	"bytes"
	"fmt"
	"io"

	"github.com/orx/orx-sub008/pkg/ast"
	"github.com/orx/orx-sub008/pkg/types"
)

// Scanner reads a config stream line by line through a fixed-size buffer.
// When the buffer ends mid-line, the partial line is carried over to the
// front of the buffer before the next read, so memory use does not depend on
// the stream size. A line must fit in the buffer.
//
// Typical usage:
//
//	sc := cfgtext.NewScanner(r, cfgtext.DefaultChunkSize)
//	for sc.Scan() {
//		handle(sc.Node())
//	}
//	if err := sc.Err(); err != nil {
//		return err
//	}
type Scanner struct {
	r    io.Reader
	buf  []byte
	head int // first unconsumed byte
	tail int // end of buffered data
	eof  bool
	// pendingCR is set after a line ending in CR, so that a following LF
	// is not counted as an empty line.
	pendingCR bool

	line int
	node ast.Node
	err  error
}

// NewScanner returns a scanner over r with a buffer of size bytes.
func NewScanner(r io.Reader, size int) *Scanner {
	if size < MinChunkSize {
		size = MinChunkSize
	}
	return &Scanner{r: r, buf: make([]byte, size)}
}

// Scan advances to the next non-blank line. It returns false at the end of
// the stream or on error.
func (s *Scanner) Scan() bool {
	for {
		line, ok := s.nextLine()
		if !ok {
			s.node = nil
			return false
		}
		if n := ParseLine(line, s.line); n != nil {
			if a, ok := n.(*ast.Assignment); ok && a.Continues {
				s.joinContinuation(a)
			}
			s.node = n
			return true
		}
	}
}

// joinContinuation appends the following lines to a until one does not end
// with a list separator. Blank and comment lines are skipped.
func (s *Scanner) joinContinuation(a *ast.Assignment) {
	for a.Continues {
		line, ok := s.nextLine()
		if !ok {
			a.Continues = false
			return
		}
		part, more := plainValue(bytes.TrimLeft(line, " \t"))
		if part == "" {
			continue
		}
		a.Value += part
		a.Continues = more
	}
}

// Node returns the line read by the last Scan.
func (s *Scanner) Node() ast.Node { return s.node }

// Err returns the first non-EOF error.
func (s *Scanner) Err() error { return s.err }

// LineNo returns the number of lines read so far.
func (s *Scanner) LineNo() int { return s.line }

func (s *Scanner) nextLine() ([]byte, bool) {
	for s.err == nil {
		if s.pendingCR && s.head < s.tail {
			if s.buf[s.head] == LF {
				s.head++
			}
			s.pendingCR = false
		}

		window := s.buf[s.head:s.tail]
		if i := bytes.IndexAny(window, "\r\n"); i >= 0 {
			s.pendingCR = window[i] == CR
			s.head += i + 1
			s.line++
			return window[:i], true
		}

		if s.eof {
			if len(window) == 0 {
				return nil, false
			}
			// end of stream acts as a final line terminator
			s.head = s.tail
			s.line++
			return window, true
		}

		if s.head > 0 {
			s.tail = copy(s.buf, window)
			s.head = 0
		}
		if s.tail == len(s.buf) {
			s.err = fmt.Errorf("cfgtext: line %d: %w", s.line+1, types.ErrLineTooLong)
			return nil, false
		}
		n, err := s.r.Read(s.buf[s.tail:])
		s.tail += n
		if err == io.EOF {
			s.eof = true
		} else if err != nil {
			s.err = err
		}
	}
	return nil, false
}
