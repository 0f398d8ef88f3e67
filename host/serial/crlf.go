package serial

import "io"

// CRStripper forwards everything except carriage returns. The console
// sends LF then CR; a host terminal only wants the LF.
type CRStripper struct {
	W   io.Writer
	buf []byte
}

func (s *CRStripper) Write(p []byte) (int, error) {
	s.buf = s.buf[:0]
	for _, b := range p {
		if b != '\r' {
			s.buf = append(s.buf, b)
		}
	}
	if len(s.buf) == 0 {
		return len(p), nil
	}
	if _, err := s.W.Write(s.buf); err != nil {
		return 0, err
	}
	return len(p), nil
}

// LineEndings converts host line feeds into the carriage returns the
// console's line reader expects.
type LineEndings struct {
	W   io.Writer
	buf []byte
}

func (l *LineEndings) Write(p []byte) (int, error) {
	l.buf = l.buf[:0]
	for _, b := range p {
		if b == '\n' {
			b = '\r'
		}
		l.buf = append(l.buf, b)
	}
	if _, err := l.W.Write(l.buf); err != nil {
		return 0, err
	}
	return len(p), nil
}
