package pgcopy

import (
	"bufio"
	"io"
)

// byteLatinEAcute is the Latin-1 encoding of 'É' seen in legacy extracts
// (street names like "ÉTOILE"); it is mapped to a plain 'e' so the file
// stays valid UTF-8 for COPY.
const byteLatinEAcute = 0xC9

// SanitizingReader filters a delimited file's byte stream:
//   - 0xC9 is replaced with 'e'
//   - NUL bytes are dropped
//   - everything else passes through unchanged
type SanitizingReader struct {
	br *bufio.Reader
}

// NewSanitizingReader wraps r with the byte-level fixups.
func NewSanitizingReader(r io.Reader) *SanitizingReader {
	return &SanitizingReader{br: bufio.NewReader(r)}
}

// Read implements io.Reader.
func (s *SanitizingReader) Read(p []byte) (int, error) {
	n := 0
	for n < len(p) {
		b, err := s.br.ReadByte()
		if err != nil {
			if err == io.EOF && n > 0 {
				return n, nil
			}
			return n, err
		}

		switch b {
		case 0x00:
			// dropped
		case byteLatinEAcute:
			p[n] = 'e'
			n++
		default:
			p[n] = b
			n++
		}
	}
	return n, nil
}
