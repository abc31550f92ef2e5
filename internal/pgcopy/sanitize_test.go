package pgcopy

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sanitize(t *testing.T, input []byte) []byte {
	t.Helper()
	out, err := io.ReadAll(NewSanitizingReader(bytes.NewReader(input)))
	require.NoError(t, err)
	return out
}

func TestSanitizingReader_PassThrough(t *testing.T) {
	input := []byte("ADDRESS_DETAIL_PID|DATE_CREATED\nGAVIC1234|2004-05-30\n")
	assert.Equal(t, input, sanitize(t, input))
}

func TestSanitizingReader_MapsLatinEAcute(t *testing.T) {
	input := []byte{'C', 'A', 'F', 0xC9}
	assert.Equal(t, []byte("CAFe"), sanitize(t, input))
}

func TestSanitizingReader_DropsNULs(t *testing.T) {
	input := []byte{'a', 0x00, 'b', 0x00, 0x00, 'c'}
	assert.Equal(t, []byte("abc"), sanitize(t, input))
}

func TestSanitizingReader_Empty(t *testing.T) {
	assert.Empty(t, sanitize(t, nil))
}

func TestSanitizingReader_OnlyNULs(t *testing.T) {
	assert.Empty(t, sanitize(t, []byte{0x00, 0x00}))
}

func TestSanitizingReader_SmallDestinationBuffer(t *testing.T) {
	r := NewSanitizingReader(strings.NewReader("hello"))

	buf := make([]byte, 2)
	var got []byte
	for {
		n, err := r.Read(buf)
		got = append(got, buf[:n]...)
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
	}
	assert.Equal(t, "hello", string(got))
}
