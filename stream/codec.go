package stream

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/monaa-go/monaa/ta"
)

// asciiDecoder reads one event per line in the "<char> <decimal>\n" format
// of spec.md section 6, with absolute, non-decreasing timestamps.
type asciiDecoder struct {
	scanner *bufio.Scanner
}

// NewASCIIDecoder returns a Decoder for the ASCII timed-word format.
func NewASCIIDecoder(r io.Reader) Decoder {
	return &asciiDecoder{scanner: bufio.NewScanner(r)}
}

func (d *asciiDecoder) Next() (ta.TimedSymbol, error) {
	if !d.scanner.Scan() {
		if err := d.scanner.Err(); err != nil {
			return ta.TimedSymbol{}, fmt.Errorf("stream: ascii decode: %w", err)
		}
		return ta.TimedSymbol{}, io.EOF
	}
	line := d.scanner.Text()
	fields := strings.Fields(line)
	if len(fields) != 2 || len(fields[0]) != 1 {
		return ta.TimedSymbol{}, fmt.Errorf("%w: %q", ErrMalformedRecord, line)
	}
	t, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return ta.TimedSymbol{}, fmt.Errorf("%w: %q", ErrMalformedRecord, line)
	}
	return ta.TimedSymbol{Symbol: ta.Alphabet(fields[0][0]), Time: t}, nil
}

// binaryDecoder reads one unframed record per event: a one-byte symbol
// followed by an 8-byte little-endian IEEE-754 double timestamp.
type binaryDecoder struct {
	r io.Reader
}

// NewBinaryDecoder returns a Decoder for the binary timed-word format.
func NewBinaryDecoder(r io.Reader) Decoder {
	return &binaryDecoder{r: r}
}

func (d *binaryDecoder) Next() (ta.TimedSymbol, error) {
	var rec [9]byte
	if _, err := io.ReadFull(d.r, rec[:]); err != nil {
		if err == io.ErrUnexpectedEOF {
			return ta.TimedSymbol{}, fmt.Errorf("%w: truncated binary record", ErrMalformedRecord)
		}
		return ta.TimedSymbol{}, err
	}
	bits := binary.LittleEndian.Uint64(rec[1:])
	return ta.TimedSymbol{Symbol: ta.Alphabet(rec[0]), Time: math.Float64frombits(bits)}, nil
}
