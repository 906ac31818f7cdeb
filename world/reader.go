package world

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Load reads a map from path. Files ending in .map use the text format read by
// Read, image files (.png, .bmp, .gif) are decoded as colour-coded levels by
// ReadImage. Failures are returned as *ReadError.
func Load(path string, logger *log.Logger) (*Map, error) {
	logger.Printf("loading map at %s", path)

	f, err := os.Open(path)
	if err != nil {
		return nil, &ReadError{Path: path, Kind: err}
	}
	defer f.Close()

	var m *Map
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png", ".bmp", ".gif":
		m, err = ReadImage(f)
	default:
		m, err = Read(f)
	}
	if err != nil {
		return nil, withPath(err, path)
	}

	logger.Printf("map is %d by %d", m.Width(), m.Height())
	return m, nil
}

// withPath records path on the *ReadError in err's chain, or wraps err in one.
func withPath(err error, path string) error {
	var re *ReadError
	if errors.As(err, &re) {
		re.Path = path
		return err
	}
	return &ReadError{Path: path, Kind: err}
}

// MaxLineLength is the longest line, in bytes, the text reader accepts.
const MaxLineLength = 1 << 20

// Read parses the text map format.
//
// The first line holds the width and height separated by whitespace. It is
// followed by height lines of exactly width characters each. A space is an
// empty cell, a hex digit is a wall whose texture id is the digit's value.
func Read(r io.Reader) (*Map, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(nil, MaxLineLength)

	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return nil, scanError(err, 1)
		}
		return nil, &ReadError{Line: 1, Kind: ErrParse}
	}
	width, height, err := readDims(sc.Text())
	if err != nil {
		return nil, err
	}

	// the header is not trusted for preallocation, rows are appended as read
	var cells []Cell
	for y := 0; y < height; y++ {
		lineNo := y + 2 // header was line 1
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return nil, scanError(err, lineNo)
			}
			return nil, &ReadError{Line: lineNo, Kind: ErrMissingEntry}
		}
		row, err := readRow(sc.Text(), width, lineNo)
		if err != nil {
			return nil, err
		}
		cells = append(cells, row...)
	}

	return New(width, height, cells)
}

// scanError reports an overlong line as a parse error at lineNo and passes
// I/O errors through.
func scanError(err error, lineNo int) error {
	if errors.Is(err, bufio.ErrTooLong) {
		return &ReadError{Line: lineNo, Kind: fmt.Errorf("%w: line longer than %d bytes", ErrParse, MaxLineLength)}
	}
	return err
}

func readDims(line string) (int, int, error) {
	fields := strings.Fields(strings.TrimSuffix(line, "\r"))
	if len(fields) != 2 {
		return 0, 0, &ReadError{Line: 1, Kind: ErrParse}
	}

	var dims [2]int
	for i, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil || n <= 0 {
			return 0, 0, &ReadError{Line: 1, Col: i + 1, Kind: ErrParse}
		}
		dims[i] = n
	}
	return dims[0], dims[1], nil
}

func readRow(line string, width, lineNo int) ([]Cell, error) {
	line = strings.TrimSuffix(line, "\r")
	if len(line) < width {
		return nil, &ReadError{Line: lineNo, Col: len(line) + 1, Kind: ErrMissingEntry}
	}
	if len(line) > width {
		return nil, &ReadError{Line: lineNo, Col: width + 1, Kind: fmt.Errorf("%w: line longer than %d", ErrParse, width)}
	}

	row := make([]Cell, width)
	for x := 0; x < width; x++ {
		c := line[x]
		if c == ' ' {
			continue
		}
		d, err := strconv.ParseUint(string(c), 16, 8)
		if err != nil {
			return nil, &ReadError{Line: lineNo, Col: x + 1, Kind: ErrParse}
		}
		row[x] = WallCell(TexID(d))
	}
	return row, nil
}
