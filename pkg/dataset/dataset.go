package dataset

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Row is one (x, y) sample of the table.
type Row struct {
	X float64
	Y float64
}

// Dataset is a whitespace-delimited numeric table loaded once at startup.
// It is never mutated after Read returns.
type Dataset struct {
	Source string
	Rows   []Row
	Size   int64 // bytes consumed while reading
}

// Slice is a contiguous run of rows plotted as one curve.
type Slice struct {
	Index int
	Start int
	Rows  []Row
}

func (s Slice) End() int { return s.Start + len(s.Rows) }

func (d *Dataset) Len() int { return len(d.Rows) }

// Slice returns the index-th run of length rows. It reports false once
// index*length is past the end of the data. The last run may be short.
func (d *Dataset) Slice(index, length int) (Slice, bool) {
	start := index * length
	if index < 0 || length <= 0 || start >= len(d.Rows) {
		return Slice{}, false
	}

	end := min(start+length, len(d.Rows))
	return Slice{Index: index, Start: start, Rows: d.Rows[start:end:end]}, true
}

// Load reads the table at path, "-" meaning stdin.
func Load(path string) (*Dataset, error) {
	var reader *os.File
	var err error

	if path == "-" {
		reader = os.Stdin
	} else {
		reader, err = os.Open(path)
		if err != nil {
			return nil, err
		}
		defer reader.Close()
	}

	return Read(reader, path)
}

type countingReader struct {
	r io.Reader
	n int64
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.n += int64(n)
	return n, err
}

// Read parses rows from r. Blank lines and lines starting with '#' are
// skipped; columns past the second are ignored.
func Read(r io.Reader, source string) (*Dataset, error) {
	cr := &countingReader{r: r}
	scanner := bufio.NewScanner(cr)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	ds := &Dataset{Source: source}
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) < 2 {
			return nil, fmt.Errorf("%s:%d: expected at least 2 columns, got %d", source, lineNo, len(fields))
		}

		x, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return nil, fmt.Errorf("%s:%d: bad x value: %w", source, lineNo, err)
		}
		y, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, fmt.Errorf("%s:%d: bad y value: %w", source, lineNo, err)
		}

		ds.Rows = append(ds.Rows, Row{X: x, Y: y})
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", source, err)
	}

	ds.Size = cr.n
	return ds, nil
}
