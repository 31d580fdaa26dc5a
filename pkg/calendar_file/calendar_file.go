package calendar_file

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strconv"
	"strings"
	"unicode"

	"github.com/klokku/cal2/pkg/event"
	"github.com/klokku/cal2/pkg/palette"
	"github.com/knadh/koanf/providers/file"
	log "github.com/sirupsen/logrus"
)

const colorsSection = "colors"

var (
	ErrNotFound       = errors.New("calendar file not found")
	ErrMalformedDate  = errors.New("malformed date")
	ErrDateOutOfRange = errors.New("date out of range")
)

// Diagnostic describes one line that was skipped while loading.
type Diagnostic struct {
	Line int
	Text string
	Err  error
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("line %d: %v: %q", d.Line, d.Err, d.Text)
}

// File is the parsed content of a calendar file.
type File struct {
	Palette     palette.Palette
	Events      []event.Event
	Diagnostics []Diagnostic
}

// Index builds the event index for the loaded events.
func (f File) Index() *event.Index {
	return event.NewIndex(f.Events)
}

// Empty returns the defaults used when no calendar file can be read.
func Empty() File {
	return File{Palette: palette.Default()}
}

// Load reads and parses the calendar file at path. A missing file is reported
// as ErrNotFound.
func Load(path string) (File, error) {
	raw, err := file.Provider(path).ReadBytes()
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Empty(), fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return Empty(), fmt.Errorf("failed to read calendar file %s: %w", path, err)
	}
	f, err := Parse(bytes.NewReader(raw))
	if err != nil {
		return Empty(), fmt.Errorf("failed to parse calendar file %s: %w", path, err)
	}
	log.Debugf("Loaded %d events from %s", len(f.Events), path)
	return f, nil
}

// Parse reads a sectioned calendar file. The [colors] section assigns colors
// to roles and months; every other section, including the unnamed one at the
// top, holds "M/D description" or "M-D description" event lines. Bad lines are
// skipped and reported in File.Diagnostics.
func Parse(r io.Reader) (File, error) {
	f := Empty()
	section := ""
	lineNo := 0

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || line[0] == '#' || line[0] == ';' {
			continue
		}

		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			section = strings.ToLower(strings.TrimSpace(line[1 : len(line)-1]))
			continue
		}

		if section == colorsSection {
			if err := f.applyColor(line); err != nil {
				f.reject(lineNo, line, err)
			}
			continue
		}

		e, err := ParseEventLine(section, line)
		if err != nil {
			f.reject(lineNo, line, err)
			continue
		}
		f.Events = append(f.Events, e)
	}
	if err := scanner.Err(); err != nil {
		return f, err
	}
	return f, nil
}

func (f *File) applyColor(line string) error {
	key, value, found := strings.Cut(line, "=")
	if !found {
		return nil
	}
	next, err := f.Palette.With(strings.TrimSpace(key), strings.TrimSpace(value))
	if err != nil {
		return err
	}
	f.Palette = next
	return nil
}

func (f *File) reject(lineNo int, line string, err error) {
	d := Diagnostic{Line: lineNo, Text: line, Err: err}
	log.Warnf("Skipping calendar file %s", d)
	f.Diagnostics = append(f.Diagnostics, d)
}

// ParseEventLine parses "<date> <description>" under the given section.
func ParseEventLine(section, line string) (event.Event, error) {
	line = strings.TrimSpace(line)
	token, description := line, ""
	if end := strings.IndexFunc(line, unicode.IsSpace); end >= 0 {
		token, description = line[:end], strings.TrimSpace(line[end:])
	}

	month, day, err := ParseDateToken(token)
	if err != nil {
		return event.Event{}, err
	}
	return event.Event{
		Month:       month,
		Day:         day,
		Description: description,
		Category:    event.ResolveCategory(section, description),
	}, nil
}

// ParseDateToken parses "M/D" or "M-D". Leading zeros are optional. The month
// must be 1..12 and the day 1..31; the day is not checked against the month.
func ParseDateToken(token string) (int, int, error) {
	sep := "/"
	if !strings.Contains(token, sep) {
		sep = "-"
	}
	m, d, found := strings.Cut(token, sep)
	if !found {
		return 0, 0, fmt.Errorf("%w: %q", ErrMalformedDate, token)
	}
	month, err := strconv.Atoi(m)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrMalformedDate, token)
	}
	day, err := strconv.Atoi(d)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrMalformedDate, token)
	}
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return 0, 0, fmt.Errorf("%w: %d/%d", ErrDateOutOfRange, month, day)
	}
	return month, day, nil
}
