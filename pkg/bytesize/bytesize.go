// Package bytesize parses human-readable byte counts such as "64MiB" or a
// percentage of system memory such as "25%".
package bytesize

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/alecthomas/units"
	"github.com/pbnjay/memory"
)

var ErrPercent = errors.New("percentage of system memory must be in (0, 100]")

// totalMemory is replaced in tests.
var totalMemory = memory.TotalMemory

// Parse returns the number of bytes in s.  s is a plain integer, a
// base-2 size with unit suffix, or a percentage of total system memory.
func Parse(s string) (uint64, error) {
	s = strings.TrimSpace(s)
	if pct, ok := strings.CutSuffix(s, "%"); ok {
		f, err := strconv.ParseFloat(pct, 64)
		if err != nil {
			return 0, fmt.Errorf("bad byte size %q: %w", s, err)
		}
		if f <= 0 || f > 100 {
			return 0, fmt.Errorf("bad byte size %q: %w", s, ErrPercent)
		}
		return uint64(float64(totalMemory()) * f / 100), nil
	}
	if n, err := strconv.ParseUint(s, 10, 64); err == nil {
		return n, nil
	}
	n, err := units.ParseBase2Bytes(s)
	if err != nil {
		return 0, fmt.Errorf("bad byte size %q: %w", s, err)
	}
	if n < 0 {
		return 0, fmt.Errorf("bad byte size %q: negative", s)
	}
	return uint64(n), nil
}

// Size is a byte count usable as a flag.Value and as a text field in
// configuration files.
type Size struct {
	Bytes uint64
	text  string
}

func New(n uint64) Size {
	return Size{Bytes: n}
}

func (s Size) String() string {
	if s.text != "" {
		return s.text
	}
	return units.Base2Bytes(s.Bytes).String()
}

func (s *Size) Set(text string) error {
	n, err := Parse(text)
	if err != nil {
		return err
	}
	s.Bytes = n
	s.text = text
	return nil
}

func (s Size) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *Size) UnmarshalText(text []byte) error {
	return s.Set(string(text))
}
