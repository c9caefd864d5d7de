// Package limits implements the resource accounting applied to the state
// of set-building operators such as DISTINCT.
package limits

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrLimitExceeded = errors.New("DISTINCT set size limit exceeded")
	// ErrInvariant marks a logical error in how an operator was
	// constructed as opposed to a condition of the data.
	ErrInvariant = errors.New("logical error")
)

// Overflow selects what happens when a limit is exceeded.
type Overflow int

const (
	// OverflowFail aborts the query with an *ExceededError.
	OverflowFail Overflow = iota
	// OverflowTruncate ends the stream early without an error.
	OverflowTruncate
)

func ParseOverflow(s string) (Overflow, error) {
	switch strings.ToLower(s) {
	case "fail", "throw":
		return OverflowFail, nil
	case "truncate", "break":
		return OverflowTruncate, nil
	}
	return 0, fmt.Errorf("unknown overflow mode %q (must be \"fail\" or \"truncate\")", s)
}

func (o Overflow) String() string {
	switch o {
	case OverflowFail:
		return "fail"
	case OverflowTruncate:
		return "truncate"
	}
	return fmt.Sprintf("overflow(%d)", int(o))
}

func (o Overflow) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

func (o *Overflow) UnmarshalText(text []byte) error {
	v, err := ParseOverflow(string(text))
	if err != nil {
		return err
	}
	*o = v
	return nil
}

type Verdict int

const (
	OK Verdict = iota
	Fail
	Truncate
)

func (v Verdict) String() string {
	switch v {
	case OK:
		return "ok"
	case Fail:
		return "fail"
	case Truncate:
		return "truncate"
	}
	return fmt.Sprintf("verdict(%d)", int(v))
}

// Limits bounds the number of rows and bytes held by a set.  A zero
// threshold means unlimited.
type Limits struct {
	MaxRows  uint64   `yaml:"max_rows" toml:"max_rows"`
	MaxBytes uint64   `yaml:"max_bytes" toml:"max_bytes"`
	Overflow Overflow `yaml:"overflow" toml:"overflow"`
}

func (l Limits) Exceeded(rows, bytes uint64) bool {
	return (l.MaxRows != 0 && rows > l.MaxRows) || (l.MaxBytes != 0 && bytes > l.MaxBytes)
}

// Check compares the current totals of a set against l.  A Fail verdict is
// always accompanied by an error: an *ExceededError when the overflow mode
// is OverflowFail or an ErrInvariant when the mode is not recognized.
func (l Limits) Check(rows, bytes uint64) (Verdict, error) {
	if !l.Exceeded(rows, bytes) {
		return OK, nil
	}
	switch l.Overflow {
	case OverflowFail:
		return Fail, &ExceededError{
			Rows:     rows,
			MaxRows:  l.MaxRows,
			Bytes:    bytes,
			MaxBytes: l.MaxBytes,
		}
	case OverflowTruncate:
		return Truncate, nil
	}
	return Fail, fmt.Errorf("%w: unknown overflow mode %s", ErrInvariant, l.Overflow)
}

// ExceededError reports the totals and thresholds at the point a limit
// was exceeded.
type ExceededError struct {
	Rows     uint64
	MaxRows  uint64
	Bytes    uint64
	MaxBytes uint64
}

func (e *ExceededError) Error() string {
	return fmt.Sprintf("%s. Rows: %d, limit: %d. Bytes: %d, limit: %d.", ErrLimitExceeded, e.Rows, e.MaxRows, e.Bytes, e.MaxBytes)
}

func (e *ExceededError) Unwrap() error {
	return ErrLimitExceeded
}
