package identification

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math/big"
	"strconv"
	"strings"
	"time"

	"github.com/wagiedev/mkvtoolnix-go/internal/errors"
)

var null = []byte("null")

// UID is an unsigned Matroska UID. UIDs routinely exceed the int64 range.
type UID struct {
	n *big.Int
}

// ParseUID parses a base-10 UID.
func ParseUID(s string) (*UID, error) {
	n, ok := new(big.Int).SetString(strings.TrimSpace(s), 10)
	if !ok || n.Sign() < 0 {
		return nil, &errors.ScalarParseError{Kind: "uid", Value: s}
	}

	return &UID{n: n}, nil
}

// UIDFromUint64 wraps v.
func UIDFromUint64(v uint64) *UID {
	return &UID{n: new(big.Int).SetUint64(v)}
}

// BigInt returns a copy of the UID value.
func (u *UID) BigInt() *big.Int {
	return new(big.Int).Set(u.n)
}

func (u *UID) String() string {
	if u == nil || u.n == nil {
		return ""
	}

	return u.n.String()
}

// Equal reports whether both UIDs hold the same value.
func (u *UID) Equal(other *UID) bool {
	if u == nil || other == nil {
		return u == other
	}

	return u.n.Cmp(other.n) == 0
}

// UnmarshalJSON accepts a JSON number or a JSON string of decimal digits.
func (u *UID) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, null) {
		return nil
	}

	raw := string(data)
	if s, err := strconv.Unquote(raw); err == nil {
		raw = s
	}

	parsed, err := ParseUID(raw)
	if err != nil {
		return err
	}

	u.n = parsed.n

	return nil
}

// MarshalJSON writes the UID as a JSON number, the way mkvmerge does.
func (u *UID) MarshalJSON() ([]byte, error) {
	if u == nil || u.n == nil {
		return null, nil
	}

	return []byte(u.n.String()), nil
}

// Duration is a time span encoded as integer nanoseconds.
type Duration time.Duration

// Std converts d to a time.Duration.
func (d Duration) Std() time.Duration { return time.Duration(d) }

func (d Duration) String() string { return time.Duration(d).String() }

// UnmarshalJSON accepts integer nanoseconds as a JSON number or string.
func (d *Duration) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, null) {
		return nil
	}

	raw := string(data)
	if s, err := strconv.Unquote(raw); err == nil {
		raw = s
	}

	ns, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return &errors.ScalarParseError{Kind: "duration", Value: raw, Err: err}
	}

	*d = Duration(ns)

	return nil
}

// MarshalJSON writes integer nanoseconds.
func (d Duration) MarshalJSON() ([]byte, error) {
	return []byte(strconv.FormatInt(int64(d), 10)), nil
}

// Dimension is a width and height pair encoded as "WxH".
type Dimension struct {
	Width  int
	Height int
}

// ParseDimension parses "WxH".
func ParseDimension(s string) (Dimension, error) {
	w, h, ok := strings.Cut(s, "x")
	if !ok {
		return Dimension{}, &errors.ScalarParseError{Kind: "dimension", Value: s}
	}

	width, err := strconv.Atoi(w)
	if err != nil {
		return Dimension{}, &errors.ScalarParseError{Kind: "dimension", Value: s, Err: err}
	}

	height, err := strconv.Atoi(h)
	if err != nil {
		return Dimension{}, &errors.ScalarParseError{Kind: "dimension", Value: s, Err: err}
	}

	return Dimension{Width: width, Height: height}, nil
}

func (d Dimension) String() string {
	return fmt.Sprintf("%dx%d", d.Width, d.Height)
}

// UnmarshalJSON decodes a "WxH" string.
func (d *Dimension) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, null) {
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return &errors.ScalarParseError{Kind: "dimension", Value: string(data), Err: err}
	}

	parsed, err := ParseDimension(s)
	if err != nil {
		return err
	}

	*d = parsed

	return nil
}

// MarshalJSON encodes the dimension as "WxH".
func (d Dimension) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}
