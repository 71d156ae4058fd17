// Package types implements venus-db's three column types and their
// fixed-width wire encoding: 32-bit signed integer, 32-bit IEEE-754 float,
// and a fixed-width, NUL-padded printable string.
package types

import (
	"encoding/binary"
	"math"
	"strconv"
	"strings"

	"github.com/karthikeyaspace/venus-db/config"
	"github.com/karthikeyaspace/venus-db/verr"
)

// Kind is the column type enum. Its integer value is exactly what is stored
// in master_columns.column_type.
type Kind uint8

const (
	Int   Kind = 1
	Float Kind = 2
	Char  Kind = 3
)

// String renders the SQL surface keyword for a Kind.
func (k Kind) String() string {
	switch k {
	case Int:
		return "INT"
	case Float:
		return "FLOAT"
	case Char:
		return "CHAR"
	default:
		return "UNKNOWN"
	}
}

// ParseKind maps a SQL type keyword (case-insensitive) to a Kind.
func ParseKind(s string) (Kind, bool) {
	switch strings.ToUpper(s) {
	case "INT":
		return Int, true
	case "FLOAT":
		return Float, true
	case "CHAR":
		return Char, true
	default:
		return 0, false
	}
}

// Width returns the fixed on-disk width, in bytes, of a column of kind k.
func Width(k Kind) int {
	switch k {
	case Int:
		return 4
	case Float:
		return 4
	case Char:
		return config.MaxCharLength
	default:
		panic("types: unknown kind")
	}
}

// Value is a decoded column value, one of Int32, Float32, or Char.
type Value struct {
	Kind  Kind
	Int   int32
	Float float32
	Str   string
}

// NewInt builds an Int value.
func NewInt(v int32) Value { return Value{Kind: Int, Int: v} }

// NewFloat builds a Float value.
func NewFloat(v float32) Value { return Value{Kind: Float, Float: v} }

// NewChar builds a Char value, truncated to MaxCharLength-1 bytes if
// necessary.
func NewChar(v string) Value {
	if len(v) > config.MaxCharLength-1 {
		v = v[:config.MaxCharLength-1]
	}
	return Value{Kind: Char, Str: v}
}

// Encode writes v's fixed-width wire form into a freshly allocated buffer.
func (v Value) Encode() []byte {
	buf := make([]byte, Width(v.Kind))
	switch v.Kind {
	case Int:
		binary.LittleEndian.PutUint32(buf, uint32(v.Int))
	case Float:
		binary.LittleEndian.PutUint32(buf, math.Float32bits(v.Float))
	case Char:
		copy(buf, v.Str)
		// Remaining bytes are already zero (NUL padding).
	}
	return buf
}

// Decode reads a fixed-width field of the given kind from buf, which must be
// exactly Width(kind) bytes.
func Decode(kind Kind, buf []byte) Value {
	switch kind {
	case Int:
		return NewInt(int32(binary.LittleEndian.Uint32(buf)))
	case Float:
		return NewFloat(math.Float32frombits(binary.LittleEndian.Uint32(buf)))
	case Char:
		nul := len(buf)
		for i, b := range buf {
			if b == 0 {
				nul = i
				break
			}
		}
		return Value{Kind: Char, Str: string(buf[:nul])}
	default:
		panic("types: unknown kind")
	}
}

// ParseLiteral converts a textual literal into a Value of the expected kind.
// Failures are type errors surfaced during bind, not during serialization.
func ParseLiteral(kind Kind, text string) (Value, error) {
	switch kind {
	case Int:
		n, err := strconv.ParseInt(text, 10, 32)
		if err != nil {
			return Value{}, verr.Wrap(verr.TypeError, err, "%q is not a valid INT literal", text)
		}
		return NewInt(int32(n)), nil
	case Float:
		f, err := strconv.ParseFloat(text, 32)
		if err != nil {
			return Value{}, verr.Wrap(verr.TypeError, err, "%q is not a valid FLOAT literal", text)
		}
		return NewFloat(float32(f)), nil
	case Char:
		return NewChar(text), nil
	default:
		return Value{}, verr.New(verr.TypeError, "unknown column type")
	}
}

// String renders v for result-set display.
func (v Value) String() string {
	switch v.Kind {
	case Int:
		return strconv.FormatInt(int64(v.Int), 10)
	case Float:
		return strconv.FormatFloat(float64(v.Float), 'g', -1, 32)
	case Char:
		return v.Str
	default:
		return ""
	}
}
