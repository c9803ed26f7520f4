package interp

import (
	"errors"
	"strconv"
)

type valueKind int

const (
	kindInt valueKind = iota
	kindFloat
	kindString
	kindBool
)

type value struct {
	kind valueKind
	i    int64
	f    float64
	s    string
	b    bool
}

func intVal(i int64) value     { return value{kind: kindInt, i: i} }
func floatVal(f float64) value { return value{kind: kindFloat, f: f} }
func stringVal(s string) value { return value{kind: kindString, s: s} }
func boolVal(b bool) value     { return value{kind: kindBool, b: b} }

// text renders the value the way print shows it.
func (v value) text() string {
	switch v.kind {
	case kindInt:
		return strconv.FormatInt(v.i, 10)
	case kindFloat:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	case kindBool:
		return strconv.FormatBool(v.b)
	default:
		return v.s
	}
}

var errNotNumeric = errors.New("value is not numeric")

// number coerces to kindInt or kindFloat. Strings parse as numbers so
// that lines read with input() work in arithmetic.
func (v value) number() (value, error) {
	switch v.kind {
	case kindInt, kindFloat:
		return v, nil
	case kindString:
		if i, err := strconv.ParseInt(v.s, 10, 64); err == nil {
			return intVal(i), nil
		}
		if f, err := strconv.ParseFloat(v.s, 64); err == nil {
			return floatVal(f), nil
		}
		return value{}, errNotNumeric
	default:
		return value{}, errNotNumeric
	}
}

func (v value) float() float64 {
	if v.kind == kindInt {
		return float64(v.i)
	}
	return v.f
}
