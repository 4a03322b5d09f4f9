package wire

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// DefaultSeparator is placed between elements by Join.
const DefaultSeparator = ", "

// Join renders vec as "[e1, e2, ...]".
//
// 8-bit integers print as numbers, Char values single-quoted, strings
// double-quoted and bools as 1 or 0, including named string and bool types.
// Floats print with six significant digits in %g style, fmt.Stringer values
// use their String method. An optional sep replaces ", ".
func Join[T any](vec []T, sep ...string) string {
	s := DefaultSeparator
	if len(sep) > 0 {
		s = sep[0]
	}
	var sb strings.Builder
	sb.WriteByte('[')
	for i := range vec {
		if i > 0 {
			sb.WriteString(s)
		}
		formatElem(&sb, vec[i])
	}
	sb.WriteByte(']')
	return sb.String()
}

func formatElem(sb *strings.Builder, v any) {
	switch x := v.(type) {
	case int8:
		sb.WriteString(strconv.FormatInt(int64(x), 10))
	case uint8:
		sb.WriteString(strconv.FormatUint(uint64(x), 10))
	case Char:
		sb.WriteByte('\'')
		sb.WriteByte(byte(x))
		sb.WriteByte('\'')
	case string:
		writeQuoted(sb, x)
	case bool:
		writeBool(sb, x)
	case float32:
		sb.WriteString(strconv.FormatFloat(float64(x), 'g', floatDigits, 32))
	case float64:
		sb.WriteString(strconv.FormatFloat(x, 'g', floatDigits, 64))
	case fmt.Stringer:
		sb.WriteString(x.String())
	default:
		switch rv := reflect.ValueOf(v); rv.Kind() {
		case reflect.String:
			writeQuoted(sb, rv.String())
		case reflect.Bool:
			writeBool(sb, rv.Bool())
		case reflect.Float32:
			sb.WriteString(strconv.FormatFloat(rv.Float(), 'g', floatDigits, 32))
		case reflect.Float64:
			sb.WriteString(strconv.FormatFloat(rv.Float(), 'g', floatDigits, 64))
		default:
			fmt.Fprint(sb, x)
		}
	}
}

// floatDigits matches the default precision of C-style %g output.
const floatDigits = 6

func writeQuoted(sb *strings.Builder, s string) {
	sb.WriteByte('"')
	sb.WriteString(s)
	sb.WriteByte('"')
}

func writeBool(sb *strings.Builder, v bool) {
	if v {
		sb.WriteByte('1')
	} else {
		sb.WriteByte('0')
	}
}
