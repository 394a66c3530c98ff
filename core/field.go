package core

import (
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"
)

// FieldType represents the type of a field value
type FieldType uint8

const (
	StringType FieldType = iota
	Int64Type
	Uint64Type
	Float64Type
	BoolType
	TimeType
	DurationType
	ErrorType
	AnyType
)

// Field is a key-value pair supplied by a structured front-end (slog, zap,
// logrus, zerolog). A Record carries text only, so fields are rendered into
// the message with AppendFields before the record is built.
type Field struct {
	Key     string
	Type    FieldType
	Int64   int64
	Float64 float64
	Str     string
	Any     interface{}
}

// String constructs a string field
func String(key, val string) Field {
	return Field{Key: key, Type: StringType, Str: val}
}

// Int64 constructs a signed integer field
func Int64(key string, val int64) Field {
	return Field{Key: key, Type: Int64Type, Int64: val}
}

// Uint64 constructs an unsigned integer field
func Uint64(key string, val uint64) Field {
	return Field{Key: key, Type: Uint64Type, Int64: int64(val)}
}

// Float64 constructs a float field
func Float64(key string, val float64) Field {
	return Field{Key: key, Type: Float64Type, Float64: val}
}

// Bool constructs a boolean field
func Bool(key string, val bool) Field {
	var i int64
	if val {
		i = 1
	}
	return Field{Key: key, Type: BoolType, Int64: i}
}

// Time constructs a time field
func Time(key string, val time.Time) Field {
	return Field{Key: key, Type: TimeType, Int64: val.UnixNano()}
}

// Duration constructs a duration field
func Duration(key string, val time.Duration) Field {
	return Field{Key: key, Type: DurationType, Int64: int64(val)}
}

// Err constructs an error field rendered with err.Error()
func Err(key string, err error) Field {
	if err == nil {
		return Field{Key: key, Type: ErrorType, Str: "<nil>"}
	}
	return Field{Key: key, Type: ErrorType, Str: err.Error()}
}

// Any constructs a field rendered with %v
func Any(key string, val interface{}) Field {
	return Field{Key: key, Type: AnyType, Any: val}
}

// StringValue returns the string representation of a field's value
func (f Field) StringValue() string {
	switch f.Type {
	case StringType, ErrorType:
		return f.Str
	case Int64Type:
		return strconv.FormatInt(f.Int64, 10)
	case Uint64Type:
		return strconv.FormatUint(uint64(f.Int64), 10)
	case Float64Type:
		return strconv.FormatFloat(f.Float64, 'f', -1, 64)
	case BoolType:
		return strconv.FormatBool(f.Int64 == 1)
	case TimeType:
		return time.Unix(0, f.Int64).UTC().Format(time.RFC3339Nano)
	case DurationType:
		return time.Duration(f.Int64).String()
	case AnyType:
		return fmt.Sprintf("%v", f.Any)
	default:
		return ""
	}
}

// AppendFields appends " key=value" to dst for each field. Values that are
// empty or contain spaces, quotes, '=' or control characters are quoted.
func AppendFields(dst []byte, fields []Field) []byte {
	for _, f := range fields {
		dst = append(dst, ' ')
		dst = append(dst, f.Key...)
		dst = append(dst, '=')
		v := f.StringValue()
		if needsQuoting(v) {
			dst = strconv.AppendQuote(dst, v)
		} else {
			dst = append(dst, v...)
		}
	}
	return dst
}

// MessageWithFields returns msg followed by the rendered fields
func MessageWithFields(msg string, fields []Field) string {
	if len(fields) == 0 {
		return msg
	}
	buf := make([]byte, 0, len(msg)+16*len(fields))
	buf = append(buf, msg...)
	return string(AppendFields(buf, fields))
}

func needsQuoting(s string) bool {
	if s == "" {
		return true
	}
	return strings.IndexFunc(s, func(r rune) bool {
		return r <= ' ' || r == '=' || r == '"' || r == 0x7f || r == utf8.RuneError
	}) >= 0
}
