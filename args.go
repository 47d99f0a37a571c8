package ufmt

import (
	"fmt"
	"reflect"
	"unsafe"
)

// Args is a sequential cursor over the values passed to a format call.
// Every conversion pulls exactly one value, left to right.
//
// The cursor cannot detect a template that demands more values than were
// supplied, or values of the wrong kind. Both are caller errors: the typed
// accessors panic with an [*ArgError] wrapping [ErrArgument].
type Args struct {
	vals []any
	next int
}

// NewArgs returns a cursor positioned at the first value.
func NewArgs(vals ...any) *Args {
	return &Args{vals: vals}
}

// Remaining reports how many values have not been consumed.
func (a *Args) Remaining() int { return len(a.vals) - a.next }

// Consumed reports how many values have been pulled.
func (a *Args) Consumed() int { return a.next }

// Next returns the next raw value. It panics when the list is exhausted.
func (a *Args) Next() any {
	if a.next >= len(a.vals) {
		panic(&ArgError{Index: a.next, Want: "any value", Missing: true})
	}
	v := a.vals[a.next]
	a.next++
	return v
}

// ArgError describes a value that does not satisfy the conversion pulling it.
type ArgError struct {
	Index   int
	Want    string
	Value   any
	Missing bool
}

func (e *ArgError) Error() string {
	if e.Missing {
		return fmt.Sprintf("%s: argument %d: want %s, list exhausted", ErrArgument, e.Index, e.Want)
	}
	return fmt.Sprintf("%s: argument %d: want %s, got %T", ErrArgument, e.Index, e.Want, e.Value)
}

func (e *ArgError) Unwrap() error { return ErrArgument }

func (a *Args) pull(want string) (any, int) {
	if a.next >= len(a.vals) {
		panic(&ArgError{Index: a.next, Want: want, Missing: true})
	}
	i := a.next
	a.next++
	return a.vals[i], i
}

// Int pulls a signed integer. Unsigned values are reinterpreted as int64.
func (a *Args) Int() int64 {
	v, i := a.pull("integer")
	switch n := v.(type) {
	case int:
		return int64(n)
	case int8:
		return int64(n)
	case int16:
		return int64(n)
	case int32:
		return int64(n)
	case int64:
		return n
	case uint:
		return int64(n)
	case uint8:
		return int64(n)
	case uint16:
		return int64(n)
	case uint32:
		return int64(n)
	case uint64:
		return int64(n)
	case uintptr:
		return int64(n)
	}
	if n, ok := kindInt(v); ok {
		return n
	}
	panic(&ArgError{Index: i, Want: "integer", Value: v})
}

// Uint pulls an unsigned integer. Negative signed values are reinterpreted
// at the bit width of their Go type, so int8(-1) yields 0xff and int32(-1)
// yields 0xffffffff.
func (a *Args) Uint() uint64 {
	v, i := a.pull("integer")
	switch n := v.(type) {
	case int:
		return uint64(uint(n))
	case int8:
		return uint64(uint8(n))
	case int16:
		return uint64(uint16(n))
	case int32:
		return uint64(uint32(n))
	case int64:
		return uint64(n)
	case uint:
		return uint64(n)
	case uint8:
		return uint64(n)
	case uint16:
		return uint64(n)
	case uint32:
		return uint64(n)
	case uint64:
		return n
	case uintptr:
		return uint64(n)
	}
	if n, ok := kindUint(v); ok {
		return n
	}
	panic(&ArgError{Index: i, Want: "integer", Value: v})
}

// Float pulls a floating-point value. Integers are converted.
func (a *Args) Float() float64 {
	v, i := a.pull("float")
	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int8:
		return float64(n)
	case int16:
		return float64(n)
	case int32:
		return float64(n)
	case int64:
		return float64(n)
	case uint:
		return float64(n)
	case uint8:
		return float64(n)
	case uint16:
		return float64(n)
	case uint32:
		return float64(n)
	case uint64:
		return float64(n)
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Float32, reflect.Float64:
		return rv.Float()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int())
	}
	panic(&ArgError{Index: i, Want: "float", Value: v})
}

// Char pulls a character. Bytes, runes and other integers are accepted.
func (a *Args) Char() rune {
	v, i := a.pull("character")
	switch n := v.(type) {
	case rune:
		return n
	case byte:
		return rune(n)
	case int:
		return rune(n)
	case int8:
		return rune(n)
	case int16:
		return rune(n)
	case int64:
		return rune(n)
	case uint:
		return rune(n)
	case uint16:
		return rune(n)
	case uint32:
		return rune(n)
	case uint64:
		return rune(n)
	}
	if n, ok := kindInt(v); ok {
		return rune(n)
	}
	panic(&ArgError{Index: i, Want: "character", Value: v})
}

// Str pulls a string. ok is false for an absent value (nil, or a nil
// pointer/Stringer), which callers render as "(null)".
func (a *Args) Str() (s string, ok bool) {
	v, i := a.pull("string")
	switch t := v.(type) {
	case nil:
		return "", false
	case string:
		return t, true
	case []byte:
		if t == nil {
			return "", false
		}
		return string(t), true
	case *string:
		if t == nil {
			return "", false
		}
		return *t, true
	case error:
		if isNil(t) {
			return "", false
		}
		return t.Error(), true
	case fmt.Stringer:
		if isNil(t) {
			return "", false
		}
		return t.String(), true
	}
	rv := reflect.ValueOf(v)
	switch {
	case rv.Kind() == reflect.String:
		return rv.String(), true
	case rv.Kind() == reflect.Slice && rv.Type().Elem().Kind() == reflect.Uint8:
		if rv.IsNil() {
			return "", false
		}
		return string(rv.Bytes()), true
	}
	panic(&ArgError{Index: i, Want: "string", Value: v})
}

// Pointer pulls an address. nil yields zero.
func (a *Args) Pointer() uintptr {
	v, i := a.pull("pointer")
	switch p := v.(type) {
	case nil:
		return 0
	case uintptr:
		return p
	case unsafe.Pointer:
		return uintptr(p)
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Chan, reflect.Map, reflect.Func, reflect.Slice, reflect.UnsafePointer:
		return rv.Pointer()
	}
	panic(&ArgError{Index: i, Want: "pointer", Value: v})
}

// Counter pulls a destination for the running character count. A nil
// pointer yields a no-op.
func (a *Args) Counter() func(n int) {
	v, i := a.pull("*int")
	switch p := v.(type) {
	case nil:
		return func(int) {}
	case *int:
		if p == nil {
			return func(int) {}
		}
		return func(n int) { *p = n }
	case *int32:
		if p == nil {
			return func(int) {}
		}
		return func(n int) { *p = int32(n) }
	case *int64:
		if p == nil {
			return func(int) {}
		}
		return func(n int) { *p = int64(n) }
	}
	panic(&ArgError{Index: i, Want: "*int", Value: v})
}

func isNil(v any) bool {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}

// kindInt converts a value of a named integer type, such as time.Duration,
// through its underlying kind.
func kindInt(v any) (int64, bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int(), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return int64(rv.Uint()), true
	}
	return 0, false
}

// kindUint is kindInt for unsigned pulls: negative values wrap at the
// type's own bit width.
func kindUint(v any) (uint64, bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		u := uint64(rv.Int())
		if bits := rv.Type().Bits(); bits < 64 {
			u &= 1<<bits - 1
		}
		return u, true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint(), true
	}
	return 0, false
}
