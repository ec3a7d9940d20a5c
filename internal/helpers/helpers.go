package helpers

import (
	"strconv"
	"strings"
)

func MapSlice[T, U any](ts []T, f func(T) U) []U {
	us := make([]U, len(ts))
	for i := range ts {
		us[i] = f(ts[i])
	}
	return us
}

func FilterSlice[T any](ts []T, f func(T) bool) []T {
	filtered := []T{}
	for i := range ts {
		if f(ts[i]) {
			filtered = append(filtered, ts[i])
		}
	}
	return filtered
}

func FindInSlice[T any](ts []T, f func(T) bool) Optional[T] {
	for i := range ts {
		if f(ts[i]) {
			return Some(ts[i])
		}
	}
	return Empty[T]()
}

func Contains[T comparable](ts []T, t T) bool {
	return FindInSlice(ts, func(v T) bool { return v == t }).HasValue()
}

func Last[T any](ts []T) T {
	return ts[len(ts)-1]
}

type Optional[T any] struct {
	_hasValue bool
	_t        T
}

func Some[T any](t T) Optional[T] {
	return Optional[T]{true, t}
}

func Empty[T any]() Optional[T] {
	return Optional[T]{}
}

func (o Optional[T]) IsEmpty() bool {
	return !o._hasValue
}

func (o Optional[T]) HasValue() bool {
	return !o.IsEmpty()
}

func (o Optional[T]) Value() T {
	return o._t
}

func (o Optional[T]) ValueOr(t T) T {
	if o.HasValue() {
		return o._t
	}
	return t
}

func MinInt(x int, y int) int {
	if x < y {
		return x
	}
	return y
}

func MaxInt(x int, y int) int {
	if x > y {
		return x
	}
	return y
}

func Indent(s string, indent string) string {
	lines := strings.Split(s, "\n")
	for i := range lines {
		if lines[i] != "" {
			lines[i] = indent + lines[i]
		}
	}
	return strings.Join(lines, "\n")
}

// ArgValue finds a "key=value" argument.
func ArgValue(args []string, key string) Optional[string] {
	prefix := key + "="
	arg := FindInSlice(args, func(a string) bool {
		return strings.HasPrefix(a, prefix)
	})
	if arg.IsEmpty() {
		return Empty[string]()
	}
	return Some(strings.TrimPrefix(arg.Value(), prefix))
}

func ParseInt(s string) (int, Error) {
	return WrapReturn(strconv.Atoi(strings.TrimSpace(s)))
}

func ParseFloat(s string) (float64, Error) {
	return WrapReturn(strconv.ParseFloat(strings.TrimSpace(s), 64))
}
