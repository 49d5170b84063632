package internal

import "strconv"

// ContextValue retrieves a typed value from request-scoped storage.
// Returns the zero value when the key is absent or holds a different type.
//
// Example:
//
//	visitorID := rosetta.ContextValue[string](c, visitorKey{})
func ContextValue[T any](c Context, key any) T {
	if v, ok := c.Get(key).(T); ok {
		return v
	}
	var zero T
	return zero
}

// Param retrieves a typed route parameter.
//
// Example:
//
//	// route: POST /lang/{code}
//	code := rosetta.Param[string](c, "code")
func Param[T ~string | ~int | ~int64 | ~float64 | ~bool](c Context, name string) T {
	v, _ := convertParam[T](c.Param(name))
	return v
}

// Query retrieves a typed query parameter.
func Query[T ~string | ~int | ~int64 | ~float64 | ~bool](c Context, name string) T {
	v, _ := convertParam[T](c.Query(name))
	return v
}

// QueryDefault is Query with a fallback: defaultValue covers a missing,
// empty, or unparseable parameter.
func QueryDefault[T ~string | ~int | ~int64 | ~float64 | ~bool](c Context, name string, defaultValue T) T {
	if raw := c.Query(name); raw != "" {
		if v, ok := convertParam[T](raw); ok {
			return v
		}
	}
	return defaultValue
}

// convertParam converts a raw string to the target type T. The zero value
// and false come back when raw does not parse as T.
func convertParam[T ~string | ~int | ~int64 | ~float64 | ~bool](raw string) (T, bool) {
	var out T
	var err error
	switch p := any(&out).(type) {
	case *string:
		*p = raw
	case *int:
		*p, err = strconv.Atoi(raw)
	case *int64:
		*p, err = strconv.ParseInt(raw, 10, 64)
	case *float64:
		*p, err = strconv.ParseFloat(raw, 64)
	case *bool:
		*p, err = strconv.ParseBool(raw)
	default:
		return out, false
	}
	if err != nil {
		var zero T
		return zero, false
	}
	return out, true
}
