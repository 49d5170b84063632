package logger

import (
	"log/slog"
	"strconv"
)

// Group nests attrs under name.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Error records err under "error". A nil err gives an empty attr that slog
// drops.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Errors groups the non-nil errors under "errors", keyed by position.
func Errors(errs ...error) slog.Attr {
	as := make([]slog.Attr, 0, len(errs))
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

// Component records the subsystem name under "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// RequestID records the request identifier under "request_id". A nil id
// gives an empty attr.
func RequestID(id any) slog.Attr {
	if id == nil {
		return slog.Attr{}
	}
	return slog.Any("request_id", id)
}

// Duration records elapsed time under "duration".
func Duration(d any) slog.Attr {
	return slog.Any("duration", d)
}

// Lang records a language code under "lang".
func Lang(code string) slog.Attr {
	return slog.String("lang", code)
}

// Dir records a text direction under "dir".
func Dir(dir any) slog.Attr {
	return slog.Any("dir", dir)
}

// Key records a translation key under "key".
func Key(key string) slog.Attr {
	return slog.String("key", key)
}
