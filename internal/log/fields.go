package log

import (
	"time"

	"go.uber.org/zap"
)

//Thin aliases over the zap field constructors, so that client packages
//depend only on this package.

func String(key, value string) Field {
	return zap.String(key, value)
}

func Int(key string, value int) Field {
	return zap.Int(key, value)
}

func Int64(key string, value int64) Field {
	return zap.Int64(key, value)
}

func Uint64(key string, value uint64) Field {
	return zap.Uint64(key, value)
}

func Any(key string, value interface{}) Field {
	return zap.Any(key, value)
}

func Duration(key string, value time.Duration) Field {
	return zap.Duration(key, value)
}

//Cause attaches an error to a log record under the "error" key.
func Cause(err error) Field {
	return zap.Error(err)
}
