package run

import "fmt"

//WithError runs fn and converts a panic, if one escapes it, into an ordinary returned error.
func WithError(fn func() error) (err error) {
	defer func() {
		if p := recover(); p != nil {
			if perr, ok := p.(error); ok {
				err = perr
			} else {
				err = fmt.Errorf("panic: %v", p)
			}
		}
	}()

	return fn()
}
