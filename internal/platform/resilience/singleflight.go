package resilience

import (
	"fmt"

	"golang.org/x/sync/singleflight"
)

// SingleFlight is a typed front for singleflight.Group. A panicking loader
// is reported as an error to every waiter instead of crashing the caller.
type SingleFlight[T any] struct {
	group singleflight.Group
}

// Do runs fn once per key among concurrent callers. shared reports whether
// the result was handed to more than one caller.
func (g *SingleFlight[T]) Do(key string, fn func() (T, error)) (T, error, bool) {
	v, err, shared := g.group.Do(key, func() (res any, err error) {
		defer func() {
			if r := recover(); r != nil {
				err = fmt.Errorf("singleflight %q panicked: %v", key, r)
			}
		}()
		val, err := fn()
		return val, err
	})
	out, _ := v.(T)
	return out, err, shared
}

// Forget drops an in-flight key so the next Do starts a fresh call.
func (g *SingleFlight[T]) Forget(key string) {
	g.group.Forget(key)
}
