package app

import "time"

// Clock abstracts time.Now so the scheduler can be driven by a
// deterministic time source in tests.
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

// SystemClock returns the wall-clock time source.
func SystemClock() Clock { return realClock{} }
