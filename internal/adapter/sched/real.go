// Package sched provides the timer implementations behind the Scheduler
// port: Real for production, Manual for tests driving a virtual clock.
package sched

import "time"

type Real struct{}

func (Real) After(d time.Duration, fn func()) (cancel func()) {
	timer := time.AfterFunc(d, fn)
	return func() { timer.Stop() }
}
