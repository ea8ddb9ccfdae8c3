package utils

import (
	"fmt"
	"sort"
	"sync"
	"sync/atomic"
	"time"
)

/*
Named region timers for profiling hot assembly loops.

The registry is a process-wide singleton with explicit init-before-use:
InitTimers(np) must be called once, with the worker count, before NewTimer.
Numerical code treats timers as optional and runs identically without them.
*/

type timerSlot struct {
	calls int64
	ns    int64
	_     [6]int64 // keeps worker slots on separate cache lines
}

type Timer struct {
	name  string
	slots []timerSlot
}

var timerRegistry struct {
	sync.Mutex
	timers map[string]*Timer
	np     int
}

func InitTimers(np int) {
	if np < 1 {
		np = 1
	}
	timerRegistry.Lock()
	defer timerRegistry.Unlock()
	timerRegistry.timers = make(map[string]*Timer)
	timerRegistry.np = np
}

func TimersInitialized() bool {
	timerRegistry.Lock()
	defer timerRegistry.Unlock()
	return timerRegistry.timers != nil
}

func NewTimer(name string) (t *Timer) {
	timerRegistry.Lock()
	defer timerRegistry.Unlock()
	if timerRegistry.timers == nil {
		panic("InitTimers must be called before NewTimer")
	}
	var exists bool
	if t, exists = timerRegistry.timers[name]; exists {
		return
	}
	t = &Timer{
		name:  name,
		slots: make([]timerSlot, timerRegistry.np),
	}
	timerRegistry.timers[name] = t
	return
}

// Region opens a traced region attributed to worker tid; the returned func
// closes it. Safe for concurrent use from distinct workers.
func (t *Timer) Region(tid int) func() {
	if tid < 0 || tid >= len(t.slots) {
		tid = 0
	}
	var (
		slot  = &t.slots[tid]
		start = time.Now()
	)
	return func() {
		atomic.AddInt64(&slot.calls, 1)
		atomic.AddInt64(&slot.ns, int64(time.Since(start)))
	}
}

func (t *Timer) Name() string { return t.name }

func (t *Timer) Calls() (calls int64) {
	for i := range t.slots {
		calls += atomic.LoadInt64(&t.slots[i].calls)
	}
	return
}

func (t *Timer) Duration() (d time.Duration) {
	for i := range t.slots {
		d += time.Duration(atomic.LoadInt64(&t.slots[i].ns))
	}
	return
}

func TimerReport() (report string) {
	timerRegistry.Lock()
	defer timerRegistry.Unlock()
	if timerRegistry.timers == nil {
		return "timers not initialized\n"
	}
	names := make([]string, 0, len(timerRegistry.timers))
	for name := range timerRegistry.timers {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		t := timerRegistry.timers[name]
		report += fmt.Sprintf("%-30s %10d calls %14v total\n",
			t.name, t.Calls(), t.Duration())
	}
	return
}
