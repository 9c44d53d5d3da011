package minimax

import (
	"time"
)

type _Timer struct {
	start time.Time
}

func _NewTimer() *_Timer {
	return &_Timer{time.Now()}
}

// Set the 'start' as now
func (t *_Timer) Reset() {
	t.start = time.Now()
}

// Milliseconds since the last reset, at least 1
func (t *_Timer) Deltatime() int {
	return max(int(time.Since(t.start).Milliseconds()), 1)
}
