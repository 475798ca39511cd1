package service

import (
	"log"
	"time"
)

// DateLayout is the format of the created date stamped on new records.
const DateLayout = "2006-01-02"

// Clock returns the current time. Services use it to stamp records.
type Clock func() time.Time

// base holds the dependencies shared by every service.
type base struct {
	logger *log.Logger
	now    Clock
}

func newBase(logger *log.Logger) base {
	if logger == nil {
		logger = log.Default()
	}
	return base{logger: logger, now: time.Now}
}

// SetClock replaces the time source. Intended for tests.
func (b *base) SetClock(clock Clock) {
	if clock != nil {
		b.now = clock
	}
}

func (b *base) today() string {
	return b.now().Format(DateLayout)
}
