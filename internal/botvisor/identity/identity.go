// Package identity hands out bot names: a fixed prefix followed by a strictly increasing counter.
package identity

import (
	"context"
	"regexp"
	"strconv"
	"strings"
	"sync/atomic"
)

// Allocator issues unique job names. Names are never reissued, even after the job is stopped.
type Allocator interface {
	Allocate(ctx context.Context) (string, error)
	// Observe raises the counter floor so that name, if it follows the naming
	// convention, is never issued again.
	Observe(name string)
	Owns(name string) bool
}

// Naming is the prefix+number convention shared by every allocator.
type Naming struct {
	prefix  string
	pattern *regexp.Regexp
}

func NewNaming(prefix string) Naming {
	return Naming{
		prefix:  prefix,
		pattern: regexp.MustCompile("^" + regexp.QuoteMeta(prefix) + "[0-9]+$"),
	}
}

func (n Naming) Format(seq uint64) string {
	return n.prefix + strconv.FormatUint(seq, 10)
}

// Owns reports whether name was (or could have been) issued under this convention.
func (n Naming) Owns(name string) bool {
	return n.pattern.MatchString(name)
}

// Sequence extracts the counter from an owned name.
func (n Naming) Sequence(name string) (uint64, bool) {
	if !n.Owns(name) {
		return 0, false
	}
	seq, err := strconv.ParseUint(strings.TrimPrefix(name, n.prefix), 10, 64)
	if err != nil {
		return 0, false
	}
	return seq, true
}

// Memory is the process-local allocator. The first name issued is prefix1.
type Memory struct {
	Naming
	last atomic.Uint64
}

func NewMemory(prefix string) *Memory {
	return &Memory{Naming: NewNaming(prefix)}
}

func (m *Memory) Allocate(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return m.Format(m.last.Add(1)), nil
}

func (m *Memory) Observe(name string) {
	seq, ok := m.Sequence(name)
	if !ok {
		return
	}
	raiseFloor(&m.last, seq)
}

func raiseFloor(counter *atomic.Uint64, seq uint64) {
	for {
		cur := counter.Load()
		if cur >= seq || counter.CompareAndSwap(cur, seq) {
			return
		}
	}
}
