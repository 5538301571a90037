// Package Mixer moves every number of a circular list forward or backward by
// its own value, in the original order of the list, using a Trees.Tree to
// keep each move O(log n).
package Mixer

import (
	"errors"

	"github.com/g-m-twostay/go-ostree/Trees"
	"go.uber.org/zap"
)

var (
	ErrEmpty  = errors.New("mixer: empty list")
	ErrNoZero = errors.New("mixer: list has no zero")
)

// DefaultOffsets are the positions after zero summed by Coordinates.
var DefaultOffsets = []int{1000, 2000, 3000}

// Config of a full run.
type Config struct {
	Key    int64 // every value is multiplied by Key before mixing.
	Rounds int
}

var (
	Part1 = Config{Key: 1, Rounds: 1}
	Part2 = Config{Key: 811589153, Rounds: 10}
)

// Mixer holds the values in their original order, indexed by handle, and the
// tree holding the handles in their current order.
type Mixer struct {
	vs  []int64
	t   *Trees.Tree[uint]
	log *zap.Logger
}

// New Mixer over values multiplied by key, in their original order.
func New(values []int64, key int64) *Mixer {
	vs := make([]int64, len(values))
	for i, v := range values {
		vs[i] = v * key
	}
	return &Mixer{vs: vs, t: Trees.Identity(uint(len(vs))), log: zap.NewNop()}
}

// WithLogger sets the logger for per round debug output. A nil l disables it.
func (u *Mixer) WithLogger(l *zap.Logger) *Mixer {
	if l == nil {
		l = zap.NewNop()
	}
	u.log = l
	return u
}

// Len of the list.
func (u *Mixer) Len() int {
	return len(u.vs)
}

// Round moves every value once, in the original order. A value is taken out
// of the ring before it moves, so it travels around a ring of n-1 elements.
func (u *Mixer) Round() {
	if len(u.vs) < 2 {
		return
	}
	ring := int64(len(u.vs) - 1)
	for h, v := range u.vs {
		p := u.t.PositionOf(uint(h))
		u.t.RemoveAt(p)
		np := (int64(p) + v%ring) % ring
		if np < 0 {
			np += ring
		}
		u.t.InsertAt(uint(h), uint(np))
	}
}

// Mix runs rounds rounds.
func (u *Mixer) Mix(rounds int) {
	for i := range rounds {
		u.Round()
		u.log.Debug("mixed", zap.Int("round", i+1), zap.Int("of", rounds), zap.Uint8("height", u.t.Height()))
	}
}

// Order returns the values in their current order, starting at position 0.
func (u *Mixer) Order() []int64 {
	res := make([]int64, 0, len(u.vs))
	u.t.InOrder(func(h uint) bool {
		res = append(res, u.vs[h])
		return true
	}, nil)
	return res
}

// Coordinates sums the values found offsets positions after the value 0,
// wrapping around the ring. DefaultOffsets are used when none are given.
func (u *Mixer) Coordinates(offsets ...int) (int64, error) {
	if len(u.vs) == 0 {
		return 0, ErrEmpty
	}
	zero := -1
	for h, v := range u.vs {
		if v == 0 {
			zero = h
			break
		}
	}
	if zero < 0 {
		return 0, ErrNoZero
	}
	if len(offsets) == 0 {
		offsets = DefaultOffsets
	}
	n := len(u.vs)
	p := int(u.t.PositionOf(uint(zero)))
	var sum int64
	for _, off := range offsets {
		at := ((p+off)%n + n) % n
		v := u.vs[u.t.NodeAt(uint(at))]
		u.log.Debug("coordinate", zap.Int("offset", off), zap.Int("position", at), zap.Int64("value", v))
		sum += v
	}
	return sum, nil
}

// Solve mixes values as configured by c and returns the sum of the values
// at DefaultOffsets. log may be nil.
func Solve(values []int64, c Config, log *zap.Logger) (int64, error) {
	m := New(values, c.Key).WithLogger(log)
	m.log.Info("mixing", zap.Int("len", m.Len()), zap.Int64("key", c.Key), zap.Int("rounds", c.Rounds))
	m.Mix(c.Rounds)
	return m.Coordinates()
}
