package Mixer

import (
	"slices"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

var sample = []int64{1, 2, -3, 3, -2, 0, 4}

// rotateTo returns ring rotated so that it starts at the first v.
func rotateTo(ring []int64, v int64) []int64 {
	i := slices.Index(ring, v)
	if i < 0 {
		return nil
	}
	return append(slices.Clone(ring[i:]), ring[:i]...)
}

func TestRound_ThreeValues(t *testing.T) {
	m := New([]int64{1, 0, -1}, 1)
	m.Round()
	assert.Equal(t, []int64{0, -1, 1}, m.Order())
	for h, want := range []uint{2, 0, 1} {
		assert.Equal(t, want, m.t.PositionOf(uint(h)), "handle %d", h)
	}
	assert.False(t, m.t.Corrupt())
}

func TestRound_Sample(t *testing.T) {
	m := New(sample, 1).WithLogger(zaptest.NewLogger(t))
	m.Round()
	assert.Equal(t, []int64{1, 2, -3, 4, 0, 3, -2}, rotateTo(m.Order(), 1))
	assert.False(t, m.t.Corrupt())

	sum, err := m.Coordinates()
	require.NoError(t, err)
	assert.Equal(t, int64(3), sum)
}

func TestSolve(t *testing.T) {
	log := zaptest.NewLogger(t)
	for _, tc := range []struct {
		name string
		c    Config
		want int64
	}{
		{"part1", Part1, 3},
		{"part2", Part2, 1623178306},
	} {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Solve(sample, tc.c, log)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestMix_KeepsValues(t *testing.T) {
	vs := make([]int64, 500)
	for i := range vs {
		vs[i] = int64((i*7919)%1001) - 500
	}
	m := New(vs, 3)
	m.Mix(3)
	require.False(t, m.t.Corrupt())
	got := m.Order()
	want := make([]int64, len(vs))
	for i, v := range vs {
		want[i] = v * 3
	}
	slices.Sort(got)
	slices.Sort(want)
	assert.Equal(t, want, got)
}

func TestRound_Small(t *testing.T) {
	m := New(nil, 1)
	m.Round()
	_, err := m.Coordinates()
	assert.ErrorIs(t, err, ErrEmpty)

	m = New([]int64{5}, 1)
	m.Round()
	assert.Equal(t, []int64{5}, m.Order())
	_, err = m.Coordinates()
	assert.ErrorIs(t, err, ErrNoZero)

	m = New([]int64{0, 9}, 1)
	m.Mix(4)
	sum, err := m.Coordinates(1, 2, -1)
	require.NoError(t, err)
	assert.Equal(t, int64(9+0+9), sum)
}

func TestParse(t *testing.T) {
	var b strings.Builder
	for _, v := range sample {
		b.WriteString(strconv.FormatInt(v, 10))
		b.WriteString("\n\n")
	}
	vs, err := Parse(strings.NewReader(b.String()))
	require.NoError(t, err)
	assert.Equal(t, sample, vs)

	_, err = Parse(strings.NewReader("1\n2\nx3\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 3")
}
