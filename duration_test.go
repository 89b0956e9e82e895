package duration

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructors(t *testing.T) {
	testCases := []struct {
		desc      string
		got       Duration
		wantSecs  uint64
		wantNanos uint32
	}{
		{
			desc:     "seconds",
			got:      FromSeconds(90),
			wantSecs: 90,
		},
		{
			desc:     "max seconds",
			got:      FromSeconds(math.MaxUint64),
			wantSecs: math.MaxUint64,
		},
		{
			desc:      "millis split into secs and nanos",
			got:       FromMillis(1500),
			wantSecs:  1,
			wantNanos: 500_000_000,
		},
		{
			desc:      "sub-second millis",
			got:       FromMillis(25),
			wantNanos: 25_000_000,
		},
		{
			desc:      "micros split into secs and nanos",
			got:       FromMicros(2_000_001),
			wantSecs:  2,
			wantNanos: 1_000,
		},
		{
			desc:      "nanos split into secs and nanos",
			got:       FromNanos(3_000_000_001),
			wantSecs:  3,
			wantNanos: 1,
		},
		{
			desc: "zero",
			got:  FromNanos(0),
		},
	}
	for _, tC := range testCases {
		t.Run(tC.desc, func(t *testing.T) {
			assert.Equal(t, tC.wantSecs, tC.got.Secs())
			assert.Equal(t, tC.wantNanos, tC.got.SubsecNanos())
		})
	}
}

func TestDuration_Millis(t *testing.T) {
	assert.Equal(t, uint64(1500), FromMillis(1500).Millis())
	assert.Equal(t, uint64(2000), FromSeconds(2).Millis())

	// Sub-millisecond parts truncate.
	assert.Equal(t, uint64(0), FromMicros(999).Millis())

	// The full uint64 millisecond range round-trips exactly.
	assert.Equal(t, uint64(math.MaxUint64), FromMillis(math.MaxUint64).Millis())

	assert.Panics(t, func() { FromSeconds(math.MaxUint64).Millis() })
}

func TestDuration_Micros(t *testing.T) {
	assert.Equal(t, uint64(2_000_001), FromMicros(2_000_001).Micros())
	assert.Equal(t, uint64(0), FromNanos(999).Micros())
	assert.Equal(t, uint64(math.MaxUint64), FromMicros(math.MaxUint64).Micros())

	assert.Panics(t, func() { FromSeconds(math.MaxUint64).Micros() })
}

func TestDuration_Add(t *testing.T) {
	testCases := []struct {
		desc string
		a, b Duration
		want Duration
	}{
		{
			desc: "whole seconds",
			a:    FromSeconds(7200),
			b:    FromSeconds(1815),
			want: FromSeconds(9015),
		},
		{
			desc: "nanos carry into seconds",
			a:    FromMillis(1700),
			b:    FromMillis(1600),
			want: FromMillis(3300),
		},
		{
			desc: "zero is identity",
			a:    FromSeconds(42),
			b:    Duration{},
			want: FromSeconds(42),
		},
	}
	for _, tC := range testCases {
		t.Run(tC.desc, func(t *testing.T) {
			assert.Equal(t, tC.want, tC.a.Add(tC.b))
		})
	}
}

func TestDuration_Add_overflow(t *testing.T) {
	assert.Panics(t, func() {
		FromSeconds(math.MaxUint64).Add(FromSeconds(1))
	})
	// A nanosecond carry past the max second count also overflows.
	assert.Panics(t, func() {
		FromSeconds(math.MaxUint64).Add(FromMillis(1500))
	})
}

func TestDuration_Std(t *testing.T) {
	sd, err := FromMillis(1500).Std()
	require.NoError(t, err)
	assert.Equal(t, 1500*time.Millisecond, sd)

	sd, err = FromSeconds(0).Std()
	require.NoError(t, err)
	assert.Equal(t, time.Duration(0), sd)

	// Largest second count representable as int64 nanoseconds.
	const maxStdSecs = math.MaxInt64 / 1_000_000_000
	_, err = FromSeconds(maxStdSecs).Std()
	assert.NoError(t, err)

	_, err = FromSeconds(maxStdSecs + 1).Std()
	assert.Equal(t, ErrStdRange, err)

	_, err = FromSeconds(math.MaxUint64).Std()
	assert.Equal(t, ErrStdRange, err)
}

func TestDuration_MustStd(t *testing.T) {
	assert.Equal(t, 5*time.Minute, Uint64(5).Minutes().MustStd())
	assert.Panics(t, func() { FromSeconds(math.MaxUint64).MustStd() })
}

func TestDuration_IsZero(t *testing.T) {
	assert.True(t, Duration{}.IsZero())
	assert.True(t, FromSeconds(0).IsZero())
	assert.False(t, FromNanos(1).IsZero())
}

func TestDuration_String(t *testing.T) {
	testCases := []struct {
		desc string
		in   Duration
		want string
	}{
		{
			desc: "whole seconds",
			in:   FromSeconds(90),
			want: "90s",
		},
		{
			desc: "zero",
			in:   Duration{},
			want: "0s",
		},
		{
			desc: "fraction trims trailing zeros",
			in:   FromMillis(1500),
			want: "1.5s",
		},
		{
			desc: "fraction keeps leading zeros",
			in:   FromNanos(1),
			want: "0.000000001s",
		},
	}
	for _, tC := range testCases {
		t.Run(tC.desc, func(t *testing.T) {
			assert.Equal(t, tC.want, tC.in.String())
		})
	}
}
