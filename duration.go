// Package duration builds elapsed-time values from integer counts of
// named time units, so that fixed timeouts and intervals read as prose:
//
//	timeout := duration.Uint64(10).Seconds()
//	delay := duration.Uint64(5).Minutes()
//	window := duration.Uint64(2).Hours().Add(duration.Uint64(30).Minutes())
//
// Values are held as a (seconds, nanoseconds) pair with a full uint64
// second range, so counts that do not fit time.Duration's int64
// nanoseconds are still exact. Use Std to hand a value to code that
// wants a time.Duration.
//
// Negative counts and unit multiplies that leave the uint64 second
// range are programmer errors, not runtime conditions, and panic with
// a message naming the offending value and unit. The 32-bit kinds
// delegate to the 64-bit kind of the same signedness, so thresholds
// and panic messages are identical across widths.
package duration

import (
	"errors"
	"fmt"
	"math"
	"math/bits"
	"strconv"
	"strings"
	"time"

	"github.com/JohnCGriffin/overflow"
)

const (
	nanosPerSec   = 1_000_000_000
	nanosPerMilli = 1_000_000
	nanosPerMicro = 1_000
	millisPerSec  = 1_000
	microsPerSec  = 1_000_000
)

// ErrStdRange is returned by Std if the value can't fit in a time.Duration.
var ErrStdRange = errors.New("duration exceeds time.Duration range")

// A Duration is an immutable span of elapsed time, held as whole seconds
// plus a sub-second nanosecond remainder. The zero value is a zero-length
// span. Durations are comparable with ==.
type Duration struct {
	secs  uint64
	nanos uint32 // invariant: nanos < nanosPerSec
}

// FromSeconds returns the Duration of exactly secs seconds.
func FromSeconds(secs uint64) Duration {
	return Duration{secs: secs}
}

// FromMillis returns the Duration of exactly ms milliseconds.
func FromMillis(ms uint64) Duration {
	return Duration{
		secs:  ms / millisPerSec,
		nanos: uint32(ms%millisPerSec) * nanosPerMilli,
	}
}

// FromMicros returns the Duration of exactly us microseconds.
func FromMicros(us uint64) Duration {
	return Duration{
		secs:  us / microsPerSec,
		nanos: uint32(us%microsPerSec) * nanosPerMicro,
	}
}

// FromNanos returns the Duration of exactly ns nanoseconds.
func FromNanos(ns uint64) Duration {
	return Duration{
		secs:  ns / nanosPerSec,
		nanos: uint32(ns % nanosPerSec),
	}
}

// Secs returns the whole seconds of d, truncating any sub-second part.
func (d Duration) Secs() uint64 {
	return d.secs
}

// SubsecNanos returns the sub-second part of d in nanoseconds.
// It is always less than one billion.
func (d Duration) SubsecNanos() uint32 {
	return d.nanos
}

// Millis returns d as a whole number of milliseconds, truncating any
// sub-millisecond part. It panics if the count overflows a uint64.
func (d Duration) Millis() uint64 {
	hi, lo := bits.Mul64(d.secs, millisPerSec)
	sum, carry := bits.Add64(lo, uint64(d.nanos/nanosPerMilli), 0)
	if hi != 0 || carry != 0 {
		panic(fmt.Sprintf("duration %s overflows uint64 millisecond capacity", d))
	}
	return sum
}

// Micros returns d as a whole number of microseconds, truncating any
// sub-microsecond part. It panics if the count overflows a uint64.
func (d Duration) Micros() uint64 {
	hi, lo := bits.Mul64(d.secs, microsPerSec)
	sum, carry := bits.Add64(lo, uint64(d.nanos/nanosPerMicro), 0)
	if hi != 0 || carry != 0 {
		panic(fmt.Sprintf("duration %s overflows uint64 microsecond capacity", d))
	}
	return sum
}

// IsZero returns true if d is a zero-length span.
func (d Duration) IsZero() bool {
	return d.secs == 0 && d.nanos == 0
}

// Add returns the sum of d and other. It panics if the sum overflows
// the uint64 second range.
func (d Duration) Add(other Duration) Duration {
	nanos := d.nanos + other.nanos
	secs, carry := bits.Add64(d.secs, other.secs, 0)
	if nanos >= nanosPerSec {
		nanos -= nanosPerSec
		var c uint64
		secs, c = bits.Add64(secs, 1, 0)
		carry += c
	}
	if carry != 0 {
		panic(fmt.Sprintf("duration addition %s + %s overflows uint64 seconds capacity", d, other))
	}
	return Duration{secs: secs, nanos: nanos}
}

// Std converts d to a time.Duration. It returns ErrStdRange if d
// exceeds the roughly 292 years a time.Duration can hold.
func (d Duration) Std() (time.Duration, error) {
	if d.secs > math.MaxInt64 {
		return 0, ErrStdRange
	}
	ns, ok := overflow.Mul64(int64(d.secs), nanosPerSec)
	if !ok {
		return 0, ErrStdRange
	}
	ns, ok = overflow.Add64(ns, int64(d.nanos))
	if !ok {
		return 0, ErrStdRange
	}
	return time.Duration(ns), nil
}

// MustStd is like Std, but panics if d doesn't fit a time.Duration.
func (d Duration) MustStd() time.Duration {
	sd, err := d.Std()
	if err != nil {
		panic(err)
	}
	return sd
}

// String returns d as a decimal number of seconds, e.g. "90s" or "1.5s".
func (d Duration) String() string {
	if d.nanos == 0 {
		return strconv.FormatUint(d.secs, 10) + "s"
	}
	frac := strings.TrimRight(fmt.Sprintf("%09d", d.nanos), "0")
	return fmt.Sprintf("%d.%ss", d.secs, frac)
}
