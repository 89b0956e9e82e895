package duration

import (
	"fmt"
	"math/bits"
)

// Seconds per unit. Day and week are fixed multiples, not calendar
// units: a "day" here is always 86400 seconds regardless of DST or
// leap seconds.
const (
	// SecondsPerMinute is the number of seconds in a minute.
	SecondsPerMinute = 60

	// SecondsPerHour is the number of seconds in an hour.
	SecondsPerHour = 3600

	// SecondsPerDay is the number of seconds in a fixed 24-hour day.
	SecondsPerDay = 86400

	// SecondsPerWeek is the number of seconds in a fixed 7-day week.
	SecondsPerWeek = 604800
)

// mulUnit returns n * perUnit, panicking if the product leaves the
// uint64 range. All super-second unit methods funnel through here so
// every kind shares one overflow threshold and message shape.
func mulUnit(n, perUnit uint64, unit string) uint64 {
	hi, lo := bits.Mul64(n, perUnit)
	if hi != 0 {
		panic(fmt.Sprintf("duration value %d %s overflows uint64 seconds capacity", n, unit))
	}
	return lo
}

// A Uint64 is an unsigned count of time units.
type Uint64 uint64

// Seconds returns the Duration of n seconds.
func (n Uint64) Seconds() Duration { return FromSeconds(uint64(n)) }

// Minutes returns the Duration of n minutes.
// It panics if the equivalent second count overflows a uint64.
func (n Uint64) Minutes() Duration {
	return FromSeconds(mulUnit(uint64(n), SecondsPerMinute, "minutes"))
}

// Hours returns the Duration of n hours.
// It panics if the equivalent second count overflows a uint64.
func (n Uint64) Hours() Duration {
	return FromSeconds(mulUnit(uint64(n), SecondsPerHour, "hours"))
}

// Days returns the Duration of n fixed 24-hour days. It does not
// account for calendar days or DST.
// It panics if the equivalent second count overflows a uint64.
func (n Uint64) Days() Duration {
	return FromSeconds(mulUnit(uint64(n), SecondsPerDay, "days"))
}

// Weeks returns the Duration of n fixed 7-day weeks. It does not
// account for calendar weeks or DST.
// It panics if the equivalent second count overflows a uint64.
func (n Uint64) Weeks() Duration {
	return FromSeconds(mulUnit(uint64(n), SecondsPerWeek, "weeks"))
}

// Milliseconds returns the Duration of n milliseconds.
func (n Uint64) Milliseconds() Duration { return FromMillis(uint64(n)) }

// Microseconds returns the Duration of n microseconds.
func (n Uint64) Microseconds() Duration { return FromMicros(uint64(n)) }

// Nanoseconds returns the Duration of n nanoseconds.
func (n Uint64) Nanoseconds() Duration { return FromNanos(uint64(n)) }

// A Uint32 is an unsigned count of time units. Its methods delegate to
// Uint64, so both unsigned widths share thresholds and panic messages.
type Uint32 uint32

// Seconds returns the Duration of n seconds.
func (n Uint32) Seconds() Duration { return Uint64(n).Seconds() }

// Minutes returns the Duration of n minutes.
func (n Uint32) Minutes() Duration { return Uint64(n).Minutes() }

// Hours returns the Duration of n hours.
func (n Uint32) Hours() Duration { return Uint64(n).Hours() }

// Days returns the Duration of n fixed 24-hour days.
func (n Uint32) Days() Duration { return Uint64(n).Days() }

// Weeks returns the Duration of n fixed 7-day weeks.
func (n Uint32) Weeks() Duration { return Uint64(n).Weeks() }

// Milliseconds returns the Duration of n milliseconds.
func (n Uint32) Milliseconds() Duration { return Uint64(n).Milliseconds() }

// Microseconds returns the Duration of n microseconds.
func (n Uint32) Microseconds() Duration { return Uint64(n).Microseconds() }

// Nanoseconds returns the Duration of n nanoseconds.
func (n Uint32) Nanoseconds() Duration { return Uint64(n).Nanoseconds() }

// An Int64 is a signed count of time units. A duration has no sign, so
// every method panics on a negative count.
type Int64 int64

// nonneg converts n for the Uint64 methods, panicking if n is negative.
func (n Int64) nonneg(unit string) Uint64 {
	if n < 0 {
		panic(fmt.Sprintf("duration cannot be negative: got %d %s", n, unit))
	}
	return Uint64(n)
}

// Seconds returns the Duration of n seconds. It panics if n is negative.
func (n Int64) Seconds() Duration { return n.nonneg("seconds").Seconds() }

// Minutes returns the Duration of n minutes. It panics if n is negative.
func (n Int64) Minutes() Duration { return n.nonneg("minutes").Minutes() }

// Hours returns the Duration of n hours. It panics if n is negative.
func (n Int64) Hours() Duration { return n.nonneg("hours").Hours() }

// Days returns the Duration of n fixed 24-hour days. It panics if n is
// negative.
func (n Int64) Days() Duration { return n.nonneg("days").Days() }

// Weeks returns the Duration of n fixed 7-day weeks. It panics if n is
// negative.
func (n Int64) Weeks() Duration { return n.nonneg("weeks").Weeks() }

// Milliseconds returns the Duration of n milliseconds. It panics if n
// is negative.
func (n Int64) Milliseconds() Duration { return n.nonneg("milliseconds").Milliseconds() }

// Microseconds returns the Duration of n microseconds. It panics if n
// is negative.
func (n Int64) Microseconds() Duration { return n.nonneg("microseconds").Microseconds() }

// Nanoseconds returns the Duration of n nanoseconds. It panics if n is
// negative.
func (n Int64) Nanoseconds() Duration { return n.nonneg("nanoseconds").Nanoseconds() }

// An Int32 is a signed count of time units. Its methods delegate to
// Int64, so both signed widths share thresholds and panic messages.
type Int32 int32

// Seconds returns the Duration of n seconds. It panics if n is negative.
func (n Int32) Seconds() Duration { return Int64(n).Seconds() }

// Minutes returns the Duration of n minutes. It panics if n is negative.
func (n Int32) Minutes() Duration { return Int64(n).Minutes() }

// Hours returns the Duration of n hours. It panics if n is negative.
func (n Int32) Hours() Duration { return Int64(n).Hours() }

// Days returns the Duration of n fixed 24-hour days. It panics if n is
// negative.
func (n Int32) Days() Duration { return Int64(n).Days() }

// Weeks returns the Duration of n fixed 7-day weeks. It panics if n is
// negative.
func (n Int32) Weeks() Duration { return Int64(n).Weeks() }

// Milliseconds returns the Duration of n milliseconds. It panics if n
// is negative.
func (n Int32) Milliseconds() Duration { return Int64(n).Milliseconds() }

// Microseconds returns the Duration of n microseconds. It panics if n
// is negative.
func (n Int32) Microseconds() Duration { return Int64(n).Microseconds() }

// Nanoseconds returns the Duration of n nanoseconds. It panics if n is
// negative.
func (n Int32) Nanoseconds() Duration { return Int64(n).Nanoseconds() }
