package aptlist

import (
	"fmt"
	"math"
	"math/rand"
)

// Generate builds a list of count records numbered from 1 to count.
// Every tenant is made by tenantFunc from a pseudo random number in [lower, upper).
// The numbers come from a generator seeded with seed,
// so equal arguments always produce an equal list.
// The bounds must be finite, their order does not matter.
func Generate[T comparable](count int, lower, upper float64, seed int64, tenantFunc func(float64) T) *List[T] {
	if upper < lower {
		lower, upper = upper, lower
	}
	var (
		l   = &List[T]{}
		rnd = rand.New(rand.NewSource(seed))
	)
	for i := 0; i < count; i++ {
		l.PushTail(i+1, tenantFunc(between(lower, upper, rnd.Float64())))
	}
	return l
}

// between maps f from [0, 1) onto [lower, upper).
func between(lower, upper, f float64) float64 {
	if lower == upper {
		return lower
	}
	span := upper - lower
	var v float64
	if math.IsInf(span, 0) {
		// the span overflows when the bounds are far apart
		v = lower*(1-f) + upper*f
	} else {
		v = lower + f*span
	}
	if upper <= v {
		v = math.Nextafter(upper, lower)
	}
	return v
}

// NewRandom generates a list whose tenants are named "Tenant <value>",
// where value is printed with six decimals.
func NewRandom[T ~string](count int, lower, upper float64, seed int64) *List[T] {
	return Generate(count, lower, upper, seed, TenantName[T])
}

// TenantName formats a generated value the way NewRandom names its tenants.
func TenantName[T ~string](value float64) T {
	return T(fmt.Sprintf("Tenant %f", value))
}
