package valuecurve

// Clamp limits v to the range [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	return min(max(v, lo), hi)
}

// Lerp linearly interpolates between a and b.
func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// Remap maps v from the range [fromLo, fromHi] to the range [toLo, toHi].
// Values outside the source range map proportionally beyond the target
// range.
func Remap(v, fromLo, fromHi, toLo, toHi float64) float64 {
	return toLo + (v-fromLo)*(toHi-toLo)/(fromHi-fromLo)
}
