package noise

// Fractal4 sums settings.Octaves layers of n. Each octave multiplies the
// frequency by the lacunarity, the amplitude by the persistence and uses the
// seed offset by its index. The sum is divided by the total amplitude, so a
// single octave returns the base sample unchanged.
func Fractal4(n Noise, positions Position4, settings Settings) Sample4 {
	hash := SeedHash4(settings.Seed)
	frequency := int(settings.Frequency)
	persistence := float64(settings.Persistence)
	amplitude, amplitudeSum := 1.0, 0.0

	var sum Sample4
	for o := int32(0); o < settings.Octaves; o++ {
		sum = sum.Add(n.Noise4(positions, hash.Offset(o), frequency).Scale(amplitude))
		amplitudeSum += amplitude
		frequency *= int(settings.Lacunarity)
		amplitude *= persistence
	}
	if amplitudeSum == 0 {
		return Sample4{}
	}
	return sum.Div(amplitudeSum)
}
