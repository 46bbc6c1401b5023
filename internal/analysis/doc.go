// Package analysis provides spectral tools for kinematic series.
//
//   - [FFT]: radix-2 Cooley-Tukey transform
//   - [PowerSpectrum]: magnitude of the positive-frequency bins
//   - [DominantFrequency]: strongest non-DC frequency of a sampled series
//
// # Example
//
//	hz, err := analysis.DominantFrequency(position, kinematics.Dt)
package analysis
