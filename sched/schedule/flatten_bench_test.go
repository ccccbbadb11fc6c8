package schedule

import "testing"

var benchLayers = []Layer{
	{Threshold: 0.51, Strength: 1.0},
	{Threshold: 0.34, Strength: 2.0},
	{Threshold: 0.18, Strength: 4.0},
	{Threshold: 0.09, Strength: 8.0},
}

func BenchmarkFlatten(b *testing.B) {
	b.ReportAllocs()

	for b.Loop() {
		_, _ = Flatten(benchLayers)
	}
}

func BenchmarkStrengthAt(b *testing.B) {
	s, err := Flatten(benchLayers)
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()

	for b.Loop() {
		s.StrengthAt(0.3)
	}
}
