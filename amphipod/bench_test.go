package amphipod_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/aocsearch/amphipod"
)

// BenchmarkSolve_Example measures the two-deep worked example.
func BenchmarkSolve_Example(b *testing.B) {
	burrow, err := amphipod.Parse(strings.NewReader(burrowExample))
	if err != nil {
		b.Fatalf("setup Parse failed: %v", err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = amphipod.Solve(burrow)
	}
}

// BenchmarkSolve_Unfolded measures the four-deep variant.
func BenchmarkSolve_Unfolded(b *testing.B) {
	burrow, err := amphipod.Parse(strings.NewReader(burrowExample))
	if err != nil {
		b.Fatalf("setup Parse failed: %v", err)
	}
	if burrow, err = burrow.Unfold(); err != nil {
		b.Fatalf("setup Unfold failed: %v", err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = amphipod.Solve(burrow)
	}
}
