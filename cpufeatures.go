package atperf

import (
	"runtime"
	"strings"

	"golang.org/x/sys/cpu"
)

// CPUFeatures tracks the instruction-set extensions relevant to the
// vectorized kernels.
type CPUFeatures struct {
	HasAVX     bool
	HasAVX2    bool
	HasAVX512F bool
	HasFMA     bool
	HasNEON    bool
	HasSVE     bool
}

var cpuFeatures CPUFeatures

func init() {
	cpuFeatures = CPUFeatures{
		HasAVX:     cpu.X86.HasAVX,
		HasAVX2:    cpu.X86.HasAVX2,
		HasAVX512F: cpu.X86.HasAVX512F,
		HasFMA:     cpu.X86.HasFMA,
		HasNEON:    cpu.ARM64.HasASIMD || runtime.GOARCH == "arm64",
		HasSVE:     cpu.ARM64.HasSVE,
	}
}

// VectorISA returns a label for the widest vector extension available,
// printed by the benchmark drivers so results can be attributed to the
// hardware they ran on.
func VectorISA() string {
	switch {
	case cpuFeatures.HasAVX512F:
		return "AVX512"
	case cpuFeatures.HasAVX2 && cpuFeatures.HasFMA:
		return "AVX2+FMA"
	case cpuFeatures.HasAVX:
		return "AVX"
	case cpuFeatures.HasSVE:
		return "SVE"
	case cpuFeatures.HasNEON:
		return "NEON"
	default:
		return "scalar"
	}
}

// CPUInfo returns a human-readable summary of detected features.
func CPUInfo() string {
	var features []string
	if cpuFeatures.HasAVX {
		features = append(features, "AVX")
	}
	if cpuFeatures.HasAVX2 {
		features = append(features, "AVX2")
	}
	if cpuFeatures.HasAVX512F {
		features = append(features, "AVX512F")
	}
	if cpuFeatures.HasFMA {
		features = append(features, "FMA")
	}
	if cpuFeatures.HasNEON {
		features = append(features, "NEON")
	}
	if cpuFeatures.HasSVE {
		features = append(features, "SVE")
	}
	if len(features) == 0 {
		return "no vector extensions detected"
	}
	return strings.Join(features, ", ")
}
