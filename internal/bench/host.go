package bench

import (
	"fmt"
	"runtime"
	"strings"
	"unsafe"

	"golang.org/x/sys/cpu"
)

// Host describes the machine a benchmark runs on.
type Host struct {
	Arch      string
	NumCPU    int
	CacheLine int      // Bytes, as assumed by x/sys/cpu for this architecture.
	Features  []string // SIMD extensions detected at startup.
}

// DetectHost reports the current machine.
func DetectHost() Host {
	h := Host{
		Arch:      runtime.GOARCH,
		NumCPU:    runtime.NumCPU(),
		CacheLine: int(unsafe.Sizeof(cpu.CacheLinePad{})),
	}

	switch runtime.GOARCH {
	case "amd64", "386":
		h.Features = appendIf(h.Features, cpu.X86.HasSSE2, "sse2")
		h.Features = appendIf(h.Features, cpu.X86.HasAVX, "avx")
		h.Features = appendIf(h.Features, cpu.X86.HasAVX2, "avx2")
		h.Features = appendIf(h.Features, cpu.X86.HasFMA, "fma")
		h.Features = appendIf(h.Features, cpu.X86.HasAVX512F, "avx512f")
	case "arm64":
		h.Features = appendIf(h.Features, cpu.ARM64.HasASIMD, "asimd")
		h.Features = appendIf(h.Features, cpu.ARM64.HasSVE, "sve")
	}
	return h
}

// ElementsPerLine returns how many elements of elemSize bytes share a cache line.
func (h Host) ElementsPerLine(elemSize int) int {
	if elemSize <= 0 || h.CacheLine < elemSize {
		return 1
	}
	return h.CacheLine / elemSize
}

// String formats the host for the log.
func (h Host) String() string {
	features := "none"
	if len(h.Features) > 0 {
		features = strings.Join(h.Features, ",")
	}
	return fmt.Sprintf("arch=%s cpus=%d cacheline=%dB simd=%s", h.Arch, h.NumCPU, h.CacheLine, features)
}

func appendIf(list []string, ok bool, name string) []string {
	if ok {
		return append(list, name)
	}
	return list
}
