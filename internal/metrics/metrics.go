package metrics

import (
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/disk"
	"github.com/shirou/gopsutil/v3/mem"
	"github.com/shirou/gopsutil/v3/process"

	"eventdesk-console-go/internal/push"
)

// Sample is one observation of the console process and its host, plus the
// cumulative upstream request counters at capture time.
type Sample struct {
	CapturedAt        time.Time `json:"capturedAt"`
	ProcessRSSBytes   int64     `json:"processRssBytes"`
	ProcessCpuLoad    float64   `json:"processCpuLoad"`
	SystemCpuLoad     float64   `json:"systemCpuLoad"`
	SystemMemoryTotal int64     `json:"systemMemoryTotalBytes"`
	SystemMemoryUsed  int64     `json:"systemMemoryUsedBytes"`
	DiskTotalBytes    int64     `json:"diskTotalBytes"`
	DiskUsedBytes     int64     `json:"diskUsedBytes"`
	UpstreamRequests  int64     `json:"upstreamRequests"`
	UpstreamFailures  int64     `json:"upstreamFailures"`
}

// Recorder samples the host, counts upstream requests, keeps a bounded
// in-memory history, and broadcasts each sample over its hub.
type Recorder struct {
	Hub      *push.Hub[Sample]
	DiskPath string

	requests atomic.Int64
	failures atomic.Int64

	mu      sync.Mutex
	history []Sample
	maxKept int
}

func NewRecorder(diskPath string) *Recorder {
	return &Recorder{
		Hub:      push.NewHub[Sample](),
		DiskPath: diskPath,
		maxKept:  500,
	}
}

// RequestCompleted implements upstream.Observer.
func (r *Recorder) RequestCompleted(ok bool) {
	r.requests.Add(1)
	if !ok {
		r.failures.Add(1)
	}
}

// Capture takes one sample, records it in the history, and broadcasts it.
// Individual gopsutil probes can fail on exotic hosts; missing readings stay
// zero rather than failing the whole sample.
func (r *Recorder) Capture() Sample {
	sample := Sample{
		CapturedAt:       time.Now().UTC(),
		UpstreamRequests: r.requests.Load(),
		UpstreamFailures: r.failures.Load(),
	}
	if proc, err := process.NewProcess(int32(os.Getpid())); err == nil {
		if info, err := proc.MemoryInfo(); err == nil && info != nil {
			sample.ProcessRSSBytes = int64(info.RSS)
		}
		if perc, err := proc.CPUPercent(); err == nil {
			sample.ProcessCpuLoad = perc / 100.0
		}
	}
	if memStat, err := mem.VirtualMemory(); err == nil {
		sample.SystemMemoryTotal = int64(memStat.Total)
		sample.SystemMemoryUsed = int64(memStat.Total - memStat.Available)
	}
	if sysCPU, err := cpu.Percent(0, false); err == nil && len(sysCPU) > 0 {
		sample.SystemCpuLoad = sysCPU[0] / 100.0
	}
	diskStat, err := disk.Usage(r.DiskPath)
	if err != nil {
		diskStat, err = disk.Usage("/")
	}
	if err == nil {
		sample.DiskTotalBytes = int64(diskStat.Total)
		sample.DiskUsedBytes = int64(diskStat.Used)
	}

	r.mu.Lock()
	r.history = append(r.history, sample)
	if len(r.history) > r.maxKept {
		r.history = r.history[len(r.history)-r.maxKept:]
	}
	r.mu.Unlock()
	r.Hub.Broadcast(sample)
	return sample
}

// History returns up to limit samples, oldest first.
func (r *Recorder) History(limit int) []Sample {
	r.mu.Lock()
	defer r.mu.Unlock()
	if limit <= 0 || limit > len(r.history) {
		limit = len(r.history)
	}
	out := make([]Sample, limit)
	copy(out, r.history[len(r.history)-limit:])
	return out
}
