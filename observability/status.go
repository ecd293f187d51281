package observability

import (
	"os"
	"time"

	"github.com/shirou/gopsutil/process"
)

// Snapshot is one self-measurement of the bot process, backing the
// admin status command.
type Snapshot struct {
	PID        int
	RSSBytes   uint64
	CPUPercent float64
	PIDStatus  string
	Uptime     time.Duration
	Records    int
	Sets       int
}

// Collector samples the running process via the OS process table.
type Collector struct {
	proc      *process.Process
	startedAt time.Time
}

func NewCollector() (*Collector, error) {
	p, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return nil, err
	}
	return &Collector{proc: p, startedAt: time.Now()}, nil
}

// Collect gathers RSS, CPU and scheduler status for the bot process.
// Store counters are filled in by the caller.
func (c *Collector) Collect() (Snapshot, error) {
	memInfo, err := c.proc.MemoryInfo()
	if err != nil {
		return Snapshot{}, err
	}
	cpu, err := c.proc.CPUPercent()
	if err != nil {
		return Snapshot{}, err
	}
	status, err := c.proc.Status()
	if err != nil {
		return Snapshot{}, err
	}

	return Snapshot{
		PID:        os.Getpid(),
		RSSBytes:   memInfo.RSS,
		CPUPercent: cpu,
		PIDStatus:  status,
		Uptime:     time.Since(c.startedAt).Round(time.Second),
	}, nil
}
