package pkg

import (
	"context"
	"fmt"
	"io"
	"sort"

	"github.com/shirou/gopsutil/v3/process"
	"github.com/sirupsen/logrus"
)

type Process struct {
	Pid     int32
	Command string
}

// TakeProcesses snapshots the process table: one record per live PID
// with its command name. PIDs that vanish between the listing and the
// name lookup are skipped.
func TakeProcesses() ([]Process, error) {
	ctx := context.Background()
	pids, err := process.PidsWithContext(ctx)
	if err != nil {
		return nil, err
	}
	records := []Process{}
	for _, pid := range pids {
		p, err := process.NewProcessWithContext(ctx, pid)
		if err != nil {
			continue
		}
		name, err := p.NameWithContext(ctx)
		if err != nil {
			logrus.WithField("pid", pid).Debugln("process gone before name read")
			continue
		}
		records = append(records, Process{
			Pid:     pid,
			Command: name,
		})
	}
	return records, nil
}

// WriteProcesses emits "pid command" lines in ascending PID order,
// no header.
func WriteProcesses(w io.Writer, records []Process) {
	sort.Slice(records, func(i, j int) bool {
		return records[i].Pid < records[j].Pid
	})
	for _, r := range records {
		fmt.Fprintf(w, "%d %s\n", r.Pid, r.Command)
	}
}
