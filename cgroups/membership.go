package cgroups

import (
	"fmt"

	runccgroups "github.com/opencontainers/runc/libcontainer/cgroups"
)

// ProcSelfCgroup lists the control groups of the calling process.
const ProcSelfCgroup = "/proc/self/cgroup"

// ReadMembership returns the unified hierarchy control group recorded in a
// /proc/<pid>/cgroup style file, i.e. the path of its "0::" entry.
func ReadMembership(procFile string) (Path, error) {
	entries, err := runccgroups.ParseCgroupFile(procFile)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", procFile, err)
	}
	p, ok := entries[""]
	if !ok {
		return nil, fmt.Errorf("%s has no cgroup v2 entry, is the unified hierarchy mounted?", procFile)
	}
	return ParsePath(p)
}
