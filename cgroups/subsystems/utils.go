package subsystems

import (
	"github.com/moby/sys/mountinfo"
	"github.com/opencontainers/runc/libcontainer/cgroups/fs2"
	"golang.org/x/sys/unix"
)

// FindCgroupMountPoint returns the mount point of the unified hierarchy as
// listed in /proc/self/mountinfo. The systemd default location wins when the
// hierarchy is mounted more than once.
func FindCgroupMountPoint() string {
	mounts, err := mountinfo.GetMounts(mountinfo.FSTypeFilter("cgroup2"))
	if err != nil || len(mounts) == 0 {
		return fs2.UnifiedMountpoint
	}
	for _, m := range mounts {
		if m.Mountpoint == fs2.UnifiedMountpoint {
			return m.Mountpoint
		}
	}
	return mounts[0].Mountpoint
}

// IsCgroup2 reports whether path lies on a cgroup2 filesystem.
func IsCgroup2(path string) (bool, error) {
	var st unix.Statfs_t
	if err := unix.Statfs(path, &st); err != nil {
		return false, err
	}
	return st.Type == unix.CGROUP2_SUPER_MAGIC, nil
}
