// Package hostdisk reports host volume capacity for the CLI's audit view.
// It is presentation-only context around an audit ("how full is the drive
// these app-data folders live on") and plays no part in the JSON inventory
// contract appinventory produces.
package hostdisk

import (
	"sort"

	"github.com/shirou/gopsutil/v4/disk"
)

// VolumeUsage reports one mounted volume's total and free capacity.
type VolumeUsage struct {
	MountPoint string
	TotalBytes uint64
	FreeBytes  uint64
}

// ListVolumes reports capacity for every partition gopsutil can enumerate,
// sorted by mount point. A partition whose usage can't be read (removable
// media with no disc inserted, a disconnected network share) is silently
// omitted rather than failing the whole call.
func ListVolumes() []VolumeUsage {
	partitions, err := disk.Partitions(false)
	if err != nil {
		return nil
	}

	out := make([]VolumeUsage, 0, len(partitions))
	for _, p := range partitions {
		usage, err := disk.Usage(p.Mountpoint)
		if err != nil {
			continue
		}
		out = append(out, VolumeUsage{
			MountPoint: p.Mountpoint,
			TotalBytes: usage.Total,
			FreeBytes:  usage.Free,
		})
	}

	sort.Slice(out, func(i, j int) bool { return out[i].MountPoint < out[j].MountPoint })
	return out
}

// VolumeForPath reports the usage of whichever mounted volume contains
// path. Returns the zero value and false if path resolves to no known
// partition or its usage can't be read.
func VolumeForPath(path string) (VolumeUsage, bool) {
	usage, err := disk.Usage(path)
	if err != nil {
		return VolumeUsage{}, false
	}
	return VolumeUsage{MountPoint: path, TotalBytes: usage.Total, FreeBytes: usage.Free}, true
}
