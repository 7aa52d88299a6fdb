package cloud

import "github.com/cloudfacet/vsphere-cloud/configs"

// HardwareProfile is a named tier of cpu/memory allocation.
type HardwareProfile struct {
	ID       string
	CPU      int32
	MemoryMB int64
}

// ProfileUnknown is the wildcard tier reported for machines whose
// configuration matches no defined profile. Its values are unconstrained.
const ProfileUnknown = "unknown"

// Profiles returns the profile catalog in tier order, ending with the
// wildcard tier.
func Profiles() []HardwareProfile {
	out := make([]HardwareProfile, 0, len(configs.Defaults.Profiles)+1)
	for _, p := range configs.Defaults.Profiles {
		out = append(out, HardwareProfile{ID: p.ID, CPU: p.CPU, MemoryMB: p.MemoryMB})
	}
	return append(out, HardwareProfile{ID: ProfileUnknown})
}

// ProfileByID resolves a profile id to its concrete tier.
func ProfileByID(id string) (HardwareProfile, bool) {
	for _, p := range Profiles() {
		if p.ID == id {
			return p, true
		}
	}
	return HardwareProfile{}, false
}

// MatchProfile maps an observed (memory, cpu) pair to a profile id by exact
// equality against the catalog. The mapping is total: every pair resolves
// to exactly one tier, with "unknown" as the catch-all.
func MatchProfile(memoryMB int64, cpu int32) string {
	for _, p := range configs.Defaults.Profiles {
		if p.MemoryMB == memoryMB && p.CPU == cpu {
			return p.ID
		}
	}
	return ProfileUnknown
}
