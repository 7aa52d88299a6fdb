package vsphere

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vmware/govmomi/vim25/mo"
	"github.com/vmware/govmomi/vim25/types"

	"github.com/cloudfacet/vsphere-cloud/pkg/cloud"
)

func testRecord(name, power string, template bool, memMB, cpu int32) *Record {
	return &Record{
		Datastore: "ds1",
		VM: mo.VirtualMachine{
			Config: &types.VirtualMachineConfigInfo{
				GuestFullName: "Ubuntu Linux (64-bit)",
			},
			Summary: types.VirtualMachineSummary{
				Config: types.VirtualMachineConfigSummary{
					Name:         name,
					Template:     template,
					MemorySizeMB: memMB,
					NumCpu:       cpu,
				},
				Storage: &types.VirtualMachineStorageSummary{Committed: 1 << 30},
			},
			Runtime: types.VirtualMachineRuntimeInfo{
				PowerState: types.VirtualMachinePowerState(power),
			},
		},
	}
}

func TestMapImage(t *testing.T) {
	img, ok := mapImage(testRecord("tmpl", "poweredOff", true, 512, 1), "admin")
	require.True(t, ok)
	require.Equal(t, "tmpl", img.ID)
	require.Equal(t, "tmpl", img.Name)
	require.Equal(t, "admin", img.OwnerID)
	require.Equal(t, "Ubuntu Linux (64-bit)", img.Description)
	require.Equal(t, "x86_64", img.Architecture)
	require.Equal(t, cloud.StateAvailable, img.State)
}

func TestMapImage_NoConfigSkipped(t *testing.T) {
	rec := testRecord("tmpl", "poweredOff", true, 512, 1)
	rec.VM.Config = nil

	_, ok := mapImage(rec, "admin")
	require.False(t, ok)
}

func TestMapInstance(t *testing.T) {
	inst, ok := mapInstance(testRecord("web-1", "poweredOn", false, 512, 1), "admin")
	require.True(t, ok)
	require.Equal(t, "web-1", inst.ID)
	require.Equal(t, "ds1", inst.RealmID)
	require.Equal(t, cloud.StateRunning, inst.State)
	require.Equal(t, "medium", inst.ProfileID)
	require.Equal(t, []cloud.Action{cloud.ActionReboot, cloud.ActionStop}, inst.Actions)
	require.Empty(t, inst.PrivateAddresses)
}

func TestMapInstance_OffCatalogProfile(t *testing.T) {
	inst, ok := mapInstance(testRecord("web-1", "poweredOff", false, 999, 9), "admin")
	require.True(t, ok)
	require.Equal(t, cloud.ProfileUnknown, inst.ProfileID)
	require.Equal(t, []cloud.Action{cloud.ActionStart, cloud.ActionDestroy}, inst.Actions)
}

func TestMapInstance_MalformedSkipped(t *testing.T) {
	rec := testRecord("web-1", "poweredOn", false, 512, 1)
	rec.VM.Config = nil
	_, ok := mapInstance(rec, "admin")
	require.False(t, ok)

	rec = testRecord("web-1", "poweredOn", false, 512, 1)
	rec.VM.Summary.Storage = nil
	_, ok = mapInstance(rec, "admin")
	require.False(t, ok)
}

func TestPublicAddresses_GuestIPPreferred(t *testing.T) {
	rec := testRecord("web-1", "poweredOn", false, 512, 1)
	rec.VM.Guest = &types.GuestInfo{
		Net: []types.GuestNicInfo{
			{IpAddress: []string{"10.0.0.5", "10.0.0.6"}, MacAddress: "00:50:56:aa:bb:01"},
			{IpAddress: []string{"10.0.1.7"}},
		},
	}

	require.Equal(t, []string{"10.0.0.5"}, publicAddresses(rec))
}

func TestPublicAddresses_MACFallback(t *testing.T) {
	rec := testRecord("web-1", "poweredOn", false, 512, 1)
	rec.VM.Config.Hardware = types.VirtualHardware{
		Device: []types.BaseVirtualDevice{
			&types.VirtualDisk{},
			&types.VirtualE1000{
				VirtualEthernetCard: types.VirtualEthernetCard{
					MacAddress: "00:50:56:aa:bb:02",
				},
			},
		},
	}

	// No guest info at all: first ethernet MAC serves as placeholder.
	require.Equal(t, []string{"00:50:56:aa:bb:02"}, publicAddresses(rec))

	// Guest info present but without addresses: same fallback.
	rec.VM.Guest = &types.GuestInfo{}
	require.Equal(t, []string{"00:50:56:aa:bb:02"}, publicAddresses(rec))
}

func TestPublicAddresses_NoNetworkInfo(t *testing.T) {
	rec := testRecord("web-1", "poweredOn", false, 512, 1)
	require.Nil(t, publicAddresses(rec))
}

func TestMapRealm(t *testing.T) {
	r := mapRealm(types.DatastoreSummary{Name: "ds1", Accessible: true, FreeSpace: 42 << 30})
	require.Equal(t, cloud.Realm{ID: "ds1", Name: "ds1", State: cloud.StateAvailable, Limit: 42 << 30}, r)

	r = mapRealm(types.DatastoreSummary{Name: "ds2", Accessible: false})
	require.Equal(t, cloud.StateUnavailable, r.State)
}
