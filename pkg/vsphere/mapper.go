package vsphere

import (
	"github.com/vmware/govmomi/vim25/types"

	"github.com/cloudfacet/vsphere-cloud/configs"
	"github.com/cloudfacet/vsphere-cloud/pkg/cloud"
)

// mapImage builds the uniform image view of a template machine. Records
// without configuration are skipped (ok == false); a listing never emits a
// partial image.
func mapImage(rec *Record, owner string) (cloud.Image, bool) {
	if rec.VM.Config == nil {
		return cloud.Image{}, false
	}

	name := rec.Name()
	return cloud.Image{
		ID:           name,
		Name:         name,
		OwnerID:      owner,
		Description:  rec.VM.Config.GuestFullName,
		Architecture: configs.Defaults.Cloud.Architecture,
		State:        cloud.TranslateState(cloud.KindImage, rec.PowerState()),
	}, true
}

// mapInstance builds the uniform instance view of a machine. Records whose
// configuration or storage summary is absent are silently skipped rather
// than failing the whole listing.
func mapInstance(rec *Record, owner string) (cloud.Instance, bool) {
	if rec.VM.Config == nil || rec.VM.Summary.Storage == nil {
		return cloud.Instance{}, false
	}

	state := cloud.TranslateState(cloud.KindInstance, rec.PowerState())
	name := rec.Name()
	return cloud.Instance{
		ID:              name,
		Name:            name,
		OwnerID:         owner,
		Description:     rec.VM.Config.GuestFullName,
		RealmID:         rec.Datastore,
		State:           state,
		PublicAddresses: publicAddresses(rec),
		ProfileID: cloud.MatchProfile(
			int64(rec.VM.Summary.Config.MemorySizeMB),
			rec.VM.Summary.Config.NumCpu,
		),
		Actions: cloud.ActionsForState(state),
	}, true
}

// publicAddresses prefers the first IP address of the first guest network
// interface. When the guest reports nothing, the first ethernet MAC from
// the machine's configuration serves as a placeholder address. Private
// addresses are always empty for this provider.
func publicAddresses(rec *Record) []string {
	if g := rec.VM.Guest; g != nil && len(g.Net) > 0 && len(g.Net[0].IpAddress) > 0 {
		return []string{g.Net[0].IpAddress[0]}
	}

	for _, dev := range rec.VM.Config.Hardware.Device {
		card, ok := dev.(types.BaseVirtualEthernetCard)
		if !ok {
			continue
		}
		if mac := card.GetVirtualEthernetCard().MacAddress; mac != "" {
			return []string{mac}
		}
	}
	return nil
}

// mapRealm builds the uniform realm view of a datastore summary.
func mapRealm(s types.DatastoreSummary) cloud.Realm {
	state := cloud.StateUnavailable
	if s.Accessible {
		state = cloud.StateAvailable
	}
	return cloud.Realm{
		ID:    s.Name,
		Name:  s.Name,
		State: state,
		Limit: s.FreeSpace,
	}
}
