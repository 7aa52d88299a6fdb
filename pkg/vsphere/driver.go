package vsphere

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"
	"github.com/vmware/govmomi/object"
	"github.com/vmware/govmomi/vim25/types"

	"github.com/cloudfacet/vsphere-cloud/configs"
	"github.com/cloudfacet/vsphere-cloud/pkg/cloud"
)

// Driver implements the uniform cloud contract against a vCenter or ESXi
// endpoint. It holds no session state: every operation connects with the
// supplied credentials, derives a fresh inventory view and disconnects, so
// concurrent callers are fully independent.
type Driver struct {
	await awaiter
}

// NewDriver returns a Driver that uses the endpoint's native task tracking
// for the operations that block until completion.
func NewDriver() *Driver {
	return &Driver{await: taskAwaiter{}}
}

// compile-time interface compliance check
var _ cloud.Driver = (*Driver)(nil)

// Images lists template machines in their uniform image view, sorted
// ascending by (owner, name). Records without configuration are skipped.
func (d *Driver) Images(ctx context.Context, creds cloud.Credentials, filter cloud.ImageFilter) ([]cloud.Image, error) {
	c, err := NewClient(ctx, creds)
	if err != nil {
		return nil, err
	}
	defer func() { _ = c.Disconnect() }()

	recs, err := c.ListAll()
	if err != nil {
		return nil, err
	}

	var images []cloud.Image
	for i := range recs {
		rec := &recs[i]
		if !rec.IsTemplate() {
			continue
		}
		img, ok := mapImage(rec, creds.Username)
		if !ok || !filter.Matches(img) {
			continue
		}
		images = append(images, img)
	}

	sort.Slice(images, func(i, j int) bool {
		if images[i].OwnerID != images[j].OwnerID {
			return images[i].OwnerID < images[j].OwnerID
		}
		return images[i].Name < images[j].Name
	})
	return images, nil
}

// CreateImage converts the named instance into a template in place, then
// returns its image view built through the same mapping path as listing.
func (d *Driver) CreateImage(ctx context.Context, creds cloud.Credentials, instanceID string) ([]cloud.Image, error) {
	c, err := NewClient(ctx, creds)
	if err != nil {
		return nil, err
	}
	defer func() { _ = c.Disconnect() }()

	vm, err := c.resolveVM(instanceID)
	if err != nil {
		return nil, err
	}
	if err := vm.MarkAsTemplate(c.ctx); err != nil {
		return nil, fmt.Errorf("failed to mark %q as template: %w", instanceID, err)
	}

	// Re-read so the image view reflects the converted machine.
	rec, err := c.FindByName(instanceID)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, fmt.Errorf("instance %q vanished during conversion", instanceID)
	}
	img, ok := mapImage(rec, creds.Username)
	if !ok {
		return nil, fmt.Errorf("template %q has no configuration", instanceID)
	}
	return []cloud.Image{img}, nil
}

// Realms lists datastores as placement realms: AVAILABLE when accessible,
// capacity reported as free space.
func (d *Driver) Realms(ctx context.Context, creds cloud.Credentials, filter cloud.RealmFilter) ([]cloud.Realm, error) {
	c, err := NewClient(ctx, creds)
	if err != nil {
		return nil, err
	}
	defer func() { _ = c.Disconnect() }()

	sums, err := c.Datastores()
	if err != nil {
		return nil, err
	}

	var realms []cloud.Realm
	for _, s := range sums {
		r := mapRealm(s)
		if filter.Matches(r) {
			realms = append(realms, r)
		}
	}
	return realms, nil
}

// Instances lists non-template machines in their uniform view. Malformed
// records are silently omitted; ordering beyond filtering is whatever the
// traversal yields.
func (d *Driver) Instances(ctx context.Context, creds cloud.Credentials, filter cloud.InstanceFilter) ([]cloud.Instance, error) {
	c, err := NewClient(ctx, creds)
	if err != nil {
		return nil, err
	}
	defer func() { _ = c.Disconnect() }()

	recs, err := c.ListAll()
	if err != nil {
		return nil, err
	}

	var instances []cloud.Instance
	for i := range recs {
		rec := &recs[i]
		if rec.IsTemplate() {
			continue
		}
		inst, ok := mapInstance(rec, creds.Username)
		if !ok || !filter.Matches(inst) {
			continue
		}
		instances = append(instances, inst)
	}
	return instances, nil
}

// CreateInstance clones the named image into a new machine and blocks until
// the clone task reaches a terminal state. This is a long-running call, on
// the order of a minute against a real endpoint.
func (d *Driver) CreateInstance(ctx context.Context, creds cloud.Credentials, imageID string, opts cloud.CreateInstanceOpts) (*cloud.Instance, error) {
	c, err := NewClient(ctx, creds)
	if err != nil {
		return nil, err
	}
	defer func() { _ = c.Disconnect() }()

	tmpl, err := c.FindByName(imageID)
	if err != nil {
		return nil, err
	}
	if tmpl == nil {
		return nil, fmt.Errorf("image %q not found", imageID)
	}
	if !tmpl.IsTemplate() {
		return nil, fmt.Errorf("machine %q is not a template image", imageID)
	}

	profileID := opts.ProfileID
	if profileID == "" {
		profileID = configs.Defaults.Cloud.DefaultProfile
	}
	profile, ok := cloud.ProfileByID(profileID)
	if !ok || profile.ID == cloud.ProfileUnknown {
		return nil, fmt.Errorf("unknown hardware profile %q", profileID)
	}

	name := opts.Name
	if name == "" {
		name = "inst-" + uuid.NewString()[:8]
	}

	pl, err := c.resolvePlacement(tmpl, opts)
	if err != nil {
		return nil, err
	}

	vm := object.NewVirtualMachine(c.conn.Client, tmpl.Ref)
	task, err := vm.Clone(c.ctx, pl.Folder, name, buildCloneSpec(pl, profile))
	if err != nil {
		return nil, fmt.Errorf("failed to clone %q: %w", imageID, err)
	}
	if err := d.await.Await(ctx, task); err != nil {
		return nil, fmt.Errorf("clone of %q failed: %w", imageID, err)
	}

	return &cloud.Instance{
		ID:        name,
		Name:      name,
		OwnerID:   creds.Username,
		RealmID:   pl.DatastoreName,
		State:     cloud.StatePending,
		ProfileID: profile.ID,
		Actions:   cloud.ActionsForState(cloud.StatePending),
	}, nil
}

// buildCloneSpec carries the provisioning defaults: clone straight to
// powered-on, never as a template, with cpu and memory forced to the
// resolved profile.
func buildCloneSpec(pl *placement, profile cloud.HardwareProfile) types.VirtualMachineCloneSpec {
	poolRef := pl.Pool.Reference()
	spec := types.VirtualMachineCloneSpec{
		Location: types.VirtualMachineRelocateSpec{
			Pool: &poolRef,
		},
		PowerOn:  true,
		Template: false,
		Config: &types.VirtualMachineConfigSpec{
			NumCPUs:  profile.CPU,
			MemoryMB: profile.MemoryMB,
		},
	}
	if pl.Datastore != nil {
		dsRef := pl.Datastore.Reference()
		spec.Location.Datastore = &dsRef
	}
	return spec
}

// StartInstance issues the power-on task and returns as soon as the
// endpoint accepts it.
func (d *Driver) StartInstance(ctx context.Context, creds cloud.Credentials, id string) error {
	return d.powerOp(ctx, creds, id, "start", (*object.VirtualMachine).PowerOn)
}

// StopInstance issues the power-off task without awaiting completion.
func (d *Driver) StopInstance(ctx context.Context, creds cloud.Credentials, id string) error {
	return d.powerOp(ctx, creds, id, "stop", (*object.VirtualMachine).PowerOff)
}

// RebootInstance issues a reset task without awaiting completion.
func (d *Driver) RebootInstance(ctx context.Context, creds cloud.Credentials, id string) error {
	return d.powerOp(ctx, creds, id, "reboot", (*object.VirtualMachine).Reset)
}

// powerOp resolves the machine and fires the task. Deliberately no wait:
// callers observe progress through subsequent listings.
func (d *Driver) powerOp(ctx context.Context, creds cloud.Credentials, id, opName string,
	issue func(*object.VirtualMachine, context.Context) (*object.Task, error)) error {
	c, err := NewClient(ctx, creds)
	if err != nil {
		return err
	}
	defer func() { _ = c.Disconnect() }()

	vm, err := c.resolveVM(id)
	if err != nil {
		return err
	}
	if _, err := issue(vm, c.ctx); err != nil {
		return fmt.Errorf("failed to %s instance %q: %w", opName, id, err)
	}
	return nil
}

// DestroyInstance issues the destroy task and blocks until it reaches a
// terminal state. Unlike the power operations, the caller needs certainty
// the resource is gone before the name can be reused.
func (d *Driver) DestroyInstance(ctx context.Context, creds cloud.Credentials, id string) error {
	c, err := NewClient(ctx, creds)
	if err != nil {
		return err
	}
	defer func() { _ = c.Disconnect() }()

	vm, err := c.resolveVM(id)
	if err != nil {
		return err
	}
	task, err := vm.Destroy(c.ctx)
	if err != nil {
		return fmt.Errorf("failed to destroy instance %q: %w", id, err)
	}
	if err := d.await.Await(ctx, task); err != nil {
		return fmt.Errorf("destroy of %q failed: %w", id, err)
	}
	return nil
}

// HardwareProfiles lists the fixed catalog. No session is needed; the
// credentials are part of the uniform contract only.
func (d *Driver) HardwareProfiles(_ context.Context, _ cloud.Credentials, filter cloud.ProfileFilter) ([]cloud.HardwareProfile, error) {
	var out []cloud.HardwareProfile
	for _, p := range cloud.Profiles() {
		if filter.Matches(p) {
			out = append(out, p)
		}
	}
	return out, nil
}

// ValidCredentials reports whether a session can be established with the
// given credentials. Any failure to resolve, connect or authenticate
// counts as invalid; no error detail is surfaced.
func (d *Driver) ValidCredentials(ctx context.Context, creds cloud.Credentials) bool {
	c, err := NewClient(ctx, creds)
	if err != nil {
		return false
	}
	_ = c.Disconnect()
	return true
}
