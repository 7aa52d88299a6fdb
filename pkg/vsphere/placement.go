package vsphere

import (
	"fmt"
	"sort"

	"github.com/vmware/govmomi/find"
	"github.com/vmware/govmomi/object"

	"github.com/cloudfacet/vsphere-cloud/pkg/cloud"
)

// placement is the resolved clone destination.
type placement struct {
	Folder        *object.Folder
	Pool          *object.ResourcePool
	Datastore     *object.Datastore // nil keeps the template's own storage
	DatastoreName string
}

// resolvePlacement picks the clone destination. A realm id selects that
// datastore and a resource pool from its datacenter. Without a realm the
// pool comes from the datacenter owning the template's datastore, and the
// target datastore is only overridden when the caller names one.
func (c *Client) resolvePlacement(tmpl *Record, opts cloud.CreateInstanceOpts) (*placement, error) {
	var (
		dc  *object.Datacenter
		ds  *object.Datastore
		err error
	)
	if opts.RealmID != "" {
		dc, ds, err = c.datacenterOf(opts.RealmID)
	} else {
		dc, _, err = c.datacenterOf(tmpl.Datastore)
	}
	if err != nil {
		return nil, err
	}

	// A bare datastore override stays inside the template's datacenter.
	if opts.RealmID == "" && opts.Datastore != "" {
		c.finder.SetDatacenter(dc)
		ds, err = c.finder.Datastore(c.ctx, opts.Datastore)
		if err != nil {
			return nil, fmt.Errorf("datastore %q not found in datacenter %q: %w", opts.Datastore, dc.Name(), err)
		}
	}

	c.finder.SetDatacenter(dc)

	pool, err := c.defaultResourcePool(dc)
	if err != nil {
		return nil, err
	}

	folders, err := dc.Folders(c.ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve folders of %q: %w", dc.Name(), err)
	}

	p := &placement{
		Folder:        folders.VmFolder,
		Pool:          pool,
		Datastore:     ds,
		DatastoreName: tmpl.Datastore,
	}
	if ds != nil {
		p.DatastoreName = ds.Name()
	}
	return p, nil
}

// datacenterOf returns the datacenter holding the named datastore, walking
// datacenters in the same lexicographic order as inventory traversal.
func (c *Client) datacenterOf(dsName string) (*object.Datacenter, *object.Datastore, error) {
	dcs, err := c.datacenters()
	if err != nil {
		return nil, nil, err
	}

	for _, dc := range dcs {
		c.finder.SetDatacenter(dc)
		ds, err := c.finder.Datastore(c.ctx, dsName)
		if err == nil {
			return dc, ds, nil
		}
		if _, ok := err.(*find.NotFoundError); !ok {
			return nil, nil, fmt.Errorf("failed to look up datastore %q: %w", dsName, err)
		}
	}
	return nil, nil, fmt.Errorf("realm %q not found", dsName)
}

// defaultResourcePool picks the datacenter's first resource pool by
// inventory path, keeping placement deterministic on multi-cluster setups.
func (c *Client) defaultResourcePool(dc *object.Datacenter) (*object.ResourcePool, error) {
	pools, err := c.finder.ResourcePoolList(c.ctx, "*")
	if err != nil {
		return nil, fmt.Errorf("failed to list resource pools in %q: %w", dc.Name(), err)
	}
	if len(pools) == 0 {
		return nil, fmt.Errorf("no resource pool in datacenter %q", dc.Name())
	}
	sort.Slice(pools, func(i, j int) bool { return pools[i].InventoryPath < pools[j].InventoryPath })
	return pools[0], nil
}
