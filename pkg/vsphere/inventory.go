package vsphere

import (
	"fmt"
	"sort"

	"github.com/vmware/govmomi/find"
	"github.com/vmware/govmomi/object"
	"github.com/vmware/govmomi/property"
	"github.com/vmware/govmomi/vim25/mo"
	"github.com/vmware/govmomi/vim25/types"
)

// Record is one virtual machine discovered during traversal, tagged with
// the name of the datastore that holds it. Records are not owned long-term;
// they are mapped to uniform entities and discarded.
type Record struct {
	Ref       types.ManagedObjectReference
	VM        mo.VirtualMachine
	Datastore string
}

// Name returns the machine's display name.
func (r *Record) Name() string {
	return r.VM.Summary.Config.Name
}

// IsTemplate reports whether the machine is marked as a template.
func (r *Record) IsTemplate() bool {
	return r.VM.Summary.Config.Template
}

// PowerState returns the raw vSphere power state string.
func (r *Record) PowerState() string {
	return string(r.VM.Runtime.PowerState)
}

// vmProps are the properties retrieved for every machine during traversal.
var vmProps = []string{"config", "summary", "runtime", "guest"}

// ListAll walks datacenter → datastore → virtual machine and returns one
// record per machine found. Datacenters and datastores are visited in
// lexicographic name order so that traversal is deterministic for a fixed
// inventory; machines inside a datastore keep whatever order the endpoint
// reports, which may change between calls. A machine on several datastores
// yields one record per datastore.
func (c *Client) ListAll() ([]Record, error) {
	return c.walk("")
}

// FindByName walks the same hierarchy and returns the first machine whose
// name equals the target, or nil when no machine matches. With duplicate
// names across datastores the lexicographically first datacenter and
// datastore wins.
func (c *Client) FindByName(name string) (*Record, error) {
	recs, err := c.walk(name)
	if err != nil {
		return nil, err
	}
	if len(recs) == 0 {
		return nil, nil
	}
	return &recs[0], nil
}

// walk performs the traversal. A non-empty stopAt short-circuits at the
// first machine with that name.
func (c *Client) walk(stopAt string) ([]Record, error) {
	dcs, err := c.datacenters()
	if err != nil {
		return nil, err
	}

	pc := property.DefaultCollector(c.conn.Client)
	var out []Record
	for _, dc := range dcs {
		c.finder.SetDatacenter(dc)

		dss, err := c.datastores(dc)
		if err != nil {
			return nil, err
		}

		for _, ds := range dss {
			var moDS mo.Datastore
			if err := pc.RetrieveOne(c.ctx, ds.Reference(), []string{"summary", "vm"}, &moDS); err != nil {
				return nil, fmt.Errorf("failed to read datastore %q: %w", ds.Name(), err)
			}
			if len(moDS.Vm) == 0 {
				continue
			}

			var vms []mo.VirtualMachine
			if err := pc.Retrieve(c.ctx, moDS.Vm, vmProps, &vms); err != nil {
				return nil, fmt.Errorf("failed to read machines on datastore %q: %w", moDS.Summary.Name, err)
			}

			for _, vm := range vms {
				rec := Record{Ref: vm.Self, VM: vm, Datastore: moDS.Summary.Name}
				if stopAt != "" {
					if rec.Name() == stopAt {
						return []Record{rec}, nil
					}
					continue
				}
				out = append(out, rec)
			}
		}
	}
	return out, nil
}

// Datastores returns the datastore summaries of every datacenter, in
// traversal order.
func (c *Client) Datastores() ([]types.DatastoreSummary, error) {
	dcs, err := c.datacenters()
	if err != nil {
		return nil, err
	}

	pc := property.DefaultCollector(c.conn.Client)
	var out []types.DatastoreSummary
	for _, dc := range dcs {
		c.finder.SetDatacenter(dc)

		dss, err := c.datastores(dc)
		if err != nil {
			return nil, err
		}

		for _, ds := range dss {
			var moDS mo.Datastore
			if err := pc.RetrieveOne(c.ctx, ds.Reference(), []string{"summary"}, &moDS); err != nil {
				return nil, fmt.Errorf("failed to read datastore %q: %w", ds.Name(), err)
			}
			out = append(out, moDS.Summary)
		}
	}
	return out, nil
}

// datacenters lists all datacenters sorted by name. An endpoint without
// datacenters yields an empty inventory, not an error.
func (c *Client) datacenters() ([]*object.Datacenter, error) {
	dcs, err := c.finder.DatacenterList(c.ctx, "*")
	if err != nil {
		if _, ok := err.(*find.NotFoundError); ok {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to list datacenters: %w", err)
	}
	sort.Slice(dcs, func(i, j int) bool { return dcs[i].Name() < dcs[j].Name() })
	return dcs, nil
}

// datastores lists a datacenter's datastores sorted by name. The finder
// must already be scoped to dc.
func (c *Client) datastores(dc *object.Datacenter) ([]*object.Datastore, error) {
	dss, err := c.finder.DatastoreList(c.ctx, "*")
	if err != nil {
		if _, ok := err.(*find.NotFoundError); ok {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to list datastores in %q: %w", dc.Name(), err)
	}
	sort.Slice(dss, func(i, j int) bool { return dss[i].Name() < dss[j].Name() })
	return dss, nil
}

// resolveVM dereferences an instance id for a mutating operation. A
// missing machine is a fault here, unlike listing lookups.
func (c *Client) resolveVM(id string) (*object.VirtualMachine, error) {
	rec, err := c.FindByName(id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, fmt.Errorf("instance %q not found", id)
	}
	return object.NewVirtualMachine(c.conn.Client, rec.Ref), nil
}
