// Package cloud defines the uniform resource model exposed by the driver:
// images, instances, realms and hardware profiles, independent of the
// backing hypervisor.
package cloud

// Credentials identify the caller against the management endpoint. Host is
// threaded explicitly per call so concurrent callers can target different
// endpoints without shared state.
type Credentials struct {
	Username string
	Password string
	Host     string // hostname, hostname:port, or full https URL
	Port     int    // optional, defaults from configs when zero
	Insecure bool   // skip TLS verification
}

// State is the uniform entity state.
type State string

const (
	StateAvailable   State = "AVAILABLE"
	StateUnavailable State = "UNAVAILABLE"
	StateRunning     State = "RUNNING"
	StateStopped     State = "STOPPED"
	StatePending     State = "PENDING"
	StateUnknown     State = "UNKNOWN"
)

// Image is the uniform view of a virtual machine template.
type Image struct {
	ID           string
	Name         string
	OwnerID      string
	Description  string // guest OS full name
	Architecture string
	State        State
}

// Instance is the uniform view of a non-template virtual machine. It is
// rebuilt from a fresh inventory query on every call, never cached.
type Instance struct {
	ID               string
	Name             string
	OwnerID          string
	Description      string
	RealmID          string // owning datastore name
	State            State
	PublicAddresses  []string
	PrivateAddresses []string // always empty for this provider
	ProfileID        string
	Actions          []Action
}

// Realm is a placement boundary, backed by a datastore.
type Realm struct {
	ID    string
	Name  string
	State State // AVAILABLE or UNAVAILABLE
	Limit int64 // free space in bytes
}

// ImageFilter narrows image listings. Zero-valued fields match everything;
// set fields compare by exact equality.
type ImageFilter struct {
	ID           string
	Architecture string
}

// Matches reports whether the image passes the filter.
func (f ImageFilter) Matches(img Image) bool {
	if f.ID != "" && img.ID != f.ID {
		return false
	}
	if f.Architecture != "" && img.Architecture != f.Architecture {
		return false
	}
	return true
}

// InstanceFilter narrows instance listings.
type InstanceFilter struct {
	ID    string
	State State
}

// Matches reports whether the instance passes the filter.
func (f InstanceFilter) Matches(inst Instance) bool {
	if f.ID != "" && inst.ID != f.ID {
		return false
	}
	if f.State != "" && inst.State != f.State {
		return false
	}
	return true
}

// RealmFilter narrows realm listings.
type RealmFilter struct {
	ID string
}

// Matches reports whether the realm passes the filter.
func (f RealmFilter) Matches(r Realm) bool {
	return f.ID == "" || r.ID == f.ID
}

// ProfileFilter narrows hardware profile listings.
type ProfileFilter struct {
	ID string
}

// Matches reports whether the profile passes the filter.
func (f ProfileFilter) Matches(p HardwareProfile) bool {
	return f.ID == "" || p.ID == f.ID
}

// CreateInstanceOpts carries the optional parts of an instance creation
// request. Name defaults to a generated one when empty.
type CreateInstanceOpts struct {
	Name      string
	RealmID   string // placement realm (datastore); overrides Datastore
	Datastore string // datastore override without realm-based pool resolution
	ProfileID string // hardware profile id; defaults from configs when empty
}
