package cloud

import "context"

// Driver is the fixed provider-agnostic contract. Every operation is
// synchronous from the caller's perspective and opens a fresh session from
// the supplied credentials; nothing is cached or pooled between calls.
//
// Listing operations return an empty slice (not an error) when an id
// filter matches nothing. Mutating operations fail when the id cannot be
// dereferenced.
type Driver interface {
	// Images lists template machines in their uniform image view, sorted
	// ascending by (owner, name).
	Images(ctx context.Context, creds Credentials, filter ImageFilter) ([]Image, error)

	// CreateImage converts the named instance into a template in place and
	// returns its image view.
	CreateImage(ctx context.Context, creds Credentials, instanceID string) ([]Image, error)

	// Realms lists datastores as placement realms.
	Realms(ctx context.Context, creds Credentials, filter RealmFilter) ([]Realm, error)

	// Instances lists non-template machines in their uniform view.
	Instances(ctx context.Context, creds Credentials, filter InstanceFilter) ([]Instance, error)

	// CreateInstance clones the named image into a new machine and blocks
	// until the clone task reaches a terminal state. The returned instance
	// is synthesized in PENDING state with the requested name as id.
	CreateInstance(ctx context.Context, creds Credentials, imageID string, opts CreateInstanceOpts) (*Instance, error)

	// StartInstance, StopInstance and RebootInstance issue their power task
	// and return as soon as the endpoint accepts it, without awaiting
	// completion.
	StartInstance(ctx context.Context, creds Credentials, id string) error
	StopInstance(ctx context.Context, creds Credentials, id string) error
	RebootInstance(ctx context.Context, creds Credentials, id string) error

	// DestroyInstance issues the destroy task and blocks until it reaches a
	// terminal state, so the caller knows the resource is gone.
	DestroyInstance(ctx context.Context, creds Credentials, id string) error

	// HardwareProfiles lists the fixed profile catalog.
	HardwareProfiles(ctx context.Context, creds Credentials, filter ProfileFilter) ([]HardwareProfile, error)

	// ValidCredentials reports whether a session can be established. It
	// never returns an error; any failure counts as invalid.
	ValidCredentials(ctx context.Context, creds Credentials) bool
}
