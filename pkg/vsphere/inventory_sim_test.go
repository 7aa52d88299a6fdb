package vsphere

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestListAll(t *testing.T) {
	client, _, cleanup := newSimClient(t)
	defer cleanup()

	recs, err := client.ListAll()
	require.NoError(t, err)
	require.NotEmpty(t, recs)

	for i := range recs {
		rec := &recs[i]
		require.NotEmpty(t, rec.Name())
		require.NotEmpty(t, rec.Datastore)
		require.NotEmpty(t, rec.PowerState())
		require.NotEmpty(t, rec.Ref.Value)
	}
}

func TestListAll_DatacenterOrderDeterministic(t *testing.T) {
	client, _, cleanup := newSimClient(t)
	defer cleanup()

	a, err := client.ListAll()
	require.NoError(t, err)
	b, err := client.ListAll()
	require.NoError(t, err)
	require.Len(t, b, len(a))

	// Datastore tags must appear in the same grouped order on both walks:
	// datacenters and datastores are visited sorted by name.
	for i := range a {
		require.Equal(t, a[i].Datastore, b[i].Datastore)
	}
}

func TestFindByName(t *testing.T) {
	client, _, cleanup := newSimClient(t)
	defer cleanup()

	recs, err := client.ListAll()
	require.NoError(t, err)
	require.NotEmpty(t, recs)

	rec, err := client.FindByName(recs[0].Name())
	require.NoError(t, err)
	require.NotNil(t, rec)
	require.Equal(t, recs[0].Name(), rec.Name())
	require.Equal(t, recs[0].Datastore, rec.Datastore)
}

func TestFindByName_Missing(t *testing.T) {
	client, _, cleanup := newSimClient(t)
	defer cleanup()

	rec, err := client.FindByName("does-not-exist")
	require.NoError(t, err)
	require.Nil(t, rec)
}

func TestFindByName_DuplicateNamesFirstMatchWins(t *testing.T) {
	client, _, cleanup := newSimClient(t)
	defer cleanup()

	// Same machine name in both datacenters, on different datastores.
	createVM(t, client, "DC0", "dup")
	createVM(t, client, "DC1", "dup")

	recs, err := client.ListAll()
	require.NoError(t, err)

	var want string
	for i := range recs {
		if recs[i].Name() == "dup" {
			want = recs[i].Datastore
			break
		}
	}
	require.NotEmpty(t, want)

	// First match is drawn from the documented enumeration order, so it
	// must be stable across repeated lookups and agree with a full walk.
	for i := 0; i < 3; i++ {
		rec, err := client.FindByName("dup")
		require.NoError(t, err)
		require.NotNil(t, rec)
		require.Equal(t, want, rec.Datastore)
	}
}

func TestDatastores(t *testing.T) {
	client, _, cleanup := newSimClient(t)
	defer cleanup()

	sums, err := client.Datastores()
	require.NoError(t, err)
	require.Len(t, sums, 2) // one per datacenter

	for _, s := range sums {
		require.NotEmpty(t, s.Name)
		require.True(t, s.Accessible)
	}
}

func TestResolveVM_Missing(t *testing.T) {
	client, _, cleanup := newSimClient(t)
	defer cleanup()

	_, err := client.resolveVM("does-not-exist")
	require.Error(t, err)
	require.Contains(t, err.Error(), "not found")
}
