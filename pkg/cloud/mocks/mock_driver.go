// Package mocks provides testify-based mock implementations for testing
// without a real vCenter connection.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/cloudfacet/vsphere-cloud/pkg/cloud"
)

// Driver is a mock for cloud.Driver.
type Driver struct {
	mock.Mock
}

func (m *Driver) Images(ctx context.Context, creds cloud.Credentials, filter cloud.ImageFilter) ([]cloud.Image, error) {
	args := m.Called(ctx, creds, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]cloud.Image), args.Error(1)
}

func (m *Driver) CreateImage(ctx context.Context, creds cloud.Credentials, instanceID string) ([]cloud.Image, error) {
	args := m.Called(ctx, creds, instanceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]cloud.Image), args.Error(1)
}

func (m *Driver) Realms(ctx context.Context, creds cloud.Credentials, filter cloud.RealmFilter) ([]cloud.Realm, error) {
	args := m.Called(ctx, creds, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]cloud.Realm), args.Error(1)
}

func (m *Driver) Instances(ctx context.Context, creds cloud.Credentials, filter cloud.InstanceFilter) ([]cloud.Instance, error) {
	args := m.Called(ctx, creds, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]cloud.Instance), args.Error(1)
}

func (m *Driver) CreateInstance(ctx context.Context, creds cloud.Credentials, imageID string, opts cloud.CreateInstanceOpts) (*cloud.Instance, error) {
	args := m.Called(ctx, creds, imageID, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cloud.Instance), args.Error(1)
}

func (m *Driver) StartInstance(ctx context.Context, creds cloud.Credentials, id string) error {
	return m.Called(ctx, creds, id).Error(0)
}

func (m *Driver) StopInstance(ctx context.Context, creds cloud.Credentials, id string) error {
	return m.Called(ctx, creds, id).Error(0)
}

func (m *Driver) RebootInstance(ctx context.Context, creds cloud.Credentials, id string) error {
	return m.Called(ctx, creds, id).Error(0)
}

func (m *Driver) DestroyInstance(ctx context.Context, creds cloud.Credentials, id string) error {
	return m.Called(ctx, creds, id).Error(0)
}

func (m *Driver) HardwareProfiles(ctx context.Context, creds cloud.Credentials, filter cloud.ProfileFilter) ([]cloud.HardwareProfile, error) {
	args := m.Called(ctx, creds, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]cloud.HardwareProfile), args.Error(1)
}

func (m *Driver) ValidCredentials(ctx context.Context, creds cloud.Credentials) bool {
	return m.Called(ctx, creds).Bool(0)
}

// compile-time interface compliance check
var _ cloud.Driver = (*Driver)(nil)
