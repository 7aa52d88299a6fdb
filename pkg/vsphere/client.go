// Package vsphere implements the uniform cloud driver on top of the
// govmomi SDK, mapping the vCenter datacenter/datastore/virtual-machine
// inventory onto images, instances, realms and hardware profiles.
package vsphere

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/vmware/govmomi"
	"github.com/vmware/govmomi/find"

	"github.com/cloudfacet/vsphere-cloud/configs"
	"github.com/cloudfacet/vsphere-cloud/pkg/cloud"
)

// Client wraps a govmomi session. One Client serves exactly one logical
// operation: connect, query, disconnect. No pooling, no reuse.
type Client struct {
	conn   *govmomi.Client
	finder *find.Finder
	ctx    context.Context
}

// NewClient establishes a session from the given credentials. The endpoint
// host may be a bare hostname, hostname:port, or a full https URL; the
// port defaults from configs when unset.
func NewClient(ctx context.Context, creds cloud.Credentials) (*Client, error) {
	port := creds.Port
	if port == 0 {
		port = configs.Defaults.VCenter.Port
	}

	var endpoint *url.URL
	if strings.Contains(creds.Host, "://") {
		parsed, err := url.Parse(creds.Host)
		if err != nil {
			return nil, fmt.Errorf("invalid endpoint URL %q: %w", creds.Host, err)
		}
		if parsed.Scheme != "https" {
			return nil, fmt.Errorf("unsupported endpoint scheme %q (https required)", parsed.Scheme)
		}
		if parsed.Host == "" {
			return nil, fmt.Errorf("invalid endpoint URL (missing host): %q", creds.Host)
		}
		if parsed.Path == "" {
			parsed.Path = "/sdk"
		}
		if parsed.Port() == "" {
			parsed.Host = fmt.Sprintf("%s:%d", parsed.Hostname(), port)
		}
		endpoint = parsed
	} else {
		endpoint = &url.URL{
			Scheme: "https",
			Host:   fmt.Sprintf("%s:%d", creds.Host, port),
			Path:   "/sdk",
		}
	}
	endpoint.User = url.UserPassword(creds.Username, creds.Password)

	conn, err := govmomi.NewClient(ctx, endpoint, creds.Insecure)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to endpoint: %w", err)
	}

	return &Client{
		conn:   conn,
		finder: find.NewFinder(conn.Client, true),
		ctx:    ctx,
	}, nil
}

// Disconnect closes the session.
func (c *Client) Disconnect() error {
	if c.conn != nil {
		return c.conn.Logout(c.ctx)
	}
	return nil
}
