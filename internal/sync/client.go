// Package sync implements the synchronization client. It owns the
// remote-store configuration and a secure channel handle, and exchanges
// opaque compressed settings payloads with the remote store. Nothing here is
// safe for concurrent use; callers serialize access to a Client.
package sync

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/avoronov84/domainkeeper/internal/common"
	"github.com/avoronov84/domainkeeper/internal/logging"
	"github.com/avoronov84/domainkeeper/internal/packer"
	"github.com/avoronov84/domainkeeper/internal/shared"
)

// Portable-map keys of a sync configuration. All four are required together.
const (
	configKeyServerAddress = "server-address"
	configKeyUsername      = "username"
	configKeyPassword      = "password"
	configKeyCertificate   = "certificate"
)

// Client moves settings payloads between the local collection and the
// remote store. It starts unconfigured; LoadConfiguration or SetCredentials
// move it to the configured state and may be called again at any time to
// replace the credentials. Password and certificate are wiped whenever they
// are replaced or the client is closed.
type Client struct {
	serverAddress string
	username      string
	password      []byte
	certificate   []byte

	channel    Channel
	newChannel ChannelFactory
	logger     logging.Logger
}

// NewClient returns an unconfigured client. A nil factory selects the gRPC
// channel implementation; tests inject their own.
func NewClient(logger logging.Logger, factory ChannelFactory) *Client {
	if factory == nil {
		factory = NewGRPCChannel
	}
	return &Client{
		newChannel: factory,
		logger:     logger.With("module", "sync_client"),
	}
}

// Configured reports whether a channel handle exists.
func (c *Client) Configured() bool { return c.channel != nil }

// ServerAddress returns the configured remote-store address, if any.
func (c *Client) ServerAddress() string { return c.serverAddress }

// Username returns the configured remote-store username, if any.
func (c *Client) Username() string { return c.username }

// LoadConfiguration decompresses and decodes a configuration payload. All
// four fields must be present; otherwise the load is rejected and the prior
// configuration — including an established channel — remains in effect. On
// success the credentials are replaced and the channel re-established.
func (c *Client) LoadConfiguration(data []byte) error {
	raw, err := packer.Unpack(data)
	if err != nil {
		c.logger.Warn(context.Background(), "sync configuration payload is not decompressible", "error", err)
		return fmt.Errorf("decoding sync configuration: %w", err)
	}

	var m map[string]string
	if err := json.Unmarshal(raw, &m); err != nil {
		c.logger.Warn(context.Background(), "sync configuration payload is not a portable map", "error", err)
		return fmt.Errorf("decoding sync configuration: %w", err)
	}

	for _, key := range []string{configKeyServerAddress, configKeyUsername, configKeyPassword, configKeyCertificate} {
		if _, ok := m[key]; !ok {
			c.logger.Warn(context.Background(), "sync configuration could not be loaded", "missing", key)
			return fmt.Errorf("%w: missing %q", common.ErrMissingConfiguration, key)
		}
	}

	c.logger.Debug(context.Background(), "sync configuration decoded",
		"server", m[configKeyServerAddress], "username", m[configKeyUsername])

	return c.SetCredentials(m[configKeyServerAddress], m[configKeyUsername], m[configKeyPassword], []byte(m[configKeyCertificate]))
}

// SetCredentials replaces the remote-store configuration and (re)creates the
// channel handle. The new channel is established before the old one is torn
// down, so a failure leaves the prior configuration untouched. Replaced
// credential material is wiped.
func (c *Client) SetCredentials(serverAddress, username, password string, certificatePEM []byte) error {
	ch, err := c.newChannel(serverAddress, username, password, certificatePEM)
	if err != nil {
		c.logger.Error(context.Background(), "sync channel could not be established", "server", serverAddress, "error", err)
		return err
	}

	if c.channel != nil {
		if err := c.channel.Close(); err != nil {
			c.logger.Warn(context.Background(), "closing previous sync channel", "error", err)
		}
	}
	shared.WipeByteArray(c.password)
	shared.WipeByteArray(c.certificate)

	c.serverAddress = serverAddress
	c.username = username
	c.password = []byte(password)
	c.certificate = append([]byte(nil), certificatePEM...)
	c.channel = ch

	c.logger.Info(context.Background(), "sync channel configured", "server", serverAddress, "username", username)
	return nil
}

// Configuration serializes the current configuration to a compressed
// portable map. It returns an empty payload while no channel exists.
func (c *Client) Configuration() ([]byte, error) {
	if c.channel == nil {
		return []byte{}, nil
	}

	data, err := json.Marshal(map[string]string{
		configKeyServerAddress: c.serverAddress,
		configKeyUsername:      c.username,
		configKeyPassword:      string(c.password),
		configKeyCertificate:   string(c.certificate),
	})
	if err != nil {
		return nil, fmt.Errorf("encoding sync configuration: %w", err)
	}

	return packer.Pack(data), nil
}

// Pull fetches the remote payload. Without a configured channel it reports
// ErrChannelUnavailable with an empty payload; transport problems surface as
// ErrTransportFailure or ErrUnauthorized. None of these are fatal.
func (c *Client) Pull(ctx context.Context) ([]byte, error) {
	if c.channel == nil {
		c.logger.Warn(ctx, "pull requested without a configured sync channel")
		return nil, common.ErrChannelUnavailable
	}

	payload, err := c.channel.Pull(ctx)
	if err != nil {
		c.logger.Error(ctx, "pull failed", "error", err)
		return nil, err
	}
	return payload, nil
}

// Push uploads a payload to the remote store. Failures are logged and
// reported with the same sentinels as Pull; the in-memory model is never
// affected.
func (c *Client) Push(ctx context.Context, payload []byte) error {
	if c.channel == nil {
		c.logger.Warn(ctx, "push requested without a configured sync channel")
		return common.ErrChannelUnavailable
	}

	if err := c.channel.Push(ctx, payload); err != nil {
		c.logger.Error(ctx, "synchronization failed", "error", err)
		return err
	}
	return nil
}

// Close releases the channel handle and wipes stored credential material.
// The client returns to the unconfigured state.
func (c *Client) Close() error {
	var err error
	if c.channel != nil {
		err = c.channel.Close()
		c.channel = nil
	}

	shared.WipeByteArray(c.password)
	shared.WipeByteArray(c.certificate)
	c.password = nil
	c.certificate = nil
	c.serverAddress = ""
	c.username = ""

	return err
}
