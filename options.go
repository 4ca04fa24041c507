/*
 * Copyright © 2025 Vulcan Systems Ltd., All rights reserved.
 */

package tablestore

import (
	"github.com/rs/zerolog"

	"github.com/vulcansys/tablestore/transport"
)

// Option configures a Client at construction time.
type Option func(*Client)

// WithTransport injects a transport implementation, bypassing the credential
// bootstrap. Used with the in-memory transport in tests or with a pre-built
// service handle.
func WithTransport(t transport.TableTransport) Option {
	return func(c *Client) {
		c.override = t
	}
}

// WithEndpoint overrides the service endpoint derived from the account name.
func WithEndpoint(endpoint string) Option {
	return func(c *Client) {
		c.endpoint = endpoint
	}
}

// WithServiceDomain overrides the table service domain used to derive the
// endpoint, e.g. for sovereign clouds.
func WithServiceDomain(domain string) Option {
	return func(c *Client) {
		c.serviceDomain = domain
	}
}

// WithLogger sets the logger used for debug-level operation traces. The default
// logger discards everything.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}
