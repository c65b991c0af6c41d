// Package docker reads containers from the local Docker daemon.
package docker

import (
	"context"
	"fmt"
	"runtime"
	"sync"

	"github.com/docker/docker/client"
)

const apiVersion = "1.51"

// Client wraps the Docker client with the queries the list source needs.
type Client struct {
	cli *client.Client
	mu  sync.RWMutex
}

// DefaultHost returns the daemon address for the current operating system.
func DefaultHost() string {
	if runtime.GOOS == "windows" {
		return "npipe:////./pipe/docker_engine"
	}
	return "unix:///var/run/docker.sock"
}

// NewClient creates a Docker client for host. An empty host selects DefaultHost.
func NewClient(host string) (*Client, error) {
	if host == "" {
		host = DefaultHost()
	}

	cli, err := client.NewClientWithOpts(
		client.WithVersion(apiVersion),
		client.WithHost(host),
	)
	if err != nil {
		return nil, fmt.Errorf("docker client for %s: %w", host, err)
	}

	return &Client{cli: cli}, nil
}

// Close closes the Docker client connection.
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cli.Close()
}

// Ping checks if the Docker daemon is accessible.
func (c *Client) Ping(ctx context.Context) error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, err := c.cli.Ping(ctx)
	return err
}
