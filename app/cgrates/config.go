package cgrates

import (
	"sync"
)

// DefaultEndpoint is the json-rpc path served by cgr-engine
const DefaultEndpoint = "/jsonrpc"

// Configuration keeps process-wide defaults used by clients created without explicit values
type Configuration struct {
	Host     string // base url of cgr-engine, i.e. http://127.0.0.1:2080
	Username string // basic auth user, optional
	Password string // basic auth password, optional
	Endpoint string // json-rpc path, defaults to DefaultEndpoint
}

var defaults = struct {
	Configuration
	sync.RWMutex
}{Configuration: Configuration{Endpoint: DefaultEndpoint}}

// Configure changes process-wide defaults with fn and returns the resulting configuration
func Configure(fn func(c *Configuration)) Configuration {
	defaults.Lock()
	defer defaults.Unlock()
	fn(&defaults.Configuration)
	return defaults.Configuration
}

// Config returns a copy of current process-wide defaults
func Config() Configuration {
	defaults.RLock()
	defer defaults.RUnlock()
	return defaults.Configuration
}

// merge fills empty fields of c from fallback
func (c Configuration) merge(fallback Configuration) Configuration {
	if c.Host == "" {
		c.Host = fallback.Host
	}
	if c.Username == "" {
		c.Username = fallback.Username
	}
	if c.Password == "" {
		c.Password = fallback.Password
	}
	if c.Endpoint == "" {
		c.Endpoint = fallback.Endpoint
	}
	if c.Endpoint == "" {
		c.Endpoint = DefaultEndpoint
	}
	return c
}
