// File: lixenwraith/drift/config/datasource.go
package config

// Connection describes how the engine opens the database: driver name, URL,
// credentials and pass-through driver properties. Opening the actual
// connection is the engine's concern.
type Connection struct {
	Driver   string
	URL      string
	User     string
	Password string
	Props    map[string]string
}

// clone returns a deep copy of the descriptor, including the Props map.
func (conn *Connection) clone() *Connection {
	if conn == nil {
		return nil
	}
	out := *conn
	out.Props = copyMap(conn.Props)
	return &out
}

// Connection returns a copy of the resolved connection descriptor, or nil
// when none has been supplied or derived. Mutating the returned descriptor
// or its Props map does not affect the configuration. A partial scalar
// quadruplet without a URL is discarded with a warning instead of failing,
// matching the best-effort assembly contract.
func (c *Config) Connection() *Connection {
	if c.conn == nil && (c.driver != "" || c.user != "" || c.password != "") {
		c.logger.Warn().
			Str("key", KeyURL).
			Msg("discarding incomplete connection configuration: url must be set")
	}
	return c.conn.clone()
}

// SetConnection supplies a pre-built connection descriptor. The scalar
// quadruplet is cleared so the two representations cannot diverge; a later
// property pass that touches url/driver/user/password re-derives the
// descriptor from scratch.
func (c *Config) SetConnection(conn *Connection) {
	c.driver = ""
	c.url = ""
	c.user = ""
	c.password = ""
	c.conn = conn
}

// SetConnectionParams records the scalar connection parameters and builds
// the descriptor from them immediately.
func (c *Config) SetConnectionParams(url, user, password string) {
	c.url = url
	c.user = user
	c.password = password
	c.conn = c.deriveConnection(nil)
}

// deriveConnection builds a descriptor from the current scalar quadruplet,
// merging the configured driver properties with any extra properties from
// the current pass. Extra entries win on key collision.
func (c *Config) deriveConnection(extraProps map[string]string) *Connection {
	props := make(map[string]string, len(c.driverProps)+len(extraProps))
	for k, v := range c.driverProps {
		props[k] = v
	}
	for k, v := range extraProps {
		props[k] = v
	}

	return &Connection{
		Driver:   c.driver,
		URL:      c.url,
		User:     c.user,
		Password: c.password,
		Props:    props,
	}
}
