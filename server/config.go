// Package server implements the request dispatcher of §4.E/§5/§6/§7: the
// HTTP-facing shell that classifies an incoming request, routes it through
// the right pipeline (static asset, websocket upgrade, action, RSC, API, or
// page render), and owns the ISR cache and static-site generator. Ported
// from _examples/original_source/crates/next-server/src/{lib,handler,isr,
// ws,ssg,api}.rs, with the router/dispatch shell grounded on
// 2389-research-mammoth/web/server.go's buildRouter idiom.
package server

// Config holds the fixed inputs a Dispatcher is built from. Deliberately a
// plain struct: config file parsing, flag binding, and env loading are
// outer-surface concerns the core treats as external collaborators (§0/§9
// Non-interfaces), so nothing here reads the filesystem or environment.
type Config struct {
	// AppDir is the root of the scanned file-system route tree.
	AppDir string
	// OutputDir is where StaticGenerator writes prerendered pages.
	OutputDir string
	// Addr is the listen address, e.g. "127.0.0.1:3000".
	Addr string
}

func (c Config) withDefaults() Config {
	if c.Addr == "" {
		c.Addr = "127.0.0.1:3000"
	}
	return c
}
