package objmap

import "github.com/xmlsmith/go-xmlsmith/meta"

// Option is an option for controlling the mapping process.
type Option func(*config)

type config struct {
	registry *meta.Registry
	rootName string
}

// WithRegistry supplies programmatic directives (converters, adapters,
// and anything else registered ahead of time).
func WithRegistry(reg *meta.Registry) Option {
	return func(c *config) { c.registry = reg }
}

// RootName overrides the root node's element name. It is required when
// the root value's type has no usable name, such as a map.
func RootName(name string) Option {
	return func(c *config) { c.rootName = name }
}

func newConfig(opts []Option) *config {
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}
