package mvc

const defaultObserver = "noop"

// Config holds facade initialization parameters.
type Config struct {
	Name     string `json:"name,omitempty" yaml:"name,omitempty"`
	Observer string `json:"observer,omitempty" yaml:"observer,omitempty"`
}

// DefaultConfig returns the default facade configuration.
func DefaultConfig() Config {
	return Config{
		Name:     "ymvc",
		Observer: defaultObserver,
	}
}

// Merge applies non-zero values from source into c.
func (c *Config) Merge(source *Config) {
	if source.Name != "" {
		c.Name = source.Name
	}
	if source.Observer != "" {
		c.Observer = source.Observer
	}
}
