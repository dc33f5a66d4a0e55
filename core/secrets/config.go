package secrets

// Config holds configuration for the secret store.
type Config struct {
	// Object is the key of the credential bundle inside the storage bucket.
	// When empty, warehouse credentials come from configuration directly.
	Object string `mapstructure:"object" default:""`
}

// Enabled reports whether a secret bundle should be fetched.
func (c Config) Enabled() bool {
	return c.Object != ""
}
