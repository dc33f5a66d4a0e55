package metrics

// Config holds configuration for the run metrics export.
type Config struct {
	// PushgatewayURL is the Pushgateway address. Metrics are not pushed when empty.
	PushgatewayURL string `mapstructure:"pushgateway_url" default:""`
	// Job is the job label used for the push grouping key.
	Job string `mapstructure:"job" default:"roster_sync"`
}
