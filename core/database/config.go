package database

// Config holds configuration for the warehouse connection.
type Config struct {
	// Host is the warehouse host (or account locator).
	Host string `mapstructure:"host" default:"localhost"`
	// Port is the warehouse port.
	Port int `mapstructure:"port" default:"3306"`
	// User is the warehouse user.
	User string `mapstructure:"user" default:"root"`
	// Password is the warehouse password.
	Password string `mapstructure:"password" default:""`
	// Name is the database name. For the sqlite driver it is the file path.
	Name string `mapstructure:"name" default:"tiger_dev"`
	// Driver is the database driver (mysql, sqlite).
	Driver string `mapstructure:"driver" default:"mysql"`
	// StagingTable is the raw roster ingestion table.
	StagingTable string `mapstructure:"staging_table" default:"mdc_employee_master"`
	// TimeoutSeconds bounds connection setup and I/O.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}
