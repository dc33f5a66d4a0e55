// Package database handles the warehouse connection.
//
// It provides a wrapper around GORM to configure MySQL-compatible or SQLite
// connections from the application's configuration. The roster loader in
// feature/roster reads the raw staging table through this connection.
//
// # Connect
//
// Connect opens the connection, limits the pool to the single connection a
// run needs, and verifies it with a ping bounded by TimeoutSeconds. Close
// releases it at the end of the run.
//
// # Usage
//
//	db, err := database.Connect(cfg.Warehouse)
//	if err != nil {
//	    return fmt.Errorf("failed to connect to warehouse: %w", err)
//	}
//	defer database.Close(db)
package database
