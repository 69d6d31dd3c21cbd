//go:build !prod

package database

// GetDefaultDBPath returns the database path for development mode.
// In dev mode, the database sits in the project root for easy inspection.
func GetDefaultDBPath() string {
	return "chatforge.db"
}

func IsDevelopment() bool {
	return true
}
