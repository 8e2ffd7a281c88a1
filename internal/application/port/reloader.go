package port

import "context"

// ConfigReloader asks running kitty instances to re-read their configuration
// after a directive has been rewritten.
type ConfigReloader interface {
	// Reload signals every running kitty process. No running process is a
	// successful no-op.
	Reload(ctx context.Context) error
}
