// Package repository defines persistence interfaces for flashmark's cached and user data.
package repository

import "context"

// SettingsRepository stores user preferences as key/value pairs.
type SettingsRepository interface {
	// Get returns the value for key. found is false when the key was never set.
	Get(ctx context.Context, key string) (value string, found bool, err error)

	// Set creates or replaces the value for key.
	Set(ctx context.Context, key, value string) error

	// GetAll returns every stored setting.
	GetAll(ctx context.Context) (map[string]string, error)
}
