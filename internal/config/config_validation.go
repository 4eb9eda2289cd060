package config

import "errors"

// Validation errors returned by [StructuredConfig.validate].
var (
	// ErrNoTokenSignKey is returned when no JWT signing key was provided by
	// any configuration source. The service cannot issue or verify tokens
	// without it.
	ErrNoTokenSignKey = errors.New("token sign key is not specified")

	// ErrNoDatabaseDSN is returned when the relational database DSN is
	// missing.
	ErrNoDatabaseDSN = errors.New("database DSN is not specified")
)

// validate checks that the merged configuration is complete enough to start
// the service.
func (c *StructuredConfig) validate() error {
	var err error

	if c.App.TokenSignKey == "" {
		err = errors.Join(err, ErrNoTokenSignKey)
	}
	if c.Storage.DB.DSN == "" {
		err = errors.Join(err, ErrNoDatabaseDSN)
	}

	return err
}
