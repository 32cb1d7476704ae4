package entities

// ExpandEnv exports expandEnv for testing.
var ExpandEnv = expandEnv //nolint:gochecknoglobals // test export

// ValidateSettings exports validateSettings for testing.
var ValidateSettings = validateSettings //nolint:gochecknoglobals // test export
