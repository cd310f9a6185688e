package utils

const (
	// LoggerInitializationFailedMessageFormat reports a logger construction failure.
	LoggerInitializationFailedMessageFormat = "failed to initialize logger: %w"
	// ApplicationExecutionFailedMessage prefixes fatal execution errors.
	ApplicationExecutionFailedMessage = "modparser failed"
	// GitDirectoryName is the name of the Git repository directory.
	GitDirectoryName = ".git"
	// ConfigFileName is the configuration document read from the working directory.
	ConfigFileName = "config.yml"
	// EnvironmentPrefix scopes environment overrides, e.g. MODPARSER_RIOTBASE.
	EnvironmentPrefix = "MODPARSER"
)
