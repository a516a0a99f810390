// Package utils exposes reusable helpers consumed by the termswap commands.
//
// ConfigurationLoader layers embedded defaults, configuration files, and
// TERMSWAP_* environment variables through Viper; LoggerFactory builds zap
// loggers for diagnostics kept apart from the progress report.
package utils
