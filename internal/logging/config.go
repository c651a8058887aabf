package logging

type Level string

const (
	LevelTrace Level = "trace"
	LevelDebug Level = "debug"
	LevelInfo  Level = "info"
	LevelWarn  Level = "warn"
	LevelError Level = "error"
)

type Format string

const (
	FormatJSON    Format = "json"
	FormatConsole Format = "console"
)

type Config struct {
	Level  Level  `env:"LOG_LEVEL,default=info" validate:"required,oneof=trace debug info warn error"`
	Format Format `env:"LOG_FORMAT,default=console" validate:"required,oneof=json console"`
}
