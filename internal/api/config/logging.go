package config

// LoggingConfig представляет конфигурацию логирования.
type LoggingConfig struct {
	Level string `yaml:"level" env:"TASKHUB_LOGGER_LEVEL" env-default:"info"`
	Mode  string `yaml:"mode" env:"TASKHUB_LOGGER_MODE" env-default:"production"`
}
