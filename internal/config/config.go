package config

import (
	"fmt"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
)

// Config описывает конфигурацию утилиты поиска миниатюр.
type Config struct {
	BaseURL  string        // адрес AstroBin
	Workers  int           // число одновременных запросов
	Timeout  time.Duration // таймаут запроса, ноль - без таймаута
	LogLevel string        // уровень логирования
}

const (
	defaultBaseURL  = "https://www.astrobin.com"
	defaultWorkers  = 1
	defaultLogLevel = "info"
)

// Имена переменных среды.
const (
	BaseURLEnv  = "ASTROBIN_BASE_URL"
	WorkersEnv  = "THUMBS_WORKERS"
	TimeoutEnv  = "THUMBS_TIMEOUT"
	LogLevelEnv = "LOG_LEVEL"
)

// ErrInvalid возвращается для недопустимых значений конфигурации.
var ErrInvalid = errors.New("invalid config")

// Environment определяет доступ к переменным среды.
type Environment interface {
	LookupEnv(key string) (string, bool)
}

// New создает экземпляр конфигурации с настройками по умолчанию.
func New() Config {
	return Config{
		BaseURL:  defaultBaseURL,
		Workers:  defaultWorkers,
		LogLevel: defaultLogLevel,
	}
}

// BindFlags связывает параметры конфигурации с флагами командной строки.
func (conf *Config) BindFlags(flags *pflag.FlagSet) {
	flags.StringVar(&conf.BaseURL, "base-url", conf.BaseURL, "AstroBin address")
	flags.IntVarP(&conf.Workers, "workers", "w", conf.Workers, "number of concurrent requests")
	flags.DurationVar(&conf.Timeout, "timeout", conf.Timeout, "request timeout, 0 disables it")
	flags.StringVar(&conf.LogLevel, "log-level", conf.LogLevel, "log level")
}

// FromEnv заполняет параметры конфигурации из переменных среды.
func (conf Config) FromEnv(env Environment) (Config, error) {
	const op = "config from env"

	if baseURL, ok := env.LookupEnv(BaseURLEnv); ok {
		conf.BaseURL = baseURL
	}

	if workers, ok := env.LookupEnv(WorkersEnv); ok {
		n, err := strconv.Atoi(workers)

		if err != nil {
			return conf, errors.Wrapf(err, "%s: %s", op, WorkersEnv)
		}

		conf.Workers = n
	}

	if timeout, ok := env.LookupEnv(TimeoutEnv); ok {
		d, err := time.ParseDuration(timeout)

		if err != nil {
			return conf, errors.Wrapf(err, "%s: %s", op, TimeoutEnv)
		}

		conf.Timeout = d
	}

	if level, ok := env.LookupEnv(LogLevelEnv); ok {
		conf.LogLevel = level
	}

	return conf, nil
}

// Validate проверяет значения конфигурации.
func (conf Config) Validate() error {
	if conf.BaseURL == "" {
		return fmt.Errorf("%w: empty base url", ErrInvalid)
	}

	if conf.Workers < 1 {
		return fmt.Errorf("%w: workers must be positive, got %d", ErrInvalid, conf.Workers)
	}

	if conf.Timeout < 0 {
		return fmt.Errorf("%w: negative timeout %s", ErrInvalid, conf.Timeout)
	}

	return nil
}
