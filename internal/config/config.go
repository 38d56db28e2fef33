package config

import (
	"flag"
	"fmt"
	"io"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

const (
	defaultPort            = 80
	defaultLogLevel        = "info"
	defaultLogOutput       = "stdout"
	defaultShutdownTimeout = 5 * time.Second
)

// Config Конфигурация сервера. Не изменяется после Load.
type Config struct {
	Address         string
	DocRoot         string
	Port            int
	LogLevel        string
	LogOutput       string
	ShutdownTimeout time.Duration
}

// ListenAddress Адрес для http.Server в формате host:port.
func (c *Config) ListenAddress() string {
	return net.JoinHostPort(c.Address, strconv.Itoa(c.Port))
}

// Load Инициализация структуры, содержащей конфигурацию сервера, полученную из флагов или
// переменных окружения. Переменные окружения имеют приоритет над флагами.
// При запросе справки (-h/--help) возвращает flag.ErrHelp.
func Load(name string, args []string, usageOut io.Writer) (*Config, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("не удалось определить рабочий каталог: %w", err)
	}

	config := &Config{}

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(usageOut)

	// у каждого флага есть короткая и длинная форма
	fs.StringVar(&config.Address, "a", "", "Bind server to specific address (empty = all interfaces)")
	fs.StringVar(&config.Address, "address", "", "Bind server to specific address (empty = all interfaces)")
	fs.StringVar(&config.DocRoot, "d", cwd, "Set the root for serving content")
	fs.StringVar(&config.DocRoot, "docroot", cwd, "Set the root for serving content")
	fs.IntVar(&config.Port, "p", defaultPort, "Bind server to specified port")
	fs.IntVar(&config.Port, "port", defaultPort, "Bind server to specified port")
	fs.StringVar(&config.LogLevel, "ll", defaultLogLevel, "Log level (example: Debug, Info, Warn, Error)")
	fs.StringVar(&config.LogLevel, "log-level", defaultLogLevel, "Log level (example: Debug, Info, Warn, Error)")
	fs.StringVar(&config.LogOutput, "lo", defaultLogOutput, "Log output: stdout, stderr or path to a log file")
	fs.StringVar(&config.LogOutput, "log-output", defaultLogOutput, "Log output: stdout, stderr or path to a log file")
	fs.DurationVar(&config.ShutdownTimeout, "st", defaultShutdownTimeout, "Graceful shutdown timeout")
	fs.DurationVar(&config.ShutdownTimeout, "shutdown-timeout", defaultShutdownTimeout, "Graceful shutdown timeout")

	if err = fs.Parse(args); err != nil {
		return nil, err
	}

	if value, ok := os.LookupEnv("WMS_ADDRESS"); ok {
		config.Address = value
	}

	if value, ok := os.LookupEnv("WMS_DOCROOT"); ok {
		config.DocRoot = value
	}

	if value, ok := os.LookupEnv("WMS_PORT"); ok {
		port, err := strconv.Atoi(value)
		if err != nil {
			return nil, fmt.Errorf("некорректное значение WMS_PORT `%s`: %w", value, err)
		}
		config.Port = port
	}

	if value, ok := os.LookupEnv("WMS_LOG_LEVEL"); ok {
		config.LogLevel = value
	}

	if value, ok := os.LookupEnv("WMS_LOG_OUTPUT"); ok {
		config.LogOutput = value
	}

	if value, ok := os.LookupEnv("WMS_SHUTDOWN_TIMEOUT"); ok {
		timeout, err := time.ParseDuration(value)
		if err != nil {
			return nil, fmt.Errorf("некорректное значение WMS_SHUTDOWN_TIMEOUT `%s`: %w", value, err)
		}
		config.ShutdownTimeout = timeout
	}

	if err = config.validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Проверка значений и приведение DocRoot к абсолютному пути.
func (c *Config) validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("порт %d вне диапазона 1-65535", c.Port)
	}

	if c.ShutdownTimeout <= 0 {
		return fmt.Errorf("таймаут остановки должен быть положительным, получено %s", c.ShutdownTimeout)
	}

	docRoot, err := filepath.Abs(c.DocRoot)
	if err != nil {
		return fmt.Errorf("ошибка получения абсолютного пути `%s`: %w", c.DocRoot, err)
	}

	info, err := os.Stat(docRoot)
	if err != nil {
		return fmt.Errorf("каталог `%s` недоступен: %w", docRoot, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("`%s` не является каталогом", docRoot)
	}

	c.DocRoot = docRoot

	return nil
}
