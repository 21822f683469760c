package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/pelletier/go-toml/v2"

	"github.com/iudanet/rollbook/internal/models"
)

// Config описывает конфигурацию клиента
type Config struct {
	Server struct {
		// URL сервера синхронизации
		URL string `toml:"url" validate:"required,url"`
	} `toml:"server"`

	Storage struct {
		// Путь к зашифрованной локальной базе
		Path string `toml:"path" validate:"required"`
	} `toml:"storage"`

	Sync struct {
		// Секция по умолчанию для команд без флага -section
		DefaultSection string `toml:"default_section" validate:"omitempty,oneof=company junior"`
	} `toml:"sync"`

	Log struct {
		// Уровень логирования: debug, info, warn, error
		Level string `toml:"level" validate:"omitempty,oneof=debug info warn error"`
	} `toml:"log"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Default возвращает конфигурацию со значениями по умолчанию
func Default() *Config {
	cfg := &Config{}
	cfg.Storage.Path = defaultStoragePath()
	cfg.Sync.DefaultSection = string(models.SectionCompany)
	cfg.Log.Level = "info"
	return cfg
}

// Load читает конфигурацию из TOML файла поверх значений по умолчанию.
// Отсутствующий файл не ошибка: остаются значения по умолчанию,
// server url тогда обязан прийти флагом.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		return cfg, nil
	case err != nil:
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("error parsing config file %s: %w", path, err)
	}
	return cfg, nil
}

// Validate проверяет конфигурацию после наложения флагов
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// DefaultSection возвращает секцию по умолчанию
func (c *Config) DefaultSection() models.Section {
	return models.Section(c.Sync.DefaultSection)
}

// DefaultPath возвращает путь к конфигу по умолчанию
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "rollbook.toml"
	}
	return filepath.Join(home, ".config", "rollbook", "config.toml")
}

func defaultStoragePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "rollbook.db"
	}
	return filepath.Join(home, ".local", "share", "rollbook", "rollbook.db")
}
