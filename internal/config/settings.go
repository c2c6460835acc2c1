// internal/config/settings.go
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Префикс переменных окружения
const EnvPrefix = "SANITY_"

// Settings: параметры запуска, не влияющие на сложность
type Settings struct {
	Seed        int64   // 0: сид от текущего времени
	Muted       bool    // стартовать без звука
	WindowScale float64 // масштаб окна относительно ScreenWidth x ScreenHeight
	LogLevel    string
	PprofAddr   string // пустая строка: профайлер выключен
	Title       string
}

// DefaultSettings возвращает настройки по умолчанию
func DefaultSettings() Settings {
	return Settings{
		Seed:        0,
		Muted:       false,
		WindowScale: 1.0,
		LogLevel:    "info",
		PprofAddr:   "",
		Title:       "Sanity Survival",
	}
}

// LoadSettings читает .env (если есть), затем переменные окружения SANITY_*.
// Отсутствие файла .env ошибкой не считается.
func LoadSettings(envFiles ...string) (Settings, error) {
	s := DefaultSettings()

	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return s, fmt.Errorf("failed to load env file %s: %w", f, err)
		}
	}

	if v, ok := os.LookupEnv(EnvPrefix + "SEED"); ok {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return s, fmt.Errorf("invalid %sSEED %q: %w", EnvPrefix, v, err)
		}
		s.Seed = seed
	}
	if v, ok := os.LookupEnv(EnvPrefix + "MUTED"); ok {
		muted, err := strconv.ParseBool(v)
		if err != nil {
			return s, fmt.Errorf("invalid %sMUTED %q: %w", EnvPrefix, v, err)
		}
		s.Muted = muted
	}
	if v, ok := os.LookupEnv(EnvPrefix + "WINDOW_SCALE"); ok {
		scale, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return s, fmt.Errorf("invalid %sWINDOW_SCALE %q: %w", EnvPrefix, v, err)
		}
		s.WindowScale = scale
	}
	if v, ok := os.LookupEnv(EnvPrefix + "LOG_LEVEL"); ok {
		s.LogLevel = v
	}
	if v, ok := os.LookupEnv(EnvPrefix + "PPROF_ADDR"); ok {
		s.PprofAddr = v
	}

	return s, s.Validate()
}

// Validate проверяет диапазоны значений
func (s Settings) Validate() error {
	if s.WindowScale <= 0 || s.WindowScale > 4 {
		return fmt.Errorf("window scale must be in (0, 4], got %v", s.WindowScale)
	}
	return nil
}
