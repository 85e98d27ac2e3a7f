package config

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Políticas de borrado de productos con movimientos registrados.
const (
	DeletePolicyDangling = "dangling" // borra el producto y deja los movimientos huérfanos
	DeletePolicyRestrict = "restrict" // rechaza el borrado si hay movimientos
	DeletePolicyCascade  = "cascade"  // borra los movimientos en la misma transacción
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App       AppConfig
	DB        DBConfig
	Inventory InventoryConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, production
	Name     string
	Locale   string // BCP 47, usado para formatear precios en la terminal y el PDF
	LogLevel string
}

// DBConfig configuración del archivo SQLite local.
type DBConfig struct {
	Path          string
	BusyTimeoutMS int
}

// DSN devuelve la cadena de conexión para modernc.org/sqlite.
// Las claves foráneas quedan desactivadas (comportamiento por defecto de SQLite y del esquema original).
func (c DBConfig) DSN() string {
	return fmt.Sprintf("file:%s?_pragma=busy_timeout(%d)&_pragma=foreign_keys(0)",
		filepath.ToSlash(c.Path), c.BusyTimeoutMS)
}

// InventoryConfig parámetros del libro de movimientos y del escáner de alertas.
type InventoryConfig struct {
	AlertInterval  time.Duration
	MovementsLimit int
	DeletePolicy   string
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, DB_PATH, ALERT_INTERVAL, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env o config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "controle-estoque"),
			Locale:   getString(v, "APP_LOCALE", "pt-BR"),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
		},
		DB: DBConfig{
			Path:          getString(v, "DB_PATH", filepath.Join("dados", "estoque.db")),
			BusyTimeoutMS: getInt(v, "DB_BUSY_TIMEOUT_MS", 5000),
		},
		Inventory: InventoryConfig{
			AlertInterval:  getDuration(v, "ALERT_INTERVAL", 3*time.Hour),
			MovementsLimit: getInt(v, "MOVEMENTS_LIMIT", 20),
			DeletePolicy:   strings.ToLower(getString(v, "DELETE_POLICY", DeletePolicyDangling)),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Inventory.DeletePolicy {
	case DeletePolicyDangling, DeletePolicyRestrict, DeletePolicyCascade:
	default:
		return fmt.Errorf("DELETE_POLICY inválido: %q", c.Inventory.DeletePolicy)
	}
	if c.Inventory.AlertInterval <= 0 {
		return fmt.Errorf("ALERT_INTERVAL debe ser positivo")
	}
	if c.DB.Path == "" {
		return fmt.Errorf("DB_PATH vacío")
	}
	return nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, err := strconv.Atoi(v.GetString(key))
			if err != nil {
				return def
			}
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}

// getDuration acepta "3h", "90m" o milisegundos como entero (el intervalo original era 10800000 ms).
func getDuration(v *viper.Viper, key string, def time.Duration) time.Duration {
	if !v.IsSet(key) {
		return def
	}
	raw := strings.TrimSpace(v.GetString(key))
	if ms, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return time.Duration(ms) * time.Millisecond
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return def
	}
	return d
}
