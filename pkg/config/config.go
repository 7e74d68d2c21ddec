package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// DefaultAPIBaseURL URL del backend Firex cuando no se configura ninguna.
const DefaultAPIBaseURL = "http://localhost:8066"

// Backends de almacenamiento de sesión soportados.
const (
	StoreMemory   = "memory"
	StoreFile     = "file"
	StoreRedis    = "redis"
	StorePostgres = "postgres"
)

// Config agrupa la configuración del frontend (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App     AppConfig
	API     APIConfig
	HTTP    HTTPConfig
	Session SessionConfig
	Redis   RedisConfig
	DB      DBConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string
}

// APIConfig configuración del cliente REST hacia el backend Firex.
type APIConfig struct {
	BaseURL    string
	Timeout    time.Duration // 0 = sin timeout (comportamiento original)
	SendBearer bool          // además de User-Id/Updated-By, enviar Authorization: Bearer
}

// HTTPConfig configuración del servidor HTTP (BFF).
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// SessionConfig configuración de sesiones del navegador.
type SessionConfig struct {
	Store         string // memory, file, redis, postgres
	FilePath      string
	TTL           time.Duration
	CookieName    string
	CookieSecret  string // firma HS256 de la cookie de sesión
	EncryptionKey string // opcional: cifra los valores persistidos (32 bytes, hex o base64)
}

// RedisConfig configuración de Redis para el store de sesiones.
type RedisConfig struct {
	Addr     string
	Username string
	Password string
	DB       int
}

// DBConfig configuración de PostgreSQL (store de sesiones).
// Si DatabaseURL no está vacío, se usa como connection string completo.
type DBConfig struct {
	DatabaseURL string
	Host        string
	Port        int
	User        string
	Password    string
	DBName      string
	SSLMode     string
}

// ConnectionString devuelve el DSN a usar: DATABASE_URL si está definido, si no el construido con DSN().
func (c DBConfig) ConnectionString() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return c.DSN()
}

// DSN devuelve el connection string para PostgreSQL con URL encoding para caracteres especiales.
func (c DBConfig) DSN() string {
	u := &url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:     "/" + c.DBName,
		RawQuery: fmt.Sprintf("sslmode=%s", c.SSLMode),
	}
	return u.String()
}

// IsDevelopment indica si la app corre en modo desarrollo.
func (c *Config) IsDevelopment() bool {
	return c.App.Env == "development"
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, FIREX_API_URL, SESSION_STORE, etc.
func Load() (*Config, error) {
	v := viper.New()

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

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	// NEXT_PUBLIC_API_URL se mantiene como alias del despliegue anterior.
	baseURL := getString(v, "FIREX_API_URL", getString(v, "NEXT_PUBLIC_API_URL", DefaultAPIBaseURL))

	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "firex-web"),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
		},
		API: APIConfig{
			BaseURL:    strings.TrimRight(baseURL, "/"),
			Timeout:    time.Duration(getInt(v, "API_TIMEOUT_SECONDS", 0)) * time.Second,
			SendBearer: getBool(v, "API_SEND_BEARER", false),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 3000),
		},
		Session: SessionConfig{
			Store:         strings.ToLower(getString(v, "SESSION_STORE", StoreMemory)),
			FilePath:      getString(v, "SESSION_FILE", ".firex/session.json"),
			TTL:           time.Duration(getInt(v, "SESSION_TTL_MINUTES", 7*24*60)) * time.Minute,
			CookieName:    getString(v, "SESSION_COOKIE", "firex_sid"),
			CookieSecret:  getString(v, "SESSION_SECRET", ""),
			EncryptionKey: getString(v, "SESSION_ENCRYPTION_KEY", ""),
		},
		Redis: RedisConfig{
			Addr:     getString(v, "REDIS_ADDR", "localhost:6379"),
			Username: getString(v, "REDIS_USERNAME", ""),
			Password: getString(v, "REDIS_PASSWORD", ""),
			DB:       getInt(v, "REDIS_DB", 0),
		},
		DB: DBConfig{
			DatabaseURL: getString(v, "DATABASE_URL", ""),
			Host:        getString(v, "DB_HOST", "localhost"),
			Port:        getInt(v, "DB_PORT", 5432),
			User:        getString(v, "DB_USER", "postgres"),
			Password:    getString(v, "DB_PASSWORD", ""),
			DBName:      getString(v, "DB_NAME", "firex"),
			SSLMode:     getString(v, "DB_SSLMODE", "disable"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate revisa combinaciones inválidas de configuración.
func (c *Config) Validate() error {
	if _, err := url.ParseRequestURI(c.API.BaseURL); err != nil {
		return fmt.Errorf("config: FIREX_API_URL inválida %q: %w", c.API.BaseURL, err)
	}
	switch c.Session.Store {
	case StoreMemory, StoreFile, StoreRedis, StorePostgres:
	default:
		return fmt.Errorf("config: SESSION_STORE desconocido %q (memory, file, redis, postgres)", c.Session.Store)
	}
	if c.Session.CookieSecret == "" && !c.IsDevelopment() {
		return fmt.Errorf("config: SESSION_SECRET es requerido fuera de development")
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

func getBool(v *viper.Viper, key string, def bool) bool {
	if v.IsSet(key) {
		b, err := strconv.ParseBool(v.GetString(key))
		if err != nil {
			return def
		}
		return b
	}
	return def
}
