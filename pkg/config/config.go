package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App       AppConfig
	Log       LogConfig
	DB        DBConfig
	JWT       JWTConfig
	HTTP      HTTPConfig
	Session   SessionConfig
	Redis     RedisConfig
	SMTP      SMTPConfig
	Inventory InventoryConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env          string // development, staging, production
	Name         string
	BaseURL      string // usado en los enlaces de correo (recuperar contraseña)
	TemplatesDir string
}

// LogConfig nivel de log (trace, debug, info, warn, error).
type LogConfig struct {
	Level string
}

// DBConfig configuración de PostgreSQL.
// Si DatabaseURL no está vacío, se usa como connection string completo.
type DBConfig struct {
	DatabaseURL string
	Host        string
	Port        int
	User        string
	Password    string
	DBName      string
	SSLMode     string

	// Pool de conexiones; cero = valor por defecto de pgxpool.
	MaxConns             int
	MinConns             int
	MaxConnLifetimeMin   int
	MaxConnIdleMin       int
	StatementTimeoutSecs int
	AppName              string // application_name visible en pg_stat_activity
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

// JWTConfig configuración de JWT para la API JSON.
type JWTConfig struct {
	Secret     string
	Expiration int // minutos
	Issuer     string
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// SessionConfig cookie de sesión de las páginas HTML.
type SessionConfig struct {
	CookieName string
	TTLMinutes int
}

// RedisConfig conexión a Redis. URL vacía = tokens de recuperación en memoria.
type RedisConfig struct {
	URL string
}

// SMTPConfig envío de correo. Host vacío = el correo solo se registra en el log.
type SMTPConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
	// Minutos de validez del enlace para restablecer contraseña.
	ResetTTLMinutes int
}

// InventoryConfig políticas del motor de inventario.
type InventoryConfig struct {
	// AllowNegativeStock permite que una salida deje el stock bajo cero (por defecto sí).
	AllowNegativeStock bool
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, DB_HOST, JWT_SECRET, REDIS_URL, etc.
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

	cfg := &Config{
		App: AppConfig{
			Env:          getString(v, "APP_ENV", "development"),
			Name:         getString(v, "APP_NAME", "dulceria-lilis"),
			BaseURL:      strings.TrimRight(getString(v, "APP_BASE_URL", "http://localhost:8080"), "/"),
			TemplatesDir: getString(v, "TEMPLATES_DIR", "./web/templates"),
		},
		Log: LogConfig{
			Level: getString(v, "LOG_LEVEL", "info"),
		},
		DB: DBConfig{
			DatabaseURL: getString(v, "DATABASE_URL", ""),
			Host:        getString(v, "DB_HOST", "localhost"),
			Port:        getInt(v, "DB_PORT", 5432),
			User:        getString(v, "DB_USER", "postgres"),
			Password:    getString(v, "DB_PASSWORD", ""),
			DBName:      getString(v, "DB_NAME", "dulceria_lilis"),
			SSLMode:     getString(v, "DB_SSLMODE", "disable"),

			MaxConns:             getInt(v, "DB_MAX_CONNS", 10),
			MinConns:             getInt(v, "DB_MIN_CONNS", 1),
			MaxConnLifetimeMin:   getInt(v, "DB_MAX_CONN_LIFETIME_MINUTES", 60),
			MaxConnIdleMin:       getInt(v, "DB_MAX_CONN_IDLE_MINUTES", 15),
			StatementTimeoutSecs: getInt(v, "DB_STATEMENT_TIMEOUT_SECONDS", 30),
			AppName:              getString(v, "APP_NAME", "dulceria-lilis"),
		},
		JWT: JWTConfig{
			Secret:     getString(v, "JWT_SECRET", ""),
			Expiration: getInt(v, "JWT_EXPIRATION_MINUTES", 60),
			Issuer:     getString(v, "JWT_ISSUER", "dulceria-lilis"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		Session: SessionConfig{
			CookieName: getString(v, "SESSION_COOKIE", "lilis_session"),
			TTLMinutes: getInt(v, "SESSION_TTL_MINUTES", 480),
		},
		Redis: RedisConfig{
			URL: getString(v, "REDIS_URL", ""),
		},
		SMTP: SMTPConfig{
			Host:            getString(v, "SMTP_HOST", ""),
			Port:            getInt(v, "SMTP_PORT", 587),
			User:            getString(v, "SMTP_USER", ""),
			Password:        getString(v, "SMTP_PASSWORD", ""),
			From:            getString(v, "SMTP_FROM", "no-reply@dulcerialilis.cl"),
			ResetTTLMinutes: getInt(v, "PASSWORD_RESET_TTL_MINUTES", 60),
		},
		Inventory: InventoryConfig{
			AllowNegativeStock: getBool(v, "INVENTORY_ALLOW_NEGATIVE_STOCK", true),
		},
	}

	if cfg.App.Env == "production" && cfg.JWT.Secret == "" {
		return nil, fmt.Errorf("JWT_SECRET es obligatorio en producción")
	}
	return cfg, nil
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
	if !v.IsSet(key) {
		return def
	}
	b, err := strconv.ParseBool(strings.TrimSpace(v.GetString(key)))
	if err != nil {
		return def
	}
	return b
}
