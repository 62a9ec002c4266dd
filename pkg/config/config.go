package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config agrupa a configuração da aplicação (leitura via Viper de env e opcionalmente arquivo).
type Config struct {
	App     AppConfig
	Log     LogConfig
	HTTP    HTTPConfig
	Metrics MetricsConfig
	JWT     JWTConfig
	Data    DataConfig
	Sync    SyncConfig
}

// AppConfig configuração geral da aplicação.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// LogConfig nível mínimo do logger estruturado.
type LogConfig struct {
	Level string // trace, debug, info, warn, error
}

// HTTPConfig configuração do servidor HTTP principal (API consumida pela UI).
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devolve o endereço de escuta (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// MetricsConfig servidor operacional separado (health + Prometheus).
type MetricsConfig struct {
	Addr    string // vazio = desabilitado
	Enabled bool
}

// JWTConfig configuração de sessão.
type JWTConfig struct {
	Secret     string
	Expiration int // minutos
	Issuer     string
}

// DataConfig armazenamento local durável (arquivo SQLite, o "localStorage" do serviço).
type DataConfig struct {
	Path string
}

// SyncConfig parâmetros da sincronização com a planilha (Google Apps Script).
// GasWebAppURL aqui é apenas bootstrap: a URL efetiva vive no AppConfig do
// state store e pode ser alterada em runtime pelo painel de manutenção.
type SyncConfig struct {
	GasWebAppURL string
	PushDebounce time.Duration
	PullInterval time.Duration
}

// Load lê a configuração de variáveis de ambiente (e opcionalmente de arquivo).
// As env vars têm prioridade. Nomes esperados: APP_ENV, HTTP_PORT, DATA_PATH, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: arquivo de configuração (.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos erro se não existir

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "atelie-7divas"),
		},
		Log: LogConfig{
			Level: getString(v, "LOG_LEVEL", "info"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		Metrics: MetricsConfig{
			Addr:    getString(v, "METRICS_ADDR", ":9090"),
			Enabled: getString(v, "METRICS_ENABLED", "true") == "true",
		},
		JWT: JWTConfig{
			Secret:     getString(v, "JWT_SECRET", ""),
			Expiration: getInt(v, "JWT_EXPIRATION_MINUTES", 480),
			Issuer:     getString(v, "JWT_ISSUER", "atelie-7divas"),
		},
		Data: DataConfig{
			Path: getString(v, "DATA_PATH", "./7divas.db"),
		},
		Sync: SyncConfig{
			GasWebAppURL: getString(v, "GAS_WEBAPP_URL", ""),
			PushDebounce: getDuration(v, "SYNC_PUSH_DEBOUNCE", 3*time.Second),
			PullInterval: getDuration(v, "SYNC_PULL_INTERVAL", 20*time.Second),
		},
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
			n, _ := strconv.Atoi(v.GetString(key))
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}

func getDuration(v *viper.Viper, key string, def time.Duration) time.Duration {
	if v.IsSet(key) {
		if d, err := time.ParseDuration(v.GetString(key)); err == nil && d > 0 {
			return d
		}
	}
	return def
}
