package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App              App              `mapstructure:",squash"`
	Server           Server           `mapstructure:",squash"`
	Database         Database         `mapstructure:",squash"`
	ComexAPI         ComexAPI         `mapstructure:",squash"`
	Auth             Auth             `mapstructure:",squash"`
	Dashboard        Dashboard        `mapstructure:",squash"`
	Documents        Documents        `mapstructure:",squash"`
	CacheRefreshSync CacheRefreshSync `mapstructure:",squash"`
	Cors             Cors             `mapstructure:",squash"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type ComexAPI struct {
	URL         string        `mapstructure:"comex_api_url"`
	AccessToken string        `mapstructure:"comex_api_access_token"`
	Timeout     time.Duration `mapstructure:"comex_api_timeout"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Auth struct {
	Secret string `mapstructure:"auth_secret"`
}

type Dashboard struct {
	CacheTimeout         time.Duration `mapstructure:"dashboard_cache_timeout"`
	LoadMaxAttempts      int           `mapstructure:"dashboard_load_max_attempts"`
	BootstrapMaxAttempts int           `mapstructure:"dashboard_bootstrap_max_attempts"`
}

type Documents struct {
	MaxUploadSizeMB   int64    `mapstructure:"documents_max_upload_size_mb"`
	AllowedExtensions []string `mapstructure:"documents_allowed_extensions"`
}

type CacheRefreshSync struct {
	CronSchedule string `mapstructure:"cache_refresh_sync_cron"`
	Enabled      bool   `mapstructure:"cache_refresh_sync_enabled"`
}

type Cors struct {
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/comexflow")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("COMEX_API_URL", "http://localhost:9000/api")
	viper.SetDefault("COMEX_API_ACCESS_TOKEN", "your_access_token") // ONLY LOCAL
	viper.SetDefault("COMEX_API_TIMEOUT", "45s")

	viper.SetDefault("AUTH_SECRET", "your_secret_key")

	// Defaults da dashboard
	viper.SetDefault("DASHBOARD_CACHE_TIMEOUT", "5m") // Validade do cache de dados
	viper.SetDefault("DASHBOARD_LOAD_MAX_ATTEMPTS", 3)
	viper.SetDefault("DASHBOARD_BOOTSTRAP_MAX_ATTEMPTS", 3)

	// Defaults de anexos de processo
	viper.SetDefault("DOCUMENTS_MAX_UPLOAD_SIZE_MB", 10)
	viper.SetDefault("DOCUMENTS_ALLOWED_EXTENSIONS", ".pdf,.xml,.png,.jpg,.jpeg,.xlsx")

	// Defaults para o refresh agendado do cache
	viper.SetDefault("CACHE_REFRESH_SYNC_CRON", "*/15 * * * *") // A cada 15 minutos
	viper.SetDefault("CACHE_REFRESH_SYNC_ENABLED", false)

	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	// Configurar valores padrão
	SetDefaults()

	// Configurar o Viper
	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv() // Isso permite que o Viper leia variáveis de ambiente

	// Tentar ler o arquivo .env com o Viper (opcional, já que usamos godotenv)
	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	// Obter diretório atual
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../.env"),            // Diretório acima
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
	}

	for _, location := range locations {
		logrus.Info("Tentando carregar .env de:", location)
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
