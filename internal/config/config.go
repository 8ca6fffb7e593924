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
	App            App            `mapstructure:",squash"`
	Server         Server         `mapstructure:",squash"`
	Database       Database       `mapstructure:",squash"`
	DataSource     DataSource     `mapstructure:",squash"`
	Dashboard      Dashboard      `mapstructure:",squash"`
	DatasetRefresh DatasetRefresh `mapstructure:",squash"`
}

type Server struct {
	Host        string   `mapstructure:"host"`
	Port        string   `mapstructure:"port"`
	CORSOrigins []string `mapstructure:"cors_allowed_origins"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

// DataSource define de onde o dataset é carregado
type DataSource struct {
	Kind    string        `mapstructure:"datasource_kind"` // file, http, postgres ou sample
	Path    string        `mapstructure:"datasource_path"`
	URL     string        `mapstructure:"datasource_url"`
	Timeout time.Duration `mapstructure:"datasource_timeout"`
}

// Dashboard define os anos comparados e o tamanho dos rankings
type Dashboard struct {
	CurrentYear  int `mapstructure:"dashboard_current_year"`
	PreviousYear int `mapstructure:"dashboard_previous_year"`
	ManagerTopN  int `mapstructure:"dashboard_manager_top_n"`
	BranchTopN   int `mapstructure:"dashboard_branch_top_n"`
}

type DatasetRefresh struct {
	CronSchedule string `mapstructure:"dataset_refresh_cron"`
	Enabled      bool   `mapstructure:"dataset_refresh_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "*")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/outlets")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("DATASOURCE_KIND", "sample")
	viper.SetDefault("DATASOURCE_PATH", "data.json")
	viper.SetDefault("DATASOURCE_URL", "")
	viper.SetDefault("DATASOURCE_TIMEOUT", "30s")

	viper.SetDefault("DASHBOARD_CURRENT_YEAR", 2025)
	viper.SetDefault("DASHBOARD_PREVIOUS_YEAR", 0) // 0 usa o ano anterior ao corrente
	viper.SetDefault("DASHBOARD_MANAGER_TOP_N", 6)
	viper.SetDefault("DASHBOARD_BRANCH_TOP_N", 10)

	viper.SetDefault("DATASET_REFRESH_CRON", "0 */6 * * *") // A cada 6 horas
	viper.SetDefault("DATASET_REFRESH_ENABLED", false)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

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

	if config.Dashboard.PreviousYear == 0 {
		config.Dashboard.PreviousYear = config.Dashboard.CurrentYear - 1
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
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
