package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
	DriverSQLite   = "sqlite"
)

type Config struct {
	Driver string `mapstructure:"driver"`

	PostgresAddress  string `mapstructure:"postgres_address"`
	PostgresPort     string `mapstructure:"postgres_port"`
	PostgresDB       string `mapstructure:"postgres_db"`
	PostgresUsername string `mapstructure:"postgres_username"`
	PostgresPassword string `mapstructure:"postgres_password"`

	MySQLAddress  string `mapstructure:"mysql_address"`
	MySQLPort     string `mapstructure:"mysql_port"`
	MySQLDB       string `mapstructure:"mysql_db"`
	MySQLUsername string `mapstructure:"mysql_username"`
	MySQLPassword string `mapstructure:"mysql_password"`

	SQLitePath string `mapstructure:"sqlite_db_path"`

	HTTPPort string `mapstructure:"http_port"`
	LogLevel string `mapstructure:"log_level"`
}

// env names are kept stable for the docker compose setup
var envBindings = map[string]string{
	"driver":            "LEDGER_DRIVER",
	"postgres_address":  "POSTGRES_ADDRESS",
	"postgres_port":     "POSTGRES_PORT",
	"postgres_db":       "POSTGRES_DB",
	"postgres_username": "POSTGRES_USERNAME",
	"postgres_password": "POSTGRES_PASSWORD",
	"mysql_address":     "MYSQL_ADDRESS",
	"mysql_port":        "MYSQL_PORT",
	"mysql_db":          "MYSQL_DB",
	"mysql_username":    "MYSQL_USERNAME",
	"mysql_password":    "MYSQL_PASSWORD",
	"sqlite_db_path":    "SQLITE_DB_PATH",
	"http_port":         "HTTP_PORT",
	"log_level":         "LOG_LEVEL",
}

func setDefaults(v *viper.Viper) {
	// In all cases the default behavior should be for the docker compose setup
	v.SetDefault("driver", DriverPostgres)
	v.SetDefault("postgres_address", "localhost")
	v.SetDefault("postgres_port", "5433")
	v.SetDefault("postgres_db", "postgres")
	v.SetDefault("postgres_username", "postgres")
	v.SetDefault("postgres_password", "testpassword")
	v.SetDefault("mysql_address", "localhost")
	v.SetDefault("mysql_port", "3306")
	v.SetDefault("mysql_db", "finance_db")
	v.SetDefault("mysql_username", "root")
	v.SetDefault("mysql_password", "")
	v.SetDefault("sqlite_db_path", "./data/ledger.db")
	v.SetDefault("http_port", "9446")
	v.SetDefault("log_level", "info")
}

// ProcessEnvironmentVariables builds the config from defaults and the environment only.
func ProcessEnvironmentVariables() (*Config, error) {
	return Load("")
}

// Load reads an optional config file (any format viper understands) and
// overlays the environment. A .env file in the working directory is loaded
// first when present.
func Load(configFile string) (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)
	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("bind %s: %w", env, err)
		}
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var env Config
	if err := v.Unmarshal(&env); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	env.Driver = strings.ToLower(strings.TrimSpace(env.Driver))

	if err := env.Validate(); err != nil {
		return nil, err
	}
	return &env, nil
}

func (c *Config) Validate() error {
	switch c.Driver {
	case DriverPostgres, DriverMySQL:
	case DriverSQLite:
		if c.SQLitePath == "" {
			return fmt.Errorf("sqlite_db_path cannot be empty when driver is %s", DriverSQLite)
		}
	default:
		return fmt.Errorf("invalid driver %q: must be one of %s, %s, %s", c.Driver, DriverPostgres, DriverMySQL, DriverSQLite)
	}
	if c.HTTPPort == "" {
		return fmt.Errorf("http_port cannot be empty")
	}
	return nil
}

// DSN returns the data source name for the configured driver.
func (c *Config) DSN() string {
	switch c.Driver {
	case DriverMySQL:
		return c.MySQLDSN()
	case DriverSQLite:
		return c.SQLitePath
	default:
		return c.PostgresDSN()
	}
}

func (c *Config) PostgresDSN() string {
	return "postgres://" + c.PostgresUsername + ":" +
		c.PostgresPassword + "@" + c.PostgresAddress + ":" +
		c.PostgresPort + "/" + c.PostgresDB + "?sslmode=disable"
}

func (c *Config) MySQLDSN() string {
	cfg := mysql.NewConfig()
	cfg.User = c.MySQLUsername
	cfg.Passwd = c.MySQLPassword
	cfg.Net = "tcp"
	cfg.Addr = c.MySQLAddress + ":" + c.MySQLPort
	cfg.DBName = c.MySQLDB
	cfg.ParseTime = true
	cfg.Loc = time.UTC
	return cfg.FormatDSN()
}
