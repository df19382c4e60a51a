package config

import (
	"errors"
	"fmt"
	"net"
	"strings"

	"github.com/spf13/viper"
)

type ServerConfig struct {
	Port string `mapstructure:"port"`
}

type MySQLConfig struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
	DB   string `mapstructure:"db"`
	User string `mapstructure:"user"`
	Pass string `mapstructure:"pass"`
}

type RedisConfig struct {
	Addr string `mapstructure:"addr"`
	DB   int    `mapstructure:"db"`
}

// StorageConfig points at the hosted object store. Both URL and Key must be set
// for the store to be configured; there is no placeholder fallback.
type StorageConfig struct {
	URL    string `mapstructure:"url"`
	Key    string `mapstructure:"key"`
	Bucket string `mapstructure:"bucket"`
}

// ReportConstants are the business figures the reports use. They were
// hard-coded in earlier versions of the system and are kept here as named,
// documented configuration until the real derivations are wired up.
type ReportConstants struct {
	// Capital is the flat capital figure added to the final statement.
	Capital float64 `mapstructure:"capital"`
	// PartnerCount divides profit and the final-statement grand total.
	PartnerCount int `mapstructure:"partner_count"`
	// CommissionRate is applied to total loan amount in partner performance.
	CommissionRate float64 `mapstructure:"commission_rate"`
	// NPARate approximates the at-risk amount as a share of the loan amount.
	NPARate float64 `mapstructure:"npa_rate"`
	// ShareValueRate is the share of total profit reported as share value.
	ShareValueRate float64 `mapstructure:"share_value_rate"`
	// IncomeAccounts and ExpenseAccounts are the account heads the
	// profit-and-loss report sums, matched case-insensitively by substring.
	IncomeAccounts  []string `mapstructure:"income_accounts"`
	ExpenseAccounts []string `mapstructure:"expense_accounts"`
	// Default window starts for reports that open unbounded.
	NewCustomersFrom       string `mapstructure:"new_customers_from"`
	PartnerPerformanceFrom string `mapstructure:"partner_performance_from"`
}

type Config struct {
	Server       ServerConfig    `mapstructure:"server"`
	MySQL        MySQLConfig     `mapstructure:"mysql"`
	Redis        RedisConfig     `mapstructure:"redis"`
	Storage      StorageConfig   `mapstructure:"storage"`
	Report       ReportConstants `mapstructure:"report"`
	IdempTTLSecs int             `mapstructure:"idempotency_ttl_seconds"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "8080")

	v.SetDefault("mysql.host", "mysql")
	v.SetDefault("mysql.port", "3306")
	v.SetDefault("mysql.db", "finbook")
	v.SetDefault("mysql.user", "finbook")
	v.SetDefault("mysql.pass", "finbook")

	v.SetDefault("redis.addr", "redis:6379")
	v.SetDefault("redis.db", 0)

	v.SetDefault("storage.bucket", "loan-images")

	v.SetDefault("report.capital", 37517282.0)
	v.SetDefault("report.partner_count", 4)
	v.SetDefault("report.commission_rate", 0.02)
	v.SetDefault("report.npa_rate", 0.10)
	v.SetDefault("report.share_value_rate", 0.30)
	v.SetDefault("report.income_accounts", []string{
		"CD COMMISSION", "Document Charges", "JEEVANI JHOTHI",
		"PENALTY CD", "STBD Commission", "STBD DOCUMENT CHARGES", "STBD PENALTY",
	})
	v.SetDefault("report.expense_accounts", []string{
		"EXPENCES", "EXPENCES A/C", "EXPENCES A/C OUT", "INTEREST A/C", "NPA A/C",
	})
	v.SetDefault("report.new_customers_from", "2013-04-25")
	v.SetDefault("report.partner_performance_from", "2017-05-01")

	v.SetDefault("idempotency_ttl_seconds", 300)
}

// Load reads config.yaml from path (or the working directory when path is
// empty) with FINBOOK_* environment overrides, e.g. FINBOOK_MYSQL_HOST.
// A missing config file is fine; defaults and environment cover everything.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if path == "" {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	} else {
		v.SetConfigFile(path)
	}

	v.SetEnvPrefix("FINBOOK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &c, nil
}

func (c *Config) Validate() error {
	if c.MySQL.Host == "" || c.MySQL.Port == "" || c.MySQL.DB == "" || c.MySQL.User == "" {
		return errors.New("missing MySQL config (mysql.host/port/db/user)")
	}
	if _, err := net.LookupPort("tcp", c.MySQL.Port); err != nil {
		return fmt.Errorf("invalid mysql.port %q: %w", c.MySQL.Port, err)
	}
	if c.Server.Port == "" {
		return errors.New("missing server.port")
	}
	if c.Report.PartnerCount <= 0 {
		return errors.New("report.partner_count must be positive")
	}
	return nil
}

func (c *Config) mysqlAddr() string { return net.JoinHostPort(c.MySQL.Host, c.MySQL.Port) }

func (c *Config) MySQLDSN() string {
	// multiStatements=true is handy for migrations; parseTime needed for DATETIME
	return fmt.Sprintf("%s:%s@tcp(%s)/%s?multiStatements=true&parseTime=true&charset=utf8mb4,utf8",
		c.MySQL.User, c.MySQL.Pass, c.mysqlAddr(), c.MySQL.DB)
}

// StorageConfigured reports whether object-store credentials are present.
func (c *Config) StorageConfigured() bool {
	return c.Storage.URL != "" && c.Storage.Key != ""
}
