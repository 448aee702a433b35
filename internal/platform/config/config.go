package config

import (
	"errors"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config 结构体定义了应用程序的所有配置项
// 它与 config.yaml 文件的结构完全对应
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Backup   BackupConfig   `mapstructure:"backup"`
}

// ServerConfig 定义了服务器相关的配置
type ServerConfig struct {
	Address string     `mapstructure:"address"`
	Cors    CorsConfig `mapstructure:"cors"`
}

// CorsConfig 定义了CORS相关的配置
type CorsConfig struct {
	AllowedOrigins []string `mapstructure:"allowedOrigins"`
}

// DatabaseConfig 定义了两个本地存储文件的配置：
// 主记录库（wines表）与独立的本地槽位库（备份世代与偏好设置）。
type DatabaseConfig struct {
	Sqlite     SqliteConfig     `mapstructure:"sqlite"`
	LocalStore LocalStoreConfig `mapstructure:"localStore"`
}

// SqliteConfig 定义了主数据库文件的配置
type SqliteConfig struct {
	Path string `mapstructure:"path"`
}

// LocalStoreConfig 定义了本地槽位数据库文件的配置
// 它必须与主数据库是不同的文件，主库损坏时备份仍可读取。
type LocalStoreConfig struct {
	Path string `mapstructure:"path"`
}

// BackupConfig 定义了自动备份的配置
type BackupConfig struct {
	Interval       time.Duration `mapstructure:"interval"`
	MaxGenerations int           `mapstructure:"maxGenerations"`
}

// LoadConfig 函数负责查找、加载和解析配置文件
// 配置文件缺失时使用默认值启动；解析失败才返回错误。
func LoadConfig() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")

	// 默认值：与原始应用的行为保持一致（5分钟间隔、3世代）
	v.SetDefault("server.address", ":8080")
	v.SetDefault("server.cors.allowedOrigins", []string{"http://localhost:3000"})
	v.SetDefault("database.sqlite.path", "wine.db")
	v.SetDefault("database.localStore.path", "appstate.db")
	v.SetDefault("backup.interval", 5*time.Minute)
	v.SetDefault("backup.maxGenerations", 3)

	// 允许通过环境变量覆盖配置，例如 SERVER_ADDRESS=:9090
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
