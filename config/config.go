package config

import (
	"fmt"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// Conf 全局配置变量，加载后各模块直接读取
var Conf = new(AppConfig)

type AppConfig struct {
	Name      string `mapstructure:"name"`
	Mode      string `mapstructure:"mode"`
	Port      int    `mapstructure:"port"`
	StartTime string `mapstructure:"start_time"`
	MachineID int64  `mapstructure:"machine_id"`

	// APIHost 真实后端地址；UseMock 为编译期（配置文件）默认值，
	// 运行时可通过 api.Client 的覆盖开关改写
	APIHost string `mapstructure:"api_host"`
	UseMock bool   `mapstructure:"use_mock"`

	*LogConfig     `mapstructure:"log"`
	*StorageConfig `mapstructure:"storage"`
	*AmapConfig    `mapstructure:"amap"`
}

type LogConfig struct {
	Level      string `mapstructure:"level"`
	Filename   string `mapstructure:"filename"`
	MaxSize    int    `mapstructure:"max_size"`
	MaxAge     int    `mapstructure:"max_age"`
	MaxBackups int    `mapstructure:"max_backups"`
}

// StorageConfig 本地键值存储配置
// backend: file | memory | redis
type StorageConfig struct {
	Backend string `mapstructure:"backend"`
	Path    string `mapstructure:"path"`

	*RedisConfig `mapstructure:"redis"`
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	PoolSize int    `mapstructure:"pool_size"`
}

// AmapConfig 高德开放平台Web服务配置
type AmapConfig struct {
	Key         string `mapstructure:"key"`
	BaseURL     string `mapstructure:"base_url"`
	TimeoutMs   int    `mapstructure:"timeout_ms"`
	MaxAttempts int    `mapstructure:"max_attempts"`
	RetryDelay  int    `mapstructure:"retry_delay_ms"`
	DefaultCity string `mapstructure:"default_city"`
}

// Init 加载配置文件并反序列化到 Conf，同时开启热加载
func Init(filePath string) (err error) {
	viper.SetConfigFile(filePath)
	err = viper.ReadInConfig()
	if err != nil {
		return fmt.Errorf("viper.ReadInConfig failed: %w", err)
	}

	if err = viper.Unmarshal(Conf); err != nil {
		return fmt.Errorf("viper.Unmarshal failed: %w", err)
	}

	// 配置文件变更后重新反序列化
	viper.WatchConfig()
	viper.OnConfigChange(func(in fsnotify.Event) {
		fmt.Println("配置文件被修改，重新加载...")
		if err := viper.Unmarshal(Conf); err != nil {
			fmt.Printf("重新加载配置失败: %v\n", err)
		}
	})
	return nil
}
