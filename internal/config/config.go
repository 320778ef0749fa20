// Package config 负责加载和管理应用程序的配置。
package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/spf13/viper"
)

// 全局配置变量，存储从配置文件加载的所有设置。
var Conf Config

// Config 是整个应用程序的配置结构体，与 config.yaml 文件结构对应。
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Log     LogConfig     `mapstructure:"log"`
	Storage StorageConfig `mapstructure:"storage"`
	LLM     LLMConfig     `mapstructure:"llm"`
}

// ServerConfig 存储服务器相关的配置。
type ServerConfig struct {
	Port string `mapstructure:"port"`
	Mode string `mapstructure:"mode"`
}

// LogConfig 存储日志相关的配置。
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// StorageConfig 存储记录文件的落盘位置。
// DataDir 可通过环境变量 STORAGE_DATA_DIR 覆盖，便于在临时文件系统上运行。
type StorageConfig struct {
	DataDir string `mapstructure:"data_dir"`
}

// LLMConfig 存储大语言模型相关的配置。
// APIKey 为空时，依赖生成能力的接口返回 503。
type LLMConfig struct {
	APIKey      string  `mapstructure:"api_key"`
	BaseURL     string  `mapstructure:"base_url"`
	Model       string  `mapstructure:"model"`
	Temperature float64 `mapstructure:"temperature"`
	MaxTokens   int     `mapstructure:"max_tokens"`
}

// Init 初始化配置加载，从指定的路径读取 YAML 文件并解析到 Conf 变量中。
// 配置文件不存在时仅使用默认值与环境变量（API Key 与存储目录属于部署期环境面）。
func Init(configPath string) {
	viper.Reset()
	viper.SetConfigFile(configPath)
	viper.SetConfigType("yaml")

	setDefaults()
	bindEnvs()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !isNotExist(err) {
			panic(fmt.Errorf("读取配置文件失败: %w", err))
		}
	}

	if err := viper.Unmarshal(&Conf); err != nil {
		panic(fmt.Errorf("无法将配置解析到结构体中: %w", err))
	}
}

// isNotExist 判断错误是否为配置文件不存在。
// viper.SetConfigFile 指定具体文件时，文件缺失返回的是 *fs.PathError。
func isNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}

func setDefaults() {
	viper.SetDefault("server.port", "8080")
	viper.SetDefault("server.mode", "release")
	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.format", "json")
	viper.SetDefault("storage.data_dir", "data/records")
	viper.SetDefault("llm.api_key", "")
	viper.SetDefault("llm.base_url", "https://api.deepseek.com")
	viper.SetDefault("llm.model", "deepseek-chat")
}

func bindEnvs() {
	// 部署期通过环境变量注入，不要求改动配置文件
	_ = viper.BindEnv("server.port", "SERVER_PORT")
	_ = viper.BindEnv("storage.data_dir", "STORAGE_DATA_DIR")
	_ = viper.BindEnv("llm.api_key", "LLM_API_KEY")
	_ = viper.BindEnv("llm.base_url", "LLM_BASE_URL")
	_ = viper.BindEnv("llm.model", "LLM_MODEL")
}
