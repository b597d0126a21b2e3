package config

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// LoadConfig 加载配置并返回实例，不保留任何全局可变状态。
// 优先级：显式覆盖（命令行参数）> 环境变量 > 配置文件 > 内置默认值。
// configFile 非空时只读该文件，且文件缺失视为错误；为空时在 ./configs 下可选查找。
func LoadConfig(configFile string, overrides map[string]any) (*Config, error) {
	v := viper.New()
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./configs")
	}

	v.SetDefault("data.dir", "./data")
	v.SetDefault("data.out_dir", "./output")
	v.SetDefault("data.country", "ID")
	v.SetDefault("mongo.uri", "mongodb://localhost:27017/")
	v.SetDefault("mongo.database", "myfluence")

	_ = v.BindEnv("data.dir", "DATA_DIR")
	_ = v.BindEnv("data.out_dir", "OUTPUT_DIR")
	_ = v.BindEnv("data.country", "DEFAULT_COUNTRY")
	_ = v.BindEnv("mongo.uri", "MONGODB_URI")
	_ = v.BindEnv("mongo.database", "MONGODB_DATABASE")
	_ = v.BindEnv("schedule", "ETL_SCHEDULE")

	// 默认查找时配置文件可选，缺失则完全依赖默认值与环境变量
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	for key, val := range overrides {
		v.Set(key, val)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}
