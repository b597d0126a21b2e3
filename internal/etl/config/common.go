package config

// Config 配置主体
type Config struct {
	Data     DataConfig     `mapstructure:"data"`
	Mongo    MongoConfig    `mapstructure:"mongo"`
	Logstash LogstashConfig `mapstructure:"logstash"`
	// Schedule 可选的 cron 表达式（含秒字段），设置后按计划周期重跑流水线
	Schedule string `mapstructure:"schedule"`
}

// DataConfig 数据目录配置
type DataConfig struct {
	Dir     string `mapstructure:"dir" validate:"required"`
	OutDir  string `mapstructure:"out_dir" validate:"required"`
	Country string `mapstructure:"country" validate:"required"`
}

// MongoConfig MongoDB 配置
type MongoConfig struct {
	URI      string `mapstructure:"uri" validate:"required"`
	Database string `mapstructure:"database" validate:"required"`
}

// LogstashConfig 日志远程上报配置，address 为空时仅输出到 stdout
type LogstashConfig struct {
	Address string `mapstructure:"address"`
	Index   string `mapstructure:"index"`
}
