// Package config 提供统一的配置管理
//
// 本包采用混合配置模式：
//   - 主 Config 结构体嵌入所有子配置
//   - 每个子配置在独立文件中定义
//   - 支持从 JSON 加载和保存配置
//
// 使用示例：
//
//	// 创建默认配置
//	cfg := config.NewConfig()
//	cfg.Buffers.WakeEventCapacity = 100
//
//	// 链式定制
//	cfg.Reporter = config.DefaultReporterConfig().
//	    WithInterval(time.Minute).
//	    WithEncoding(config.EncodingBase64)
//
//	// 从 JSON 加载
//	cfg, err := config.FromJSON(data)
package config

import (
	"encoding/json"
	"fmt"
)

// Config 是聚合器的完整配置结构
//
// 该结构体嵌入了所有组件的子配置，提供统一的配置接口：
//   - Buffers: 各类事件缓冲区的容量
//   - Reporter: 周期上报器
type Config struct {
	// Buffers 缓冲区配置
	Buffers BuffersConfig `json:"buffers"`

	// Reporter 周期上报配置
	Reporter ReporterConfig `json:"reporter"`
}

// NewConfig 创建默认配置
//
// 返回的配置使用所有组件的默认值，适用于大多数场景。
func NewConfig() *Config {
	return &Config{
		Buffers:  DefaultBuffersConfig(),
		Reporter: DefaultReporterConfig(),
	}
}

// Validate 验证配置的有效性
//
// 检查所有子配置是否有效，如果发现无效配置则返回错误。
// 建议在使用配置前调用此方法。
func (c *Config) Validate() error {
	if err := c.Buffers.Validate(); err != nil {
		return err
	}
	if err := c.Reporter.Validate(); err != nil {
		return err
	}
	return nil
}

// FromJSON 从 JSON 数据加载配置
//
// 未出现的字段保持默认值。
func FromJSON(data []byte) (*Config, error) {
	cfg := NewConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("解析配置 JSON 失败: %w", err)
	}
	return cfg, nil
}

// ToJSON 将配置序列化为 JSON
func (c *Config) ToJSON() ([]byte, error) {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("序列化配置失败: %w", err)
	}
	return data, nil
}
