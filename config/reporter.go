// Package config 提供统一的配置管理
package config

import (
	"fmt"
	"time"

	"go.uber.org/multierr"
)

// ============================================================================
// 编码格式常量
// ============================================================================

const (
	// EncodingBinary 原始二进制线格式
	EncodingBinary = "binary"

	// EncodingBase64 Base64 编码的线格式，适合写入文本型落点
	EncodingBase64 = "base64"

	// EncodingText 人类可读的调试文本格式
	EncodingText = "text"
)

// ============================================================================
// 上报器配置
// ============================================================================

// ReporterConfig 周期上报器配置
//
// 上报器按固定间隔把当前累积的指标刷写到落点，每次刷写后
// 清空已累积的事件。
type ReporterConfig struct {
	// Enabled 是否启用周期上报
	// 默认值: true
	Enabled bool `json:"enabled"`

	// Interval 上报间隔
	// 默认值: 5m
	Interval Duration `json:"interval"`

	// Encoding 上报数据的编码格式
	// 可选值: binary, base64, text
	// 默认值: binary
	Encoding string `json:"encoding"`
}

// DefaultReporterConfig 返回默认的上报器配置
func DefaultReporterConfig() ReporterConfig {
	return ReporterConfig{
		Enabled:  true,
		Interval: Duration(5 * time.Minute),
		Encoding: EncodingBinary,
	}
}

// WithInterval 设置上报间隔
func (c ReporterConfig) WithInterval(d time.Duration) ReporterConfig {
	c.Interval = Duration(d)
	return c
}

// WithEncoding 设置上报编码格式
func (c ReporterConfig) WithEncoding(encoding string) ReporterConfig {
	c.Encoding = encoding
	return c
}

// Validate 验证上报器配置的有效性
func (c *ReporterConfig) Validate() error {
	if !c.Enabled {
		return nil
	}

	var err error
	if c.Interval.Duration() <= 0 {
		err = multierr.Append(err, fmt.Errorf("上报间隔必须大于 0: %v", c.Interval))
	}
	switch c.Encoding {
	case EncodingBinary, EncodingBase64, EncodingText:
	default:
		err = multierr.Append(err, fmt.Errorf("不支持的编码格式: %q", c.Encoding))
	}
	return err
}
