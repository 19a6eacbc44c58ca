// Package config 提供统一的配置管理
package config

import (
	"fmt"

	"go.uber.org/multierr"
)

// DefaultBufferCapacity 各类缓冲区的默认容量
//
// 唤醒锁事件的容量沿用协议栈的既有取值；其余事件类型没有
// 单独规格，与之保持一致。
const DefaultBufferCapacity = 50

// BuffersConfig 事件缓冲区配置
//
// 每类事件一个有界缓冲区，容量占满后最旧的记录被淘汰。
type BuffersConfig struct {
	// PairEventCapacity 配对事件缓冲区容量
	// 默认值: 50
	PairEventCapacity int `json:"pair_event_capacity"`

	// WakeEventCapacity 唤醒锁事件缓冲区容量
	// 默认值: 50
	WakeEventCapacity int `json:"wake_event_capacity"`

	// ScanEventCapacity 扫描事件缓冲区容量
	// 默认值: 50
	ScanEventCapacity int `json:"scan_event_capacity"`

	// SessionCapacity 已结束会话列表容量
	// 默认值: 50
	SessionCapacity int `json:"session_capacity"`
}

// DefaultBuffersConfig 返回默认的缓冲区配置
func DefaultBuffersConfig() BuffersConfig {
	return BuffersConfig{
		PairEventCapacity: DefaultBufferCapacity,
		WakeEventCapacity: DefaultBufferCapacity,
		ScanEventCapacity: DefaultBufferCapacity,
		SessionCapacity:   DefaultBufferCapacity,
	}
}

// WithCapacity 统一设置所有缓冲区容量
func (c BuffersConfig) WithCapacity(n int) BuffersConfig {
	c.PairEventCapacity = n
	c.WakeEventCapacity = n
	c.ScanEventCapacity = n
	c.SessionCapacity = n
	return c
}

// Validate 验证缓冲区配置的有效性
//
// 一次性报告全部无效容量，而不是在第一个错误处停止。
func (c *BuffersConfig) Validate() error {
	var err error
	if c.PairEventCapacity <= 0 {
		err = multierr.Append(err, fmt.Errorf("配对事件缓冲区容量必须大于 0: %d", c.PairEventCapacity))
	}
	if c.WakeEventCapacity <= 0 {
		err = multierr.Append(err, fmt.Errorf("唤醒锁事件缓冲区容量必须大于 0: %d", c.WakeEventCapacity))
	}
	if c.ScanEventCapacity <= 0 {
		err = multierr.Append(err, fmt.Errorf("扫描事件缓冲区容量必须大于 0: %d", c.ScanEventCapacity))
	}
	if c.SessionCapacity <= 0 {
		err = multierr.Append(err, fmt.Errorf("会话列表容量必须大于 0: %d", c.SessionCapacity))
	}
	return err
}
