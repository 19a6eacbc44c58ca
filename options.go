package btmetrics

import (
	"fmt"

	"github.com/benbjohnson/clock"
	"github.com/dep2p/go-btmetrics/config"
	"github.com/prometheus/client_golang/prometheus"
)

// Option 用户配置选项函数
type Option func(*options) error

// options 内部选项结构
type options struct {
	// 完整配置
	config *config.Config

	// 时间源，事件未携带时间戳时使用
	clock clock.Clock

	// 自监控指标注册器，nil 表示不启用
	registerer prometheus.Registerer
}

// newOptions 创建默认选项
func newOptions() *options {
	return &options{
		config: config.NewConfig(),
		clock:  clock.New(),
	}
}

// apply 应用所有选项
func (o *options) apply(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(o); err != nil {
			return err
		}
	}
	return nil
}

// ============================================================================
// 配置选项
// ============================================================================

// WithConfig 使用完整配置
//
// 配置在构造时统一验证，无效配置会使 New 返回错误。
func WithConfig(cfg *config.Config) Option {
	return func(o *options) error {
		if cfg == nil {
			return fmt.Errorf("配置不能为空")
		}
		o.config = cfg
		return nil
	}
}

// WithBufferCapacity 统一设置所有事件缓冲区与会话列表的容量
func WithBufferCapacity(n int) Option {
	return func(o *options) error {
		if n <= 0 {
			return fmt.Errorf("%w: %d", ErrInvalidCapacity, n)
		}
		o.config.Buffers = o.config.Buffers.WithCapacity(n)
		return nil
	}
}

// WithClock 设置时间源
//
// 记录调用的时间戳参数为 0 时，以该时间源的当前时刻代替。
// 测试中可传入 clock.NewMock() 获得确定性时间。
func WithClock(c clock.Clock) Option {
	return func(o *options) error {
		if c == nil {
			return fmt.Errorf("时间源不能为空")
		}
		o.clock = c
		return nil
	}
}

// WithPrometheus 启用自监控指标并注册到指定的 Registerer
func WithPrometheus(reg prometheus.Registerer) Option {
	return func(o *options) error {
		o.registerer = reg
		return nil
	}
}
