package btmetrics

import (
	"context"
	"io"

	"github.com/benbjohnson/clock"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"

	"github.com/dep2p/go-btmetrics/config"
)

// Params 聚合器依赖参数
type Params struct {
	fx.In

	Config     *config.Config        `optional:"true"`
	Clock      clock.Clock           `optional:"true"`
	Registerer prometheus.Registerer `optional:"true"`
}

// NewFromParams 从 Fx 参数创建聚合器
func NewFromParams(p Params) (*Logger, error) {
	var opts []Option
	if p.Config != nil {
		opts = append(opts, WithConfig(p.Config))
	}
	if p.Clock != nil {
		opts = append(opts, WithClock(p.Clock))
	}
	if p.Registerer != nil {
		opts = append(opts, WithPrometheus(p.Registerer))
	}
	return New(opts...)
}

// ReporterParams 上报器依赖参数
type ReporterParams struct {
	fx.In

	Logger    *Logger
	Sink      io.Writer      `optional:"true"`
	Config    *config.Config `optional:"true"`
	Lifecycle fx.Lifecycle
}

// NewReporterFromParams 从 Fx 参数创建上报器并挂接生命周期
//
// 未提供落点或配置中禁用上报时返回 nil，聚合器仍可单独使用。
func NewReporterFromParams(p ReporterParams) (*Reporter, error) {
	cfg := config.DefaultReporterConfig()
	if p.Config != nil {
		cfg = p.Config.Reporter
	}
	if p.Sink == nil || !cfg.Enabled {
		return nil, nil
	}

	r, err := NewReporter(p.Logger, p.Sink, cfg)
	if err != nil {
		return nil, err
	}
	p.Lifecycle.Append(fx.Hook{
		OnStart: func(context.Context) error {
			return r.Start()
		},
		OnStop: func(context.Context) error {
			return r.Stop()
		},
	})
	return r, nil
}

// Module 是聚合器的 Fx 模块
//
// 上报器是副作用组件，没有下游依赖它，这里主动 Invoke 触发
// 构造，生命周期钩子才会被挂上。
var Module = fx.Module("btmetrics",
	fx.Provide(NewFromParams),
	fx.Provide(NewReporterFromParams),
	fx.Invoke(func(*Reporter) {}),
)
