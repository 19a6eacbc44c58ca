package btmetrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

// 事件类型标签值
const (
	kindPair    = "pair"
	kindWake    = "wake"
	kindScan    = "scan"
	kindSession = "session"
)

// instruments 聚合器自监控指标
//
// 仅在调用方通过 WithPrometheus 注入 Registerer 时创建；
// 未启用时整个指针为 nil，各记录方法按空实现处理。
type instruments struct {
	// events 按类型统计的事件记录次数
	events *prometheus.CounterVec

	// eventsDropped 因缓冲区容量淘汰的记录数
	eventsDropped *prometheus.CounterVec

	// sessions 已完成的会话数，按关闭方式区分
	sessions *prometheus.CounterVec

	// flushes 按编码格式统计的刷写次数
	flushes *prometheus.CounterVec
}

// newInstruments 创建并注册自监控指标
//
// reg 为 nil 时返回 nil，表示不启用自监控。
// 同名指标已注册时直接采纳现有实例，便于多个聚合器共享注册器。
func newInstruments(reg prometheus.Registerer) (*instruments, error) {
	if reg == nil {
		return nil, nil
	}

	ins := &instruments{
		events: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "bluetooth",
			Subsystem: "metrics",
			Name:      "events_total",
			Help:      "Count of logged events by kind",
		}, []string{"kind"}),
		eventsDropped: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "bluetooth",
			Subsystem: "metrics",
			Name:      "events_dropped_total",
			Help:      "Count of records evicted from full buffers",
		}, []string{"kind"}),
		sessions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "bluetooth",
			Subsystem: "metrics",
			Name:      "sessions_completed_total",
			Help:      "Count of completed Bluetooth sessions by close kind",
		}, []string{"reason"}),
		flushes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "bluetooth",
			Subsystem: "metrics",
			Name:      "flushes_total",
			Help:      "Count of snapshot flushes by output format",
		}, []string{"format"}),
	}

	for _, c := range []**prometheus.CounterVec{
		&ins.events, &ins.eventsDropped, &ins.sessions, &ins.flushes,
	} {
		if err := reg.Register(*c); err != nil {
			already, ok := err.(prometheus.AlreadyRegisteredError)
			if !ok {
				return nil, fmt.Errorf("注册自监控指标失败: %w", err)
			}
			if existing, ok := already.ExistingCollector.(*prometheus.CounterVec); ok {
				*c = existing
			}
		}
	}
	return ins, nil
}

// recordEvent 记录一次事件写入
func (i *instruments) recordEvent(kind string, evicted bool) {
	if i == nil {
		return
	}
	i.events.WithLabelValues(kind).Inc()
	if evicted {
		i.eventsDropped.WithLabelValues(kind).Inc()
	}
}

// recordSessionEnd 记录一次会话关闭
func (i *instruments) recordSessionEnd(implicit, evicted bool) {
	if i == nil {
		return
	}
	reason := "explicit"
	if implicit {
		reason = "implicit"
	}
	i.sessions.WithLabelValues(reason).Inc()
	if evicted {
		i.eventsDropped.WithLabelValues(kindSession).Inc()
	}
}

// recordFlush 记录一次快照刷写
func (i *instruments) recordFlush(format string) {
	if i == nil {
		return
	}
	i.flushes.WithLabelValues(format).Inc()
}
