package btmetrics

import (
	"fmt"
	"sync"

	"github.com/benbjohnson/clock"
	"github.com/dep2p/go-btmetrics/internal/eventbuf"
	"github.com/dep2p/go-btmetrics/pkg/lib/log"
)

var logger = log.Logger("btmetrics")

// Logger 蓝牙指标聚合器
//
// 持有各类事件的有界缓冲区与会话状态机，对外暴露窄的记录接口。
// 所有公开方法都在内部互斥锁下完成，可被多个 goroutine 并发调用；
// 锁内不做 I/O，序列化在快照拷贝之后进行。
type Logger struct {
	mu sync.Mutex

	// clock 时间源，记录调用未携带时间戳时使用
	clock clock.Clock

	pairEvents *eventbuf.Buffer[PairEvent]
	wakeEvents *eventbuf.Buffer[WakeEvent]
	scanEvents *eventbuf.Buffer[ScanEvent]

	// tracker 当前会话与已结束会话
	tracker *sessionTracker

	// metrics 自监控指标，未启用时为 nil
	metrics *instruments
}

// New 创建聚合器
//
// 配置在构造时统一验证，无效配置直接返回错误而不是延迟暴露。
//
// 使用示例:
//
//	m, err := btmetrics.New(
//	    btmetrics.WithBufferCapacity(100),
//	)
func New(opts ...Option) (*Logger, error) {
	o := newOptions()
	if err := o.apply(opts...); err != nil {
		return nil, err
	}
	if err := o.config.Validate(); err != nil {
		return nil, fmt.Errorf("配置无效: %w", err)
	}

	bufs := o.config.Buffers
	pairEvents, err := eventbuf.New[PairEvent](bufs.PairEventCapacity)
	if err != nil {
		return nil, err
	}
	wakeEvents, err := eventbuf.New[WakeEvent](bufs.WakeEventCapacity)
	if err != nil {
		return nil, err
	}
	scanEvents, err := eventbuf.New[ScanEvent](bufs.ScanEventCapacity)
	if err != nil {
		return nil, err
	}
	tracker, err := newSessionTracker(bufs.SessionCapacity)
	if err != nil {
		return nil, err
	}
	metrics, err := newInstruments(o.registerer)
	if err != nil {
		return nil, err
	}

	l := &Logger{
		clock:      o.clock,
		pairEvents: pairEvents,
		wakeEvents: wakeEvents,
		scanEvents: scanEvents,
		tracker:    tracker,
		metrics:    metrics,
	}
	logger.Debug("聚合器已创建",
		"pair_capacity", bufs.PairEventCapacity,
		"wake_capacity", bufs.WakeEventCapacity,
		"scan_capacity", bufs.ScanEventCapacity,
		"session_capacity", bufs.SessionCapacity)
	return l, nil
}

// Reset 清空所有缓冲区并丢弃当前会话
//
// 用于冷启动与测试隔离，聚合器回到刚创建时的空状态。
func (l *Logger) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.pairEvents.Clear()
	l.wakeEvents.Clear()
	l.scanEvents.Clear()
	l.tracker.reset()
	logger.Debug("聚合器已重置")
}

// eventTimeLocked 解析事件时间戳
//
// 调用方传 0 表示"此刻"，以注入的时间源代替；非零值原样使用。
// 必须在持有 l.mu 时调用。
func (l *Logger) eventTimeLocked(timestampMs int64) int64 {
	if timestampMs != 0 {
		return timestampMs
	}
	return l.clock.Now().UnixMilli()
}
