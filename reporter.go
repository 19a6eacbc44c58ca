package btmetrics

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/dep2p/go-btmetrics/config"
	"github.com/dep2p/go-btmetrics/pkg/lib/log"
	"github.com/google/uuid"
	"go.uber.org/multierr"
)

// Reporter 周期上报器
//
// 按固定间隔把聚合器累积的指标刷写到落点，每次刷写后清空
// 已累积的事件（进行中的会话除外）。时间源沿用聚合器注入的
// clock，测试中可用 mock 驱动。
type Reporter struct {
	mu sync.Mutex

	logger   *Logger
	sink     io.Writer
	clock    clock.Clock
	interval time.Duration
	encoding string

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewReporter 创建周期上报器
//
// 上报器接管落点的生命周期：落点实现了 io.Closer 时，Stop 会
// 在最后一次刷写后将其关闭。cfg.Enabled 由装配层消费，这里
// 不读取。
func NewReporter(l *Logger, sink io.Writer, cfg config.ReporterConfig) (*Reporter, error) {
	if l == nil {
		return nil, ErrNilLogger
	}
	if sink == nil {
		return nil, ErrNilSink
	}
	check := cfg
	check.Enabled = true
	if err := check.Validate(); err != nil {
		return nil, fmt.Errorf("配置无效: %w", err)
	}

	return &Reporter{
		logger:   l,
		sink:     sink,
		clock:    l.clock,
		interval: cfg.Interval.Duration(),
		encoding: cfg.Encoding,
	}, nil
}

// Start 启动周期上报
func (r *Reporter) Start() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.cancel != nil {
		return ErrReporterRunning
	}
	ctx, cancel := context.WithCancel(context.Background())
	r.cancel = cancel

	r.wg.Add(1)
	go r.loop(ctx)

	logger.Info("周期上报器已启动", "interval", r.interval, "encoding", r.encoding)
	return nil
}

// Stop 停止周期上报
//
// 等待上报循环退出后做最后一次刷写，避免缓冲中的指标丢失，
// 然后关闭实现了 io.Closer 的落点。停止后不应再次启动。
func (r *Reporter) Stop() error {
	r.mu.Lock()
	if r.cancel == nil {
		r.mu.Unlock()
		return ErrReporterStopped
	}
	r.cancel()
	r.cancel = nil
	r.mu.Unlock()

	r.wg.Wait()

	err := r.report()
	if closer, ok := r.sink.(io.Closer); ok {
		err = multierr.Append(err, closer.Close())
	}
	logger.Info("周期上报器已停止")
	return err
}

// loop 上报循环
func (r *Reporter) loop(ctx context.Context) {
	defer r.wg.Done()

	ticker := r.clock.Ticker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := r.report(); err != nil {
				logger.Warn("周期上报失败", "err", err)
			}
		}
	}
}

// report 刷写一次快照到落点
//
// 整份报文通过单次 Write 写出，落点按"一次写入一份报文"消费。
func (r *Reporter) report() error {
	reportID := uuid.New().String()

	var payload string
	switch r.encoding {
	case config.EncodingText:
		r.logger.WriteText(&payload, true)
	case config.EncodingBase64:
		r.logger.WriteBase64String(&payload, true)
	default:
		r.logger.WriteString(&payload, true)
	}

	if _, err := r.sink.Write([]byte(payload)); err != nil {
		return fmt.Errorf("上报 %s 失败: %w", log.TruncateID(reportID, 8), err)
	}
	logger.Debug("指标已上报",
		"report_id", log.TruncateID(reportID, 8),
		"encoding", r.encoding,
		"bytes", len(payload))
	return nil
}
