package btmetrics

import "errors"

// 公共错误定义
var (
	// ────────────────────────────────────────────────────────────────────────
	// 上报器生命周期错误
	// ────────────────────────────────────────────────────────────────────────

	// ErrReporterRunning 上报器已在运行
	ErrReporterRunning = errors.New("reporter already running")

	// ErrReporterStopped 上报器未在运行
	ErrReporterStopped = errors.New("reporter not running")

	// ────────────────────────────────────────────────────────────────────────
	// 构造参数错误
	// ────────────────────────────────────────────────────────────────────────

	// ErrNilLogger 聚合器实例为空
	ErrNilLogger = errors.New("metrics logger is nil")

	// ErrNilSink 上报落点为空
	ErrNilSink = errors.New("report sink is nil")

	// ErrInvalidCapacity 缓冲区容量不合法
	ErrInvalidCapacity = errors.New("buffer capacity must be positive")
)
