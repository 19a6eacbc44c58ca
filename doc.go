// Package btmetrics 提供进程内的蓝牙指标聚合器
//
// 聚合器把蓝牙协议栈的连接、配对、扫描、唤醒锁、音频会话等
// 统计累积到有界的内存缓冲区，并按需序列化成远端采集器可以
// 消费的结构化日志报文。
//
// # 核心概念
//
// 聚合器围绕三个核心概念构建：
//
//   - Logger: 聚合器实例，持有缓冲区与会话状态机，暴露记录接口
//   - Session: 一次蓝牙连接的生命周期，支持隐式关闭
//   - Flush: 序列化并按需抽空累积状态（二进制 / Base64 / 调试文本）
//
// # 快速开始
//
//	import "github.com/dep2p/go-btmetrics"
//
//	// 1. 创建聚合器
//	m, err := btmetrics.New()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// 2. 记录事件与会话
//	m.LogBluetoothSessionStart(btmetrics.ConnectionTechnologyLE, 0)
//	m.LogA2dpSession(btmetrics.A2dpSessionMetrics{AudioDurationMs: 120000})
//	m.LogBluetoothSessionEnd("REMOTE_DISCONNECT", 0)
//
//	// 3. 刷写报文
//	var out string
//	m.WriteString(&out, true)
//
// # 文件组织
//
// 本包按功能领域组织代码：
//
//	go-btmetrics/
//	├── btmetrics.go          # Logger 结构定义、New()、Reset()
//	├── logger_events.go      # 独立事件记录（配对/唤醒锁/扫描）
//	├── logger_session.go     # 会话生命周期记录
//	├── logger_write.go       # 快照、线格式转换、刷写接口
//	├── session.go            # 会话状态机
//	├── a2dp.go               # A2DP 指标的加权合并
//	├── reporter.go           # 周期上报器
//	├── instrument.go         # Prometheus 自监控
//	├── options.go            # 功能选项
//	├── module.go             # Fx 模块装配
//	├── types.go              # 事件记录类型与枚举别名
//	└── errors.go             # 公共错误定义
//
// # 并发模型
//
// Logger 的全部公开方法都可以被多个 goroutine 并发调用，内部
// 由单把互斥锁串行化；锁内只做内存操作，序列化在快照拷贝之后
// 进行。聚合器自身不创建 goroutine，周期上报由 Reporter 承担。
package btmetrics
