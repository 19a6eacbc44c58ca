// Package btlog 定义蓝牙指标日志的网络消息格式（wire format）
//
// 本包对应外部采集端固定的消息模式（见 btlog.proto），由聚合器
// 在上报时逐字段填充。消息结构与字段编号归采集端所有，本库
// 不得擅自变更。
//
// # 与内存结构的区别
//
// btlog 定义跨进程传输的消息（wire format），聚合器内部的累积
// 结构（会话、事件缓冲区）定义在根包中，序列化时转换为本包的
// 消息。optional 字段用指针建模：nil 表示"未设置"，序列化时
// 不写出，与采集端区分"未设置"和"零值"的语义一致。
//
// # 编码
//
// 编码采用手工展开的确定性编码（encoding/protowire）：字段按
// 编号升序写出，同一消息两次编码的输出字节完全一致。上报去重
// 与测试都依赖字节级可比较的输出。
package btlog

import "strconv"

// ============================================================================
//                              枚举
// ============================================================================

// ConnectionTechnologyType 连接技术类型
type ConnectionTechnologyType int32

const (
	// ConnectionTechnologyUnknown 未知技术
	ConnectionTechnologyUnknown ConnectionTechnologyType = 0

	// ConnectionTechnologyLE 低功耗（LE）连接
	ConnectionTechnologyLE ConnectionTechnologyType = 1

	// ConnectionTechnologyBREDR 传统（BR/EDR）连接
	ConnectionTechnologyBREDR ConnectionTechnologyType = 2
)

// String 返回模式中定义的枚举名
func (t ConnectionTechnologyType) String() string {
	switch t {
	case ConnectionTechnologyUnknown:
		return "CONNECTION_TECHNOLOGY_TYPE_UNKNOWN"
	case ConnectionTechnologyLE:
		return "CONNECTION_TECHNOLOGY_TYPE_LE"
	case ConnectionTechnologyBREDR:
		return "CONNECTION_TECHNOLOGY_TYPE_BREDR"
	default:
		return strconv.FormatInt(int64(t), 10)
	}
}

// DeviceType 对端设备类型
type DeviceType int32

const (
	// DeviceTypeUnknown 未知设备
	DeviceTypeUnknown DeviceType = 0

	// DeviceTypeBREDR 传统（BR/EDR）设备
	DeviceTypeBREDR DeviceType = 1

	// DeviceTypeLE 低功耗（LE）设备
	DeviceTypeLE DeviceType = 2

	// DeviceTypeDUMO 双模（DUMO）设备
	DeviceTypeDUMO DeviceType = 3
)

// String 返回模式中定义的枚举名
func (t DeviceType) String() string {
	switch t {
	case DeviceTypeUnknown:
		return "DEVICE_TYPE_UNKNOWN"
	case DeviceTypeBREDR:
		return "DEVICE_TYPE_BREDR"
	case DeviceTypeLE:
		return "DEVICE_TYPE_LE"
	case DeviceTypeDUMO:
		return "DEVICE_TYPE_DUMO"
	default:
		return strconv.FormatInt(int64(t), 10)
	}
}

// WakeEventType 唤醒锁事件类型
type WakeEventType int32

const (
	// WakeEventUnknown 未知事件
	WakeEventUnknown WakeEventType = 0

	// WakeEventAcquired 获取唤醒锁
	WakeEventAcquired WakeEventType = 1

	// WakeEventReleased 释放唤醒锁
	WakeEventReleased WakeEventType = 2
)

// String 返回模式中定义的枚举名
func (t WakeEventType) String() string {
	switch t {
	case WakeEventUnknown:
		return "UNKNOWN"
	case WakeEventAcquired:
		return "ACQUIRED"
	case WakeEventReleased:
		return "RELEASED"
	default:
		return strconv.FormatInt(int64(t), 10)
	}
}

// ScanEventType 扫描事件类型
type ScanEventType int32

const (
	// ScanEventStart 扫描开始
	ScanEventStart ScanEventType = 0

	// ScanEventStop 扫描结束
	ScanEventStop ScanEventType = 1
)

// String 返回模式中定义的枚举名
func (t ScanEventType) String() string {
	switch t {
	case ScanEventStart:
		return "SCAN_EVENT_START"
	case ScanEventStop:
		return "SCAN_EVENT_STOP"
	default:
		return strconv.FormatInt(int64(t), 10)
	}
}

// ScanTechnologyType 扫描所用技术
type ScanTechnologyType int32

const (
	// ScanTechUnknown 未知技术
	ScanTechUnknown ScanTechnologyType = 0

	// ScanTechLE 低功耗（LE）扫描
	ScanTechLE ScanTechnologyType = 1

	// ScanTechBREDR 传统（BR/EDR）扫描
	ScanTechBREDR ScanTechnologyType = 2

	// ScanTechBoth 两种技术同时扫描
	ScanTechBoth ScanTechnologyType = 3
)

// String 返回模式中定义的枚举名
func (t ScanTechnologyType) String() string {
	switch t {
	case ScanTechUnknown:
		return "SCAN_TYPE_UNKNOWN"
	case ScanTechLE:
		return "SCAN_TECH_TYPE_LE"
	case ScanTechBREDR:
		return "SCAN_TECH_TYPE_BREDR"
	case ScanTechBoth:
		return "SCAN_TECH_TYPE_BOTH"
	default:
		return strconv.FormatInt(int64(t), 10)
	}
}

// ============================================================================
//                              消息
// ============================================================================

// BluetoothLog 一次上报的完整日志消息
type BluetoothLog struct {
	// Session 连接会话记录，字段 1
	Session []*BluetoothSession

	// PairEvent 配对事件记录，字段 2
	PairEvent []*PairEvent

	// WakeEvent 唤醒锁事件记录，字段 3
	WakeEvent []*WakeEvent

	// ScanEvent 扫描事件记录，字段 4
	ScanEvent []*ScanEvent
}

// BluetoothSession 一条连接会话
//
// 字段 1 在模式中保留未用，编号从 2 开始。
type BluetoothSession struct {
	// SessionDurationSec 会话时长（秒），字段 2
	SessionDurationSec *int64

	// ConnectionTechnologyType 连接技术类型，字段 3
	ConnectionTechnologyType *ConnectionTechnologyType

	// DisconnectReason 断开原因，字段 4
	DisconnectReason *string

	// DeviceConnectedTo 对端设备信息，字段 5
	DeviceConnectedTo *DeviceInfo

	// RfcommSession RFComm 会话统计，字段 6
	RfcommSession *RFCommSession

	// A2dpSession A2DP 音频会话统计，字段 7
	A2dpSession *A2DPSession
}

// DeviceInfo 对端设备信息
type DeviceInfo struct {
	// DeviceClass 设备类别（Class of Device），字段 1
	DeviceClass *int32

	// DeviceType 设备类型，字段 2
	DeviceType *DeviceType
}

// PairEvent 一次配对事件
type PairEvent struct {
	// DisconnectReason 断开原因（HCI 错误码），字段 1
	DisconnectReason *int32

	// EventTimeMillis 事件时间（毫秒），字段 2
	EventTimeMillis *int64

	// DevicePairedWith 配对设备信息，字段 3
	DevicePairedWith *DeviceInfo
}

// WakeEvent 一次唤醒锁事件
type WakeEvent struct {
	// WakeEventType 事件类型，字段 1
	WakeEventType *WakeEventType

	// Requestor 事件发起方，字段 2
	Requestor *string

	// Name 唤醒锁名称，字段 3
	Name *string

	// EventTimeMillis 事件时间（毫秒），字段 4
	EventTimeMillis *int64
}

// ScanEvent 一次扫描事件
type ScanEvent struct {
	// ScanEventType 事件类型，字段 1
	ScanEventType *ScanEventType

	// Initiator 扫描发起方，字段 2
	Initiator *string

	// ScanTechnologyType 扫描技术，字段 3
	ScanTechnologyType *ScanTechnologyType

	// NumberResults 扫描结果数量，字段 4
	NumberResults *int32

	// EventTimeMillis 事件时间（毫秒），字段 5
	EventTimeMillis *int64
}

// RFCommSession 一次 RFComm 会话的流量统计
type RFCommSession struct {
	// RxBytes 接收字节数，字段 1
	RxBytes *int32

	// TxBytes 发送字节数，字段 2
	TxBytes *int32
}

// A2DPSession 一次 A2DP 音频会话的统计
type A2DPSession struct {
	// MediaTimerMinMillis 媒体定时器最小间隔（毫秒），字段 1
	MediaTimerMinMillis *int32

	// MediaTimerMaxMillis 媒体定时器最大间隔（毫秒），字段 2
	MediaTimerMaxMillis *int32

	// MediaTimerAvgMillis 媒体定时器平均间隔（毫秒），字段 3
	MediaTimerAvgMillis *int32

	// BufferOverrunsMaxCount 单次最大缓冲区溢出计数，字段 4
	BufferOverrunsMaxCount *int32

	// BufferOverrunsTotal 缓冲区溢出总数，字段 5
	BufferOverrunsTotal *int32

	// BufferUnderrunsAverage 缓冲区欠载平均值，字段 6
	BufferUnderrunsAverage *float32

	// BufferUnderrunsCount 缓冲区欠载次数，字段 7
	BufferUnderrunsCount *int32

	// AudioDurationMillis 音频播放总时长（毫秒），字段 8
	AudioDurationMillis *int64
}

// ============================================================================
//                              optional 辅助函数
// ============================================================================

// Int32 返回 v 的指针，用于填充 optional 字段
func Int32(v int32) *int32 { return &v }

// Int64 返回 v 的指针，用于填充 optional 字段
func Int64(v int64) *int64 { return &v }

// Float32 返回 v 的指针，用于填充 optional 字段
func Float32(v float32) *float32 { return &v }

// String 返回 v 的指针，用于填充 optional 字段
func String(v string) *string { return &v }
