package btmetrics

import (
	"github.com/dep2p/go-btmetrics/pkg/lib/proto/btlog"
)

// ════════════════════════════════════════════════════════════════════════════
//                              枚举别名
// ════════════════════════════════════════════════════════════════════════════

// 枚举类型由线格式包 btlog 定义（取值必须与线上编码一致），
// 这里以别名形式重新导出，调用方只需要引用本包。

// ConnectionTechnologyType 连接技术类型
type ConnectionTechnologyType = btlog.ConnectionTechnologyType

// DeviceType 设备类型
type DeviceType = btlog.DeviceType

// WakeEventType 唤醒锁事件类型
type WakeEventType = btlog.WakeEventType

// ScanEventType 扫描事件类型
type ScanEventType = btlog.ScanEventType

// ScanTechnologyType 扫描技术类型
type ScanTechnologyType = btlog.ScanTechnologyType

const (
	// 连接技术类型
	ConnectionTechnologyUnknown = btlog.ConnectionTechnologyUnknown
	ConnectionTechnologyLE      = btlog.ConnectionTechnologyLE
	ConnectionTechnologyBREDR   = btlog.ConnectionTechnologyBREDR

	// 设备类型
	DeviceTypeUnknown = btlog.DeviceTypeUnknown
	DeviceTypeBREDR   = btlog.DeviceTypeBREDR
	DeviceTypeLE      = btlog.DeviceTypeLE
	DeviceTypeDUMO    = btlog.DeviceTypeDUMO

	// 唤醒锁事件类型
	WakeEventUnknown  = btlog.WakeEventUnknown
	WakeEventAcquired = btlog.WakeEventAcquired
	WakeEventReleased = btlog.WakeEventReleased

	// 扫描事件类型
	ScanEventStart = btlog.ScanEventStart
	ScanEventStop  = btlog.ScanEventStop

	// 扫描技术类型
	ScanTechUnknown = btlog.ScanTechUnknown
	ScanTechLE      = btlog.ScanTechLE
	ScanTechBREDR   = btlog.ScanTechBREDR
	ScanTechBoth    = btlog.ScanTechBoth
)

// ════════════════════════════════════════════════════════════════════════════
//                              事件记录
// ════════════════════════════════════════════════════════════════════════════

// PairEvent 一次配对事件
type PairEvent struct {
	// DisconnectReason 断开原因码（HCI 错误码，原样透传）
	DisconnectReason int32

	// TimestampMs 事件发生时刻（Unix 毫秒）
	TimestampMs int64

	// DeviceClass 对端设备的 Class of Device
	DeviceClass int32

	// DeviceType 对端设备类型
	DeviceType DeviceType
}

// WakeEvent 一次唤醒锁事件
type WakeEvent struct {
	// Type 获取或释放
	Type WakeEventType

	// Requestor 请求方标识
	Requestor string

	// Name 唤醒锁名称
	Name string

	// TimestampMs 事件发生时刻（Unix 毫秒）
	TimestampMs int64
}

// ScanEvent 一次扫描事件
type ScanEvent struct {
	// Type 扫描开始或结束
	Type ScanEventType

	// Initiator 发起方标识
	Initiator string

	// Tech 扫描使用的技术
	Tech ScanTechnologyType

	// NumResults 本次扫描的结果数量
	NumResults int32

	// TimestampMs 事件发生时刻（Unix 毫秒）
	TimestampMs int64
}

// ════════════════════════════════════════════════════════════════════════════
//                              会话附加信息
// ════════════════════════════════════════════════════════════════════════════

// DeviceInfo 会话对端设备信息
type DeviceInfo struct {
	// Class 设备的 Class of Device
	Class int32

	// Type 设备类型
	Type DeviceType
}

// RFCommMetrics RFCOMM 会话的流量统计
//
// 同一会话内多次记录时按字节数累加。
type RFCommMetrics struct {
	// RxBytes 接收字节数
	RxBytes int32

	// TxBytes 发送字节数
	TxBytes int32
}
