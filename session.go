package btmetrics

import (
	"github.com/dep2p/go-btmetrics/internal/eventbuf"
)

// implicitDisconnectReason 隐式关闭会话时填入的断开原因
//
// 上一个会话尚未显式结束、新的会话就已开始时使用。取值与远端
// 采集器约定一致，不可改动。
const implicitDisconnectReason = "NEXT_SESSION_START_WITHOUT_ENDING_PREVIOUS"

// ════════════════════════════════════════════════════════════════════════════
//                              会话记录
// ════════════════════════════════════════════════════════════════════════════

// sessionRecord 一次蓝牙连接会话的累积状态
//
// 从 start 到 finalize 之间为"进行中"，期间设备信息、A2DP 指标、
// RFCOMM 流量都往当前记录上累积。
type sessionRecord struct {
	// startMs 会话开始时刻（Unix 毫秒）
	startMs int64

	// durationMs 会话时长（毫秒），finalize 时由起止时刻推导
	durationMs int64

	// tech 连接技术类型
	tech ConnectionTechnologyType

	// reason 断开原因，仅在已结束的会话上有效
	reason string

	// ended 会话是否已结束
	ended bool

	// 可选的嵌套信息，未记录过则保持 nil
	device *DeviceInfo
	a2dp   *A2dpSessionMetrics
	rfcomm *RFCommMetrics
}

// finalize 结束会话，推导时长并记录断开原因
func (r *sessionRecord) finalize(reason string, nowMs int64) {
	r.durationMs = nowMs - r.startMs
	r.reason = reason
	r.ended = true
}

// clone 深拷贝会话记录
//
// 进行中的会话在刷写后仍会被并发修改，快照必须持有独立副本
// 才能在锁外安全序列化。
func (r *sessionRecord) clone() *sessionRecord {
	c := *r
	if r.device != nil {
		device := *r.device
		c.device = &device
	}
	if r.a2dp != nil {
		a2dp := *r.a2dp
		c.a2dp = &a2dp
	}
	if r.rfcomm != nil {
		rfcomm := *r.rfcomm
		c.rfcomm = &rfcomm
	}
	return &c
}

// ════════════════════════════════════════════════════════════════════════════
//                              会话状态机
// ════════════════════════════════════════════════════════════════════════════

// sessionTracker 维护当前会话与已结束会话列表
//
// 状态机只有两个状态：无当前会话（current == nil）与有当前会话。
// 并发保护由持有它的 Logger 负责，tracker 自身不加锁。
type sessionTracker struct {
	current *sessionRecord
	closed  *eventbuf.Buffer[*sessionRecord]
}

// newSessionTracker 创建会话状态机
//
// capacity 为已结束会话列表的容量，占满后最旧的会话被淘汰。
func newSessionTracker(capacity int) (*sessionTracker, error) {
	closed, err := eventbuf.New[*sessionRecord](capacity)
	if err != nil {
		return nil, err
	}
	return &sessionTracker{closed: closed}, nil
}

// start 开启新会话
//
// 若已有未结束的会话，先以隐式原因将其关闭并移入已结束列表，
// 时长按新会话的开始时刻推导。返回是否发生了隐式关闭，以及
// 隐式关闭的会话入列时是否淘汰了更旧的记录。
func (t *sessionTracker) start(tech ConnectionTechnologyType, nowMs int64) (implicit, evicted bool) {
	if t.current != nil {
		t.current.finalize(implicitDisconnectReason, nowMs)
		evicted = t.closed.Push(t.current)
		implicit = true
	}
	t.current = &sessionRecord{startMs: nowMs, tech: tech}
	return implicit, evicted
}

// end 结束当前会话并移入已结束列表
//
// 无当前会话时为静默空操作，返回 ok=false。
func (t *sessionTracker) end(reason string, nowMs int64) (ok, evicted bool) {
	if t.current == nil {
		return false, false
	}
	t.current.finalize(reason, nowMs)
	evicted = t.closed.Push(t.current)
	t.current = nil
	return true, evicted
}

// setDeviceInfo 记录当前会话的对端设备信息，重复调用时覆盖
func (t *sessionTracker) setDeviceInfo(deviceClass int32, deviceType DeviceType) bool {
	if t.current == nil {
		return false
	}
	t.current.device = &DeviceInfo{Class: deviceClass, Type: deviceType}
	return true
}

// mergeA2dp 将一份 A2DP 指标合并进当前会话
//
// 首次调用时惰性创建累积器，之后按加权规则合并。
func (t *sessionTracker) mergeA2dp(m A2dpSessionMetrics) bool {
	if t.current == nil {
		return false
	}
	if t.current.a2dp == nil {
		t.current.a2dp = &A2dpSessionMetrics{}
	}
	t.current.a2dp.Update(m)
	return true
}

// addRFComm 累加当前会话的 RFCOMM 流量
func (t *sessionTracker) addRFComm(rxBytes, txBytes int32) bool {
	if t.current == nil {
		return false
	}
	if t.current.rfcomm == nil {
		t.current.rfcomm = &RFCommMetrics{}
	}
	t.current.rfcomm.RxBytes += rxBytes
	t.current.rfcomm.TxBytes += txBytes
	return true
}

// reset 丢弃当前会话与全部已结束会话
func (t *sessionTracker) reset() {
	t.current = nil
	t.closed.Clear()
}
