package btmetrics

import (
	"encoding/base64"
	"fmt"
	"io"

	"github.com/dep2p/go-btmetrics/pkg/lib/proto/btlog"
)

// ════════════════════════════════════════════════════════════════════════════
//                              快照
// ════════════════════════════════════════════════════════════════════════════

// snapshot 一次刷写看到的完整状态
//
// 已结束会话与各类事件按插入顺序排列；进行中的会话（若有）单独
// 持有，序列化时排在已结束会话之后。
type snapshot struct {
	sessions   []*sessionRecord
	current    *sessionRecord
	pairEvents []PairEvent
	wakeEvents []WakeEvent
	scanEvents []ScanEvent
}

// takeSnapshot 拷贝当前状态
//
// clear 为 true 时抽空全部缓冲区与已结束会话列表；进行中的会话
// 不受影响，继续留在状态机里累积，后续刷写仍能看到它的进展。
// 锁只覆盖拷贝本身，序列化在锁外进行。
func (l *Logger) takeSnapshot(clear bool) snapshot {
	l.mu.Lock()
	defer l.mu.Unlock()

	var snap snapshot
	if clear {
		snap.sessions = l.tracker.closed.Drain()
		snap.pairEvents = l.pairEvents.Drain()
		snap.wakeEvents = l.wakeEvents.Drain()
		snap.scanEvents = l.scanEvents.Drain()
	} else {
		snap.sessions = l.tracker.closed.Peek()
		snap.pairEvents = l.pairEvents.Peek()
		snap.wakeEvents = l.wakeEvents.Peek()
		snap.scanEvents = l.scanEvents.Peek()
	}
	if l.tracker.current != nil {
		snap.current = l.tracker.current.clone()
	}
	return snap
}

// snapshotWire 拷贝当前状态并转换为线格式消息
func (l *Logger) snapshotWire(clear bool) *btlog.BluetoothLog {
	return l.takeSnapshot(clear).toWire()
}

// ════════════════════════════════════════════════════════════════════════════
//                              线格式转换
// ════════════════════════════════════════════════════════════════════════════

// toWire 将快照转换为线格式消息
//
// 各类记录保持插入顺序，进行中的会话排在最后。
func (s snapshot) toWire() *btlog.BluetoothLog {
	msg := &btlog.BluetoothLog{}
	for _, r := range s.sessions {
		msg.Session = append(msg.Session, r.toWire())
	}
	if s.current != nil {
		msg.Session = append(msg.Session, s.current.toWire())
	}
	for _, e := range s.pairEvents {
		msg.PairEvent = append(msg.PairEvent, e.toWire())
	}
	for _, e := range s.wakeEvents {
		msg.WakeEvent = append(msg.WakeEvent, e.toWire())
	}
	for _, e := range s.scanEvents {
		msg.ScanEvent = append(msg.ScanEvent, e.toWire())
	}
	return msg
}

func (r *sessionRecord) toWire() *btlog.BluetoothSession {
	s := &btlog.BluetoothSession{}
	tech := r.tech
	s.ConnectionTechnologyType = &tech

	// 时长与断开原因只在会话结束后才有意义，
	// 进行中的会话这两个字段保持未设置
	if r.ended {
		durationSec := r.durationMs / 1000
		s.SessionDurationSec = &durationSec
		s.DisconnectReason = btlog.String(r.reason)
	}

	if r.device != nil {
		deviceType := r.device.Type
		s.DeviceConnectedTo = &btlog.DeviceInfo{
			DeviceClass: btlog.Int32(r.device.Class),
			DeviceType:  &deviceType,
		}
	}
	if r.rfcomm != nil {
		s.RfcommSession = &btlog.RFCommSession{
			RxBytes: btlog.Int32(r.rfcomm.RxBytes),
			TxBytes: btlog.Int32(r.rfcomm.TxBytes),
		}
	}
	if r.a2dp != nil {
		s.A2dpSession = &btlog.A2DPSession{
			MediaTimerMinMillis:    btlog.Int32(r.a2dp.MediaTimerMinMs),
			MediaTimerMaxMillis:    btlog.Int32(r.a2dp.MediaTimerMaxMs),
			MediaTimerAvgMillis:    btlog.Int32(r.a2dp.MediaTimerAvgMs),
			BufferOverrunsMaxCount: btlog.Int32(r.a2dp.BufferOverrunsMaxCount),
			BufferOverrunsTotal:    btlog.Int32(r.a2dp.BufferOverrunsTotal),
			BufferUnderrunsAverage: btlog.Float32(r.a2dp.BufferUnderrunsAverage),
			BufferUnderrunsCount:   btlog.Int32(r.a2dp.BufferUnderrunsCount),
			AudioDurationMillis:    btlog.Int64(r.a2dp.AudioDurationMs),
		}
	}
	return s
}

func (e PairEvent) toWire() *btlog.PairEvent {
	deviceType := e.DeviceType
	return &btlog.PairEvent{
		DisconnectReason: btlog.Int32(e.DisconnectReason),
		EventTimeMillis:  btlog.Int64(e.TimestampMs),
		DevicePairedWith: &btlog.DeviceInfo{
			DeviceClass: btlog.Int32(e.DeviceClass),
			DeviceType:  &deviceType,
		},
	}
}

func (e WakeEvent) toWire() *btlog.WakeEvent {
	eventType := e.Type
	return &btlog.WakeEvent{
		WakeEventType:   &eventType,
		Requestor:       btlog.String(e.Requestor),
		Name:            btlog.String(e.Name),
		EventTimeMillis: btlog.Int64(e.TimestampMs),
	}
}

func (e ScanEvent) toWire() *btlog.ScanEvent {
	eventType := e.Type
	tech := e.Tech
	return &btlog.ScanEvent{
		ScanEventType:      &eventType,
		Initiator:          btlog.String(e.Initiator),
		ScanTechnologyType: &tech,
		NumberResults:      btlog.Int32(e.NumResults),
		EventTimeMillis:    btlog.Int64(e.TimestampMs),
	}
}

// ════════════════════════════════════════════════════════════════════════════
//                              刷写接口
// ════════════════════════════════════════════════════════════════════════════

// WriteString 将当前快照的二进制线格式写入 out
//
// clear 为 true 时刷写后抽空缓冲区；进行中的会话保留。
// 同一状态下输出是确定的，两次调用字节完全一致。
func (l *Logger) WriteString(out *string, clear bool) {
	msg := l.snapshotWire(clear)
	*out = string(btlog.Marshal(msg))
	l.metrics.recordFlush("binary")
}

// WriteText 将当前快照的调试文本格式写入 out
//
// 输出与二进制形式描述完全相同的数据，仅用于人工排查。
func (l *Logger) WriteText(out *string, clear bool) {
	msg := l.snapshotWire(clear)
	*out = btlog.MarshalText(msg)
	l.metrics.recordFlush("text")
}

// WriteBase64String 将当前快照的 Base64 编码线格式写入 out
func (l *Logger) WriteBase64String(out *string, clear bool) {
	msg := l.snapshotWire(clear)
	*out = base64.StdEncoding.EncodeToString(btlog.Marshal(msg))
	l.metrics.recordFlush("base64")
}

// WriteBase64 将当前快照的 Base64 编码线格式写入 w
//
// 写出失败时返回错误；clear 为 true 时缓冲区在序列化前已经
// 抽空，写出失败的数据不会重新入列。
func (l *Logger) WriteBase64(w io.Writer, clear bool) error {
	msg := l.snapshotWire(clear)
	enc := base64.NewEncoder(base64.StdEncoding, w)
	if _, err := enc.Write(btlog.Marshal(msg)); err != nil {
		return fmt.Errorf("写出 Base64 报文失败: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("写出 Base64 报文失败: %w", err)
	}
	l.metrics.recordFlush("base64")
	return nil
}
