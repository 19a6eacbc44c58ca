package btlog

import (
	"strconv"
	"strings"
)

// MarshalText 将日志消息渲染为调试文本
//
// 输出为 protobuf 文本格式：字段按编号顺序逐行写出，嵌套消息
// 用大括号缩进，枚举输出名称，字符串带引号转义。与 Marshal
// 描述完全相同的数据，同一消息两次渲染的输出完全一致。
func MarshalText(l *BluetoothLog) string {
	w := &textWriter{}
	if l == nil {
		return ""
	}
	for _, s := range l.Session {
		w.open("session")
		w.writeSession(s)
		w.close()
	}
	for _, e := range l.PairEvent {
		w.open("pair_event")
		w.writePairEvent(e)
		w.close()
	}
	for _, e := range l.WakeEvent {
		w.open("wake_event")
		w.writeWakeEvent(e)
		w.close()
	}
	for _, e := range l.ScanEvent {
		w.open("scan_event")
		w.writeScanEvent(e)
		w.close()
	}
	return w.sb.String()
}

// textWriter 带缩进状态的文本写出器
type textWriter struct {
	sb     strings.Builder
	indent int
}

func (w *textWriter) writeSession(s *BluetoothSession) {
	w.fieldInt64("session_duration_sec", s.SessionDurationSec)
	if s.ConnectionTechnologyType != nil {
		w.fieldName("connection_technology_type", s.ConnectionTechnologyType.String())
	}
	w.fieldString("disconnect_reason", s.DisconnectReason)
	if s.DeviceConnectedTo != nil {
		w.open("device_connected_to")
		w.writeDeviceInfo(s.DeviceConnectedTo)
		w.close()
	}
	if s.RfcommSession != nil {
		w.open("rfcomm_session")
		w.writeRFCommSession(s.RfcommSession)
		w.close()
	}
	if s.A2dpSession != nil {
		w.open("a2dp_session")
		w.writeA2DPSession(s.A2dpSession)
		w.close()
	}
}

func (w *textWriter) writeDeviceInfo(d *DeviceInfo) {
	w.fieldInt32("device_class", d.DeviceClass)
	if d.DeviceType != nil {
		w.fieldName("device_type", d.DeviceType.String())
	}
}

func (w *textWriter) writePairEvent(e *PairEvent) {
	w.fieldInt32("disconnect_reason", e.DisconnectReason)
	w.fieldInt64("event_time_millis", e.EventTimeMillis)
	if e.DevicePairedWith != nil {
		w.open("device_paired_with")
		w.writeDeviceInfo(e.DevicePairedWith)
		w.close()
	}
}

func (w *textWriter) writeWakeEvent(e *WakeEvent) {
	if e.WakeEventType != nil {
		w.fieldName("wake_event_type", e.WakeEventType.String())
	}
	w.fieldString("requestor", e.Requestor)
	w.fieldString("name", e.Name)
	w.fieldInt64("event_time_millis", e.EventTimeMillis)
}

func (w *textWriter) writeScanEvent(e *ScanEvent) {
	if e.ScanEventType != nil {
		w.fieldName("scan_event_type", e.ScanEventType.String())
	}
	w.fieldString("initiator", e.Initiator)
	if e.ScanTechnologyType != nil {
		w.fieldName("scan_technology_type", e.ScanTechnologyType.String())
	}
	w.fieldInt32("number_results", e.NumberResults)
	w.fieldInt64("event_time_millis", e.EventTimeMillis)
}

func (w *textWriter) writeRFCommSession(s *RFCommSession) {
	w.fieldInt32("rx_bytes", s.RxBytes)
	w.fieldInt32("tx_bytes", s.TxBytes)
}

func (w *textWriter) writeA2DPSession(s *A2DPSession) {
	w.fieldInt32("media_timer_min_millis", s.MediaTimerMinMillis)
	w.fieldInt32("media_timer_max_millis", s.MediaTimerMaxMillis)
	w.fieldInt32("media_timer_avg_millis", s.MediaTimerAvgMillis)
	w.fieldInt32("buffer_overruns_max_count", s.BufferOverrunsMaxCount)
	w.fieldInt32("buffer_overruns_total", s.BufferOverrunsTotal)
	w.fieldFloat32("buffer_underruns_average", s.BufferUnderrunsAverage)
	w.fieldInt32("buffer_underruns_count", s.BufferUnderrunsCount)
	w.fieldInt64("audio_duration_millis", s.AudioDurationMillis)
}

// ============================================================================
//                              写出辅助
// ============================================================================

// open 写出 "name {" 并增加缩进
func (w *textWriter) open(name string) {
	w.writeIndent()
	w.sb.WriteString(name)
	w.sb.WriteString(" {\n")
	w.indent++
}

// close 减少缩进并写出 "}"
func (w *textWriter) close() {
	w.indent--
	w.writeIndent()
	w.sb.WriteString("}\n")
}

func (w *textWriter) writeIndent() {
	for i := 0; i < w.indent; i++ {
		w.sb.WriteString("  ")
	}
}

func (w *textWriter) field(name, value string) {
	w.writeIndent()
	w.sb.WriteString(name)
	w.sb.WriteString(": ")
	w.sb.WriteString(value)
	w.sb.WriteByte('\n')
}

func (w *textWriter) fieldInt32(name string, v *int32) {
	if v == nil {
		return
	}
	w.field(name, strconv.FormatInt(int64(*v), 10))
}

func (w *textWriter) fieldInt64(name string, v *int64) {
	if v == nil {
		return
	}
	w.field(name, strconv.FormatInt(*v, 10))
}

func (w *textWriter) fieldFloat32(name string, v *float32) {
	if v == nil {
		return
	}
	w.field(name, strconv.FormatFloat(float64(*v), 'g', -1, 32))
}

func (w *textWriter) fieldString(name string, v *string) {
	if v == nil {
		return
	}
	w.field(name, strconv.Quote(*v))
}

// fieldName 写出枚举名（无引号）
func (w *textWriter) fieldName(name, enumName string) {
	w.field(name, enumName)
}
