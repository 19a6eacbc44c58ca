package btlog

import (
	"math"

	"google.golang.org/protobuf/encoding/protowire"
)

// Marshal 将日志消息编码为二进制
//
// 字段按编号升序写出，未设置的 optional 字段不写出，repeated
// 字段保持切片顺序。同一消息两次编码的输出字节完全一致。
func Marshal(l *BluetoothLog) []byte {
	return AppendLog(nil, l)
}

// AppendLog 将日志消息追加编码到 b 并返回结果
func AppendLog(b []byte, l *BluetoothLog) []byte {
	if l == nil {
		return b
	}
	for _, s := range l.Session {
		b = appendMessage(b, 1, appendSession(nil, s))
	}
	for _, e := range l.PairEvent {
		b = appendMessage(b, 2, appendPairEvent(nil, e))
	}
	for _, e := range l.WakeEvent {
		b = appendMessage(b, 3, appendWakeEvent(nil, e))
	}
	for _, e := range l.ScanEvent {
		b = appendMessage(b, 4, appendScanEvent(nil, e))
	}
	return b
}

func appendSession(b []byte, s *BluetoothSession) []byte {
	b = appendInt64(b, 2, s.SessionDurationSec)
	b = appendInt32(b, 3, (*int32)(s.ConnectionTechnologyType))
	b = appendString(b, 4, s.DisconnectReason)
	if s.DeviceConnectedTo != nil {
		b = appendMessage(b, 5, appendDeviceInfo(nil, s.DeviceConnectedTo))
	}
	if s.RfcommSession != nil {
		b = appendMessage(b, 6, appendRFCommSession(nil, s.RfcommSession))
	}
	if s.A2dpSession != nil {
		b = appendMessage(b, 7, appendA2DPSession(nil, s.A2dpSession))
	}
	return b
}

func appendDeviceInfo(b []byte, d *DeviceInfo) []byte {
	b = appendInt32(b, 1, d.DeviceClass)
	b = appendInt32(b, 2, (*int32)(d.DeviceType))
	return b
}

func appendPairEvent(b []byte, e *PairEvent) []byte {
	b = appendInt32(b, 1, e.DisconnectReason)
	b = appendInt64(b, 2, e.EventTimeMillis)
	if e.DevicePairedWith != nil {
		b = appendMessage(b, 3, appendDeviceInfo(nil, e.DevicePairedWith))
	}
	return b
}

func appendWakeEvent(b []byte, e *WakeEvent) []byte {
	b = appendInt32(b, 1, (*int32)(e.WakeEventType))
	b = appendString(b, 2, e.Requestor)
	b = appendString(b, 3, e.Name)
	b = appendInt64(b, 4, e.EventTimeMillis)
	return b
}

func appendScanEvent(b []byte, e *ScanEvent) []byte {
	b = appendInt32(b, 1, (*int32)(e.ScanEventType))
	b = appendString(b, 2, e.Initiator)
	b = appendInt32(b, 3, (*int32)(e.ScanTechnologyType))
	b = appendInt32(b, 4, e.NumberResults)
	b = appendInt64(b, 5, e.EventTimeMillis)
	return b
}

func appendRFCommSession(b []byte, s *RFCommSession) []byte {
	b = appendInt32(b, 1, s.RxBytes)
	b = appendInt32(b, 2, s.TxBytes)
	return b
}

func appendA2DPSession(b []byte, s *A2DPSession) []byte {
	b = appendInt32(b, 1, s.MediaTimerMinMillis)
	b = appendInt32(b, 2, s.MediaTimerMaxMillis)
	b = appendInt32(b, 3, s.MediaTimerAvgMillis)
	b = appendInt32(b, 4, s.BufferOverrunsMaxCount)
	b = appendInt32(b, 5, s.BufferOverrunsTotal)
	b = appendFloat32(b, 6, s.BufferUnderrunsAverage)
	b = appendInt32(b, 7, s.BufferUnderrunsCount)
	b = appendInt64(b, 8, s.AudioDurationMillis)
	return b
}

// ============================================================================
//                              字段编码辅助
// ============================================================================

// appendInt32 写出 varint 编码的 int32 字段
//
// 负数按 protobuf 约定符号扩展为 64 位后编码。
func appendInt32(b []byte, num protowire.Number, v *int32) []byte {
	if v == nil {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, uint64(int64(*v)))
}

// appendInt64 写出 varint 编码的 int64 字段
func appendInt64(b []byte, num protowire.Number, v *int64) []byte {
	if v == nil {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, uint64(*v))
}

// appendString 写出带长度前缀的字符串字段
func appendString(b []byte, num protowire.Number, v *string) []byte {
	if v == nil {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendString(b, *v)
}

// appendFloat32 写出定长 32 位浮点字段
func appendFloat32(b []byte, num protowire.Number, v *float32) []byte {
	if v == nil {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.Fixed32Type)
	return protowire.AppendFixed32(b, math.Float32bits(*v))
}

// appendMessage 写出带长度前缀的嵌套消息
func appendMessage(b []byte, num protowire.Number, body []byte) []byte {
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendBytes(b, body)
}
