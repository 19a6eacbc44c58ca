package btlog

import (
	"fmt"
	"math"

	"google.golang.org/protobuf/encoding/protowire"
)

// Unmarshal 从二进制解码日志消息
//
// 未知字段按线缆类型跳过，保证与采集端模式的后续扩展兼容。
func Unmarshal(b []byte) (*BluetoothLog, error) {
	l := &BluetoothLog{}
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return nil, fmt.Errorf("解析 BluetoothLog 字段标签: %w", protowire.ParseError(n))
		}
		b = b[n:]

		if typ == protowire.BytesType && num >= 1 && num <= 4 {
			body, n := protowire.ConsumeBytes(b)
			if n < 0 {
				return nil, fmt.Errorf("解析 BluetoothLog 字段 %d: %w", num, protowire.ParseError(n))
			}
			b = b[n:]

			switch num {
			case 1:
				s, err := unmarshalSession(body)
				if err != nil {
					return nil, err
				}
				l.Session = append(l.Session, s)
			case 2:
				e, err := unmarshalPairEvent(body)
				if err != nil {
					return nil, err
				}
				l.PairEvent = append(l.PairEvent, e)
			case 3:
				e, err := unmarshalWakeEvent(body)
				if err != nil {
					return nil, err
				}
				l.WakeEvent = append(l.WakeEvent, e)
			case 4:
				e, err := unmarshalScanEvent(body)
				if err != nil {
					return nil, err
				}
				l.ScanEvent = append(l.ScanEvent, e)
			}
			continue
		}

		n = protowire.ConsumeFieldValue(num, typ, b)
		if n < 0 {
			return nil, fmt.Errorf("跳过 BluetoothLog 字段 %d: %w", num, protowire.ParseError(n))
		}
		b = b[n:]
	}
	return l, nil
}

func unmarshalSession(b []byte) (*BluetoothSession, error) {
	s := &BluetoothSession{}
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return nil, fmt.Errorf("解析 BluetoothSession 字段标签: %w", protowire.ParseError(n))
		}
		b = b[n:]

		var err error
		switch {
		case num == 2 && typ == protowire.VarintType:
			b, err = consumeInt64(b, &s.SessionDurationSec)
		case num == 3 && typ == protowire.VarintType:
			b, err = consumeInt32(b, nil, func(v int32) {
				t := ConnectionTechnologyType(v)
				s.ConnectionTechnologyType = &t
			})
		case num == 4 && typ == protowire.BytesType:
			b, err = consumeString(b, &s.DisconnectReason)
		case num == 5 && typ == protowire.BytesType:
			b, err = consumeMessage(b, func(body []byte) error {
				d, err := unmarshalDeviceInfo(body)
				s.DeviceConnectedTo = d
				return err
			})
		case num == 6 && typ == protowire.BytesType:
			b, err = consumeMessage(b, func(body []byte) error {
				r, err := unmarshalRFCommSession(body)
				s.RfcommSession = r
				return err
			})
		case num == 7 && typ == protowire.BytesType:
			b, err = consumeMessage(b, func(body []byte) error {
				a, err := unmarshalA2DPSession(body)
				s.A2dpSession = a
				return err
			})
		default:
			b, err = skipField(b, num, typ)
		}
		if err != nil {
			return nil, fmt.Errorf("解析 BluetoothSession 字段 %d: %w", num, err)
		}
	}
	return s, nil
}

func unmarshalDeviceInfo(b []byte) (*DeviceInfo, error) {
	d := &DeviceInfo{}
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return nil, fmt.Errorf("解析 DeviceInfo 字段标签: %w", protowire.ParseError(n))
		}
		b = b[n:]

		var err error
		switch {
		case num == 1 && typ == protowire.VarintType:
			b, err = consumeInt32(b, &d.DeviceClass, nil)
		case num == 2 && typ == protowire.VarintType:
			b, err = consumeInt32(b, nil, func(v int32) {
				t := DeviceType(v)
				d.DeviceType = &t
			})
		default:
			b, err = skipField(b, num, typ)
		}
		if err != nil {
			return nil, fmt.Errorf("解析 DeviceInfo 字段 %d: %w", num, err)
		}
	}
	return d, nil
}

func unmarshalPairEvent(b []byte) (*PairEvent, error) {
	e := &PairEvent{}
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return nil, fmt.Errorf("解析 PairEvent 字段标签: %w", protowire.ParseError(n))
		}
		b = b[n:]

		var err error
		switch {
		case num == 1 && typ == protowire.VarintType:
			b, err = consumeInt32(b, &e.DisconnectReason, nil)
		case num == 2 && typ == protowire.VarintType:
			b, err = consumeInt64(b, &e.EventTimeMillis)
		case num == 3 && typ == protowire.BytesType:
			b, err = consumeMessage(b, func(body []byte) error {
				d, err := unmarshalDeviceInfo(body)
				e.DevicePairedWith = d
				return err
			})
		default:
			b, err = skipField(b, num, typ)
		}
		if err != nil {
			return nil, fmt.Errorf("解析 PairEvent 字段 %d: %w", num, err)
		}
	}
	return e, nil
}

func unmarshalWakeEvent(b []byte) (*WakeEvent, error) {
	e := &WakeEvent{}
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return nil, fmt.Errorf("解析 WakeEvent 字段标签: %w", protowire.ParseError(n))
		}
		b = b[n:]

		var err error
		switch {
		case num == 1 && typ == protowire.VarintType:
			b, err = consumeInt32(b, nil, func(v int32) {
				t := WakeEventType(v)
				e.WakeEventType = &t
			})
		case num == 2 && typ == protowire.BytesType:
			b, err = consumeString(b, &e.Requestor)
		case num == 3 && typ == protowire.BytesType:
			b, err = consumeString(b, &e.Name)
		case num == 4 && typ == protowire.VarintType:
			b, err = consumeInt64(b, &e.EventTimeMillis)
		default:
			b, err = skipField(b, num, typ)
		}
		if err != nil {
			return nil, fmt.Errorf("解析 WakeEvent 字段 %d: %w", num, err)
		}
	}
	return e, nil
}

func unmarshalScanEvent(b []byte) (*ScanEvent, error) {
	e := &ScanEvent{}
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return nil, fmt.Errorf("解析 ScanEvent 字段标签: %w", protowire.ParseError(n))
		}
		b = b[n:]

		var err error
		switch {
		case num == 1 && typ == protowire.VarintType:
			b, err = consumeInt32(b, nil, func(v int32) {
				t := ScanEventType(v)
				e.ScanEventType = &t
			})
		case num == 2 && typ == protowire.BytesType:
			b, err = consumeString(b, &e.Initiator)
		case num == 3 && typ == protowire.VarintType:
			b, err = consumeInt32(b, nil, func(v int32) {
				t := ScanTechnologyType(v)
				e.ScanTechnologyType = &t
			})
		case num == 4 && typ == protowire.VarintType:
			b, err = consumeInt32(b, &e.NumberResults, nil)
		case num == 5 && typ == protowire.VarintType:
			b, err = consumeInt64(b, &e.EventTimeMillis)
		default:
			b, err = skipField(b, num, typ)
		}
		if err != nil {
			return nil, fmt.Errorf("解析 ScanEvent 字段 %d: %w", num, err)
		}
	}
	return e, nil
}

func unmarshalRFCommSession(b []byte) (*RFCommSession, error) {
	s := &RFCommSession{}
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return nil, fmt.Errorf("解析 RFCommSession 字段标签: %w", protowire.ParseError(n))
		}
		b = b[n:]

		var err error
		switch {
		case num == 1 && typ == protowire.VarintType:
			b, err = consumeInt32(b, &s.RxBytes, nil)
		case num == 2 && typ == protowire.VarintType:
			b, err = consumeInt32(b, &s.TxBytes, nil)
		default:
			b, err = skipField(b, num, typ)
		}
		if err != nil {
			return nil, fmt.Errorf("解析 RFCommSession 字段 %d: %w", num, err)
		}
	}
	return s, nil
}

func unmarshalA2DPSession(b []byte) (*A2DPSession, error) {
	s := &A2DPSession{}
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return nil, fmt.Errorf("解析 A2DPSession 字段标签: %w", protowire.ParseError(n))
		}
		b = b[n:]

		var err error
		switch {
		case num == 1 && typ == protowire.VarintType:
			b, err = consumeInt32(b, &s.MediaTimerMinMillis, nil)
		case num == 2 && typ == protowire.VarintType:
			b, err = consumeInt32(b, &s.MediaTimerMaxMillis, nil)
		case num == 3 && typ == protowire.VarintType:
			b, err = consumeInt32(b, &s.MediaTimerAvgMillis, nil)
		case num == 4 && typ == protowire.VarintType:
			b, err = consumeInt32(b, &s.BufferOverrunsMaxCount, nil)
		case num == 5 && typ == protowire.VarintType:
			b, err = consumeInt32(b, &s.BufferOverrunsTotal, nil)
		case num == 6 && typ == protowire.Fixed32Type:
			b, err = consumeFloat32(b, &s.BufferUnderrunsAverage)
		case num == 7 && typ == protowire.VarintType:
			b, err = consumeInt32(b, &s.BufferUnderrunsCount, nil)
		case num == 8 && typ == protowire.VarintType:
			b, err = consumeInt64(b, &s.AudioDurationMillis)
		default:
			b, err = skipField(b, num, typ)
		}
		if err != nil {
			return nil, fmt.Errorf("解析 A2DPSession 字段 %d: %w", num, err)
		}
	}
	return s, nil
}

// ============================================================================
//                              字段解码辅助
// ============================================================================

// consumeInt32 读取 varint 编码的 int32 字段
//
// 结果写入 dst；需要转换为枚举类型时传入 set 回调。
func consumeInt32(b []byte, dst **int32, set func(int32)) ([]byte, error) {
	v, n := protowire.ConsumeVarint(b)
	if n < 0 {
		return b, protowire.ParseError(n)
	}
	val := int32(int64(v))
	if dst != nil {
		*dst = &val
	}
	if set != nil {
		set(val)
	}
	return b[n:], nil
}

// consumeInt64 读取 varint 编码的 int64 字段
func consumeInt64(b []byte, dst **int64) ([]byte, error) {
	v, n := protowire.ConsumeVarint(b)
	if n < 0 {
		return b, protowire.ParseError(n)
	}
	val := int64(v)
	*dst = &val
	return b[n:], nil
}

// consumeString 读取带长度前缀的字符串字段
func consumeString(b []byte, dst **string) ([]byte, error) {
	v, n := protowire.ConsumeString(b)
	if n < 0 {
		return b, protowire.ParseError(n)
	}
	*dst = &v
	return b[n:], nil
}

// consumeFloat32 读取定长 32 位浮点字段
func consumeFloat32(b []byte, dst **float32) ([]byte, error) {
	v, n := protowire.ConsumeFixed32(b)
	if n < 0 {
		return b, protowire.ParseError(n)
	}
	val := math.Float32frombits(v)
	*dst = &val
	return b[n:], nil
}

// consumeMessage 读取带长度前缀的嵌套消息并交给 parse 处理
func consumeMessage(b []byte, parse func([]byte) error) ([]byte, error) {
	body, n := protowire.ConsumeBytes(b)
	if n < 0 {
		return b, protowire.ParseError(n)
	}
	if err := parse(body); err != nil {
		return b, err
	}
	return b[n:], nil
}

// skipField 按线缆类型跳过未知字段
func skipField(b []byte, num protowire.Number, typ protowire.Type) ([]byte, error) {
	n := protowire.ConsumeFieldValue(num, typ, b)
	if n < 0 {
		return b, protowire.ParseError(n)
	}
	return b[n:], nil
}
