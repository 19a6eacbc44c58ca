package btlog_test

import (
	"bytes"
	"encoding/hex"
	"reflect"
	"testing"

	"github.com/dep2p/go-btmetrics/pkg/lib/proto/btlog"
)

// testLog 构造覆盖全部消息类型的日志
func testLog() *btlog.BluetoothLog {
	tech := btlog.ConnectionTechnologyLE
	devType := btlog.DeviceTypeBREDR
	wakeType := btlog.WakeEventAcquired
	scanType := btlog.ScanEventStop
	scanTech := btlog.ScanTechBREDR

	return &btlog.BluetoothLog{
		Session: []*btlog.BluetoothSession{
			{
				SessionDurationSec:       btlog.Int64(10),
				ConnectionTechnologyType: &tech,
				DisconnectReason:         btlog.String("TEST_DISCONNECT"),
				DeviceConnectedTo: &btlog.DeviceInfo{
					DeviceClass: btlog.Int32(42),
					DeviceType:  &devType,
				},
				RfcommSession: &btlog.RFCommSession{
					RxBytes: btlog.Int32(100),
					TxBytes: btlog.Int32(200),
				},
				A2dpSession: &btlog.A2DPSession{
					MediaTimerMinMillis:    btlog.Int32(10),
					MediaTimerMaxMillis:    btlog.Int32(100),
					MediaTimerAvgMillis:    btlog.Int32(50),
					BufferOverrunsMaxCount: btlog.Int32(70),
					BufferOverrunsTotal:    btlog.Int32(80),
					BufferUnderrunsAverage: btlog.Float32(113.33333),
					BufferUnderrunsCount:   btlog.Int32(3600),
					AudioDurationMillis:    btlog.Int64(10000),
				},
			},
		},
		PairEvent: []*btlog.PairEvent{
			{
				DisconnectReason: btlog.Int32(35),
				EventTimeMillis:  btlog.Int64(12345),
				DevicePairedWith: &btlog.DeviceInfo{
					DeviceClass: btlog.Int32(42),
					DeviceType:  &devType,
				},
			},
		},
		WakeEvent: []*btlog.WakeEvent{
			{
				WakeEventType:   &wakeType,
				Requestor:       btlog.String("TEST_REQ"),
				Name:            btlog.String("TEST_NAME"),
				EventTimeMillis: btlog.Int64(12345),
			},
		},
		ScanEvent: []*btlog.ScanEvent{
			{
				ScanEventType:      &scanType,
				Initiator:          btlog.String("TEST_INITIATOR"),
				ScanTechnologyType: &scanTech,
				NumberResults:      btlog.Int32(42),
				EventTimeMillis:    btlog.Int64(123456),
			},
		},
	}
}

func TestMarshal_KnownBytes(t *testing.T) {
	devType := btlog.DeviceTypeBREDR
	l := &btlog.BluetoothLog{
		PairEvent: []*btlog.PairEvent{
			{
				DisconnectReason: btlog.Int32(35),
				EventTimeMillis:  btlog.Int64(12345),
				DevicePairedWith: &btlog.DeviceInfo{
					DeviceClass: btlog.Int32(42),
					DeviceType:  &devType,
				},
			},
		},
	}

	got := btlog.Marshal(l)

	// 手工推导：pair_event(2){disconnect_reason(1)=35,
	// event_time_millis(2)=12345, device_paired_with(3){
	// device_class(1)=42, device_type(2)=1}}
	want := "120b0823" + "10b960" + "1a04082a1001"
	if hex.EncodeToString(got) != want {
		t.Errorf("Marshal = %x, want %s", got, want)
	}
}

func TestMarshal_Deterministic(t *testing.T) {
	l := testLog()

	first := btlog.Marshal(l)
	second := btlog.Marshal(l)

	if !bytes.Equal(first, second) {
		t.Errorf("两次编码输出不一致:\n%x\n%x", first, second)
	}
}

func TestMarshal_EmptyLog(t *testing.T) {
	if got := btlog.Marshal(&btlog.BluetoothLog{}); len(got) != 0 {
		t.Errorf("空日志编码 = %x, want 空", got)
	}
	if got := btlog.Marshal(nil); len(got) != 0 {
		t.Errorf("nil 日志编码 = %x, want 空", got)
	}
}

func TestMarshal_UnsetFieldsSkipped(t *testing.T) {
	// 进行中的会话没有时长和断开原因，只写出技术类型
	tech := btlog.ConnectionTechnologyBREDR
	l := &btlog.BluetoothLog{
		Session: []*btlog.BluetoothSession{
			{ConnectionTechnologyType: &tech},
		},
	}

	got := btlog.Marshal(l)

	// session(1){connection_technology_type(3)=2}
	want := "0a021802"
	if hex.EncodeToString(got) != want {
		t.Errorf("Marshal = %x, want %s", got, want)
	}
}

func TestUnmarshal_RoundTrip(t *testing.T) {
	l := testLog()

	data := btlog.Marshal(l)
	decoded, err := btlog.Unmarshal(data)
	if err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}

	if !reflect.DeepEqual(l, decoded) {
		t.Errorf("Round trip 不一致:\n got %+v\nwant %+v", decoded, l)
	}
}

func TestUnmarshal_Empty(t *testing.T) {
	decoded, err := btlog.Unmarshal(nil)
	if err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if len(decoded.Session) != 0 || len(decoded.PairEvent) != 0 ||
		len(decoded.WakeEvent) != 0 || len(decoded.ScanEvent) != 0 {
		t.Errorf("空输入解出非空消息: %+v", decoded)
	}
}

func TestUnmarshal_SkipsUnknownFields(t *testing.T) {
	data := btlog.Marshal(testLog())

	// 追加未知字段 99 (varint)
	extra := append(append([]byte{}, data...), 0x98, 0x06, 0x01)

	decoded, err := btlog.Unmarshal(extra)
	if err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if len(decoded.PairEvent) != 1 || *decoded.PairEvent[0].DisconnectReason != 35 {
		t.Errorf("未知字段影响了已知字段的解析: %+v", decoded)
	}
}

func TestUnmarshal_Truncated(t *testing.T) {
	data := btlog.Marshal(testLog())

	if _, err := btlog.Unmarshal(data[:len(data)-1]); err == nil {
		t.Error("截断输入未返回错误")
	}
}

func TestMarshal_NegativeInt32(t *testing.T) {
	// 负的 int32 按符号扩展编码，往返后保持不变
	l := &btlog.BluetoothLog{
		PairEvent: []*btlog.PairEvent{
			{DisconnectReason: btlog.Int32(-1)},
		},
	}

	decoded, err := btlog.Unmarshal(btlog.Marshal(l))
	if err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if got := *decoded.PairEvent[0].DisconnectReason; got != -1 {
		t.Errorf("DisconnectReason = %d, want -1", got)
	}
}

func TestMarshalText_Golden(t *testing.T) {
	devType := btlog.DeviceTypeBREDR
	tech := btlog.ConnectionTechnologyLE
	l := &btlog.BluetoothLog{
		Session: []*btlog.BluetoothSession{
			{
				SessionDurationSec:       btlog.Int64(10),
				ConnectionTechnologyType: &tech,
				DisconnectReason:         btlog.String("TEST_DISCONNECT"),
			},
		},
		PairEvent: []*btlog.PairEvent{
			{
				DisconnectReason: btlog.Int32(35),
				EventTimeMillis:  btlog.Int64(12345),
				DevicePairedWith: &btlog.DeviceInfo{
					DeviceClass: btlog.Int32(42),
					DeviceType:  &devType,
				},
			},
		},
	}

	want := `session {
  session_duration_sec: 10
  connection_technology_type: CONNECTION_TECHNOLOGY_TYPE_LE
  disconnect_reason: "TEST_DISCONNECT"
}
pair_event {
  disconnect_reason: 35
  event_time_millis: 12345
  device_paired_with {
    device_class: 42
    device_type: DEVICE_TYPE_BREDR
  }
}
`
	if got := btlog.MarshalText(l); got != want {
		t.Errorf("MarshalText =\n%s\nwant\n%s", got, want)
	}
}

func TestMarshalText_Deterministic(t *testing.T) {
	l := testLog()

	if btlog.MarshalText(l) != btlog.MarshalText(l) {
		t.Error("两次渲染输出不一致")
	}
}

func TestEnumString_OutOfRange(t *testing.T) {
	// 超出模式定义的枚举值按数字透传
	if got := btlog.ConnectionTechnologyType(9).String(); got != "9" {
		t.Errorf("String() = %q, want \"9\"", got)
	}
	if got := btlog.WakeEventType(7).String(); got != "7" {
		t.Errorf("String() = %q, want \"7\"", got)
	}
}
