package btmetrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

// ============================================================================
// 自监控指标测试
// ============================================================================

// TestInstruments_CountsEvents 测试事件计数与淘汰计数
func TestInstruments_CountsEvents(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := newTestLogger(t, WithPrometheus(reg), WithBufferCapacity(2))

	m.LogPairEvent(1, 1000, 42, DeviceTypeBREDR)
	m.LogPairEvent(2, 2000, 42, DeviceTypeBREDR)
	m.LogPairEvent(3, 3000, 42, DeviceTypeBREDR)

	if got := testutil.ToFloat64(m.metrics.events.WithLabelValues(kindPair)); got != 3 {
		t.Errorf("events_total{pair} = %v, want 3", got)
	}
	if got := testutil.ToFloat64(m.metrics.eventsDropped.WithLabelValues(kindPair)); got != 1 {
		t.Errorf("events_dropped_total{pair} = %v, want 1", got)
	}

	m.LogWakeEvent(WakeEventAcquired, "TEST_REQ", "TEST_NAME", 1000)
	if got := testutil.ToFloat64(m.metrics.events.WithLabelValues(kindWake)); got != 1 {
		t.Errorf("events_total{wake} = %v, want 1", got)
	}
}

// TestInstruments_CountsSessions 测试会话关闭计数
func TestInstruments_CountsSessions(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := newTestLogger(t, WithPrometheus(reg), WithBufferCapacity(2))

	// 显式关闭一次
	m.LogBluetoothSessionStart(ConnectionTechnologyLE, 1000)
	m.LogBluetoothSessionEnd("TEST_DISCONNECT", 2000)

	// 连续两次 Start 触发一次隐式关闭
	m.LogBluetoothSessionStart(ConnectionTechnologyBREDR, 3000)
	m.LogBluetoothSessionStart(ConnectionTechnologyBREDR, 4000)

	if got := testutil.ToFloat64(m.metrics.sessions.WithLabelValues("explicit")); got != 1 {
		t.Errorf("sessions_completed_total{explicit} = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.metrics.sessions.WithLabelValues("implicit")); got != 1 {
		t.Errorf("sessions_completed_total{implicit} = %v, want 1", got)
	}

	// 第三次关闭超出容量 2，最旧的会话被淘汰
	m.LogBluetoothSessionEnd("TEST_DISCONNECT", 5000)
	if got := testutil.ToFloat64(m.metrics.eventsDropped.WithLabelValues(kindSession)); got != 1 {
		t.Errorf("events_dropped_total{session} = %v, want 1", got)
	}
}

// TestInstruments_CountsFlushes 测试按格式的刷写计数
func TestInstruments_CountsFlushes(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := newTestLogger(t, WithPrometheus(reg))

	var out string
	m.WriteString(&out, false)
	m.WriteString(&out, false)
	m.WriteText(&out, false)
	m.WriteBase64String(&out, false)

	if got := testutil.ToFloat64(m.metrics.flushes.WithLabelValues("binary")); got != 2 {
		t.Errorf("flushes_total{binary} = %v, want 2", got)
	}
	if got := testutil.ToFloat64(m.metrics.flushes.WithLabelValues("text")); got != 1 {
		t.Errorf("flushes_total{text} = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.metrics.flushes.WithLabelValues("base64")); got != 1 {
		t.Errorf("flushes_total{base64} = %v, want 1", got)
	}
}

// TestInstruments_Disabled 测试未注入注册器时自监控关闭
func TestInstruments_Disabled(t *testing.T) {
	m := newTestLogger(t)

	if m.metrics != nil {
		t.Fatal("未注入 Registerer 时 metrics 应为 nil")
	}

	// 所有记录路径都应安全跳过
	m.LogPairEvent(1, 1000, 42, DeviceTypeBREDR)
	m.LogBluetoothSessionStart(ConnectionTechnologyLE, 1000)
	m.LogBluetoothSessionStart(ConnectionTechnologyLE, 2000)
	m.LogBluetoothSessionEnd("TEST_DISCONNECT", 3000)

	var out string
	m.WriteString(&out, true)
	if out == "" {
		t.Error("快照不应为空")
	}
}

// TestInstruments_SharedRegistry 测试多个聚合器共享注册器
func TestInstruments_SharedRegistry(t *testing.T) {
	reg := prometheus.NewRegistry()

	m1 := newTestLogger(t, WithPrometheus(reg))
	m2 := newTestLogger(t, WithPrometheus(reg))

	m1.LogPairEvent(1, 1000, 42, DeviceTypeBREDR)
	m2.LogPairEvent(2, 2000, 42, DeviceTypeBREDR)

	// 第二个聚合器采纳已注册的指标，两边计入同一个计数器
	if got := testutil.ToFloat64(m2.metrics.events.WithLabelValues(kindPair)); got != 2 {
		t.Errorf("events_total{pair} = %v, want 2", got)
	}
}
