package btmetrics

import "math"

// A2dpSessionMetrics A2DP 音频会话指标
//
// 音频栈按播放片段逐次上报，同一会话内的多次上报通过 Update
// 合并为单份累积值。零值字段表示"本次未采样"，合并时被跳过。
type A2dpSessionMetrics struct {
	// AudioDurationMs 音频播放总时长（毫秒），合并时累加
	AudioDurationMs int64

	// MediaTimerMinMs 媒体定时器最小间隔（毫秒）
	MediaTimerMinMs int32

	// MediaTimerMaxMs 媒体定时器最大间隔（毫秒）
	MediaTimerMaxMs int32

	// MediaTimerAvgMs 媒体定时器平均间隔（毫秒）
	//
	// 与 TotalSchedulingCount 配对，合并时按次数加权。
	MediaTimerAvgMs int32

	// TotalSchedulingCount 平均值对应的调度次数（加权权重，不上线）
	TotalSchedulingCount int64

	// BufferOverrunsMaxCount 单次上报中缓冲区上溢的最大次数
	BufferOverrunsMaxCount int32

	// BufferOverrunsTotal 缓冲区上溢总次数，合并时累加
	BufferOverrunsTotal int32

	// BufferUnderrunsAverage 缓冲区下溢平均值
	//
	// 与 BufferUnderrunsCount 配对，合并时按次数加权。
	BufferUnderrunsAverage float32

	// BufferUnderrunsCount 下溢平均值对应的采样次数
	BufferUnderrunsCount int32
}

// Update 将另一份指标合并进当前指标
//
// 合并规则：
//   - 时长与总次数：累加
//   - 最小值：仅当对方采样过（>0）才参与比较；己方未采样时直接采纳
//   - 最大值：单调取大
//   - 平均值：与配对的次数一起按权重合并；对方的平均值或次数缺失
//     （<=0）时整对跳过，避免未采样的零值稀释结果
func (m *A2dpSessionMetrics) Update(other A2dpSessionMetrics) {
	m.AudioDurationMs += other.AudioDurationMs

	if other.MediaTimerMinMs > 0 {
		if m.MediaTimerMinMs == 0 || other.MediaTimerMinMs < m.MediaTimerMinMs {
			m.MediaTimerMinMs = other.MediaTimerMinMs
		}
	}
	if other.MediaTimerMaxMs > m.MediaTimerMaxMs {
		m.MediaTimerMaxMs = other.MediaTimerMaxMs
	}

	if other.MediaTimerAvgMs > 0 && other.TotalSchedulingCount > 0 {
		if m.MediaTimerAvgMs <= 0 || m.TotalSchedulingCount <= 0 {
			m.MediaTimerAvgMs = other.MediaTimerAvgMs
			m.TotalSchedulingCount = other.TotalSchedulingCount
		} else {
			sum := int64(m.MediaTimerAvgMs)*m.TotalSchedulingCount +
				int64(other.MediaTimerAvgMs)*other.TotalSchedulingCount
			m.TotalSchedulingCount += other.TotalSchedulingCount
			m.MediaTimerAvgMs = int32(sum / m.TotalSchedulingCount)
		}
	}

	if other.BufferOverrunsMaxCount > m.BufferOverrunsMaxCount {
		m.BufferOverrunsMaxCount = other.BufferOverrunsMaxCount
	}
	m.BufferOverrunsTotal += other.BufferOverrunsTotal

	if other.BufferUnderrunsAverage > 0 && other.BufferUnderrunsCount > 0 {
		if m.BufferUnderrunsAverage <= 0 || m.BufferUnderrunsCount <= 0 {
			m.BufferUnderrunsAverage = other.BufferUnderrunsAverage
			m.BufferUnderrunsCount = other.BufferUnderrunsCount
		} else {
			sum := m.BufferUnderrunsAverage*float32(m.BufferUnderrunsCount) +
				other.BufferUnderrunsAverage*float32(other.BufferUnderrunsCount)
			m.BufferUnderrunsCount += other.BufferUnderrunsCount
			m.BufferUnderrunsAverage = sum / float32(m.BufferUnderrunsCount)
		}
	}
}

// Equal 判断两份指标是否相等
//
// 两个加权平均字段允许 ±0.01 的误差，其余字段精确比较。
func (m A2dpSessionMetrics) Equal(other A2dpSessionMetrics) bool {
	return m.AudioDurationMs == other.AudioDurationMs &&
		m.MediaTimerMinMs == other.MediaTimerMinMs &&
		m.MediaTimerMaxMs == other.MediaTimerMaxMs &&
		floatNear(float64(m.MediaTimerAvgMs), float64(other.MediaTimerAvgMs), 0.01) &&
		m.TotalSchedulingCount == other.TotalSchedulingCount &&
		m.BufferOverrunsMaxCount == other.BufferOverrunsMaxCount &&
		m.BufferOverrunsTotal == other.BufferOverrunsTotal &&
		floatNear(float64(m.BufferUnderrunsAverage), float64(other.BufferUnderrunsAverage), 0.01) &&
		m.BufferUnderrunsCount == other.BufferUnderrunsCount
}

func floatNear(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}
