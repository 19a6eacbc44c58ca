package btmetrics

// 会话生命周期记录接口
//
// 会话从 LogBluetoothSessionStart 开始，到 LogBluetoothSessionEnd
// 或下一次 Start（隐式关闭）为止。期间的设备信息、A2DP 指标、
// RFCOMM 流量都累积到当前会话上；没有进行中的会话时这些调用
// 静默丢弃。

// LogBluetoothSessionStart 记录会话开始
//
// 若上一个会话尚未结束，先将其以隐式原因关闭，时长按本次开始
// 时刻推导，再开启新会话。
func (l *Logger) LogBluetoothSessionStart(tech ConnectionTechnologyType, timestampMs int64) {
	l.mu.Lock()
	defer l.mu.Unlock()

	implicit, evicted := l.tracker.start(tech, l.eventTimeLocked(timestampMs))
	if implicit {
		logger.Debug("上一会话未显式结束，已隐式关闭")
		l.metrics.recordSessionEnd(true, evicted)
	}
}

// LogBluetoothSessionDeviceInfo 记录当前会话的对端设备信息
func (l *Logger) LogBluetoothSessionDeviceInfo(deviceClass int32, deviceType DeviceType) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.tracker.setDeviceInfo(deviceClass, deviceType) {
		logger.Debug("没有进行中的会话，设备信息被丢弃")
	}
}

// LogA2dpSession 将一份 A2DP 音频指标合并进当前会话
//
// 同一会话内可多次调用，各次上报按加权规则合并。
func (l *Logger) LogA2dpSession(metrics A2dpSessionMetrics) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.tracker.mergeA2dp(metrics) {
		logger.Debug("没有进行中的会话，A2DP 指标被丢弃")
	}
}

// LogRFCommSession 累加当前会话的 RFCOMM 收发字节数
func (l *Logger) LogRFCommSession(rxBytes, txBytes int32) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.tracker.addRFComm(rxBytes, txBytes) {
		logger.Debug("没有进行中的会话，RFCOMM 流量被丢弃")
	}
}

// LogBluetoothSessionEnd 记录会话结束
//
// 结束后的会话进入已结束列表，等待下次刷写上报。
// 没有进行中的会话时为静默空操作。
func (l *Logger) LogBluetoothSessionEnd(disconnectReason string, timestampMs int64) {
	l.mu.Lock()
	defer l.mu.Unlock()

	ok, evicted := l.tracker.end(disconnectReason, l.eventTimeLocked(timestampMs))
	if !ok {
		logger.Debug("没有进行中的会话，结束调用被忽略")
		return
	}
	l.metrics.recordSessionEnd(false, evicted)
}
