package btmetrics

// 独立事件记录接口
//
// 每类事件追加到各自的有界缓冲区，缓冲区占满时淘汰最旧的记录。
// timestampMs 为 0 时以注入时间源的当前时刻代替。

// LogPairEvent 记录一次配对事件
//
// disconnectReason 为 HCI 错误码，原样透传；越界取值不做校验。
func (l *Logger) LogPairEvent(disconnectReason int32, timestampMs int64, deviceClass int32, deviceType DeviceType) {
	l.mu.Lock()
	defer l.mu.Unlock()

	evicted := l.pairEvents.Push(PairEvent{
		DisconnectReason: disconnectReason,
		TimestampMs:      l.eventTimeLocked(timestampMs),
		DeviceClass:      deviceClass,
		DeviceType:       deviceType,
	})
	l.metrics.recordEvent(kindPair, evicted)
}

// LogWakeEvent 记录一次唤醒锁获取或释放
func (l *Logger) LogWakeEvent(eventType WakeEventType, requestor, name string, timestampMs int64) {
	l.mu.Lock()
	defer l.mu.Unlock()

	evicted := l.wakeEvents.Push(WakeEvent{
		Type:        eventType,
		Requestor:   requestor,
		Name:        name,
		TimestampMs: l.eventTimeLocked(timestampMs),
	})
	l.metrics.recordEvent(kindWake, evicted)
}

// LogScanEvent 记录一次扫描开始或结束
func (l *Logger) LogScanEvent(isStart bool, initiator string, tech ScanTechnologyType, numResults int32, timestampMs int64) {
	l.mu.Lock()
	defer l.mu.Unlock()

	eventType := ScanEventStop
	if isStart {
		eventType = ScanEventStart
	}
	evicted := l.scanEvents.Push(ScanEvent{
		Type:        eventType,
		Initiator:   initiator,
		Tech:        tech,
		NumResults:  numResults,
		TimestampMs: l.eventTimeLocked(timestampMs),
	})
	l.metrics.recordEvent(kindScan, evicted)
}
