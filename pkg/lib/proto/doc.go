// Package proto 定义指标上报的消息格式（wire format）
//
// 本包包含按报文域划分的子包：
//
// # 子包
//
//   - btlog: 蓝牙指标报文（会话、配对、唤醒、扫描）
//
// # 职能
//
// pkg/lib/proto 的职能是定义 **跨进程传输** 的报文消息：
//   - 供上传管线与离线分析工具消费
//   - 跨语言可解析（Protobuf 编码）
//   - 需要版本兼容（新增字段只追加编号）
//   - 变更成本高（影响已落盘的历史报文）
//
// # 与根包类型的区别
//
// pkg/lib/proto 定义报文消息（wire format），
// 根包 btmetrics 定义 Go 内部数据结构（内存结构）。
//
// 内部结构在刷写快照时转换为报文消息，转换逻辑随根包维护。
//
// # 使用示例
//
//	import "github.com/dep2p/go-btmetrics/pkg/lib/proto/btlog"
//
//	msg, err := btlog.Unmarshal(frame)
//	if err != nil {
//	    return err
//	}
//	fmt.Print(btlog.MarshalText(msg))
package proto
