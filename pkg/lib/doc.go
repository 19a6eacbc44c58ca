// Package lib 包含基础设施工具库
//
// 本目录包含与聚合器核心无关的通用工具库：
//
//   - log: 日志封装
//   - proto: 指标报文的 Protobuf 定义
//
// # 与根包的关系
//
// 根包 btmetrics 实现指标聚合的业务语义，
// lib/ 只提供被其复用的基础设施，不反向依赖根包。
//
// # 使用示例
//
//	import (
//	    "github.com/dep2p/go-btmetrics/pkg/lib/log"
//	    "github.com/dep2p/go-btmetrics/pkg/lib/proto/btlog"
//	)
package lib
