// Package main 提供 btmetrics-decode 命令行入口
//
// 读取聚合器刷写的二进制报文并以调试文本格式输出，
// 用于人工排查采集到的指标内容。
package main

import (
	"encoding/base64"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dep2p/go-btmetrics/pkg/lib/proto/btlog"
)

// ═══════════════════════════════════════════════════════════════════════════
// 命令行参数
// ═══════════════════════════════════════════════════════════════════════════
var (
	inPath   = flag.String("in", "-", "输入文件路径（- = 标准输入）")
	isBase64 = flag.Bool("base64", false, "输入为 Base64 编码的报文")
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "错误: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	flag.Parse()

	data, err := readInput(*inPath)
	if err != nil {
		return err
	}
	if *isBase64 {
		decoded, err := base64.StdEncoding.DecodeString(strings.TrimSpace(string(data)))
		if err != nil {
			return fmt.Errorf("解码 Base64 输入失败: %w", err)
		}
		data = decoded
	}

	msg, err := btlog.Unmarshal(data)
	if err != nil {
		return fmt.Errorf("解析报文失败: %w", err)
	}
	fmt.Print(btlog.MarshalText(msg))
	return nil
}

// readInput 读取输入内容，路径为 - 时读标准输入
func readInput(path string) ([]byte, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("读取标准输入失败: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("读取输入文件失败: %w", err)
	}
	return data, nil
}
