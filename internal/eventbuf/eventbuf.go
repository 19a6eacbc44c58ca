// Package eventbuf 提供有界事件缓冲区
//
// 缓冲区保存最近 N 条记录：容量占满后写入最旧的记录被淘汰，
// 写入永不失败。反压通过丢弃最旧数据解决，而不是拒绝新数据。
package eventbuf

import (
	"container/list"
	"fmt"
	"sync"
)

// Buffer 有界 FIFO 缓冲区
//
// 记录按写入顺序保存（使用链表实现 FIFO），超出容量时从队首
// 淘汰最旧的一条。所有方法并发安全。
type Buffer[T any] struct {
	mu sync.RWMutex

	// 队列数据（最旧的在队首）
	items *list.List

	// 容量上限
	capacity int

	// 统计
	totalPushed  int64
	totalDrained int64
	totalDropped int64
}

// New 创建有界缓冲区
//
// capacity 必须为正数。
func New[T any](capacity int) (*Buffer[T], error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("缓冲区容量必须大于 0: %d", capacity)
	}
	return &Buffer[T]{
		items:    list.New(),
		capacity: capacity,
	}, nil
}

// Push 写入一条记录
//
// 如果缓冲区已满，先淘汰最旧的记录再写入。
// 返回是否发生了淘汰。
func (b *Buffer[T]) Push(item T) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	evicted := false
	for b.items.Len() >= b.capacity {
		oldest := b.items.Front()
		if oldest == nil {
			break
		}
		b.items.Remove(oldest)
		b.totalDropped++
		evicted = true
	}

	b.items.PushBack(item)
	b.totalPushed++
	return evicted
}

// Drain 取出全部记录并清空缓冲区
//
// 返回按写入顺序（最旧在前）排列的记录。
func (b *Buffer[T]) Drain() []T {
	b.mu.Lock()
	defer b.mu.Unlock()

	out := b.collectLocked()
	b.totalDrained += int64(len(out))
	b.items.Init()
	return out
}

// Peek 按写入顺序读取全部记录，不清空缓冲区
func (b *Buffer[T]) Peek() []T {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return b.collectLocked()
}

// Len 返回当前记录数
func (b *Buffer[T]) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return b.items.Len()
}

// Cap 返回容量上限
func (b *Buffer[T]) Cap() int {
	return b.capacity
}

// Clear 清空缓冲区，统计计数保留
func (b *Buffer[T]) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.items.Init()
}

// Stats 返回缓冲区统计
func (b *Buffer[T]) Stats() Stats {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return Stats{
		CurrentSize:  b.items.Len(),
		Capacity:     b.capacity,
		TotalPushed:  b.totalPushed,
		TotalDrained: b.totalDrained,
		TotalDropped: b.totalDropped,
	}
}

// Stats 缓冲区统计
type Stats struct {
	CurrentSize  int
	Capacity     int
	TotalPushed  int64
	TotalDrained int64
	TotalDropped int64
}

// collectLocked 按顺序收集全部记录（需持有锁）
func (b *Buffer[T]) collectLocked() []T {
	out := make([]T, 0, b.items.Len())
	for elem := b.items.Front(); elem != nil; elem = elem.Next() {
		out = append(out, elem.Value.(T))
	}
	return out
}
