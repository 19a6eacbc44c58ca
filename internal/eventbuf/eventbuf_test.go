package eventbuf

import (
	"sync"
	"testing"
)

// ============================================================================
// 基础功能测试
// ============================================================================

// TestBuffer_PushAndDrain 测试写入与排空
func TestBuffer_PushAndDrain(t *testing.T) {
	buf, err := New[int](10)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	for i := 0; i < 5; i++ {
		if evicted := buf.Push(i); evicted {
			t.Errorf("Push(%d) 未满却发生淘汰", i)
		}
	}

	if buf.Len() != 5 {
		t.Errorf("Len = %d, want 5", buf.Len())
	}

	out := buf.Drain()
	if len(out) != 5 {
		t.Fatalf("Drain 返回 %d 条, want 5", len(out))
	}
	for i, v := range out {
		if v != i {
			t.Errorf("out[%d] = %d, want %d", i, v, i)
		}
	}

	if buf.Len() != 0 {
		t.Errorf("Drain 后 Len = %d, want 0", buf.Len())
	}
}

// TestBuffer_EvictsOldest 测试容量占满后淘汰最旧记录
func TestBuffer_EvictsOldest(t *testing.T) {
	buf, err := New[int](50)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	// 写入 0..499，只有最后 50 条（450..499）应当保留
	for i := 0; i < 500; i++ {
		buf.Push(i)
	}

	if buf.Len() != 50 {
		t.Fatalf("Len = %d, want 50", buf.Len())
	}

	out := buf.Drain()
	for i, v := range out {
		if v != 450+i {
			t.Errorf("out[%d] = %d, want %d", i, v, 450+i)
		}
	}
}

// TestBuffer_PeekNonDestructive 测试 Peek 不清空缓冲区
func TestBuffer_PeekNonDestructive(t *testing.T) {
	buf, err := New[string](4)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	buf.Push("a")
	buf.Push("b")

	first := buf.Peek()
	second := buf.Peek()

	if len(first) != 2 || len(second) != 2 {
		t.Fatalf("Peek 返回 %d/%d 条, want 2/2", len(first), len(second))
	}
	if first[0] != "a" || first[1] != "b" {
		t.Errorf("Peek = %v, want [a b]", first)
	}
	if buf.Len() != 2 {
		t.Errorf("Peek 后 Len = %d, want 2", buf.Len())
	}
}

// TestBuffer_Clear 测试清空
func TestBuffer_Clear(t *testing.T) {
	buf, err := New[int](4)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	buf.Push(1)
	buf.Push(2)
	buf.Clear()

	if buf.Len() != 0 {
		t.Errorf("Clear 后 Len = %d, want 0", buf.Len())
	}
	if out := buf.Drain(); len(out) != 0 {
		t.Errorf("Clear 后 Drain 返回 %v, want 空", out)
	}
}

// TestBuffer_InvalidCapacity 测试非法容量
func TestBuffer_InvalidCapacity(t *testing.T) {
	if _, err := New[int](0); err == nil {
		t.Error("New(0) 未返回错误")
	}
	if _, err := New[int](-1); err == nil {
		t.Error("New(-1) 未返回错误")
	}
}

// ============================================================================
// 统计测试
// ============================================================================

// TestBuffer_Stats 测试统计计数
func TestBuffer_Stats(t *testing.T) {
	buf, err := New[int](2)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	buf.Push(1)
	buf.Push(2)
	if evicted := buf.Push(3); !evicted {
		t.Error("Push(3) 应当发生淘汰")
	}
	buf.Drain()

	stats := buf.Stats()
	if stats.TotalPushed != 3 {
		t.Errorf("TotalPushed = %d, want 3", stats.TotalPushed)
	}
	if stats.TotalDropped != 1 {
		t.Errorf("TotalDropped = %d, want 1", stats.TotalDropped)
	}
	if stats.TotalDrained != 2 {
		t.Errorf("TotalDrained = %d, want 2", stats.TotalDrained)
	}
	if stats.CurrentSize != 0 {
		t.Errorf("CurrentSize = %d, want 0", stats.CurrentSize)
	}
	if stats.Capacity != 2 {
		t.Errorf("Capacity = %d, want 2", stats.Capacity)
	}
}

// ============================================================================
// 并发测试
// ============================================================================

// TestBuffer_ConcurrentPush 测试并发写入不丢失计数
func TestBuffer_ConcurrentPush(t *testing.T) {
	buf, err := New[int](1000)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(base int) {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				buf.Push(base*100 + i)
			}
		}(g)
	}
	wg.Wait()

	if buf.Len() != 800 {
		t.Errorf("Len = %d, want 800", buf.Len())
	}
	if stats := buf.Stats(); stats.TotalPushed != 800 {
		t.Errorf("TotalPushed = %d, want 800", stats.TotalPushed)
	}
}
