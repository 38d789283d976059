package util

import (
	"github.com/xh-polaris/aiagent-core-api/biz/application/dto/basic"
)

// Success 返回成功的basic.Response指针
func Success() *basic.Response {
	return &basic.Response{
		Code: 200,
		Msg:  "success",
	}
}

// TruncateRunes 按rune截断字符串, 不会截断多字节字符
func TruncateRunes(s string, max int) string {
	if max <= 0 {
		return ""
	}
	rs := []rune(s)
	if len(rs) <= max {
		return s
	}
	return string(rs[:max])
}

// ChunkRunes 将文本按rune边界切为定长片段, 顺序拼接各片段可还原原文
// size不合法时按单片返回
func ChunkRunes(s string, size int) []string {
	if s == "" {
		return nil
	}
	if size <= 0 {
		return []string{s}
	}
	rs := []rune(s)
	parts := make([]string, 0, (len(rs)+size-1)/size)
	for start := 0; start < len(rs); start += size {
		end := start + size
		if end > len(rs) {
			end = len(rs)
		}
		parts = append(parts, string(rs[start:end]))
	}
	return parts
}
