package ac

import (
	"bytes"
	"strings"

	ahocorasick "github.com/anknown/ahocorasick"
)

// Matcher 基于Aho-Corasick自动机的多模式串匹配器, 构建后并发只读
type Matcher struct {
	m     *ahocorasick.Machine
	empty bool
}

// readRunes 将字符串字典转换为rune切片数组, 用于Aho-Corasick算法的输入格式要求
func readRunes(dict []string) (runes [][]rune) {
	for _, word := range dict {
		word = strings.ToLower(word)          // 转换为小写, 实现大小写不敏感匹配
		l := bytes.TrimSpace([]byte(word))    // 去除前后空白字符
		runes = append(runes, bytes.Runes(l)) // 支持中文等多字节字符
	}
	return runes
}

// New 根据关键词字典构建匹配器, 空字典返回永不命中的匹配器
func New(dict []string) (*Matcher, error) {
	if len(dict) == 0 {
		return &Matcher{empty: true}, nil
	}
	m := new(ahocorasick.Machine)
	if err := m.Build(readRunes(dict)); err != nil { // 构建AC自动机的Trie树结构
		return nil, err
	}
	return &Matcher{m: m}, nil
}

// Hit 在文本中搜索字典词
// stopImmediately为true时找到第一个匹配即返回
func (a *Matcher) Hit(text string, stopImmediately bool) (bool, []string) {
	if a.empty || len(text) == 0 {
		return false, nil
	}

	hits := a.m.MultiPatternSearch([]rune(strings.ToLower(text)), stopImmediately)
	if len(hits) == 0 {
		return false, nil
	}
	words := make([]string, 0, len(hits))
	for _, hit := range hits {
		words = append(words, string(hit.Word))
	}
	return true, words
}
