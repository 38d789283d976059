package ac

import "testing"

func TestHit(t *testing.T) {
	m, err := New([]string{"违禁词", "badword"})
	if err != nil {
		t.Fatal(err)
	}

	hit, words := m.Hit("这句话包含违禁词内容", false)
	if !hit || len(words) != 1 || words[0] != "违禁词" {
		t.Fatalf("hit=%v words=%v", hit, words)
	}

	// 大小写不敏感
	hit, _ = m.Hit("contains BadWord here", false)
	if !hit {
		t.Fatal("expect case-insensitive hit")
	}

	hit, words = m.Hit("全是正常内容", false)
	if hit || words != nil {
		t.Fatalf("hit=%v words=%v", hit, words)
	}
}

func TestEmptyDict(t *testing.T) {
	m, err := New(nil)
	if err != nil {
		t.Fatal(err)
	}
	if hit, _ := m.Hit("anything", false); hit {
		t.Fatal("empty dict should never hit")
	}
}
