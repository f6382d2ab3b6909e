package bank

import (
	"os"
	"path/filepath"
	"testing"
)

func writeBank(t *testing.T, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "bank.json")
	if err := os.WriteFile(p, []byte(content), 0644); err != nil {
		t.Fatalf("write bank: %v", err)
	}
	return p
}

func TestSelect_GroupRotationDeterministic(t *testing.T) {
	p := writeBank(t, `{"groups":{
		"alignment": ["a1", "a2"],
		"systems":   ["s1", "s2", "s3"],
		"momentum":  ["m1"]
	}}`)
	b, err := Load(p)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	// 第 10 天：10 mod 3 = 1 → 书写顺序中的第二组 systems
	sel := b.Select(10, func(n int) int { return 0 })
	if sel.Group != "systems" {
		t.Fatalf("group = %q, want systems", sel.Group)
	}
	if sel.Text != "s1" {
		t.Fatalf("text = %q, want s1", sel.Text)
	}
	// 组内挑选走注入的 pick
	sel = b.Select(10, func(n int) int { return n - 1 })
	if sel.Text != "s3" {
		t.Fatalf("text = %q, want s3", sel.Text)
	}
}

func TestLoad_LegacyDailyShape(t *testing.T) {
	p := writeBank(t, `{"daily":["one","two"]}`)
	b, err := Load(p)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	sel := b.Select(7, func(n int) int { return 1 })
	if sel.Group != "" {
		t.Fatalf("flat bank should have no group, got %q", sel.Group)
	}
	if sel.Text != "two" {
		t.Fatalf("text = %q, want two", sel.Text)
	}
}

func TestLoad_EmptyGroupExcludedFromRotation(t *testing.T) {
	p := writeBank(t, `{"groups":{"a":["x"],"b":[]}}`)
	b, err := Load(p)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got := b.Groups(); len(got) != 1 || got[0] != "a" {
		t.Fatalf("rotation order = %v, want [a]", got)
	}
	for day := 0; day < 5; day++ {
		if sel := b.Select(day, func(n int) int { return 0 }); sel.Group != "a" {
			t.Fatalf("day %d selected group %q", day, sel.Group)
		}
	}
}

func TestLoadOrFallback(t *testing.T) {
	cases := map[string]string{
		"missing":    filepath.Join(t.TempDir(), "nope.json"),
		"malformed":  writeBank(t, `{"daily": [`),
		"emptyList":  writeBank(t, `{"daily": []}`),
		"emptyGroup": writeBank(t, `{"groups": {"a": []}}`),
	}
	for name, path := range cases {
		b, fellBack := LoadOrFallback(path)
		if !fellBack {
			t.Fatalf("%s: expected fallback", name)
		}
		sel := b.Select(3, nil)
		if sel.Text == "" {
			t.Fatalf("%s: fallback selection is empty", name)
		}
		if sel.Group != "" {
			t.Fatalf("%s: fallback should have no group, got %q", name, sel.Group)
		}
	}

	good := writeBank(t, `{"daily":["ok"]}`)
	if _, fellBack := LoadOrFallback(good); fellBack {
		t.Fatal("valid bank should not fall back")
	}
}

func TestFallback_NeverEmpty(t *testing.T) {
	b := Fallback()
	for day := 0; day < 10; day++ {
		for i := 0; i < len(builtin); i++ {
			i := i
			if sel := b.Select(day, func(n int) int { return i % n }); sel.Text == "" {
				t.Fatalf("empty text at day=%d i=%d", day, i)
			}
		}
	}
}
