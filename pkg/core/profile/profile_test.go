package profile

import "testing"

func TestNumber(t *testing.T) {
	p := Profile{
		"income":  1200000.0,
		"age":     32,
		"savings": "45,000",
		"bad":     "not a number",
		"nilval":  nil,
	}

	if got := Number(p, "income", 0); got != 1200000 {
		t.Errorf("float64 field = %v, want 1200000", got)
	}
	if got := Number(p, "age", 0); got != 32 {
		t.Errorf("int field = %v, want 32", got)
	}
	if got := Number(p, "savings", 0); got != 45000 {
		t.Errorf("comma string field = %v, want 45000", got)
	}
	if got := Number(p, "bad", 7); got != 7 {
		t.Errorf("unparseable string should fall to default, got %v", got)
	}
	if got := Number(p, "nilval", 7); got != 7 {
		t.Errorf("nil value should fall to default, got %v", got)
	}
	if got := Number(p, "missing", 7); got != 7 {
		t.Errorf("missing key should fall to default, got %v", got)
	}
}

func TestText(t *testing.T) {
	p := Profile{"city": "  Mumbai ", "age": 32}
	if got := Text(p, "city", ""); got != "Mumbai" {
		t.Errorf("expected trimmed Mumbai, got %q", got)
	}
	if got := Text(p, "age", "unknown"); got != "unknown" {
		t.Errorf("non-string value should fall to default, got %q", got)
	}
	if got := Text(p, "missing", "unknown"); got != "unknown" {
		t.Errorf("missing key should fall to default, got %q", got)
	}
}

func TestAge(t *testing.T) {
	if got := Age(Profile{"age": 45}); got != 45 {
		t.Errorf("Age = %d, want 45", got)
	}
	if got := Age(Profile{}); got != DefaultAge {
		t.Errorf("missing age = %d, want %d", got, DefaultAge)
	}
	if got := Age(Profile{"age": -3}); got != DefaultAge {
		t.Errorf("negative age = %d, want %d", got, DefaultAge)
	}
	if got := Age(Profile{"age": 0}); got != DefaultAge {
		t.Errorf("zero age = %d, want %d", got, DefaultAge)
	}
}

func TestIncome(t *testing.T) {
	if got := Income(Profile{"income": 500000.0}); got != 500000 {
		t.Errorf("Income = %v, want 500000", got)
	}
	if got := Income(Profile{"income": -100.0}); got != 0 {
		t.Errorf("negative income = %v, want 0", got)
	}
	if got := Income(Profile{}); got != 0 {
		t.Errorf("missing income = %v, want 0", got)
	}
}

func TestFormatINR(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{150000, "150,000"},
		{1200000, "1,200,000"},
		{1234567.89, "1,234,567"},
		{-45000, "-45,000"},
	}
	for _, c := range cases {
		if got := FormatINR(c.in); got != c.want {
			t.Errorf("FormatINR(%v) = %q, want %q", c.in, got, c.want)
		}
	}
}
