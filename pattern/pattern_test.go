package pattern

import "testing"

func TestEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b Pattern
		want bool
	}{
		{"same byte", Byte('a'), Byte('a'), true},
		{"different byte", Byte('a'), Byte('b'), false},
		{"same range", Interval('a', 'z'), Interval('a', 'z'), true},
		{"byte vs range", Byte('a'), Interval('a', 'a'), false},
		{"nested concat", Concat(Byte('a'), Byte('b')), Concat(Byte('a'), Byte('b')), true},
		{"concat order matters", Concat(Byte('a'), Byte('b')), Concat(Byte('b'), Byte('a')), false},
		{"alt commutes structurally but not as data", Alt(Byte('a'), Byte('b')), Alt(Byte('b'), Byte('a')), false},
		{"star vs plus", Star(Byte('a')), Plus(Byte('a')), false},
		{"between bounds", Between(1, 3, Byte('a')), Between(1, 3, Byte('a')), true},
		{"between bounds differ", Between(1, 3, Byte('a')), Between(1, 4, Byte('a')), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Equal(tt.a, tt.b); got != tt.want {
				t.Errorf("Equal(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestIsEmptyRange(t *testing.T) {
	if Interval('z', 'a').IsEmptyRange() != true {
		t.Errorf("Interval('z','a') should be empty")
	}
	if Interval('a', 'z').IsEmptyRange() != false {
		t.Errorf("Interval('a','z') should not be empty")
	}
	if Byte('a').IsEmptyRange() != false {
		t.Errorf("Byte should never be reported empty")
	}
}

func TestAtMostPanicsBelowOne(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("expected panic for AtMostN(0, ...)")
		} else if _, ok := r.(*ConstraintError); !ok {
			t.Fatalf("expected *ConstraintError, got %T", r)
		}
	}()
	AtMostN(0, Byte('a'))
}

func TestBetweenPanicsWhenNGreaterThanM(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("expected panic for Between(3, 1, ...)")
		}
	}()
	Between(3, 1, Byte('a'))
}

func TestLiteralIsByteSequence(t *testing.T) {
	got := Literal("ab")
	want := Concat(Byte('a'), Byte('b'))
	if !Equal(got, want) {
		t.Errorf("Literal(%q) = %v, want %v", "ab", got, want)
	}
}

func TestPredefinedClasses(t *testing.T) {
	lo, hi := Digit().Bounds()
	if lo != '0' || hi != '9' {
		t.Errorf("Digit() bounds = [%c,%c], want [0,9]", lo, hi)
	}
	lo, hi = AnyByte().Bounds()
	if lo != 0 || hi != 255 {
		t.Errorf("AnyByte() bounds = [%d,%d], want [0,255]", lo, hi)
	}
}
