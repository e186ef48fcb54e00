package token

import (
	"reflect"
	"testing"
)

func TestTokenizeSimple(t *testing.T) {
	got := Tokenize("add x0, x1, x2")
	want := []string{"add", "x0", "x1", "x2"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Tokenize = %v, want %v", got, want)
	}
}

func TestTokenizeConditionCode(t *testing.T) {
	got := Tokenize("b.eq loop")
	want := []string{"b", "eq", "loop"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Tokenize = %v, want %v", got, want)
	}
}

func TestTokenizeIntDirective(t *testing.T) {
	got := Tokenize(".int 0x8A000000")
	want := []string{"int", "0x8A000000"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Tokenize = %v, want %v", got, want)
	}
}

func TestTokenizeKeepsBrackets(t *testing.T) {
	got := Tokenize("ldr x0, [x1, #8]!")
	want := []string{"ldr", "x0", "[x1", "#8]!"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Tokenize = %v, want %v", got, want)
	}
}

func TestTokenizeEmptyLine(t *testing.T) {
	if got := Tokenize(""); len(got) != 0 {
		t.Errorf("Tokenize(\"\") = %v, want empty", got)
	}
}
