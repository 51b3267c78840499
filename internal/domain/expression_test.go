package domain_test

import (
	"testing"

	"wordcalc/internal/domain"
)

func TestExpression_AppendTranslatesGlyphs(t *testing.T) {
	var e domain.Expression
	e = e.Append("12").Append("×").Append("3").Append("÷").Append("4")
	if got, want := e.String(), "12*3/4"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
	if got, want := e.Display(), "12×3÷4"; got != want {
		t.Fatalf("display %q, want %q", got, want)
	}
}

func TestExpression_AppendAfterErrorStartsFresh(t *testing.T) {
	e := domain.Expression("2++").Fail()
	if !e.IsError() {
		t.Fatal("expected error state")
	}
	e = e.Append("7")
	if got, want := e.String(), "7"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestExpression_ClearAndReplace(t *testing.T) {
	e := domain.Expression("1+2").Clear()
	if !e.IsEmpty() {
		t.Fatal("expected empty after clear")
	}
	e = e.Replace("8÷2")
	if got, want := e.String(), "8/2"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}
