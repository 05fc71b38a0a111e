package evaluator

import (
	"errors"
	"testing"

	"github.com/cours-de-latin/macronizer/internal/macronizer"
)

func TestEvaluatePartialAccuracy(t *testing.T) {
	res, err := Evaluate("canō", "cano")
	if err != nil {
		t.Fatal(err)
	}
	if res.Accuracy != 0.5 {
		t.Errorf("Accuracy = %v, want 0.5", res.Accuracy)
	}
	want := `can<span class="wrong">o</span>`
	if res.HTML != want {
		t.Errorf("HTML = %q, want %q", res.HTML, want)
	}
}

func TestEvaluatePerfectMatch(t *testing.T) {
	res, err := Evaluate("canō", "canō")
	if err != nil {
		t.Fatal(err)
	}
	if res.Accuracy != 1.0 {
		t.Errorf("Accuracy = %v, want 1.0", res.Accuracy)
	}
}

func TestEvaluateTextMismatchIsInvalidArgument(t *testing.T) {
	_, err := Evaluate("arma", "arms")
	if err == nil {
		t.Fatal("expected an error")
	}
	var iae *macronizer.InvalidArgumentError
	if !errors.As(err, &iae) {
		t.Errorf("expected InvalidArgumentError, got %T: %v", err, err)
	}
}
