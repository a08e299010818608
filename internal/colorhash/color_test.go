package colorhash

import (
	"regexp"
	"testing"
)

var hexColor = regexp.MustCompile(`^#[0-9a-f]{6}$`)

func TestStringToColor(t *testing.T) {
	cases := map[string]string{
		"":              "#000000",
		"a":             "#610000",
		"Alyssa Flames": "#cde2b6",
		"Blaze Runner":  "#8eb6e8",
		"Pyro Pixie":    "#617499",
		"Co‑Leader":     "#6ec2aa",
		"\U0001F600":    "#630d1b",
	}
	for in, want := range cases {
		if got := StringToColor(in); got != want {
			t.Errorf("StringToColor(%q) = %s, want %s", in, got, want)
		}
	}
}

func TestStringToColorDeterministic(t *testing.T) {
	first := StringToColor("Alyssa Flames")
	second := StringToColor("Alyssa Flames")
	if first != second {
		t.Fatalf("same input gave %s and %s", first, second)
	}
	if !hexColor.MatchString(first) {
		t.Fatalf("%q is not a #rrggbb color", first)
	}
	if StringToColor("Alyssa Flames") == StringToColor("Ember Spark") {
		t.Error("different names should give different colors")
	}
}
