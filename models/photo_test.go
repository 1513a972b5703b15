package models

import "testing"

func TestValidCategory(t *testing.T) {
	tests := []struct {
		category string
		valid    bool
	}{
		{"motocross", true},
		{"portrait", true},
		{"product", true},
		{"all", false},
		{"Motocross", false},
		{"", false},
	}
	for i, test := range tests {
		if got := ValidCategory(test.category); got != test.valid {
			t.Errorf("%d %q: expect %v, got %v", i, test.category, test.valid, got)
		}
	}
}
