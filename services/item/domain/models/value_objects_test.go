package models

import (
	"errors"
	"strings"
	"testing"

	itemdomain "github.com/ghuser/wardrobe/services/item/domain"
)

func TestNewItemID(t *testing.T) {
	tests := []struct {
		name    string
		input   int64
		wantErr bool
	}{
		{"one", 1, false},
		{"large", 9_007_199_254_740_991, false},
		{"zero", 0, true},
		{"negative", -5, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := NewItemID(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NewItemID(%d) error = %v, wantErr = %v", tt.input, err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, itemdomain.ErrInvalidItemID) {
					t.Fatalf("expected INVALID_ITEM_ID, got %v", err)
				}
				return
			}
			if id.Value() != tt.input {
				t.Fatalf("expected %d, got %d", tt.input, id.Value())
			}
		})
	}
}

func TestParseItemID(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		want     int64
		wantText string
	}{
		{"integer", "12", 12, ""},
		{"padded integer", " 12 ", 12, ""},
		{"fraction", "1.5", 0, "integer"},
		{"word", "abc", 0, "integer"},
		{"empty", "", 0, "integer"},
		{"zero", "0", 0, "positive"},
		{"negative", "-3", 0, "positive"},
		{"overflow", "99999999999999999999", 0, "range"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := ParseItemID(tt.input)
			if tt.wantText == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if id.Value() != tt.want {
					t.Fatalf("expected %d, got %d", tt.want, id.Value())
				}
				return
			}
			if !errors.Is(err, itemdomain.ErrInvalidItemID) {
				t.Fatalf("expected INVALID_ITEM_ID, got %v", err)
			}
			if !strings.Contains(err.Error(), tt.wantText) {
				t.Fatalf("expected message to mention %q, got %q", tt.wantText, err.Error())
			}
		})
	}
}

func TestItemID_EqualsAndString(t *testing.T) {
	a := ReconstituteItemID(5)
	b, _ := NewItemID(5)
	if !a.Equals(b) {
		t.Fatal("expected equal ids")
	}
	if a.String() != "5" {
		t.Fatalf("unexpected String(): %q", a.String())
	}
}

func TestNewCategory(t *testing.T) {
	for _, c := range Categories() {
		t.Run(c, func(t *testing.T) {
			got, err := NewCategory(c)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.Value() != c {
				t.Fatalf("expected %q, got %q", c, got.Value())
			}
		})
	}

	for _, bad := range []string{"Outer", "TOPS", "hats", "", " tops"} {
		t.Run("rejects "+bad, func(t *testing.T) {
			_, err := NewCategory(bad)
			if !errors.Is(err, itemdomain.ErrInvalidCategory) {
				t.Fatalf("expected INVALID_CATEGORY for %q, got %v", bad, err)
			}
		})
	}
}

func TestCategories_ReturnsCopy(t *testing.T) {
	cs := Categories()
	if len(cs) != 5 {
		t.Fatalf("expected 5 categories, got %d", len(cs))
	}
	cs[0] = "mutated"
	if Categories()[0] != CategoryOuter {
		t.Fatal("Categories must not expose the internal slice")
	}
}

func TestNewColor(t *testing.T) {
	c, err := NewColor("  navy blue ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Value() != "navy blue" {
		t.Fatalf("expected trimmed color, got %q", c.Value())
	}

	if _, err := NewColor("   "); !errors.Is(err, itemdomain.ErrInvalidColor) {
		t.Fatalf("expected INVALID_COLOR, got %v", err)
	}

	other, _ := NewColor("navy blue")
	if !c.Equals(other) {
		t.Fatal("expected equal colors")
	}
}
