package validator

import (
	"testing"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidEmail(t *testing.T) {
	valid := []string{"test@example.com", "user.name+1@domain.co", "a@b.cd"}
	invalid := []string{"test@", "@example.com", "test@.com", "test@com", "test@domain", " ", ""}
	for _, email := range valid {
		if !IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = false, want true", email)
		}
	}
	for _, email := range invalid {
		if IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = true, want false", email)
		}
	}
}

func TestIsValidPhoneNumber(t *testing.T) {
	valid := []string{"+1234567890", "1234567890", "+123456789012345", "0123456789"}
	invalid := []string{"12345", "abcdefghij", "+12 345 67890", "", "+1234567890123456789"}
	for _, phone := range valid {
		if !IsValidPhoneNumber(phone) {
			t.Errorf("IsValidPhoneNumber(%q) = false, want true", phone)
		}
	}
	for _, phone := range invalid {
		if IsValidPhoneNumber(phone) {
			t.Errorf("IsValidPhoneNumber(%q) = true, want false", phone)
		}
	}
}

func TestIsValidBarcode(t *testing.T) {
	valid := []string{"STAFF-ABC123DEF456", "STAFF-000000000000", "STAFF-FFFFFFFFFFFF"}
	invalid := []string{
		"STAFF-abc123def456", // lowercase
		"STAFF-ABC123",       // too short
		"STAFF-ABC123DEF4567",
		"EMP-ABC123DEF456",
		"",
	}
	for _, code := range valid {
		if !IsValidBarcode(code) {
			t.Errorf("IsValidBarcode(%q) = false, want true", code)
		}
	}
	for _, code := range invalid {
		if IsValidBarcode(code) {
			t.Errorf("IsValidBarcode(%q) = true, want false", code)
		}
	}
}

func TestSlugify(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"Human Resources", "human-resources"},
		{"Research and Development", "research-and-development"},
		{"IT  &  Support", "it-support"},
		{"Sales", "sales"},
		{"  Finance  ", "finance"},
	}
	for _, c := range cases {
		if got := Slugify(c.input); got != c.want {
			t.Errorf("Slugify(%q) = %q, want %q", c.input, got, c.want)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	if _, ok := IsValidDate("2024-01-10"); !ok {
		t.Error("expected 2024-01-10 to be valid")
	}
	if _, ok := IsValidDate("10/01/2024"); ok {
		t.Error("expected 10/01/2024 to be invalid")
	}
}
