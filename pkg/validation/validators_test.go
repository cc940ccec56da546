package validation

import (
	"testing"
	"time"
)

func TestIsFullName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"two words", "Maria Silva", true},
		{"three words", "Joao da Silva", true},
		{"single word", "Maria", false},
		{"empty", "", false},
		{"whitespace only", "   ", false},
		{"too short", "A B", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsFullName(tt.input); got != tt.want {
				t.Errorf("IsFullName(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestIsNationalInsuranceNumber(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"AB123456C", true},
		{"ab 123456 c", true},
		{"AB 12 34 56 C", true},
		{"DB123456C", false}, // D not allowed as first letter
		{"AO123456C", false}, // O not allowed as second letter
		{"AB123456E", false}, // suffix must be A-D
		{"AB12345C", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := IsNationalInsuranceNumber(tt.input); got != tt.want {
			t.Errorf("IsNationalInsuranceNumber(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestIsVATNumber(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"", true}, // optional
		{"GB123456789", true},
		{"123456789", true},
		{"123456789012", true},
		{"GB12345", false},
		{"abc", false},
	}
	for _, tt := range tests {
		if got := IsVATNumber(tt.input); got != tt.want {
			t.Errorf("IsVATNumber(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestBankFieldFormats(t *testing.T) {
	if !IsSortCode("12-34-56") || !IsSortCode("123456") {
		t.Error("expected valid sort codes to pass")
	}
	if IsSortCode("12-34-5") || IsSortCode("ab-cd-ef") {
		t.Error("expected invalid sort codes to fail")
	}
	if !IsAccountNumber("12345678") {
		t.Error("expected 8-digit account number to pass")
	}
	if IsAccountNumber("1234567") || IsAccountNumber("123456789") {
		t.Error("expected wrong-length account numbers to fail")
	}
	if !IsUTRNumber("1234567890") || IsUTRNumber("12345") {
		t.Error("UTR must be exactly 10 digits")
	}
}

func TestIsUKPostcode(t *testing.T) {
	valid := []string{"E3 3JG", "RH12 3GG", "BH15 2AA", "sw1a1aa"}
	for _, p := range valid {
		if !IsUKPostcode(p) {
			t.Errorf("IsUKPostcode(%q) = false, want true", p)
		}
	}
	invalid := []string{"", "12345", "ABCDE"}
	for _, p := range invalid {
		if IsUKPostcode(p) {
			t.Errorf("IsUKPostcode(%q) = true, want false", p)
		}
	}
}

func TestIsAdultBirthDate(t *testing.T) {
	now := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"clearly adult", "1990-01-01", true},
		{"18th birthday today", "2007-06-15", true},
		{"18th birthday tomorrow", "2007-06-16", false},
		{"minor", "2010-01-01", false},
		{"garbage", "not-a-date", false},
		{"empty", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsAdultBirthDate(tt.input, now); got != tt.want {
				t.Errorf("IsAdultBirthDate(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestIsAllowedUpload(t *testing.T) {
	allowed := []string{"image/jpeg", "image/png", "application/pdf"}

	if !IsAllowedUpload("image/jpeg", 1024, 10*1024*1024, allowed) {
		t.Error("expected jpeg within limit to pass")
	}
	if IsAllowedUpload("image/jpeg", 11*1024*1024, 10*1024*1024, allowed) {
		t.Error("expected oversized file to fail")
	}
	if IsAllowedUpload("text/html", 1024, 10*1024*1024, allowed) {
		t.Error("expected disallowed content type to fail")
	}
	if IsAllowedUpload("image/png", 0, 10*1024*1024, allowed) {
		t.Error("expected empty file to fail")
	}
}
