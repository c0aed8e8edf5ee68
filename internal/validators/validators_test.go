package validators

import "testing"

func TestIsPresent(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"hello", true},
		{"  x  ", true},
		{"", false},
		{"   ", false},
		{"\t\n", false},
	}
	for _, tt := range tests {
		if got := IsPresent(tt.value); got != tt.want {
			t.Errorf("IsPresent(%q) = %v, want %v", tt.value, got, tt.want)
		}
	}
}

func TestIsValidUserTitle(t *testing.T) {
	for _, valid := range []string{"Mr", "Mrs", "Miss"} {
		if !IsValidUserTitle(valid) {
			t.Errorf("IsValidUserTitle(%q) = false, want true", valid)
		}
	}
	for _, invalid := range []string{"mr", "Dr", "MR", "", "Ms"} {
		if IsValidUserTitle(invalid) {
			t.Errorf("IsValidUserTitle(%q) = true, want false", invalid)
		}
	}
}

func TestIsValidPhone(t *testing.T) {
	tests := []struct {
		phone string
		want  bool
	}{
		{"9123456780", true},
		{"6000000000", true},
		{"5123456780", false}, // leading digit below 6
		{"912345678", false},  // 9 digits
		{"91234567801", false},
		{"912345678a", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := IsValidPhone(tt.phone); got != tt.want {
			t.Errorf("IsValidPhone(%q) = %v, want %v", tt.phone, got, tt.want)
		}
	}
}

func TestIsValidEmail(t *testing.T) {
	tests := []struct {
		email string
		want  bool
	}{
		{"a@x.com", true},
		{"first.last@example.co", true},
		{"user-name@sub.domain.org", true},
		{"noat.example.com", false},
		{"user@", false},
		{"@example.com", false},
		{"user@example", false},
	}
	for _, tt := range tests {
		if got := IsValidEmail(tt.email); got != tt.want {
			t.Errorf("IsValidEmail(%q) = %v, want %v", tt.email, got, tt.want)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	tests := []struct {
		date string
		want bool
	}{
		{"2024-01-15", true},
		{"2024/01/15", true},
		// The check is shape-only: calendar-invalid dates pass.
		{"2024-13-99", true},
		{"24-01-15", false},
		{"2024-1-15", false},
		{"2024-01-15T00:00", false},
		{"2024.01.15", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := IsValidDate(tt.date); got != tt.want {
			t.Errorf("IsValidDate(%q) = %v, want %v", tt.date, got, tt.want)
		}
	}
}

func TestIsValidPassword(t *testing.T) {
	tests := []struct {
		password string
		want     bool
	}{
		{"12345678", true},
		{"123456789012345", true},
		{"1234567", false},
		{"1234567890123456", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := IsValidPassword(tt.password); got != tt.want {
			t.Errorf("IsValidPassword(%q) = %v, want %v", tt.password, got, tt.want)
		}
	}
}

func TestIsValidRating(t *testing.T) {
	for _, valid := range []int{1, 2, 3, 4, 5} {
		if !IsValidRating(valid) {
			t.Errorf("IsValidRating(%d) = false, want true", valid)
		}
	}
	for _, invalid := range []int{0, -1, 6, 100} {
		if IsValidRating(invalid) {
			t.Errorf("IsValidRating(%d) = true, want false", invalid)
		}
	}
}

func TestIsValidID(t *testing.T) {
	if !IsValidID("6e1cdbbf-47d9-4b34-97b9-9a906c82db57") {
		t.Error("well-formed uuid rejected")
	}
	for _, invalid := range []string{"", "123", "not-a-uuid", "6e1cdbbf47d94b3497b9"} {
		if IsValidID(invalid) {
			t.Errorf("IsValidID(%q) = true, want false", invalid)
		}
	}
}
