package strcase

import "testing"

func TestToLowerSnake(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"Email", "email"},
		{"ConfirmPassword", "confirm_password"},
		{"GroupID", "group_id"},
		{"HTTPServer", "http_server"},
		{"IDProofNumber", "id_proof_number"},
		{"already_snake", "already_snake"},
	}

	for _, tc := range tests {
		if got := ToLowerSnake(tc.in); got != tc.want {
			t.Fatalf("ToLowerSnake(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
