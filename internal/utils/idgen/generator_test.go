package idgen

import (
	"strings"
	"testing"
)

func TestGenerateSecureID(t *testing.T) {
	tests := []struct {
		name       string
		prefix     string
		length     int
		wantErr    bool
		wantPrefix string
	}{
		{
			name:       "generate request ID",
			prefix:     "req",
			length:     16,
			wantErr:    false,
			wantPrefix: "req_",
		},
		{
			name:       "generate short ID",
			prefix:     "test",
			length:     8,
			wantErr:    false,
			wantPrefix: "test_",
		},
		{
			name:       "generate long ID",
			prefix:     "test",
			length:     32,
			wantErr:    false,
			wantPrefix: "test_",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := GenerateSecureID(tt.prefix, tt.length)
			if (err != nil) != tt.wantErr {
				t.Errorf("GenerateSecureID() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr {
				if !strings.HasPrefix(got, tt.wantPrefix) {
					t.Errorf("GenerateSecureID() = %v, want prefix %v", got, tt.wantPrefix)
				}
				expectedLen := len(tt.prefix) + 1 + tt.length
				if len(got) != expectedLen {
					t.Errorf("GenerateSecureID() length = %v, want %v", len(got), expectedLen)
				}
				suffix := got[len(tt.prefix)+1:]
				for _, char := range suffix {
					if !((char >= 'a' && char <= 'z') || (char >= '0' && char <= '9')) {
						t.Errorf("GenerateSecureID() contains invalid character: %c", char)
					}
				}
			}
		})
	}
}

func TestRandomString(t *testing.T) {
	got, err := RandomString(16)
	if err != nil {
		t.Fatalf("RandomString() error = %v", err)
	}
	if len(got) != 16 {
		t.Errorf("RandomString() length = %d, want 16", len(got))
	}
	if strings.Contains(got, "_") {
		t.Errorf("RandomString() = %q, must not contain underscore", got)
	}

	other, err := RandomString(16)
	if err != nil {
		t.Fatalf("RandomString() error = %v", err)
	}
	if got == other {
		t.Errorf("RandomString() returned the same value twice: %q", got)
	}
}
