package adapters

import "testing"

func TestPasswordServiceHashAndVerify(t *testing.T) {
	service := NewPasswordService()

	hash, err := service.HashPassword("Str0ngPass!")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	if hash == "Str0ngPass!" {
		t.Fatal("hash must not equal the plain password")
	}

	if err := service.VerifyPassword(hash, "Str0ngPass!"); err != nil {
		t.Errorf("VerifyPassword rejected the correct password: %v", err)
	}
	if err := service.VerifyPassword(hash, "WrongPass123"); err == nil {
		t.Error("VerifyPassword accepted a wrong password")
	}
}

func TestValidatePasswordStrength(t *testing.T) {
	service := NewPasswordService()

	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{"letters and digits", "Str0ngPass", false},
		{"too short", "short1", true},
		{"letters only", "longenoughpassword", true},
		{"digits only", "1234567890", true},
		{"digits with punctuation", "12345678!", true},
		{"mixed with punctuation", "Str0ngPass!", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := service.ValidatePasswordStrength(tt.password)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePasswordStrength(%q) error = %v, wantErr %v", tt.password, err, tt.wantErr)
			}
		})
	}
}
