package types

import (
	"errors"
	"testing"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr error
	}{
		{
			name:    "empty library returns ErrLibraryEmpty",
			config:  Config{Library: "", DataDir: "/tmp/data"},
			wantErr: ErrLibraryEmpty,
		},
		{
			name:    "nested app dir name returns ErrAppDirNameInvalid",
			config:  Config{Library: DefaultLibrary, AppDirName: "a/b"},
			wantErr: ErrAppDirNameInvalid,
		},
		{
			name:    "dot-dot app dir name returns ErrAppDirNameInvalid",
			config:  Config{Library: DefaultLibrary, AppDirName: ".."},
			wantErr: ErrAppDirNameInvalid,
		},
		{
			name:    "valid default config",
			config:  Config{Library: DefaultLibrary, AppDirName: DefaultAppDirName},
			wantErr: nil,
		},
		{
			name:    "empty identity fields are valid",
			config:  Config{Library: DefaultLibrary, Manufacturer: "", Model: "", BundleID: ""},
			wantErr: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("expected nil error, got %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("expected error %v, got nil", tt.wantErr)
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected error %v, got %v", tt.wantErr, err)
			}
		})
	}
}
