package services

import (
	"testing"

	"bomcalc/pkg/domain/entities"
)

func TestDefaultClassifier(t *testing.T) {
	tests := []struct {
		code entities.MaterialCode
		want entities.Classification
	}{
		{"1001", entities.Raw},
		{"2050", entities.Manufactured},
		{"3999", entities.Finished},
		{"9001", entities.Unknown},
		{"A100", entities.Unknown},
		{"", entities.Unknown},
		{"  1001  ", entities.Raw},
	}

	for _, tt := range tests {
		if got := DefaultClassifier(tt.code); got != tt.want {
			t.Errorf("DefaultClassifier(%q) = %v, want %v", tt.code, got, tt.want)
		}
	}
}

func TestNewPrefixClassifier_AlternateScheme(t *testing.T) {
	classify := NewPrefixClassifier('R', 'M', 'F')

	if got := classify("R-100"); got != entities.Raw {
		t.Errorf("classify(R-100) = %v, want Raw", got)
	}
	if got := classify("M-100"); got != entities.Manufactured {
		t.Errorf("classify(M-100) = %v, want Manufactured", got)
	}
	if got := classify("1001"); got != entities.Unknown {
		t.Errorf("classify(1001) = %v, want Unknown under alternate scheme", got)
	}
}
