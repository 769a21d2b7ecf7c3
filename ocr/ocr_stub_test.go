//go:build !ocr

package ocr

import (
	"errors"
	"testing"
)

func TestStubClient(t *testing.T) {
	client, err := New()
	if !errors.Is(err, ErrOCRNotEnabled) {
		t.Errorf("Expected ErrOCRNotEnabled, got %v", err)
	}

	// Close is safe even on the nil client New returns alongside the error.
	if err := client.Close(); err != nil {
		t.Errorf("Close on stub client failed: %v", err)
	}

	if _, err := client.Recognize(nil, "eng", ProfileDefault); !errors.Is(err, ErrOCRNotEnabled) {
		t.Errorf("Expected ErrOCRNotEnabled from Recognize, got %v", err)
	}
	if err := client.SetDPI(300); !errors.Is(err, ErrOCRNotEnabled) {
		t.Errorf("Expected ErrOCRNotEnabled from SetDPI, got %v", err)
	}
	if _, err := client.AvailableLanguages(); !errors.Is(err, ErrOCRNotEnabled) {
		t.Errorf("Expected ErrOCRNotEnabled from AvailableLanguages, got %v", err)
	}
}
