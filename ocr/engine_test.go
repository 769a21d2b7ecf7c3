package ocr

import "testing"

func TestProfileSettings(t *testing.T) {
	if got := ProfileDefault.Settings().PSM; got != 6 {
		t.Errorf("Expected default PSM 6, got %d", got)
	}
	if got := ProfileSingleLine.Settings().PSM; got != 7 {
		t.Errorf("Expected single_line PSM 7, got %d", got)
	}
	if got := ProfileSparseText.Settings().PSM; got != 11 {
		t.Errorf("Expected sparse_text PSM 11, got %d", got)
	}
}

func TestProfileSettings_DocumentPreservesSpaces(t *testing.T) {
	settings := ProfileDocument.Settings()

	if settings.Variables["preserve_interword_spaces"] != "1" {
		t.Errorf("Expected preserve_interword_spaces=1, got %v", settings.Variables)
	}
}

func TestProfileSettings_Whitelists(t *testing.T) {
	numbers := ProfileNumbersOnly.Settings()
	if numbers.Variables["tessedit_char_whitelist"] != "0123456789" {
		t.Errorf("Unexpected numbers whitelist: %v", numbers.Variables)
	}

	letters := ProfileLettersOnly.Settings()
	if letters.Variables["tessedit_char_whitelist"] == "" {
		t.Error("Expected letters whitelist to be set")
	}
}

func TestProfileSettings_UnknownFallsBack(t *testing.T) {
	unknown := Profile("no_such_profile")

	if unknown.Known() {
		t.Error("Expected unknown profile to be unknown")
	}
	if got := unknown.Settings(); got.PSM != ProfileDefault.Settings().PSM {
		t.Errorf("Expected default settings for unknown profile, got %+v", got)
	}
}

func TestProfiles_SortedAndComplete(t *testing.T) {
	profiles := Profiles()

	if len(profiles) != len(profileSettings) {
		t.Fatalf("Expected %d profiles, got %d", len(profileSettings), len(profiles))
	}
	for i := 1; i < len(profiles); i++ {
		if profiles[i-1] >= profiles[i] {
			t.Errorf("Profiles not sorted: %s before %s", profiles[i-1], profiles[i])
		}
	}

	found := false
	for _, p := range profiles {
		if p == ProfileDefault {
			found = true
		}
	}
	if !found {
		t.Error("Expected default profile in Profiles()")
	}
}
