package classifier

import "testing"

func TestMaskValue_EmailAddressKeepsOneCharAndTLD(t *testing.T) {
	got := MaskValue("EMAIL_ADDRESS", "jsmith@example.com")
	want := "j*****@*******.com"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestMaskValue_OtherEmailKeepsTwoChars(t *testing.T) {
	got := MaskValue("EMAIL_WORK", "jsmith@example.com")
	want := "js*****@example.com"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestMaskValue_USSNShortKeepsOneLeading(t *testing.T) {
	got := MaskValue("US_SSN", "1234")
	want := "1***"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestMaskValue_USSNMediumKeepsTwoLeading(t *testing.T) {
	got := MaskValue("US_SSN", "123456")
	want := "12****"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestMaskValue_USSNLongKeepsLeadingAndTrailing(t *testing.T) {
	got := MaskValue("US_SSN", "123-45-6789")
	want := "12*-**-**89"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestMaskValue_DefaultMasksAllAlphanumerics(t *testing.T) {
	got := MaskValue("CREDIT_CARD", "4111-2222-3333-4444")
	want := "****-****-****-****"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
