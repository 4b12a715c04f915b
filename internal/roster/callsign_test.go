package roster

import "testing"

func TestValidateCallsign_Valid(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"ASX001", "ASX001"},
		{"asx004", "ASX004"},
		{"  Asx999 ", "ASX999"},
	}

	for _, tc := range cases {
		got, err := ValidateCallsign(tc.in)
		if err != nil {
			t.Errorf("ValidateCallsign(%q): unexpected error %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ValidateCallsign(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestValidateCallsign_Empty(t *testing.T) {
	_, err := ValidateCallsign("   ")
	if !IsKind(err, ErrKindRequiredField) {
		t.Errorf("expected RequiredFieldError, got %v", err)
	}
}

func TestValidateCallsign_Format(t *testing.T) {
	invalid := []string{
		"ASX1",
		"ASX0001",
		"ASX01a",
		"ABC001",
		"001ASX",
		"ASX 01",
		"XASX001",
		"ASX001X",
	}

	for _, in := range invalid {
		_, err := ValidateCallsign(in)
		if !IsKind(err, ErrKindFormat) {
			t.Errorf("ValidateCallsign(%q): expected FormatError, got %v", in, err)
		}
	}
}

func TestValidateCallsign_ErrorCarriesField(t *testing.T) {
	_, err := ValidateCallsign("nope")
	re, ok := err.(*Error)
	if !ok {
		t.Fatalf("expected *Error, got %T", err)
	}
	if re.Field != "callsign" {
		t.Errorf("expected field callsign, got %q", re.Field)
	}
}

func TestValidatePilotFields(t *testing.T) {
	if err := ValidatePilotFields("Marco", "Rossi", 42); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	if err := ValidatePilotFields("", "Rossi", 0); !IsKind(err, ErrKindRequiredField) {
		t.Errorf("expected RequiredFieldError for empty name, got %v", err)
	}

	if err := ValidatePilotFields("Marco", "  ", 0); !IsKind(err, ErrKindRequiredField) {
		t.Errorf("expected RequiredFieldError for blank surname, got %v", err)
	}

	if err := ValidatePilotFields("Marco", "Rossi", -1); !IsKind(err, ErrKindFormat) {
		t.Errorf("expected FormatError for negative old_flights, got %v", err)
	}
}
