package geoip

import (
	"errors"
	"testing"
)

func TestOpenWithoutPathIsDisabled(t *testing.T) {
	r, err := Open("  ")
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	if r != nil {
		t.Fatalf("Open() = %v, want nil resolver", r)
	}
	if _, err := r.CountryCode("203.0.113.1"); !errors.Is(err, ErrUnavailable) {
		t.Fatalf("CountryCode() error = %v, want ErrUnavailable", err)
	}
	if r.Lookup() != nil {
		t.Fatalf("Lookup() should be nil for a disabled resolver")
	}
	if err := r.Close(); err != nil {
		t.Fatalf("Close() error: %v", err)
	}
}

func TestOpenMissingFile(t *testing.T) {
	if _, err := Open("/nonexistent/GeoLite2-Country.mmdb"); err == nil {
		t.Fatalf("expected error for missing database")
	}
}
