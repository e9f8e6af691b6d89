package lock

import "testing"

const sampleLock = `[[package]]
name = "requests"
version = "2.31.0"
description = "Python HTTP for Humans."

[[package]]
name = "Click"
version = "8.1.7"
description = "Composable command line interface toolkit"

[metadata]
lock-version = "2.0"
python-versions = "^3.11"
content-hash = "abc123"
`

func TestParse(t *testing.T) {
	lf, err := Parse([]byte(sampleLock))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(lf.Packages) != 2 {
		t.Fatalf("got %d packages, want 2", len(lf.Packages))
	}
	if lf.Metadata.ContentHash != "abc123" {
		t.Errorf("content hash = %q", lf.Metadata.ContentHash)
	}
}

func TestPackageLookup(t *testing.T) {
	lf, err := Parse([]byte(sampleLock))
	if err != nil {
		t.Fatal(err)
	}

	pkg := lf.Package("requests")
	if pkg == nil || pkg.Version != "2.31.0" {
		t.Errorf("requests = %+v, want 2.31.0", pkg)
	}

	// Lookup is case-insensitive, matching name normalization.
	if lf.Package("click") == nil {
		t.Error("click should be found regardless of case")
	}

	if lf.Package("absent") != nil {
		t.Error("absent package should return nil")
	}
}
