/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package object

import "testing"

func TestParseOIDNormalizes(t *testing.T) {
	oid, err := ParseOID("  A1B2C3D4E5F6789012345678901234567890ABCD  ")
	if err != nil {
		t.Fatalf("ParseOID: %v", err)
	}
	if string(oid) != "a1b2c3d4e5f6789012345678901234567890abcd" {
		t.Errorf("got %q", oid)
	}
}

func TestParseOIDEmpty(t *testing.T) {
	oid, err := ParseOID("")
	if err != nil {
		t.Fatalf("ParseOID(\"\"): %v", err)
	}
	if !oid.IsZero() {
		t.Error("expected zero OID")
	}
}

func TestParseOIDRejectsBadLength(t *testing.T) {
	if _, err := ParseOID("abc123"); err == nil {
		t.Error("expected error for short hex string")
	}
}

func TestParseOIDRejectsNonHex(t *testing.T) {
	if _, err := ParseOID("zzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzz"); err == nil {
		t.Error("expected error for non-hex characters")
	}
}

func TestOIDIsNull(t *testing.T) {
	if !ZeroOID.IsNull() {
		t.Error("ZeroOID.IsNull() should be true")
	}
	nonNull, _ := ParseOID("a1b2c3d4e5f6789012345678901234567890abcd")
	if nonNull.IsNull() {
		t.Error("non-zero oid reported as null")
	}
}

func TestOIDBytesRoundTrip(t *testing.T) {
	oid, err := ParseOID("a1b2c3d4e5f6789012345678901234567890abcd")
	if err != nil {
		t.Fatal(err)
	}
	raw := oid.Bytes()
	back, err := ParseOIDHex(raw)
	if err != nil {
		t.Fatal(err)
	}
	if back != oid {
		t.Errorf("round trip mismatch: %s != %s", back, oid)
	}
}

func TestOIDJSONRoundTrip(t *testing.T) {
	oid, _ := ParseOID("a1b2c3d4e5f6789012345678901234567890abcd")
	data, err := oid.MarshalJSON()
	if err != nil {
		t.Fatal(err)
	}
	var got OID
	if err := got.UnmarshalJSON(data); err != nil {
		t.Fatal(err)
	}
	if got != oid {
		t.Errorf("got %s, want %s", got, oid)
	}
}

func TestOIDRedacted(t *testing.T) {
	oid, _ := ParseOID("a1b2c3d4e5f6789012345678901234567890abcd")
	if got := oid.Redacted(); got != "a1b2c3d4e5f6" {
		t.Errorf("Redacted() = %q", got)
	}
}
