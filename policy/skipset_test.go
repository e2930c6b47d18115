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

package policy

import (
	"os"
	"path/filepath"
	"testing"

	"dirpx.dev/fsck/object"
)

func mustOID(t *testing.T, s string) object.OID {
	t.Helper()
	oid, err := object.ParseOID(s)
	if err != nil {
		t.Fatalf("ParseOID(%q): %v", s, err)
	}
	return oid
}

func TestSkipSetAddAndContains(t *testing.T) {
	s := NewSkipSet()
	a := mustOID(t, "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa")
	b := mustOID(t, "bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb")
	s.Add(a)
	if !s.Contains(a) {
		t.Error("expected set to contain a")
	}
	if s.Contains(b) {
		t.Error("expected set not to contain b")
	}
}

func TestSkipSetUnsortedAddStillFindsMembers(t *testing.T) {
	s := NewSkipSet()
	s.Add(mustOID(t, "cccccccccccccccccccccccccccccccccccccccc"))
	s.Add(mustOID(t, "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"))
	s.Add(mustOID(t, "bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb"))
	if s.sorted {
		t.Error("expected sortedness to be false after out-of-order adds")
	}
	for _, hex := range []string{
		"aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa",
		"bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb",
		"cccccccccccccccccccccccccccccccccccccccc",
	} {
		if !s.Contains(mustOID(t, hex)) {
			t.Errorf("expected set to contain %s", hex)
		}
	}
}

func TestLoadSkipSetFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "skiplist")
	content := "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa\n" +
		"bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	s, err := LoadSkipSet(path)
	if err != nil {
		t.Fatalf("LoadSkipSet: %v", err)
	}
	if s.Len() != 2 {
		t.Fatalf("got %d entries, want 2", s.Len())
	}
	if !s.Contains(mustOID(t, "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa")) {
		t.Error("missing first entry")
	}
}

func TestLoadSkipSetRejectsMalformedLine(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "skiplist")
	if err := os.WriteFile(path, []byte("not-a-hex-id\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadSkipSet(path); err == nil {
		t.Error("expected error for malformed skip-list line")
	}
}

func TestLoadSkipSetAppendsAndTracksSortedness(t *testing.T) {
	dir := t.TempDir()
	path1 := filepath.Join(dir, "one")
	path2 := filepath.Join(dir, "two")
	os.WriteFile(path1, []byte("cccccccccccccccccccccccccccccccccccccccc\n"), 0o644)
	os.WriteFile(path2, []byte("aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa\n"), 0o644)

	s, err := LoadSkipSet(path1)
	if err != nil {
		t.Fatal(err)
	}
	if err := s.LoadFile(path2); err != nil {
		t.Fatal(err)
	}
	if s.sorted {
		t.Error("expected cumulative sortedness to be false once a smaller id follows a larger one")
	}
	if !s.Contains(mustOID(t, "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa")) {
		t.Error("expected second file's entry to be present")
	}
}
