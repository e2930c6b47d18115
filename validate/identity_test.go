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

package validate

import (
	"testing"

	"dirpx.dev/fsck/catalog"
	"dirpx.dev/fsck/object"
	"dirpx.dev/fsck/policy"
)

func kindOf(t *testing.T, message string) string {
	t.Helper()
	for i, c := range message {
		if c == ':' {
			return message[:i]
		}
	}
	return message
}

func TestIdentityWellFormedLine(t *testing.T) {
	opts := policy.NewOptions()
	var calls []string
	opts.Sink = captureSink(&calls, 1)

	rest, r := Identity(opts, object.ZeroOID, []byte("A U Thor <a@x.com> 1234567890 +0000\nnext line\n"))
	if r != 0 {
		t.Fatalf("Identity = %d, want 0; calls=%v", r, calls)
	}
	if string(rest) != "next line\n" {
		t.Errorf("rest = %q", rest)
	}
}

func TestIdentityMissingNameBeforeEmail(t *testing.T) {
	opts := policy.NewOptions()
	var calls []string
	opts.Sink = captureSink(&calls, 1)

	_, r := Identity(opts, object.ZeroOID, []byte("<a@x.com> 1 +0000\n"))
	if r == 0 {
		t.Fatal("expected failure")
	}
	if got := kindOf(t, calls[0]); got != catalog.MissingNameBeforeEmail.Symbolic() {
		t.Errorf("kind = %s, want %s", got, catalog.MissingNameBeforeEmail.Symbolic())
	}
}

func TestIdentityMissingEmail(t *testing.T) {
	opts := policy.NewOptions()
	var calls []string
	opts.Sink = captureSink(&calls, 1)

	_, r := Identity(opts, object.ZeroOID, []byte("A U Thor 1 +0000\n"))
	if r == 0 {
		t.Fatal("expected failure")
	}
	if got := kindOf(t, calls[0]); got != catalog.MissingEmail.Symbolic() {
		t.Errorf("kind = %s, want %s", got, catalog.MissingEmail.Symbolic())
	}
}

func TestIdentityZeroPaddedDate(t *testing.T) {
	opts := policy.NewOptions()
	var calls []string
	opts.Sink = captureSink(&calls, 1)

	_, r := Identity(opts, object.ZeroOID, []byte("A U Thor <a@x> 0123456789 +0000\n"))
	if r == 0 {
		t.Fatal("expected failure")
	}
	if got := kindOf(t, calls[0]); got != catalog.ZeroPaddedDate.Symbolic() {
		t.Errorf("kind = %s, want %s", got, catalog.ZeroPaddedDate.Symbolic())
	}
}

func TestIdentityBadTimezone(t *testing.T) {
	opts := policy.NewOptions()
	var calls []string
	opts.Sink = captureSink(&calls, 1)

	_, r := Identity(opts, object.ZeroOID, []byte("A U Thor <a@x> 1234567890 bogus\n"))
	if r == 0 {
		t.Fatal("expected failure")
	}
	if got := kindOf(t, calls[0]); got != catalog.BadTimezone.Symbolic() {
		t.Errorf("kind = %s, want %s", got, catalog.BadTimezone.Symbolic())
	}
}

func TestIdentityDateOverflow(t *testing.T) {
	opts := policy.NewOptions()
	var calls []string
	opts.Sink = captureSink(&calls, 1)

	_, r := Identity(opts, object.ZeroOID, []byte("A U Thor <a@x> 99999999999999999999 +0000\n"))
	if r == 0 {
		t.Fatal("expected failure")
	}
	if got := kindOf(t, calls[0]); got != catalog.BadDateOverflow.Symbolic() {
		t.Errorf("kind = %s, want %s", got, catalog.BadDateOverflow.Symbolic())
	}
}

func TestIdentityAdvancesPastLineRegardlessOfOutcome(t *testing.T) {
	opts := policy.NewOptions()
	opts.Sink = captureSink(&[]string{}, 1)

	rest, r := Identity(opts, object.ZeroOID, []byte("<bad\ncommitter next\n"))
	if r == 0 {
		t.Fatal("expected failure")
	}
	if string(rest) != "committer next\n" {
		t.Errorf("rest = %q, cursor did not advance to next line", rest)
	}
}
