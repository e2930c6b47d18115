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
	"testing"

	"dirpx.dev/fsck/catalog"
)

func TestEffectiveDefaultsBeforeAnyOverride(t *testing.T) {
	o := NewOptions()
	if got := o.Effective(catalog.MissingEmail); got != catalog.SeverityError {
		t.Errorf("got %s, want Error", got)
	}
	if got := o.Effective(catalog.NulInHeader); got != catalog.SeverityFatal {
		t.Errorf("got %s, want Fatal", got)
	}
}

func TestStrictPromotesWarnToError(t *testing.T) {
	o := NewOptions()
	o.SetStrict(true)
	if got := o.Effective(catalog.BadFilemode); got != catalog.SeverityError {
		t.Errorf("strict mode: got %s, want Error", got)
	}
}

func TestStrictPromotionOverriddenBack(t *testing.T) {
	o := NewOptions()
	o.SetStrict(true)
	if err := o.SetMessageType("bad_filemode", "warn"); err != nil {
		t.Fatal(err)
	}
	if got := o.Effective(catalog.BadFilemode); got != catalog.SeverityWarn {
		t.Errorf("got %s, want Warn after explicit override", got)
	}
}

func TestSetMessageTypeRejectsFatalDemotion(t *testing.T) {
	o := NewOptions()
	if err := o.SetMessageType("nul_in_header", "warn"); err == nil {
		t.Error("expected error demoting a fatal kind")
	}
}

func TestSetMessageTypeRejectsUnknownKind(t *testing.T) {
	o := NewOptions()
	if err := o.SetMessageType("not_a_kind", "error"); err == nil {
		t.Error("expected error for unknown kind")
	}
}

func TestSetMessageTypeRejectsUnknownSeverity(t *testing.T) {
	o := NewOptions()
	if err := o.SetMessageType("bad_filemode", "fatal"); err == nil {
		t.Error("expected error: fatal is not an accepted override severity")
	}
}

func TestSetMessageTypesParsesMixedSeparators(t *testing.T) {
	o := NewOptions()
	if err := o.SetMessageTypes("missingEmail=ignore,badDate:warn badTree=error"); err != nil {
		t.Fatal(err)
	}
	if got := o.Effective(catalog.MissingEmail); got != catalog.SeverityIgnore {
		t.Errorf("missingEmail: got %s", got)
	}
	if got := o.Effective(catalog.BadDate); got != catalog.SeverityWarn {
		t.Errorf("badDate: got %s", got)
	}
	if got := o.Effective(catalog.BadTree); got != catalog.SeverityError {
		t.Errorf("badTree: got %s", got)
	}
}

func TestSetMessageTypesRejectsTokenWithoutSeparator(t *testing.T) {
	o := NewOptions()
	if err := o.SetMessageTypes("garbage"); err == nil {
		t.Error("expected error for token missing separator")
	}
}

func TestSkipDefaultsToSharedProcessWideSet(t *testing.T) {
	a := NewOptions()
	b := NewOptions()
	if a.Skip() != b.Skip() {
		t.Error("expected two fresh Options to share the process-wide default skip set")
	}

	own := NewSkipSet()
	a.SetSkip(own)
	if a.Skip() != own {
		t.Error("expected SetSkip to attach the caller's set directly")
	}
	if b.Skip() == own {
		t.Error("expected SetSkip on one Options not to affect another")
	}
}

func TestSetMessageTypesSkiplistMissingFile(t *testing.T) {
	o := NewOptions()
	if err := o.SetMessageTypes("skiplist=/nonexistent/path/does/not/exist"); err == nil {
		t.Error("expected error for unreadable skip-list file")
	}
}

func TestOnlyOverriddenKindChanges(t *testing.T) {
	o := NewOptions()
	if err := o.SetMessageType("bad_filemode", "error"); err != nil {
		t.Fatal(err)
	}
	if got := o.Effective(catalog.BadFilemode); got != catalog.SeverityError {
		t.Errorf("overridden kind: got %s", got)
	}
	if got := o.Effective(catalog.EmptyName); got != catalog.SeverityWarn {
		t.Errorf("untouched kind: got %s, want unchanged default Warn", got)
	}
}
