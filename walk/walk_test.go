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

package walk

import (
	"testing"

	"dirpx.dev/fsck/object"
	"dirpx.dev/fsck/policy"
)

func oid(b byte) object.OID {
	raw := make([]byte, object.ByteSize)
	for i := range raw {
		raw[i] = b
	}
	o, err := object.ParseOIDHex(raw)
	if err != nil {
		panic(err)
	}
	return o
}

func TestWalkBlobHasNoReferences(t *testing.T) {
	opts := policy.NewOptions()
	called := false
	opts.Walker = func(object.OID, object.Type, any) int { called = true; return 0 }
	if r := Walk(opts, &object.Blob{ID: oid(0x01)}, nil); r != 0 {
		t.Errorf("Walk(blob) = %d, want 0", r)
	}
	if called {
		t.Error("walker should not be invoked for a blob")
	}
}

func TestWalkCommitPreservesParentOrder(t *testing.T) {
	opts := policy.NewOptions()
	var seen []object.OID
	opts.Walker = func(child object.OID, typ object.Type, _ any) int {
		seen = append(seen, child)
		return 0
	}

	tree := oid(0x01)
	p1, p2, p3 := oid(0x02), oid(0x03), oid(0x04)
	c := &object.Commit{ID: oid(0x99), Tree: tree, Parents: []object.OID{p1, p2, p3}}
	Walk(opts, c, nil)

	want := []object.OID{tree, p1, p2, p3}
	if len(seen) != len(want) {
		t.Fatalf("seen = %v, want %v", seen, want)
	}
	for i := range want {
		if seen[i] != want[i] {
			t.Errorf("seen[%d] = %s, want %s", i, seen[i], want[i])
		}
	}
}

func TestWalkTreeSkipsGitlinksAndDispatchesByMode(t *testing.T) {
	opts := policy.NewOptions()
	type visit struct {
		id  object.OID
		typ object.Type
	}
	var visits []visit
	opts.Walker = func(child object.OID, typ object.Type, _ any) int {
		visits = append(visits, visit{child, typ})
		return 0
	}

	buf := append(treeEntryFor(t, "100644", "file.txt", 0x01), treeEntryFor(t, "40000", "sub", 0x02)...)
	buf = append(buf, treeEntryFor(t, "160000", "submodule", 0x03)...)
	tr := &object.Tree{ID: oid(0x99), Buffer: buf}
	Walk(opts, tr, nil)

	if len(visits) != 2 {
		t.Fatalf("visits = %v, want 2 (gitlink skipped)", visits)
	}
	if visits[0].typ != object.TypeBlob || visits[1].typ != object.TypeTree {
		t.Errorf("visits = %v, want [blob, tree]", visits)
	}
}

func TestWalkTreeBadModeContinuesTraversal(t *testing.T) {
	opts := policy.NewOptions()
	var visits int
	opts.Walker = func(object.OID, object.Type, any) int { visits++; return 0 }

	prevSink := BadModeSink
	var badModeCalls int
	BadModeSink = func(error) { badModeCalls++ }
	defer func() { BadModeSink = prevSink }()

	buf := append(treeEntryFor(t, "177777", "weird", 0x01), treeEntryFor(t, "100644", "ok.txt", 0x02)...)
	tr := &object.Tree{ID: oid(0x99), Buffer: buf}
	r := Walk(opts, tr, nil)

	if r != 0 {
		t.Errorf("Walk = %d, want 0: bad mode must not abort traversal", r)
	}
	if visits != 1 {
		t.Errorf("visits = %d, want 1 (only the well-moded entry)", visits)
	}
	if badModeCalls != 1 {
		t.Errorf("badModeCalls = %d, want 1", badModeCalls)
	}
}

func TestWalkAbortsOnNegativeWalkerReturn(t *testing.T) {
	opts := policy.NewOptions()
	calls := 0
	opts.Walker = func(object.OID, object.Type, any) int {
		calls++
		return -1
	}
	c := &object.Commit{ID: oid(0x99), Tree: oid(0x01), Parents: []object.OID{oid(0x02), oid(0x03)}}
	if r := Walk(opts, c, nil); r != -1 {
		t.Errorf("Walk = %d, want -1", r)
	}
	if calls != 1 {
		t.Errorf("calls = %d, want 1 (abort after first negative return)", calls)
	}
}

func TestWalkTagVisitsTaggedAsAny(t *testing.T) {
	opts := policy.NewOptions()
	var gotTyp object.Type
	var gotID object.OID
	opts.Walker = func(child object.OID, typ object.Type, _ any) int {
		gotID, gotTyp = child, typ
		return 0
	}
	tagged := oid(0x07)
	tg := &object.Tag{ID: oid(0x99), Tagged: tagged}
	Walk(opts, tg, nil)
	if gotID != tagged || gotTyp != object.TypeAny {
		t.Errorf("got (%s, %s), want (%s, any)", gotID, gotTyp, tagged)
	}
}

func TestWalkNilObjectReturnsNegativeOne(t *testing.T) {
	opts := policy.NewOptions()
	if r := Walk(opts, nil, nil); r != -1 {
		t.Errorf("Walk(nil) = %d, want -1", r)
	}
}

func treeEntryFor(t *testing.T, mode, name string, oidByte byte) []byte {
	t.Helper()
	buf := []byte(mode + " " + name)
	buf = append(buf, 0)
	raw := make([]byte, object.ByteSize)
	for i := range raw {
		raw[i] = oidByte
	}
	return append(buf, raw...)
}
