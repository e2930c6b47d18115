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

// Object is satisfied by each of the four buffer-backed object variants.
// fsck.Object and walk.Walk accept this interface and dispatch on the
// concrete variant with a type switch.
type Object interface {
	ObjectID() OID
	ObjectType() Type
}

// Blob is an opaque content object. fsck does not parse blob content; a
// Blob's integrity is exhausted by its id matching its stored bytes, which
// is the caller's responsibility to establish before passing it in.
type Blob struct {
	ID OID
}

func (b *Blob) ObjectID() OID    { return b.ID }
func (b *Blob) ObjectType() Type { return TypeBlob }

// Tree is a directory listing: a raw buffer of mode/name/oid records in
// on-disk order, not yet decoded. validate.Tree decodes and checks it;
// walk.Walk decodes it again to visit each entry's target.
type Tree struct {
	ID     OID
	Buffer []byte
}

func (t *Tree) ObjectID() OID    { return t.ID }
func (t *Tree) ObjectType() Type { return TypeTree }

// Commit is a commit object's raw header-and-message buffer, along with
// the object id and tree id already extracted from it (both of which are
// cheap to recover and convenient for callers that only need identity,
// not full validation).
type Commit struct {
	ID      OID
	Tree    OID
	Parents []OID
	Raw     []byte
}

func (c *Commit) ObjectID() OID    { return c.ID }
func (c *Commit) ObjectType() Type { return TypeCommit }

// Tag is an annotated tag object's raw buffer, with the object id and the
// id of the object it tags already extracted.
type Tag struct {
	ID     OID
	Tagged OID
	Raw    []byte
}

func (g *Tag) ObjectID() OID    { return g.ID }
func (g *Tag) ObjectType() Type { return TypeTag }

var (
	_ Object = (*Blob)(nil)
	_ Object = (*Tree)(nil)
	_ Object = (*Commit)(nil)
	_ Object = (*Tag)(nil)
)
