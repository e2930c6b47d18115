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
	"bytes"
	"strings"

	"dirpx.dev/fsck/catalog"
	"dirpx.dev/fsck/object"
	"dirpx.dev/fsck/policy"
	"dirpx.dev/fsck/report"
)

// ReadObject stands in for the external object-lookup collaborator this
// module treats as out of scope: given an object id, it returns that
// object's type, its raw bytes, and whether it could be read at all.
// Tag is the only validator that calls it, and only when the caller did
// not already supply t.Raw, the case of a tag read straight off disk
// rather than handed in already parsed. The returned bytes are owned by
// the garbage collector; there is nothing to release on any exit path.
//
// The default reports every id unreadable. Host applications MUST
// replace this to actually resolve objects if they intend to validate
// tags without pre-populating Raw.
var ReadObject = func(id object.OID) (object.Type, []byte, bool) {
	return object.TypeAny, nil, false
}

// CheckRefnameFormat validates a candidate reference name already
// wrapped as "refs/tags/<name>". Full refname validation belongs to an
// external collaborator; the default here is permissive, rejecting only
// the empty tag name and any embedded NUL or LF. Host applications
// SHOULD replace this with their actual refname validator.
var CheckRefnameFormat = func(name string) bool {
	if name == "refs/tags/" {
		return false
	}
	return !strings.ContainsAny(name, "\x00\n")
}

// Tag validates a tag object. It first confirms the tagged object link
// was actually resolved (BAD_TAG_OBJECT if not; this runs before the
// buffer is touched at all), then validates the buffer's grammar:
//
//	object <40-hex> LF
//	type <typename> LF
//	tag <refname-segment> LF
//	tagger <ident> LF              // optional; missing is Info-level
//
// Tag returns the first nonzero reporter result encountered, or 0 if
// every check passed.
func Tag(opts *policy.Options, t *object.Tag) int {
	if t.Tagged.IsZero() {
		return report.Report(opts, t.ID, catalog.BadTagObject, "could not load tagged object")
	}
	return tagBuffer(opts, t)
}

func tagBuffer(opts *policy.Options, t *object.Tag) int {
	buf := t.Raw
	if len(buf) == 0 {
		typ, data, ok := ReadObject(t.ID)
		if !ok {
			return report.Report(opts, t.ID, catalog.MissingTagObject, "cannot read tag object")
		}
		if typ != object.TypeTag {
			return report.Report(opts, t.ID, catalog.TagObjectNotTag, "expected tag got %s", typ)
		}
		buf = data
	}

	if r := Headers(opts, t.ID, buf); r != 0 {
		return r
	}

	rest, ok := cutPrefix(buf, "object ")
	if !ok {
		return report.Report(opts, t.ID, catalog.MissingObject, "invalid format - expected 'object' line")
	}
	if _, ok := parseHexLine(rest); !ok {
		if r := report.Report(opts, t.ID, catalog.BadObjectSha1, "invalid 'object' line format - bad sha1"); r != 0 {
			return r
		}
	}
	buf = advanceHexLine(rest)

	rest, ok = cutPrefix(buf, "type ")
	if !ok {
		return report.Report(opts, t.ID, catalog.MissingTypeEntry, "invalid format - expected 'type' line")
	}
	eol := bytes.IndexByte(rest, '\n')
	if eol < 0 {
		return report.Report(opts, t.ID, catalog.MissingType, "invalid format - unexpected end after 'type' line")
	}
	// Exact lowercase typenames only; TypeAny is a walker filter, not a
	// typename an object can carry.
	typeText := string(rest[:eol])
	if typ, ok := object.ParseType(typeText); !ok || typ == object.TypeAny || typeText != typ.String() {
		if r := report.Report(opts, t.ID, catalog.BadType, "invalid 'type' value"); r != 0 {
			return r
		}
	}
	buf = rest[eol+1:]

	rest, ok = cutPrefix(buf, "tag ")
	if !ok {
		return report.Report(opts, t.ID, catalog.MissingTagEntry, "invalid format - expected 'tag' line")
	}
	eol = bytes.IndexByte(rest, '\n')
	if eol < 0 {
		return report.Report(opts, t.ID, catalog.MissingTag, "invalid format - unexpected end after 'type' line")
	}
	tagName := string(rest[:eol])
	if !CheckRefnameFormat("refs/tags/" + tagName) {
		if r := report.Report(opts, t.ID, catalog.BadTagName, "invalid 'tag' name: %s", tagName); r != 0 {
			return r
		}
	}
	buf = rest[eol+1:]

	rest, ok = cutPrefix(buf, "tagger ")
	if !ok {
		return report.Report(opts, t.ID, catalog.MissingTaggerEntry, "invalid format - expected 'tagger' line")
	}
	_, r := Identity(opts, t.ID, rest)
	return r
}
