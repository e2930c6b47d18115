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

// Package catalog holds the closed enumeration of diagnostic kinds that the
// validators in package validate can report, along with each kind's default
// severity and the two textual transforms of its symbolic name: the
// lowercase-no-underscore form used to parse user input, and the
// drop-underscore-keep-next-char-verbatim form used as the message prefix
// at report time.
//
// Both transforms, and the reverse lookup table they back, are computed
// once at package initialization rather than lazily, since the table is
// small and fixed at compile time.
package catalog

import (
	"encoding/json"
	"fmt"
	"strings"

	"dirpx.dev/fsck/fsckerr"
	"dirpx.dev/fsck/internal/modelkit"
	"gopkg.in/yaml.v3"
)

// Kind identifies one member of the closed diagnostic enumeration.
type Kind uint8

const (
	// Fatal: header well-formedness.
	NulInHeader Kind = iota
	UnterminatedHeader

	// Error: structural / grammar violations.
	BadDate
	BadDateOverflow
	BadEmail
	BadName
	BadObjectSha1
	BadParentSha1
	BadTagObject
	BadTimezone
	BadTree
	BadTreeSha1
	BadType
	DuplicateEntries
	MissingAuthor
	MissingCommitter
	MissingEmail
	MissingGraft
	MissingNameBeforeEmail
	MissingObject
	MissingParent
	MissingSpaceBeforeDate
	MissingSpaceBeforeEmail
	MissingTag
	MissingTagEntry
	MissingTagObject
	MissingTree
	MissingType
	MissingTypeEntry
	MultipleAuthors
	TagObjectNotTag
	TreeNotSorted
	UnknownType
	ZeroPaddedDate

	// Warn: style / portability.
	BadFilemode
	EmptyName
	FullPathname
	HasDot
	HasDotdot
	HasDotgit
	NullSha1
	ZeroPaddedFilemode

	// Info: cosmetic / legacy, suppressed by default.
	BadTagName
	MissingTaggerEntry

	numKinds
)

type kindEntry struct {
	symbolicName string
	severity     Severity
}

// table is indexed by Kind and holds each kind's uppercase-underscored
// symbolic name and its default severity.
var table = [numKinds]kindEntry{
	NulInHeader:        {"NUL_IN_HEADER", SeverityFatal},
	UnterminatedHeader: {"UNTERMINATED_HEADER", SeverityFatal},

	BadDate:                 {"BAD_DATE", SeverityError},
	BadDateOverflow:         {"BAD_DATE_OVERFLOW", SeverityError},
	BadEmail:                {"BAD_EMAIL", SeverityError},
	BadName:                 {"BAD_NAME", SeverityError},
	BadObjectSha1:           {"BAD_OBJECT_SHA1", SeverityError},
	BadParentSha1:           {"BAD_PARENT_SHA1", SeverityError},
	BadTagObject:            {"BAD_TAG_OBJECT", SeverityError},
	BadTimezone:             {"BAD_TIMEZONE", SeverityError},
	BadTree:                 {"BAD_TREE", SeverityError},
	BadTreeSha1:             {"BAD_TREE_SHA1", SeverityError},
	BadType:                 {"BAD_TYPE", SeverityError},
	DuplicateEntries:        {"DUPLICATE_ENTRIES", SeverityError},
	MissingAuthor:           {"MISSING_AUTHOR", SeverityError},
	MissingCommitter:        {"MISSING_COMMITTER", SeverityError},
	MissingEmail:            {"MISSING_EMAIL", SeverityError},
	MissingGraft:            {"MISSING_GRAFT", SeverityError},
	MissingNameBeforeEmail:  {"MISSING_NAME_BEFORE_EMAIL", SeverityError},
	MissingObject:           {"MISSING_OBJECT", SeverityError},
	MissingParent:           {"MISSING_PARENT", SeverityError},
	MissingSpaceBeforeDate:  {"MISSING_SPACE_BEFORE_DATE", SeverityError},
	MissingSpaceBeforeEmail: {"MISSING_SPACE_BEFORE_EMAIL", SeverityError},
	MissingTag:              {"MISSING_TAG", SeverityError},
	MissingTagEntry:         {"MISSING_TAG_ENTRY", SeverityError},
	MissingTagObject:        {"MISSING_TAG_OBJECT", SeverityError},
	MissingTree:             {"MISSING_TREE", SeverityError},
	MissingType:             {"MISSING_TYPE", SeverityError},
	MissingTypeEntry:        {"MISSING_TYPE_ENTRY", SeverityError},
	MultipleAuthors:         {"MULTIPLE_AUTHORS", SeverityError},
	TagObjectNotTag:         {"TAG_OBJECT_NOT_TAG", SeverityError},
	TreeNotSorted:           {"TREE_NOT_SORTED", SeverityError},
	UnknownType:             {"UNKNOWN_TYPE", SeverityError},
	ZeroPaddedDate:          {"ZERO_PADDED_DATE", SeverityError},

	BadFilemode:        {"BAD_FILEMODE", SeverityWarn},
	EmptyName:          {"EMPTY_NAME", SeverityWarn},
	FullPathname:       {"FULL_PATHNAME", SeverityWarn},
	HasDot:             {"HAS_DOT", SeverityWarn},
	HasDotdot:          {"HAS_DOTDOT", SeverityWarn},
	HasDotgit:          {"HAS_DOTGIT", SeverityWarn},
	NullSha1:           {"NULL_SHA1", SeverityWarn},
	ZeroPaddedFilemode: {"ZERO_PADDED_FILEMODE", SeverityWarn},

	BadTagName:         {"BAD_TAG_NAME", SeverityInfo},
	MissingTaggerEntry: {"MISSING_TAGGER_ENTRY", SeverityInfo},
}

// lookupColumn maps the parse-form identifier (lowercase, underscores
// stripped) back to its Kind. Populated once in init.
var lookupColumn map[string]Kind

// symbolicColumn holds the precomputed report-time prefix for each kind
// (underscores dropped, next character kept verbatim; see Symbolic).
var symbolicColumn [numKinds]string

func init() {
	lookupColumn = make(map[string]Kind, numKinds)
	for k := Kind(0); k < numKinds; k++ {
		name := table[k].symbolicName
		lookupColumn[parseForm(name)] = k
		symbolicColumn[k] = reportForm(name)
	}
}

// parseForm lowercases name and strips every underscore, producing the form
// matched by ParseKind and by the override mini-language's kind names.
func parseForm(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	for _, r := range name {
		if r == '_' {
			continue
		}
		b.WriteRune(toLowerASCII(r))
	}
	return b.String()
}

// reportForm drops each underscore and keeps the character that followed it
// verbatim (not lowercased), lowercasing every other character. This is the
// transform applied to build the "<symbolic>: " message prefix, e.g.
// MISSING_EMAIL -> missingEmail.
func reportForm(name string) string {
	runes := []rune(name)
	var b strings.Builder
	b.Grow(len(runes))
	for i := 0; i < len(runes); i++ {
		c := runes[i]
		if c != '_' {
			b.WriteRune(toLowerASCII(c))
			continue
		}
		i++
		if i < len(runes) {
			b.WriteRune(runes[i])
		}
	}
	return b.String()
}

func toLowerASCII(r rune) rune {
	if r >= 'A' && r <= 'Z' {
		return r + ('a' - 'A')
	}
	return r
}

// ParseKind looks up a Kind by its parse-form identifier: lowercase, with
// underscores removed (e.g. "missingemail" for MISSING_EMAIL). It reports
// ok=false if text does not name a known kind.
func ParseKind(text string) (Kind, bool) {
	k, ok := lookupColumn[parseForm(strings.TrimSpace(text))]
	return k, ok
}

// DefaultSeverity returns k's severity before any policy override or strict
// promotion is applied.
func (k Kind) DefaultSeverity() Severity {
	if k >= numKinds {
		return SeverityError
	}
	return table[k].severity
}

// Symbolic returns the report-time message prefix for k (see reportForm).
func (k Kind) Symbolic() string {
	if k >= numKinds {
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
	return symbolicColumn[k]
}

// String returns the uppercase-underscored symbolic name used in code and
// in this package's doc comments, e.g. "MISSING_EMAIL".
func (k Kind) String() string {
	if k >= numKinds {
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
	return table[k].symbolicName
}

// Redacted delegates to String; diagnostic kinds carry no sensitive data.
func (k Kind) Redacted() string { return k.String() }

// TypeName identifies this type for error messages and structured logging.
func (k Kind) TypeName() string { return "Kind" }

// IsZero reports whether k is NulInHeader, the zero value. NulInHeader is a
// meaningful kind, not an absence of one; IsZero exists only to satisfy the
// shared value-type contract.
func (k Kind) IsZero() bool { return k == NulInHeader }

// Validate reports whether k names a known catalog entry.
func (k Kind) Validate() error {
	if k >= numKinds {
		return &fsckerr.ValidationError{Type: "Kind", Reason: "unrecognized kind value"}
	}
	return nil
}

// NumKinds is the number of entries in the catalog, usable by callers that
// need to size a parallel array (as policy.Options does for its override
// table).
const NumKinds = int(numKinds)

func (k Kind) MarshalJSON() ([]byte, error) {
	if err := k.Validate(); err != nil {
		return nil, err
	}
	return json.Marshal(k.String())
}

func (k *Kind) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return &fsckerr.ParseError{Type: "Kind", Value: string(data)}
	}
	parsed, ok := ParseKind(str)
	if !ok {
		return &fsckerr.ParseError{Type: "Kind", Value: str}
	}
	*k = parsed
	return nil
}

func (k Kind) MarshalYAML() (interface{}, error) {
	if err := k.Validate(); err != nil {
		return nil, err
	}
	return k.String(), nil
}

func (k *Kind) UnmarshalYAML(node *yaml.Node) error {
	var str string
	if err := node.Decode(&str); err != nil {
		return &fsckerr.ParseError{Type: "Kind", Value: node.Value}
	}
	parsed, ok := ParseKind(str)
	if !ok {
		return &fsckerr.ParseError{Type: "Kind", Value: str}
	}
	*k = parsed
	return nil
}

var _ modelkit.Model = (*Kind)(nil)
