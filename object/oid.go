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

// Package object defines the Git object model this module validates:
// object ids, the four object kinds, tree file modes and entries, and the
// four buffer-backed object variants (Blob, Tree, Commit, Tag) that the
// validate and walk packages operate on.
package object

import (
	"encoding/hex"
	"encoding/json"
	"regexp"
	"strings"

	"dirpx.dev/fsck/fsckerr"
	"dirpx.dev/fsck/internal/modelkit"
	"gopkg.in/yaml.v3"
)

const (
	// HexSize is the number of hexadecimal characters in a canonical
	// object id. This module validates only SHA-1 repositories.
	HexSize = 40

	// ByteSize is the number of raw bytes in a SHA-1 digest.
	ByteSize = 20
)

const oidHexPattern = `^[0-9a-f]{40}$`

// hexRegexp validates a normalized (lowercased, trimmed) candidate object
// id string. Callers SHOULD go through ParseOID rather than using this
// directly.
var hexRegexp = regexp.MustCompile(oidHexPattern)

// OID is a canonical Git object id: a lowercase hexadecimal SHA-1 digest
// naming a blob, tree, commit, or tag. The zero value (empty string)
// represents "no object id" and is valid; it is used, for instance, for a
// commit's unresolved tree link or a tag's unresolved tagged object.
type OID string

// ZeroOID is the all-zero object id that some diagnostics compare against
// (NULL_SHA1 condition: a tree entry id of all zero bytes).
const ZeroOID OID = "0000000000000000000000000000000000000000"

// ParseOID normalizes s (trim, lowercase) and validates the result as a
// canonical 40-character hex object id. The empty string parses
// successfully to the zero OID.
func ParseOID(s string) (OID, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	oid := OID(normalized)
	if err := oid.Validate(); err != nil {
		return "", err
	}
	return oid, nil
}

// ParseOIDHex decodes raw into an OID, validating that it is exactly
// ByteSize bytes long. It does not accept a hex string; use ParseOID for
// that.
func ParseOIDHex(raw []byte) (OID, error) {
	if len(raw) != ByteSize {
		return "", &fsckerr.ParseError{Type: "OID", Value: hex.EncodeToString(raw)}
	}
	return OID(hex.EncodeToString(raw)), nil
}

// Bytes decodes o to its raw 20-byte digest. Bytes panics if o does not
// hold exactly HexSize hex characters; callers MUST validate (or construct
// via ParseOID/ParseOIDHex) before calling Bytes.
func (o OID) Bytes() []byte {
	raw, err := hex.DecodeString(string(o))
	if err != nil {
		panic("object: OID.Bytes on unvalidated OID: " + err.Error())
	}
	return raw
}

func (o OID) String() string { return string(o) }

// Redacted returns the first 12 characters of the object id, the
// abbreviation length commonly used in short diagnostic output.
func (o OID) Redacted() string {
	if len(o) <= 12 {
		return string(o)
	}
	return string(o)[:12]
}

func (o OID) TypeName() string { return "OID" }

// IsZero reports whether o is the empty string (no object id attached).
// Use IsNull to test for the distinct all-zero-digest condition.
func (o OID) IsZero() bool { return o == "" }

// IsNull reports whether o is the all-zero digest (40 '0' characters),
// the condition the NULL_SHA1 diagnostic flags.
func (o OID) IsNull() bool { return o == ZeroOID }

func (o OID) Equal(other OID) bool { return o == other }

// Validate reports whether o is either empty or a well-formed 40-character
// lowercase hex digest.
func (o OID) Validate() error {
	if o.IsZero() {
		return nil
	}
	if len(o) != HexSize || !hexRegexp.MatchString(string(o)) {
		return &fsckerr.ValidationError{Type: "OID", Reason: "must be 40 lowercase hex characters"}
	}
	return nil
}

func (o OID) MarshalJSON() ([]byte, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}
	return json.Marshal(string(o))
}

func (o *OID) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return &fsckerr.ParseError{Type: "OID", Value: string(data)}
	}
	parsed, err := ParseOID(str)
	if err != nil {
		return err
	}
	*o = parsed
	return nil
}

func (o OID) MarshalYAML() (interface{}, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}
	return string(o), nil
}

func (o *OID) UnmarshalYAML(node *yaml.Node) error {
	var str string
	if err := node.Decode(&str); err != nil {
		return &fsckerr.ParseError{Type: "OID", Value: node.Value}
	}
	parsed, err := ParseOID(str)
	if err != nil {
		return err
	}
	*o = parsed
	return nil
}

var _ modelkit.Model = (*OID)(nil)
