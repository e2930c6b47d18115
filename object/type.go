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

import (
	"encoding/json"
	"strings"

	"dirpx.dev/fsck/fsckerr"
	"dirpx.dev/fsck/internal/modelkit"
	"gopkg.in/yaml.v3"
)

// Type classifies an object by its Git kind.
type Type uint8

const (
	// TypeAny matches any object kind; it is used only as a walker filter
	// value, never as an actual object's Type.
	TypeAny Type = iota
	TypeBlob
	TypeTree
	TypeCommit
	TypeTag
)

const (
	typeAnyStr    = "any"
	typeBlobStr   = "blob"
	typeTreeStr   = "tree"
	typeCommitStr = "commit"
	typeTagStr    = "tag"
)

// ParseType parses one of the four canonical Git object type names, or
// "any". Matching is case-insensitive after trimming surrounding
// whitespace.
func ParseType(s string) (Type, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case typeAnyStr:
		return TypeAny, true
	case typeBlobStr:
		return TypeBlob, true
	case typeTreeStr:
		return TypeTree, true
	case typeCommitStr:
		return TypeCommit, true
	case typeTagStr:
		return TypeTag, true
	default:
		return 0, false
	}
}

func (t Type) String() string {
	switch t {
	case TypeAny:
		return typeAnyStr
	case TypeBlob:
		return typeBlobStr
	case TypeTree:
		return typeTreeStr
	case TypeCommit:
		return typeCommitStr
	case TypeTag:
		return typeTagStr
	default:
		return "unknown"
	}
}

func (t Type) Redacted() string { return t.String() }

func (t Type) TypeName() string { return "Type" }

// IsZero reports whether t is TypeAny, the zero value.
func (t Type) IsZero() bool { return t == TypeAny }

func (t Type) Equal(other Type) bool { return t == other }

func (t Type) Validate() error {
	switch t {
	case TypeAny, TypeBlob, TypeTree, TypeCommit, TypeTag:
		return nil
	default:
		return &fsckerr.ValidationError{Type: "Type", Reason: "unrecognized object type"}
	}
}

func (t Type) MarshalJSON() ([]byte, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return json.Marshal(t.String())
}

func (t *Type) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return &fsckerr.ParseError{Type: "Type", Value: string(data)}
	}
	parsed, ok := ParseType(str)
	if !ok {
		return &fsckerr.ParseError{Type: "Type", Value: str}
	}
	*t = parsed
	return nil
}

func (t Type) MarshalYAML() (interface{}, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t.String(), nil
}

func (t *Type) UnmarshalYAML(node *yaml.Node) error {
	var str string
	if err := node.Decode(&str); err != nil {
		return &fsckerr.ParseError{Type: "Type", Value: node.Value}
	}
	parsed, ok := ParseType(str)
	if !ok {
		return &fsckerr.ParseError{Type: "Type", Value: str}
	}
	*t = parsed
	return nil
}

var _ modelkit.Model = (*Type)(nil)
