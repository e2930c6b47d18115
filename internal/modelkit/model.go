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

// Package modelkit defines the small set of contracts every value-like type
// in this module implements: Validate, JSON/YAML marshaling, a logging-safe
// string form, a type name, and a zero check. Enum-like types (diagnostic
// kinds, severities, object ids, object types) implement Model in full;
// the buffer-backed object variants (Blob, Tree, Commit, Tag) implement
// none of it and satisfy only object.Object.
package modelkit

import (
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// Model combines the contracts every fully value-like type in this module
// MUST satisfy.
type Model interface {
	Validatable
	Serializable
	Loggable
	Identifiable
	ZeroCheckable
}

// Validatable checks that a value's invariants hold. Validate MUST be pure,
// fast, and side-effect free.
type Validatable interface {
	Validate() error
}

// Serializable provides JSON and YAML round-tripping. Implementations
// SHOULD use the type-alias trick (type alias T; json.Marshal((alias)(v)))
// to avoid recursive marshaling, and SHOULD call Validate on both the way in
// and the way out.
type Serializable interface {
	json.Marshaler
	json.Unmarshaler
	yaml.Marshaler
	yaml.Unmarshaler
}

// Loggable provides two string forms: String (full detail, for development)
// and Redacted (safe for production logs). For the value types in this
// module none of the fields are actually sensitive, so Redacted commonly
// just delegates to String; it exists for interface symmetry with the rest
// of the codebase and because some future field (an author email, say)
// could change that.
type Loggable interface {
	Redacted() string
	String() string
}

// Identifiable supplies a constant, package-prefix-free type name used in
// error messages and structured logging.
type Identifiable interface {
	TypeName() string
}

// ZeroCheckable reports whether a value is in its empty/zero state.
type ZeroCheckable interface {
	IsZero() bool
}

// Comparable is satisfied by types with an explicit equality method
// (object.OID and object.Type).
type Comparable[T any] interface {
	Equal(other T) bool
}
