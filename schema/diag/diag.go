// SPDX-License-Identifier: MPL-2.0

// Package diag gives the resolution-failure vocabulary a closed, named set
// of codes instead of ad hoc error strings, so callers (tests, CLI,
// management-protocol translation) can switch on *why* resolution failed
// rather than pattern-matching message text.  Grounded on the message
// catalogue already embedded in compile.Compiler.error call sites and
// schema/errors.go's mgmterror translations.
package diag

// Code is a closed taxonomy of forward-reference / constraint resolution
// failures.  Names follow RFC 7950's own terminology where it has one
// (eg missing-element, bad-value); the rest name the specific YANG rule
// violated.
type Code int

const (
	// Unknown/unclassified - a diagnostic built without enough context to
	// assign a specific code.  Never returned deliberately; seeing it in a
	// report means a call site needs a real code.
	Unknown Code = iota

	// Path micro-parsers (schema nodeid, instance-identifier, unique-arg).
	PathInChar  // invalid character in a path
	PathInMod   // invalid module-name component
	PathMissMod // prefix has no corresponding import
	PathInNode  // nodeid does not resolve under its parent
	PathInKey   // key predicate references a non-key leaf
	PathMissKey // list reference missing a required key predicate
	PathExists  // list reference has a key predicate where none is allowed
	PathMissPar // path has no resolvable parent at all

	// Statement / argument well-formedness.
	InId          // invalid identifier
	InMod         // invalid module reference
	InStmt        // statement not allowed in this context
	InChildStmt   // child statement not allowed under this parent
	MissStmt      // mandatory statement missing
	MissChildStmt // mandatory child statement missing
	MissArg       // statement missing its argument
	TooMany       // cardinality exceeded
	DupId         // duplicate identifier in a scope that requires uniqueness

	// List / key constraints.
	KeyNLeaf  // key statement names something that is not a leaf
	KeyType   // key leaf has a disallowed type (eg leafref to config false)
	KeyConfig // key leaf config mismatches its list's config
	KeyMiss   // key statement names a leaf that doesn't exist
	KeyDup    // same leaf named more than once in a key statement
	NoUniq    // unique statement references a path that does not exist

	// Value / type constraints.
	InArg       // argument value invalid for its statement
	InVal       // default/value does not satisfy the type
	NoConstr    // range/length boundary violates its base type's constraint
	EnumDupVal  // duplicate enum value
	EnumDupName // duplicate enum name
	EnumWs      // enum name has leading/trailing whitespace (pre-1.1 modules)
	BitsDupVal  // duplicate bit position
	BitsDupName // duplicate bit name

	// Resolution / status.
	InResolv // item could not be resolved after fixpoint converged
	NoResolv // grouping/identity/type reference names something undefined
	InStatus // status violates RFC 7950 compatibility (eg current using deprecated)

	// Leafref / instance-identifier / must / when evaluation.
	NoLeafref // leafref path does not resolve to a schema node
	NoReqIns  // require-instance true but instance does not exist
	InWhen    // when expression failed to compile
	NoMust    // must statement failed to compile
	NoWhen    // when evaluated false, node pruned (data-time, non-fatal)

	// Choice / mandatory / uniqueness (data-time).
	NoMandChoice // mandatory choice has no case selected
	NoMin        // list/leaf-list below min-elements
	NoMax        // list/leaf-list above max-elements
	DupLeafList  // duplicate value in a leaf-list
	DupList      // duplicate key combination in a list
	McaseData    // data present for more than one case of a choice
)

var names = map[Code]string{
	Unknown:       "unknown",
	PathInChar:    "path-invalid-char",
	PathInMod:     "path-invalid-module",
	PathMissMod:   "path-missing-module",
	PathInNode:    "path-invalid-node",
	PathInKey:     "path-invalid-key",
	PathMissKey:   "path-missing-key",
	PathExists:    "path-unexpected-key",
	PathMissPar:   "path-missing-parent",
	InId:          "invalid-identifier",
	InMod:         "invalid-module-reference",
	InStmt:        "invalid-statement",
	InChildStmt:   "invalid-child-statement",
	MissStmt:      "missing-statement",
	MissChildStmt: "missing-child-statement",
	MissArg:       "missing-argument",
	TooMany:       "too-many-statements",
	DupId:         "duplicate-identifier",
	KeyNLeaf:      "key-not-a-leaf",
	KeyType:       "key-bad-type",
	KeyConfig:     "key-config-mismatch",
	KeyMiss:       "key-not-found",
	KeyDup:        "key-duplicated",
	NoUniq:        "unique-path-not-found",
	InArg:         "invalid-argument-value",
	InVal:         "invalid-value",
	NoConstr:      "constraint-violation",
	EnumDupVal:    "enum-duplicate-value",
	EnumDupName:   "enum-duplicate-name",
	EnumWs:        "enum-whitespace",
	BitsDupVal:    "bits-duplicate-value",
	BitsDupName:   "bits-duplicate-name",
	InResolv:      "unresolved-reference",
	NoResolv:      "reference-not-found",
	InStatus:      "invalid-status",
	NoLeafref:     "leafref-not-found",
	NoReqIns:      "required-instance-missing",
	InWhen:        "when-invalid",
	NoMust:        "must-invalid",
	NoWhen:        "when-false",
	NoMandChoice:  "mandatory-choice-unset",
	NoMin:         "below-min-elements",
	NoMax:         "above-max-elements",
	DupLeafList:   "duplicate-leaf-list-value",
	DupList:       "duplicate-list-key",
	McaseData:     "multiple-case-data",
}

func (c Code) String() string {
	if name, ok := names[c]; ok {
		return name
	}
	return "unknown"
}

// Record is one resolution diagnostic: what rule was violated (Code), where
// (Path, in the usual slash-separated schema-node-id form), a human-readable
// Message, and an optional AppTag carried through to management-protocol
// error reporting at the CLI boundary.
type Record struct {
	Code    Code
	Path    string
	Message string
	AppTag  string
}

func (r Record) Error() string {
	if r.Path == "" {
		return r.Message
	}
	return r.Path + ": " + r.Message
}

// Sink collects Records as compilation proceeds.  The zero value is ready
// to use.  A Sink is not safe for concurrent use - the resolver core is
// single-owner/batch (see compile.Compiler), so none is needed.
type Sink struct {
	records []Record
}

func (s *Sink) Add(r Record) { s.records = append(s.records, r) }

func (s *Sink) Records() []Record { return s.records }

func (s *Sink) HasErrors() bool { return len(s.records) > 0 }

func (s *Sink) Reset() { s.records = nil }
