// SPDX-License-Identifier: MPL-2.0

// This file gives a name to the external collaborator from spec.md §6 ("XPath
// scheduler... may be invoked later or stubbed during tests"): resolving a
// location path built up while evaluating a must/when expression against
// live instance data is explicitly out of scope for the resolver core (no
// runtime XPath evaluation - spec.md §1 Non-goals), so that resolution is
// delegated through DataTreeAccessor rather than hard-wired to one backend.

package xpath

// DataPathElem is one step of a location path resolved against instance
// data: a schema node name plus, for a list entry, the key values that pick
// out one entry.
type DataPathElem struct {
	Name string
	Keys map[string]string
}

func (e DataPathElem) clone() DataPathElem {
	if e.Keys == nil {
		return DataPathElem{Name: e.Name}
	}
	keys := make(map[string]string, len(e.Keys))
	for k, v := range e.Keys {
		keys[k] = v
	}
	return DataPathElem{Name: e.Name, Keys: keys}
}

// DataPath is a location path under construction, innermost element last.
type DataPath []DataPathElem

func copyPathElems(p DataPath) DataPath {
	cp := make(DataPath, len(p))
	for i, e := range p {
		cp[i] = e.clone()
	}
	return cp
}

// dataPathStack holds nested in-progress DataPath values, one frame per
// predicate nesting level entered via ProgBuilder.CodePredStart.
type dataPathStack struct {
	frames []DataPath
}

func (s *dataPathStack) push(p DataPath) { s.frames = append(s.frames, p) }

func (s *dataPathStack) pop() DataPath {
	if len(s.frames) == 0 {
		return nil
	}
	p := s.frames[len(s.frames)-1]
	s.frames = s.frames[:len(s.frames)-1]
	return p
}

func (s *dataPathStack) get() DataPath {
	if len(s.frames) == 0 {
		return nil
	}
	return s.frames[len(s.frames)-1]
}

func (s *dataPathStack) reset() { s.frames = nil }

func (s *dataPathStack) pushElem(e DataPathElem) {
	if len(s.frames) == 0 {
		s.frames = append(s.frames, DataPath{})
	}
	top := len(s.frames) - 1
	s.frames[top] = append(s.frames[top], e)
}

func (s *dataPathStack) popElem() DataPathElem {
	if len(s.frames) == 0 {
		return DataPathElem{}
	}
	top := len(s.frames) - 1
	if len(s.frames[top]) == 0 {
		return DataPathElem{}
	}
	last := len(s.frames[top]) - 1
	e := s.frames[top][last]
	s.frames[top] = s.frames[top][:last]
	return e
}

func (s *dataPathStack) popAll() {
	if len(s.frames) == 0 {
		return
	}
	s.frames[len(s.frames)-1] = DataPath{}
}

// DataTreeAccessor resolves an actual path, built up while a compiled
// must/when machine walks a location-path expression, against live instance
// data.  A production deployment backs this with a config/schema service or
// an in-memory instance tree; DatanodeAccessor in datanode_accessor.go is
// the default, grounded on the xutils.XpathNode tree already used for
// must/when evaluation.
type DataTreeAccessor interface {
	// IsContainer reports whether the node named by path is container-
	// shaped (as opposed to a leaf with a value).
	IsContainer(path DataPath) (bool, error)

	// Key reports the value of keyName if the node at parentPath is a list
	// entry possessing a key of that name.  EvalLocPath uses this to
	// recognize when the final path element is in fact a key of its own
	// parent, per the YANG leafref "key elision" shorthand.
	Key(parentPath DataPath, keyName string) (value string, ok bool)

	// LeafValue returns the string value of the leaf node named by path.
	LeafValue(path DataPath) (string, bool)

	// Exists reports whether any node (leaf or container) exists at path.
	Exists(path DataPath) bool
}
