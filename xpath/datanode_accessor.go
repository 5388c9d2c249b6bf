// SPDX-License-Identifier: MPL-2.0

// Default DataTreeAccessor, grounded on the xutils.XpathNode tree already
// walked by path-construction/predicate instructions (CodeNameTest,
// generateNodeSet): rather than invent a second tree-walking mechanism for
// data-time 'must'/'when' evaluation, DatanodeAccessor replays the same
// name-test-plus-predicate walk against a root XpathNode supplied by the
// caller (eg the result of schema.ConvertToXpathNode over a parsed instance
// document).

package xpath

import (
	"encoding/xml"

	"github.com/schemafwd/yangcore/xpath/xutils"
)

// DatanodeAccessor answers DataTreeAccessor queries by walking an
// xutils.XpathNode tree rooted at Root.  Nil Root makes every query report
// not-found, which is a legitimate "no data tree wired" starting state.
type DatanodeAccessor struct {
	Root xutils.XpathNode
}

func NewDatanodeAccessor(root xutils.XpathNode) *DatanodeAccessor {
	return &DatanodeAccessor{Root: root}
}

func (a *DatanodeAccessor) walk(path DataPath) xutils.XpathNode {
	node := a.Root
	for _, elem := range path {
		if node == nil {
			return nil
		}
		node = findChild(node, elem)
	}
	return node
}

func findChild(node xutils.XpathNode, elem DataPathElem) xutils.XpathNode {
	for _, child := range node.XChildren(xutils.AllChildren, xutils.Unsorted) {
		if child.XName() != elem.Name {
			continue
		}
		if matchesKeys(child, elem.Keys) {
			return child
		}
	}
	return nil
}

func matchesKeys(node xutils.XpathNode, keys map[string]string) bool {
	for name, val := range keys {
		if !node.XListKeyMatches(xml.Name{Local: name}, val) {
			return false
		}
	}
	return true
}

func (a *DatanodeAccessor) IsContainer(path DataPath) (bool, error) {
	node := a.walk(path)
	if node == nil {
		return false, nil
	}
	return !node.XIsLeaf() && !node.XIsLeafList(), nil
}

func (a *DatanodeAccessor) Key(parentPath DataPath, keyName string) (string, bool) {
	node := a.walk(parentPath)
	if node == nil {
		return "", false
	}
	val := node.XValue()
	if node.XListKeyMatches(xml.Name{Local: keyName}, val) {
		return val, true
	}
	return "", false
}

func (a *DatanodeAccessor) LeafValue(path DataPath) (string, bool) {
	node := a.walk(path)
	if node == nil || !node.XIsLeaf() {
		return "", false
	}
	return node.XValue(), true
}

func (a *DatanodeAccessor) Exists(path DataPath) bool {
	return a.walk(path) != nil
}
