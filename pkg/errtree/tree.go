// Package errtree models validation errors as a tree mirroring the shape of
// the form data and resolves dotted field paths against it.
package errtree

import (
	"sort"
	"strings"
)

// Node is either a Leaf carrying a message or a Branch of keyed children.
type Node interface {
	isNode()
}

// Leaf terminates a path with a validation message.
type Leaf struct {
	Message string
}

// Branch maps path segments to nested nodes.
type Branch struct {
	Children map[string]Node
}

func (Leaf) isNode()   {}
func (Branch) isNode() {}

// Empty returns a branch with no children.
func Empty() Branch {
	return Branch{}
}

// Resolve walks path (split on ".") through tree and returns the message of
// the leaf it lands on. Missing segments, a leaf reached before the path is
// consumed, a branch at the end of the path or an empty message all resolve
// to ("", false); callers treat that exactly like "no error".
func Resolve(tree Node, path string) (string, bool) {
	current := tree
	for _, segment := range strings.Split(path, ".") {
		branch, ok := current.(Branch)
		if !ok {
			return "", false
		}
		child, ok := branch.Children[segment]
		if !ok || child == nil {
			return "", false
		}
		current = child
	}

	switch node := current.(type) {
	case Leaf:
		if node.Message == "" {
			return "", false
		}
		return node.Message, true
	case Branch:
		return "", false
	default:
		return "", false
	}
}

// Set returns a copy of tree with the leaf at path holding message. Nodes
// along the path are copied; the input tree is never mutated. A leaf sitting
// where a branch is needed is replaced by the branch.
func Set(tree Node, path, message string) Node {
	return set(tree, strings.Split(path, "."), message)
}

func set(node Node, segments []string, message string) Node {
	if len(segments) == 0 {
		return Leaf{Message: message}
	}
	branch, _ := node.(Branch)
	children := make(map[string]Node, len(branch.Children)+1)
	for key, child := range branch.Children {
		children[key] = child
	}
	children[segments[0]] = set(children[segments[0]], segments[1:], message)
	return Branch{Children: children}
}

// Delete returns a copy of tree without the node at path. Branches emptied by
// the removal are pruned.
func Delete(tree Node, path string) Node {
	pruned, _ := remove(tree, strings.Split(path, "."))
	if pruned == nil {
		return Empty()
	}
	return pruned
}

func remove(node Node, segments []string) (Node, bool) {
	branch, ok := node.(Branch)
	if !ok || len(segments) == 0 {
		return node, false
	}
	child, exists := branch.Children[segments[0]]
	if !exists {
		return node, false
	}

	children := make(map[string]Node, len(branch.Children))
	for key, value := range branch.Children {
		children[key] = value
	}
	if len(segments) == 1 {
		delete(children, segments[0])
	} else {
		updated, changed := remove(child, segments[1:])
		if !changed {
			return node, false
		}
		if isEmpty(updated) {
			delete(children, segments[0])
		} else {
			children[segments[0]] = updated
		}
	}
	if len(children) == 0 {
		return nil, true
	}
	return Branch{Children: children}, true
}

func isEmpty(node Node) bool {
	if node == nil {
		return true
	}
	branch, ok := node.(Branch)
	return ok && len(branch.Children) == 0
}

// Flatten lists every leaf keyed by its dotted path.
func Flatten(tree Node) map[string]string {
	out := make(map[string]string)
	flatten(tree, "", out)
	if len(out) == 0 {
		return nil
	}
	return out
}

func flatten(node Node, prefix string, dest map[string]string) {
	switch typed := node.(type) {
	case Leaf:
		dest[prefix] = typed.Message
	case Branch:
		keys := make([]string, 0, len(typed.Children))
		for key := range typed.Children {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			flatten(typed.Children[key], joinPath(prefix, key), dest)
		}
	}
}

func joinPath(parent, child string) string {
	if parent == "" {
		return child
	}
	return parent + "." + child
}
