package form

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ErrPathConflict is returned when two entries disagree about the container
// kind at the same path, e.g. "a.b=1" followed by "a.0=2".
var ErrPathConflict = errors.New("conflicting container kinds on key path")

var (
	indexPattern   = regexp.MustCompile(`^\d+$`)
	bracketPattern = regexp.MustCompile(`\[\d*\]$`)
)

// Generate flattens an ordered entry set into a nested object, interpreting
// dotted paths and bracket suffixes per the package conventions. File entries
// contribute their filename as the value.
func Generate(entries Entries) (map[string]any, error) {
	root := newNode(kindObject)
	for _, e := range entries {
		if err := root.insert(e.Key, e.Value); err != nil {
			return nil, err
		}
	}
	return root.materializeObject(), nil
}

// ── internal container union ─────────────────────────────────────────────────

type nodeKind int

const (
	kindObject nodeKind = iota + 1
	kindList
	kindValue
)

// node is the tagged container union: the kind is set on creation and a
// later entry may never change it.
type node struct {
	kind nodeKind
	obj  map[string]*node
	list []*node
	val  any
}

func newNode(kind nodeKind) *node {
	n := &node{kind: kind}
	if kind == kindObject {
		n.obj = make(map[string]*node)
	}
	return n
}

func valueNode(v any) *node { return &node{kind: kindValue, val: v} }

// insert walks the dotted key, creating intermediate containers, and places
// the value per the last-segment rules.
func (n *node) insert(key string, value any) error {
	segs := strings.Split(key, ".")
	cur := n

	for i := 0; i < len(segs)-1; i++ {
		wantList := indexPattern.MatchString(segs[i+1])
		next, err := cur.descend(segs[i], wantList)
		if err != nil {
			return fmt.Errorf("form: key %q: %w", key, err)
		}
		cur = next
	}

	last := segs[len(segs)-1]
	switch {
	case bracketPattern.MatchString(last):
		// "tags[0]" / "tags[]": strip the suffix, append under the field name.
		name := last[:strings.LastIndex(last, "[")]
		if cur.kind != kindObject {
			return fmt.Errorf("form: key %q: %w", key, ErrPathConflict)
		}
		lst, ok := cur.obj[name]
		if !ok {
			lst = newNode(kindList)
			cur.obj[name] = lst
		}
		if lst.kind != kindList {
			return fmt.Errorf("form: key %q: %w", key, ErrPathConflict)
		}
		lst.list = append(lst.list, valueNode(value))

	case indexPattern.MatchString(last):
		// "list.0": the parent-segment decision already made cur a list;
		// values accumulate in encounter order.
		if cur.kind != kindList {
			return fmt.Errorf("form: key %q: %w", key, ErrPathConflict)
		}
		cur.list = append(cur.list, valueNode(value))

	default:
		if cur.kind != kindObject {
			return fmt.Errorf("form: key %q: %w", key, ErrPathConflict)
		}
		// Later duplicates of a plain field overwrite earlier ones.
		cur.obj[last] = valueNode(value)
	}
	return nil
}

// descend resolves (creating if missing) the intermediate container for seg.
func (n *node) descend(seg string, wantList bool) (*node, error) {
	switch n.kind {
	case kindObject:
		child, ok := n.obj[seg]
		if !ok {
			child = newNode(containerKind(wantList))
			n.obj[seg] = child
		}
		if child.kind != containerKind(wantList) {
			return nil, ErrPathConflict
		}
		return child, nil

	case kindList:
		idx, err := strconv.Atoi(seg)
		if err != nil {
			return nil, ErrPathConflict
		}
		for len(n.list) <= idx {
			n.list = append(n.list, nil)
		}
		child := n.list[idx]
		if child == nil {
			child = newNode(containerKind(wantList))
			n.list[idx] = child
		}
		if child.kind != containerKind(wantList) {
			return nil, ErrPathConflict
		}
		return child, nil

	default:
		return nil, ErrPathConflict
	}
}

func containerKind(wantList bool) nodeKind {
	if wantList {
		return kindList
	}
	return kindObject
}

// ── materialization ──────────────────────────────────────────────────────────

func (n *node) materialize() any {
	switch n.kind {
	case kindValue:
		return n.val
	case kindList:
		out := make([]any, len(n.list))
		for i, c := range n.list {
			if c != nil {
				out[i] = c.materialize()
			}
		}
		return out
	default:
		return n.materializeObject()
	}
}

func (n *node) materializeObject() map[string]any {
	out := make(map[string]any, len(n.obj))
	for k, c := range n.obj {
		out[k] = c.materialize()
	}
	return out
}
