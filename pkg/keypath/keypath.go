// Package keypath reads and writes values inside nested JSON-like documents
// addressed by dot paths with optional index segments, e.g.
// "用户.当前着装.上衣[0]" or "道具.日常用品.苹果.数量[0]".
package keypath

import (
	"fmt"
	"strconv"
	"strings"
)

type segment struct {
	key   string
	index int
	isIdx bool
}

func parse(path string) ([]segment, error) {
	if path == "" {
		return nil, fmt.Errorf("keypath: empty path")
	}
	var segs []segment
	for _, part := range strings.Split(path, ".") {
		key := part
		for {
			open := strings.IndexByte(key, '[')
			if open < 0 {
				if key != "" {
					segs = append(segs, segment{key: key})
				}
				break
			}
			if open > 0 {
				segs = append(segs, segment{key: key[:open]})
			}
			close := strings.IndexByte(key, ']')
			if close < open {
				return nil, fmt.Errorf("keypath: malformed index in %q", part)
			}
			idx, err := strconv.Atoi(key[open+1 : close])
			if err != nil || idx < 0 {
				return nil, fmt.Errorf("keypath: bad index in %q", part)
			}
			segs = append(segs, segment{index: idx, isIdx: true})
			key = key[close+1:]
			if key == "" {
				break
			}
		}
	}
	if len(segs) == 0 {
		return nil, fmt.Errorf("keypath: empty path")
	}
	return segs, nil
}

// Get resolves path inside doc. The second return is false when any segment
// is missing or of the wrong shape.
func Get(doc map[string]interface{}, path string) (interface{}, bool) {
	segs, err := parse(path)
	if err != nil {
		return nil, false
	}
	var cur interface{} = doc
	for _, s := range segs {
		if s.isIdx {
			arr, ok := cur.([]interface{})
			if !ok || s.index >= len(arr) {
				return nil, false
			}
			cur = arr[s.index]
			continue
		}
		m, ok := cur.(map[string]interface{})
		if !ok {
			return nil, false
		}
		cur, ok = m[s.key]
		if !ok {
			return nil, false
		}
	}
	return cur, true
}

// Set writes value at path inside doc, creating intermediate maps for missing
// key segments. Index segments never grow slices; writing through a missing
// or too-short slice is an error.
func Set(doc map[string]interface{}, path string, value interface{}) error {
	segs, err := parse(path)
	if err != nil {
		return err
	}
	var cur interface{} = doc
	for i, s := range segs {
		last := i == len(segs)-1
		if s.isIdx {
			arr, ok := cur.([]interface{})
			if !ok || s.index >= len(arr) {
				return fmt.Errorf("keypath: %q: index %d out of range", path, s.index)
			}
			if last {
				arr[s.index] = value
				return nil
			}
			cur = arr[s.index]
			continue
		}
		m, ok := cur.(map[string]interface{})
		if !ok {
			return fmt.Errorf("keypath: %q: segment %q is not an object", path, s.key)
		}
		if last {
			m[s.key] = value
			return nil
		}
		next, ok := m[s.key]
		if !ok {
			if segs[i+1].isIdx {
				return fmt.Errorf("keypath: %q: cannot create slice for %q", path, s.key)
			}
			child := map[string]interface{}{}
			m[s.key] = child
			cur = child
			continue
		}
		cur = next
	}
	return nil
}

// Delete removes the value at path. Deleting a missing path is a no-op.
// Only map keys can be deleted; a trailing index segment is an error.
func Delete(doc map[string]interface{}, path string) error {
	segs, err := parse(path)
	if err != nil {
		return err
	}
	if segs[len(segs)-1].isIdx {
		return fmt.Errorf("keypath: %q: cannot delete an index", path)
	}
	var cur interface{} = doc
	for _, s := range segs[:len(segs)-1] {
		if s.isIdx {
			arr, ok := cur.([]interface{})
			if !ok || s.index >= len(arr) {
				return nil
			}
			cur = arr[s.index]
			continue
		}
		m, ok := cur.(map[string]interface{})
		if !ok {
			return nil
		}
		cur, ok = m[s.key]
		if !ok {
			return nil
		}
	}
	m, ok := cur.(map[string]interface{})
	if !ok {
		return nil
	}
	delete(m, segs[len(segs)-1].key)
	return nil
}
