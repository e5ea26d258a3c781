// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wordindex

import (
	"strings"

	"github.com/bitmark-inc/wordtree/avl"
	"github.com/bitmark-inc/wordtree/fault"
)

type node = avl.Node[string, int64]

// Prefix - entries whose key starts with q
//
// q is truncated to the key length since longer queries could never
// match a key
func (i *Index) Prefix(q string) ([]Entry, error) {
	if "" == q {
		return nil, fault.ErrMissingQuery
	}
	q = i.truncate(q)
	queries.WithLabelValues(kindPrefix).Inc()

	cacheKey := kindPrefix + "\x00" + q
	if entries, found := i.cached(cacheKey); found {
		return entries, nil
	}

	i.Lock()
	defer i.Unlock()

	entries := []Entry{}
	for p := i.tree.Ceiling(q); nil != p && strings.HasPrefix(p.Key(), q); p = p.Successor() {
		entries = appendChain(entries, p)
	}
	i.results.SetDefault(cacheKey, entries)

	i.log.Debugf("prefix: %q  results: %d", q, len(entries))
	return copyEntries(entries), nil
}

// Range - entries whose key is not below low and whose first len(high)
// bytes are not above high
//
// the bounds are compared over their own lengths so a range of "j" to
// "pr" includes "jam" and "pro" but not "pub"
func (i *Index) Range(low string, high string) ([]Entry, error) {
	if "" == low || "" == high {
		return nil, fault.ErrInvalidRange
	}
	queries.WithLabelValues(kindRange).Inc()

	cacheKey := kindRange + "\x00" + low + "\x00" + high
	if entries, found := i.cached(cacheKey); found {
		return entries, nil
	}

	i.Lock()
	defer i.Unlock()

	// ceiling(low) is the first key with key[:len(low)] >= low and
	// truncation preserves order so the upper test fails only once
	entries := []Entry{}
	for p := i.tree.Ceiling(low); nil != p && !above(p.Key(), high); p = p.Successor() {
		entries = appendChain(entries, p)
	}
	i.results.SetDefault(cacheKey, entries)

	i.log.Debugf("range: %q to %q  results: %d", low, high, len(entries))
	return copyEntries(entries), nil
}

// ScanPrefix - Prefix by examining every entry
func (i *Index) ScanPrefix(q string) ([]Entry, error) {
	if "" == q {
		return nil, fault.ErrMissingQuery
	}
	q = i.truncate(q)
	return i.scan(func(key string) bool {
		return strings.HasPrefix(key, q)
	}), nil
}

// ScanRange - Range by examining every entry
func (i *Index) ScanRange(low string, high string) ([]Entry, error) {
	if "" == low || "" == high {
		return nil, fault.ErrInvalidRange
	}
	return i.scan(func(key string) bool {
		return !below(key, low) && !above(key, high)
	}), nil
}

func (i *Index) scan(match func(string) bool) []Entry {
	i.Lock()
	defer i.Unlock()

	entries := []Entry{}
	i.tree.InOrder(func(p *node) bool {
		if match(p.Key()) {
			entries = append(entries, Entry{Key: p.Key(), Offset: p.Value()})
		}
		return true
	})
	return entries
}

func (i *Index) cached(cacheKey string) ([]Entry, bool) {
	obj, found := i.results.Get(cacheKey)
	if !found {
		return nil, false
	}
	cacheHits.Inc()
	return copyEntries(obj.([]Entry)), true
}

// append a chain head and all its duplicates
func appendChain(entries []Entry, head *node) []Entry {
	end := head.Tail().Next()
	for p := head; p != end; p = p.Next() {
		entries = append(entries, Entry{Key: p.Key(), Offset: p.Value()})
	}
	return entries
}

func copyEntries(entries []Entry) []Entry {
	return append(make([]Entry, 0, len(entries)), entries...)
}

// true if the first len(bound) bytes of key sort before bound
func below(key string, bound string) bool {
	return prefixOf(key, len(bound)) < bound
}

// true if the first len(bound) bytes of key sort after bound
func above(key string, bound string) bool {
	return prefixOf(key, len(bound)) > bound
}

func prefixOf(key string, n int) string {
	if len(key) > n {
		return key[:n]
	}
	return key
}
