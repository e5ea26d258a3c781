// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wordindex

import (
	"bytes"
	"io"
	"io/ioutil"
	"os"
	"strings"
	"sync"
	"time"

	cache "github.com/patrickmn/go-cache"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/wordtree/avl"
	"github.com/bitmark-inc/wordtree/fault"
	"github.com/bitmark-inc/wordtree/fingerprint"
	"github.com/bitmark-inc/wordtree/tokenizer"
)

// DefaultKeyLength - number of leading bytes of a word used as its key
const DefaultKeyLength = 3

// DefaultExpiry - lifetime of a cached query result
const DefaultExpiry = 2 * time.Minute

// Entry - one indexed word
type Entry struct {
	Key    string `json:"key"`
	Offset int64  `json:"offset"`
}

// Stats - summary of the index
type Stats struct {
	Count       int                     `json:"count"`
	Distinct    int                     `json:"distinct"`
	Height      int                     `json:"height"`
	KeyLength   int                     `json:"key_length"`
	Fingerprint fingerprint.Fingerprint `json:"fingerprint"`
	Modified    bool                    `json:"modified"`
}

// Index - word index over a text source
type Index struct {
	sync.Mutex // to allow locking

	log *logger.L

	keyLength int
	tree      *avl.Tree[string, int64]

	// fingerprint of the last loaded source, modified is set when
	// words were added or removed since that load
	fingerprint fingerprint.Fingerprint
	modified    bool

	results *cache.Cache
}

// New - create an empty index
//
// expiry is the lifetime of cached query results, zero selects the
// default
func New(keyLength int, expiry time.Duration) (*Index, error) {
	if keyLength < 1 {
		return nil, fault.ErrInvalidKeyLength
	}
	if expiry <= 0 {
		expiry = DefaultExpiry
	}

	i := &Index{
		log:       logger.New("wordindex"),
		keyLength: keyLength,
		results:   cache.New(expiry, 2*expiry),
	}
	i.tree = i.newTree()

	i.log.Debugf("created: key length: %d  cache expiry: %s", keyLength, expiry)
	return i, nil
}

// a tree whose keys are the first keyLength bytes of each word
func (i *Index) newTree() *avl.Tree[string, int64] {
	return avl.NewFuncs(avl.Funcs[string, int64]{
		CompareKeys: strings.Compare,
		NewKey: func(word string) (string, error) {
			return i.truncate(word), nil
		},
		NewValue: func(offset int64) (int64, error) {
			if offset < 0 {
				return 0, fault.ErrInvalidOffset
			}
			return offset, nil
		},
	})
}

func (i *Index) truncate(word string) string {
	if len(word) > i.keyLength {
		return word[:i.keyLength]
	}
	return word
}

// KeyLength - number of leading bytes used as the key
func (i *Index) KeyLength() int {
	return i.keyLength
}

// Load - replace the index contents with the words of a reader
func (i *Index) Load(r io.Reader) error {
	h := fingerprint.NewHash()
	tree := i.newTree()

	err := tokenizer.Scan(io.TeeReader(r, h), func(token tokenizer.Token) error {
		return tree.Insert(token.Word, token.Offset)
	})
	if nil != err {
		tree.Destroy()
		i.log.Errorf("load failed: %s", err)
		return err
	}

	f := fingerprint.FromHash(h)
	count := tree.Count()
	distinct := tree.Distinct()

	i.Lock()
	old := i.tree
	i.tree = tree
	i.fingerprint = f
	i.modified = false
	i.changed()
	i.Unlock()

	old.Destroy()
	rebuilds.Inc()

	i.log.Infof("loaded: %d words  %d keys  fingerprint: %s", count, distinct, f)
	return nil
}

// LoadFile - load the index from a file
//
// the file is skipped when its fingerprint matches the current
// unmodified index; returns true if the index was rebuilt
func (i *Index) LoadFile(fileName string) (bool, error) {
	if "" == fileName {
		return false, fault.ErrMissingSource
	}

	info, err := os.Stat(fileName)
	if os.IsNotExist(err) {
		return false, fault.ErrSourceNotFound
	}
	if nil != err {
		return false, err
	}
	if !info.Mode().IsRegular() {
		return false, fault.ErrSourceNotRegular
	}

	data, err := ioutil.ReadFile(fileName)
	if nil != err {
		return false, err
	}

	f := fingerprint.Sum(data)
	i.Lock()
	unchanged := !i.modified && f == i.fingerprint
	i.Unlock()
	if unchanged {
		i.log.Debugf("source: %q unchanged", fileName)
		return false, nil
	}

	if err := i.Load(bytes.NewReader(data)); nil != err {
		return false, err
	}
	return true, nil
}

// Fingerprint - fingerprint of the last loaded source
func (i *Index) Fingerprint() fingerprint.Fingerprint {
	i.Lock()
	defer i.Unlock()
	return i.fingerprint
}

// Add - index one word at an offset
func (i *Index) Add(word string, offset int64) error {
	if "" == word {
		return fault.ErrEmptyWord
	}
	if offset < 0 {
		return fault.ErrInvalidOffset
	}

	i.Lock()
	defer i.Unlock()

	if err := i.tree.Insert(word, offset); nil != err {
		return err
	}
	i.modified = true
	i.changed()
	return nil
}

// Remove - remove the most recently added offset of a word's key
//
// returns false if the key is not in the index
func (i *Index) Remove(word string) bool {
	i.Lock()
	defer i.Unlock()

	if !i.tree.Delete(i.truncate(word)) {
		return false
	}
	i.modified = true
	i.changed()
	return true
}

// Entries - every entry in key order, repeated keys in source order
func (i *Index) Entries() []Entry {
	i.Lock()
	defer i.Unlock()

	entries := make([]Entry, 0, i.tree.Count())
	i.tree.InOrder(func(p *avl.Node[string, int64]) bool {
		entries = append(entries, Entry{Key: p.Key(), Offset: p.Value()})
		return true
	})
	return entries
}

// Dump - ASCII drawing of the underlying tree, returns its depth
func (i *Index) Dump(w io.Writer) int {
	i.Lock()
	defer i.Unlock()
	return i.tree.Print(w, true)
}

// Check - verify the structure of the underlying tree
func (i *Index) Check() error {
	i.Lock()
	defer i.Unlock()
	return i.tree.Check()
}

// Stats - summary of the index
func (i *Index) Stats() Stats {
	i.Lock()
	defer i.Unlock()

	return Stats{
		Count:       i.tree.Count(),
		Distinct:    i.tree.Distinct(),
		Height:      i.tree.Height(),
		KeyLength:   i.keyLength,
		Fingerprint: i.fingerprint,
		Modified:    i.modified,
	}
}

// Close - release all entries
func (i *Index) Close() {
	i.Lock()
	defer i.Unlock()

	i.tree.Destroy()
	i.results.Flush()
	i.log.Debug("closed")
}

// must hold lock to call this
func (i *Index) changed() {
	i.results.Flush()
	entriesGauge.Set(float64(i.tree.Count()))
	distinctGauge.Set(float64(i.tree.Distinct()))
}
