// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package tokenizer - split text into words with their byte offsets
//
// a word is a maximal run of lower case ASCII letters, '-' and ':';
// every other byte is a separator
package tokenizer

import (
	"bufio"
	"io"

	"github.com/bitmark-inc/wordtree/fault"
)

// maximum length of a word that WordAt will read back
const maximumWordLength = 1024

// Token - one word and the offset of its first byte in the source
type Token struct {
	Word   string
	Offset int64
}

// IsWordByte - true if the byte can be part of a word
func IsWordByte(b byte) bool {
	return b >= 'a' && b <= 'z' || '-' == b || ':' == b
}

// Scan - call fn for every word of the reader in source order
//
// scanning stops at the first error from fn and that error is returned
func Scan(r io.Reader, fn func(Token) error) error {
	br := bufio.NewReader(r)

	word := make([]byte, 0, 64)
	start := int64(0)
	offset := int64(0)

	for {
		b, err := br.ReadByte()
		if io.EOF == err {
			break
		}
		if nil != err {
			return err
		}

		if IsWordByte(b) {
			if 0 == len(word) {
				start = offset
			}
			word = append(word, b)
		} else if 0 != len(word) {
			if err := fn(Token{Word: string(word), Offset: start}); nil != err {
				return err
			}
			word = word[:0]
		}
		offset += 1
	}

	// final word not followed by a separator
	if 0 != len(word) {
		return fn(Token{Word: string(word), Offset: start})
	}
	return nil
}

// All - collect every token of the reader
func All(r io.Reader) ([]Token, error) {
	tokens := make([]Token, 0, 256)
	err := Scan(r, func(t Token) error {
		tokens = append(tokens, t)
		return nil
	})
	if nil != err {
		return nil, err
	}
	return tokens, nil
}

// WordAt - read back the word that starts at offset
func WordAt(r io.ReaderAt, offset int64) (string, error) {
	if offset < 0 {
		return "", fault.ErrOffsetNotWord
	}
	buffer := make([]byte, maximumWordLength)
	n, err := r.ReadAt(buffer, offset)
	if nil != err && io.EOF != err {
		return "", err
	}

	length := 0
	for length < n && IsWordByte(buffer[length]) {
		length += 1
	}
	if 0 == length {
		return "", fault.ErrOffsetNotWord
	}
	return string(buffer[:length]), nil
}
