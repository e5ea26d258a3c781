// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"errors"
)

// error base
type GenericError string

// to allow for different classes of errors
type InvalidError GenericError
type InvariantError GenericError
type NotFoundError GenericError
type ProcessError GenericError
type ResourceError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised    = ProcessError("already initialised")
	ErrBadParent             = InvariantError("parent link does not match")
	ErrBrokenChain           = InvariantError("duplicate chain is broken")
	ErrBrokenOrder           = InvariantError("ordered list is broken")
	ErrConfigurationNotTable = InvalidError("configuration must return a table")
	ErrCountMismatch         = InvariantError("item count does not match")
	ErrEmptyWord             = InvalidError("word is empty")
	ErrHeightMismatch        = InvariantError("stored height is incorrect")
	ErrInvalidDataDirectory  = InvalidError("data directory is invalid")
	ErrInvalidKeyLength      = InvalidError("key length is invalid")
	ErrInvalidLoggerChannel  = InvalidError("invalid logger channel")
	ErrInvalidOffset         = InvalidError("offset is negative")
	ErrInvalidPlainName      = InvalidError("file name must not contain a directory")
	ErrInvalidRange          = InvalidError("range needs a low and a high bound")
	ErrInvalidRebuildRate    = InvalidError("rebuild rate is invalid")
	ErrInvalidStructPointer  = InvalidError("invalid struct pointer")
	ErrKeyConstruction       = ResourceError("key construction failed")
	ErrMissingQuery          = InvalidError("query is required")
	ErrMissingSource         = InvalidError("source file is required")
	ErrNotBalanced           = InvariantError("tree is not balanced")
	ErrNotOrdered            = InvariantError("keys are out of order")
	ErrOffsetNotWord         = NotFoundError("no word at offset")
	ErrSourceNotFound        = NotFoundError("source file is not found")
	ErrSourceNotRegular      = InvalidError("source is not a regular file")
	ErrValueConstruction     = ResourceError("value construction failed")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e InvalidError) Error() string   { return string(e) }
func (e InvariantError) Error() string { return string(e) }
func (e NotFoundError) Error() string  { return string(e) }
func (e ProcessError) Error() string   { return string(e) }
func (e ResourceError) Error() string  { return string(e) }

// determine the class of an error, wrapped errors are unwrapped
func IsErrInvalid(e error) bool   { var t InvalidError; return errors.As(e, &t) }
func IsErrInvariant(e error) bool { var t InvariantError; return errors.As(e, &t) }
func IsErrNotFound(e error) bool  { var t NotFoundError; return errors.As(e, &t) }
func IsErrProcess(e error) bool   { var t ProcessError; return errors.As(e, &t) }
func IsErrResource(e error) bool  { var t ResourceError; return errors.As(e, &t) }
