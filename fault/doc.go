// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fault - error instances shared by the tree, index and
// command packages
//
// each error is a single typed instance so callers compare with
// errors.Is or classify with the IsErrX functions, never by message
package fault
