// Copyright 2016, S&K Software Development Ltd.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package crc implements generic CRC calculations up to 64 bits wide.
// It aims to be fairly complete, allowing users to match pretty much
// any CRC algorithm used in the wild by configuring an Engine with the
// right Config, and reasonably fast: in addition to the tableless
// bitwise kernel, a slice-by-1 and a slice-by-8 kernel are available,
// selected with WithMethod.
//
// This package has been largely inspired by Ross Williams' 1993 paper "A
// Painless Guide to CRC Error Detection Algorithms". The built-in
// catalogue of named configurations is sourced from the CRC catalogue at
// https://reveng.sourceforge.io/crc-catalogue/.
package crc
