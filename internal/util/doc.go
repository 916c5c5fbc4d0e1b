// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides small helpers shared across slashdoc.
//
// # Key Functions
//
// String Utilities:
//   - TruncateWidth, PadWidth: display-width aware truncation and padding
//   - StringWidth: terminal cell width of a string
//
// File Operations:
//   - AtomicWriteFile: Crash-safe file writing with fsync
//
// # Usage
//
//	// Align a dropdown column regardless of emoji or CJK content
//	cell := util.PadWidth(item.Icon, 2)
//
//	// Write files atomically to prevent data loss
//	err := util.AtomicWriteFile(path, data, 0644)
package util
