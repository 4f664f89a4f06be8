// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package db

const defaultPageSize uint64 = 10

// Offset computes the window offset for a 1-based page number. Page values
// below 1 are treated as the first page.
func Offset(pageParam int64, pageSize uint64) uint64 {
	if pageParam < 1 {
		pageParam = 1
	}

	return pageSize * uint64(pageParam-1)
}

// PageSize returns the window size for a requested limit, falling back to
// the default for zero or negative values.
func PageSize(sizeParam int64) uint64 {
	if sizeParam < 1 {
		return defaultPageSize
	}

	return uint64(sizeParam)
}
