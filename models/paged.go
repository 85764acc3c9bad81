// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Paged is one page of a remote paged collection. TotalPages is reported
// by the server on every call and may change between calls.
type Paged[T any] struct {
	Result      []T `json:"result"`
	PageSize    int `json:"pageSize"`
	TotalPages  int `json:"totalPages"`
	CurrentPage int `json:"currentPage"`
}

// PageRequest holds the paging parameters sent with every paged call.
type PageRequest struct {
	Page     int `json:"page"`
	PageSize int `json:"pageSize"`
}
