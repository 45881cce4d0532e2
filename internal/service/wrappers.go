// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

// ListServiceWrapper defines middleware composition for ListService.
// Implementations wrap an existing ListService to add behavior such as
// validation.
type ListServiceWrapper interface {
	Wrap(ListService) ListService
}

// ItemServiceWrapper is the ItemService counterpart of ListServiceWrapper.
type ItemServiceWrapper interface {
	Wrap(ItemService) ItemService
}
