// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package model

// Newsletter subscriber statuses.
const (
	SubscriberStatusActive       = "active"
	SubscriberStatusUnsubscribed = "unsubscribed"
)

// UnsubscribeTokenLength is the length, in hex characters, of the
// capability token embedded in unsubscribe links.
const UnsubscribeTokenLength = 64

// Subscription sources recorded at signup time.
const (
	SubscribeSourceWebsite = "website"
	SubscribeSourceImport  = "import"
)
