// Copyright (C) 2024, Codedestate. All rights reserved.
// See the file LICENSE for licensing terms.

package nft

// BlockContext is the point-in-time an expiration is compared against.
// Timestamp is in milliseconds.
type BlockContext struct {
	Height    uint64
	Timestamp int64
}

// Expiration is a point after which a grant lapses. At most one of
// AtHeight/AtTime is set; the zero value never expires.
type Expiration struct {
	AtHeight uint64 `json:"at_height,omitempty"`
	AtTime   int64  `json:"at_time,omitempty"`
}

func ExpireAtHeight(height uint64) Expiration {
	return Expiration{AtHeight: height}
}

func ExpireAtTime(t int64) Expiration {
	return Expiration{AtTime: t}
}

func ExpireNever() Expiration {
	return Expiration{}
}

// IsExpired reports whether the expiration has lapsed at [blk].
func (e Expiration) IsExpired(blk BlockContext) bool {
	switch {
	case e.AtHeight != 0:
		return blk.Height >= e.AtHeight
	case e.AtTime != 0:
		return blk.Timestamp >= e.AtTime
	default:
		return false
	}
}
