// Copyright (C) 2024, Codedestate. All rights reserved.
// See the file LICENSE for licensing terms.

package nft

// Approval grants [Spender] the right to transfer/send the token until
// [Expires] lapses.
type Approval struct {
	Spender string     `json:"spender"`
	Expires Expiration `json:"expires"`
}

func (a Approval) IsExpired(blk BlockContext) bool {
	return a.Expires.IsExpired(blk)
}

// LongTermRental is the month-to-month listing attached to a token. The
// registry persists it as-is; listing rules live with the execution
// handlers.
type LongTermRental struct {
	Listed            bool   `json:"listed"`
	Denom             string `json:"denom,omitempty"`
	PricePerMonth     uint64 `json:"price_per_month,omitempty"`
	RefundableDeposit uint64 `json:"refundable_deposit,omitempty"`
	AutoApprove       bool   `json:"auto_approve,omitempty"`
}

// ShortTermRental is the nightly listing attached to a token.
type ShortTermRental struct {
	Listed      bool   `json:"listed"`
	Denom       string `json:"denom,omitempty"`
	PricePerDay uint64 `json:"price_per_day,omitempty"`
	MinimumStay uint64 `json:"minimum_stay,omitempty"`
	AutoApprove bool   `json:"auto_approve,omitempty"`
}

// Rental is one active or pending stay.
type Rental struct {
	Tenant     string `json:"tenant"`
	Deposit    uint64 `json:"deposit,omitempty"`
	CheckInAt  int64  `json:"checkin_at,omitempty"`
	CheckOutAt int64  `json:"checkout_at,omitempty"`
	Approved   bool   `json:"approved,omitempty"`
}

// Bid is an open purchase offer on a token.
type Bid struct {
	Bidder string `json:"bidder"`
	Amount uint64 `json:"amount"`
	Denom  string `json:"denom,omitempty"`
}

// Sell is the fixed-price sale listing attached to a token.
type Sell struct {
	Listed      bool   `json:"listed"`
	Denom       string `json:"denom,omitempty"`
	Price       uint64 `json:"price,omitempty"`
	AutoApprove bool   `json:"auto_approve,omitempty"`
}

// CollectionInfo describes the registry's collection as a whole.
type CollectionInfo struct {
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
}

// TokenRecord is the per-token state persisted by the registry. The
// extension payload T is caller-defined and only required to be
// JSON-serializable; the registry never inspects it.
type TokenRecord[T any] struct {
	Owner Owner `json:"owner"`

	// Approvals are cleared on transfer and so never accumulate much.
	Approvals []Approval `json:"approvals"`

	LongTermRental  LongTermRental  `json:"longterm_rental"`
	ShortTermRental ShortTermRental `json:"shortterm_rental"`
	Rentals         []Rental        `json:"rentals"`
	Bids            []Bid           `json:"bids"`
	Sell            Sell            `json:"sell"`

	TokenURI string `json:"token_uri,omitempty"`

	Extension T `json:"extension"`
}

// ValidApproval returns the live (non-expired) approval for [spender], if
// any.
func (t *TokenRecord[T]) ValidApproval(spender string, blk BlockContext) (Approval, bool) {
	for _, a := range t.Approvals {
		if a.Spender == spender && !a.IsExpired(blk) {
			return a, true
		}
	}
	return Approval{}, false
}
