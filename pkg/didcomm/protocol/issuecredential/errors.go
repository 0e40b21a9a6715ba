/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package issuecredential

import (
	"errors"

	"github.com/hyperledger/aries-credoffer/pkg/didcomm/protocol/decorator"
	"github.com/hyperledger/aries-credoffer/pkg/didcomm/protocol/issuecredential/legacy"
)

var (
	// ErrValidation is returned when a value cannot be represented under its mime-type
	// or a message is missing required data.
	ErrValidation = errors.New("validation error")
	// ErrInvalidJSON is returned when the offer payload is absent or not a JSON object.
	ErrInvalidJSON = legacy.ErrInvalidJSON
	// ErrEncoding is returned when the offer payload cannot be attached.
	ErrEncoding = decorator.ErrEncoding
	// ErrDecode is returned when the offer attachment cannot be decoded.
	ErrDecode = decorator.ErrDecode
)
