/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package legacy holds the flat credential offer schema spoken by agents that predate
// the attachment based issue-credential messages.
package legacy

import (
	"encoding/json"
	"errors"
	"fmt"
)

const (
	// MsgTypeCredOffer is the message type tag of a legacy credential offer.
	MsgTypeCredOffer = "CRED_OFFER"
	// Version is the schema version written into converted offers.
	Version = "0.1"
)

// ErrInvalidJSON is returned when a message or its embedded offer is not valid JSON.
var ErrInvalidJSON = errors.New("invalid JSON")

// CredentialOffer is a legacy credential offer message.
type CredentialOffer struct {
	MsgType string `json:"msg_type"`
	Version string `json:"version"`
	ToDID   string `json:"to_did"`
	FromDID string `json:"from_did"`
	// CredentialAttrs maps attribute names to raw JSON values.
	CredentialAttrs map[string]interface{} `json:"credential_attrs"`
	SchemaSeqNo     uint32                 `json:"schema_seq_no"`
	ClaimName       string                 `json:"claim_name"`
	ClaimID         string                 `json:"claim_id"`
	MsgRefID        *string                `json:"msg_ref_id,omitempty"`
	CredDefID       string                 `json:"cred_def_id"`
	// LibindyOffer is the offer produced by libindy, kept as JSON text.
	LibindyOffer string  `json:"libindy_offer"`
	ThreadID     *string `json:"thread_id,omitempty"`
}

// IndyOffer is the libindy credential offer carried in LibindyOffer.
type IndyOffer struct {
	SchemaID            string                 `json:"schema_id"`
	CredDefID           string                 `json:"cred_def_id"`
	KeyCorrectnessProof map[string]interface{} `json:"key_correctness_proof,omitempty"`
	Nonce               string                 `json:"nonce"`
}

// Parse decodes a legacy credential offer message.
func Parse(raw []byte) (*CredentialOffer, error) {
	offer := &CredentialOffer{}

	if err := json.Unmarshal(raw, offer); err != nil {
		return nil, fmt.Errorf("%w: cannot deserialize legacy credential offer: %v", ErrInvalidJSON, err)
	}

	return offer, nil
}

// IndyOffer decodes the embedded libindy offer.
func (o *CredentialOffer) IndyOffer() (*IndyOffer, error) {
	offer := &IndyOffer{}

	if err := json.Unmarshal([]byte(o.LibindyOffer), offer); err != nil {
		return nil, fmt.Errorf("%w: cannot deserialize Indy Offer: %v", ErrInvalidJSON, err)
	}

	return offer, nil
}
