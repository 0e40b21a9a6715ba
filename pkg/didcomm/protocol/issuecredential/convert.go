/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package issuecredential

import (
	"fmt"

	"github.com/hyperledger/aries-framework-go/component/log"
	"github.com/tidwall/gjson"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/hyperledger/aries-credoffer/pkg/didcomm/protocol/issuecredential/legacy"
)

const credDefIDKey = "cred_def_id"

var logger = log.New("aries-framework/issuecredential/convert") //nolint:gochecknoglobals

// FromLegacy converts a legacy credential offer into an issue-credential offer.
//
// Attributes are added in name order with the text/plain mime-type. A value that is not a
// JSON string is taken as an empty string rather than rejected. The @id is the legacy thread_id,
// the libindy offer is attached verbatim. Comment and thread are left empty.
func FromLegacy(offer *legacy.CredentialOffer) (OfferCredential, error) {
	if offer == nil {
		return OfferCredential{}, fmt.Errorf("%w: legacy credential offer is nil", ErrValidation)
	}

	preview := NewPreviewCredential()

	names := maps.Keys(offer.CredentialAttrs)
	slices.Sort(names)

	for _, name := range names {
		value, ok := offer.CredentialAttrs[name].(string)
		if !ok {
			logger.Debugf("legacy attribute %q holds a non-string value, using empty string", name)
		}

		var err error

		preview, err = preview.AddValue(name, value, MimeTypePlain)
		if err != nil {
			return OfferCredential{}, fmt.Errorf("legacy credential attributes: %w", err)
		}
	}

	var id string
	if offer.ThreadID != nil {
		id = *offer.ThreadID
	}

	return CreateOffer().
		SetID(id).
		SetCredentialPreviewData(preview).
		SetOffersAttach(offer.LibindyOffer)
}

// ToLegacy converts an issue-credential offer into a legacy credential offer.
//
// The conversion is lossy. Comment, thread and mime-types are dropped, preview attributes
// sharing a name collapse to the last one, and to_did, from_did, schema_seq_no, claim_name,
// claim_id and msg_ref_id are left empty. A missing or non-string cred_def_id in the offer
// payload gives an empty cred_def_id.
//
// libindy_offer is the decoded attachment text. It matches the attached text exactly for base64
// attachments and for inline JSON set on this offer; inline JSON read from a DIDComm message is
// compacted with its keys sorted.
func ToLegacy(offer *OfferCredential) (*legacy.CredentialOffer, error) {
	if offer == nil {
		return nil, fmt.Errorf("%w: credential offer is nil", ErrValidation)
	}

	indyOffer, err := offer.OffersAttachContent()
	if err != nil {
		return nil, fmt.Errorf("%w: cannot read Indy Offer: %w", ErrInvalidJSON, err)
	}

	if !gjson.Valid(indyOffer) {
		return nil, fmt.Errorf("%w: cannot deserialize Indy Offer", ErrInvalidJSON)
	}

	parsed := gjson.Parse(indyOffer)
	if !parsed.IsObject() {
		return nil, fmt.Errorf("%w: Indy Offer is not a JSON object", ErrInvalidJSON)
	}

	var credDefID string

	switch v := parsed.Get(credDefIDKey); {
	case v.Type == gjson.String:
		credDefID = v.String()
	case v.Exists():
		logger.Debugf("Indy Offer %s is not a string, using empty string", credDefIDKey)
	}

	attrs := make(map[string]interface{}, len(offer.CredentialPreview.Attributes))
	for _, attr := range offer.CredentialPreview.Attributes {
		attrs[attr.Name] = attr.Value
	}

	threadID := offer.ID

	return &legacy.CredentialOffer{
		MsgType:         legacy.MsgTypeCredOffer,
		Version:         legacy.Version,
		CredentialAttrs: attrs,
		CredDefID:       credDefID,
		LibindyOffer:    indyOffer,
		ThreadID:        &threadID,
	}, nil
}
