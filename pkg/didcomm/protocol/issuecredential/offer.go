/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package issuecredential

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/hyperledger/aries-credoffer/pkg/didcomm/common/service"
	"github.com/hyperledger/aries-credoffer/pkg/didcomm/protocol/decorator"
)

// CreateOffer returns an offer with a freshly generated @id and nothing else set.
func CreateOffer() OfferCredential {
	return OfferCredential{
		Type:              OfferCredentialMsgTypeV1,
		ID:                uuid.New().String(),
		CredentialPreview: NewPreviewCredential(),
		OffersAttach:      []decorator.Attachment{},
	}
}

// SetID returns a copy of the offer with the given @id.
func (o OfferCredential) SetID(id string) OfferCredential {
	o.ID = id

	return o
}

// SetComment returns a copy of the offer with the given comment.
func (o OfferCredential) SetComment(comment string) OfferCredential {
	o.Comment = comment

	return o
}

// SetThread returns a copy of the offer with the given thread decorator.
func (o OfferCredential) SetThread(thread decorator.Thread) OfferCredential {
	if thread.ReceivedOrders != nil {
		orders := make(map[string]int, len(thread.ReceivedOrders))
		for k, v := range thread.ReceivedOrders {
			orders[k] = v
		}

		thread.ReceivedOrders = orders
	}

	if thread.SenderOrder != nil {
		order := *thread.SenderOrder
		thread.SenderOrder = &order
	}

	o.Thread = &thread

	return o
}

// SetOffersAttach returns a copy of the offer carrying credentialOffer, the libindy offer JSON text,
// as a base64 encoded attachment.
func (o OfferCredential) SetOffersAttach(credentialOffer string) (OfferCredential, error) {
	return o.SetOffersAttachWithEncoding(credentialOffer, decorator.DefaultEncoding)
}

// SetOffersAttachWithEncoding is SetOffersAttach with a chosen transfer encoding.
// The new attachment replaces any offer attachment set before.
//
// With decorator.EncodingJSON the offer text is kept as given only while the offer stays in memory:
// once the offer goes through a DIDComm envelope, the inline JSON comes back compacted with its
// keys sorted. Base64 keeps the text byte for byte on the wire.
func (o OfferCredential) SetOffersAttachWithEncoding(credentialOffer string,
	encoding decorator.AttachmentEncoding) (OfferCredential, error) {
	attachment, err := decorator.NewJSONAttachment(OffersAttachID, credentialOffer, encoding)
	if err != nil {
		return OfferCredential{}, fmt.Errorf("set offers attach: %w", err)
	}

	o.OffersAttach = []decorator.Attachment{attachment}

	return o, nil
}

// SetCredentialPreviewData returns a copy of the offer with the whole preview replaced.
// Attributes are validated when they are added to a preview, not here.
func (o OfferCredential) SetCredentialPreviewData(preview PreviewCredential) OfferCredential {
	if preview.Attributes != nil {
		attrs := make([]Attribute, len(preview.Attributes))
		copy(attrs, preview.Attributes)

		preview.Attributes = attrs
	}

	o.CredentialPreview = preview

	return o
}

// AddCredentialPreviewData returns a copy of the offer with one more preview attribute.
func (o OfferCredential) AddCredentialPreviewData(name, value string, mimeType MimeType) (OfferCredential, error) {
	preview, err := o.CredentialPreview.AddValue(name, value, mimeType)
	if err != nil {
		return OfferCredential{}, fmt.Errorf("add credential preview data: %w", err)
	}

	o.CredentialPreview = preview

	return o, nil
}

// OffersAttachContent returns the decoded content of the offer attachment.
func (o *OfferCredential) OffersAttachContent() (string, error) {
	return decorator.FirstContent(o.OffersAttach)
}

// ToDIDCommMsg builds the DIDComm envelope of the offer.
func (o *OfferCredential) ToDIDCommMsg() (service.DIDCommMsgMap, error) {
	msg := *o
	if msg.Type == "" {
		msg.Type = OfferCredentialMsgTypeV1
	}

	return service.NewDIDCommMsgMap(&msg)
}

// ParseOfferCredential reads an offer out of its DIDComm envelope.
func ParseOfferCredential(msg service.DIDCommMsgMap) (OfferCredential, error) {
	if t := msg.Type(); t != "" && t != OfferCredentialMsgTypeV1 {
		return OfferCredential{}, fmt.Errorf("%w: unexpected message type %q", ErrValidation, t)
	}

	offer := OfferCredential{}

	if err := msg.Decode(&offer); err != nil {
		return OfferCredential{}, fmt.Errorf("%w: decode offer credential: %v", ErrInvalidJSON, err)
	}

	return offer, nil
}
