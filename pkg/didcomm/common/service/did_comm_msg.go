/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package service holds the map form of DIDComm messages.
package service

import (
	"encoding/json"
	"fmt"

	"github.com/mitchellh/mapstructure"
)

const (
	jsonID       = "@id"
	jsonType     = "@type"
	jsonThread   = "~thread"
	jsonThreadID = "thid"

	jsonTag = "json"
)

// DIDCommMsgMap is the map form of a DIDComm message, the envelope handed over to transport.
type DIDCommMsgMap map[string]interface{}

// NewDIDCommMsgMap converts a message model into DIDCommMsgMap using its JSON representation.
// The payload is only read, the returned map shares no memory with it.
func NewDIDCommMsgMap(payload interface{}) (DIDCommMsgMap, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal message: %w", err)
	}

	return ParseDIDCommMsgMap(raw)
}

// ParseDIDCommMsgMap returns DIDCommMsgMap with the message's content.
func ParseDIDCommMsgMap(payload []byte) (DIDCommMsgMap, error) {
	var msg DIDCommMsgMap

	err := json.Unmarshal(payload, &msg)
	if err != nil {
		return nil, fmt.Errorf("invalid payload data format: %w", err)
	}

	if msg == nil {
		return nil, fmt.Errorf("invalid payload data format: not a JSON object")
	}

	return msg, nil
}

// ID returns the message id.
func (m DIDCommMsgMap) ID() string {
	return m.stringField(jsonID)
}

// Type returns the message type.
func (m DIDCommMsgMap) Type() string {
	return m.stringField(jsonType)
}

// ThreadID returns the message thread id, falling back to the message id when no thread is set.
func (m DIDCommMsgMap) ThreadID() string {
	if thid := m.threadField(jsonThreadID); thid != "" {
		return thid
	}

	return m.ID()
}

// Decode converts the message to the given model.
func (m DIDCommMsgMap) Decode(v interface{}) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Squash:           true,
		Result:           v,
		TagName:          jsonTag,
	})
	if err != nil {
		return fmt.Errorf("new decoder: %w", err)
	}

	return decoder.Decode(map[string]interface{}(m))
}

func (m DIDCommMsgMap) stringField(key string) string {
	if m == nil || m[key] == nil {
		return ""
	}

	res, ok := m[key].(string)
	if !ok {
		return ""
	}

	return res
}

func (m DIDCommMsgMap) threadField(key string) string {
	if m == nil || m[jsonThread] == nil {
		return ""
	}

	thread, ok := m[jsonThread].(map[string]interface{})
	if !ok {
		return ""
	}

	res, ok := thread[key].(string)
	if !ok {
		return ""
	}

	return res
}
