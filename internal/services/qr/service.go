// Package qr encodes and decodes the payment-request payload carried in
// the QR codes the mobile client renders and scans. Image rendering and
// camera capture live in the client; the server only owns the payload
// format and its validation.
package qr

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"strings"

	"github.com/google/uuid"
)

const payloadPrefix = "remat:"

// Payload is the transfer intent a payment QR code carries. Amount zero
// means the payer chooses the amount.
type Payload struct {
	Code        string `json:"code"`
	ReceiverUID string `json:"receiver_uid"`
	Name        string `json:"name,omitempty"`
	Amount      int64  `json:"amount,omitempty"`
}

// Payload errors
var (
	ErrInvalidPayload  = errors.New("invalid qr payload")
	ErrMissingReceiver = errors.New("qr payload missing receiver")
	ErrNegativeAmount  = errors.New("qr payload amount cannot be negative")
)

// Service builds and parses payment payloads.
type Service interface {
	Encode(receiverUID, name string, amount int64) (string, error)
	Decode(raw string) (*Payload, error)
}

type service struct{}

func NewService() Service { return &service{} }

func (s *service) Encode(receiverUID, name string, amount int64) (string, error) {
	if receiverUID == "" {
		return "", ErrMissingReceiver
	}
	if amount < 0 {
		return "", ErrNegativeAmount
	}

	payload := Payload{
		Code:        uuid.New().String(),
		ReceiverUID: receiverUID,
		Name:        name,
		Amount:      amount,
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}
	return payloadPrefix + base64.RawURLEncoding.EncodeToString(data), nil
}

func (s *service) Decode(raw string) (*Payload, error) {
	if !strings.HasPrefix(raw, payloadPrefix) {
		return nil, ErrInvalidPayload
	}
	data, err := base64.RawURLEncoding.DecodeString(strings.TrimPrefix(raw, payloadPrefix))
	if err != nil {
		return nil, ErrInvalidPayload
	}

	var payload Payload
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, ErrInvalidPayload
	}
	if payload.ReceiverUID == "" {
		return nil, ErrMissingReceiver
	}
	if payload.Amount < 0 {
		return nil, ErrNegativeAmount
	}
	return &payload, nil
}
