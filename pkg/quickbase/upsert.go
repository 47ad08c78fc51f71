package quickbase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// FieldValue wraps a record value the way the records API expects it:
// {"value": ...}.
type FieldValue struct {
	Value interface{} `json:"value"`
}

// Value wraps v.
func Value(v interface{}) FieldValue {
	return FieldValue{Value: v}
}

// Record maps field IDs to values. Include RecordIDField with an existing
// record ID to update, or leave it out (or empty) to insert; the service
// decides, not this package.
type Record map[FieldID]FieldValue

// UpsertSpec describes an upsert call.
//
// A nil FieldsToReturn requests only RecordIDField.
type UpsertSpec struct {
	To             string
	Data           []Record
	FieldsToReturn []FieldID
}

func (u UpsertSpec) Validate() error {
	return validation.ValidateStruct(&u,
		validation.Field(&u.To, validation.Required, validation.Match(identifierPattern)),
		validation.Field(&u.Data, validation.Required),
		validation.Field(&u.FieldsToReturn, validation.Each(validation.Required, validation.Min(1))),
	)
}

// upsertBody fixes the key order of the upsert body.
type upsertBody struct {
	To             string    `json:"to"`
	Data           []Record  `json:"data"`
	FieldsToReturn []FieldID `json:"fieldsToReturn"`
}

// MarshalJSON renders the upsert request body.
func (u UpsertSpec) MarshalJSON() ([]byte, error) {
	fields := u.FieldsToReturn
	if fields == nil {
		fields = []FieldID{RecordIDField}
	}
	return encodeJSON(upsertBody{
		To:             u.To,
		Data:           u.Data,
		FieldsToReturn: fields,
	})
}

// UnmarshalJSON reads an upsert body. Numeric values decode as json.Number
// so they re-encode unchanged.
func (u *UpsertSpec) UnmarshalJSON(data []byte) error {
	var body upsertBody
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&body); err != nil {
		return err
	}
	*u = UpsertSpec(body)
	return nil
}

// UpsertRecords inserts and/or updates records.
//
// POST /records
func (c *Client) UpsertRecords(ctx context.Context, u UpsertSpec) (*Response, error) {
	const op = "upsert records"
	if err := u.Validate(); err != nil {
		return nil, invalidArgument(op, err)
	}
	body, err := u.MarshalJSON()
	if err != nil {
		return nil, invalidArgument(op, fmt.Errorf("failed to marshal records: %w", err))
	}
	return c.Do(ctx, http.MethodPost, "/records", body)
}
