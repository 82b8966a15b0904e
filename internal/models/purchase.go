package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrMissingName is returned when a purchase record has no name field
var ErrMissingName = errors.New("purchase record is missing a name")

// PurchaseRecord is one entry of a shopping history. Only Name takes part in
// the analysis; Category and Date are passed through untouched.
type PurchaseRecord struct {
	Name     string `json:"name"`
	Category string `json:"category,omitempty"`
	Date     string `json:"date,omitempty"`
}

// PurchaseRecordInput is the wire form of a purchase record. Name is a pointer
// so that an absent field can be told apart from an empty one.
type PurchaseRecordInput struct {
	Name     *string `json:"name"`
	Category string  `json:"category"`
	Date     string  `json:"date"`
}

// UnmarshalJSON accepts either a record object or a bare item name string
func (in *PurchaseRecordInput) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if bytes.Equal(trimmed, []byte("null")) {
		*in = PurchaseRecordInput{}
		return nil
	}
	if len(trimmed) > 0 && trimmed[0] == '"' {
		var name string
		if err := json.Unmarshal(trimmed, &name); err != nil {
			return err
		}
		*in = PurchaseRecordInput{Name: &name}
		return nil
	}

	type plain PurchaseRecordInput
	var record plain
	if err := json.Unmarshal(trimmed, &record); err != nil {
		return err
	}
	*in = PurchaseRecordInput(record)
	return nil
}

// Record validates the input and converts it into a PurchaseRecord
func (in PurchaseRecordInput) Record() (PurchaseRecord, error) {
	if in.Name == nil {
		return PurchaseRecord{}, ErrMissingName
	}
	return PurchaseRecord{Name: *in.Name, Category: in.Category, Date: in.Date}, nil
}

// RecordsFromInputs converts a batch of inputs, failing on the first invalid one
func RecordsFromInputs(inputs []PurchaseRecordInput) ([]PurchaseRecord, error) {
	records := make([]PurchaseRecord, 0, len(inputs))
	for i, in := range inputs {
		record, err := in.Record()
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		records = append(records, record)
	}
	return records, nil
}

// RecordsFromNames wraps plain item names as purchase records
func RecordsFromNames(names []string) []PurchaseRecord {
	records := make([]PurchaseRecord, len(names))
	for i, name := range names {
		records[i] = PurchaseRecord{Name: name}
	}
	return records
}
