package quickbase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// FieldID identifies a column within a table.
type FieldID int

// RecordIDField is the built-in primary key field ("Record ID#").
const RecordIDField FieldID = 3

// SortOrder is the direction of a sortBy entry.
type SortOrder string

const (
	SortAscending  SortOrder = "ASC"
	SortDescending SortOrder = "DESC"
)

// Grouping is the grouping of a groupBy entry.
type Grouping string

const (
	GroupAscending   Grouping = "ASC"
	GroupDescending  Grouping = "DESC"
	GroupEqualValues Grouping = "equal-values"
)

// SortField is one entry of a query's sortBy list.
type SortField struct {
	FieldID FieldID   `json:"fieldId"`
	Order   SortOrder `json:"order"`
}

func (f SortField) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.FieldID, validation.Required, validation.Min(1)),
		validation.Field(&f.Order, validation.Required, validation.In(SortAscending, SortDescending)),
	)
}

// GroupField is one entry of a query's groupBy list.
type GroupField struct {
	FieldID  FieldID  `json:"fieldId"`
	Grouping Grouping `json:"grouping"`
}

func (f GroupField) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.FieldID, validation.Required, validation.Min(1)),
		validation.Field(&f.Grouping, validation.Required, validation.In(GroupAscending, GroupDescending, GroupEqualValues)),
	)
}

// QueryOptions are the optional paging flags of a query. Unset fields are
// left out of the body.
type QueryOptions struct {
	Skip                    *int  `json:"skip,omitempty"`
	Top                     *int  `json:"top,omitempty"`
	CompareWithAppLocalTime *bool `json:"compareWithAppLocalTime,omitempty"`
}

func (o QueryOptions) Validate() error {
	return validation.ValidateStruct(&o,
		validation.Field(&o.Skip, validation.Min(0)),
		validation.Field(&o.Top, validation.Min(0)),
	)
}

// QuerySpec describes a runQuery call.
//
// A nil SortBy or GroupBy is sent as [{}], which the service reads as "no
// sorting"/"no grouping"; a non-nil empty slice is sent as []. A nil Options
// omits the key.
type QuerySpec struct {
	From    string
	Select  []FieldID
	Where   string
	SortBy  []SortField
	GroupBy []GroupField
	Options *QueryOptions
}

func (q QuerySpec) Validate() error {
	return validation.ValidateStruct(&q,
		validation.Field(&q.From, validation.Required, validation.Match(identifierPattern)),
		validation.Field(&q.Select, validation.Required, validation.Each(validation.Required, validation.Min(1))),
		validation.Field(&q.SortBy),
		validation.Field(&q.GroupBy),
		validation.Field(&q.Options),
	)
}

// queryBody fixes the key order of the runQuery body.
type queryBody struct {
	From    string        `json:"from"`
	Select  []FieldID     `json:"select"`
	Where   string        `json:"where"`
	SortBy  sortClause    `json:"sortBy"`
	GroupBy groupClause   `json:"groupBy"`
	Options *QueryOptions `json:"options,omitempty"`
}

// MarshalJSON renders the runQuery request body.
func (q QuerySpec) MarshalJSON() ([]byte, error) {
	return encodeJSON(queryBody{
		From:    q.From,
		Select:  q.Select,
		Where:   q.Where,
		SortBy:  sortClause(q.SortBy),
		GroupBy: groupClause(q.GroupBy),
		Options: q.Options,
	})
}

// UnmarshalJSON reads a runQuery body; [{}] clauses decode to nil.
func (q *QuerySpec) UnmarshalJSON(data []byte) error {
	var body queryBody
	if err := json.Unmarshal(data, &body); err != nil {
		return err
	}
	*q = QuerySpec{
		From:    body.From,
		Select:  body.Select,
		Where:   body.Where,
		SortBy:  []SortField(body.SortBy),
		GroupBy: []GroupField(body.GroupBy),
		Options: body.Options,
	}
	return nil
}

// unsetClause is how the service expects an absent sortBy/groupBy. A null
// clause decodes the same way.
var unsetClause = []byte(`[{}]`)

type sortClause []SortField

func (c sortClause) MarshalJSON() ([]byte, error) {
	if c == nil {
		return unsetClause, nil
	}
	return encodeJSON([]SortField(c))
}

func (c *sortClause) UnmarshalJSON(data []byte) error {
	if isUnsetClause(data) {
		*c = nil
		return nil
	}
	var fields []SortField
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	if fields == nil {
		fields = []SortField{}
	}
	*c = fields
	return nil
}

type groupClause []GroupField

func (c groupClause) MarshalJSON() ([]byte, error) {
	if c == nil {
		return unsetClause, nil
	}
	return encodeJSON([]GroupField(c))
}

func (c *groupClause) UnmarshalJSON(data []byte) error {
	if isUnsetClause(data) {
		*c = nil
		return nil
	}
	var fields []GroupField
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	if fields == nil {
		fields = []GroupField{}
	}
	*c = fields
	return nil
}

func isUnsetClause(data []byte) bool {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return true
	}
	var buf bytes.Buffer
	if err := json.Compact(&buf, data); err != nil {
		return false
	}
	return bytes.Equal(buf.Bytes(), unsetClause)
}

// QueryRecords runs a query.
//
// POST /records/query
func (c *Client) QueryRecords(ctx context.Context, q QuerySpec) (*Response, error) {
	const op = "query records"
	if err := q.Validate(); err != nil {
		return nil, invalidArgument(op, err)
	}
	body, err := q.MarshalJSON()
	if err != nil {
		return nil, invalidArgument(op, fmt.Errorf("failed to marshal query: %w", err))
	}
	return c.Do(ctx, http.MethodPost, "/records/query", body)
}
