package quickbase

import (
	"context"
	"fmt"
	"net/url"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// TableFields is the body of createTable and updateTable.
type TableFields struct {
	Name             string `json:"name,omitempty"`
	Description      string `json:"description,omitempty"`
	SingleRecordName string `json:"singleRecordName,omitempty"`
	PluralRecordName string `json:"pluralRecordName,omitempty"`
}

// IsEmpty reports whether no property is set.
func (f TableFields) IsEmpty() bool {
	return f == TableFields{}
}

// GetTable fetches a table's properties.
//
// GET /tables/{tableId}?appId={appId}
func (c *Client) GetTable(ctx context.Context, tableID, appID string) (*Response, error) {
	if err := validateIDs("get table", "tableId", tableID, "appId", appID); err != nil {
		return nil, err
	}
	return c.get(ctx, tablePath(tableID, appID))
}

// CreateTable creates a table in an application. Name is required.
//
// POST /tables?appId={appId}
func (c *Client) CreateTable(ctx context.Context, appID string, fields TableFields) (*Response, error) {
	const op = "create table"
	if err := validateIDs(op, "appId", appID); err != nil {
		return nil, err
	}
	if err := validation.ValidateStruct(&fields,
		validation.Field(&fields.Name, validation.Required),
	); err != nil {
		return nil, invalidArgument(op, err)
	}
	return c.post(ctx, op, tablePath("", appID), fields)
}

// UpdateTable changes the properties that are set in fields.
//
// POST /tables/{tableId}?appId={appId}
func (c *Client) UpdateTable(ctx context.Context, tableID, appID string, fields TableFields) (*Response, error) {
	const op = "update table"
	if err := validateIDs(op, "tableId", tableID, "appId", appID); err != nil {
		return nil, err
	}
	if fields.IsEmpty() {
		return nil, invalidArgument(op, fmt.Errorf("at least one table property must be set"))
	}
	return c.post(ctx, op, tablePath(tableID, appID), fields)
}

func tablePath(tableID, appID string) string {
	if tableID == "" {
		return fmt.Sprintf("/tables?appId=%s", url.QueryEscape(appID))
	}
	return fmt.Sprintf("/tables/%s?appId=%s", url.PathEscape(tableID), url.QueryEscape(appID))
}
