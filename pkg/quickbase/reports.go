package quickbase

import (
	"context"
	"fmt"
	"net/url"
)

// ListReports fetches the schema of every report in a table.
//
// GET /reports?tableId={tableId}
func (c *Client) ListReports(ctx context.Context, tableID string) (*Response, error) {
	if err := validateIDs("list reports", "tableId", tableID); err != nil {
		return nil, err
	}
	return c.get(ctx, fmt.Sprintf("/reports?tableId=%s", url.QueryEscape(tableID)))
}

// GetReport fetches a single report's schema.
//
// GET /reports/{reportId}?tableId={tableId}
func (c *Client) GetReport(ctx context.Context, reportID, tableID string) (*Response, error) {
	if err := validateIDs("get report", "reportId", reportID, "tableId", tableID); err != nil {
		return nil, err
	}
	return c.get(ctx, fmt.Sprintf("/reports/%s?tableId=%s", url.PathEscape(reportID), url.QueryEscape(tableID)))
}
