package quickbase

import (
	"context"
	"fmt"
	"net/url"
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// identifierPattern rejects characters that would change the shape of a
// path or query string.
var identifierPattern = regexp.MustCompile(`^[^\s/?#&=%]+$`)

// validateIDs checks that every named identifier is present and path-safe.
// Arguments alternate name, value.
func validateIDs(op string, pairs ...string) error {
	errs := validation.Errors{}
	for i := 0; i+1 < len(pairs); i += 2 {
		if err := validation.Validate(pairs[i+1],
			validation.Required,
			validation.Match(identifierPattern).Error("must not contain whitespace or URL delimiters"),
		); err != nil {
			errs[pairs[i]] = err
		}
	}
	return invalidArgument(op, errs.Filter())
}

// GetApp fetches application metadata.
//
// GET /apps/{appId}
func (c *Client) GetApp(ctx context.Context, appID string) (*Response, error) {
	if err := validateIDs("get app", "appId", appID); err != nil {
		return nil, err
	}
	return c.get(ctx, fmt.Sprintf("/apps/%s", url.PathEscape(appID)))
}

// AppURL is the browser address of an application.
func (c *Client) AppURL(appID string) string {
	return fmt.Sprintf("https://%s/db/%s", c.config.RealmHostname(), url.PathEscape(appID))
}
