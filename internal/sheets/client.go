package sheets

import (
	"context"
	"fmt"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// valueRenderFormula returns formulas as typed, so image cells keep their
// =IMAGE("...") wrapper instead of rendering to an empty string.
const valueRenderFormula = "FORMULA"

type Client struct {
	service *sheets.Service
}

// NewClient authenticates with a service account or OAuth credentials file.
func NewClient(ctx context.Context, credentialsFile string) (*Client, error) {
	return NewClientWithOptions(ctx, option.WithCredentialsFile(credentialsFile))
}

// NewClientWithAPIKey reads public spreadsheets without user credentials.
func NewClientWithAPIKey(ctx context.Context, apiKey string) (*Client, error) {
	return NewClientWithOptions(ctx, option.WithAPIKey(apiKey))
}

func NewClientWithOptions(ctx context.Context, opts ...option.ClientOption) (*Client, error) {
	service, err := sheets.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}

	return &Client{
		service: service,
	}, nil
}

// ReadSheet returns the rows of range_ with formulas left unevaluated.
// Trailing empty cells of each row are omitted by the API.
func (c *Client) ReadSheet(ctx context.Context, spreadsheetID, range_ string) ([][]interface{}, error) {
	resp, err := c.service.Spreadsheets.Values.Get(spreadsheetID, range_).
		ValueRenderOption(valueRenderFormula).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet: %w", err)
	}

	return resp.Values, nil
}
