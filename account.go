package cloudns

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// Login verifies the client's credentials against the vendor.
func (c *Client) Login(ctx context.Context) (*StatusResult, error) {
	var out StatusResult
	if err := c.Call(ctx, "login/login.json", http.MethodPost, nil, &out); err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}

	return &out, nil
}

// CurrentIP reports the public IP address the vendor sees this client
// calling from.
func (c *Client) CurrentIP(ctx context.Context) (string, error) {
	var out struct {
		IP string `json:"ip"`
	}
	if err := c.Call(ctx, "ip/get-my-ip.json", http.MethodGet, nil, &out); err != nil {
		return "", fmt.Errorf("get current ip: %w", err)
	}

	return out.IP, nil
}

// AccountBalance reports the account's available funds.
func (c *Client) AccountBalance(ctx context.Context) (*Balance, error) {
	var out Balance
	if err := c.Call(ctx, "account/get-balance.json", http.MethodGet, nil, &out); err != nil {
		return nil, fmt.Errorf("get account balance: %w", err)
	}

	return &out, nil
}

// AvailableNameServers lists the name servers the account may assign
// to zones. The vendor returns plain server names by default and full
// objects when detailed is set, so the raw JSON is returned for the
// caller to shape.
func (c *Client) AvailableNameServers(ctx context.Context, detailed bool) (json.RawMessage, error) {
	params := NewParams().AddBool("detailed-info", detailed)

	var out json.RawMessage
	if err := c.Call(ctx, "dns/available-name-servers.json", http.MethodGet, params, &out); err != nil {
		return nil, fmt.Errorf("list available name servers: %w", err)
	}

	return out, nil
}
