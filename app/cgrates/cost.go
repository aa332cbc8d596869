package cgrates

import (
	"context"
)

// CostRequest asks for cost of a call with given usage
type CostRequest struct {
	Tenant      string
	Subject     string
	Category    string
	Destination string
	Usage       string // i.e. "60s"
	Extra       Params
}

// MaxSessionTimeRequest asks for the longest session account can afford
type MaxSessionTimeRequest struct {
	Tenant      string
	Account     string
	Category    string
	Destination string
	TimeStart   string
	TimeEnd     string
	Extra       Params
}

// GetCost returns cost for usage
func (c *Client) GetCost(ctx context.Context, req CostRequest) (*Response, error) {
	err := validate(MethodGetCost, present("Tenant", req.Tenant), present("Subject", req.Subject),
		present("Category", req.Category), present("Destination", req.Destination), present("Usage", req.Usage))
	if err != nil {
		return nil, err
	}
	return c.Call(ctx, MethodGetCost, merge(Params{
		"Tenant":      req.Tenant,
		"Subject":     req.Subject,
		"Category":    req.Category,
		"Destination": req.Destination,
		"Usage":       req.Usage,
	}, req.Extra))
}

// GetMaxSessionTime returns max session duration between TimeStart and TimeEnd
func (c *Client) GetMaxSessionTime(ctx context.Context, req MaxSessionTimeRequest) (*Response, error) {
	err := validate(MethodGetMaxSessionTime, present("Tenant", req.Tenant), present("Account", req.Account),
		present("Category", req.Category), present("Destination", req.Destination),
		present("TimeStart", req.TimeStart), present("TimeEnd", req.TimeEnd))
	if err != nil {
		return nil, err
	}
	return c.Call(ctx, MethodGetMaxSessionTime, merge(Params{
		"Tenant":      req.Tenant,
		"Account":     req.Account,
		"Category":    req.Category,
		"Destination": req.Destination,
		"TimeStart":   req.TimeStart,
		"TimeEnd":     req.TimeEnd,
	}, req.Extra))
}
