package cgrates

import (
	"context"
)

// DefaultCDRsOrderBy orders cdrs by internal order id, ascending
const DefaultCDRsOrderBy = "OrderID"

// CDRsFilter selects cdrs. Empty lists mean no filtering.
type CDRsFilter struct {
	Tenants   []string
	OriginIDs []string
	NotCosts  []float64
	OrderBy   string                 // defaults to DefaultCDRsOrderBy
	ExtraArgs map[string]interface{} // extra filters, passed as-is
	Limit     *int                   // no limit if nil
	Extra     Params
}

// ExternalCDR is a cdr produced outside of cgr-engine, times and usage in engine's string format
type ExternalCDR struct {
	Category    string
	RequestType string // i.e. "*postpaid"
	ToR         string // i.e. "*voice"
	Tenant      string
	Account     string
	Subject     string // optional, sent as null if empty
	Destination string
	AnswerTime  string
	SetupTime   string
	Usage       string
	OriginID    string
	Extra       Params
}

// GetCDRs returns cdrs matching filter
func (c *Client) GetCDRs(ctx context.Context, filter CDRsFilter) (*Response, error) {
	return c.Call(ctx, MethodGetCDRs, cdrsParams(filter))
}

// ProcessExternalCDR submits cdr for rating
func (c *Client) ProcessExternalCDR(ctx context.Context, cdr ExternalCDR) (*Response, error) {
	err := validate(MethodProcessExternalCDR,
		present("Category", cdr.Category), present("RequestType", cdr.RequestType), present("ToR", cdr.ToR),
		present("Tenant", cdr.Tenant), present("Account", cdr.Account), present("Destination", cdr.Destination),
		present("AnswerTime", cdr.AnswerTime), present("SetupTime", cdr.SetupTime), present("Usage", cdr.Usage),
		present("OriginID", cdr.OriginID))
	if err != nil {
		return nil, err
	}
	return c.Call(ctx, MethodProcessExternalCDR, externalCDRParams(cdr))
}

func cdrsParams(f CDRsFilter) Params {
	notCosts := f.NotCosts
	if notCosts == nil {
		notCosts = []float64{}
	}
	extraArgs := f.ExtraArgs
	if extraArgs == nil {
		extraArgs = map[string]interface{}{}
	}
	var limit interface{}
	if f.Limit != nil {
		limit = *f.Limit
	}

	return merge(Params{
		"Tenants":   nonNilStrings(f.Tenants),
		"OrderBy":   strOr(f.OrderBy, DefaultCDRsOrderBy),
		"ExtraArgs": extraArgs,
		"Limit":     limit,
		"OriginIDs": nonNilStrings(f.OriginIDs),
		"NotCosts":  notCosts,
	}, f.Extra)
}

func externalCDRParams(cdr ExternalCDR) Params {
	return merge(Params{
		"Category":    cdr.Category,
		"RequestType": cdr.RequestType,
		"ToR":         cdr.ToR,
		"Tenant":      cdr.Tenant,
		"Account":     cdr.Account,
		"Subject":     nullable(cdr.Subject),
		"Destination": cdr.Destination,
		"AnswerTime":  cdr.AnswerTime,
		"SetupTime":   cdr.SetupTime,
		"Usage":       cdr.Usage,
		"OriginId":    cdr.OriginID,
	}, cdr.Extra)
}
