package cmd

import (
	"github.com/umputun/cgrates/app/cgrates"
)

// CDRsCommand lists cdrs
type CDRsCommand struct {
	Tenants   []string `long:"tenant" description:"tenant filter, repeatable"`
	OriginIDs []string `long:"origin-id" description:"origin id filter, repeatable"`
	OrderBy   string   `long:"order-by" default:"OrderID" description:"order by field"`
	Limit     int      `long:"limit" default:"0" description:"max number of cdrs, 0 for no limit"`
	CommonOpts
}

// Execute gets cdrs, entry point for "cdrs" command
func (cc *CDRsCommand) Execute(_ []string) error {
	client, err := cc.newClient()
	if err != nil {
		return err
	}
	ctx, cancel := cc.context()
	defer cancel()

	filter := cgrates.CDRsFilter{Tenants: cc.Tenants, OriginIDs: cc.OriginIDs, OrderBy: cc.OrderBy}
	if cc.Limit > 0 {
		limit := cc.Limit
		filter.Limit = &limit
	}
	resp, err := client.GetCDRs(ctx, filter)
	if err != nil {
		return err
	}
	return cc.print(resp.Result)
}
