package cmd

import (
	log "github.com/go-pkgz/lgr"

	"github.com/umputun/cgrates/app/cgrates"
)

// BalanceCommand adds to or debits from account balance
type BalanceCommand struct {
	Account string  `long:"account" required:"true" description:"account id"`
	Tenant  string  `long:"tenant" env:"TENANT" required:"true" description:"tenant"`
	Type    string  `long:"type" default:"*monetary" description:"balance type"`
	Value   float64 `long:"value" required:"true" description:"value to add or debit"`
	Debit   bool    `long:"debit" description:"debit instead of add"`

	Balance struct {
		ID             string  `long:"id" description:"balance id"`
		ExpiryTime     string  `long:"expiry" default:"*unlimited" description:"expiry time"`
		DestinationIDs string  `long:"dest-ids" default:"*any" description:"destination ids, ; separated"`
		Weight         float64 `long:"weight" default:"10" description:"balance weight"`
		Blocker        bool    `long:"blocker" description:"blocker balance"`
		Disabled       bool    `long:"disabled" description:"disabled balance"`
	} `group:"balance"`

	CommonOpts
}

// Execute changes balance, entry point for "balance" command
func (bc *BalanceCommand) Execute(_ []string) error {
	client, err := bc.newClient()
	if err != nil {
		return err
	}
	ctx, cancel := bc.context()
	defer cancel()

	req := bc.request()
	call := client.AddBalance
	if bc.Debit {
		call = client.DebitBalance
	}
	log.Printf("[INFO] balance %s %s/%s, value %v, debit %v", bc.Type, bc.Tenant, bc.Account, bc.Value, bc.Debit)
	resp, err := call(ctx, req)
	if err != nil {
		return err
	}
	return bc.print(resp.Result)
}

func (bc *BalanceCommand) request() cgrates.BalanceRequest {
	weight := bc.Balance.Weight
	return cgrates.BalanceRequest{
		Account:     bc.Account,
		Tenant:      bc.Tenant,
		BalanceType: bc.Type,
		Value:       bc.Value,
		Balance: cgrates.Balance{
			ID:             bc.Balance.ID,
			ExpiryTime:     bc.Balance.ExpiryTime,
			DestinationIDs: bc.Balance.DestinationIDs,
			Weight:         &weight,
			Blocker:        bc.Balance.Blocker,
			Disabled:       bc.Balance.Disabled,
		},
	}
}
