package cmd

import (
	log "github.com/go-pkgz/lgr"

	"github.com/umputun/cgrates/app/cgrates"
)

// LoadCommand loads tariff plan from stor db into data db
type LoadCommand struct {
	TPid       string `long:"tp-id" env:"TP_ID" required:"true" description:"tariff plan id"`
	DryRun     bool   `long:"dry-run" description:"validate only, don't load"`
	NoValidate bool   `long:"no-validate" description:"skip tariff plan validation"`
	CommonOpts
}

// Execute loads tariff plan, entry point for "load" command
func (lc *LoadCommand) Execute(_ []string) error {
	client, err := lc.newClient()
	if err != nil {
		return err
	}
	ctx, cancel := lc.context()
	defer cancel()

	log.Printf("[INFO] load tariff plan %s, dry-run %v", lc.TPid, lc.DryRun)
	resp, err := client.LoadTariffPlanFromStorDB(ctx, cgrates.LoadTariffPlan{
		TPid:           lc.TPid,
		DryRun:         lc.DryRun,
		SkipValidation: lc.NoValidate,
	})
	if err != nil {
		return err
	}
	return lc.print(resp.Result)
}
