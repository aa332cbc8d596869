package cmd

import (
	"context"
	"encoding/json"
	"sync"

	log "github.com/go-pkgz/lgr"
	"github.com/go-pkgz/syncs"
	"github.com/pkg/errors"

	"github.com/umputun/cgrates/app/cgrates"
)

// DestinationCommand fetches one or more tariff plan destinations concurrently
type DestinationCommand struct {
	TPid        string   `long:"tp-id" env:"TP_ID" required:"true" description:"tariff plan id"`
	IDs         []string `long:"id" required:"true" description:"destination id, repeatable"`
	Concurrency int      `long:"concurrency" default:"4" description:"max parallel requests"`
	CommonOpts
}

// Execute gets all destinations, entry point for "destination" command
func (dc *DestinationCommand) Execute(_ []string) error {
	client, err := dc.newClient()
	if err != nil {
		return err
	}
	ctx, cancel := dc.context()
	defer cancel()

	res, err := dc.fetch(ctx, client)
	if err != nil {
		return err
	}
	return dc.print(res)
}

// fetch gets destinations in parallel, fails on the first error
func (dc *DestinationCommand) fetch(ctx context.Context, engine cgrates.Engine) (map[string]json.RawMessage, error) {
	res := make(map[string]json.RawMessage, len(dc.IDs))
	var lock sync.Mutex
	var firstErr error

	concurrency := dc.Concurrency
	if concurrency < 1 {
		concurrency = 1
	}
	grp := syncs.NewErrSizedGroup(concurrency, syncs.Context(ctx), syncs.Preemptive, syncs.TermOnErr)
	for _, id := range dc.IDs {
		id := id
		grp.Go(func() error {
			resp, err := engine.GetTPDestination(ctx, cgrates.TPResourceID{TPid: dc.TPid, ID: id})
			if err != nil {
				err = errors.Wrapf(err, "can't get destination %s", id)
				lock.Lock()
				if firstErr == nil {
					firstErr = err
				}
				lock.Unlock()
				return err
			}
			log.Printf("[DEBUG] got destination %s, id %s", id, resp.ID)
			lock.Lock()
			res[id] = resp.Result
			lock.Unlock()
			return nil
		})
	}
	if err := grp.Wait(); err != nil {
		if firstErr != nil {
			return nil, firstErr // group error flattens kinds, keep the original one
		}
		return nil, err
	}
	return res, nil
}
