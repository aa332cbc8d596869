package cmd

import (
	"time"

	log "github.com/go-pkgz/lgr"
	"github.com/go-pkgz/repeater"
	"github.com/pkg/errors"

	"github.com/umputun/cgrates/app/cgrates"
)

// PingCommand checks engine availability, optionally waiting for it
type PingCommand struct {
	Wait    bool          `long:"wait" description:"repeat ping till engine responds"`
	Repeats int           `long:"repeats" default:"10" description:"max number of pings with --wait"`
	Delay   time.Duration `long:"delay" default:"1s" description:"delay between pings with --wait"`
	CommonOpts
}

// Execute runs ping, entry point for "ping" command
func (pc *PingCommand) Execute(_ []string) error {
	client, err := pc.newClient()
	if err != nil {
		return err
	}
	ctx, cancel := pc.context()
	defer cancel()

	var resp *cgrates.Response
	ping := func() (e error) {
		if resp, e = client.Ping(ctx); e != nil {
			log.Printf("[DEBUG] ping failed, %v", e)
		}
		return e
	}

	if pc.Wait {
		// each attempt is a separate call with its own id
		err = repeater.NewDefault(pc.Repeats, pc.Delay).Do(ctx, ping)
	} else {
		err = ping()
	}
	if err != nil {
		return errors.Wrap(err, "ping failed")
	}
	log.Printf("[INFO] engine %s responded, id %s", pc.Host, resp.ID)
	return pc.print(resp.Result)
}
