package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	log "github.com/go-pkgz/lgr"

	"github.com/umputun/cgrates/app/cgrates/fake"
	"github.com/umputun/cgrates/app/stub"
)

// StubCommand runs stub engine answering with canned responses
type StubCommand struct {
	Port   int               `long:"port" env:"STUB_PORT" default:"2080" description:"port to listen"`
	Errors map[string]string `long:"error" description:"method:error to return instead of result, repeatable"`
	CommonOpts
}

// Execute runs stub server till interrupted, entry point for "stub" command
func (sc *StubCommand) Execute(_ []string) error {
	ctx, cancel := context.WithCancel(context.Background())
	go func() { // catch signal and invoke graceful termination
		stop := make(chan os.Signal, 1)
		signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
		<-stop
		log.Printf("[WARN] interrupt signal")
		cancel()
	}()
	return sc.run(ctx)
}

func (sc *StubCommand) run(ctx context.Context) error {
	reg := fake.NewRegistry()
	for method := range sc.Errors {
		if !reg.Known(method) {
			log.Printf("[WARN] error injected for unknown method %s", method)
		}
	}
	srv := stub.Server{
		Port:       sc.Port,
		Endpoint:   sc.Endpoint,
		AuthUser:   sc.User,
		AuthPasswd: sc.Passwd,
		Version:    sc.Revision,
		Registry:   reg,
		Errors:     sc.Errors,
	}
	return srv.Run(ctx)
}
