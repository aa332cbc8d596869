package main

import (
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"strings"
	"syscall"
	"time"

	log "github.com/go-pkgz/lgr"
	flags "github.com/jessevdk/go-flags"

	"github.com/umputun/cgrates/app/cgrates"
	"github.com/umputun/cgrates/app/cmd"
)

// Opts with all cli commands and flags
type Opts struct {
	PingCmd        cmd.PingCommand        `command:"ping" description:"ping engine"`
	CallCmd        cmd.CallCommand        `command:"call" description:"call any remote method"`
	DestinationCmd cmd.DestinationCommand `command:"destination" description:"get tariff plan destinations"`
	BalanceCmd     cmd.BalanceCommand     `command:"balance" description:"add or debit account balance"`
	CDRsCmd        cmd.CDRsCommand        `command:"cdrs" description:"list cdrs"`
	LoadCmd        cmd.LoadCommand        `command:"load" description:"load tariff plan from stor db"`
	StubCmd        cmd.StubCommand        `command:"stub" description:"run stub engine with canned responses"`

	Host     string        `long:"host" env:"CGRATES_HOST" default:"http://127.0.0.1:2080" description:"engine url"`
	User     string        `long:"user" env:"CGRATES_USER" description:"basic auth user"`
	Passwd   string        `long:"passwd" env:"CGRATES_PASSWD" description:"basic auth password"`
	Endpoint string        `long:"endpoint" env:"CGRATES_ENDPOINT" default:"/jsonrpc" description:"json-rpc endpoint path"`
	Timeout  time.Duration `long:"timeout" env:"CGRATES_TIMEOUT" default:"30s" description:"call timeout"`

	Dbg bool `long:"dbg" env:"DEBUG" description:"debug mode"`
}

var revision = "unknown"

func main() {
	fmt.Printf("cgrates-cli %s\n", revision)

	var opts Opts
	p := flags.NewParser(&opts, flags.Default)
	p.CommandHandler = func(command flags.Commander, args []string) error {
		setupLog(opts.Dbg, opts.Passwd)
		cgrates.Configure(func(c *cgrates.Configuration) {
			c.Host = strings.TrimSuffix(opts.Host, "/") // allow host with trailing /
			c.Username = opts.User
			c.Password = opts.Passwd
			c.Endpoint = opts.Endpoint
		})
		// commands implements CommonOptionsCommander to allow passing set of extra options defined for all commands
		c := command.(cmd.CommonOptionsCommander)
		c.SetCommon(cmd.CommonOpts{
			Host:     opts.Host,
			User:     opts.User,
			Passwd:   opts.Passwd,
			Endpoint: opts.Endpoint,
			Timeout:  opts.Timeout,
			Revision: revision,
		})
		err := c.Execute(args)
		if err != nil {
			log.Printf("[ERROR] failed with %+v", err)
		}
		return err
	}

	if _, err := p.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		} else {
			os.Exit(1)
		}
	}
}

func setupLog(dbg bool, secrets ...string) {
	logOpts := []log.Option{log.Msec, log.LevelBraces, log.CallerPkg}
	if dbg {
		logOpts = []log.Option{log.Debug, log.CallerFile, log.Msec, log.LevelBraces}
	}
	for _, s := range secrets {
		if s != "" {
			logOpts = append(logOpts, log.Secret(s))
		}
	}
	log.Setup(logOpts...)
}

// getDump reads runtime stack and returns as a string
func getDump() string {
	maxSize := 5 * 1024 * 1024
	stacktrace := make([]byte, maxSize)
	length := runtime.Stack(stacktrace, true)
	if length > maxSize {
		length = maxSize
	}
	return string(stacktrace[:length])
}

func init() {
	// catch SIGQUIT and print stack traces
	sigChan := make(chan os.Signal, 1)
	go func() {
		for range sigChan {
			log.Printf("[INFO] SIGQUIT detected, dump:\n%s", getDump())
		}
	}()
	signal.Notify(sigChan, syscall.SIGQUIT)
}
