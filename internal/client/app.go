// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"flag"
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"
	"time"

	"github.com/MKhiriev/go-garage/internal/config"
	"github.com/MKhiriev/go-garage/internal/logger"
	"github.com/MKhiriev/go-garage/internal/service"
)

type command struct {
	usage string
	run   func(ctx context.Context, args []string) error
}

// App runs one command against the services.
type App struct {
	services *service.Services
	workers  config.Workers

	out    io.Writer
	now    func() time.Time
	logger *logger.Logger

	kinds    map[string]kind
	commands map[string]command
}

var _ Client = (*App)(nil)

// NewApp builds the client. Command output goes to out; notifications go
// wherever the services' notifier sends them.
func NewApp(services *service.Services, cfg *config.ClientConfig, out io.Writer, log *logger.Logger) (*App, error) {
	if services == nil {
		return nil, fmt.Errorf("%w: no services", ErrUsage)
	}
	if log == nil {
		log = logger.Nop()
	}

	a := &App{
		services: services,
		workers:  cfg.Workers,
		out:      out,
		now:      time.Now,
		logger:   log,
		kinds:    newKinds(services.Resources),
	}
	a.commands = map[string]command{
		"list":    {usage: "list <kind>", run: a.list},
		"get":     {usage: "get <kind> <id>", run: a.get},
		"create":  {usage: "create <kind> -data <json>", run: a.create},
		"update":  {usage: "update <kind> <id> -data <json>", run: a.update},
		"delete":  {usage: "delete <kind> <id>", run: a.remove},
		"price":   {usage: "price -item <line> ...", run: a.price},
		"invoice": {usage: "invoice -client <id> [-number n] [-date d] [-due d] [-status s] -item <line> ...", run: a.invoice},
		"quote":   {usage: "quote -client <id> [-number n] [-date d] [-expiry d] [-status s] -item <line> ...", run: a.quote},
		"items":   {usage: "items invoice|quote <id>", run: a.items},
		"watch":   {usage: "watch", run: a.watch},
	}

	return a, nil
}

// Run implements Client.
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 || args[0] == "help" || args[0] == "-h" {
		a.usage()
		if len(args) == 0 {
			return ErrUsage
		}
		return nil
	}

	cmd, ok := a.commands[args[0]]
	if !ok {
		a.usage()
		return fmt.Errorf("%w: %q", ErrUnknownCommand, args[0])
	}

	a.logger.Debug().Str("func", "App.Run").Strs("args", args).Msg("running command")
	if err := cmd.run(ctx, args[1:]); err != nil {
		a.logger.Err(err).Str("func", "App.Run").Str("command", args[0]).Msg("command failed")
		return err
	}
	return nil
}

func (a *App) usage() {
	fmt.Fprintln(a.out, "usage: garage-client [flags] <command> [args]")
	fmt.Fprintln(a.out, "commands:")
	for _, name := range slices.Sorted(maps.Keys(a.commands)) {
		fmt.Fprintf(a.out, "  %s\n", a.commands[name].usage)
	}
	fmt.Fprintf(a.out, "kinds: %s\n", strings.Join(slices.Sorted(maps.Keys(a.kinds)), ", "))
}

func (a *App) kind(args []string, want int) (kind, []string, error) {
	if len(args) < want {
		return nil, nil, fmt.Errorf("%w: missing arguments", ErrUsage)
	}
	k, ok := a.kinds[args[0]]
	if !ok {
		return nil, nil, fmt.Errorf("%w: %q", ErrUnknownKind, args[0])
	}
	return k, args[1:], nil
}

func (a *App) list(ctx context.Context, args []string) error {
	k, _, err := a.kind(args, 1)
	if err != nil {
		return err
	}
	if err = k.refresh(ctx); err != nil {
		return err
	}
	return k.table(a.out)
}

func (a *App) get(ctx context.Context, args []string) error {
	k, rest, err := a.kind(args, 2)
	if err != nil {
		return err
	}
	if err = k.refresh(ctx); err != nil {
		return err
	}

	row, ok := k.get(rest[0])
	if !ok {
		return fmt.Errorf("%w: %s", ErrRecordNotFound, rest[0])
	}
	return printJSON(a.out, row)
}

func (a *App) create(ctx context.Context, args []string) error {
	k, rest, err := a.kind(args, 1)
	if err != nil {
		return err
	}
	data, err := dataFlag("create", rest)
	if err != nil {
		return err
	}

	row, err := k.create(ctx, data)
	if err != nil {
		return err
	}
	return printJSON(a.out, row)
}

func (a *App) update(ctx context.Context, args []string) error {
	k, rest, err := a.kind(args, 2)
	if err != nil {
		return err
	}
	data, err := dataFlag("update", rest[1:])
	if err != nil {
		return err
	}

	row, err := k.update(ctx, rest[0], data)
	if err != nil {
		return err
	}
	return printJSON(a.out, row)
}

func (a *App) remove(ctx context.Context, args []string) error {
	k, rest, err := a.kind(args, 2)
	if err != nil {
		return err
	}
	if err = k.remove(ctx, rest[0]); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "deleted %s\n", rest[0])
	return nil
}

func dataFlag(name string, args []string) ([]byte, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	data := fs.String("data", "", "JSON object")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUsage, err)
	}
	if *data == "" {
		return nil, fmt.Errorf("%w: -data is required", ErrUsage)
	}
	return []byte(*data), nil
}
