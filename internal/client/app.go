// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-messagely/internal/adapter"
	"github.com/MKhiriev/go-messagely/internal/config"
	"github.com/MKhiriev/go-messagely/internal/logger"
	"github.com/MKhiriev/go-messagely/internal/utils"
	"github.com/MKhiriev/go-messagely/internal/workers"
	"github.com/MKhiriev/go-messagely/models"
)

// Usage lists the subcommands understood by [App.Run].
const Usage = `usage: messagely-client [flags] <command> [args]

commands:
  register <username> <password> <first name> <last name> <phone>
  login <username> <password>
  users
  me
  inbox
  outbox
  send <to username> <body>
  show <message id>
  read <message id>
  watch
  version`

type command struct {
	args     int
	needAuth bool
	run      func(a *App, ctx context.Context, args []string) error
}

var commands = map[string]command{
	"register": {args: 5, run: (*App).register},
	"login":    {args: 2, run: (*App).login},
	"users":    {needAuth: true, run: (*App).users},
	"me":       {needAuth: true, run: (*App).me},
	"inbox":    {needAuth: true, run: (*App).inbox},
	"outbox":   {needAuth: true, run: (*App).outbox},
	"send":     {args: -2, needAuth: true, run: (*App).send},
	"show":     {args: 1, needAuth: true, run: (*App).show},
	"read":     {args: 1, needAuth: true, run: (*App).read},
	"watch":    {needAuth: true, run: (*App).watch},
	"version":  {run: (*App).version},
}

// App runs one client subcommand per call of Run.
type App struct {
	adapter adapter.ServerAdapter
	workers config.Workers
	out     io.Writer

	logger *logger.Logger
}

func NewApp(serverAdapter adapter.ServerAdapter, cfg config.Workers, out io.Writer, logger *logger.Logger) (*App, error) {
	if serverAdapter == nil {
		return nil, errors.New("server adapter is required")
	}

	return &App{
		adapter: serverAdapter,
		workers: cfg,
		out:     out,
		logger:  logger,
	}, nil
}

// Run executes the subcommand args[0] with the remaining arguments.
//
// A positive argument count is exact. A negative one is a minimum: the
// arguments past it are joined with spaces, so "send bob hello there" sends
// "hello there".
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w\n%s", ErrUsage, Usage)
	}

	name, rest := args[0], args[1:]
	cmd, ok := commands[name]
	if !ok {
		return fmt.Errorf("%w %q\n%s", ErrUnknownCommand, name, Usage)
	}

	switch {
	case cmd.args >= 0 && len(rest) != cmd.args,
		cmd.args < 0 && len(rest) < -cmd.args:
		return fmt.Errorf("%w for %q\n%s", ErrUsage, name, Usage)
	case cmd.args < 0:
		n := -cmd.args - 1
		rest = append(rest[:n:n], strings.Join(rest[n:], " "))
	}

	if cmd.needAuth && a.adapter.Token() == "" {
		return ErrNoToken
	}

	return cmd.run(a, ctx, rest)
}

func (a *App) register(ctx context.Context, args []string) error {
	token, err := a.adapter.Register(ctx, models.RegisterRequest{
		Username:  args[0],
		Password:  args[1],
		FirstName: args[2],
		LastName:  args[3],
		Phone:     args[4],
	})
	if err != nil {
		return fmt.Errorf("register: %w", err)
	}

	return a.print(models.TokenResponse{Token: token})
}

func (a *App) login(ctx context.Context, args []string) error {
	token, err := a.adapter.Login(ctx, models.Credentials{Username: args[0], Password: args[1]})
	if err != nil {
		return fmt.Errorf("login: %w", err)
	}

	return a.print(models.TokenResponse{Token: token})
}

func (a *App) users(ctx context.Context, _ []string) error {
	users, err := a.adapter.Users(ctx)
	if err != nil {
		return fmt.Errorf("list users: %w", err)
	}

	return a.print(models.UsersResponse{Users: users})
}

func (a *App) me(ctx context.Context, _ []string) error {
	username, err := a.actingUser()
	if err != nil {
		return err
	}

	user, err := a.adapter.User(ctx, username)
	if err != nil {
		return fmt.Errorf("get user: %w", err)
	}

	return a.print(models.UserResponse{User: user})
}

func (a *App) inbox(ctx context.Context, _ []string) error {
	username, err := a.actingUser()
	if err != nil {
		return err
	}

	messages, err := a.adapter.MessagesTo(ctx, username)
	if err != nil {
		return fmt.Errorf("list inbox: %w", err)
	}

	return a.print(models.MessagesResponse[models.ReceivedMessage]{Messages: messages})
}

func (a *App) outbox(ctx context.Context, _ []string) error {
	username, err := a.actingUser()
	if err != nil {
		return err
	}

	messages, err := a.adapter.MessagesFrom(ctx, username)
	if err != nil {
		return fmt.Errorf("list outbox: %w", err)
	}

	return a.print(models.MessagesResponse[models.SentMessage]{Messages: messages})
}

func (a *App) send(ctx context.Context, args []string) error {
	message, err := a.adapter.SendMessage(ctx, models.SendMessageRequest{ToUsername: args[0], Body: args[1]})
	if err != nil {
		return fmt.Errorf("send message: %w", err)
	}

	return a.print(models.MessageResponse[models.Message]{Message: message})
}

func (a *App) show(ctx context.Context, args []string) error {
	id, err := parseMessageID(args[0])
	if err != nil {
		return err
	}

	message, err := a.adapter.GetMessage(ctx, id)
	if err != nil {
		return fmt.Errorf("get message: %w", err)
	}

	return a.print(models.MessageResponse[models.MessageDetail]{Message: message})
}

func (a *App) read(ctx context.Context, args []string) error {
	id, err := parseMessageID(args[0])
	if err != nil {
		return err
	}

	receipt, err := a.adapter.MarkRead(ctx, id)
	if err != nil {
		return fmt.Errorf("mark message read: %w", err)
	}

	return a.print(models.MessageResponse[models.ReadReceipt]{Message: receipt})
}

// watch prints every new inbox message until ctx is cancelled.
func (a *App) watch(ctx context.Context, _ []string) error {
	username, err := a.actingUser()
	if err != nil {
		return err
	}

	watcher := workers.NewInboxWatcher(a.adapter, username, a.workers, func(m models.ReceivedMessage) {
		if err := a.print(m); err != nil {
			a.logger.Err(err).Int64("message_id", m.ID).Msg("error printing message")
		}
	}, a.logger)

	workers.NewWorkers(watcher).Run(ctx)
	return nil
}

func (a *App) version(ctx context.Context, _ []string) error {
	info, err := a.adapter.Version(ctx)
	if err != nil {
		return fmt.Errorf("get server version: %w", err)
	}

	return a.print(info)
}

// actingUser reads the username claim of the configured token.
func (a *App) actingUser() (string, error) {
	username, err := utils.ParseUsernameFromJWT(a.adapter.Token())
	if err != nil {
		return "", fmt.Errorf("error reading username from token: %w", err)
	}
	return username, nil
}

func (a *App) print(v any) error {
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func parseMessageID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: message id must be a positive integer, got %q", ErrUsage, s)
	}
	return id, nil
}
