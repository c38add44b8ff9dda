// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses configuration flags from args (without the program name).
// Arguments remaining after the last flag are stored in StructuredConfig.Args.
//
// Flags:
//
//	-a server listen address in format [host]:[port]
//	-env runtime environment ("test" selects the test database)
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-token-duration token duration (e.g., "24h", "30m")
//	-bcrypt-work-factor bcrypt cost
//	-db-driver database driver ("pgx" or "sqlite3")
//	-d database DSN
//	-test-d test database DSN
//	-request-timeout server request timeout (e.g., "30s", "1m")
//	-server base URL of the server used by the client
//	-client-timeout client request timeout
//	-token bearer token used by the client
//	-poll-interval inbox watcher period
//	-c/-config json file path with configs
func parseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var env, tokenSignKey, tokenIssuer string
	var tokenDuration time.Duration
	var bcryptWorkFactor int
	var dbDriver, databaseDSN, testDatabaseDSN string
	var requestTimeout time.Duration
	var adapterAddress, adapterToken string
	var adapterTimeout, pollInterval time.Duration
	var jsonConfigPath string

	fs := flag.NewFlagSet("messagely", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&env, "env", "", "Runtime environment")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 24h, 30m)")
	fs.IntVar(&bcryptWorkFactor, "bcrypt-work-factor", 0, "Bcrypt cost")
	fs.StringVar(&dbDriver, "db-driver", "", "Database driver (pgx or sqlite3)")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&testDatabaseDSN, "test-d", "", "Test database DSN")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&adapterAddress, "server", "", "Server base URL")
	fs.DurationVar(&adapterTimeout, "client-timeout", 0, "Client request timeout")
	fs.StringVar(&adapterToken, "token", "", "Bearer token")
	fs.DurationVar(&pollInterval, "poll-interval", 0, "Inbox poll interval")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			Env:              env,
			TokenSignKey:     tokenSignKey,
			TokenIssuer:      tokenIssuer,
			TokenDuration:    tokenDuration,
			BcryptWorkFactor: bcryptWorkFactor,
		},
		Storage: Storage{
			DB: DB{
				Driver:  dbDriver,
				DSN:     databaseDSN,
				TestDSN: testDatabaseDSN,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Adapter: Adapter{
			HTTPAddress:    adapterAddress,
			RequestTimeout: adapterTimeout,
			Token:          adapterToken,
		},
		Workers: Workers{
			PollInterval: pollInterval,
		},
		JSONFilePath: jsonConfigPath,
		Args:         fs.Args(),
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost"
// or empty, and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in [1, 65535]")
	}

	if host != "localhost" && host != "" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
