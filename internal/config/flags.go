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

func newFlagSet() *flag.FlagSet {
	fs := flag.NewFlagSet("garage", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

// parseFlags parses args with fs. Arguments after the flags are kept in
// StructuredConfig.Args.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d database DSN
//	-driver database driver (sqlite3 or pgx)
//	-c/-config json file path with configs
//	-request-timeout server request timeout (e.g., "30s", "1m")
//	-shutdown-timeout server graceful shutdown timeout
//	-adapter REST server base URL used by the client
//	-api-key REST api key
//	-adapter-timeout client request timeout
//	-refresh-interval client background refresh interval
//	-log-file client log file
//	-compensate remove documents whose line items were not saved
func parseFlags(fs *flag.FlagSet, args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var databaseDSN, driver string
	var jsonConfigPath string
	var requestTimeout, shutdownTimeout time.Duration
	var adapterAddress, apiKey string
	var adapterTimeout, refreshInterval time.Duration
	var logFile string
	var compensate bool

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&driver, "driver", "", "Database driver (sqlite3, pgx)")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.DurationVar(&shutdownTimeout, "shutdown-timeout", 0, "Graceful shutdown timeout")
	fs.StringVar(&adapterAddress, "adapter", "", "REST server base URL")
	fs.StringVar(&apiKey, "api-key", "", "REST api key")
	fs.DurationVar(&adapterTimeout, "adapter-timeout", 0, "Client request timeout")
	fs.DurationVar(&refreshInterval, "refresh-interval", 0, "Background refresh interval")
	fs.StringVar(&logFile, "log-file", "", "Client log file")
	fs.BoolVar(&compensate, "compensate", false, "Remove documents whose line items were not saved")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			LogFile: logFile,
		},
		Storage: Storage{
			DB: DB{
				Driver: driver,
				DSN:    databaseDSN,
			},
		},
		Server: Server{
			HTTPAddress:     serverAddress.String(),
			RequestTimeout:  requestTimeout,
			ShutdownTimeout: shutdownTimeout,
		},
		Adapter: Adapter{
			HTTPAddress:    adapterAddress,
			APIKey:         apiKey,
			RequestTimeout: adapterTimeout,
		},
		Workers: Workers{
			RefreshInterval: refreshInterval,
		},
		Billing: Billing{
			Compensate: compensate,
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
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
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
		return errors.New("port number must be between 1 and 65535")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
