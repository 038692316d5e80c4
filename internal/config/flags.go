// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
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

// parseFlags parses configuration flags from args.
//
// Flags:
//
//	-a backend address (URL or host:port)
//	-l control API listen address in format [host]:[port]
//	-d database DSN (SQLite path, ":memory:" or postgres URL)
//	-redis redis address in format [host]:[port]
//	-c/-config json file path with configs
//	-t bearer token
//	-request-timeout outbound request timeout (e.g. "10s")
//	-max-retries retry budget per action
//	-batch-size actions replayed concurrently
//	-probe-interval backend reachability check interval
//	-log-file client log file path
func parseFlags(name string, args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)

	var listenAddress, redisAddress NetAddress
	var adapterAddress, databaseDSN, jsonConfigPath, token, logFile string
	var requestTimeout, probeInterval time.Duration
	var maxRetries, batchSize int

	fs.StringVar(&adapterAddress, "a", "", "Backend address")
	fs.Var(&listenAddress, "l", "Control API address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.Var(&redisAddress, "redis", "Redis address host:port")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&token, "t", "", "Bearer token")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 10s)")
	fs.IntVar(&maxRetries, "max-retries", 0, "Retry budget per action")
	fs.IntVar(&batchSize, "batch-size", 0, "Actions replayed concurrently")
	fs.DurationVar(&probeInterval, "probe-interval", 0, "Backend reachability check interval")
	fs.StringVar(&logFile, "log-file", "", "Log file path")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			LogFile: logFile,
		},
		Adapter: Adapter{
			HTTPAddress:    adapterAddress,
			RequestTimeout: requestTimeout,
			Token:          token,
		},
		Storage: Storage{
			DB:    DB{DSN: databaseDSN},
			Redis: Redis{Address: redisAddress.String()},
		},
		Sync: Sync{
			MaxRetries: maxRetries,
			BatchSize:  batchSize,
		},
		Server: Server{
			HTTPAddress: listenAddress.String(),
		},
		Workers: Workers{
			ProbeInterval: probeInterval,
		},
		JSONFilePath: jsonConfigPath,
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

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
