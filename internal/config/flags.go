package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
	"strings"
)

var (
	errAddressFormat = errors.New("need address in a form `host:port`")
	errPortRange     = errors.New("port number must be in range 1..65535")
	errAddressHost   = errors.New("incorrect IP-address provided")
)

// NetAddress is a host:port pair usable as a flag.Value. An empty host
// binds every interface.
type NetAddress struct {
	Host string
	Port int
}

// String renders the address, or "" when unset.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}
	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// Set accepts "host:port", ":port" and "[ipv6]:port". Host names other than
// localhost are rejected.
func (a *NetAddress) Set(s string) error {
	host, rawPort, err := net.SplitHostPort(s)
	if err != nil {
		return errAddressFormat
	}

	port, err := strconv.Atoi(rawPort)
	if err != nil {
		return fmt.Errorf("invalid port %q: %w", rawPort, err)
	}
	if port < 1 || port > 65535 {
		return errPortRange
	}
	if host != "" && host != "localhost" && net.ParseIP(host) == nil {
		return errAddressHost
	}

	a.Host, a.Port = host, port
	return nil
}

// listFlag collects a comma separated flag into a string slice.
type listFlag []string

func (l *listFlag) String() string {
	return strings.Join(*l, ",")
}

func (l *listFlag) Set(s string) error {
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			*l = append(*l, item)
		}
	}
	return nil
}

// ParseFlags reads the command line into a partial config. Only flags that
// were given end up non-zero, so the result merges cleanly over other layers.
func ParseFlags(args []string) (*StructuredConfig, error) {
	var (
		cfg     StructuredConfig
		address NetAddress
		origins listFlag
	)

	fs := flag.NewFlagSet("spotted-relay", flag.ContinueOnError)

	fs.StringVar(&cfg.JSONFilePath, "c", "", "JSON config file path")
	fs.StringVar(&cfg.JSONFilePath, "config", "", "JSON config file path (alias of -c)")

	fs.StringVar(&cfg.App.Env, "env", "", "deployment environment: production or development")
	fs.StringVar(&cfg.App.LogLevel, "log-level", "", "zerolog level name")

	fs.Var(&address, "a", "listen address host:port")
	fs.DurationVar(&cfg.Server.RequestTimeout, "request-timeout", 0, "per-request timeout, e.g. 30s")
	fs.DurationVar(&cfg.Server.ShutdownTimeout, "shutdown-timeout", 0, "graceful shutdown timeout")

	fs.StringVar(&cfg.Upload.TempDir, "upload-dir", "", "directory for in-flight attachments")
	fs.DurationVar(&cfg.Upload.SweepInterval, "sweep-interval", 0, "stale attachment sweep interval")
	fs.DurationVar(&cfg.Upload.StaleAfter, "stale-after", 0, "age after which an attachment is stale")

	fs.StringVar(&cfg.Storage.Driver, "storage", "", "catalog driver: mongo or postgres")
	fs.StringVar(&cfg.Storage.Mongo.URI, "mongo-uri", "", "MongoDB connection URI")
	fs.StringVar(&cfg.Storage.Postgres.DSN, "d", "", "PostgreSQL DSN")

	fs.StringVar(&cfg.Mail.Driver, "mail", "", "mail relay driver: smtp or http")

	fs.Var(&origins, "cors-origins", "comma separated list of allowed CORS origins")
	fs.StringVar(&cfg.Security.TrustProxy, "trust-proxy", "", "true, false or number of trusted proxy hops")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	cfg.Server.HTTPAddress = address.String()
	if len(origins) > 0 {
		cfg.Security.CORSOrigins = origins
	}

	return &cfg, nil
}
