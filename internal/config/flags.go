package config

import (
	"errors"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/pflag"
)

// NetAddress holds structured network address data for host and port.
// It implements the pflag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// Flags holds the values of the configuration flags registered on a flag
// set by [BindFlags]. The values are read after the flag set is parsed.
type Flags struct {
	serverAddress  NetAddress
	adapterAddress string
	databaseDSN    string
	requestTimeout time.Duration
	jsonConfigPath string
	logLevel       string
}

// BindFlags registers all configuration flags on fs.
//
// Flags:
//
//	-a/--address       server listen address in format [host]:[port]
//	-s/--server        address of a running server to talk to
//	-d/--dsn           storage DSN
//	--request-timeout  request timeout (e.g. "30s", "1m")
//	-c/--config        json file path with configs
//	--log-level        zerolog level name
func BindFlags(fs *pflag.FlagSet) *Flags {
	f := &Flags{}

	fs.VarP(&f.serverAddress, "address", "a", "Net address host:port to listen on")
	fs.StringVarP(&f.adapterAddress, "server", "s", "", "Address of a running fortnote server")
	fs.StringVarP(&f.databaseDSN, "dsn", "d", "", "Storage DSN (sqlite path, file://x.json, postgres://..., memory)")
	fs.DurationVar(&f.requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVarP(&f.jsonConfigPath, "config", "c", "", "JSON config file path")
	fs.StringVar(&f.logLevel, "log-level", "", "Log level (debug, info, warn, error)")

	return f
}

// structured converts the parsed flag values into a partial config. The
// request timeout applies to both the server and the adapter side.
func (f *Flags) structured() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			LogLevel: f.logLevel,
		},
		Storage: Storage{
			DSN: f.databaseDSN,
		},
		Server: Server{
			HTTPAddress:    f.serverAddress.String(),
			RequestTimeout: f.requestTimeout,
		},
		Adapter: Adapter{
			HTTPAddress:    f.adapterAddress,
			RequestTimeout: f.requestTimeout,
		},
		JSONFilePath: f.jsonConfigPath,
	}
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
		return errors.New("port number must be in range 1-65535")
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

// Type implements pflag.Value.
func (a *NetAddress) Type() string {
	return "host:port"
}
