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

// ParseFlags parses configuration flags from args (usually os.Args[1:]).
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d database DSN
//	-c/-config json or yaml file path with configs
//	-storage record backend: baas, postgres or sqlite
//	-objects object storage backend: baas or s3
//	-baas-url backend project URL
//	-baas-key backend anon key
//	-public-url externally reachable base URL of the web server
//	-redis redis address in format host:port
//	-session session backend: memory or redis
//	-request-timeout request timeout (e.g., "30s", "1m")
func ParseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var databaseDSN string
	var configPath string
	var storageBackend, objectsBackend string
	var baasURL, baasKey string
	var publicURL string
	var redisAddress string
	var sessionBackend string
	var requestTimeout time.Duration

	fs := flag.NewFlagSet("travel-journal", flag.ContinueOnError)
	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&configPath, "c", "", "JSON or YAML config file path")
	fs.StringVar(&configPath, "config", "", "JSON or YAML config file path (alias)")
	fs.StringVar(&storageBackend, "storage", "", "Record backend: baas, postgres, sqlite")
	fs.StringVar(&objectsBackend, "objects", "", "Object storage backend: baas, s3")
	fs.StringVar(&baasURL, "baas-url", "", "Backend project URL")
	fs.StringVar(&baasKey, "baas-key", "", "Backend anon key")
	fs.StringVar(&publicURL, "public-url", "", "Public base URL of the web server")
	fs.StringVar(&redisAddress, "redis", "", "Redis address host:port")
	fs.StringVar(&sessionBackend, "session", "", "Session backend: memory, redis")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			PublicBaseURL: publicURL,
		},
		BaaS: BaaS{
			URL:     baasURL,
			AnonKey: baasKey,
		},
		Storage: Storage{
			Backend:        storageBackend,
			DB:             DB{DSN: databaseDSN},
			ObjectsBackend: objectsBackend,
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Redis:          Redis{Address: redisAddress},
		Session:        Session{Backend: sessionBackend},
		ConfigFilePath: configPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns the default server address.
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
