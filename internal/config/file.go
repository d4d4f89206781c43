package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// FileConfig mirrors [StructuredConfig] for JSON and YAML files. Durations
// are written as strings such as "30s".
type FileConfig struct {
	App struct {
		Version       string `json:"version" yaml:"version"`
		PublicBaseURL string `json:"public_base_url" yaml:"public_base_url"`
		SessionSecret string `json:"session_secret" yaml:"session_secret"`
	} `json:"app" yaml:"app"`

	BaaS struct {
		URL            string   `json:"url" yaml:"url"`
		AnonKey        string   `json:"anon_key" yaml:"anon_key"`
		RequestTimeout Duration `json:"request_timeout" yaml:"request_timeout"`
	} `json:"baas" yaml:"baas"`

	Storage struct {
		Backend string `json:"backend" yaml:"backend"`
		DB      struct {
			DSN string `json:"dsn" yaml:"dsn"`
		} `json:"db" yaml:"db"`
		ObjectsBackend string `json:"objects_backend" yaml:"objects_backend"`
		S3             struct {
			Endpoint        string `json:"endpoint" yaml:"endpoint"`
			Region          string `json:"region" yaml:"region"`
			AccessKeyID     string `json:"access_key_id" yaml:"access_key_id"`
			SecretAccessKey string `json:"secret_access_key" yaml:"secret_access_key"`
			BucketPrefix    string `json:"bucket_prefix" yaml:"bucket_prefix"`
			PublicURL       string `json:"public_url" yaml:"public_url"`
			UsePathStyle    bool   `json:"use_path_style" yaml:"use_path_style"`
		} `json:"s3" yaml:"s3"`
	} `json:"storage" yaml:"storage"`

	Server struct {
		HTTPAddress    string   `json:"http_address" yaml:"http_address"`
		RequestTimeout Duration `json:"request_timeout" yaml:"request_timeout"`
	} `json:"server" yaml:"server"`

	Redis struct {
		Address       string `json:"address" yaml:"address"`
		Password      string `json:"password" yaml:"password"`
		DB            int    `json:"db" yaml:"db"`
		EventsChannel string `json:"events_channel" yaml:"events_channel"`
	} `json:"redis" yaml:"redis"`

	Session struct {
		Backend       string   `json:"backend" yaml:"backend"`
		CookieName    string   `json:"cookie_name" yaml:"cookie_name"`
		TTL           Duration `json:"ttl" yaml:"ttl"`
		SweepInterval Duration `json:"sweep_interval" yaml:"sweep_interval"`
	} `json:"session" yaml:"session"`
}

func parseFile(path string) (*StructuredConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var fileCfg FileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &fileCfg); err != nil {
			return nil, fmt.Errorf("error decoding yaml configs: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &fileCfg); err != nil {
			return nil, fmt.Errorf("error decoding json configs: %w", err)
		}
	}

	return fileCfg.toStructured(), nil
}

func (f *FileConfig) toStructured() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Version:       f.App.Version,
			PublicBaseURL: f.App.PublicBaseURL,
			SessionSecret: f.App.SessionSecret,
		},
		BaaS: BaaS{
			URL:            f.BaaS.URL,
			AnonKey:        f.BaaS.AnonKey,
			RequestTimeout: time.Duration(f.BaaS.RequestTimeout),
		},
		Storage: Storage{
			Backend:        f.Storage.Backend,
			DB:             DB{DSN: f.Storage.DB.DSN},
			ObjectsBackend: f.Storage.ObjectsBackend,
			S3: S3{
				Endpoint:        f.Storage.S3.Endpoint,
				Region:          f.Storage.S3.Region,
				AccessKeyID:     f.Storage.S3.AccessKeyID,
				SecretAccessKey: f.Storage.S3.SecretAccessKey,
				BucketPrefix:    f.Storage.S3.BucketPrefix,
				PublicURL:       f.Storage.S3.PublicURL,
				UsePathStyle:    f.Storage.S3.UsePathStyle,
			},
		},
		Server: Server{
			HTTPAddress:    f.Server.HTTPAddress,
			RequestTimeout: time.Duration(f.Server.RequestTimeout),
		},
		Redis: Redis{
			Address:       f.Redis.Address,
			Password:      f.Redis.Password,
			DB:            f.Redis.DB,
			EventsChannel: f.Redis.EventsChannel,
		},
		Session: Session{
			Backend:       f.Session.Backend,
			CookieName:    f.Session.CookieName,
			TTL:           time.Duration(f.Session.TTL),
			SweepInterval: time.Duration(f.Session.SweepInterval),
		},
	}
}

// Duration is a wrapper around time.Duration that supports JSON and YAML
// unmarshaling from strings like "1h", "30s". Plain numbers are nanoseconds.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}

	if n, err := time.ParseDuration(raw); err == nil {
		*d = Duration(n)
		return nil
	}

	var nanos int64
	if err := value.Decode(&nanos); err != nil {
		return fmt.Errorf("invalid duration %q", raw)
	}
	*d = Duration(time.Duration(nanos))
	return nil
}
