package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

const defaultPath = "."

// Default proximity thresholds in statute miles.
const (
	defaultAttractionProximityMiles = 200
	defaultRewardEligibilityMiles   = 10
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port     int `json:"port" yaml:"port"`
		Timeouts struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	// Tracking configuration for the background tracking scheduler
	Tracking *TrackingConfig `json:"tracking" yaml:"tracking"`

	// Proximity thresholds for display and reward-eligibility decisions
	Proximity *ProximityConfig `json:"proximity" yaml:"proximity"`

	// GpsSimulator configuration for the built-in position provider
	GpsSimulator *GpsSimulatorConfig `json:"gpsSimulator" yaml:"gpsSimulator"`

	// RewardCentral configuration for the built-in points lookup
	RewardCentral *RewardCentralConfig `json:"rewardCentral" yaml:"rewardCentral"`

	// TripPricer configuration for the built-in pricing collaborator
	TripPricer *TripPricerConfig `json:"tripPricer" yaml:"tripPricer"`

	// PubSub configuration for reward event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	// Seed configuration for internal test users
	Seed *SeedConfig `json:"seed" yaml:"seed"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// TrackingConfig defines the scheduler's interval, pool size and grace period.
type TrackingConfig struct {
	Interval        time.Duration `json:"interval" yaml:"interval"`
	Workers         int           `json:"workers" yaml:"workers"`
	ShutdownTimeout time.Duration `json:"shutdownTimeout" yaml:"shutdownTimeout"`
}

// ProximityConfig defines the two independent distance thresholds, in statute
// miles. The display threshold never affects reward eligibility and vice
// versa.
type ProximityConfig struct {
	AttractionProximityRangeMiles float64 `json:"attractionProximityRangeMiles" yaml:"attractionProximityRangeMiles"`
	RewardEligibilityRangeMiles   float64 `json:"rewardEligibilityRangeMiles" yaml:"rewardEligibilityRangeMiles"`
}

// GpsSimulatorConfig defines the built-in position provider's behavior.
type GpsSimulatorConfig struct {
	// Artificial latency per position fix, to mimic the external provider
	MaxLatency time.Duration `json:"maxLatency" yaml:"maxLatency"`
}

// RewardCentralConfig defines the built-in points lookup's behavior.
type RewardCentralConfig struct {
	MaxLatency time.Duration `json:"maxLatency" yaml:"maxLatency"`
}

// TripPricerConfig defines the built-in pricing collaborator's behavior.
type TripPricerConfig struct {
	APIKey string `json:"apiKey" yaml:"apiKey"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "local" for local HTTP or "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
}

// SeedConfig controls startup seeding of in-memory test users.
type SeedConfig struct {
	Enabled               bool `json:"enabled" yaml:"enabled"`
	InternalUserCount     int  `json:"internalUserCount" yaml:"internalUserCount"`
	LocationHistoryLength int  `json:"locationHistoryLength" yaml:"locationHistoryLength"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	// Try to find and load the config file
	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	// Load YAML config file
	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: TRACKING_SHUTDOWNTIMEOUT -> tracking.shutdownTimeout
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	if err := cfg.applyDefaultsAndValidate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyDefaultsAndValidate fills optional sections and rejects configuration
// the scheduler cannot run with. Validation failures are fatal at startup.
func (cfg *Config) applyDefaultsAndValidate() error {
	if cfg.Tracking == nil {
		cfg.Tracking = &TrackingConfig{
			Interval:        5 * time.Minute,
			Workers:         50,
			ShutdownTimeout: 30 * time.Second,
		}
	}
	if cfg.Tracking.Interval <= 0 {
		return errors.Errorf("tracking interval must be positive, got %s", cfg.Tracking.Interval)
	}
	if cfg.Tracking.Workers <= 0 {
		return errors.Errorf("tracking worker pool size must be positive, got %d", cfg.Tracking.Workers)
	}
	if cfg.Tracking.ShutdownTimeout <= 0 {
		cfg.Tracking.ShutdownTimeout = 30 * time.Second
	}

	if cfg.Proximity == nil {
		cfg.Proximity = &ProximityConfig{}
	}
	if cfg.Proximity.AttractionProximityRangeMiles == 0 {
		cfg.Proximity.AttractionProximityRangeMiles = defaultAttractionProximityMiles
	}
	if cfg.Proximity.RewardEligibilityRangeMiles == 0 {
		cfg.Proximity.RewardEligibilityRangeMiles = defaultRewardEligibilityMiles
	}
	if cfg.Proximity.AttractionProximityRangeMiles < 0 || cfg.Proximity.RewardEligibilityRangeMiles < 0 {
		return errors.New("proximity ranges must not be negative")
	}

	return nil
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}
