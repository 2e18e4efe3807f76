package config

import (
	"encoding/json"
	"fmt"
	"os"
)

type (
	Config struct {
		Algorithms []string `json:"algorithms"`
		Quantum    int      `json:"quantum"`
		LogLevel   string   `json:"log_level"`
		Listen     string   `json:"listen"`
		Remote     string   `json:"remote"`
		Trace      bool     `json:"trace"`
		Random     Random   `json:"random"`
	}
	// Random configures generated schedules.
	Random struct {
		Count        int   `json:"count"`
		ArrivalLimit int   `json:"arrival_limit"`
		BurstLimit   int   `json:"burst_limit"`
		Seed         int64 `json:"seed"`
	}
)

func Default() Config {
	return Config{
		Algorithms: []string{"fcfs", "sjf", "srtf", "rr", "priority"},
		Quantum:    1,
		LogLevel:   "info",
		Listen:     ":8080",
		Random: Random{
			ArrivalLimit: 10,
			BurstLimit:   10,
		},
	}
}

// Load reads a JSON configuration file. Fields missing from the file keep
// their default values.
func Load(filePath string) (Config, error) {
	c := Default()

	configFile, err := os.Open(filePath)
	if err != nil {
		return c, fmt.Errorf("%w: opening configuration file", err)
	}
	defer func() {
		_ = configFile.Close()
	}()

	if err := json.NewDecoder(configFile).Decode(&c); err != nil {
		return c, fmt.Errorf("%w: decoding configuration file %s", err, filePath)
	}
	if c.Quantum < 1 {
		return c, fmt.Errorf("%w: quantum %d", ErrInvalidConfig, c.Quantum)
	}
	return c, nil
}
