package arrangement

import (
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/aukilabs/go-tooling/pkg/errors"
	"gopkg.in/yaml.v3"
)

const (
	// ErrTypeConfigLoad marks a configuration file that could not be read.
	ErrTypeConfigLoad = "arrangement_config_load"
	// ErrTypeConfigParse marks a configuration file with invalid content.
	ErrTypeConfigParse = "arrangement_config_parse"
)

// DefaultDivisionThreshold is the number of lights a leaf holds before the
// next one divides it.
const DefaultDivisionThreshold = 3

// Light is a light id and its position in the unit hyper-cube.
type Light struct {
	ID       int       `yaml:"id"`
	Position []float64 `yaml:"position,flow"`
}

// Config describes an arrangement.
type Config struct {
	// Dims is the number of dimensions. When zero it is taken from the first
	// light.
	Dims int `yaml:"dims"`

	// DivisionThreshold defaults to DefaultDivisionThreshold.
	DivisionThreshold int `yaml:"division_threshold"`

	// CachePolicy is one of wtinylfu, lru, ristretto or none. Defaults to
	// wtinylfu.
	CachePolicy string `yaml:"cache_policy"`

	// CacheCapacity defaults to ntree.DefaultCacheCapacity.
	CacheCapacity int `yaml:"cache_capacity"`

	Lights []Light `yaml:"lights"`
}

// Load reads a configuration from a .csv, .yaml or .yml file. dims is only
// used for CSV files and for YAML files that do not set it.
func Load(path string, dims int) (Config, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return LoadCSV(path, dims)

	case ".yaml", ".yml":
		cfg, err := LoadYAML(path)
		if err != nil {
			return Config{}, err
		}
		if cfg.Dims == 0 {
			cfg.Dims = dims
		}
		return cfg, nil

	default:
		return Config{}, errors.New("unsupported configuration file extension").
			WithType(ErrTypeConfigLoad).
			WithTag("path", path)
	}
}

// LoadYAML reads a configuration from a YAML file.
func LoadYAML(path string) (Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.New("reading configuration file failed").
			WithType(ErrTypeConfigLoad).
			WithTag("path", path).
			Wrap(err)
	}
	if err = yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.New("parsing yaml configuration failed").
			WithType(ErrTypeConfigParse).
			WithTag("path", path).
			Wrap(err)
	}
	return cfg, nil
}

// LoadCSV reads the lights of a dims dimensional arrangement from a CSV file.
// Each row holds the coordinates followed by the light id:
//
//	0.5,0.2,0
//	0.5,0.2,0.1,0.8,1
//
// A first row whose first field is not a number is treated as a header.
func LoadCSV(path string, dims int) (Config, error) {
	cfg := Config{Dims: dims}
	if dims < 1 {
		return cfg, errors.New("csv configuration needs a positive dimension count").
			WithType(ErrTypeConfigParse).
			WithTag("dimensions", dims)
	}

	f, err := os.Open(path)
	if err != nil {
		return cfg, errors.New("opening configuration file failed").
			WithType(ErrTypeConfigLoad).
			WithTag("path", path).
			Wrap(err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = dims + 1
	r.TrimLeadingSpace = true
	r.ReuseRecord = true

	for row := 1; ; row++ {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return cfg, errors.New("reading csv row failed").
				WithType(ErrTypeConfigParse).
				WithTag("path", path).
				WithTag("row", row).
				Wrap(err)
		}
		if row == 1 && isHeader(record) {
			continue
		}

		l, err := parseRecord(record, dims)
		if err != nil {
			return cfg, errors.New("parsing csv row failed").
				WithType(ErrTypeConfigParse).
				WithTag("path", path).
				WithTag("row", row).
				Wrap(err)
		}
		cfg.Lights = append(cfg.Lights, l)
	}
	return cfg, nil
}

func isHeader(record []string) bool {
	_, err := strconv.ParseFloat(strings.TrimSpace(record[0]), 64)
	return err != nil
}

func parseRecord(record []string, dims int) (Light, error) {
	l := Light{Position: make([]float64, dims)}

	for i := 0; i < dims; i++ {
		v, err := strconv.ParseFloat(strings.TrimSpace(record[i]), 64)
		if err != nil {
			return l, errors.New("invalid coordinate").
				WithTag("field", i).
				Wrap(err)
		}
		l.Position[i] = v
	}

	id, err := strconv.Atoi(strings.TrimSpace(record[dims]))
	if err != nil {
		return l, errors.New("invalid light id").
			WithTag("field", dims).
			Wrap(err)
	}
	l.ID = id
	return l, nil
}
