package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/gardar/porename/pkg/ocr"
	"github.com/gardar/porename/pkg/porename"
)

const (
	defaultConfigName = "porename.yml"
	defaultWorkDir    = "WORKING_DIR"

	engineTesseract  = "tesseract"
	engineDocumentAI = "documentai"
)

type yamlConfig struct {
	WorkDir string `yaml:"work_dir"`
	Pattern string `yaml:"pattern"`
	Log     struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
	} `yaml:"log"`
	OCR struct {
		Engine     string `yaml:"engine"`
		Pdftoppm   string `yaml:"pdftoppm"`
		Tesseract  string `yaml:"tesseract"`
		DocumentAI struct {
			ProjectID       string `yaml:"project_id"`
			Location        string `yaml:"location"`
			ProcessorID     string `yaml:"processor_id"`
			CredentialsFile string `yaml:"credentials_file"`
		} `yaml:"documentai"`
	} `yaml:"ocr"`
}

// config is the validated command configuration
type config struct {
	WorkDir    string
	Pattern    string
	LogLevel   slog.Level
	LogFormat  string
	Engine     string
	Pdftoppm   string
	Tesseract  string
	DocumentAI ocr.DocumentAIConfig
}

func defaultConfig(exeDir string) config {
	return config{
		WorkDir:   filepath.Join(exeDir, defaultWorkDir),
		Pattern:   porename.DefaultPattern,
		LogLevel:  slog.LevelInfo,
		LogFormat: "text",
		Engine:    engineTesseract,
		Pdftoppm:  "pdftoppm",
		Tesseract: "tesseract",
	}
}

// loadConfig reads the YAML file at path on top of the defaults. An empty path
// looks for porename.yml in exeDir and uses the defaults when there is none.
func loadConfig(path, exeDir string) (config, error) {
	cfg := defaultConfig(exeDir)

	explicit := path != ""
	if !explicit {
		path = filepath.Join(exeDir, defaultConfigName)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}

	var yc yamlConfig
	if err := yaml.Unmarshal(data, &yc); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.apply(yc, filepath.Dir(path)); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// apply overlays the non-empty values of yc. Relative work_dir and
// credentials_file paths are resolved against baseDir, the config directory.
func (c *config) apply(yc yamlConfig, baseDir string) error {
	if yc.WorkDir != "" {
		c.WorkDir = resolvePath(yc.WorkDir, baseDir)
	}
	if yc.Pattern != "" {
		if _, err := regexp.Compile(yc.Pattern); err != nil {
			return fmt.Errorf("invalid pattern %q: %w", yc.Pattern, err)
		}
		c.Pattern = yc.Pattern
	}

	if yc.Log.Level != "" {
		if err := c.LogLevel.UnmarshalText([]byte(yc.Log.Level)); err != nil {
			return fmt.Errorf("invalid log.level %q", yc.Log.Level)
		}
	}
	if format := strings.ToLower(strings.TrimSpace(yc.Log.Format)); format != "" {
		if format != "text" && format != "json" {
			return fmt.Errorf("invalid log.format %q (want text or json)", yc.Log.Format)
		}
		c.LogFormat = format
	}

	if engine := strings.ToLower(strings.TrimSpace(yc.OCR.Engine)); engine != "" {
		if engine != engineTesseract && engine != engineDocumentAI {
			return fmt.Errorf("invalid ocr.engine %q (want %s or %s)", yc.OCR.Engine, engineTesseract, engineDocumentAI)
		}
		c.Engine = engine
	}
	if yc.OCR.Pdftoppm != "" {
		c.Pdftoppm = yc.OCR.Pdftoppm
	}
	if yc.OCR.Tesseract != "" {
		c.Tesseract = yc.OCR.Tesseract
	}

	dai := yc.OCR.DocumentAI
	c.DocumentAI = ocr.DocumentAIConfig{
		ProjectID:   dai.ProjectID,
		Location:    dai.Location,
		ProcessorID: dai.ProcessorID,
	}
	if dai.CredentialsFile != "" {
		c.DocumentAI.CredentialsFile = resolvePath(dai.CredentialsFile, baseDir)
	}
	if c.Engine == engineDocumentAI {
		if err := c.DocumentAI.Validate(); err != nil {
			return err
		}
	}
	return nil
}

func resolvePath(path, baseDir string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(baseDir, path)
}

// executableDir returns the directory holding the running binary
func executableDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("locate executable: %w", err)
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Dir(exe), nil
}
