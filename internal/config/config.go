package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/txreport/txreport/internal/model"
)

// FileName is the config file looked up when --config is not given.
const FileName = "txreport.yaml"

// Config represents the top-level txreport.yaml configuration.
type Config struct {
	Input   InputConfig   `yaml:"input"`
	Kinds   KindsConfig   `yaml:"kinds"`
	Display DisplayConfig `yaml:"display"`
	Log     LogConfig     `yaml:"log"`
	Menu    MenuConfig    `yaml:"menu"`
}

// InputConfig controls where transactions are read from.
type InputConfig struct {
	DefaultPath string `yaml:"default_path"`
}

// KindsConfig holds the labels recognized as credit and debit.
type KindsConfig struct {
	Credit string `yaml:"credit"`
	Debit  string `yaml:"debit"`
}

// DisplayConfig controls console output.
type DisplayConfig struct {
	Color       bool `yaml:"color"`
	ClearScreen bool `yaml:"clear_screen"`
}

// LogConfig controls diagnostic logging.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// MenuConfig holds every user-facing string of the interactive menu.
type MenuConfig struct {
	MainTitle      string `yaml:"main_title"`
	LoadFile       string `yaml:"load_file"`
	Exit           string `yaml:"exit"`
	Goodbye        string `yaml:"goodbye"`
	ReportTitle    string `yaml:"report_title"`
	Balance        string `yaml:"balance"`
	Highest        string `yaml:"highest"`
	Counts         string `yaml:"counts"`
	Full           string `yaml:"full"`
	Back           string `yaml:"back"`
	BalanceHeading string `yaml:"balance_heading"`
	HighestHeading string `yaml:"highest_heading"`
	CountsHeading  string `yaml:"counts_heading"`
	FullHeading    string `yaml:"full_heading"`
	Select         string `yaml:"select"`
	PathPrompt     string `yaml:"path_prompt"`
	Continue       string `yaml:"continue"`
	InvalidOption  string `yaml:"invalid_option"`
	FileNotFound   string `yaml:"file_not_found"` // %s is the path
	NoTransactions string `yaml:"no_transactions"`
}

// Load reads a txreport.yaml file from disk. Fields missing from the file
// keep their default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks that the kind labels are set and tell credits from debits.
func (c *Config) Validate() error {
	credit := strings.TrimSpace(c.Kinds.Credit)
	debit := strings.TrimSpace(c.Kinds.Debit)
	if credit == "" || debit == "" {
		return errors.New("kinds.credit and kinds.debit must not be empty")
	}
	// Labels are matched ignoring case.
	if strings.EqualFold(credit, debit) {
		return fmt.Errorf("kinds.credit and kinds.debit must differ, both are %q", c.Kinds.Credit)
	}
	return nil
}

// LoadOrDefault is Load, except a missing file yields Default.
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Input: InputConfig{
			DefaultPath: "../data.csv",
		},
		Kinds: KindsConfig{
			Credit: model.KindCredit,
			Debit:  model.KindDebit,
		},
		Display: DisplayConfig{
			Color:       true,
			ClearScreen: true,
		},
		Log: LogConfig{
			Level: "warn",
		},
		Menu: MenuConfig{
			MainTitle:      "==== Menú Principal ====",
			LoadFile:       "Leer archivo CSV",
			Exit:           "Salir",
			Goodbye:        "¡Hasta luego!",
			ReportTitle:    "==== Opciones de Reporte ====",
			Balance:        "Ver Balance Final",
			Highest:        "Ver Transacción de Mayor Monto",
			Counts:         "Ver Conteo de Transacciones",
			Full:           "Ver Reporte Completo",
			Back:           "Volver al Menú Principal",
			BalanceHeading: "Balance Final",
			HighestHeading: "Transacción de Mayor Monto",
			CountsHeading:  "Conteo de Transacciones",
			FullHeading:    "Reporte del Balance Final",
			Select:         "Seleccione una opción: ",
			PathPrompt:     "Ingrese la ruta del archivo CSV (Enter para usar ruta por defecto '%s'):",
			Continue:       "Presione Enter para continuar...",
			InvalidOption:  "Opción inválida.",
			FileNotFound:   "El archivo '%s' no existe.",
			NoTransactions: "No se encontraron transacciones válidas.",
		},
	}
}
