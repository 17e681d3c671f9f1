package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// SourceConfig enables one scrape source and carries its search parameters.
type SourceConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Query    string `yaml:"query"`
	Location string `yaml:"location"`
}

// MailConfig holds SMTP submission settings. Populated from the environment,
// never from the YAML file, so credentials stay out of config checked into
// dotfiles. See LoadMailEnv.
type MailConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	Recipient string
}

type Config struct {
	App struct {
		DataDir string `yaml:"data_dir"`
	} `yaml:"app"`

	Sources struct {
		Naukri    SourceConfig `yaml:"naukri"`
		LinkedIn  SourceConfig `yaml:"linkedin"`
		Indeed    SourceConfig `yaml:"indeed"`
		Bing      SourceConfig `yaml:"bing"`
		Shine     SourceConfig `yaml:"shine"`
		Foundit   SourceConfig `yaml:"foundit"`
		Google    SourceConfig `yaml:"google"`
		TimesJobs SourceConfig `yaml:"timesjobs"`
	} `yaml:"sources"`

	// MaxResults caps how many kept listings each source contributes per run.
	MaxResults int `yaml:"max_results"`

	Filters struct {
		Cities         []string `yaml:"cities"`
		RoleKeywords   []string `yaml:"role_keywords"`
		WalkinKeywords []string `yaml:"walkin_keywords"`
	} `yaml:"filters"`

	Enrich struct {
		Enabled bool `yaml:"enabled"`
	} `yaml:"enrich"`

	Fetch struct {
		TimeoutSeconds int `yaml:"timeout_seconds"`
	} `yaml:"fetch"`

	Mail MailConfig `yaml:"-"`
}

func Load(path string) (Config, error) {
	var cfg Config
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	err = yaml.Unmarshal(b, &cfg)
	return cfg, err
}
