package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App           App           `mapstructure:",squash"`
	Server        Server        `mapstructure:",squash"`
	Database      Database      `mapstructure:",squash"`
	Auth          Auth          `mapstructure:",squash"`
	AdLibrary     AdLibrary     `mapstructure:",squash"`
	Renderer      Renderer      `mapstructure:",squash"`
	TextReader    TextReader    `mapstructure:",squash"`
	Analysis      Analysis      `mapstructure:",squash"`
	Market        Market        `mapstructure:",squash"`
	DiscoverySync DiscoverySync `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type Auth struct {
	Secret string `mapstructure:"auth_secret"`
}

// AdLibrary configura o cliente da biblioteca de anúncios externa.
type AdLibrary struct {
	URL            string        `mapstructure:"adlibrary_url"`
	AccessToken    string        `mapstructure:"adlibrary_access_token"`
	RequestTimeout time.Duration `mapstructure:"adlibrary_request_timeout"`
	SearchLimit    int           `mapstructure:"adlibrary_search_limit"`
}

// Renderer configura o colaborador de renderização interativa (Chrome
// headless remoto, falado via CDP).
type Renderer struct {
	WebsocketURL string        `mapstructure:"renderer_websocket_url"`
	Timeout      time.Duration `mapstructure:"renderer_timeout"`
	NavWait      time.Duration `mapstructure:"renderer_nav_wait"`
}

// TextReader configura o colaborador de extração passiva de texto legível.
type TextReader struct {
	URL     string        `mapstructure:"textreader_url"`
	Timeout time.Duration `mapstructure:"textreader_timeout"`
}

// Analysis controla o ritmo do orquestrador de análise profunda. Os delays
// entre itens são o mecanismo de backpressure contra o rate limit do
// renderizador; a execução é sequencial por contrato.
type Analysis struct {
	ItemDelay     time.Duration `mapstructure:"analysis_item_delay"`
	RendererDelay time.Duration `mapstructure:"analysis_renderer_delay"`
}

// Market concentra as constantes específicas do mercado-alvo. Os valores
// padrão assumem uma moeda sem subunidade prática (preços na casa das
// dezenas de milhares); para outro mercado basta reconfigurar.
type Market struct {
	CurrencySymbol  string  `mapstructure:"market_currency_symbol"`
	MinValidPrice   float64 `mapstructure:"market_min_valid_price"`
	MaxValidPrice   float64 `mapstructure:"market_max_valid_price"`
	OutlierRatio    float64 `mapstructure:"market_outlier_ratio"`
	MarginThreshold float64 `mapstructure:"market_margin_threshold"`
	MarginFloor     float64 `mapstructure:"market_margin_floor"`
}

type DiscoverySync struct {
	CronSchedule        string `mapstructure:"discovery_sync_cron"`
	RequestDelaySeconds int    `mapstructure:"discovery_sync_request_delay_seconds"`
	Enabled             bool   `mapstructure:"discovery_sync_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/radar")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("AUTH_SECRET", "your_auth_secret")

	viper.SetDefault("ADLIBRARY_URL", "https://api.adslibrary.io/v1")
	viper.SetDefault("ADLIBRARY_ACCESS_TOKEN", "your_access_token")
	viper.SetDefault("ADLIBRARY_REQUEST_TIMEOUT", "20s")
	viper.SetDefault("ADLIBRARY_SEARCH_LIMIT", 50)

	viper.SetDefault("RENDERER_WEBSOCKET_URL", "ws://localhost:3000") // browserless local
	viper.SetDefault("RENDERER_TIMEOUT", "25s")
	viper.SetDefault("RENDERER_NAV_WAIT", "4s")

	viper.SetDefault("TEXTREADER_URL", "https://r.jina.ai")
	viper.SetDefault("TEXTREADER_TIMEOUT", "30s")

	viper.SetDefault("ANALYSIS_ITEM_DELAY", "1s")
	viper.SetDefault("ANALYSIS_RENDERER_DELAY", "1500ms")

	// Constantes do mercado-alvo. Janela de preço plausível e limiar de
	// margem absoluta herdados da operação original; tratados como
	// configuração, não como verdade universal.
	viper.SetDefault("MARKET_CURRENCY_SYMBOL", "$")
	viper.SetDefault("MARKET_MIN_VALID_PRICE", 15000)
	viper.SetDefault("MARKET_MAX_VALID_PRICE", 500000)
	viper.SetDefault("MARKET_OUTLIER_RATIO", 0.6)
	viper.SetDefault("MARKET_MARGIN_THRESHOLD", 15000)
	viper.SetDefault("MARKET_MARGIN_FLOOR", 0.2)

	viper.SetDefault("DISCOVERY_SYNC_CRON", "0 7 * * *") // Todos os dias às 7h da manhã
	viper.SetDefault("DISCOVERY_SYNC_REQUEST_DELAY_SECONDS", 2)
	viper.SetDefault("DISCOVERY_SYNC_ENABLED", false)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../.env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
