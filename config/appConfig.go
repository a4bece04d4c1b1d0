package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	defaultOzonURL     = "https://api-seller.ozon.ru"
	defaultYandexURL   = "https://api.partner.market.yandex.ru"
	defaultSupplierURL = "https://timeworld.ru/upload/files/ostatki.zip"
)

type OzonConfig struct {
	BaseURL        string `yaml:"base_url"`
	StockBatchSize int    `yaml:"stock_batch_size"`
	PriceBatchSize int    `yaml:"price_batch_size"`
	PageLimit      int    `yaml:"page_limit"`
	ClientID       string `yaml:"-"`
	SellerToken    string `yaml:"-"`
}

func (c OzonConfig) Enabled() bool {
	return c.ClientID != "" && c.SellerToken != ""
}

// CampaignConfig описывает кампанию Яндекс.Маркета (FBS/DBS) и склад, к которому привязаны остатки.
type CampaignConfig struct {
	Name        string
	CampaignID  string
	WarehouseID int64
}

type YandexConfig struct {
	BaseURL        string           `yaml:"base_url"`
	StockBatchSize int              `yaml:"stock_batch_size"`
	PriceBatchSize int              `yaml:"price_batch_size"`
	PageLimit      int              `yaml:"page_limit"`
	Token          string           `yaml:"-"`
	Campaigns      []CampaignConfig `yaml:"-"`
}

func (c YandexConfig) Enabled() bool {
	return c.Token != "" && len(c.Campaigns) > 0
}

type SupplierConfig struct {
	URL       string `yaml:"url"`
	HeaderRow int    `yaml:"header_row"`
}

type HTTPConfig struct {
	TimeoutSeconds    int     `yaml:"timeout_seconds"`
	RequestsPerSecond float64 `yaml:"requests_per_second"`
}

func (c HTTPConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

type LoggerConfig struct {
	Level    string `yaml:"level"`
	Encoding string `yaml:"encoding"`
}

type ReportsConfig struct {
	Enabled bool `yaml:"enabled"`
}

type AppConfig struct {
	Ozon        OzonConfig     `yaml:"ozon"`
	Yandex      YandexConfig   `yaml:"yandex"`
	Supplier    SupplierConfig `yaml:"supplier"`
	HTTP        HTTPConfig     `yaml:"http"`
	Logger      LoggerConfig   `yaml:"logger"`
	Reports     ReportsConfig  `yaml:"reports"`
	MetricsAddr string         `yaml:"metrics_addr"`
	Postgres    PostgresConfig `yaml:"-"`
}

func Default() *AppConfig {
	return &AppConfig{
		Ozon: OzonConfig{
			BaseURL:        defaultOzonURL,
			StockBatchSize: 100,
			PriceBatchSize: 900,
			PageLimit:      1000,
		},
		Yandex: YandexConfig{
			BaseURL:        defaultYandexURL,
			StockBatchSize: 2000,
			PriceBatchSize: 500,
			PageLimit:      200,
		},
		Supplier: SupplierConfig{
			URL:       defaultSupplierURL,
			HeaderRow: 17,
		},
		HTTP:   HTTPConfig{TimeoutSeconds: 30},
		Logger: LoggerConfig{Level: "info", Encoding: "console"},
	}
}

func LoadConfig(filename string) (*AppConfig, error) {
	config := Default()

	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	if err := decoder.Decode(config); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", filename, err)
	}
	return config, nil
}

// Load собирает конфигурацию: значения по умолчанию, yaml-файл (если есть) и переменные окружения.
func Load() (*AppConfig, error) {
	path := getEnv("CONFIG_PATH", "config.yaml")

	config, err := LoadConfig(path)
	if errors.Is(err, os.ErrNotExist) {
		config = Default()
	} else if err != nil {
		return nil, err
	}

	if err := config.applyEnv(); err != nil {
		return nil, err
	}
	if err := config.validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// validate отклоняет нулевые и отрицательные размеры пачек и страниц.
func (c *AppConfig) validate() error {
	sizes := []struct {
		name  string
		value int
	}{
		{"ozon.stock_batch_size", c.Ozon.StockBatchSize},
		{"ozon.price_batch_size", c.Ozon.PriceBatchSize},
		{"ozon.page_limit", c.Ozon.PageLimit},
		{"yandex.stock_batch_size", c.Yandex.StockBatchSize},
		{"yandex.price_batch_size", c.Yandex.PriceBatchSize},
		{"yandex.page_limit", c.Yandex.PageLimit},
	}
	for _, size := range sizes {
		if size.value <= 0 {
			return fmt.Errorf("%s must be positive, got %d", size.name, size.value)
		}
	}
	return nil
}

func (c *AppConfig) applyEnv() error {
	c.Ozon.ClientID = getEnv("CLIENT_ID", "")
	c.Ozon.SellerToken = getEnv("SELLER_TOKEN", "")
	c.Yandex.Token = getEnv("MARKET_TOKEN", "")

	c.Supplier.URL = getEnv("SUPPLIER_URL", c.Supplier.URL)
	c.Logger.Level = getEnv("LOGGER_LEVEL", c.Logger.Level)
	c.Logger.Encoding = getEnv("LOGGER_ENCODING", c.Logger.Encoding)
	c.MetricsAddr = getEnv("METRICS_ADDR", c.MetricsAddr)
	c.Reports.Enabled = getEnvBool("REPORTS_ENABLED", c.Reports.Enabled)
	c.Postgres = *GetConfig()

	c.Yandex.Campaigns = nil
	for _, name := range []string{"FBS", "DBS"} {
		campaign, ok, err := campaignFromEnv(name)
		if err != nil {
			return err
		}
		if ok {
			c.Yandex.Campaigns = append(c.Yandex.Campaigns, campaign)
		}
	}
	return nil
}

func campaignFromEnv(name string) (CampaignConfig, bool, error) {
	campaignID := getEnv(name+"_ID", "")
	if campaignID == "" {
		return CampaignConfig{}, false, nil
	}

	rawWarehouse := getEnv("WAREHOUSE_"+name+"_ID", "")
	if rawWarehouse == "" {
		return CampaignConfig{}, false, fmt.Errorf("WAREHOUSE_%s_ID is required when %s_ID is set", name, name)
	}
	warehouseID, err := strconv.ParseInt(rawWarehouse, 10, 64)
	if err != nil {
		return CampaignConfig{}, false, fmt.Errorf("WAREHOUSE_%s_ID: %w", name, err)
	}

	return CampaignConfig{Name: name, CampaignID: campaignID, WarehouseID: warehouseID}, true, nil
}
