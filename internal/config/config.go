package config

import (
	"math/big"
	"os"
	"strconv"
	"strings"

	"github.com/ZilDuck/zilliqa-nft-marketplace/internal/log"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

type Config struct {
	Env     string
	Network string
	Index   string
	Debug   bool

	Port    string
	AmqpUri string

	Marketplace   MarketplaceConfig
	Zilliqa       ZilliqaConfig
	ElasticSearch ElasticSearchConfig
}

type MarketplaceConfig struct {
	Owner   string
	Holding string
	Dev     string
	Charity string
	Team    string

	DevFeeBps     uint64
	CharityFeeBps uint64
	TeamFeeBps    uint64
}

type ZilliqaConfig struct {
	Url        string
	Debug      bool
	Timeout    int
	ChainId    int
	PrivateKey string
	GasPrice   string
}

type ElasticSearchConfig struct {
	Hosts            []string
	Sniff            bool
	HealthCheck      bool
	Debug            bool
	Username         string
	Password         string
	MappingDir       string
	BulkPersistCount int
	Refresh          string
}

func Init() {
	err := godotenv.Load(".env")
	if err != nil {
		zap.L().With(zap.Error(err)).Fatal("Unable to init config")
	}

	initLogger()
}
func initLogger() {
	log.NewLogger(Get().Debug)
}

func Get() *Config {
	return &Config{
		Env:     getString("ENV", ""),
		Network: getString("NETWORK", "zilliqa"),
		Index:   getString("INDEX_NAME", "marketplace"),
		Debug:   getBool("DEBUG", false),
		Port:    getString("PORT", "8080"),
		AmqpUri: getString("AMQP_URI", ""),
		Marketplace: MarketplaceConfig{
			Owner:         getString("MARKETPLACE_OWNER", ""),
			Holding:       getString("HOLDING_ADDRESS", ""),
			Dev:           getString("DEV_ADDRESS", ""),
			Charity:       getString("CHARITY_ADDRESS", ""),
			Team:          getString("TEAM_ADDRESS", ""),
			DevFeeBps:     getUint64("DEV_FEE_BPS", 200),
			CharityFeeBps: getUint64("CHARITY_FEE_BPS", 100),
			TeamFeeBps:    getUint64("TEAM_FEE_BPS", 200),
		},
		Zilliqa: ZilliqaConfig{
			Url:        getString("ZILLIQA_URL", ""),
			Timeout:    getInt("ZILLIQA_TIMEOUT", 30),
			Debug:      getBool("ZILLIQA_DEBUG", false),
			ChainId:    getInt("ZILLIQA_CHAIN_ID", 1),
			PrivateKey: getString("ZILLIQA_PRIVATE_KEY", ""),
			GasPrice:   getString("ZILLIQA_GAS_PRICE", "2000000000"),
		},
		ElasticSearch: ElasticSearchConfig{
			Hosts:            getSlice("ELASTIC_SEARCH_HOSTS", make([]string, 0), ","),
			Sniff:            getBool("ELASTIC_SEARCH_SNIFF", true),
			HealthCheck:      getBool("ELASTIC_SEARCH_HEALTH_CHECK", true),
			Debug:            getBool("ELASTIC_SEARCH_DEBUG", false),
			Username:         getString("ELASTIC_SEARCH_USERNAME", ""),
			Password:         getString("ELASTIC_SEARCH_PASSWORD", ""),
			MappingDir:       getString("ELASTIC_SEARCH_MAPPING_DIR", "/data/mappings"),
			BulkPersistCount: getInt("ELASTIC_SEARCH_BULK_PERSIST_COUNT", 300),
			Refresh:          getString("ELASTIC_SEARCH_REFRESH", "wait_for"),
		},
	}
}

func getString(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}

	return defaultValue
}

func getInt(key string, defaultValue int) int {
	valStr := getString(key, "")
	val, _, err := big.ParseFloat(valStr, 10, 0, big.ToNearestEven)
	if err != nil {
		return defaultValue
	}

	intVal, _ := val.Int64()
	return int(intVal)
}

func getUint64(key string, defaultValue uint) uint64 {
	return uint64(getInt(key, int(defaultValue)))
}

func getBool(key string, defaultValue bool) bool {
	valStr := getString(key, "")
	if val, err := strconv.ParseBool(valStr); err == nil {
		return val
	}

	return defaultValue
}

func getSlice(key string, defaultVal []string, sep string) []string {
	valStr := getString(key, "")
	if valStr == "" {
		return defaultVal
	}

	return strings.Split(valStr, sep)
}
