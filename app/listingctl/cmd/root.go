package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/anft-xyz/goapi/base/ctx"
	"github.com/anft-xyz/goapi/base/env"
	"github.com/anft-xyz/goapi/base/log"
	"github.com/anft-xyz/goapi/domain"
	"github.com/anft-xyz/goapi/domain/listing"
	"github.com/anft-xyz/goapi/service/anft"
	"github.com/anft-xyz/goapi/service/cache"
	"github.com/anft-xyz/goapi/service/cache/provider/primitive"
	"github.com/anft-xyz/goapi/service/chain"
	"github.com/anft-xyz/goapi/service/chain/contract"
	"github.com/anft-xyz/goapi/service/notify"
	listing_usecase "github.com/anft-xyz/goapi/stores/listing/usecase"
)

var (
	configPath string
	asJson     bool

	// set by initializeApp, or by tests before Execute
	uc  listing.UseCase
	loc = time.UTC
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "listingctl",
	Short: "Query ANFT listings and their on-chain state",
	Long: `listingctl reads listings from the ANFT listing api and enriches them with the
listing contracts, the same way the api server does.

Examples:
  listingctl list --province 79 --fee-range LOW
  listingctl get 42
  listingctl options 42 --stakeholder 0x939ae6A4C8dfDBB1f7085189574F0A938013952A
  listingctl estimate 42 --amount 1.5`,
	SilenceUsage:      true,
	PersistentPreRunE: initializeApp,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	defer log.Sync()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", env.ConfigPath(), "yaml config file")
	rootCmd.PersistentFlags().BoolVar(&asJson, "json", false, "print raw json")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(optionsCmd)
	rootCmd.AddCommand(estimateCmd)
}

// initializeApp builds the listing use case from the config. Mongo and redis are not needed
// by the cli, single listings are cached in process only.
func initializeApp(cmd *cobra.Command, args []string) error {
	if uc != nil {
		return nil
	}

	viper.SetConfigType("yaml")
	viper.SetConfigFile(configPath)
	if err := viper.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read config: %w", err)
	}
	log.SetDebug(viper.GetBool("debug"))

	if tz := viper.GetString("timezone"); tz != "" {
		l, err := time.LoadLocation(tz)
		if err != nil {
			return fmt.Errorf("invalid timezone %q: %w", tz, err)
		}
		loc = l
	}

	c := ctx.Background()
	repo := anft.NewClient(&anft.ClientCfg{
		HttpClient: http.Client{},
		BaseUrl:    viper.GetString("anft.baseUrl"),
		Timeout:    viper.GetDuration("anft.timeout"),
		RateLimit:  viper.GetFloat64("anft.rateLimit"),
		Cache: cache.New(cache.ServiceConfig{
			Ttl:   viper.GetDuration("anft.cacheTtl"),
			Pfx:   "listing",
			Cache: primitive.NewPrimitive("cli", 8),
		}),
	})

	var reader listing.ContractReader
	chainId := domain.ChainId(viper.GetInt32("network.chainId"))
	chainService, err := chain.NewClient(c, &chain.ClientCfg{
		RpcUrls:            map[int32]string{int32(chainId): viper.GetString("network.rpcUrl")},
		MaxConcurrentCalls: viper.GetInt("network.maxConcurrentCalls"),
	})
	if err != nil {
		c.WithField("err", err).Warn("chain unavailable, on-chain fields are skipped")
	} else {
		reader = contract.NewListing(chainService, chainId)
	}

	uc = listing_usecase.NewUsecase(&listing_usecase.UsecaseCfg{
		Repo:     repo,
		Reader:   reader,
		Notifier: notify.NewLogNotifier(),
		Workers:  viper.GetInt("network.maxConcurrentCalls"),
	})
	return nil
}

func printJson(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func parseAddress(s string) (domain.Address, error) {
	if s == "" {
		return "", nil
	}
	return domain.ParseAddress(s)
}
