package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/montanaflynn/stats"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/jiaming2012/top-options-contracts/src/eventmodels"
	"github.com/jiaming2012/top-options-contracts/src/eventservices"
	"github.com/jiaming2012/top-options-contracts/src/utils"
)

type RunArgs struct {
	Ticker eventmodels.StockSymbol
	Expiry eventmodels.ExpirationDate
	TopN   int
	GoEnv  string
}

var runCmd = &cobra.Command{
	Use:   "go run src/cmd/top_contracts/main.go --ticker SPY --top-n 10",
	Short: "Find top options contracts traded today, ranked by volume, open interest, and estimated premium paid",
	Run: func(cmd *cobra.Command, args []string) {
		goEnv, err := cmd.Flags().GetString("go-env")
		if err != nil {
			log.Fatalf("error getting go-env: %v", err)
		}

		ticker, err := cmd.Flags().GetString("ticker")
		if err != nil {
			log.Fatalf("error getting ticker: %v", err)
		}

		expiry, err := cmd.Flags().GetString("expiry")
		if err != nil {
			log.Fatalf("error getting expiry: %v", err)
		}

		topN, err := cmd.Flags().GetInt("top-n")
		if err != nil {
			log.Fatalf("error getting top-n: %v", err)
		}

		ranked, err := Run(RunArgs{
			Ticker: eventmodels.StockSymbol(strings.ToUpper(ticker)),
			Expiry: eventmodels.ExpirationDate(expiry),
			TopN:   topN,
			GoEnv:  goEnv,
		})

		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		if len(ranked) == 0 {
			fmt.Println("No option contracts returned.")
			return
		}

		fmt.Print(ranked.String())
	},
}

func Run(args RunArgs) (eventmodels.OptionRecords, error) {
	if err := utils.InitEnvironmentVariables(args.GoEnv); err != nil {
		log.Fatalf("error loading environment variables: %v", err)
	}

	baseURL := os.Getenv("OPTIONS_PROVIDER_BASE_URL")

	client := eventservices.NewYahooOptionsClient(baseURL)

	requestID := uuid.New()

	records, err := eventservices.FetchOptionsChain(requestID, client, args.Ticker, args.Expiry)
	if err != nil {
		return nil, err
	}

	ranked := eventservices.RankContracts(records, args.TopN)

	if len(ranked) > 0 {
		premiums := make([]float64, 0, len(ranked))
		for _, r := range ranked {
			premiums = append(premiums, r.PremiumPaid)
		}

		totalPremium, err := stats.Sum(premiums)
		if err != nil {
			return nil, fmt.Errorf("failed to calculate total premium: %v", err)
		}

		log.Infof("top %d contracts account for $%.2f in premium traded today", len(ranked), totalPremium)
	}

	return ranked, nil
}

func main() {
	runCmd.PersistentFlags().String("go-env", "development", "The go environment to run the command in.")
	runCmd.PersistentFlags().String("ticker", "", "The underlying ticker symbol, e.g. SPY.")
	runCmd.PersistentFlags().String("expiry", "", "Option expiry in YYYY-MM-DD. Defaults to the nearest available expiry.")
	runCmd.PersistentFlags().Int("top-n", 10, "The number of contracts to return.")

	runCmd.MarkPersistentFlagRequired("ticker")

	runCmd.Execute()
}
