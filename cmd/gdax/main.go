package main

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/gdaxclient/gdax/pkg/gdax"
)

var rootCmd = &cobra.Command{
	Use:   "gdax",
	Short: "coinbase exchange command line client",

	// SilenceUsage is an option to silence usage when an error occurs.
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().String("url", gdax.ProductionAPIURL, "api base url")

	rootCmd.AddCommand(accountsCmd)
	rootCmd.AddCommand(productsCmd)
	rootCmd.AddCommand(tickerCmd)
	rootCmd.AddCommand(ordersCmd)
	rootCmd.AddCommand(cancelCmd)
	rootCmd.AddCommand(timeCmd)
}

func newClient(cmd *cobra.Command) (*gdax.RestClient, error) {
	baseURL, err := cmd.Flags().GetString("url")
	if err != nil {
		return nil, err
	}

	client := gdax.NewRestClient(baseURL)

	key := os.Getenv("GDAX_API_KEY")
	secret := os.Getenv("GDAX_API_SECRET")
	passphrase := os.Getenv("GDAX_API_PASSPHRASE")
	if len(key) > 0 {
		client.Auth(key, secret, passphrase)
	}
	return client, nil
}

var accountsCmd = &cobra.Command{
	Use:          "accounts",
	Short:        "List the trading accounts of the authenticated profile",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient(cmd)
		if err != nil {
			return err
		}

		accounts, err := client.AccountService.GetAccounts(context.Background())
		if err != nil {
			return err
		}

		for _, account := range accounts {
			fmt.Printf("%s %s: balance=%s hold=%s available=%s\n",
				account.ID, account.Currency, account.Balance, account.Hold, account.Available)
		}
		return nil
	},
}

var productsCmd = &cobra.Command{
	Use:          "products",
	Short:        "List the products available for trading",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient(cmd)
		if err != nil {
			return err
		}

		products, err := client.PublicService.GetProducts(context.Background())
		if err != nil {
			return err
		}

		for _, product := range products {
			fmt.Printf("%s (%s/%s) status=%s\n",
				product.ID, product.BaseCurrency, product.QuoteCurrency, product.Status)
		}
		return nil
	},
}

var tickerCmd = &cobra.Command{
	Use:          "ticker PRODUCT",
	Short:        "Show the last trade snapshot of a product",
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient(cmd)
		if err != nil {
			return err
		}

		tick, err := client.PublicService.GetProductTicker(context.Background(), args[0])
		if err != nil {
			return err
		}

		fmt.Printf("price=%s size=%s bid=%s ask=%s volume=%s\n",
			tick.Price, tick.Size, tick.Bid, tick.Ask, tick.Volume)
		return nil
	},
}

var ordersCmd = &cobra.Command{
	Use:          "orders",
	Short:        "List orders in every non-terminal status",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient(cmd)
		if err != nil {
			return err
		}

		orders, err := client.OrderService.GetOrders(context.Background())
		if err != nil {
			return err
		}

		for _, order := range orders {
			fmt.Printf("%s %s %s %s size=%s price=%s status=%s\n",
				order.ID, order.ProductID, order.Side, order.CreatedAt, order.Size, order.Price, order.Status)
		}
		return nil
	},
}

var cancelCmd = &cobra.Command{
	Use:          "cancel [ORDER_ID]",
	Short:        "Cancel one order by id, or all open orders when no id is given",
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient(cmd)
		if err != nil {
			return err
		}

		ctx := context.Background()
		if len(args) == 1 {
			orderID, err := uuid.Parse(args[0])
			if err != nil {
				return err
			}

			cancelled, err := client.OrderService.CancelOrder(ctx, orderID)
			if err != nil {
				return err
			}
			fmt.Printf("cancelled %s\n", cancelled)
			return nil
		}

		cancelled, err := client.OrderService.CancelAllOrders(ctx, "")
		if err != nil {
			return err
		}
		for _, id := range cancelled {
			fmt.Printf("cancelled %s\n", id)
		}
		return nil
	},
}

var timeCmd = &cobra.Command{
	Use:          "time",
	Short:        "Show the API server time",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient(cmd)
		if err != nil {
			return err
		}

		serverTime, err := client.PublicService.GetTime(context.Background())
		if err != nil {
			return err
		}

		fmt.Printf("iso=%s epoch=%f\n", serverTime.ISO, serverTime.Epoch)
		return nil
	},
}

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.WithError(err).Warn("failed to load .env")
	}

	if err := rootCmd.Execute(); err != nil {
		log.WithError(err).Fatal("command failed")
	}
}
