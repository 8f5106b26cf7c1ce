package main

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/apextrack/go-admin-console/internal/utils"
	"github.com/apextrack/go-admin-console/resources"
)

var offersCmd = &cobra.Command{
	Use:   "offers",
	Short: "Manage offers",
}

var offersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List offers",
	RunE: func(cmd *cobra.Command, args []string) error {
		ok, err := console.admit(cmd, viewOffers)
		if err != nil || !ok {
			return err
		}
		offers, err := console.offers.List(cmd.Context())
		if err != nil {
			return err
		}
		rows := make([][]string, 0, len(offers))
		for _, offer := range offers {
			rows = append(rows, []string{
				offer.ID, offer.Name, offer.URL, colorStatus(offer.Status),
				offer.Country, offer.Device, strconv.FormatBool(offer.CanShowToProxy),
			})
		}
		renderTable([]string{"ID", "Name", "URL", "Status", "Country", "Device", "Proxy OK"}, rows)
		return nil
	},
}

var offersGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one offer",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ok, err := console.admit(cmd, viewOffers)
		if err != nil || !ok {
			return err
		}
		offer, err := console.offers.Get(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		renderTable(
			[]string{"ID", "Name", "URL", "Status", "Country", "Device", "Proxy OK"},
			[][]string{{
				offer.ID, offer.Name, offer.URL, colorStatus(offer.Status),
				offer.Country, offer.Device, strconv.FormatBool(offer.CanShowToProxy),
			}},
		)
		return nil
	},
}

var (
	offerName    string
	offerURL     string
	offerStatus  string
	offerCountry string
	offerDevice  string
	offerProxy   bool
)

func offerInputFromFlags(cmd *cobra.Command) resources.OfferInput {
	var input resources.OfferInput
	if cmd.Flags().Changed("name") {
		input.Name = utils.Ptr(offerName)
	}
	if cmd.Flags().Changed("url") {
		input.URL = utils.Ptr(offerURL)
	}
	if cmd.Flags().Changed("status") {
		input.Status = utils.Ptr(offerStatus)
	}
	if cmd.Flags().Changed("country") {
		input.Country = utils.Ptr(offerCountry)
	}
	if cmd.Flags().Changed("device") {
		input.Device = utils.Ptr(offerDevice)
	}
	if cmd.Flags().Changed("allow-proxy") {
		input.CanShowToProxy = utils.Ptr(offerProxy)
	}
	return input
}

var offersCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create an offer",
	RunE: func(cmd *cobra.Command, args []string) error {
		ok, err := console.admit(cmd, viewOffers)
		if err != nil || !ok {
			return err
		}
		ack, err := console.offers.Create(cmd.Context(), offerInputFromFlags(cmd))
		if err != nil {
			return err
		}
		fmt.Println(ack.Message)
		return nil
	},
}

var offersUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update an offer",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ok, err := console.admit(cmd, viewOffers)
		if err != nil || !ok {
			return err
		}
		ack, err := console.offers.Update(cmd.Context(), args[0], offerInputFromFlags(cmd))
		if err != nil {
			return err
		}
		fmt.Println(ack.Message)
		return nil
	},
}

var offersDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete an offer",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ok, err := console.admit(cmd, viewOffers)
		if err != nil || !ok {
			return err
		}
		ack, err := console.offers.Delete(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		fmt.Println(ack.Message)
		return nil
	},
}

func colorStatus(status string) string {
	switch status {
	case resources.OfferStatusActive:
		return color.GreenString(status)
	case resources.OfferStatusPaused:
		return color.YellowString(status)
	case resources.OfferStatusPending:
		return color.RedString(status)
	}
	return status
}

func init() {
	for _, cmd := range []*cobra.Command{offersCreateCmd, offersUpdateCmd} {
		cmd.Flags().StringVar(&offerName, "name", "", "offer name")
		cmd.Flags().StringVar(&offerURL, "url", "", "destination URL")
		cmd.Flags().StringVar(&offerStatus, "status", "", "active, paused or pending")
		cmd.Flags().StringVar(&offerCountry, "country", "", "target country")
		cmd.Flags().StringVar(&offerDevice, "device", "", "target device")
		cmd.Flags().BoolVar(&offerProxy, "allow-proxy", false, "show to proxy traffic")
	}
	offersCmd.AddCommand(offersListCmd, offersGetCmd, offersCreateCmd, offersUpdateCmd, offersDeleteCmd)
	rootCmd.AddCommand(offersCmd)
}
