package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/apextrack/go-admin-console/resources"
	"github.com/apextrack/go-admin-console/session"
	"github.com/apextrack/go-admin-console/smartlink"
)

var (
	genOffer       string
	genDomain      string
	genRedirect    string
	genType        string
	genMode        string
	genShortener   string
	genMetaTitle   string
	genMetaDesc    string
	genOGImagePath string
	genFaviconPath string
	genShowOptions bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a smartlink",
	Long: `Generate a tracking URL. With --mode ` + string(smartlink.ModeDoubleShortener) + `
(the double shortener) a --shortener choice is required and the result
includes the intermediate shortened URL as well as the final one.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ok, err := console.admit(cmd, viewGenerator)
		if err != nil || !ok {
			return err
		}
		if genShowOptions {
			return showGeneratorOptions(cmd)
		}

		request := smartlink.Request{
			OfferID:         genOffer,
			SharedDomain:    genDomain,
			RedirectType:    genRedirect,
			Type:            genType,
			Mode:            smartlink.GenerationMode(genMode),
			ShortenerChoice: genShortener,
			MetaTitle:       genMetaTitle,
			MetaDescription: genMetaDesc,
		}
		if request.OGImage, err = loadAsset(genOGImagePath); err != nil {
			return err
		}
		if request.Favicon, err = loadAsset(genFaviconPath); err != nil {
			return err
		}

		workflow, err := smartlink.NewWorkflow(console.generator)
		if err != nil {
			return err
		}
		result, err := workflow.Submit(cmd.Context(), request)
		if err != nil {
			return err
		}

		color.Green("Smartlink generated")
		fmt.Printf("Final URL: %s\n", result.FinalSharedURL)
		if result.IntermediateShortenedURL != "" {
			fmt.Printf("After first shortening: %s\n", result.IntermediateShortenedURL)
		}
		return nil
	},
}

// showGeneratorOptions prints the server-provided form choices. The
// metadata and the caller's profile are independent fetches, so they run
// concurrently.
func showGeneratorOptions(cmd *cobra.Command) error {
	var (
		data *resources.GeneratorData
		user *session.User
	)

	group, ctx := errgroup.WithContext(cmd.Context())
	group.Go(func() (err error) {
		data, err = console.generator.Data(ctx)
		return err
	})
	group.Go(func() (err error) {
		user, err = console.profile.Get(ctx)
		return err
	})
	if err := group.Wait(); err != nil {
		return err
	}

	fmt.Printf("Generating as %s (%s)\n\n", user.Name, user.Role)
	renderTable([]string{"Setting", "Choices"}, [][]string{
		{"--domain", strings.Join(data.Domains, ", ")},
		{"--redirect", strings.Join(data.RedirectTypes, ", ")},
		{"--type", strings.Join(data.Types, ", ")},
		{"--mode", strings.Join(data.GenerationModes, ", ")},
		{"--shortener", strings.Join(data.ShortenerChoices, ", ")},
	})

	if len(data.Offers) > 0 {
		fmt.Println("\nOffers")
		rows := make([][]string, 0, len(data.Offers))
		for _, offer := range data.Offers {
			rows = append(rows, []string{offer.ID, offer.Name, colorStatus(offer.Status)})
		}
		renderTable([]string{"ID", "Name", "Status"}, rows)
	}
	return nil
}

func loadAsset(path string) (*smartlink.Asset, error) {
	if path == "" {
		return nil, nil
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read asset %s: %w", path, err)
	}
	return &smartlink.Asset{FileName: filepath.Base(path), Content: content}, nil
}

func init() {
	generateCmd.Flags().StringVar(&genOffer, "offer", "", "offer id (optional)")
	generateCmd.Flags().StringVar(&genDomain, "domain", "", "shared domain")
	generateCmd.Flags().StringVar(&genRedirect, "redirect", "", "redirect type, e.g. 301 or 302")
	generateCmd.Flags().StringVar(&genType, "type", "", "delivery type: render or direct redirect")
	generateCmd.Flags().StringVar(&genMode, "mode", "", "generation mode")
	generateCmd.Flags().StringVar(&genShortener, "shortener", "", "shortener choice (double mode only)")
	generateCmd.Flags().StringVar(&genMetaTitle, "meta-title", "", "meta title override")
	generateCmd.Flags().StringVar(&genMetaDesc, "meta-description", "", "meta description override")
	generateCmd.Flags().StringVar(&genOGImagePath, "og-image", "", "path to an Open Graph image")
	generateCmd.Flags().StringVar(&genFaviconPath, "favicon", "", "path to a favicon")
	generateCmd.Flags().BoolVar(&genShowOptions, "show-options", false, "list the available form choices")
	rootCmd.AddCommand(generateCmd)
}
