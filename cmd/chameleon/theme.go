package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/pastelpanda/chameleon/internal/themeapi"
)

var themeServerURL string

var themeCmd = &cobra.Command{
	Use:   "theme",
	Short: "Inspect and manage the active theme",
	Long:  "Talk to a running chameleon server to show, reset, or switch themes",
}

var themeShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the active theme record",
	Run: func(cmd *cobra.Command, args []string) {
		client := themeapi.New(themeServerURL)
		record, err := client.Current(context.Background())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintf(w, "organization:\t%s\n", record.OrganizationName)
		if record.Metadata.ThemeName != "" {
			fmt.Fprintf(w, "theme:\t%s\n", record.Metadata.ThemeName)
		}
		fmt.Fprintf(w, "primary:\t%s\n", record.Colors.Primary)
		fmt.Fprintf(w, "secondary:\t%s\n", record.Colors.Secondary)
		fmt.Fprintf(w, "accent:\t%s\n", record.Colors.Accent)
		fmt.Fprintf(w, "background:\t%s\n", record.Colors.Background)
		fmt.Fprintf(w, "text:\t%s\n", record.Colors.TextPrimary)
		fmt.Fprintf(w, "dark mode:\t%t\n", record.DarkMode.Enabled)
		w.Flush()
	},
}

var themePresetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List available theme presets",
	Run: func(cmd *cobra.Command, args []string) {
		client := themeapi.New(themeServerURL)
		presets, err := client.ListPresets(context.Background())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		for _, p := range presets {
			fmt.Fprintf(w, "%s\t%s\n", p.Name, p.Description)
		}
		w.Flush()
	},
}

var themePresetCmd = &cobra.Command{
	Use:   "preset <name>",
	Short: "Apply a named theme preset",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		client := themeapi.New(themeServerURL)
		record, err := client.ApplyPreset(context.Background(), args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("Applied preset %q (primary %s)\n", record.Metadata.ThemeName, record.Colors.Primary)
	},
}

var themeResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset the theme to factory defaults",
	Run: func(cmd *cobra.Command, args []string) {
		client := themeapi.New(themeServerURL)
		record, err := client.Reset(context.Background())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("Theme reset to defaults (primary %s)\n", record.Colors.Primary)
	},
}

func init() {
	themeCmd.PersistentFlags().StringVar(&themeServerURL, "server", "http://localhost:8080", "chameleon server base URL")
	themeCmd.AddCommand(themeShowCmd)
	themeCmd.AddCommand(themePresetsCmd)
	themeCmd.AddCommand(themePresetCmd)
	themeCmd.AddCommand(themeResetCmd)
	rootCmd.AddCommand(themeCmd)
}
