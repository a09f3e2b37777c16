package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"imobhub_backend/internal/model"
	"imobhub_backend/internal/service"
	"imobhub_backend/pkg/config"
	"imobhub_backend/pkg/kvstore"
	"imobhub_backend/pkg/seed"
)

// openServices is replaced in tests.
var openServices = func() (*service.Services, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	backend, err := kvstore.Open(cfg.Store)
	if err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}

	return service.New(kvstore.New(backend), service.Credentials{
		Email:    cfg.Admin.Email,
		Password: cfg.Admin.Password,
	})
}

func seedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Write the default user, settings and cities when missing",
		RunE: func(cmd *cobra.Command, args []string) error {
			services, err := openServices()
			if err != nil {
				return err
			}

			seed.InitializeDefaultData(services.Store)
			fmt.Fprintln(cmd.OutOrStdout(), "Default data initialized")
			return nil
		},
	}
}

func propertiesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "properties",
		Short: "List properties, optionally filtered",
		RunE: func(cmd *cobra.Command, args []string) error {
			purpose, _ := cmd.Flags().GetString("purpose")
			propertyType, _ := cmd.Flags().GetString("type")
			city, _ := cmd.Flags().GetString("city")
			featured, _ := cmd.Flags().GetBool("featured")

			services, err := openServices()
			if err != nil {
				return err
			}

			var properties []model.Property
			if featured {
				properties = services.Properties.GetFeatured()
			} else {
				properties = services.Properties.Search(model.SearchFilters{
					Purpose: model.PropertyPurpose(purpose),
					Type:    model.PropertyType(propertyType),
					City:    city,
				})
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tTITLE\tCITY\tPURPOSE\tTYPE\tPRICE\tSTATUS")
			for _, p := range properties {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%.2f\t%s\n", p.ID, p.Title, p.City, p.Purpose, p.Type, p.Price, p.Status)
			}
			return w.Flush()
		},
	}

	cmd.Flags().String("purpose", "", "buy, rent or season")
	cmd.Flags().String("type", "", "property type")
	cmd.Flags().String("city", "", "city name or part of it")
	cmd.Flags().Bool("featured", false, "only featured properties")

	return cmd
}

func citiesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cities",
		Short: "List cities with their property counts",
		RunE: func(cmd *cobra.Command, args []string) error {
			services, err := openServices()
			if err != nil {
				return err
			}
			printCities(cmd.OutOrStdout(), services.Cities.GetAll())
			return nil
		},
	}
}

func settingsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "settings",
		Short: "Print the site settings as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			services, err := openServices()
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(services.Settings.Get())
		},
	}
}

func recountCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "recount",
		Short: "Recompute every city's property count",
		RunE: func(cmd *cobra.Command, args []string) error {
			services, err := openServices()
			if err != nil {
				return err
			}

			services.RecountCities()
			printCities(cmd.OutOrStdout(), services.Cities.GetAll())
			return nil
		},
	}
}

func printCities(out io.Writer, cities []model.City) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tSTATE\tPROPERTIES")
	for _, c := range cities {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\n", c.ID, c.Name, c.State, c.PropertiesCount)
	}
	w.Flush()
}
