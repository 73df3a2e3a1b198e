package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"aidforpaws/internal/domain"
	"aidforpaws/internal/service"
)

type seedFile struct {
	Animals []domain.AnimalInput `yaml:"animals"`
}

func seedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load animals from a YAML file",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, _ := cmd.Flags().GetString("file")
			f, err := os.Open(path)
			if err != nil {
				return err
			}
			defer f.Close()

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			stores, err := openStores(ctx, cmd)
			if err != nil {
				return err
			}
			defer stores.Close(context.Background())

			return runSeed(ctx, service.NewAnimalService(stores.Animals), f, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringP("file", "f", "animals.yaml", "seed file")

	return cmd
}

// runSeed validates every entry before writing any of them.
func runSeed(ctx context.Context, animals *service.AnimalService, r io.Reader, out io.Writer) error {
	var file seedFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil {
		return fmt.Errorf("parse seed file: %w", err)
	}
	if len(file.Animals) == 0 {
		return fmt.Errorf("seed file has no animals")
	}
	for i, in := range file.Animals {
		if err := domain.Validate(in); err != nil {
			return fmt.Errorf("animal %d (%s): %w", i, in.Name, err)
		}
	}
	for _, in := range file.Animals {
		animal, err := animals.Create(ctx, in)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "created %s %s\n", animal.ID, animal.Name)
	}
	return nil
}
