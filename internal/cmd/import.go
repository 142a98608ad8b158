package cmd

import (
	"fmt"
	"os"
	"time"

	"eshop-fixtures/internal/db"
	"eshop-fixtures/internal/importer"
	catalogrepo "eshop-fixtures/internal/repository/catalog"
	"github.com/spf13/cobra"
)

func newImportCommand(a *app) *cobra.Command {
	var filePath string
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import catalog items from a CSV file into DB_DSN",
		Long: `Read catalog items from CSV with the header
id,name,description,price,picture,brand_id,type_id
and upsert each one. id, name, price, brand_id and type_id are required;
brand and type ids must name existing rows.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			f, err := os.Open(filePath)
			if err != nil {
				return fmt.Errorf("open file: %w", err)
			}
			defer f.Close()

			pool, err := db.Connect(ctx, a.cfg.DBConnString)
			if err != nil {
				return fmt.Errorf("connect db: %w", err)
			}
			defer pool.Close()

			imp := importer.NewCSVImporter(f, catalogrepo.NewPostgres(pool, a.log.Named("catalog")))

			start := time.Now()
			count, err := imp.Run(ctx)
			if err != nil {
				return fmt.Errorf("import failed: %w", err)
			}
			a.log.Info("catalog items imported", "count", count, "file", filePath, "took", time.Since(start).Truncate(time.Millisecond))
			return nil
		},
	}
	cmd.Flags().StringVar(&filePath, "file", "", "path to catalog CSV")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}
