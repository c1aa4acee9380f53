package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jonathan/resume-tailor/internal/cache"
	"github.com/jonathan/resume-tailor/internal/db"
	"github.com/jonathan/resume-tailor/internal/portfolio"
	"github.com/jonathan/resume-tailor/internal/types"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var importPortfolioCmd = &cobra.Command{
	Use:   "import-portfolio",
	Short: "Load a skill catalog and portfolio into the database",
	Long:  "Upserts catalog skills and inserts a user's portfolio items, legacy projects and confirmed skills from JSON files.",
	RunE:  runImportPortfolio,
}

var (
	importDatabaseURL string
	importUserID      string
	importCatalog     string
	importItems       string
	importProjects    string
	importConfirmed   string
)

func init() {
	importPortfolioCmd.Flags().StringVar(&importDatabaseURL, "db-url", "", "Database URL (defaults to DATABASE_URL)")
	importPortfolioCmd.Flags().StringVarP(&importUserID, "user-id", "u", "", "Owner of the imported items")
	importPortfolioCmd.Flags().StringVarP(&importCatalog, "catalog", "c", "", "Path to skill catalog JSON file")
	importPortfolioCmd.Flags().StringVarP(&importItems, "items", "i", "", "Path to portfolio items JSON file")
	importPortfolioCmd.Flags().StringVarP(&importProjects, "projects", "p", "", "Path to legacy projects JSON file")
	importPortfolioCmd.Flags().StringVar(&importConfirmed, "confirmed", "", "Comma-separated confirmed skill ids")

	rootCmd.AddCommand(importPortfolioCmd)
}

// portfolioWriter is the subset of *db.DB used by import-portfolio
type portfolioWriter interface {
	UpsertSkill(ctx context.Context, s types.CatalogSkill) error
	CreatePortfolioItem(ctx context.Context, item *types.PortfolioItem) error
	CreateLegacyProject(ctx context.Context, p *types.LegacyProject) error
	SaveConfirmedSkills(ctx context.Context, set *types.ConfirmedSkillSet) error
}

type importSummary struct {
	Skills    int
	Items     int
	Projects  int
	Confirmed int
}

func runImportPortfolio(cmd *cobra.Command, _ []string) error {
	needsUser := importItems != "" || importProjects != "" || importConfirmed != ""
	if importCatalog == "" && !needsUser {
		return fmt.Errorf("nothing to import: provide --catalog, --items, --projects or --confirmed")
	}
	if needsUser && importUserID == "" {
		return fmt.Errorf("--user-id is required when importing items, projects or confirmed skills")
	}

	databaseURL := importDatabaseURL
	if databaseURL == "" {
		databaseURL = os.Getenv("DATABASE_URL")
	}
	if databaseURL == "" {
		return fmt.Errorf("--db-url or DATABASE_URL is required")
	}

	ctx := context.Background()
	database, err := db.Connect(ctx, databaseURL)
	if err != nil {
		return err
	}
	defer database.Close()
	if err := database.Migrate(ctx); err != nil {
		return err
	}

	summary, err := importPortfolio(ctx, database)
	if err != nil {
		return err
	}

	if summary.Skills > 0 {
		invalidateCatalogCache(ctx, database)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Imported %d skills, %d items, %d projects, %d confirmed skills\n",
		summary.Skills, summary.Items, summary.Projects, summary.Confirmed)
	return nil
}

func importPortfolio(ctx context.Context, w portfolioWriter) (importSummary, error) {
	var summary importSummary

	if importCatalog != "" {
		catalog, err := portfolio.LoadCatalog(importCatalog)
		if err != nil {
			return summary, err
		}
		for _, s := range catalog {
			if err := w.UpsertSkill(ctx, s); err != nil {
				return summary, err
			}
			summary.Skills++
		}
	}

	if importItems != "" {
		items, err := portfolio.LoadItems(importItems)
		if err != nil {
			return summary, err
		}
		for i := range items {
			items[i].UserID = importUserID
			if err := w.CreatePortfolioItem(ctx, &items[i]); err != nil {
				return summary, err
			}
			summary.Items++
		}
	}

	if importProjects != "" {
		projects, err := portfolio.LoadProjects(importProjects)
		if err != nil {
			return summary, err
		}
		for i := range projects {
			projects[i].UserID = importUserID
			if err := w.CreateLegacyProject(ctx, &projects[i]); err != nil {
				return summary, err
			}
			summary.Projects++
		}
	}

	if ids := portfolio.ParseIDList(importConfirmed); len(ids) > 0 {
		set := &types.ConfirmedSkillSet{UserID: importUserID, SkillIDs: ids}
		if err := w.SaveConfirmedSkills(ctx, set); err != nil {
			return summary, err
		}
		summary.Confirmed = len(ids)
	}
	return summary, nil
}

// invalidateCatalogCache drops the cached catalog so running servers pick up
// new skills. Failures only delay that until the TTL expires.
func invalidateCatalogCache(ctx context.Context, source cache.CatalogSource) {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		return
	}
	log := cliLogger()
	client, err := cache.NewRedis(redisURL)
	if err != nil {
		log.Warn("skipping catalog cache invalidation", zap.Error(err))
		return
	}
	defer func() { _ = client.Close() }()

	if err := cache.NewCachedCatalog(source, client.Client, cache.DefaultCatalogTTL, log).Invalidate(ctx); err != nil {
		log.Warn("failed to invalidate catalog cache", zap.Error(err))
	}
}
