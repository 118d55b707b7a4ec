package bootstrap

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/osse101/skillforge/internal/config"
	"github.com/osse101/skillforge/internal/progression"
	"github.com/osse101/skillforge/internal/reward"
)

// LoadCatalogs loads the graph skill trees and the reward trees. Each comes
// from the embedded defaults unless its config directory override is set.
func LoadCatalogs(cfg *config.Config) (*progression.Catalog, *reward.Catalog, error) {
	var (
		trees *progression.Catalog
		err   error
	)
	if cfg.TreeConfigDir != "" {
		trees, err = progression.NewTreeLoader().LoadCatalog(os.DirFS(cfg.TreeConfigDir), ".")
	} else {
		trees, err = progression.DefaultCatalog()
	}
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", ErrMsgFailedLoadTrees, err)
	}

	var rewards *reward.Catalog
	if cfg.RewardConfigDir != "" {
		rewards, err = reward.LoadCatalog(os.DirFS(cfg.RewardConfigDir), ".")
	} else {
		rewards, err = reward.DefaultCatalog()
	}
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", ErrMsgFailedLoadRewards, err)
	}

	slog.Info(LogMsgCatalogsLoaded,
		"trees", catalogSource(cfg.TreeConfigDir),
		"rewards", catalogSource(cfg.RewardConfigDir))
	return trees, rewards, nil
}

func catalogSource(dir string) string {
	if dir == "" {
		return CatalogSourceEmbedded
	}
	return fmt.Sprintf(CatalogSourceDirectoryFmt, dir)
}
