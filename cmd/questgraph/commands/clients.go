package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"questgraph/lib/configutil"
	"questgraph/lib/questdb"
	"questgraph/lib/restyutil"
	"questgraph/lib/scrapers/hiscores"
	"questgraph/lib/scrapers/wiki"
)

type Config struct {
	WikiBaseUrl     string `json:"wiki_base_url"`
	HiscoresBaseUrl string `json:"hiscores_base_url"`
	UserAgent       string `json:"user_agent"`
	HttpDebugDir    string `json:"http_debug_dir"`
}

// readConfig loads config.json5 when there is one. Running without a
// config is normal, everything has a default.
func readConfig() Config {
	cfg, err := configutil.ReadConfig[Config]("config.json5")
	if errors.Is(err, os.ErrNotExist) {
		return Config{}
	}
	if err != nil {
		fatal("failed to read config", err)
	}
	return cfg
}

func debugOutput(cfg Config, name string) restyutil.InstrumentOutput {
	output, err := restyutil.NewFilesystemOutput(filepath.Join(cfg.HttpDebugDir, name))
	if err != nil {
		fatal("failed to create http debug directory", err)
	}
	return output
}

func newWikiClient(cfg Config) *wiki.Client {
	if *verbose && cfg.HttpDebugDir != "" {
		wiki.SetRestyInstrumentOutput(debugOutput(cfg, "wiki"))
	}

	client, err := wiki.NewClient(wiki.ClientOptions{
		BaseUrl:   cfg.WikiBaseUrl,
		UserAgent: cfg.UserAgent,
	})
	if err != nil {
		fatal("failed to initialize wiki client", err)
	}
	return client
}

func newHiscoresClient(cfg Config) *hiscores.Client {
	if *verbose && cfg.HttpDebugDir != "" {
		hiscores.SetRestyInstrumentOutput(debugOutput(cfg, "hiscores"))
	}

	return hiscores.NewClient(hiscores.ClientOptions{
		BaseUrl: cfg.HiscoresBaseUrl,
	})
}

// loadQuestDatabase reads the --quest-data dump when given one and
// scrapes the wiki's quest list otherwise.
func loadQuestDatabase(ctx context.Context, client *wiki.Client) *questdb.DB {
	if *questData != "" {
		db, err := questdb.FromFile(*questData)
		if err != nil {
			fatal("failed to read quest database", err)
		}
		slog.Debug("loaded quest database", "path", *questData, "quests", db.Len())
		return db
	}

	quests, err := client.QuestList(ctx)
	if err != nil {
		fatal("failed to scrape the quest list", err)
	}
	slog.Debug("scraped quest list", "quests", len(quests))
	return questdb.New(quests)
}

// requireQuest resolves a title against the database and exits with
// nearest-title suggestions when it isn't there.
func requireQuest(db *questdb.DB, title string) questdb.Quest {
	quest, err := db.Get(title)
	if errors.Is(err, questdb.ErrUnknownQuest) {
		slog.Error("unknown quest", "title", title)
		for _, suggestion := range db.Suggest(title, 3) {
			fmt.Fprintf(os.Stderr, "did you mean %q?\n", suggestion)
		}
		os.Exit(1)
	}
	if err != nil {
		fatal("failed to look up quest", err)
	}
	return quest
}
