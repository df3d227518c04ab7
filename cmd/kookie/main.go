package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/MKhiriev/kookie/internal/activity"
	"github.com/MKhiriev/kookie/internal/cli"
	"github.com/MKhiriev/kookie/internal/config"
	"github.com/MKhiriev/kookie/internal/crypto"
	"github.com/MKhiriev/kookie/internal/logger"
	"github.com/MKhiriev/kookie/internal/session"
	"github.com/MKhiriev/kookie/internal/store"
	"github.com/MKhiriev/kookie/internal/vault"
	"github.com/MKhiriev/kookie/migrations"
	"github.com/MKhiriev/kookie/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	ctx := context.Background()

	log := logger.NewCLILogger("kookie")

	cfg, err := config.GetCLIConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "kookie: %v\n", err)
		log.Fatal().Err(err).Msg("error getting configs")
	}

	engine := crypto.NewKeyEngine()
	vaultStore := store.NewVaultStore(log)

	fingerprint, err := session.MachineFingerprint()
	if err != nil {
		fmt.Fprintf(os.Stderr, "kookie: %v\n", err)
		log.Fatal().Err(err).Msg("error resolving machine fingerprint")
	}
	sessions := session.NewSessionCache(cfg.Session.Path, fingerprint, engine, log)

	recorder := newRecorder(ctx, cfg, log)

	manager := vault.NewVaultManager(cfg.Storage.VaultPath, vaultStore, engine, sessions, recorder, log)

	build := models.NewBuildInfo(buildVersion, buildDate, buildCommit)

	app := cli.New(manager, recorder, cfg, build, log)

	// Config flags were consumed by flag.Parse inside GetCLIConfig;
	// everything after them is the command line for cobra.
	err = app.Execute(ctx, flag.Args())

	// Zeroize the in-memory key before the process ends. The session
	// file stays, so the next invocation can unlock from the cache.
	manager.Close()

	if err != nil {
		os.Exit(1)
	}
}

// newRecorder opens the local activity database. The activity log is
// advisory: when it is disabled by configuration, or the database
// cannot be opened or migrated, the CLI proceeds with a recorder that
// keeps nothing rather than failing.
func newRecorder(ctx context.Context, cfg *config.CLIConfig, log *logger.Logger) activity.Recorder {
	if cfg.Storage.NoActivityLog {
		return activity.NewNopRecorder()
	}

	db, err := activity.NewActivityDB(ctx, cfg.Storage.ActivityDBPath, log)
	if err != nil {
		log.Err(err).Msg("activity database unavailable, proceeding without it")

		return activity.NewNopRecorder()
	}

	if err := migrations.Migrate(db); err != nil {
		log.Err(err).Msg("activity database migration failed, proceeding without it")
		db.Close()

		return activity.NewNopRecorder()
	}

	return activity.NewRecorder(db, log)
}
