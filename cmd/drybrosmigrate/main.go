package main

import (
	"flag"
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/tech-karippilly/drybros-app-sub006/cmd/drybrosd/config"
	"github.com/tech-karippilly/drybros-app-sub006/storage/model"
)

func usage() {
	_, _ = fmt.Fprintf(os.Stderr, "drybrosmigrate: migrate legacy data to the GORM-based database\n")
	_, _ = fmt.Fprintf(os.Stderr, "\n")
	_, _ = fmt.Fprintf(os.Stderr, "Subcommands:\n")
	_, _ = fmt.Fprintf(os.Stderr, "  db       Import a legacy badger database\n")
	_, _ = fmt.Fprintf(os.Stderr, "\n")
	_, _ = fmt.Fprintf(os.Stderr, "Use 'drybrosmigrate <subcommand> -h' for help on a subcommand.\n")
}

func dbCmd(args []string) int {
	fs := flag.NewFlagSet("db", flag.ExitOnError)
	var (
		src        = fs.String("src", "", "Path to the legacy badger database directory")
		configFile = fs.String("config", "config.yaml", "The drybrosd config file; its storage section is the migration target")
		v          = fs.Bool("v", false, "Verbose logging")
	)
	fs.Usage = func() {
		_, _ = fmt.Fprintf(os.Stderr, "Usage: drybrosmigrate db -src <legacy_dir> [-config <config_file>]\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if *v {
		log.SetLevel(log.DebugLevel)
	}
	if *src == "" {
		_, _ = fmt.Fprintln(os.Stderr, "-src is required")
		fs.Usage()
		return 2
	}

	config.Load(*configFile)
	backs, err := config.LoadStorageBackends(config.Get().Storage, config.Get().API.Argon2idParams)
	if err != nil {
		log.WithError(err).Error("failed to load storage backends")
		return 1
	}

	legacy, err := NewBadgerStorage(*src)
	if err != nil {
		log.WithError(err).Error("failed to open legacy database")
		return 1
	}
	defer func() { _ = legacy.Close() }()

	if err = importAll(legacy, backs); err != nil {
		log.WithError(err).Error("migration failed")
		return 1
	}
	log.Info("migration completed")
	return 0
}

func importAll(legacy *BadgerStorage, backs model.Backends) error {
	franchises, drivers, staff, warnings := 0, 0, 0, 0

	err := legacy.SubStorage("franchises").ReadIterator(
		func(_, v []byte) error {
			var rec legacyFranchise
			if err := decode(v, &rec); err != nil {
				return err
			}
			f := &model.Franchise{
				ID:     rec.ID,
				Name:   rec.Name,
				Code:   rec.Code,
				City:   rec.City,
				Active: rec.Active,
			}
			if err := backs.Franchises.Create(f); err != nil {
				return err
			}
			franchises++
			return nil
		},
	)
	if err != nil {
		return err
	}

	err = legacy.SubStorage("drivers").ReadIterator(
		func(_, v []byte) error {
			var rec legacyDriver
			if err := decode(v, &rec); err != nil {
				return err
			}
			d := &model.Driver{
				ID:           rec.ID,
				FranchiseID:  rec.FranchiseID,
				Name:         rec.Name,
				Email:        rec.Email,
				Phone:        rec.Phone,
				License:      rec.License,
				Status:       model.DriverStatus(rec.Status),
				Blacklisted:  rec.Blacklisted,
				WarningCount: rec.WarningCount,
			}
			if !d.Status.Valid() {
				d.Status = model.DriverActive
			}
			if err := backs.Drivers.Create(d); err != nil {
				return err
			}
			drivers++
			return nil
		},
	)
	if err != nil {
		return err
	}

	err = legacy.SubStorage("staff").ReadIterator(
		func(_, v []byte) error {
			var rec legacyStaff
			if err := decode(v, &rec); err != nil {
				return err
			}
			st := &model.Staff{
				ID:           rec.ID,
				FranchiseID:  rec.FranchiseID,
				Name:         rec.Name,
				Email:        rec.Email,
				Phone:        rec.Phone,
				Role:         rec.Role,
				Status:       model.StaffStatus(rec.Status),
				WarningCount: rec.WarningCount,
			}
			if !st.Status.Valid() {
				st.Status = model.StaffActive
			}
			if err := backs.Staff.Create(st); err != nil {
				return err
			}
			staff++
			return nil
		},
	)
	if err != nil {
		return err
	}

	err = legacy.SubStorage("warnings").ReadIterator(
		func(_, v []byte) error {
			var rec legacyWarning
			if err := decode(v, &rec); err != nil {
				return err
			}
			priority := model.Priority(rec.Priority)
			if !priority.Valid() {
				priority = model.PriorityMedium
			}
			w := &model.Warning{
				ID:          rec.ID,
				DriverID:    rec.DriverID,
				StaffID:     rec.StaffID,
				FranchiseID: rec.FranchiseID,
				Reason:      rec.Reason,
				Priority:    priority,
			}
			if rec.CreatedAt != nil {
				w.CreatedAt = *rec.CreatedAt
			}
			if err := backs.Warnings.Create(w); err != nil {
				return err
			}
			warnings++
			return nil
		},
	)
	if err != nil {
		return err
	}

	log.WithFields(
		log.Fields{
			"franchises": franchises,
			"drivers":    drivers,
			"staff":      staff,
			"warnings":   warnings,
		},
	).Info("imported legacy records")
	return nil
}

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	sub := os.Args[1]
	var code int
	switch sub {
	case "db":
		code = dbCmd(os.Args[2:])
	case "-h", "--help", "help":
		usage()
		code = 0
	default:
		_, _ = fmt.Fprintf(os.Stderr, "unknown subcommand: %s\n\n", sub)
		usage()
		code = 2
	}
	os.Exit(code)
}
