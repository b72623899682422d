package main

import (
	"fmt"
	"log"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/tech-karippilly/drybros-app-sub006/cmd/drybrosd/config"
	"github.com/tech-karippilly/drybros-app-sub006/storage/model"
)

var rootCmd = &cobra.Command{
	Use:   "drybrosctl",
	Short: "drybrosctl can help you manage your drybros deployment",
	Long:  "drybrosctl can help you manage your drybros deployment",
}

var configFile string
var backends model.Backends

func loadConfig() error {
	config.Load(configFile)
	log.Println("Loaded Config")
	c := config.Get()

	var err error
	backends, err = config.LoadStorageBackends(c.Storage, c.API.Argon2idParams)
	if err != nil {
		log.Fatal(err)
	}
	return nil
}

var userAddCmd = &cobra.Command{
	Use:   "useradd <username> <password>",
	Short: "Create a dashboard user",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		role := model.UserRole(userRole)
		var fid *string
		if userFranchise != "" {
			fid = &userFranchise
		}
		u, err := backends.Users.Create(args[0], args[1], userDisplayName, role, fid)
		if err != nil {
			return err
		}
		fmt.Printf("created user %s (%s)\n", u.Username, u.Role)
		return nil
	},
}

var (
	userRole        string
	userFranchise   string
	userDisplayName string
)

var franchiseAddCmd = &cobra.Command{
	Use:   "franchiseadd <name> <code>",
	Short: "Create a franchise",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		f := &model.Franchise{
			Name:   args[0],
			Code:   args[1],
			City:   franchiseCity,
			Active: true,
		}
		if err := backends.Franchises.Create(f); err != nil {
			return err
		}
		fmt.Printf("created franchise %s (%s)\n", f.Name, f.ID)
		return nil
	},
}

var franchiseCity string

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run the database schema migration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Schema migration already ran while loading the backends.
		fmt.Println("database schema is up to date")
		return nil
	},
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Create a demo franchise with one driver and one staff member",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		f := &model.Franchise{
			Name:   "Demo Franchise",
			Code:   "DEMO",
			City:   "Kochi",
			Active: true,
		}
		if err := backends.Franchises.Create(f); err != nil {
			return err
		}
		d := &model.Driver{
			FranchiseID: f.ID,
			Name:        "Demo Driver",
			Email:       "driver@demo.local",
			Phone:       "+910000000001",
			License:     "KL-00-0000001",
		}
		if err := backends.Drivers.Create(d); err != nil {
			return err
		}
		st := &model.Staff{
			FranchiseID: f.ID,
			Name:        "Demo Staff",
			Email:       "staff@demo.local",
			Phone:       "+910000000002",
			Role:        "dispatcher",
		}
		if err := backends.Staff.Create(st); err != nil {
			return err
		}
		fmt.Printf("seeded franchise %s with driver %s and staff %s\n", f.ID, d.ID, st.ID)
		return nil
	},
}

var thresholdCmd = &cobra.Command{
	Use:   "threshold <franchise-id> [value]",
	Short: "Show or set a franchise's warning threshold override",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		scope := model.FranchiseScope(args[0])
		if len(args) == 1 {
			var threshold int
			found, err := backends.Settings.GetAs(scope, model.SettingKeyWarningThreshold, &threshold)
			if err != nil {
				return err
			}
			if !found {
				fmt.Println("no override set")
				return nil
			}
			fmt.Println(threshold)
			return nil
		}
		threshold, err := strconv.Atoi(args[1])
		if err != nil || threshold < 1 {
			return fmt.Errorf("invalid threshold '%s'", args[1])
		}
		if err = backends.Settings.SetAny(scope, model.SettingKeyWarningThreshold, threshold); err != nil {
			return err
		}
		fmt.Printf("threshold for %s set to %d\n", args[0], threshold)
		return nil
	},
}

func main() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "config.yaml", "the config file to use")
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		return loadConfig()
	}
	userAddCmd.Flags().StringVar(&userRole, "role", string(model.RoleAdmin), "role of the new user (ADMIN, MANAGER, STAFF)")
	userAddCmd.Flags().StringVar(&userFranchise, "franchise", "", "franchise the user is scoped to")
	userAddCmd.Flags().StringVar(&userDisplayName, "display-name", "", "display name of the new user")
	franchiseAddCmd.Flags().StringVar(&franchiseCity, "city", "", "city of the new franchise")
	rootCmd.AddCommand(userAddCmd, franchiseAddCmd, migrateCmd, seedCmd, thresholdCmd)
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
