package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/nexplant/production-manager/backend/internal/config"
	"github.com/nexplant/production-manager/backend/internal/domain"
	"github.com/nexplant/production-manager/backend/internal/migration"
	"github.com/nexplant/production-manager/backend/internal/repository"
	"github.com/nexplant/production-manager/backend/internal/seed"
	"github.com/nexplant/production-manager/backend/internal/utils"
	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"

	_ "github.com/jackc/pgx/v5/stdlib"
)

type app struct {
	cfg    *config.Config
	dbpool *sql.DB
	repo   *repository.Repository
}

func (a *app) open(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	dbpool, err := sql.Open("pgx", cfg.Database.DSN)
	if err != nil {
		return fmt.Errorf("create database pool: %w", err)
	}

	dbpool.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	dbpool.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	dbpool.SetConnMaxIdleTime(time.Duration(cfg.Database.MaxIdleTime) * time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Database.ConnectTimeout)*time.Second)
	defer cancel()

	if err := dbpool.PingContext(ctx); err != nil {
		dbpool.Close()
		return fmt.Errorf("connect to database: %w", err)
	}

	a.cfg = cfg
	a.dbpool = dbpool
	a.repo = repository.NewRepository(cfg, dbpool)
	return nil
}

func (a *app) close(cmd *cobra.Command, args []string) error {
	if a.dbpool != nil {
		return a.dbpool.Close()
	}
	return nil
}

func (a *app) hashSeedPassword() (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(a.cfg.Seed.User.Password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func (a *app) companyCmd() *cobra.Command {
	var name, country, admin string

	cmd := &cobra.Command{
		Use:   "company",
		Short: "Create a demo company with its company admin",
		RunE: func(cmd *cobra.Command, args []string) error {
			hash, err := a.hashSeedPassword()
			if err != nil {
				return err
			}

			company := &domain.Company{
				ID:          utils.GenerateCompanyID(country),
				Name:        name,
				Description: "demo plant",
				CountryCode: strings.ToUpper(country),
			}
			user := &domain.User{
				Username:     admin,
				PasswordHash: hash,
				FullName:     utils.GenerateRandomFullName(),
				Email:        admin,
				Role:         domain.RoleCompanyAdmin,
			}

			if err := a.repo.CreateCompany(company, user); err != nil {
				return err
			}

			slog.Info("company created", "id", company.ID, "admin", user.Username)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "Demo Plant", "Company name")
	cmd.Flags().StringVar(&country, "country", "KR", "Two letter country code")
	cmd.Flags().StringVar(&admin, "admin", "plant.admin@example.com", "Username (e-mail) of the company admin")

	return cmd
}

func (a *app) usersCmd() *cobra.Command {
	var companyID, emailDomain string
	var n int

	cmd := &cobra.Command{
		Use:   "users",
		Short: "Insert random view-only users into a company",
		RunE: func(cmd *cobra.Command, args []string) error {
			if n <= 0 {
				return errors.New("--n must be positive")
			}

			hash, err := a.hashSeedPassword()
			if err != nil {
				return err
			}

			cnt := 0
			for i := 0; i < n; i++ {
				fullName := utils.GenerateRandomFullName()
				username := utils.GenerateUsernameFromFullName(fullName, emailDomain)
				user := &domain.User{
					Username:     username,
					PasswordHash: hash,
					FullName:     fullName,
					Email:        username,
					CompanyID:    &companyID,
					Role:         domain.RoleViewOnly,
				}

				if err := a.repo.CreateUser(user); err != nil {
					slog.Error("failed to insert user", "username", username, "error", err)
					continue
				}
				cnt++
			}

			slog.Info("users inserted", "count", cnt)
			return nil
		},
	}

	cmd.Flags().StringVar(&companyID, "company", "", "Company id")
	cmd.Flags().StringVar(&emailDomain, "email-domain", "example.com", "Domain of generated usernames")
	cmd.Flags().IntVarP(&n, "n", "n", 5, "Number of users")
	_ = cmd.MarkFlagRequired("company")

	return cmd
}

func (a *app) planCmd() *cobra.Command {
	var companyID, file, from string
	var days int

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Load shifts, products, devices and production schedules from a CSV plan",
		RunE: func(cmd *cobra.Command, args []string) error {
			loc, err := a.cfg.Location()
			if err != nil {
				return err
			}

			start := time.Now().In(loc)
			start = time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, loc)
			if from != "" {
				if start, err = time.ParseInLocation(time.DateOnly, from, loc); err != nil {
					return fmt.Errorf("--from: %w", err)
				}
			}

			f, err := os.Open(file)
			if err != nil {
				return err
			}
			defer f.Close()

			plan, err := seed.ParsePlan(f)
			if err != nil {
				return err
			}

			return seed.SeedPlan(a.repo, companyID, plan, start, days)
		},
	}

	cmd.Flags().StringVar(&companyID, "company", "", "Company id")
	cmd.Flags().StringVar(&file, "file", "./internal/seed/data/plant.csv", "CSV plan")
	cmd.Flags().StringVar(&from, "from", "", "First day YYYY-MM-DD (default today)")
	cmd.Flags().IntVar(&days, "days", 7, "Number of days to schedule")
	_ = cmd.MarkFlagRequired("company")

	return cmd
}

func (a *app) migrateCmd() *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending schema migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := a.cfg.Database.MigrationsDir

			if dryRun {
				pending, err := migration.Pending(a.dbpool, dir)
				if err != nil {
					return err
				}
				slog.Info("pending migrations", "count", len(pending), "ids", strings.Join(pending, ","))
				return nil
			}

			n, err := migration.Run(a.dbpool, dir)
			if err != nil {
				return err
			}
			slog.Info("migrations applied", "count", n)
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Only list pending migrations")

	return cmd
}

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	a := &app{}

	root := &cobra.Command{
		Use:                "seed",
		Short:              "Fill the database with demo data",
		SilenceUsage:       true,
		PersistentPreRunE:  a.open,
		PersistentPostRunE: a.close,
	}
	root.AddCommand(a.migrateCmd(), a.companyCmd(), a.usersCmd(), a.planCmd())

	if err := root.Execute(); err != nil {
		logger.Error("seed failed", "error", err)
		os.Exit(1)
	}
}
