package cmd

import (
	"fmt"
	"log"

	"budgetd/internal/config"
	"budgetd/internal/db"
	"budgetd/internal/model"
	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the database with demo envelopes",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgPath)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		sqlDB, err := db.NewMySQL(cfg.MySQL)
		if err != nil {
			return fmt.Errorf("mysql connect: %w", err)
		}
		defer sqlDB.Close()

		log.Println(">> Seeding demo envelopes...")

		if err := seedEnvelopes(sqlDB); err != nil {
			return err
		}

		log.Println(">> Seed completed")
		return nil
	},
}

// seedEnvelopes inserts the canonical demo rows (idempotent). Requires
// NO_AUTO_VALUE_ON_ZERO in the session so the id 0 row keeps its id.
func seedEnvelopes(dbx *sqlx.DB) error {
	envelopes := []model.Envelope{
		{ID: 0, Name: "home", Amount: 0},
		{ID: 1, Name: "food", Amount: 200},
		{ID: 2, Name: "fun", Amount: 0},
	}

	const q = `
INSERT INTO envelopes (id, name, amount)
VALUES (?, ?, ?)
ON DUPLICATE KEY UPDATE
    name   = VALUES(name),
    amount = VALUES(amount)
`
	tx, err := dbx.Beginx()
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for _, e := range envelopes {
		if _, err := tx.Exec(q, e.ID, e.Name, e.Amount); err != nil {
			return fmt.Errorf("insert envelope %q: %w", e.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit envelopes: %w", err)
	}
	return nil
}
