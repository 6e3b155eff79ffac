package main

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

const inventorySchema = `
	CREATE TABLE IF NOT EXISTS devices (
		name TEXT PRIMARY KEY,
		role TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS svis (
		device TEXT NOT NULL,
		position INTEGER NOT NULL,
		vlan_id INTEGER NOT NULL,
		subnet TEXT NOT NULL,
		address TEXT NOT NULL,
		PRIMARY KEY (device, position),
		FOREIGN KEY (device) REFERENCES devices(name) ON DELETE CASCADE
	);

	CREATE TABLE IF NOT EXISTS routes (
		device TEXT NOT NULL,
		position INTEGER NOT NULL,
		destination TEXT NOT NULL,
		next_hop TEXT NOT NULL,
		PRIMARY KEY (device, position),
		FOREIGN KEY (device) REFERENCES devices(name) ON DELETE CASCADE
	);
`

// SaveInventory persists a built site into a SQLite database at dbPath.
func SaveInventory(dbPath string, site *Site) error {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return fmt.Errorf("failed to open inventory database: %w", err)
	}
	defer db.Close()

	return writeInventory(db, site)
}

// writeInventory creates the schema and inserts every device, SVI and route
// in one transaction.
func writeInventory(db *sql.DB, site *Site) error {
	if _, err := db.Exec(inventorySchema); err != nil {
		return fmt.Errorf("failed to create inventory schema: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin inventory transaction: %w", err)
	}
	defer tx.Rollback()

	for _, dev := range site.Devices() {
		if _, err := tx.Exec(`INSERT INTO devices(name, role) VALUES(?, ?)`,
			dev.Name, string(dev.Role)); err != nil {
			return fmt.Errorf("failed to insert device %s: %w", dev.Name, err)
		}

		for i, svi := range dev.SVIs {
			if _, err := tx.Exec(`INSERT INTO svis(device, position, vlan_id, subnet, address) VALUES(?, ?, ?, ?, ?)`,
				dev.Name, i, svi.VLAN.ID, svi.VLAN.Prefix.String(), svi.Addr.String()); err != nil {
				return fmt.Errorf("failed to insert svi for %s: %w", dev.Name, err)
			}
		}

		for i, r := range dev.Table.Routes() {
			if _, err := tx.Exec(`INSERT INTO routes(device, position, destination, next_hop) VALUES(?, ?, ?, ?)`,
				dev.Name, i, r.Dest.String(), r.NextHop.String()); err != nil {
				return fmt.Errorf("failed to insert route for %s: %w", dev.Name, err)
			}
		}
	}

	return tx.Commit()
}
