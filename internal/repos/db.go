package repos

import (
	"log"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

func OpenDB(dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if err = db.Ping(); err != nil {
		return nil, err
	}

	if err := ensureSchema(db); err != nil {
		return nil, err
	}
	// Seed a starter catalog if the DB is empty
	if err := seedIfEmpty(db); err != nil {
		return nil, err
	}

	return db, nil
}

func ensureSchema(db *sqlx.DB) error {
	schema := `
-- Products
CREATE TABLE IF NOT EXISTS products(
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  name TEXT UNIQUE,
  price REAL CHECK (price >= 0)
);

-- Bills (append-only; no update/delete path exists)
CREATE TABLE IF NOT EXISTS bills(
  bill_id INTEGER PRIMARY KEY AUTOINCREMENT,
  customer_name TEXT,
  phone TEXT,
  address TEXT,
  bill_date TEXT,
  items TEXT,
  total REAL
);
CREATE INDEX IF NOT EXISTS idx_bills_customer ON bills(customer_name);
CREATE INDEX IF NOT EXISTS idx_bills_phone    ON bills(phone);
`
	_, err := db.Exec(schema)
	return err
}

// seedIfEmpty inserts a small demo catalog on first boot. Safe to run
// on every startup.
func seedIfEmpty(db *sqlx.DB) error {
	var n int
	if err := db.Get(&n, `SELECT COUNT(*) FROM products`); err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	log.Println("[seed] inserting demo products")

	tx := db.MustBegin()
	tx.MustExec(`INSERT INTO products(name,price) VALUES
	  ('Ceiling Fan',1500.0),
	  ('LED TV 43"',28999.0),
	  ('Mixer Grinder',3499.0),
	  ('Table Lamp',799.0)`)

	return tx.Commit()
}
