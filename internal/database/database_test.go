package database

import (
	"path/filepath"
	"testing"
)

func TestSQLiteMigrateIsRepeatable(t *testing.T) {
	db, err := Connect(Options{Driver: DriverSQLite, SQLitePath: filepath.Join(t.TempDir(), "banks.db")})
	if err != nil {
		t.Fatalf("Connect: %v", err)
	}
	defer db.Close()

	for i := 0; i < 2; i++ {
		if err := Migrate(db, DriverSQLite); err != nil {
			t.Fatalf("Migrate run %d: %v", i+1, err)
		}
	}

	var n int
	if err := db.QueryRow(`SELECT COUNT(*) FROM question_banks`).Scan(&n); err != nil {
		t.Fatalf("question_banks missing: %v", err)
	}
	if n != 0 {
		t.Errorf("expected empty table, got %d rows", n)
	}
}

func TestConnectRejectsUnknownDriver(t *testing.T) {
	if _, err := Connect(Options{Driver: "mysql"}); err == nil {
		t.Fatal("expected error for unsupported driver")
	}
	if err := Migrate(nil, "mysql"); err == nil {
		t.Fatal("expected error for unsupported driver")
	}
}

func TestPostgresDSN(t *testing.T) {
	o := Options{Driver: DriverPostgres, Host: "db", Port: "5432", User: "u", Password: "p", Name: "n", SSLMode: "disable"}
	want := "host=db port=5432 user=u password=p dbname=n sslmode=disable"
	if got := o.dsn(); got != want {
		t.Errorf("dsn = %q, want %q", got, want)
	}
}
