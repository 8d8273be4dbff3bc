package diagnostics

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"sort"
)

// Report is what dbcheck prints about a database connection.
type Report struct {
	Driver   string
	Params   map[string]string
	Database string
	Tables   []string
}

type queries struct {
	database string
	tables   string
}

var driverQueries = map[string]queries{
	"postgres": {
		database: "SELECT current_database()",
		tables:   "SELECT table_name FROM information_schema.tables WHERE table_schema = current_schema() ORDER BY table_name",
	},
	"mysql": {
		database: "SELECT DATABASE()",
		tables:   "SHOW TABLES",
	},
	"sqlite": {
		database: "SELECT name FROM pragma_database_list WHERE seq = 0",
		tables:   "SELECT name FROM sqlite_master WHERE type = 'table' AND name NOT LIKE 'sqlite_%' ORDER BY name",
	},
}

// Inspect reads the current database name and its tables. It only issues
// read queries.
func Inspect(ctx context.Context, db *sql.DB, driver string) (*Report, error) {
	q, ok := driverQueries[driver]
	if !ok {
		return nil, fmt.Errorf("unsupported driver %q", driver)
	}

	report := &Report{Driver: driver, Tables: []string{}}

	var name sql.NullString
	if err := db.QueryRowContext(ctx, q.database).Scan(&name); err != nil {
		return nil, fmt.Errorf("failed to read current database: %w", err)
	}
	report.Database = "NULL"
	if name.Valid {
		report.Database = name.String
	}

	rows, err := db.QueryContext(ctx, q.tables)
	if err != nil {
		return nil, fmt.Errorf("failed to list tables: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var table string
		if err := rows.Scan(&table); err != nil {
			return nil, fmt.Errorf("failed to read table name: %w", err)
		}
		report.Tables = append(report.Tables, table)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list tables: %w", err)
	}
	return report, nil
}

// Write prints the report in a stable, human readable layout.
func (r *Report) Write(w io.Writer) {
	fmt.Fprintf(w, "Connected to database: %s\n", r.Database)
	fmt.Fprintln(w, "Connection params:")

	keys := make([]string, 0, len(r.Params))
	for k := range r.Params {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(w, "  %s: %s\n", k, r.Params[k])
	}

	fmt.Fprintf(w, "Tables found: %d\n", len(r.Tables))
	for _, table := range r.Tables {
		fmt.Fprintf(w, "  - %s\n", table)
	}
	if len(r.Tables) == 0 {
		fmt.Fprintln(w, "No tables found; check DB_NAME or run the API once to migrate.")
	}
}
