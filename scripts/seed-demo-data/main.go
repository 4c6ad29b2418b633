// seed-demo-data populates a statusboard database with a believable few
// weeks of history: a handful of employees and projects, weekly status
// submissions, and finished projects so the duration scatter has points
// to plot.
//
// Usage: go run ./scripts/seed-demo-data [-wipe=true]
//
// Database connection: Uses standard PG* environment variables
//
// Flags:
//
//	-wipe   Delete existing rows before seeding (default: false)
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/ekaya-inc/statusboard/pkg/models"
	"github.com/ekaya-inc/statusboard/pkg/reports"
)

// seedEntry is one weekly status submission. weeksAgo counts back from the
// current week's Monday; projectedDays is the projected end date expressed
// as days after that same Monday, so projections slip visibly as a project
// drags on.
type seedEntry struct {
	project       string
	employee      string
	weeksAgo      int
	status        models.Status
	projectedDays int
}

var seedEmployees = []string{"Alice", "Bob", "Carol", "Dave"}

var seedEntries = []seedEntry{
	// Site Migration slips past its projection before landing.
	{"Site Migration", "Alice", 5, models.StatusInProgress, 14},
	{"Site Migration", "Alice", 4, models.StatusInProgress, 7},
	{"Site Migration", "Alice", 3, models.StatusAtRisk, 7},
	{"Site Migration", "Alice", 2, models.StatusInProgress, 7},
	{"Site Migration", "Alice", 1, models.StatusDone, 0},

	// Mobile App is still underway and had a blocked week.
	{"Mobile App", "Bob", 4, models.StatusNotStarted, 35},
	{"Mobile App", "Bob", 3, models.StatusInProgress, 28},
	{"Mobile App", "Bob", 2, models.StatusInProgress, 21},
	{"Mobile App", "Bob", 1, models.StatusBlocked, 21},
	{"Mobile App", "Bob", 0, models.StatusInProgress, 14},

	// Data Warehouse went far off track and is recovering.
	{"Data Warehouse", "Carol", 5, models.StatusInProgress, 21},
	{"Data Warehouse", "Carol", 4, models.StatusAtRisk, 21},
	{"Data Warehouse", "Carol", 3, models.StatusOffTrack, 28},
	{"Data Warehouse", "Carol", 2, models.StatusAtRisk, 28},
	{"Data Warehouse", "Carol", 1, models.StatusInProgress, 28},
	{"Data Warehouse", "Carol", 0, models.StatusInProgress, 21},

	// Billing Rework got canceled.
	{"Billing Rework", "Dave", 3, models.StatusInProgress, 28},
	{"Billing Rework", "Dave", 2, models.StatusInProgress, 21},
	{"Billing Rework", "Dave", 1, models.StatusCanceled, 21},

	// Onboarding Flow finishes ahead of its projection.
	{"Onboarding Flow", "Alice", 2, models.StatusNotStarted, 21},
	{"Onboarding Flow", "Alice", 1, models.StatusInProgress, 14},
	{"Onboarding Flow", "Alice", 0, models.StatusDone, 0},
}

func main() {
	wipe := flag.Bool("wipe", false, "Delete existing rows before seeding")
	flag.Parse()

	ctx := context.Background()

	conn, err := pgx.Connect(ctx, buildConnString())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to connect to database: %v\n", err)
		os.Exit(1)
	}
	defer conn.Close(ctx)

	if *wipe {
		for _, table := range []string{"project_status", "projects", "employees"} {
			if _, err := conn.Exec(ctx, "DELETE FROM "+table); err != nil {
				fmt.Fprintf(os.Stderr, "Failed to wipe %s: %v\n", table, err)
				os.Exit(1)
			}
		}
		fmt.Println("Wiped existing rows")
	}

	for _, name := range seedEmployees {
		if _, err := conn.Exec(ctx,
			"INSERT INTO employees (name) VALUES ($1) ON CONFLICT (name) DO NOTHING", name); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to seed employee %q: %v\n", name, err)
			os.Exit(1)
		}
	}
	fmt.Printf("Seeded %d employees\n", len(seedEmployees))

	projectIDs, err := seedProjects(ctx, conn)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to seed projects: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Seeded %d projects\n", len(projectIDs))

	inserted, err := seedStatusLog(ctx, conn, projectIDs)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to seed status log: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Inserted %d status entries\n", inserted)
}

// seedProjects inserts every project named by seedEntries and returns
// name -> id, resolving ids for projects that already existed.
func seedProjects(ctx context.Context, conn *pgx.Conn) (map[string]int64, error) {
	ids := make(map[string]int64)
	for _, e := range seedEntries {
		if _, ok := ids[e.project]; ok {
			continue
		}
		var id int64
		err := conn.QueryRow(ctx, `
			INSERT INTO projects (name) VALUES ($1)
			ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
			RETURNING id
		`, e.project).Scan(&id)
		if err != nil {
			return nil, fmt.Errorf("upsert %q: %w", e.project, err)
		}
		ids[e.project] = id
	}
	return ids, nil
}

// seedStatusLog inserts one row per seed entry, anchored to Mondays so the
// weekly grid lines up. Submissions land midweek, Wednesday 10:00 UTC.
func seedStatusLog(ctx context.Context, conn *pgx.Conn, projectIDs map[string]int64) (int, error) {
	monday := reports.WeekStart(time.Now().UTC())

	inserted := 0
	for _, e := range seedEntries {
		week := monday.AddDate(0, 0, -7*e.weeksAgo)
		commitTime := week.AddDate(0, 0, 2).Add(10 * time.Hour)
		projected := week.AddDate(0, 0, e.projectedDays)

		_, err := conn.Exec(ctx, `
			INSERT INTO project_status (employee, project_id, status, commit_time, projected_end_date)
			VALUES ($1, $2, $3, $4, $5)
		`, e.employee, projectIDs[e.project], string(e.status), commitTime, projected)
		if err != nil {
			return inserted, fmt.Errorf("insert %s/%s week -%d: %w", e.employee, e.project, e.weeksAgo, err)
		}
		inserted++
	}
	return inserted, nil
}

func buildConnString() string {
	host := getEnvOrDefault("PGHOST", "localhost")
	port := getEnvOrDefault("PGPORT", "5432")
	user := getEnvOrDefault("PGUSER", "statusboard")
	password := os.Getenv("PGPASSWORD")
	dbname := getEnvOrDefault("PGDATABASE", "statusboard")

	connStr := fmt.Sprintf("host=%s port=%s user=%s dbname=%s sslmode=disable",
		host, port, user, dbname)
	if password != "" {
		connStr += fmt.Sprintf(" password=%s", password)
	}
	return connStr
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
