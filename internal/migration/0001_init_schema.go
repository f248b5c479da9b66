package migration

import "fmt"

var initSchema = Migration{
	Version: 1,
	Name:    "init_schema",
	Up: func(t types) []string {
		return []string{
			fmt.Sprintf(`CREATE TABLE IF NOT EXISTS clubs (
		id %[1]s,
		sort_index INTEGER NOT NULL DEFAULT 0,
		name TEXT NOT NULL,
		school TEXT NOT NULL,
		province TEXT NOT NULL,
		city TEXT NOT NULL DEFAULT '',
		longitude %[2]s NOT NULL CHECK (longitude >= -180 AND longitude <= 180),
		latitude %[2]s NOT NULL CHECK (latitude >= -90 AND latitude <= 90),
		logo TEXT NOT NULL DEFAULT '',
		short_description TEXT NOT NULL DEFAULT '',
		description TEXT NOT NULL DEFAULT '',
		tags_json TEXT NOT NULL DEFAULT '[]',
		external_links_json TEXT NOT NULL DEFAULT '[]',
		created_at %[3]s NOT NULL,
		updated_at %[3]s NOT NULL,
		source_submission_id BIGINT,
		verified_by TEXT,
		CONSTRAINT uq_clubs_name_school UNIQUE (name, school)
	)`, t.ID, t.Float, t.Timestamp),
			`CREATE INDEX IF NOT EXISTS ix_clubs_province ON clubs (province)`,
			`CREATE INDEX IF NOT EXISTS ix_clubs_name ON clubs (name)`,
			`CREATE INDEX IF NOT EXISTS ix_clubs_school ON clubs (school)`,

			fmt.Sprintf(`CREATE TABLE IF NOT EXISTS submissions (
		id %[1]s,
		submission_type TEXT NOT NULL CHECK (submission_type IN ('new', 'edit')),
		editing_club_id BIGINT,
		original_data_json TEXT,
		status TEXT NOT NULL DEFAULT 'pending' CHECK (status IN ('pending', 'approved', 'rejected')),
		submitter_email TEXT NOT NULL,
		data_json TEXT NOT NULL,
		metadata_json TEXT NOT NULL DEFAULT '{}',
		submitted_at %[2]s NOT NULL,
		reviewed_at %[2]s,
		reviewed_by TEXT,
		rejection_reason TEXT
	)`, t.ID, t.Timestamp),
			`CREATE INDEX IF NOT EXISTS ix_submissions_status ON submissions (status)`,

			fmt.Sprintf(`CREATE TABLE IF NOT EXISTS admin_users (
		id %[1]s,
		username TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		email TEXT NOT NULL UNIQUE,
		role TEXT NOT NULL DEFAULT 'super_admin',
		active %[2]s NOT NULL DEFAULT %[3]s,
		last_login %[4]s,
		created_at %[4]s NOT NULL
	)`, t.ID, t.Bool, t.True, t.Timestamp),
		}
	},
	Down: func(types) []string {
		return []string{
			`DROP TABLE IF EXISTS admin_users`,
			`DROP INDEX IF EXISTS ix_submissions_status`,
			`DROP TABLE IF EXISTS submissions`,
			`DROP INDEX IF EXISTS ix_clubs_school`,
			`DROP INDEX IF EXISTS ix_clubs_name`,
			`DROP INDEX IF EXISTS ix_clubs_province`,
			`DROP TABLE IF EXISTS clubs`,
		}
	},
}
