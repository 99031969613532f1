package app

import (
	"github.com/kidaholy/human-resource-sub000/internal/audit"
	"github.com/kidaholy/human-resource-sub000/internal/leave"
	"github.com/kidaholy/human-resource-sub000/internal/rbac"

	"gorm.io/gorm"
)

var rawSchema = []string{
	`CREATE TABLE IF NOT EXISTS sequence_counters (
		scope        VARCHAR(64) NOT NULL,
		counter_type VARCHAR(64) NOT NULL,
		last_value   BIGINT      NOT NULL DEFAULT 0,
		updated_at   TIMESTAMPTZ NOT NULL DEFAULT now(),
		PRIMARY KEY (scope, counter_type)
	)`,
	`CREATE TABLE IF NOT EXISTS outbox_events (
		id             UUID PRIMARY KEY,
		request_id     VARCHAR(64),
		aggregate_type VARCHAR(64) NOT NULL,
		aggregate_id   UUID        NOT NULL,
		event_type     VARCHAR(64) NOT NULL,
		topic          VARCHAR(128) NOT NULL,
		payload        JSONB       NOT NULL,
		status         VARCHAR(16) NOT NULL DEFAULT 'pending',
		retry_count    INT         NOT NULL DEFAULT 0,
		error_message  TEXT,
		next_retry_at  TIMESTAMPTZ,
		processed_at   TIMESTAMPTZ,
		created_at     TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at     TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_outbox_events_status_created
		ON outbox_events (status, created_at)`,
}

// migrate creates the tables owned by this service. Directory tables are
// managed elsewhere and only read.
func migrate(db *gorm.DB) error {
	for _, stmt := range rawSchema {
		if err := db.Exec(stmt).Error; err != nil {
			return err
		}
	}
	return db.AutoMigrate(
		&leave.LeaveRequest{},
		&audit.DecisionAudit{},
		&rbac.RolePermissionRow{},
		&rbac.RoleInheritanceRow{},
	)
}
