package store

const schemaSQL = `
CREATE TABLE IF NOT EXISTS kv (
    key                  TEXT PRIMARY KEY,
    value                TEXT NOT NULL,
    updated_at           TEXT NOT NULL
);
`

// Persisted keys, one per domain store.
const (
	KeyCyber   = "lifeos_cyber"
	KeyGym     = "lifeos_gym"
	KeyTasks   = "lifeos_tasks"
	KeyFinance = "lifeos_finance"
)

// DomainKeys lists every domain key in backup order.
var DomainKeys = []string{KeyGym, KeyCyber, KeyFinance, KeyTasks}
