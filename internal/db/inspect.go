package db

import (
	"fmt"

	"gorm.io/gorm"
)

// SchemaCheck is one line of a schema report
type SchemaCheck struct {
	Kind string // "table", "column", "unique index" or "foreign key"
	Name string
	OK   bool
}

// Inspect reports which catalog tables, columns, unique indexes and foreign keys exist.
// It never changes the schema; RunMigrations repairs what it finds missing.
func Inspect(database *gorm.DB) ([]SchemaCheck, error) {
	m := database.Migrator()
	var checks []SchemaCheck

	for _, t := range tables {
		hasTable := m.HasTable(t.model)
		checks = append(checks, SchemaCheck{Kind: "table", Name: t.label, OK: hasTable})
		if !hasTable {
			continue
		}

		columns, err := m.ColumnTypes(t.model)
		if err != nil {
			return nil, fmt.Errorf("read %s columns: %w", t.label, err)
		}
		present := make(map[string]bool, len(columns))
		for _, c := range columns {
			present[c.Name()] = true
		}

		stmt := &gorm.Statement{DB: database}
		if err := stmt.Parse(t.model); err != nil {
			return nil, fmt.Errorf("parse %s model: %w", t.label, err)
		}
		for _, name := range stmt.Schema.DBNames {
			checks = append(checks, SchemaCheck{Kind: "column", Name: t.label + "." + name, OK: present[name]})
		}
		for _, rel := range stmt.Schema.Relationships.Relations {
			if c := rel.ParseConstraint(); c != nil && c.Schema == stmt.Schema {
				checks = append(checks, SchemaCheck{
					Kind: "foreign key", Name: c.Name, OK: m.HasConstraint(t.model, c.Name),
				})
			}
		}
	}

	for _, idx := range uniqueIndexes {
		checks = append(checks, SchemaCheck{Kind: "unique index", Name: idx.name, OK: m.HasIndex(idx.model, idx.name)})
	}
	return checks, nil
}
