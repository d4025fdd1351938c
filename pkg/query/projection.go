// Package query provides SQL query building utilities with projection mapping.
package query

import (
	"fmt"
	"strings"
)

type join struct {
	kind  string
	table string
	on    string
}

// ProjectionMap maps logical field names to qualified column references (alias.column).
// Joined tables contribute columns under their own alias.
type ProjectionMap struct {
	schema     string
	table      string
	alias      string
	current    string
	columns    map[string]string
	columnList []string
	joins      []join
}

// NewProjectionMap creates a ProjectionMap for the given schema, table, and alias.
func NewProjectionMap(schema, table, alias string) *ProjectionMap {
	return &ProjectionMap{
		schema:  schema,
		table:   table,
		alias:   alias,
		current: alias,
		columns: make(map[string]string),
	}
}

// Project maps a column of the most recently added table to a field name.
func (p *ProjectionMap) Project(column, field string) *ProjectionMap {
	qualified := p.current + "." + column
	p.columns[field] = qualified
	p.columnList = append(p.columnList, qualified)
	return p
}

// Join adds a joined table. Subsequent Project calls refer to its alias.
// kind is the SQL join keyword, e.g. "LEFT JOIN".
func (p *ProjectionMap) Join(schema, table, alias, kind, on string) *ProjectionMap {
	p.joins = append(p.joins, join{
		kind:  kind,
		table: fmt.Sprintf("%s.%s %s", schema, table, alias),
		on:    on,
	})
	p.current = alias
	return p
}

// Alias returns the base table alias.
func (p *ProjectionMap) Alias() string {
	return p.alias
}

// Table returns the base table reference with alias (schema.table alias).
func (p *ProjectionMap) Table() string {
	return fmt.Sprintf("%s.%s %s", p.schema, p.table, p.alias)
}

// From returns the base table followed by any joins.
func (p *ProjectionMap) From() string {
	var sb strings.Builder
	sb.WriteString(p.Table())
	for _, j := range p.joins {
		fmt.Fprintf(&sb, " %s %s ON %s", j.kind, j.table, j.on)
	}
	return sb.String()
}

// Column returns the qualified column for a field name, or the input if not mapped.
func (p *ProjectionMap) Column(field string) string {
	if col, ok := p.columns[field]; ok {
		return col
	}
	return field
}

// Has reports whether field is mapped.
func (p *ProjectionMap) Has(field string) bool {
	_, ok := p.columns[field]
	return ok
}

// Columns returns all mapped columns as a comma-separated string.
func (p *ProjectionMap) Columns() string {
	return strings.Join(p.columnList, ", ")
}
