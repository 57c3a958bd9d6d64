package grammar

// Table is the read-only classification artifact: an exact-match surface
// form index plus the class→role grouping. Built once, never mutated.
type Table struct {
	byForm map[string]ClassID
	roles  map[ClassID]Role
}

// NewTable builds a Table from explicit form and role mappings. Both maps
// are copied; the Unclassified sentinel is always mapped to
// RoleUnclassified regardless of input.
func NewTable(byForm map[string]ClassID, roles map[ClassID]Role) *Table {
	t := &Table{
		byForm: make(map[string]ClassID, len(byForm)),
		roles:  make(map[ClassID]Role, len(roles)+1),
	}
	for form, id := range byForm {
		t.byForm[form] = id
	}
	for id, role := range roles {
		t.roles[id] = role
	}
	t.roles[Unclassified] = RoleUnclassified
	return t
}

// DefaultTable returns the built-in 49-class inventory.
func DefaultTable() *Table {
	byForm := make(map[string]ClassID)
	roles := make(map[ClassID]Role, len(builtinClasses))
	for _, def := range builtinClasses {
		roles[def.id] = def.role
		for _, form := range def.forms {
			byForm[form] = def.id
		}
	}
	return NewTable(byForm, roles)
}

// Classifier resolves surface forms against one Table. Pure lookup, safe
// for concurrent use.
type Classifier struct {
	table *Table
}

// NewClassifier returns a Classifier over table. A nil table falls back to
// the built-in inventory.
func NewClassifier(table *Table) *Classifier {
	if table == nil {
		table = DefaultTable()
	}
	return &Classifier{table: table}
}

// Classify returns the instruction class of text, or Unclassified when the
// form lies outside the closed grammar. Never errors: absence is an
// expected outcome, not a fault.
func (c *Classifier) Classify(text string) ClassID {
	return c.table.byForm[text]
}

// RoleOf returns the functional role of a class id. Unknown ids report
// RoleUnclassified.
func (c *Classifier) RoleOf(id ClassID) Role {
	return c.table.roles[id]
}

// Classes returns the number of real classes in the table (the sentinel is
// not counted).
func (c *Classifier) Classes() int {
	return len(c.table.roles) - 1
}
