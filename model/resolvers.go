package model

// The resolver tables below are plain dual-map lookups, built once and
// read many times, the same shape hive/index's StringIndex uses for its
// forward/reverse name tables — just without the cell-offset/interning
// machinery that only makes sense over registry hive storage.

// QoSTable is an in-memory resolve.QoSResolver.
type QoSTable struct {
	byID   map[uint32]string
	byName map[string]uint32
}

// NewQoSTable builds a QoSTable from (id, name) pairs.
func NewQoSTable(entries map[uint32]string) *QoSTable {
	t := &QoSTable{byID: make(map[uint32]string, len(entries)), byName: make(map[string]uint32, len(entries))}
	for id, name := range entries {
		t.byID[id] = name
		t.byName[name] = id
	}
	return t
}

func (t *QoSTable) QoSByID(id uint32) (string, bool)   { name, ok := t.byID[id]; return name, ok }
func (t *QoSTable) QoSByName(name string) (uint32, bool) { id, ok := t.byName[name]; return id, ok }

// UserTable is an in-memory resolve.UserResolver.
type UserTable struct {
	byID   map[uint32]string
	byName map[string]uint32
}

// NewUserTable builds a UserTable from (uid, name) pairs.
func NewUserTable(entries map[uint32]string) *UserTable {
	t := &UserTable{byID: make(map[uint32]string, len(entries)), byName: make(map[string]uint32, len(entries))}
	for id, name := range entries {
		t.byID[id] = name
		t.byName[name] = id
	}
	return t
}

func (t *UserTable) UserByID(uid uint32) (string, bool)   { name, ok := t.byID[uid]; return name, ok }
func (t *UserTable) UserByName(name string) (uint32, bool) { uid, ok := t.byName[name]; return uid, ok }

// GroupTable is an in-memory resolve.GroupResolver.
type GroupTable struct {
	byID   map[uint32]string
	byName map[string]uint32
}

// NewGroupTable builds a GroupTable from (gid, name) pairs.
func NewGroupTable(entries map[uint32]string) *GroupTable {
	t := &GroupTable{byID: make(map[uint32]string, len(entries)), byName: make(map[string]uint32, len(entries))}
	for id, name := range entries {
		t.byID[id] = name
		t.byName[name] = id
	}
	return t
}

func (t *GroupTable) GroupByID(gid uint32) (string, bool)   { name, ok := t.byID[gid]; return name, ok }
func (t *GroupTable) GroupByName(name string) (uint32, bool) { gid, ok := t.byName[name]; return gid, ok }

// assocKey identifies one association row by its four-part natural key.
type assocKey struct{ cluster, account, user, partition string }

// AssocTable is an in-memory resolve.AssocResolver.
type AssocTable struct {
	byID  map[uint32]assocKey
	byKey map[assocKey]uint32
}

// AssocRow is one row used to build an AssocTable.
type AssocRow struct {
	ID                              uint32
	Cluster, Account, User, Partition string
}

// NewAssocTable builds an AssocTable from a row set.
func NewAssocTable(rows []AssocRow) *AssocTable {
	t := &AssocTable{byID: make(map[uint32]assocKey, len(rows)), byKey: make(map[assocKey]uint32, len(rows))}
	for _, r := range rows {
		k := assocKey{r.Cluster, r.Account, r.User, r.Partition}
		t.byID[r.ID] = k
		t.byKey[k] = r.ID
	}
	return t
}

func (t *AssocTable) AssocByID(id uint32) (cluster, account, user, partition string, ok bool) {
	k, ok := t.byID[id]
	return k.cluster, k.account, k.user, k.partition, ok
}

func (t *AssocTable) AssocID(cluster, account, user, partition string) (uint32, bool) {
	id, ok := t.byKey[assocKey{cluster, account, user, partition}]
	return id, ok
}

// tresKey identifies one trackable-resource type by its (type, name) pair,
// e.g. ("gres", "gpu").
type tresKey struct{ typ, name string }

// TRESTable is an in-memory resolve.TRESResolver.
type TRESTable struct {
	byID      map[uint32]tresKey
	byKey     map[tresKey]uint32
	hostnames map[uint32]string
}

// TRESRow is one row used to build a TRESTable.
type TRESRow struct {
	ID         uint32
	Type, Name string
}

// NewTRESTable builds a TRESTable from a row set and a node-id->hostname
// map that backs Hostname.
func NewTRESTable(rows []TRESRow, hostnames map[uint32]string) *TRESTable {
	t := &TRESTable{
		byID:      make(map[uint32]tresKey, len(rows)),
		byKey:     make(map[tresKey]uint32, len(rows)),
		hostnames: hostnames,
	}
	for _, r := range rows {
		k := tresKey{r.Type, r.Name}
		t.byID[r.ID] = k
		t.byKey[k] = r.ID
	}
	return t
}

func (t *TRESTable) TRESByID(id uint32) (typ, name string, ok bool) {
	k, ok := t.byID[id]
	return k.typ, k.name, ok
}

func (t *TRESTable) TRESByTypeName(typ, name string) (uint32, bool) {
	id, ok := t.byKey[tresKey{typ, name}]
	return id, ok
}

func (t *TRESTable) Hostname(nodeID uint32) (string, bool) {
	name, ok := t.hostnames[nodeID]
	return name, ok
}
