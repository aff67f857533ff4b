package entity

import "time"

// Node types.
const (
	NodeTypeCompute   = "compute"
	NodeTypeEnclosure = "enclosure"
)

// RelationEnclosedBy links a compute node to the chassis that holds it.
const RelationEnclosedBy = "enclosedBy"

type Node struct {
	ID          string
	Name        string
	Type        string
	SKU         string
	Identifiers []string
	Relations   []Relation
	Obms        []Obm
}

type Relation struct {
	RelationType string   `json:"relationType"`
	Targets      []string `json:"targets"`
}

// NodeFilter selects nodes; empty fields match everything.
type NodeFilter struct {
	ID   string
	Type string
}

// EnclosedBy returns the first target of each enclosedBy relation, in order.
func (n *Node) EnclosedBy() []string {
	chassis := make([]string, 0, len(n.Relations))

	for _, r := range n.Relations {
		if r.RelationType == RelationEnclosedBy && len(r.Targets) > 0 {
			chassis = append(chassis, r.Targets[0])
		}
	}

	return chassis
}

// ObmByService returns the first OBM configured for service.
func (n *Node) ObmByService(service string) (Obm, bool) {
	for _, o := range n.Obms {
		if o.Service == service {
			return o, true
		}
	}

	return Obm{}, false
}

// Catalog is one discovery result. Data holds the decoded JSON document:
// an object for most sources, an array for smart and nics.
type Catalog struct {
	ID        string
	NodeID    string
	Source    string
	Data      interface{}
	CreatedAt time.Time
}

// Object returns Data as a JSON object, or nil when it is not one.
func (c *Catalog) Object() map[string]interface{} {
	m, _ := c.Data.(map[string]interface{})
	return m
}

// CatalogQuery selects catalogs by node and source.
type CatalogQuery struct {
	NodeID string
	Source string
}

type Poller struct {
	ID     string
	NodeID string
	Config PollerConfig
}

type PollerConfig struct {
	Command string `json:"command"`
}

// PollerFilter selects pollers by node and command.
type PollerFilter struct {
	NodeID  string
	Command string
}

// PollerResult is one cached poll; the payload sits under the command name.
type PollerResult map[string]interface{}
